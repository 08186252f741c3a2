package campbuidl

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strconv"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/eringen/campbuidl/content"
)

const (
	ogWidth      = 1200
	ogHeight     = 630
	ogStripe     = 24
	ogTextScale  = 4
	ogTextMargin = 80
)

var ogBackground = color.RGBA{R: 0x0b, G: 0x10, B: 0x20, A: 0xff}

// RenderOGImage draws the social card for page: the title and tagline over a
// dark background, with one stripe per lesson in its theme color.
func RenderOGImage(page content.Page) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, ogWidth, ogHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(ogBackground), image.Point{}, draw.Src)

	if n := len(page.Lessons); n > 0 {
		w := ogWidth / n
		for i, l := range page.Lessons {
			t, err := content.ThemeFor(l.Theme)
			if err != nil {
				return nil, err
			}
			c, err := parseHex(t.Hex)
			if err != nil {
				return nil, fmt.Errorf("campbuidl: og image: theme %s: %w", l.Theme, err)
			}
			x1 := (i + 1) * w
			if i == n-1 {
				x1 = ogWidth
			}
			r := image.Rect(i*w, ogHeight-ogStripe, x1, ogHeight)
			draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
		}
	}

	drawScaledText(img, page.Title, ogTextMargin, 200, ogTextScale, color.White)
	if page.Hero.Tagline != "" {
		drawScaledText(img, page.Hero.Tagline, ogTextMargin, 320, 2, color.RGBA{R: 0xa1, G: 0xa1, B: 0xaa, A: 0xff})
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("campbuidl: encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// drawScaledText renders s with the fixed bitmap face on a small canvas and
// scales it onto dst at (x, y). Text wider than the card is cut off.
func drawScaledText(dst *image.RGBA, s string, x, y, scale int, c color.Color) {
	face := basicfont.Face7x13
	s = asciiOnly(s)
	adv := font.MeasureString(face, s).Ceil()
	if adv == 0 {
		return
	}
	maxW := (ogWidth - 2*ogTextMargin) / scale
	if adv > maxW {
		adv = maxW
	}
	h := face.Metrics().Height.Ceil()
	small := image.NewRGBA(image.Rect(0, 0, adv, h))
	d := &font.Drawer{
		Dst:  small,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(0, face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)

	target := image.Rect(x, y, x+adv*scale, y+h*scale)
	draw.CatmullRom.Scale(dst, target, small, small.Bounds(), draw.Over, nil)
}

// asciiOnly drops runes the bitmap face cannot draw.
func asciiOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r > 0x7e {
			return -1
		}
		return r
	}, s)
}

func parseHex(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("bad hex color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad hex color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
