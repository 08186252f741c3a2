package views

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eringen/campbuidl/content"
)

func renderLesson(t *testing.T, l content.Lesson, conn Connector) *goquery.Document {
	t.Helper()
	c, err := LessonRenderer{}.Render(l, conn)
	require.NoError(t, err)
	return parse(t, renderString(t, c))
}

func TestLessonRenderer_Idempotent(t *testing.T) {
	t.Parallel()

	for _, l := range content.Default().Lessons {
		c, err := LessonRenderer{}.Render(l, Connector{})
		require.NoError(t, err)
		assert.Equal(t, renderString(t, c), renderString(t, c), "lesson %d", l.ID)

		again, err := LessonRenderer{}.Render(l, Connector{})
		require.NoError(t, err)
		assert.Equal(t, renderString(t, c), renderString(t, again), "lesson %d", l.ID)
	}
}

func TestLessonRenderer_AppliesThemeConsistently(t *testing.T) {
	t.Parallel()

	l := content.Default().Lessons[1]
	doc := renderLesson(t, l, Connector{})

	card := doc.Find("div.card")
	require.Equal(t, 1, card.Length())
	assert.True(t, card.HasClass("border-purple-500/20"))
	assert.True(t, card.HasClass("hover:border-purple-500/50"))
	badges := doc.Find("div").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.HasClass("bg-purple-500/20")
	})
	assert.Equal(t, 2, badges.Length(), "header and card badges")
	assert.True(t, doc.Find("[data-section=code] h3").HasClass("text-purple-500"))
	assert.True(t, doc.Find("[data-section=code] pre").HasClass("border-purple-500/20"))
	assert.True(t, doc.Find("[data-section=code] code").HasClass("text-purple-50"))

	assert.Equal(t, "Lesson 2: JavaScript Libraries", doc.Find("h2").Text())
	assert.Equal(t, "JavaScript Libraries", doc.Find("h3.card-title").Text())
	assert.Equal(t, "📦", doc.Find("h2").Prev().Find("span").Text())
	id, _ := doc.Find("section").Attr("id")
	assert.Equal(t, "lesson-2-javascript-libraries", id)
}

func TestLessonRenderer_ExternalLinksCarryBothDirectives(t *testing.T) {
	t.Parallel()

	l := content.Default().Lessons[3]
	l.Links = append(l.Links, content.LinkRef{Label: "Local notes", URL: "/notes"})
	doc := renderLesson(t, l, Connector{})

	links := doc.Find("[data-section=links] a")
	require.Equal(t, 5, links.Length())
	links.Each(func(i int, s *goquery.Selection) {
		target, hasTarget := s.Attr("target")
		rel, hasRel := s.Attr("rel")
		if i < 4 {
			assert.True(t, hasTarget && hasRel, "link %d", i)
			assert.Equal(t, "_blank", target)
			assert.Equal(t, "noopener noreferrer", rel)
		} else {
			assert.False(t, hasTarget, "internal link has target")
			assert.False(t, hasRel, "internal link has rel")
		}
	})
	assert.Equal(t, "Wagmi Documentation →", links.First().Text())
	assert.True(t, doc.Find("[data-section=links] > div").HasClass("grid"))
	assert.Equal(t, "Essential Tools:", doc.Find("[data-section=links] h4").Text())
}

func TestLessonRenderer_PreservesOutlineNesting(t *testing.T) {
	t.Parallel()

	l := content.Lesson{
		ID:    1,
		Title: "Nesting",
		Theme: content.Green,
		Outline: []content.OutlineItem{
			{Label: "Parent:", Children: []content.OutlineItem{{Text: "first child"}, {Text: "second child"}}},
			{Text: "sibling"},
		},
	}
	doc := renderLesson(t, l, Connector{})

	top := doc.Find("ul[data-depth='1']")
	require.Equal(t, 1, top.Length())
	items := top.ChildrenFiltered("li")
	require.Equal(t, 2, items.Length())

	nested := items.First().ChildrenFiltered("ul").ChildrenFiltered("li")
	require.Equal(t, 2, nested.Length())
	assert.Equal(t, "first child", nested.Eq(0).Text())
	assert.Equal(t, "second child", nested.Eq(1).Text())
	assert.Equal(t, "Parent:", items.First().ChildrenFiltered("strong").Text())
	assert.Equal(t, 0, items.Eq(1).Find("ul").Length())
}

func TestLessonRenderer_CodeBodyPreservedByteForByte(t *testing.T) {
	t.Parallel()

	bodies := []string{
		"a\nb",
		"  indented\n\ttabbed\n\n\ntrailing  ",
		"<ConnectButton />\n// This button handles wallet connections",
		content.Default().Lessons[0].Code.Body,
	}
	for _, body := range bodies {
		l := content.Lesson{ID: 1, Title: "Code", Theme: content.Orange, Code: &content.CodeSample{Language: content.LangTSX, Body: body}}
		doc := renderLesson(t, l, Connector{})
		code := doc.Find("[data-section=code] code")
		require.Equal(t, 1, code.Length())
		assert.Equal(t, body, code.Text())
		assert.True(t, code.HasClass("language-tsx"))
	}

	c, err := LessonRenderer{}.Render(content.Lesson{ID: 1, Title: "Code", Theme: content.Blue, Code: &content.CodeSample{Body: "a\nb"}}, Connector{})
	require.NoError(t, err)
	html := renderString(t, c)
	assert.Contains(t, html, ">a\nb</code>")
	assert.NotContains(t, html, "a<br>b")
}

func TestLessonRenderer_OmitsEmptySections(t *testing.T) {
	t.Parallel()

	l := content.Default().Lessons[0]
	l.Links = []content.LinkRef{}
	l.Code = nil
	doc := renderLesson(t, l, Connector{})

	assert.Equal(t, 0, doc.Find("[data-section=links]").Length())
	assert.Equal(t, 0, doc.Find("h4").Length())
	assert.NotContains(t, doc.Text(), content.DefaultLinksHeading)
	assert.Equal(t, 0, doc.Find("[data-section=code]").Length())
	assert.Equal(t, 0, doc.Find("pre").Length())
}

func TestLessonRenderer_Connector(t *testing.T) {
	t.Parallel()

	l := content.Default().Lessons[0]
	doc := renderLesson(t, l, Connector{})
	assert.Equal(t, 0, doc.Find("[data-connector]").Length())

	conn, err := ConnectorFor(content.Blue, content.Purple)
	require.NoError(t, err)
	doc = renderLesson(t, l, conn)
	el := doc.Find("section > [data-connector]")
	require.Equal(t, 1, el.Length())
	assert.True(t, el.HasClass("from-blue-500"))
	assert.True(t, el.HasClass("via-purple-500"))
	assert.True(t, el.HasClass("to-transparent"))
}

func TestLessonRenderer_RejectsViolations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(l *content.Lesson)
		code   string
	}{
		{"unmapped theme", func(l *content.Lesson) { l.Theme = "gold" }, content.CodeThemeUnmapped},
		{"outline too deep", func(l *content.Lesson) {
			l.Outline[1].Children[0].Children = []content.OutlineItem{{Text: "deep"}}
		}, content.CodeOutlineTooDeep},
		{"empty code body", func(l *content.Lesson) { l.Code = &content.CodeSample{} }, content.CodeCodeBodyEmpty},
		{"empty link url", func(l *content.Lesson) { l.Links[0].URL = "" }, content.CodeLinkURLEmpty},
		{"ipfs link url", func(l *content.Lesson) { l.Links[0].URL = "ipfs://bafybeigdyrzt" }, content.CodeLinkURLUnsafe},
		{"javascript link url", func(l *content.Lesson) { l.Links[1].URL = "javascript:alert(1)" }, content.CodeLinkURLUnsafe},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l := content.Default().Lessons[0]
			tt.mutate(&l)
			c, err := LessonRenderer{}.Render(l, Connector{})
			require.Error(t, err)
			assert.Nil(t, c)
			assert.True(t, errors.Is(err, content.ErrContentModel))
			assert.True(t, content.HasCode(err, tt.code))
		})
	}
}

func TestLessonRenderer_RouterResolvesInternalLinksOnly(t *testing.T) {
	t.Parallel()

	l := content.Lesson{
		ID:    1,
		Title: "Routing",
		Theme: content.Teal,
		Links: []content.LinkRef{
			{Label: "Examples", URL: "/examples/nft"},
			{Label: "Viem", URL: "https://viem.sh", External: true},
		},
	}
	c, err := LessonRenderer{Router: PathRouter{Base: "/guide"}}.Render(l, Connector{})
	require.NoError(t, err)
	doc := parse(t, renderString(t, c))

	hrefs := doc.Find("[data-section=links] a").Map(func(_ int, s *goquery.Selection) string {
		href, _ := s.Attr("href")
		return href
	})
	assert.Equal(t, []string{"/guide/examples/nft", "https://viem.sh"}, hrefs)
}

func TestOutlineTemplateCoversMaxDepth(t *testing.T) {
	t.Parallel()

	for depth := 1; depth <= content.MaxOutlineDepth; depth++ {
		assert.Contains(t, outlineListClass, depth)
	}
}

func TestOutline_TooDeepWritesNothing(t *testing.T) {
	t.Parallel()

	items := []content.OutlineItem{
		{Label: "Parent:", Children: []content.OutlineItem{
			{Text: "child", Children: []content.OutlineItem{{Text: "grandchild"}}},
		}},
	}
	var buf bytes.Buffer
	err := Outline(items).Render(context.Background(), &buf)
	require.Error(t, err)
	assert.True(t, content.HasCode(err, content.CodeOutlineTooDeep))
	assert.Zero(t, buf.Len())
}
