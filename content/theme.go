package content

import "fmt"

// ThemeColor is the closed set of lesson accent colors.
type ThemeColor string

const (
	Blue   ThemeColor = "blue"
	Purple ThemeColor = "purple"
	Green  ThemeColor = "green"
	Orange ThemeColor = "orange"
	Red    ThemeColor = "red"
	Teal   ThemeColor = "teal"
	Pink   ThemeColor = "pink"
)

// Theme is the set of accents a lesson's color drives. Class strings are kept
// literal so the stylesheet build can see every one of them.
type Theme struct {
	Color        ThemeColor
	BorderIdle   string
	BorderHover  string
	TextAccent   string
	Badge        string
	CodeText     string
	CodeBorder   string
	GradientFrom string
	GradientVia  string
	Hex          string
}

// themeOrder fixes the iteration order of the table.
var themeOrder = []ThemeColor{Blue, Purple, Green, Orange, Red, Teal, Pink}

var themes = map[ThemeColor]Theme{
	Blue: {
		Color: Blue, BorderIdle: "border-blue-500/20", BorderHover: "hover:border-blue-500/50",
		TextAccent: "text-blue-500", Badge: "bg-blue-500/20", CodeText: "text-blue-50",
		CodeBorder: "border-blue-500/20", GradientFrom: "from-blue-500", GradientVia: "via-blue-500",
		Hex: "#3b82f6",
	},
	Purple: {
		Color: Purple, BorderIdle: "border-purple-500/20", BorderHover: "hover:border-purple-500/50",
		TextAccent: "text-purple-500", Badge: "bg-purple-500/20", CodeText: "text-purple-50",
		CodeBorder: "border-purple-500/20", GradientFrom: "from-purple-500", GradientVia: "via-purple-500",
		Hex: "#a855f7",
	},
	Green: {
		Color: Green, BorderIdle: "border-green-500/20", BorderHover: "hover:border-green-500/50",
		TextAccent: "text-green-500", Badge: "bg-green-500/20", CodeText: "text-green-50",
		CodeBorder: "border-green-500/20", GradientFrom: "from-green-500", GradientVia: "via-green-500",
		Hex: "#22c55e",
	},
	Orange: {
		Color: Orange, BorderIdle: "border-orange-500/20", BorderHover: "hover:border-orange-500/50",
		TextAccent: "text-orange-500", Badge: "bg-orange-500/20", CodeText: "text-orange-50",
		CodeBorder: "border-orange-500/20", GradientFrom: "from-orange-500", GradientVia: "via-orange-500",
		Hex: "#f97316",
	},
	Red: {
		Color: Red, BorderIdle: "border-red-500/20", BorderHover: "hover:border-red-500/50",
		TextAccent: "text-red-500", Badge: "bg-red-500/20", CodeText: "text-red-50",
		CodeBorder: "border-red-500/20", GradientFrom: "from-red-500", GradientVia: "via-red-500",
		Hex: "#ef4444",
	},
	Teal: {
		Color: Teal, BorderIdle: "border-teal-500/20", BorderHover: "hover:border-teal-500/50",
		TextAccent: "text-teal-500", Badge: "bg-teal-500/20", CodeText: "text-teal-50",
		CodeBorder: "border-teal-500/20", GradientFrom: "from-teal-500", GradientVia: "via-teal-500",
		Hex: "#14b8a6",
	},
	Pink: {
		Color: Pink, BorderIdle: "border-pink-500/20", BorderHover: "hover:border-pink-500/50",
		TextAccent: "text-pink-500", Badge: "bg-pink-500/20", CodeText: "text-pink-50",
		CodeBorder: "border-pink-500/20", GradientFrom: "from-pink-500", GradientVia: "via-pink-500",
		Hex: "#ec4899",
	},
}

// ThemeColors returns every mapped color in table order.
func ThemeColors() []ThemeColor {
	out := make([]ThemeColor, len(themeOrder))
	copy(out, themeOrder)
	return out
}

// Valid reports whether c has an entry in the theme table.
func (c ThemeColor) Valid() bool {
	_, ok := themes[c]
	return ok
}

// ThemeFor maps a color to its accents. An unmapped color is a content model
// violation; there is no fallback theme.
func ThemeFor(c ThemeColor) (Theme, error) {
	t, ok := themes[c]
	if !ok {
		return Theme{}, &Violation{
			Code:    CodeThemeUnmapped,
			Message: fmt.Sprintf("theme color %q has no mapping", string(c)),
		}
	}
	return t, nil
}
