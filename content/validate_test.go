package content

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_DefaultGuide(t *testing.T) {
	t.Parallel()

	require.NoError(t, Validate(Default()))
}

func TestValidate_Violations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(p *Page)
		code   string
	}{
		{
			name:   "unmapped theme",
			mutate: func(p *Page) { p.Lessons[1].Theme = "chartreuse" },
			code:   CodeThemeUnmapped,
		},
		{
			name: "outline too deep",
			mutate: func(p *Page) {
				p.Lessons[0].Outline[1].Children[0].Children = []OutlineItem{{Text: "too deep"}}
			},
			code: CodeOutlineTooDeep,
		},
		{
			name:   "empty code body",
			mutate: func(p *Page) { p.Lessons[2].Code.Body = "" },
			code:   CodeCodeBodyEmpty,
		},
		{
			name:   "unknown code language",
			mutate: func(p *Page) { p.Lessons[2].Code.Language = "cobol" },
			code:   CodeCodeLanguage,
		},
		{
			name:   "empty lesson link url",
			mutate: func(p *Page) { p.Lessons[3].Links[2].URL = "" },
			code:   CodeLinkURLEmpty,
		},
		{
			name:   "ipfs lesson link",
			mutate: func(p *Page) { p.Lessons[3].Links[0].URL = "ipfs://bafybeigdyrzt" },
			code:   CodeLinkURLUnsafe,
		},
		{
			name:   "javascript footer link",
			mutate: func(p *Page) { p.FooterLinks[0].URL = "javascript:alert(1)" },
			code:   CodeLinkURLUnsafe,
		},
		{
			name:   "javascript nav target",
			mutate: func(p *Page) { p.Nav[1].Target = "javascript:void(0)" },
			code:   CodeLinkURLUnsafe,
		},
		{
			name:   "relative lesson link without leading slash",
			mutate: func(p *Page) { p.Lessons[0].Links[0].URL = "docs/intro" },
			code:   CodeLinkURLUnsafe,
		},
		{
			name:   "empty footer link url",
			mutate: func(p *Page) { p.FooterLinks[0].URL = "  " },
			code:   CodeLinkURLEmpty,
		},
		{
			name:   "lesson ids not increasing",
			mutate: func(p *Page) { p.Lessons[2].ID = 2 },
			code:   CodeLessonOrder,
		},
		{
			name:   "unknown link layout",
			mutate: func(p *Page) { p.Lessons[0].LinkLayout = "carousel" },
			code:   CodeLinkLayout,
		},
		{
			name:   "empty outline item",
			mutate: func(p *Page) { p.Lessons[1].Outline[0] = OutlineItem{} },
			code:   CodeOutlineEmpty,
		},
		{
			name:   "empty nav target",
			mutate: func(p *Page) { p.Nav[0].Target = "" },
			code:   CodeNavTargetEmpty,
		},
		{
			name:   "empty brand",
			mutate: func(p *Page) { p.Brand = "" },
			code:   CodePageFieldEmpty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := Default()
			tt.mutate(&p)
			err := Validate(p)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrContentModel))
			assert.True(t, HasCode(err, tt.code), "got %v", err)
		})
	}
}

func TestValidate_ReportsEveryViolation(t *testing.T) {
	t.Parallel()

	p := Default()
	p.Lessons[0].Theme = "unknown"
	p.Lessons[1].Code.Body = ""
	p.Lessons[3].Links[0].URL = ""

	violations := Violations(Validate(p))
	require.Len(t, violations, 3)
	assert.Equal(t, 1, violations[0].Lesson)
	assert.Equal(t, "lessons[0].theme", violations[0].Path)
	assert.Equal(t, 2, violations[1].Lesson)
	assert.Equal(t, 4, violations[2].Lesson)
}

func TestValidateLesson(t *testing.T) {
	t.Parallel()

	l := Default().Lessons[0]
	require.NoError(t, ValidateLesson(l))

	l.Code = &CodeSample{Body: ""}
	err := ValidateLesson(l)
	require.Error(t, err)
	assert.Equal(t, "code sample body is empty (at lesson 1.code.body)", err.Error())
}

func TestValidateLesson_KeepsWhitespaceOnlyCodeBody(t *testing.T) {
	t.Parallel()

	l := Default().Lessons[2]
	require.NotNil(t, l.Code)
	l.Code.Body = " \n\t"
	assert.NoError(t, ValidateLesson(l))
}

func TestValidate_UnsafeLinkReportsPathAndURL(t *testing.T) {
	t.Parallel()

	p := Default()
	p.Lessons[3].Links[0].URL = "ipfs://bafybeigdyrzt"

	violations := Violations(Validate(p))
	require.Len(t, violations, 1)
	assert.Equal(t, CodeLinkURLUnsafe, violations[0].Code)
	assert.Equal(t, 4, violations[0].Lesson)
	assert.Equal(t, "lessons[3].links[0].url", violations[0].Path)
	assert.Contains(t, violations[0].Message, "ipfs://bafybeigdyrzt")
}

func TestDefault_ReturnsIndependentCopies(t *testing.T) {
	t.Parallel()

	a := Default()
	a.Lessons[0].Outline[1].Children[0].Text = "changed"
	b := Default()
	assert.Equal(t, "useState for local state", b.Lessons[0].Outline[1].Children[0].Text)
}

func TestDefault_EveryExternalLinkIsMarked(t *testing.T) {
	t.Parallel()

	p := Default()
	for _, l := range p.Lessons {
		for _, link := range l.Links {
			assert.True(t, link.External, "lesson %d link %s", l.ID, link.URL)
		}
	}
	assert.False(t, p.FooterLinks[0].External)
	assert.True(t, p.FooterLinks[1].External)
}

func TestLessonDerivedFields(t *testing.T) {
	t.Parallel()

	l := Default().Lessons[2]
	assert.Equal(t, "Lesson 3: Web3 Wallets", l.Heading())
	assert.Equal(t, "RainbowKit & Wallets", l.CardTitle())
	assert.Equal(t, "lesson-3-web3-wallets", l.Anchor())
	assert.Equal(t, DefaultLinksHeading, l.ResourcesHeading())
	assert.Equal(t, LayoutStack, l.Layout())

	l = Default().Lessons[3]
	assert.Equal(t, "Smart Contracts", l.CardTitle())
	assert.Equal(t, "Essential Tools", l.ResourcesHeading())
	assert.Equal(t, LayoutGrid, l.Layout())
	assert.Equal(t, DefaultCodeTitle, l.Code.Heading())
}
