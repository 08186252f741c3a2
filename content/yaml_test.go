package content

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYAML_RoundTripPreservesCodeBody(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, EncodeYAML(&buf, Default()))

	got, err := DecodeYAML(&buf)
	require.NoError(t, err)
	assert.Equal(t, Default(), got)
	assert.Equal(t, Default().Lessons[0].Code.Body, got.Lessons[0].Code.Body)
}

func TestDecodeYAML_RejectsUnknownFields(t *testing.T) {
	t.Parallel()

	doc := `
title: Guide
brand: Camp
hero:
  title: Hello
lessons:
  - id: 1
    title: One
    theme: blue
    colour: red
`
	_, err := DecodeYAML(strings.NewReader(doc))
	require.Error(t, err)
	assert.True(t, HasCode(err, CodeContentDecode))
}

func TestDecodeYAML_Empty(t *testing.T) {
	t.Parallel()

	_, err := DecodeYAML(strings.NewReader(""))
	require.Error(t, err)
	assert.True(t, HasCode(err, CodeContentDecode))
}

func TestDecodeYAML_NestedOutline(t *testing.T) {
	t.Parallel()

	doc := `
title: Guide
brand: Camp
hero:
  title: Hello
lessons:
  - id: 1
    title: One
    theme: green
    outline:
      - label: "Parent:"
        children:
          - text: first
          - text: second
    code:
      language: bash
      body: "a\nb"
`
	p, err := DecodeYAML(strings.NewReader(doc))
	require.NoError(t, err)
	require.NoError(t, Validate(p))
	require.Len(t, p.Lessons[0].Outline, 1)
	children := p.Lessons[0].Outline[0].Children
	require.Len(t, children, 2)
	assert.Equal(t, "first", children[0].Text)
	assert.Equal(t, "second", children[1].Text)
	assert.Equal(t, "a\nb", p.Lessons[0].Code.Body)
	assert.Equal(t, LangBash, p.Lessons[0].Code.Lang())
}
