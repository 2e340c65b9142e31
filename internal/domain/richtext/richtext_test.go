package richtext

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textBlock(spans ...string) Block {
	tb := &TextBlock{Style: "normal"}
	for _, s := range spans {
		tb.Children = append(tb.Children, Span{Text: s})
	}
	return Block{Kind: KindText, Text: tb}
}

func TestPlainText_JoinsSpansWithSpaces(t *testing.T) {
	blocks := []Block{
		textBlock("Hello", "world."),
		textBlock("Second paragraph."),
	}
	assert.Equal(t, "Hello world. Second paragraph.", PlainText(blocks))
}

func TestPlainText_NonTextBlocksContributeNothing(t *testing.T) {
	blocks := []Block{
		{Kind: KindImage, Image: &ImageBlock{AssetRef: "image-abc-200x300-jpg"}},
		{Kind: KindCode, Code: &CodeBlock{Language: "go", Code: "fmt.Println()"}},
		{Kind: KindQuote, Quote: &QuoteBlock{Text: "quoted"}},
		{Kind: KindList, List: &ListBlock{Items: []string{"a", "b"}}},
	}
	assert.Equal(t, "", PlainText(blocks))
}

func TestPlainText_Empty(t *testing.T) {
	assert.Equal(t, "", PlainText(nil))
	assert.Equal(t, "", PlainText([]Block{textBlock("   ")}))
}

func TestUnmarshal_TaggedUnion(t *testing.T) {
	raw := `[
		{"_type": "block", "style": "normal", "children": [{"text": "Intro"}]},
		{"_type": "image", "asset": {"_ref": "image-abc-800x600-png"}, "alt": "diagram"},
		{"_type": "code", "language": "go", "code": "package main"},
		{"_type": "quote", "text": "Stay hungry", "attribution": "someone"},
		{"_type": "list", "listType": "bullet", "items": ["one", "two"]},
		{"_type": "somethingNew", "payload": 42}
	]`

	var blocks []Block
	require.NoError(t, json.Unmarshal([]byte(raw), &blocks))
	require.Len(t, blocks, 6)

	assert.Equal(t, KindText, blocks[0].Kind)
	assert.Equal(t, "Intro", blocks[0].Text.Children[0].Text)

	assert.Equal(t, KindImage, blocks[1].Kind)
	assert.Equal(t, "image-abc-800x600-png", blocks[1].Image.AssetRef)
	assert.Equal(t, "diagram", blocks[1].Image.Alt)

	assert.Equal(t, KindCode, blocks[2].Kind)
	assert.Equal(t, "go", blocks[2].Code.Language)

	assert.Equal(t, KindQuote, blocks[3].Kind)
	assert.Equal(t, "Stay hungry", blocks[3].Quote.Text)

	assert.Equal(t, KindList, blocks[4].Kind)
	assert.Equal(t, []string{"one", "two"}, blocks[4].List.Items)

	assert.Equal(t, KindUnknown, blocks[5].Kind)

	assert.Equal(t, "Intro", PlainText(blocks))
}

func TestExcerpt_TruncatesOnWordBoundary(t *testing.T) {
	blocks := []Block{textBlock("one two three four five")}
	assert.Equal(t, "one two…", Excerpt(blocks, 9))
	assert.Equal(t, "one two three four five", Excerpt(blocks, 100))
	assert.Equal(t, "one two three four five", Excerpt(blocks, 0))
}
