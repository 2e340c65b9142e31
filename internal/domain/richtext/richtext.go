package richtext

import (
	"encoding/json"
	"strings"
)

// Rich text is stored as an array of typed block nodes. The studio only
// produces the kinds below; anything else decodes as KindUnknown and is
// ignored by rendering and flattening.

type Kind string

const (
	KindText    Kind = "block"
	KindImage   Kind = "image"
	KindCode    Kind = "code"
	KindQuote   Kind = "quote"
	KindList    Kind = "list"
	KindUnknown Kind = ""
)

type Span struct {
	Text  string   `json:"text"`
	Marks []string `json:"marks,omitempty"`
}

type TextBlock struct {
	Style    string `json:"style"`
	Children []Span `json:"children"`
}

type ImageBlock struct {
	AssetRef string `json:"assetRef"`
	Alt      string `json:"alt"`
}

type CodeBlock struct {
	Language string `json:"language"`
	Code     string `json:"code"`
}

type QuoteBlock struct {
	Text        string `json:"text"`
	Attribution string `json:"attribution"`
}

type ListBlock struct {
	ListType string   `json:"listType"`
	Items    []string `json:"items"`
}

// Block is a tagged union over the closed set of block kinds. Exactly one of
// the pointer fields is set, matching Kind.
type Block struct {
	Kind  Kind
	Text  *TextBlock
	Image *ImageBlock
	Code  *CodeBlock
	Quote *QuoteBlock
	List  *ListBlock
}

func (b *Block) UnmarshalJSON(data []byte) error {
	var head struct {
		Type string `json:"_type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}

	switch Kind(head.Type) {
	case KindText:
		b.Kind = KindText
		b.Text = &TextBlock{}
		return json.Unmarshal(data, b.Text)
	case KindImage:
		b.Kind = KindImage
		b.Image = &ImageBlock{}
		var raw struct {
			Asset struct {
				Ref string `json:"_ref"`
			} `json:"asset"`
			Alt string `json:"alt"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		b.Image.AssetRef = raw.Asset.Ref
		b.Image.Alt = raw.Alt
		return nil
	case KindCode:
		b.Kind = KindCode
		b.Code = &CodeBlock{}
		return json.Unmarshal(data, b.Code)
	case KindQuote:
		b.Kind = KindQuote
		b.Quote = &QuoteBlock{}
		return json.Unmarshal(data, b.Quote)
	case KindList:
		b.Kind = KindList
		b.List = &ListBlock{}
		return json.Unmarshal(data, b.List)
	default:
		// Unknown kinds come from schema revisions this build predates.
		b.Kind = KindUnknown
		return nil
	}
}

func (b Block) MarshalJSON() ([]byte, error) {
	switch b.Kind {
	case KindText:
		return marshalWithType(b.Kind, b.Text)
	case KindImage:
		return marshalWithType(b.Kind, b.Image)
	case KindCode:
		return marshalWithType(b.Kind, b.Code)
	case KindQuote:
		return marshalWithType(b.Kind, b.Quote)
	case KindList:
		return marshalWithType(b.Kind, b.List)
	default:
		return []byte("{}"), nil
	}
}

func marshalWithType(kind Kind, body any) ([]byte, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	m := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	typeRaw, _ := json.Marshal(string(kind))
	m["_type"] = typeRaw
	return json.Marshal(m)
}

// PlainText flattens rich text to a plain string: the span text of normal
// text blocks joined by single spaces, trimmed. Image, code, quote and list
// blocks contribute nothing.
func PlainText(blocks []Block) string {
	var parts []string
	for _, b := range blocks {
		if b.Kind != KindText || b.Text == nil {
			continue
		}
		for _, span := range b.Text.Children {
			if s := strings.TrimSpace(span.Text); s != "" {
				parts = append(parts, s)
			}
		}
	}
	return strings.Join(parts, " ")
}

// Excerpt returns PlainText truncated to at most max runes, cutting on a
// word boundary with a trailing ellipsis.
func Excerpt(blocks []Block, max int) string {
	text := PlainText(blocks)
	if max <= 0 || len([]rune(text)) <= max {
		return text
	}
	runes := []rune(text)[:max]
	cut := strings.LastIndex(string(runes), " ")
	if cut <= 0 {
		cut = len(string(runes))
	}
	return strings.TrimSpace(string(runes)[:cut]) + "…"
}
