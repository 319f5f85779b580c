package gemini

import (
	"strings"

	"google.golang.org/genai"
)

// PartKind tags a decoded response part.
type PartKind int

const (
	PartOther PartKind = iota
	PartImage
	PartText
)

func (k PartKind) String() string {
	switch k {
	case PartImage:
		return "image"
	case PartText:
		return "text"
	default:
		return "other"
	}
}

// Part is a response part reduced to what the pipeline consumes.
type Part struct {
	Kind  PartKind
	Image Image
	Text  string
}

// DecodePart classifies a raw part. Inline data takes precedence over text;
// thought parts and empty parts are PartOther.
func DecodePart(p *genai.Part) Part {
	if p == nil || p.Thought {
		return Part{Kind: PartOther}
	}
	if p.InlineData != nil && len(p.InlineData.Data) > 0 {
		mime := strings.TrimSpace(p.InlineData.MIMEType)
		if mime == "" {
			mime = defaultImageMIME
		}
		return Part{Kind: PartImage, Image: Image{Data: p.InlineData.Data, MIME: mime}}
	}
	if p.Text != "" {
		return Part{Kind: PartText, Text: p.Text}
	}
	return Part{Kind: PartOther}
}
