package richtext

import (
	"bytes"
	"html/template"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Output is the result of a single render pass.
type Output struct {
	Phase    Phase  `json:"phase"`
	Fallback string `json:"fallback"`
	Nodes    Nodes  `json:"nodes"`
	Style    Style  `json:"style,omitempty"`
}

// Empty reports whether the pass produced no content.
func (o Output) Empty() bool {
	if o.Phase == PhaseMounted {
		return len(o.Nodes) == 0
	}
	return o.Fallback == ""
}

// WriteHTML serialises the output wrapped in a <div> carrying the style.
func (o Output) WriteHTML(w io.Writer) error {
	wrapper := &html.Node{
		Type:     html.ElementNode,
		Data:     atom.Div.String(),
		DataAtom: atom.Div,
	}
	if style := o.Style.String(); style != "" {
		wrapper.Attr = append(wrapper.Attr, html.Attribute{Key: "style", Val: style})
	}

	if o.Phase == PhaseMounted {
		for _, n := range o.Nodes {
			wrapper.AppendChild(toHTML(n))
		}
	} else if o.Fallback != "" {
		wrapper.AppendChild(&html.Node{Type: html.TextNode, Data: o.Fallback})
	}
	return html.Render(w, wrapper)
}

// HTML returns the serialised output. Text is escaped by the serialiser, so
// the value is safe to embed in templates.
func (o Output) HTML() template.HTML {
	var buf bytes.Buffer
	if err := o.WriteHTML(&buf); err != nil {
		return ""
	}
	return template.HTML(buf.String())
}

// RenderHTML serialises a node sequence without a wrapper element.
func RenderHTML(nodes Nodes) string {
	var buf bytes.Buffer
	for _, n := range nodes {
		if err := html.Render(&buf, toHTML(n)); err != nil {
			return buf.String()
		}
	}
	return buf.String()
}

func toHTML(n Node) *html.Node {
	if n.Kind == KindText {
		return &html.Node{Type: html.TextNode, Data: n.Text}
	}
	tag := elementTag(n)
	out := &html.Node{
		Type:     html.ElementNode,
		Data:     tag.String(),
		DataAtom: tag,
	}
	if n.Kind == KindLineBreak {
		return out
	}
	for _, child := range n.Children {
		out.AppendChild(toHTML(child))
	}
	return out
}

func elementTag(n Node) atom.Atom {
	switch n.Kind {
	case KindUnorderedList:
		return atom.Ul
	case KindOrderedList:
		return atom.Ol
	case KindListItem:
		return atom.Li
	case KindBold:
		return atom.Strong
	case KindLineBreak:
		return atom.Br
	case KindBlock:
		if n.Tag == "p" {
			return atom.P
		}
		return atom.Div
	default:
		return atom.Span
	}
}
