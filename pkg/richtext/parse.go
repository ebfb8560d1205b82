package richtext

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Parse converts content into its typed node sequence. The markup is parsed
// as the body of a detached <div> scaffold that is never attached to a
// document; only the scaffold's children are returned. Comments, doctypes and
// other non-content nodes are dropped. Parse never fails: when the parser
// cannot read the input the result is empty.
func Parse(content string) Nodes {
	if content == "" {
		return nil
	}
	parsed, err := html.ParseFragment(strings.NewReader(content), newScaffold())
	if err != nil {
		return nil
	}
	return convertSiblings(parsed)
}

func newScaffold() *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     atom.Div.String(),
		DataAtom: atom.Div,
	}
}

func convertSiblings(nodes []*html.Node) Nodes {
	var out Nodes
	for _, n := range nodes {
		converted, ok := convert(n, len(out))
		if !ok {
			continue
		}
		out = append(out, converted)
	}
	return out
}

func convert(n *html.Node, key int) (Node, bool) {
	if n == nil {
		return Node{}, false
	}
	switch n.Type {
	case html.TextNode:
		return Text(key, n.Data), true
	case html.ElementNode:
		tag := strings.ToLower(n.Data)
		node := Node{Kind: KindForTag(tag), Tag: tag, Key: key}
		if node.Kind == KindLineBreak {
			return node, true
		}
		node.Children = []Node(convertSiblings(children(n)))
		return node, true
	default:
		return Node{}, false
	}
}

func children(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, c)
	}
	return out
}
