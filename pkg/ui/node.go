// Package ui defines the small renderable node tree exchanged between the
// survey controller, the questionnaire and the terminal host.
package ui

// Kind identifies how a node is drawn.
type Kind int

const (
	KindColumn Kind = iota
	KindHeading
	KindSubheading
	KindParagraph
	KindIconRow
	KindDivider
	KindButton
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindColumn:
		return "column"
	case KindHeading:
		return "heading"
	case KindSubheading:
		return "subheading"
	case KindParagraph:
		return "paragraph"
	case KindIconRow:
		return "icon-row"
	case KindDivider:
		return "divider"
	case KindButton:
		return "button"
	case KindError:
		return "error"
	}
	return "unknown"
}

// Icon names a glyph shown next to a label.
type Icon string

const (
	IconTimer      Icon = "timer"
	IconEncryption Icon = "encryption"
)

// Glyph returns the terminal glyph for the icon.
func (i Icon) Glyph() string {
	switch i {
	case IconTimer:
		return "⏱"
	case IconEncryption:
		return "🔒"
	}
	return "•"
}

// IconLabel is one labeled icon inside an icon row.
type IconLabel struct {
	Icon  Icon
	Label string
}

// Node is a renderable element. Action is only set on buttons.
type Node struct {
	Kind     Kind
	Text     string
	Justify  bool
	Icons    []IconLabel
	Children []Node
	Action   func()
}

func Heading(s string) Node    { return Node{Kind: KindHeading, Text: s} }
func Subheading(s string) Node { return Node{Kind: KindSubheading, Text: s} }
func Paragraph(s string) Node  { return Node{Kind: KindParagraph, Text: s} }
func Divider() Node            { return Node{Kind: KindDivider} }
func Error(s string) Node      { return Node{Kind: KindError, Text: s} }

// Justified returns a paragraph that the host justifies to its width.
func Justified(s string) Node {
	return Node{Kind: KindParagraph, Text: s, Justify: true}
}

// IconRow returns a row of labeled icons.
func IconRow(items ...IconLabel) Node {
	return Node{Kind: KindIconRow, Icons: items}
}

// Button returns an activatable node.
func Button(label string, action func()) Node {
	return Node{Kind: KindButton, Text: label, Action: action}
}

// Column groups children vertically.
func Column(children ...Node) Node {
	return Node{Kind: KindColumn, Children: children}
}

// Activate runs the node's action, if any.
func (n Node) Activate() bool {
	if n.Kind != KindButton || n.Action == nil {
		return false
	}
	n.Action()
	return true
}

// Buttons returns every button in the given nodes in depth-first order.
func Buttons(nodes []Node) []Node {
	var out []Node
	for _, n := range nodes {
		if n.Kind == KindButton {
			out = append(out, n)
		}
		out = append(out, Buttons(n.Children)...)
	}
	return out
}

// Find returns the first node of kind k, depth first.
func Find(nodes []Node, k Kind) (Node, bool) {
	for _, n := range nodes {
		if n.Kind == k {
			return n, true
		}
		if found, ok := Find(n.Children, k); ok {
			return found, true
		}
	}
	return Node{}, false
}

// Shape is a node with its action reduced to a presence flag, so that two
// renders can be compared structurally.
type Shape struct {
	Kind      Kind
	Text      string
	Justify   bool
	Icons     []IconLabel
	Children  []Shape
	HasAction bool
}

// ShapeOf returns the structural view of nodes.
func ShapeOf(nodes []Node) []Shape {
	if nodes == nil {
		return nil
	}
	out := make([]Shape, len(nodes))
	for i, n := range nodes {
		out[i] = Shape{
			Kind:      n.Kind,
			Text:      n.Text,
			Justify:   n.Justify,
			Icons:     n.Icons,
			Children:  ShapeOf(n.Children),
			HasAction: n.Action != nil,
		}
	}
	return out
}
