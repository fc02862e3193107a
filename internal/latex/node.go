// Package latex provides a minimal LaTeX source parser producing the node
// tree consumed by the reference scanner. It recognizes control sequences
// with their arguments, braced groups, \begin/\end environments, and %
// comments; everything else is kept as opaque text runs. It is not a full
// TeX grammar: a macro only claims arguments written directly against it,
// which is how label and cross-reference macros appear in real sources.
package latex

import "strings"

// Node is one element of a parsed source tree.
type Node interface {
	node()
}

// Text is a run of characters with no structural meaning to the scanner.
// Math material and escaped characters end up here as well.
type Text struct {
	Content string
}

// Group is a braced {...} block.
type Group struct {
	Children []Node
}

// Macro is a control sequence together with the arguments written directly
// against it: at most one [...] optional argument followed by any number of
// adjacent {...} groups.
type Macro struct {
	Name     string
	Optional string
	Args     []*Group
}

// Environment is a \begin{name}...\end{name} block.
type Environment struct {
	Name     string
	Children []Node
}

func (*Text) node()        {}
func (*Group) node()       {}
func (*Macro) node()       {}
func (*Environment) node() {}

// FirstArgText returns the flattened text of the macro's first mandatory
// argument, or "" when the macro has none.
func (m *Macro) FirstArgText() string {
	if len(m.Args) == 0 {
		return ""
	}
	return m.Args[0].Text()
}

// Text returns the concatenated content of every Text node under the group.
func (g *Group) Text() string {
	var b strings.Builder
	appendText(&b, g.Children)
	return b.String()
}

func appendText(b *strings.Builder, nodes []Node) {
	for _, n := range nodes {
		switch node := n.(type) {
		case *Text:
			b.WriteString(node.Content)
		case *Group:
			appendText(b, node.Children)
		}
	}
}
