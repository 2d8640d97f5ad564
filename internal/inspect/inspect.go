// Package inspect walks a widget tree with an operation and renders what it
// saw as highlighted YAML for the inspector panel.
package inspect

import (
	"bytes"
	"fmt"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/avitaltamir/focuswrap/internal/layout"
	"github.com/avitaltamir/focuswrap/internal/widget"
	"gopkg.in/yaml.v3"
)

// Kind tells containers from focusable widgets.
type Kind string

const (
	KindRoot      Kind = "root"
	KindContainer Kind = "container"
	KindFocusable Kind = "focusable"
	KindTextInput Kind = "text_input"
)

// Node is one widget reported to the collecting operation.
type Node struct {
	Kind     Kind              `yaml:"kind"`
	ID       string            `yaml:"id,omitempty"`
	Bounds   *layout.Rectangle `yaml:"bounds,omitempty"`
	Focused  *bool             `yaml:"focused,omitempty"`
	Value    *string           `yaml:"value,omitempty"`
	Children []*Node           `yaml:"children,omitempty"`
}

// Focusables returns the focusable nodes below n in traversal order.
func (n *Node) Focusables() []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Kind == KindFocusable {
			out = append(out, c)
		}
		out = append(out, c.Focusables()...)
	}
	return out
}

type collector struct {
	parent *Node
}

// Collect returns an operation that records the containers, focusables and
// text inputs of a tree below dst.
func Collect(dst *Node) widget.Operation {
	if dst.Kind == "" {
		dst.Kind = KindRoot
	}
	return &collector{parent: dst}
}

func (c *collector) Container(id string, bounds layout.Rectangle, operateOnChildren func(widget.Operation)) {
	n := &Node{Kind: KindContainer, ID: id, Bounds: &bounds}
	c.parent.Children = append(c.parent.Children, n)
	operateOnChildren(&collector{parent: n})
}

func (c *collector) Focusable(state widget.FocusableState, id string) {
	focused := state.IsFocused()
	c.parent.Children = append(c.parent.Children, &Node{Kind: KindFocusable, ID: id, Focused: &focused})
}

// TextInput attaches the value to the focusable reported just before it
// under the same id.
func (c *collector) TextInput(state widget.TextInputState, id string) {
	value := state.Value()
	if n := len(c.parent.Children); n > 0 {
		if last := c.parent.Children[n-1]; last.Kind == KindFocusable && last.ID == id && last.Value == nil {
			last.Value = &value
			return
		}
	}
	c.parent.Children = append(c.parent.Children, &Node{Kind: KindTextInput, ID: id, Value: &value})
}

// Dump encodes the node as YAML.
func Dump(n *Node) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(n); err != nil {
		return "", fmt.Errorf("inspect: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("inspect: encode: %w", err)
	}
	return buf.String(), nil
}

// Highlight returns the YAML source with terminal colors, or the source
// unchanged when it cannot be tokenised.
func Highlight(src string) string {
	lexer := lexers.Get("yaml")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, src)
	if err != nil {
		return src
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return src
	}
	return buf.String()
}

// Render collects the tree of ui and returns it as highlighted YAML.
func Render(ui *widget.UserInterface, color bool) (string, error) {
	root := &Node{}
	ui.Operate(Collect(root))

	src, err := Dump(root)
	if err != nil {
		return "", err
	}
	if !color {
		return src, nil
	}
	return Highlight(src), nil
}
