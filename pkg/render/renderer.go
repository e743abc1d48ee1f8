package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/vango-dev/djed/pkg/host"
	"github.com/vango-dev/djed/pkg/host/memory"
)

// Config configures the HTML renderer.
type Config struct {
	// LiveState writes the live value, type and checked state of form
	// controls in place of their attributes.
	LiveState bool

	// SkipRoot renders only the children of the node passed in.
	SkipRoot bool
}

// Renderer writes memory host trees as HTML.
type Renderer struct {
	config Config
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config Config) *Renderer {
	return &Renderer{config: config}
}

// HTML renders node with the default configuration. Nodes that are not
// memory nodes render as an HTML comment naming their type.
func HTML(node host.Node) string {
	s, err := NewRenderer(Config{}).RenderToString(node)
	if err != nil {
		return "<!-- " + escapeHTML(err.Error()) + " -->"
	}
	return s
}

// Write renders node to w with the default configuration.
func Write(w io.Writer, node host.Node) error {
	return NewRenderer(Config{}).RenderToWriter(w, node)
}

// RenderToString renders node to a string.
func (r *Renderer) RenderToString(node host.Node) (string, error) {
	var sb strings.Builder
	if err := r.RenderToWriter(&sb, node); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// RenderToWriter streams node to w.
func (r *Renderer) RenderToWriter(w io.Writer, node host.Node) error {
	bw := bufio.NewWriter(w)
	var err error
	if el, ok := node.(*memory.Element); ok && r.config.SkipRoot {
		err = r.renderChildren(bw, el)
	} else {
		err = r.renderNode(bw, node)
	}
	if err != nil {
		return err
	}
	return bw.Flush()
}

func (r *Renderer) renderNode(w *bufio.Writer, node host.Node) error {
	switch n := node.(type) {
	case nil:
		return nil
	case *memory.Text:
		_, err := w.WriteString(escapeHTML(n.Data()))
		return err
	case *memory.Element:
		return r.renderElement(w, n)
	default:
		return fmt.Errorf("render: unsupported node type %T", node)
	}
}

func (r *Renderer) renderElement(w *bufio.Writer, el *memory.Element) error {
	tag := el.TagName()
	w.WriteByte('<')
	w.WriteString(tag)

	attrs := el.Attributes()
	if r.config.LiveState {
		applyLiveState(el, attrs)
	}
	for _, name := range sortedNames(attrs) {
		w.WriteByte(' ')
		w.WriteString(name)
		if v := attrs[name]; v != "" {
			w.WriteString(`="`)
			w.WriteString(escapeAttr(v))
			w.WriteByte('"')
		}
	}

	if isVoidElement(tag) {
		_, err := w.WriteString(">")
		return err
	}
	w.WriteByte('>')

	if r.config.LiveState && tag == "textarea" {
		w.WriteString(escapeHTML(el.Value()))
	} else if err := r.renderChildren(w, el); err != nil {
		return err
	}

	w.WriteString("</")
	w.WriteString(tag)
	_, err := w.WriteString(">")
	return err
}

func (r *Renderer) renderChildren(w *bufio.Writer, el *memory.Element) error {
	for _, child := range el.Children() {
		if err := r.renderNode(w, child); err != nil {
			return err
		}
	}
	return nil
}

// applyLiveState overlays the control properties onto a copy of the
// attribute map.
func applyLiveState(el *memory.Element, attrs map[string]string) {
	switch el.TagName() {
	case "input":
		if v := el.Value(); v != "" {
			attrs["value"] = v
		}
		if t := el.Type(); t != "" {
			attrs["type"] = t
		}
		if el.Checked() {
			attrs["checked"] = ""
		} else {
			delete(attrs, "checked")
		}
	case "button":
		if t := el.Type(); t != "" {
			attrs["type"] = t
		}
	}
}
