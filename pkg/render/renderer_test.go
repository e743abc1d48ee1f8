package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vango-dev/djed/pkg/host"
	"github.com/vango-dev/djed/pkg/host/memory"
)

func build(t *testing.T) (*memory.Document, *memory.Element) {
	t.Helper()
	doc := memory.NewDocument()
	root := doc.NewElement("div")
	if err := root.SetAttribute("id", "app"); err != nil {
		t.Fatal(err)
	}
	if err := root.SetAttribute("class", "card"); err != nil {
		t.Fatal(err)
	}
	p := doc.NewElement("p")
	if err := p.AppendChild(doc.NewText("a < b & c")); err != nil {
		t.Fatal(err)
	}
	if err := root.AppendChild(p); err != nil {
		t.Fatal(err)
	}
	input := doc.NewElement("input")
	if err := input.SetAttribute("disabled", ""); err != nil {
		t.Fatal(err)
	}
	if err := root.AppendChild(input); err != nil {
		t.Fatal(err)
	}
	return doc, root
}

func TestHTML(t *testing.T) {
	_, root := build(t)
	want := `<div class="card" id="app"><p>a &lt; b &amp; c</p><input disabled></div>`
	if got := HTML(root); got != want {
		t.Errorf("HTML() = %q, want %q", got, want)
	}
}

func TestHTMLNil(t *testing.T) {
	if got := HTML(nil); got != "" {
		t.Errorf("HTML(nil) = %q, want empty", got)
	}
}

type foreignNode struct{}

func (foreignNode) Parent() host.Element        { return nil }
func (foreignNode) OwnerDocument() host.Document { return nil }

func TestRenderUnsupportedNode(t *testing.T) {
	_, err := NewRenderer(Config{}).RenderToString(foreignNode{})
	if err == nil {
		t.Fatal("expected error for foreign node")
	}
	if got := HTML(foreignNode{}); !strings.HasPrefix(got, "<!--") {
		t.Errorf("HTML(foreign) = %q, want comment", got)
	}
}

func TestWrite(t *testing.T) {
	_, root := build(t)
	var buf bytes.Buffer
	if err := Write(&buf, root); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if buf.String() != HTML(root) {
		t.Errorf("Write() = %q, want %q", buf.String(), HTML(root))
	}
}

func TestSkipRoot(t *testing.T) {
	doc := memory.NewDocument()
	root := doc.NewElement("body")
	_ = root.AppendChild(doc.NewText("x"))
	_ = root.AppendChild(doc.NewElement("br"))

	got, err := NewRenderer(Config{SkipRoot: true}).RenderToString(root)
	if err != nil {
		t.Fatal(err)
	}
	if got != "x<br>" {
		t.Errorf("got %q, want %q", got, "x<br>")
	}
}

func TestLiveState(t *testing.T) {
	doc := memory.NewDocument()
	root := doc.NewElement("form")
	input := doc.NewElement("input")
	_ = input.SetAttribute("value", "initial")
	_ = root.AppendChild(input)
	area := doc.NewElement("textarea")
	_ = area.AppendChild(doc.NewText("ignored"))
	_ = root.AppendChild(area)

	input.SetType("checkbox")
	input.UserInput("typed")
	input.UserToggle()
	area.SetValue("notes")

	plain := HTML(root)
	if want := `<form><input value="initial"><textarea>ignored</textarea></form>`; plain != want {
		t.Errorf("plain = %q, want %q", plain, want)
	}

	live, err := NewRenderer(Config{LiveState: true}).RenderToString(root)
	if err != nil {
		t.Fatal(err)
	}
	want := `<form><input checked type="checkbox" value="typed"><textarea>notes</textarea></form>`
	if live != want {
		t.Errorf("live = %q, want %q", live, want)
	}
}
