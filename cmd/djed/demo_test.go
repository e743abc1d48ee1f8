package main

import (
	"strings"
	"testing"

	"github.com/vango-dev/djed/internal/errors"
	"github.com/vango-dev/djed/pkg/host/memory"
	"github.com/vango-dev/djed/pkg/scheduler"
)

func TestNewSessionUnknownDemo(t *testing.T) {
	_, err := newSession("tetris", scheduler.New())
	if got := errors.Code(err); got != "E140" {
		t.Fatalf("code = %q, want E140 (err: %v)", got, err)
	}
}

func TestDemoNames(t *testing.T) {
	if got := strings.Join(demoNames(), ","); got != "counter,todo" {
		t.Errorf("demoNames() = %q, want %q", got, "counter,todo")
	}
}

func TestCounterSession(t *testing.T) {
	s, err := newSession("counter", scheduler.New())
	if err != nil {
		t.Fatal(err)
	}

	want := `<div class="counter"><h1>Counter</h1><p class="count">0</p>` +
		`<span class="badge even">even</span>` +
		`<button type="button">+1</button><button disabled type="button">reset</button></div>`
	if got := s.HTML(); got != want {
		t.Fatalf("mounted HTML = %q, want %q", got, want)
	}

	journal := s.Tick()
	html := s.HTML()
	for _, part := range []string{
		`<p class="count">1</p>`,
		`<span class="badge odd">odd</span><em>1 is not divisible by two</em>`,
		`<button type="button">reset</button>`,
	} {
		if !strings.Contains(html, part) {
			t.Errorf("HTML after tick missing %q:\n%s", part, html)
		}
	}
	if strings.Contains(html, "even") {
		t.Errorf("even badge still rendered:\n%s", html)
	}
	if memory.Count(journal, memory.OpRemove) == 0 {
		t.Errorf("badge swap removed nothing: %v", journal)
	}
	if n := memory.Count(journal, memory.OpRemoveAttribute); n != 1 {
		t.Errorf("RemoveAttribute count = %d, want 1 (disabled): %v", n, journal)
	}

	// Back to even: the odd badge is torn down again.
	s.Tick()
	if html := s.HTML(); !strings.Contains(html, `<p class="count">2</p><span class="badge even">even</span><button`) {
		t.Errorf("HTML after second tick = %s", html)
	}

	s.destroy()
	if got := s.HTML(); got != "" {
		t.Errorf("HTML after destroy = %q, want empty", got)
	}
}

func TestTodoSession(t *testing.T) {
	s, err := newSession("todo", scheduler.New())
	if err != nil {
		t.Fatal(err)
	}

	want := `<section class="todo"><h1>Todo</h1><form>` +
		`<input placeholder="What needs doing?" type="text"><button disabled type="submit">Add</button>` +
		`</form><ul></ul></section>`
	if got := s.HTML(); got != want {
		t.Fatalf("mounted HTML = %q, want %q", got, want)
	}

	s.Tick()
	if html := s.HTML(); !strings.Contains(html, `<ul><li class="open"><input type="checkbox"><span>task 1</span></li></ul><footer>1 of 1 left</footer>`) {
		t.Errorf("HTML after first tick = %s", html)
	}

	journal := s.Tick()
	if html := s.HTML(); !strings.Contains(html, `<li class="done"><input checked type="checkbox">`) {
		t.Errorf("HTML after second tick = %s", html)
	}
	if !strings.Contains(s.HTML(), "0 of 1 left") {
		t.Errorf("footer not updated: %s", s.HTML())
	}
	if memory.Count(journal, memory.OpCreateElement) != 0 {
		t.Errorf("completing an item created elements: %v", journal)
	}
}

func TestTodoFormInput(t *testing.T) {
	s, err := newSession("todo", scheduler.New())
	if err != nil {
		t.Fatal(err)
	}
	form := s.root.ChildElement(0).ChildElement(1)
	input := form.ChildElement(0)

	input.UserInput("buy milk")
	if html := s.HTML(); !strings.Contains(html, `<button type="submit">Add</button>`) {
		t.Errorf("Add button still disabled after typing: %s", html)
	}

	form.Dispatch(&memory.Event{Kind: "submit", Node: form})
	html := s.HTML()
	if !strings.Contains(html, `<span>buy milk</span>`) {
		t.Errorf("submitted item missing: %s", html)
	}
	if input.Value() != "" {
		t.Errorf("input value = %q, want cleared", input.Value())
	}

	item := s.root.ChildElement(0).ChildElement(2).ChildElement(0)
	item.ChildElement(0).UserToggle()
	if got, _ := item.Attribute("class"); got != "done" {
		t.Errorf("item class = %q, want %q", got, "done")
	}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name    string
		journal []memory.Mutation
		want    string
	}{
		{"empty", nil, "no mutations"},
		{"single", []memory.Mutation{{Op: memory.OpSetData}}, "1 mutation (SetData 1)"},
		{
			"grouped in op order",
			[]memory.Mutation{{Op: memory.OpSetData}, {Op: memory.OpInsert}, {Op: memory.OpSetData}},
			"3 mutations (Insert 1, SetData 2)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := summarize(tt.journal); got != tt.want {
				t.Errorf("summarize() = %q, want %q", got, tt.want)
			}
		})
	}
}
