package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/vango-dev/djed/internal/errors"
	"github.com/vango-dev/djed/pkg/djed"
	"github.com/vango-dev/djed/pkg/host"
	"github.com/vango-dev/djed/pkg/host/memory"
	"github.com/vango-dev/djed/pkg/render"
	"github.com/vango-dev/djed/pkg/scheduler"
	"github.com/vango-dev/djed/pkg/vdom"
)

// tick advances a demo by one step.
type tick struct{}

// session is a demo application mounted into a memory document.
type session struct {
	name    string
	doc     *memory.Document
	root    *memory.Element
	tick    func()
	destroy func()
}

var demos = map[string]func(sched *scheduler.Scheduler, root host.Element) (tick func(), destroy func()){
	"counter": func(sched *scheduler.Scheduler, root host.Element) (func(), func()) {
		scope := djed.NewApp(sched, newCounterApp).MountToElement(root, counterProps{Step: 1})
		return func() { scope.Send(tick{}) }, scope.Destroy
	},
	"todo": func(sched *scheduler.Scheduler, root host.Element) (func(), func()) {
		scope := djed.NewApp(sched, newTodoApp).MountToElement(root, todoProps{Title: "Todo"})
		return func() { scope.Send(tick{}) }, scope.Destroy
	},
}

func demoNames() []string {
	names := make([]string, 0, len(demos))
	for name := range demos {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func newSession(name string, sched *scheduler.Scheduler) (*session, error) {
	mount, ok := demos[name]
	if !ok {
		return nil, errors.New("E140").
			WithDetail("No demo named " + strconv.Quote(name)).
			WithSuggestion("Available demos: " + strings.Join(demoNames(), ", "))
	}
	doc := memory.NewDocument()
	root := doc.NewElement("body")
	s := &session{name: name, doc: doc, root: root}
	s.tick, s.destroy = mount(sched, root)
	return s, nil
}

// HTML renders the mounted tree with live form state.
func (s *session) HTML() string {
	html, err := render.NewRenderer(render.Config{LiveState: true, SkipRoot: true}).RenderToString(s.root)
	if err != nil {
		return "<!-- " + err.Error() + " -->"
	}
	return html
}

// Tick sends one tick and returns the mutations it caused.
func (s *session) Tick() []memory.Mutation {
	s.doc.ResetJournal()
	s.tick()
	return s.doc.Journal()
}

// summarize formats a journal as "N mutations (Op n, ...)".
func summarize(journal []memory.Mutation) string {
	if len(journal) == 0 {
		return "no mutations"
	}
	counts := map[memory.MutationOp]int{}
	var ops []memory.MutationOp
	for _, m := range journal {
		if counts[m.Op] == 0 {
			ops = append(ops, m.Op)
		}
		counts[m.Op]++
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i] < ops[j] })

	parts := make([]string, len(ops))
	for i, op := range ops {
		parts[i] = fmt.Sprintf("%s %d", op, counts[op])
	}
	noun := "mutations"
	if len(journal) == 1 {
		noun = "mutation"
	}
	return fmt.Sprintf("%d %s (%s)", len(journal), noun, strings.Join(parts, ", "))
}

// ---------------------------------------------------------------------------
// Counter
// ---------------------------------------------------------------------------

type counterProps struct {
	Step int
}

type reset struct{}

type counterApp struct {
	scope *djed.Scope[*counterApp, counterProps]
	props counterProps
	count int
}

func newCounterApp(props counterProps, scope *djed.Scope[*counterApp, counterProps]) *counterApp {
	return &counterApp{scope: scope, props: props}
}

func (c *counterApp) Change(props counterProps) bool {
	if props == c.props {
		return false
	}
	c.props = props
	return true
}

func (c *counterApp) Update(msg any) bool {
	switch msg.(type) {
	case tick:
		c.count += c.props.Step
	case reset:
		if c.count == 0 {
			return false
		}
		c.count = 0
	default:
		return false
	}
	return true
}

func (c *counterApp) View() vdom.VNode {
	even := c.count%2 == 0
	return vdom.Div(vdom.Class("counter"),
		vdom.H1("Counter"),
		vdom.P(vdom.Class("count"), strconv.Itoa(c.count)),
		vdom.IfElse(even,
			djed.Child(newEvenBadge, badgeProps{Count: c.count}, nil, ""),
			djed.Child(newOddBadge, badgeProps{Count: c.count}, nil, ""),
		),
		vdom.Button(vdom.Type("button"),
			vdom.OnClick(c.scope.Callback(func(host.Event) any { return tick{} })),
			"+"+strconv.Itoa(c.props.Step)),
		vdom.Button(vdom.Type("button"), vdom.Disabled(c.count == 0),
			vdom.OnClick(c.scope.Callback(func(host.Event) any { return reset{} })),
			"reset"),
	)
}

type badgeProps struct {
	Count int
}

// evenBadge and oddBadge are distinct component types so a parity change
// swaps the mounted child instead of updating it.
type evenBadge struct{ props badgeProps }

func newEvenBadge(props badgeProps, _ *djed.Scope[*evenBadge, badgeProps]) *evenBadge {
	return &evenBadge{props: props}
}

func (b *evenBadge) Change(props badgeProps) bool { b.props = props; return true }

func (b *evenBadge) View() vdom.VNode {
	return vdom.Span(vdom.Class("badge", "even"), "even")
}

type oddBadge struct{ props badgeProps }

func newOddBadge(props badgeProps, _ *djed.Scope[*oddBadge, badgeProps]) *oddBadge {
	return &oddBadge{props: props}
}

func (b *oddBadge) Change(props badgeProps) bool { b.props = props; return true }

func (b *oddBadge) View() vdom.VNode {
	return vdom.Fragment(
		vdom.Span(vdom.Class("badge", "odd"), "odd"),
		vdom.Em(fmt.Sprintf("%d is not divisible by two", b.props.Count)),
	)
}

// ---------------------------------------------------------------------------
// Todo
// ---------------------------------------------------------------------------

type todoProps struct {
	Title string
}

type todoItem struct {
	Title string
	Done  bool
}

type (
	draftChanged struct{ text string }
	addItem      struct{}
	toggleItem   struct{ index int }
)

type todoApp struct {
	scope *djed.Scope[*todoApp, todoProps]
	props todoProps
	items []todoItem
	draft string
	ticks int
}

func newTodoApp(props todoProps, scope *djed.Scope[*todoApp, todoProps]) *todoApp {
	return &todoApp{scope: scope, props: props}
}

func (t *todoApp) Change(props todoProps) bool {
	if props == t.props {
		return false
	}
	t.props = props
	return true
}

func (t *todoApp) Update(msg any) bool {
	switch m := msg.(type) {
	case draftChanged:
		t.draft = m.text
	case addItem:
		title := strings.TrimSpace(t.draft)
		if title == "" {
			return false
		}
		t.items = append(t.items, todoItem{Title: title})
		t.draft = ""
	case toggleItem:
		if m.index < 0 || m.index >= len(t.items) {
			return false
		}
		t.items[m.index].Done = !t.items[m.index].Done
	case tick:
		// Odd ticks type and submit a new item, even ticks complete the
		// oldest open one.
		t.ticks++
		if t.ticks%2 == 1 {
			t.draft = fmt.Sprintf("task %d", len(t.items)+1)
			return t.Update(addItem{})
		}
		for i := range t.items {
			if !t.items[i].Done {
				t.items[i].Done = true
				return true
			}
		}
		return false
	default:
		return false
	}
	return true
}

func (t *todoApp) remaining() int {
	n := 0
	for _, item := range t.items {
		if !item.Done {
			n++
		}
	}
	return n
}

func (t *todoApp) View() vdom.VNode {
	return vdom.Section(vdom.Class("todo"),
		vdom.H1(t.props.Title),
		vdom.Form(
			vdom.OnSubmit(t.scope.Callback(func(host.Event) any { return addItem{} })),
			vdom.Input(vdom.Type("text"), vdom.Placeholder("What needs doing?"), vdom.Value(t.draft),
				vdom.OnInput(t.scope.Callback(func(ev host.Event) any {
					return draftChanged{text: eventValue(ev)}
				}))),
			vdom.Button(vdom.Type("submit"), vdom.Disabled(t.draft == ""), "Add"),
		),
		vdom.Ul(vdom.Range(t.items, func(item todoItem, i int) vdom.VNode {
			return vdom.Li(vdom.Class(itemClass(item.Done)),
				vdom.Input(vdom.Type("checkbox"), vdom.Checked(item.Done),
					vdom.OnChange(t.scope.Callback(func(host.Event) any { return toggleItem{index: i} }))),
				vdom.Span(item.Title),
			)
		})),
		vdom.When(len(t.items) > 0, func() vdom.VNode {
			return vdom.Footer(vdom.Textf("%d of %d left", t.remaining(), len(t.items)))
		}),
	)
}

func itemClass(done bool) string {
	if done {
		return "done"
	}
	return "open"
}

func eventValue(ev host.Event) string {
	if e, ok := ev.(*memory.Event); ok {
		return e.Value
	}
	if c, ok := ev.Target().(host.ValueControl); ok {
		return c.Value()
	}
	return ""
}
