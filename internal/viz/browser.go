package viz

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/flavorsim/internal/experiment"
	"github.com/san-kum/flavorsim/internal/observable"
	"github.com/san-kum/flavorsim/internal/params"
	"github.com/san-kum/flavorsim/internal/telemetry"
)

const (
	stateMenu = iota
	stateParams
)

const historyLen = 40

// Browser lists the registered observables and, once one is chosen, the
// parameters it depends on. Editing a parameter re-evaluates the
// observable immediately.
type Browser struct {
	state, cursor int
	registry      *experiment.Registry
	names         []string
	opts          observable.Options
	view          params.Parameters
	obs           observable.Observable
	rows          []params.Parameter
	paramCursor   int
	editing       bool
	editBuf       string
	value         float64
	history       []float64
	err           error
	theme         int
	pal           palette
	width, height int
}

// NewBrowser opens a browser on a clone of base; base itself is never
// modified. opts are passed to every observable the user picks.
func NewBrowser(r *experiment.Registry, base params.Parameters, opts observable.Options) Browser {
	view := base.Clone()
	telemetry.Clones.Inc()
	return Browser{
		state:    stateMenu,
		registry: r,
		names:    r.List(),
		opts:     opts.Clone(),
		view:     view,
		pal:      newPalette(Themes[0]),
		width:    80, height: 24,
	}
}

// Select jumps straight to the parameter screen of the named observable.
func (m Browser) Select(name string) (Browser, error) {
	for i, n := range m.names {
		if n == name {
			m.cursor = i
			return m.open(name)
		}
	}
	return m, fmt.Errorf("%w: %s", experiment.ErrUnknownObservable, name)
}

// Parameters returns the view edits are applied to.
func (m Browser) Parameters() params.Parameters { return m.view }

// Value is the latest evaluation of the chosen observable.
func (m Browser) Value() float64 { return m.value }

func (m Browser) Init() tea.Cmd { return nil }

func (m Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	}
	return m, nil
}

func (m Browser) handleKey(msg tea.KeyMsg) (Browser, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "t":
		if !m.editing {
			m.theme = (m.theme + 1) % len(Themes)
			m.pal = newPalette(Themes[m.theme])
			return m, nil
		}
	}
	switch m.state {
	case stateMenu:
		return m.menuKey(msg)
	case stateParams:
		return m.paramsKey(msg)
	}
	return m, nil
}

func (m Browser) menuKey(msg tea.KeyMsg) (Browser, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.names)-1 {
			m.cursor++
		}
	case "enter", " ":
		if len(m.names) > 0 {
			m, _ = m.open(m.names[m.cursor])
		}
	}
	return m, nil
}

func (m Browser) open(name string) (Browser, error) {
	o, err := m.registry.Make(name, m.view, m.opts)
	m.state, m.paramCursor, m.history = stateParams, 0, nil
	m.obs, m.rows, m.err = o, nil, err
	if err != nil {
		return m, err
	}
	for id := range o.User().IDs() {
		p, err := m.view.ByID(id)
		if err != nil {
			m.err = err
			return m, err
		}
		m.rows = append(m.rows, p)
	}
	m.evaluate()
	return m, nil
}

func (m *Browser) evaluate() {
	if m.obs == nil {
		return
	}
	m.value = telemetry.Evaluate(m.obs)
	m.history = append(m.history, m.value)
	if len(m.history) > historyLen {
		m.history = m.history[len(m.history)-historyLen:]
	}
}

func (m Browser) paramsKey(msg tea.KeyMsg) (Browser, tea.Cmd) {
	if m.editing {
		switch msg.String() {
		case "enter":
			v, err := strconv.ParseFloat(strings.TrimSpace(m.editBuf), 64)
			if err != nil {
				m.err = fmt.Errorf("invalid number %q", m.editBuf)
			} else {
				m.rows[m.paramCursor].Set(v)
				m.err = nil
				m.evaluate()
			}
			m.editing, m.editBuf = false, ""
		case "esc":
			m.editing, m.editBuf = false, ""
		case "backspace":
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		default:
			if len(msg.String()) == 1 {
				c := msg.String()[0]
				if (c >= '0' && c <= '9') || c == '.' || c == '-' || c == '+' || c == 'e' || c == 'E' {
					m.editBuf += string(c)
				}
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		m.state, m.obs, m.rows, m.err = stateMenu, nil, nil, nil
	case "up", "k":
		if m.paramCursor > 0 {
			m.paramCursor--
		}
	case "down", "j":
		if m.paramCursor < len(m.rows)-1 {
			m.paramCursor++
		}
	case "enter", " ":
		if len(m.rows) > 0 {
			m.editing = true
			m.editBuf = strconv.FormatFloat(m.rows[m.paramCursor].Value(), 'g', -1, 64)
		}
	case "left", "h":
		m.nudge(-1)
	case "right", "l":
		m.nudge(1)
	case "r":
		if len(m.rows) > 0 {
			p := m.rows[m.paramCursor]
			p.Set(p.Central())
			m.evaluate()
		}
	case "R":
		m.view.Reset()
		m.evaluate()
	}
	return m, nil
}

func (m *Browser) nudge(dir float64) {
	if len(m.rows) == 0 {
		return
	}
	p := m.rows[m.paramCursor]
	step := (p.Max() - p.Min()) * 0.05
	if step == 0 {
		return
	}
	if step < 0 {
		step = -step
	}
	p.Set(p.Value() + dir*step)
	m.evaluate()
}

func (m Browser) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case stateParams:
		return m.viewParams()
	}
	return ""
}

func (m Browser) viewMenu() string {
	var b strings.Builder
	pal := m.pal
	b.WriteString("\n\n    " + pal.title.Render("FLAVORSIM") + "\n    " + pal.subtle.Render("parameter browser") + "\n    " + pal.Separator(25) + "\n\n")
	for i, name := range m.names {
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("    %s %s\n", pal.cursor.Render("▸"), pal.selected.Render(name)))
		} else {
			b.WriteString(fmt.Sprintf("      %s\n", pal.faint.Render(name)))
		}
	}
	b.WriteString("\n    " + pal.KeyHints("j/k", "navigate", "enter", "select", "t", Themes[m.theme].Name, "q", "quit") + "\n")
	return b.String()
}

func (m Browser) viewParams() string {
	var b strings.Builder
	pal := m.pal
	name := m.names[m.cursor]
	if m.obs != nil {
		name = m.obs.Name()
	}
	b.WriteString("\n\n    " + pal.title.Render(name))
	if len(m.opts) > 0 {
		b.WriteString(" " + pal.subtle.Render(m.opts.String()))
	}
	b.WriteString("\n    " + pal.Separator(25) + "\n\n")

	if m.obs != nil {
		b.WriteString(fmt.Sprintf("    %s %s\n", pal.subtle.Render("value"), pal.alt.Render(fmt.Sprintf("%.6g", m.value))))
		b.WriteString("          " + pal.Sparkline(m.history, historyLen) + "\n\n")
	}

	width := 10
	for _, p := range m.rows {
		width = max(width, len(p.Name()))
	}
	for i, p := range m.rows {
		val := fmt.Sprintf("%12.6g", p.Value())
		if m.editing && i == m.paramCursor {
			val = fmt.Sprintf("%12s", m.editBuf+"_")
		}
		bar := pal.RangeBar(p.Value(), p.Min(), p.Max(), 16)
		label := fmt.Sprintf("%-*s", width, p.Name())
		if i == m.paramCursor {
			b.WriteString(fmt.Sprintf("    %s %s %s %s\n", pal.cursor.Render("▸"), pal.selected.Render(label), pal.alt.Render(val), bar))
		} else {
			b.WriteString(fmt.Sprintf("      %s %s %s\n", pal.faint.Render(label), pal.subtle.Render(val), bar))
		}
	}

	if m.err != nil {
		b.WriteString("\n    " + pal.err.Render(m.err.Error()) + "\n")
	}
	b.WriteString("\n    " + pal.KeyHints("j/k", "select", "h/l", "adjust", "enter", "edit", "r/R", "reset", "esc", "back") + "\n")
	return b.String()
}

// RunBrowser starts the browser full screen, optionally on one observable.
func RunBrowser(r *experiment.Registry, base params.Parameters, opts observable.Options, observableName string) error {
	m := NewBrowser(r, base, opts)
	if observableName != "" {
		var err error
		if m, err = m.Select(observableName); err != nil {
			return err
		}
	}
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
