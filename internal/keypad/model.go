package keypad

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

type keyMap struct {
	Digit     key.Binding
	Add       key.Binding
	Sub       key.Binding
	Mul       key.Binding
	Div       key.Binding
	Calculate key.Binding
	Clear     key.Binding
	Quit      key.Binding
}

var keys = keyMap{
	Digit: key.NewBinding(
		key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "."),
		key.WithHelp("0-9 .", "digit"),
	),
	Add: key.NewBinding(key.WithKeys("+"), key.WithHelp("+", "add")),
	Sub: key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "sub")),
	Mul: key.NewBinding(key.WithKeys("*", "x", "×"), key.WithHelp("* x", "mul")),
	Div: key.NewBinding(key.WithKeys("/", "÷"), key.WithHelp("/", "div")),
	Calculate: key.NewBinding(
		key.WithKeys("enter", "="),
		key.WithHelp("enter =", "calculate"),
	),
	Clear: key.NewBinding(key.WithKeys("c", "esc"), key.WithHelp("c esc", "clear")),
	Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

func (k keyMap) help() []key.Binding {
	return []key.Binding{k.Digit, k.Add, k.Sub, k.Mul, k.Div, k.Calculate, k.Clear, k.Quit}
}

var displayStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(0, 1).
	Width(28).
	Align(lipgloss.Right).
	Bold(true)

var (
	errorStyle = displayStyle.Foreground(lipgloss.Color("9"))
	exprStyle  = lipgloss.NewStyle().Faint(true).Width(32).Align(lipgloss.Right)
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model is a bubbletea model driving a Keypad from key presses.
type Model struct {
	pad *Keypad
	log *zap.Logger
	// last is the most recently calculated expression.
	last string
}

// NewModel creates a model with a cleared keypad. log may be nil.
func NewModel(log *zap.Logger) Model {
	if log == nil {
		log = zap.NewNop()
	}
	return Model{pad: New(), log: log}
}

// Keypad returns the model's keypad.
func (m Model) Keypad() *Keypad {
	return m.pad
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(km, keys.Quit):
		return m, tea.Quit
	case key.Matches(km, keys.Digit):
		m.pad.Digit(km.String())
	case key.Matches(km, keys.Add):
		m.pad.Operator('+')
	case key.Matches(km, keys.Sub):
		m.pad.Operator('-')
	case key.Matches(km, keys.Mul):
		m.pad.Operator('×')
	case key.Matches(km, keys.Div):
		m.pad.Operator('÷')
	case key.Matches(km, keys.Calculate):
		if !m.pad.CanCalculate() {
			break
		}
		expr := m.pad.Display()
		r, ok := m.pad.Calculate()
		m.last = expr + " ="
		m.log.Debug("calculated", zap.String("expr", expr), zap.Float64("result", r), zap.Bool("ok", ok))
	case key.Matches(km, keys.Clear):
		m.pad.Clear()
		m.last = ""
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(exprStyle.Render(m.last))
	b.WriteByte('\n')
	if m.pad.Err() {
		b.WriteString(errorStyle.Render(m.pad.Display()))
	} else {
		b.WriteString(displayStyle.Render(m.pad.Display()))
	}
	b.WriteByte('\n')
	var help []string
	for _, k := range keys.help() {
		h := k.Help()
		help = append(help, h.Key+" "+h.Desc)
	}
	b.WriteString(helpStyle.Render(strings.Join(help, " • ")))
	b.WriteByte('\n')
	return b.String()
}
