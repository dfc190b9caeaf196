// Package tui presents scan results as a terminal picker. It only reports what the
// user chose; scanning and relaunching stay with the caller.
package tui

import (
	"fmt"
	"strings"

	"relaunch/session"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Action is what the user asked for when the picker closed.
type Action int

const (
	ActionQuit Action = iota
	ActionRelaunch
	ActionRescan
)

// Choice is the picker's result. ID is set for ActionRelaunch.
type Choice struct {
	Action  Action
	ID      session.RecordID
	ShowLog bool // scan log was open when the picker closed
}

// Options carries state across picker runs.
type Options struct {
	Status    string // shown under the list, e.g. the last relaunch failure
	StatusErr bool
	ShowLog   bool
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3172CC"))
	infoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#3172CC"))
	headerStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)
	itemStyle   = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#4D89DB"))
	selectedStyle = itemStyle.
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	toggleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Underline(true)
	logStyle    = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	okStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Select  key.Binding
	Log     key.Binding
	Rescan  key.Binding
	Quit    key.Binding
	Numbers key.Binding
}

var keys = keyMap{
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Select:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "relaunch")),
	Numbers: key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "pick")),
	Log:     key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "scan log")),
	Rescan:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rescan")),
	Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

// Model is the bubbletea model of the picker.
type Model struct {
	processName string
	extraArgs   string
	entries     []session.Entry
	logLines    []string

	cursor  int
	showLog bool
	status  string
	isErr   bool
	choice  Choice
	width   int
}

// NewModel builds a picker over the session's latest scan.
func NewModel(sess *session.Session, opts Options) Model {
	return Model{
		processName: sess.Target().ProcessName,
		extraArgs:   sess.ExtraArgs(),
		entries:     sess.Records(),
		logLines:    sess.Result().Lines(),
		showLog:     opts.ShowLog,
		status:      opts.Status,
		isErr:       opts.StatusErr,
	}
}

// Run shows the picker until the user picks, rescans or quits.
func Run(sess *session.Session, opts Options) (Choice, error) {
	final, err := tea.NewProgram(NewModel(sess, opts), tea.WithAltScreen()).Run()
	if err != nil {
		return Choice{}, fmt.Errorf("run picker: %w", err)
	}
	return final.(Model).Choice(), nil
}

// Choice returns what the user picked.
func (m Model) Choice() Choice {
	c := m.choice
	c.ShowLog = m.showLog
	return c
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.choice = Choice{Action: ActionQuit}
			return m, tea.Quit
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
		case key.Matches(msg, keys.Log):
			m.showLog = !m.showLog
		case key.Matches(msg, keys.Rescan):
			m.choice = Choice{Action: ActionRescan}
			return m, tea.Quit
		case key.Matches(msg, keys.Select):
			if len(m.entries) == 0 {
				return m, nil
			}
			m.choice = Choice{Action: ActionRelaunch, ID: m.entries[m.cursor].ID}
			return m, tea.Quit
		case key.Matches(msg, keys.Numbers):
			n := int(msg.String()[0] - '0')
			if n > len(m.entries) {
				return m, nil
			}
			m.cursor = n - 1
			m.choice = Choice{Action: ActionRelaunch, ID: m.entries[m.cursor].ID}
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Relaunch "+m.processName) + "\n")
	b.WriteString(infoStyle.Render("Searching for processes named: "+m.processName) + "\n")
	args := m.extraArgs
	if args == "" {
		args = "None"
	}
	b.WriteString(infoStyle.Render("Current app args to append: "+args) + "\n")

	if len(m.entries) == 0 {
		b.WriteString(headerStyle.Render("No relaunchable instances found.") + "\n")
	} else {
		b.WriteString(headerStyle.Render("Found Instances:") + "\n")
		for i, e := range m.entries {
			style := itemStyle
			if i == m.cursor {
				style = selectedStyle
			}
			line := fmt.Sprintf("%d. %s", e.ID, e.Record.Label())
			b.WriteString(style.Render(line) + " " + dimStyle.Render(fmt.Sprintf("PID %d  %s", e.Record.PID, e.Record.ExecutablePath)) + "\n")
		}
	}

	if m.status != "" {
		style := okStyle
		if m.isErr {
			style = errStyle
		}
		b.WriteString("\n" + style.Render(m.status) + "\n")
	}

	toggle := "Show Scan Log Details"
	if m.showLog {
		toggle = "Hide Scan Log Details"
	}
	b.WriteString("\n" + toggleStyle.Render(toggle) + "\n")
	if m.showLog {
		log := logStyle
		if m.width > 4 {
			log = log.Width(m.width - 4)
		}
		b.WriteString(log.Render(strings.Join(m.logLines, "\n")) + "\n")
	}

	b.WriteString("\n" + dimStyle.Render(helpLine()))
	return b.String()
}

func helpLine() string {
	bindings := []key.Binding{keys.Up, keys.Down, keys.Select, keys.Numbers, keys.Log, keys.Rescan, keys.Quit}
	parts := make([]string, len(bindings))
	for i, kb := range bindings {
		parts[i] = kb.Help().Key + " " + kb.Help().Desc
	}
	return strings.Join(parts, " • ")
}
