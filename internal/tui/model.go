// Package tui is an interactive browser over resolved endpoint records:
// a sortable, filterable table with a per-record detail view.
package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/portkit/whoport/pkg/model"
)

var (
	baseStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#585858")) // Dark Gray

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")). // White
			Background(lipgloss.Color("#7D56F4")). // Purple
			Padding(0, 1)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5f5fd7")). // Purple/Blue
			Bold(true)

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#767676")). // Dimmed Gray
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff5f5f")). // Soft red
			Bold(true)
)

type modelState int

const (
	stateList modelState = iota
	stateDetail
)

// RefreshFunc re-runs a full resolution pass.
type RefreshFunc func() ([]model.Record, error)

type MainModel struct {
	state     modelState
	table     table.Model
	input     textinput.Model
	viewport  viewport.Model
	records   []model.Record
	filtered  []model.Record
	refresh   RefreshFunc
	filtering bool
	statusMsg string
	sortCol   string
	sortDesc  bool
	width     int
	height    int
	quitting  bool
}

func newModel(records []model.Record, refresh RefreshFunc) MainModel {
	input := textinput.New()
	input.Placeholder = "filter by port, process, user, or address"
	input.PromptStyle = promptStyle
	input.Prompt = "/ "

	m := MainModel{
		state:   stateList,
		table:   newRecordTable(),
		input:   input,
		records: records,
		refresh: refresh,
		sortCol: "port",
	}
	m.applyFilter("")
	return m
}

func (m MainModel) Init() tea.Cmd {
	return nil
}

// Run blocks until the user quits the browser.
func Run(records []model.Record, refresh RefreshFunc) error {
	p := tea.NewProgram(newModel(records, refresh), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
