package tui

import (
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/portkit/whoport/pkg/model"
)

func newRecordTable() table.Model {
	columns := []table.Column{
		{Title: "PORT", Width: 6},
		{Title: "PID", Width: 8},
		{Title: "USER", Width: 12},
		{Title: "STATE", Width: 12},
		{Title: "PROTO", Width: 6},
		{Title: "PROCESS", Width: 18},
		{Title: "LOCAL", Width: 24},
		{Title: "REMOTE", Width: 24},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(20),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true)
	t.SetStyles(styles)
	return t
}

type refreshMsg struct {
	records []model.Record
	err     error
}

func (m MainModel) doRefresh() tea.Cmd {
	return func() tea.Msg {
		if m.refresh == nil {
			return refreshMsg{records: m.records}
		}
		records, err := m.refresh()
		return refreshMsg{records: records, err: err}
	}
}

// applyFilter narrows the table to records matching the query substring
// against port, process name, user, or either address.
func (m *MainModel) applyFilter(query string) {
	query = strings.ToLower(strings.TrimSpace(query))

	if query == "" {
		m.filtered = m.records
	} else {
		m.filtered = nil
		for _, r := range m.records {
			if recordMatches(r, query) {
				m.filtered = append(m.filtered, r)
			}
		}
	}

	m.sortFiltered()
	m.table.SetRows(recordRows(m.filtered))
	m.table.SetCursor(0)
}

func recordMatches(r model.Record, query string) bool {
	if strconv.Itoa(r.LocalPort) == query || strconv.Itoa(r.RemotePort) == query {
		return true
	}
	for _, s := range []string{r.Process.Name, r.Process.User, r.LocalAddr, r.RemoteAddr, string(r.Proto), r.State} {
		if strings.Contains(strings.ToLower(s), query) {
			return true
		}
	}
	return false
}

func (m *MainModel) sortFiltered() {
	sort.SliceStable(m.filtered, func(i, j int) bool {
		a, b := m.filtered[i], m.filtered[j]
		var less bool
		switch m.sortCol {
		case "process":
			less = strings.ToLower(a.Process.Name) < strings.ToLower(b.Process.Name)
		case "user":
			less = strings.ToLower(a.Process.User) < strings.ToLower(b.Process.User)
		case "state":
			less = a.State < b.State
		default: // port
			if a.LocalPort != b.LocalPort {
				less = a.LocalPort < b.LocalPort
			} else {
				less = a.Proto < b.Proto
			}
		}
		if m.sortDesc {
			return !less
		}
		return less
	})
}

func (m *MainModel) setSort(col string) {
	if m.sortCol == col {
		m.sortDesc = !m.sortDesc
	} else {
		m.sortCol = col
		m.sortDesc = false
	}
	m.sortFiltered()
	m.table.SetRows(recordRows(m.filtered))
}

func recordRows(records []model.Record) []table.Row {
	rows := make([]table.Row, 0, len(records))
	for _, r := range records {
		state := r.State
		if state == "" {
			state = "-"
		}
		rows = append(rows, table.Row{
			strconv.Itoa(r.LocalPort),
			r.Process.PID,
			r.Process.User,
			state,
			string(r.Proto),
			r.Process.Name,
			r.Local(),
			r.Remote(),
		})
	}
	return rows
}
