package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(max(5, m.height-6))
		m.viewport.Width = max(20, m.width-4)
		m.viewport.Height = max(5, m.height-6)
		return m, nil

	case refreshMsg:
		if msg.err != nil {
			m.statusMsg = msg.err.Error()
			return m, nil
		}
		m.records = msg.records
		m.statusMsg = ""
		m.applyFilter(m.input.Value())
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			return m.updateFiltering(msg)
		}
		if m.state == stateDetail {
			return m.updateDetail(msg)
		}
		return m.updateList(msg)
	}

	return m, nil
}

func (m MainModel) updateFiltering(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.filtering = false
		m.input.Blur()
		return m, nil
	case "esc":
		m.filtering = false
		m.input.Blur()
		m.input.SetValue("")
		m.applyFilter("")
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.applyFilter(m.input.Value())
	return m, cmd
}

func (m MainModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "/":
		m.filtering = true
		m.input.Focus()
		return m, nil
	case "r":
		m.statusMsg = "refreshing..."
		return m, m.doRefresh()
	case "P":
		m.setSort("port")
		return m, nil
	case "N":
		m.setSort("process")
		return m, nil
	case "U":
		m.setSort("user")
		return m, nil
	case "S":
		m.setSort("state")
		return m, nil
	case "enter":
		if len(m.filtered) > 0 && m.table.Cursor() < len(m.filtered) {
			m.state = stateDetail
			m.viewport.SetContent(m.detailContent(m.filtered[m.table.Cursor()]))
			m.viewport.GotoTop()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m MainModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.state = stateList
		return m, nil
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}
