package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wrap"

	"github.com/portkit/whoport/pkg/model"
)

func (m MainModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("whoport"))
	b.WriteString("\n")

	if m.state == stateDetail {
		b.WriteString(baseStyle.Render(m.viewport.View()))
		b.WriteString("\n")
		b.WriteString(footerStyle.Render("↑/↓ scroll · esc back · ctrl+c quit"))
		return b.String()
	}

	if m.filtering || m.input.Value() != "" {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	b.WriteString(baseStyle.Render(m.table.View()))
	b.WriteString("\n")

	if m.statusMsg != "" {
		b.WriteString(errorStyle.Render(m.statusMsg))
		b.WriteString("\n")
	}

	footer := fmt.Sprintf("%d endpoints · / filter · enter detail · r refresh · P/N/U/S sort · q quit", len(m.filtered))
	b.WriteString(footerStyle.Render(footer))

	return b.String()
}

func (m MainModel) detailContent(r model.Record) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Port %d/%s\n\n", r.LocalPort, r.Proto)
	fmt.Fprintf(&b, "Local Address:   %s\n", r.Local())
	fmt.Fprintf(&b, "Remote Address:  %s\n", r.Remote())
	state := r.State
	if state == "" {
		state = "-"
	}
	fmt.Fprintf(&b, "State:           %s\n", state)
	fmt.Fprintf(&b, "Process:         %s (PID: %s)\n", r.Process.Name, r.Process.PID)
	fmt.Fprintf(&b, "UID:             %s (User: %s)\n", r.Process.UID, r.Process.User)
	if r.Process.Cmdline != model.Unknown {
		fmt.Fprintf(&b, "Command:         %s\n", r.Process.Cmdline)
	}
	if r.Process.Exe != model.Unknown {
		fmt.Fprintf(&b, "Executable:      %s\n", r.Process.Exe)
	}
	if r.Process.Cwd != model.Unknown {
		fmt.Fprintf(&b, "Working Dir:     %s\n", r.Process.Cwd)
	}

	width := m.viewport.Width
	if width <= 0 {
		width = 80
	}
	return wrap.String(b.String(), width)
}
