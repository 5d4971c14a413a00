package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portkit/whoport/pkg/model"
)

func browserRecords() []model.Record {
	return []model.Record{
		{Proto: model.ProtoTCP, LocalAddr: "0.0.0.0", LocalPort: 22, State: "LISTEN",
			Process: model.Identity{PID: "9", Name: "sshd", User: "root", UID: "0", Cmdline: "sshd", Exe: "/usr/sbin/sshd", Cwd: "/"}},
		{Proto: model.ProtoUDP, LocalAddr: "127.0.0.53", LocalPort: 53, State: "CLOSE",
			Process: model.Identity{PID: "101", Name: "systemd-resolved", User: "systemd-resolve", UID: "101", Cmdline: "resolved", Exe: "/x", Cwd: "/"}},
		{Proto: model.ProtoTCP6, LocalAddr: "::", LocalPort: 8080, State: "LISTEN",
			Process: model.UnknownIdentity()},
	}
}

func TestApplyFilterByPortAndName(t *testing.T) {
	m := newModel(browserRecords(), nil)

	m.applyFilter("53")
	require.Len(t, m.filtered, 1)
	assert.Equal(t, "systemd-resolved", m.filtered[0].Process.Name)

	m.applyFilter("sshd")
	require.Len(t, m.filtered, 1)
	assert.Equal(t, 22, m.filtered[0].LocalPort)

	m.applyFilter("")
	assert.Len(t, m.filtered, 3)
}

func TestSetSortTogglesDirection(t *testing.T) {
	m := newModel(browserRecords(), nil)

	m.setSort("process")
	require.Len(t, m.filtered, 3)
	assert.Equal(t, "sshd", m.filtered[0].Process.Name)

	m.setSort("process")
	assert.Equal(t, model.Unknown, m.filtered[0].Process.Name)
}

func TestRecordRowsRenderUnknownAndDashState(t *testing.T) {
	rows := recordRows([]model.Record{{Proto: model.ProtoUDP6, LocalAddr: "::", LocalPort: 5353, Process: model.UnknownIdentity()}})
	require.Len(t, rows, 1)
	assert.Equal(t, "5353", rows[0][0])
	assert.Equal(t, model.Unknown, rows[0][1])
	assert.Equal(t, "-", rows[0][3])
}
