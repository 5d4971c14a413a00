package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordEndpoints(t *testing.T) {
	r := Record{LocalAddr: "127.0.0.1", LocalPort: 8080}
	assert.Equal(t, "127.0.0.1:8080", r.Local())
	assert.Equal(t, "-", r.Remote(), "unconnected socket renders a dash")

	r.RemoteAddr = "10.0.0.2"
	r.RemotePort = 443
	assert.Equal(t, "10.0.0.2:443", r.Remote())
}

func TestUnknownIdentityFillsEveryField(t *testing.T) {
	id := UnknownIdentity()
	for _, field := range []string{id.PID, id.Name, id.UID, id.User, id.Cmdline, id.Exe, id.Cwd} {
		assert.Equal(t, Unknown, field)
	}
}

func TestProtoIPv6(t *testing.T) {
	assert.False(t, ProtoTCP.IPv6())
	assert.True(t, ProtoTCP6.IPv6())
	assert.False(t, ProtoUDP.IPv6())
	assert.True(t, ProtoUDP6.IPv6())
}
