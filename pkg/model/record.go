package model

import "strconv"

// Unknown is the sentinel every unresolvable identity field collapses to.
// Consumers render it as-is; it is never an empty string or a dropped column.
const Unknown = "unknown"

// Identity is the resolved owner of a socket. Every field is always
// populated: either the real value or Unknown.
type Identity struct {
	PID     string `json:"pid"`
	Name    string `json:"name"`
	UID     string `json:"uid"`
	User    string `json:"user"`
	Cmdline string `json:"cmdline"`
	Exe     string `json:"exe"`
	Cwd     string `json:"cwd"`
}

// UnknownIdentity returns an Identity with every field set to the sentinel.
func UnknownIdentity() Identity {
	return Identity{
		PID:     Unknown,
		Name:    Unknown,
		UID:     Unknown,
		User:    Unknown,
		Cmdline: Unknown,
		Exe:     Unknown,
		Cwd:     Unknown,
	}
}

// Record joins one socket with the identity of its owner.
type Record struct {
	Proto      Proto    `json:"proto"`
	LocalAddr  string   `json:"local_addr"`
	LocalPort  int      `json:"local_port"`
	RemoteAddr string   `json:"remote_addr"`
	RemotePort int      `json:"remote_port"`
	State      string   `json:"state"`
	Process    Identity `json:"process"`
}

// Local returns the local endpoint as addr:port.
func (r Record) Local() string {
	return joinHostPort(r.LocalAddr, r.LocalPort)
}

// Remote returns the remote endpoint as addr:port, or "-" for an
// unconnected socket.
func (r Record) Remote() string {
	if r.RemoteAddr == "" && r.RemotePort == 0 {
		return "-"
	}
	return joinHostPort(r.RemoteAddr, r.RemotePort)
}

func joinHostPort(addr string, port int) string {
	if addr == "" {
		addr = "-"
	}
	return addr + ":" + strconv.Itoa(port)
}
