//go:build !linux

package netstat

import (
	"fmt"
	"strconv"
	"strings"
	"syscall"

	gnet "github.com/shirou/gopsutil/v3/net"

	"github.com/portkit/whoport/pkg/model"
)

// Sockets enumerates open inet sockets through gopsutil. These platforms
// report the owning PID straight from the connection table, so records come
// back with OwnerPID set and a synthetic pid/fd linking key.
func Sockets() ([]model.Socket, error) {
	conns, err := gnet.Connections("inet")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	sockets := make([]model.Socket, 0, len(conns))
	for _, c := range conns {
		var proto model.Proto
		ipv6 := c.Family != syscall.AF_INET
		switch {
		case c.Type == syscall.SOCK_STREAM && !ipv6:
			proto = model.ProtoTCP
		case c.Type == syscall.SOCK_STREAM:
			proto = model.ProtoTCP6
		case c.Type == syscall.SOCK_DGRAM && !ipv6:
			proto = model.ProtoUDP
		case c.Type == syscall.SOCK_DGRAM:
			proto = model.ProtoUDP6
		default:
			continue
		}

		state := c.Status
		if state == "NONE" {
			state = ""
		}

		uid := model.UIDNone
		if len(c.Uids) > 0 {
			uid = int(c.Uids[0])
		}

		// An unconnected socket keeps an empty remote endpoint rather
		// than a normalized wildcard.
		remoteAddr := ""
		if c.Raddr.IP != "" || c.Raddr.Port != 0 {
			remoteAddr = normalizeAddr(c.Raddr.IP, ipv6)
		}

		sockets = append(sockets, model.Socket{
			Proto:      proto,
			LocalAddr:  normalizeAddr(c.Laddr.IP, ipv6),
			LocalPort:  int(c.Laddr.Port),
			RemoteAddr: remoteAddr,
			RemotePort: int(c.Raddr.Port),
			State:      state,
			Key:        strconv.Itoa(int(c.Pid)) + "/" + strconv.Itoa(int(c.Fd)),
			OwnerPID:   int(c.Pid),
			UID:        uid,
		})
	}

	return sockets, nil
}

// normalizeAddr maps the wildcard spellings gopsutil passes through ("*",
// empty) onto the same forms the Linux tables produce.
func normalizeAddr(ip string, ipv6 bool) string {
	if ip == "*" || ip == "" {
		if ipv6 {
			return "::"
		}
		return "0.0.0.0"
	}
	return strings.Trim(ip, "[]")
}
