//go:build linux

package netstat

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/portkit/whoport/pkg/model"
)

var procNetRoot = "/proc/net"

// Kernel state byte (include/net/tcp_states.h) to display string.
var stateMap = map[string]string{
	"01": "ESTABLISHED",
	"02": "SYN_SENT",
	"03": "SYN_RECV",
	"04": "FIN_WAIT1",
	"05": "FIN_WAIT2",
	"06": "TIME_WAIT",
	"07": "CLOSE",
	"08": "CLOSE_WAIT",
	"09": "LAST_ACK",
	"0A": "LISTEN",
	"0B": "CLOSING",
}

// Sockets reads /proc/net/{tcp,tcp6,udp,udp6} and returns every entry.
// Tables that cannot be opened are skipped; only all four failing is fatal.
func Sockets() ([]model.Socket, error) {
	tables := []struct {
		file  string
		proto model.Proto
	}{
		{"tcp", model.ProtoTCP},
		{"tcp6", model.ProtoTCP6},
		{"udp", model.ProtoUDP},
		{"udp6", model.ProtoUDP6},
	}

	var sockets []model.Socket
	failures := 0

	for _, t := range tables {
		path := procNetRoot + "/" + t.file
		f, err := os.Open(path)
		if err != nil {
			log.Debug().Str("table", path).Err(err).Msg("socket table unreadable")
			failures++
			continue
		}
		sockets = append(sockets, parseTable(f, t.proto)...)
		f.Close()
	}

	if failures == len(tables) {
		return nil, fmt.Errorf("%w: no table under %s is readable", ErrUnavailable, procNetRoot)
	}
	return sockets, nil
}

// parseTable parses one /proc/net table. Layout per line:
// sl local_address rem_address st tx_queue:rx_queue tr:tm->when retrnsmt uid timeout inode ...
func parseTable(r io.Reader, proto model.Proto) []model.Socket {
	var sockets []model.Socket

	scanner := bufio.NewScanner(r)
	scanner.Scan() // skip header

	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 10 {
			continue
		}

		localAddr, localPort := parseAddr(fields[1], proto.IPv6())
		remoteAddr, remotePort := parseAddr(fields[2], proto.IPv6())

		state, ok := stateMap[fields[3]]
		if !ok {
			state = "UNKNOWN"
		}

		uid := model.UIDNone
		if v, err := strconv.Atoi(fields[7]); err == nil {
			uid = v
		}

		// Inode 0 means the kernel holds the socket without a live owner
		// (TIME_WAIT and friends); it carries no linkable key.
		key := fields[9]
		if key == "0" {
			key = ""
		}

		sockets = append(sockets, model.Socket{
			Proto:      proto,
			LocalAddr:  localAddr,
			LocalPort:  localPort,
			RemoteAddr: remoteAddr,
			RemotePort: remotePort,
			State:      state,
			Key:        key,
			UID:        uid,
		})
	}

	return sockets
}

// parseAddr decodes a hex "ADDR:PORT" token from /proc/net.
func parseAddr(raw string, ipv6 bool) (string, int) {
	parts := strings.Split(raw, ":")
	if len(parts) < 2 {
		return "", 0
	}
	port, _ := strconv.ParseInt(parts[1], 16, 32)

	b, err := hex.DecodeString(parts[0])
	if err != nil {
		return "", int(port)
	}

	if ipv6 {
		if len(b) != 16 {
			return "::", int(port)
		}
		// /proc/net/tcp6 stores IPv6 as 4 little-endian 32-bit groups.
		// Reverse bytes within each 4-byte group.
		ip := make(net.IP, 16)
		for i := 0; i < 4; i++ {
			ip[i*4+0] = b[i*4+3]
			ip[i*4+1] = b[i*4+2]
			ip[i*4+2] = b[i*4+1]
			ip[i*4+3] = b[i*4+0]
		}
		return ip.String(), int(port)
	}

	if len(b) < 4 {
		return "", int(port)
	}
	ip := strconv.Itoa(int(b[3])) + "." +
		strconv.Itoa(int(b[2])) + "." +
		strconv.Itoa(int(b[1])) + "." +
		strconv.Itoa(int(b[0]))

	return ip, int(port)
}
