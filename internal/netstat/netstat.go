// Package netstat enumerates the kernel's open TCP and UDP sockets across
// both address families. Each platform contributes its own Sockets
// implementation behind the same signature.
package netstat

import "errors"

// ErrUnavailable is returned when no socket table could be read at all.
// A single unreadable table (say UDP6 on a kernel without IPv6) is not an
// error; the readable tables still contribute records.
var ErrUnavailable = errors.New("socket tables unavailable")
