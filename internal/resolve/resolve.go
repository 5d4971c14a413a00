// Package resolve joins socket and process snapshots into unified,
// deterministically ordered records. The engine is pure: it performs no
// I/O and operates only on the snapshots it is handed.
package resolve

import (
	"sort"
	"strconv"

	"github.com/portkit/whoport/pkg/model"
)

// Snapshot carries the two enumerations one resolution pass works from.
type Snapshot struct {
	Sockets   []model.Socket
	Processes []model.Process
}

// linkIndex maps linking keys to process-table positions. Keys are unique
// system-wide at a point in time; should the table ever repeat one, the
// most recently enumerated process wins (best-effort, not an error).
func linkIndex(processes []model.Process) map[string]int {
	index := make(map[string]int)
	for i, p := range processes {
		for _, key := range p.Keys {
			index[key] = i
		}
	}
	return index
}

// Resolve produces one record per socket, in deterministic order. Sockets
// whose linking key matches no process resolve to the unknown sentinel;
// lookupUser maps a UID to a username (nil means always unknown).
func Resolve(snap Snapshot, lookupUser func(int) string) []model.Record {
	index := linkIndex(snap.Processes)

	byPID := make(map[int]*model.Process, len(snap.Processes))
	for i := range snap.Processes {
		byPID[snap.Processes[i].PID] = &snap.Processes[i]
	}

	records := make([]model.Record, 0, len(snap.Sockets))
	for _, s := range snap.Sockets {
		records = append(records, model.Record{
			Proto:      s.Proto,
			LocalAddr:  s.LocalAddr,
			LocalPort:  s.LocalPort,
			RemoteAddr: s.RemoteAddr,
			RemotePort: s.RemotePort,
			State:      s.State,
			Process:    identity(s, index, byPID, snap.Processes, lookupUser),
		})
	}

	sortRecords(records)
	return records
}

func identity(s model.Socket, index map[string]int, byPID map[int]*model.Process, processes []model.Process, lookupUser func(int) string) model.Identity {
	id := model.UnknownIdentity()

	var proc *model.Process
	if s.OwnerPID > 0 {
		// The platform connection table named the owner directly.
		id.PID = strconv.Itoa(s.OwnerPID)
		proc = byPID[s.OwnerPID]
	} else if s.Key != "" {
		if i, ok := index[s.Key]; ok {
			proc = &processes[i]
		}
	}

	uid := model.UIDNone
	if proc != nil {
		id.PID = strconv.Itoa(proc.PID)
		uid = proc.UID
		if proc.Name != "" {
			id.Name = proc.Name
		}
		if proc.Cmdline != "" {
			id.Cmdline = proc.Cmdline
		}
		if proc.Exe != "" {
			id.Exe = proc.Exe
		}
		if proc.Cwd != "" {
			id.Cwd = proc.Cwd
		}
	}

	// The socket table itself may carry the owning UID even when the
	// process link failed.
	if uid == model.UIDNone {
		uid = s.UID
	}
	if uid != model.UIDNone {
		id.UID = strconv.Itoa(uid)
		if lookupUser != nil {
			id.User = lookupUser(uid)
		}
	}

	return id
}

// sortRecords orders by ascending local port, then protocol, then local
// address, then remote endpoint, then PID. The trailing keys make the
// order total, so repeated passes over an unchanged snapshot agree.
func sortRecords(records []model.Record) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if a.LocalPort != b.LocalPort {
			return a.LocalPort < b.LocalPort
		}
		if a.Proto != b.Proto {
			return a.Proto < b.Proto
		}
		if a.LocalAddr != b.LocalAddr {
			return a.LocalAddr < b.LocalAddr
		}
		if a.RemoteAddr != b.RemoteAddr {
			return a.RemoteAddr < b.RemoteAddr
		}
		if a.RemotePort != b.RemotePort {
			return a.RemotePort < b.RemotePort
		}
		return a.Process.PID < b.Process.PID
	})
}
