//go:build !linux

package procsnap

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/process"

	"github.com/portkit/whoport/pkg/model"
)

// Snapshot enumerates processes through gopsutil. Detail lookups that need
// privilege fail per-process and leave the optional fields empty; the
// socket table on these platforms already names the owning PID, so no
// per-process key listing is collected.
func Snapshot() ([]model.Process, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	processes := make([]model.Process, 0, len(procs))
	for _, p := range procs {
		rec := model.Process{
			PID: int(p.Pid),
			UID: model.UIDNone,
		}
		if name, err := p.Name(); err == nil {
			rec.Name = name
		}
		if uids, err := p.Uids(); err == nil && len(uids) > 0 {
			rec.UID = int(uids[0])
		}
		if cmdline, err := p.Cmdline(); err == nil {
			rec.Cmdline = cmdline
		}
		if exe, err := p.Exe(); err == nil {
			rec.Exe = exe
		}
		if cwd, err := p.Cwd(); err == nil {
			rec.Cwd = cwd
		}
		processes = append(processes, rec)
	}

	return processes, nil
}
