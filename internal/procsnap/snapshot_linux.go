//go:build linux

package procsnap

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/portkit/whoport/pkg/model"
)

var procRoot = "/proc"

// Snapshot walks /proc and returns one record per live process. Only the
// top-level directory listing is fatal; everything below it is best-effort.
func Snapshot() ([]model.Process, error) {
	entries, err := os.ReadDir(procRoot)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrUnavailable, procRoot, err)
	}

	processes := make([]model.Process, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		pid, err := strconv.Atoi(entry.Name())
		if err != nil {
			continue
		}

		proc, err := readProcess(pid)
		if err != nil {
			// Vanished between ReadDir and the stat read.
			continue
		}
		processes = append(processes, proc)
	}

	return processes, nil
}

func readProcess(pid int) (model.Process, error) {
	stat, err := os.ReadFile(fmt.Sprintf("%s/%d/stat", procRoot, pid))
	if err != nil {
		return model.Process{}, fmt.Errorf("process %d disappeared during read", pid)
	}

	name, err := parseComm(stat)
	if err != nil {
		return model.Process{}, err
	}

	proc := model.Process{
		PID:  pid,
		UID:  readUID(pid),
		Name: name,
	}

	if cmdlineBytes, err := os.ReadFile(fmt.Sprintf("%s/%d/cmdline", procRoot, pid)); err == nil {
		cmd := strings.ReplaceAll(string(cmdlineBytes), "\x00", " ")
		proc.Cmdline = strings.TrimSpace(cmd)
	}
	if exe, err := os.Readlink(fmt.Sprintf("%s/%d/exe", procRoot, pid)); err == nil {
		proc.Exe = strings.TrimSuffix(exe, " (deleted)")
	}
	if cwd, err := os.Readlink(fmt.Sprintf("%s/%d/cwd", procRoot, pid)); err == nil {
		proc.Cwd = cwd
	}

	proc.Keys = socketKeys(pid)

	return proc, nil
}

// parseComm extracts the command name from /proc/<pid>/stat.
// stat format is evil, the command sits inside () and may itself contain
// spaces and parens.
func parseComm(stat []byte) (string, error) {
	raw := string(stat)
	open := strings.Index(raw, "(")
	close := strings.LastIndex(raw, ")")
	if open == -1 || close == -1 || close <= open {
		return "", fmt.Errorf("invalid stat format")
	}
	return raw[open+1 : close], nil
}

// readUID returns the real UID from /proc/<pid>/status, or UIDNone when the
// file is unreadable.
func readUID(pid int) int {
	data, err := os.ReadFile(fmt.Sprintf("%s/%d/status", procRoot, pid))
	if err != nil {
		return model.UIDNone
	}
	return parseStatusUID(data)
}

func parseStatusUID(status []byte) int {
	for _, line := range strings.Split(string(status), "\n") {
		if !strings.HasPrefix(line, "Uid:") {
			continue
		}
		fields := strings.Fields(line[4:])
		if len(fields) == 0 {
			return model.UIDNone
		}
		uid, err := strconv.Atoi(fields[0])
		if err != nil {
			return model.UIDNone
		}
		return uid
	}
	return model.UIDNone
}

// socketKeys lists the socket inodes held open by pid, read from its fd
// table. Reading another user's fd table needs privilege; failure means the
// process simply contributes no linkage.
func socketKeys(pid int) []string {
	fdPath := fmt.Sprintf("%s/%d/fd", procRoot, pid)
	fds, err := os.ReadDir(fdPath)
	if err != nil {
		return nil
	}

	var keys []string
	for _, fd := range fds {
		link, err := os.Readlink(fmt.Sprintf("%s/%s", fdPath, fd.Name()))
		if err != nil {
			continue
		}
		if strings.HasPrefix(link, "socket:[") {
			keys = append(keys, strings.TrimSuffix(strings.TrimPrefix(link, "socket:["), "]"))
		}
	}
	return keys
}
