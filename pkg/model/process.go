package model

// Process is a point-in-time view of one running process. Optional fields
// stay empty when the detail read failed (cross-UID permission or the
// process exited between enumeration and read); a failed read never carries
// an error, only the absence.
type Process struct {
	PID     int
	UID     int // UIDNone when /proc/<pid>/status (or equivalent) was unreadable
	Name    string
	Cmdline string
	Exe     string
	Cwd     string

	// Keys holds the socket linking keys this process has open, read from
	// its own handle listing. Empty when the listing was not readable; such
	// a process contributes no linkage.
	Keys []string
}
