// Package procsnap takes a point-in-time snapshot of the process table.
// Per-process detail reads degrade silently: a process owned by another
// user, or one that exits mid-read, contributes a record with empty
// optional fields instead of aborting the snapshot.
package procsnap

import "errors"

// ErrUnavailable is returned when the process table itself cannot be read.
var ErrUnavailable = errors.New("process table unavailable")
