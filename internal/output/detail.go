package output

import (
	"fmt"
	"io"

	"github.com/portkit/whoport/pkg/model"
)

// RenderDetails prints one block per record matching a port query.
// Optional identity fields appear only when they resolved to a real value.
func RenderDetails(w io.Writer, records []model.Record) {
	for _, r := range records {
		fmt.Fprintf(w, "Port %d/%s:\n", r.LocalPort, r.Proto)
		fmt.Fprintf(w, "  Local Address: %s\n", r.Local())
		fmt.Fprintf(w, "  Remote Address: %s\n", r.Remote())
		fmt.Fprintf(w, "  State: %s\n", stateOrDash(r.State))
		fmt.Fprintf(w, "  Process: %s (PID: %s)\n", r.Process.Name, r.Process.PID)
		fmt.Fprintf(w, "  UID: %s (User: %s)\n", r.Process.UID, r.Process.User)
		if r.Process.Cmdline != model.Unknown {
			fmt.Fprintf(w, "  Command: %s\n", r.Process.Cmdline)
		}
		if r.Process.Exe != model.Unknown {
			fmt.Fprintf(w, "  Executable: %s\n", r.Process.Exe)
		}
		if r.Process.Cwd != model.Unknown {
			fmt.Fprintf(w, "  Working Dir: %s\n", r.Process.Cwd)
		}
		fmt.Fprintln(w)
	}
}

// RenderNoMatch reports an empty port query. This is an informational
// outcome, not an error; the caller still exits zero.
func RenderNoMatch(w io.Writer, port int) {
	fmt.Fprintf(w, "No process found using port %d.\n", port)
}
