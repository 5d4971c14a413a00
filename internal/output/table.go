// Package output renders resolved records for the terminal: a tab-aligned
// table for the full listing, detail blocks for port queries, and JSON.
package output

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/portkit/whoport/pkg/model"
)

// RenderTable writes one row per record, already in resolution order.
func RenderTable(w io.Writer, records []model.Record) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	fmt.Fprintln(tw, "PORT\tPID\tUID\tUSER\tSTATE\tPROTO\tPROCESS\tLOCAL\tREMOTE")
	for _, r := range records {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.LocalPort,
			r.Process.PID,
			r.Process.UID,
			r.Process.User,
			stateOrDash(r.State),
			r.Proto,
			r.Process.Name,
			r.Local(),
			r.Remote(),
		)
	}

	return tw.Flush()
}

func stateOrDash(state string) string {
	if state == "" {
		return "-"
	}
	return state
}
