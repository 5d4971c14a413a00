//go:build !linux && !darwin && !freebsd && !windows

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(
		os.Stderr,
		"whoport is only supported on Linux, macOS, FreeBSD, and Windows.\n\nIf you are seeing this message, you are attempting to build or run whoport on a platform it cannot read the socket or process tables on.",
	)
	os.Exit(1)
}
