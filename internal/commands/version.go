package commands

import (
	"fmt"
	"io"

	"taskboard/internal/config"
)

// Version is the application version. Set at build time.
var Version = "0.1.0"

// PrintVersion writes the version line.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "%s %s\n", config.AppName, Version)
}
