// Command mxfinspect is a read-only terminal viewer for MXF header
// partitions: it renders the resolved object graph as a fuzzy-
// filterable tree with a detail pane, and exits.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ugparu/mxfheader/byteprovider"
	"github.com/ugparu/mxfheader/header"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: mxfinspect <path>")
		os.Exit(1)
	}

	r, err := byteprovider.NewFileProvider(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer r.Close()

	hp, err := header.New(r)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if _, err := tea.NewProgram(NewModel(hp), tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
