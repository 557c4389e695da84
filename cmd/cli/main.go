package main

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"

	"github.com/de-tools/finance-atlas/pkg/runtime/terminal"
	"github.com/de-tools/finance-atlas/pkg/services/plans"
)

func main() {
	profilePath := ""
	if usr, err := user.Current(); err == nil {
		profilePath = filepath.Join(usr.HomeDir, ".finance-atlas.ini")
	}

	cli := terminal.NewCLI(terminal.Options{
		Plans:       plans.NewService(),
		Output:      os.Stdout,
		ProfilePath: profilePath,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
