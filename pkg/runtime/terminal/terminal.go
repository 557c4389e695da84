package terminal

import (
	"context"
	"io"
	"os"

	"github.com/de-tools/finance-atlas/pkg/runtime/terminal/commands"
	"github.com/de-tools/finance-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/finance-atlas/pkg/services/plans"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

// CLI represents the command-line interface
type CLI struct {
	rootCmd *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Plans       plans.Evaluator
	Output      io.Writer
	ProfilePath string
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	rootCmd := &cobra.Command{
		Use:     "finance-atlas",
		Short:   "Installment plan cost analyzer",
		Version: version,
	}
	rootCmd.SetOut(opts.Output)

	console := NewReporter(opts.Output)
	markdown := export.NewReporter(opts.Output)

	rootCmd.AddCommand(commands.NewAnalyzeCmd(opts.Plans, console, markdown, opts.ProfilePath))
	rootCmd.AddCommand(commands.NewSolveCmd())

	return &CLI{rootCmd: rootCmd}
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) ExecuteContext(ctx context.Context) error {
	return cli.rootCmd.ExecuteContext(ctx)
}
