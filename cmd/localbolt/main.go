package main

import (
	"fmt"
	"io"
	"os"

	"github.com/RonaldMishiev/LocalBolt/arith"
	"github.com/RonaldMishiev/LocalBolt/common"
	"github.com/spf13/cobra"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit status. Without a
// subcommand it greets and exits with DefaultDividend % DefaultDivisor.
func run(args []string, stdout, stderr io.Writer) int {
	code := 0
	root := newRootCmd(&code)
	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	return code
}

func newRootCmd(code *int) *cobra.Command {
	root := &cobra.Command{
		Use:           "localbolt",
		Short:         "Integer power and remainder calculator",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := arith.Mod(common.DefaultDividend, common.DefaultDivisor)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), common.Greeting)
			*code = int(v)
			return nil
		},
	}
	root.AddCommand(newPowCmd(), newModCmd(), newBatchCmd(), newServeCmd())
	return root
}
