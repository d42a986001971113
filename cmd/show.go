package cmd

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/andresmejia3/frames/internal/frames"
	"github.com/spf13/cobra"
)

var errUnknownFrame = errors.New("no frame with that name")

var showCmd = &cobra.Command{
	Use:   "show <index|name>",
	Short: "Print a single frame",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		if err := runShow(cmd.OutOrStdout(), args[0]); err != nil {
			return fmt.Errorf("failed to show frame: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

// resolveFrame accepts either a table index or an exact frame name.
func resolveFrame(arg string) (int, string, frames.Frame, error) {
	if idx, err := strconv.Atoi(arg); err == nil {
		f, err := frames.Get(idx)
		if err != nil {
			return 0, "", frames.Frame{}, err
		}
		name, err := frames.Name(idx)
		return idx, name, f, err
	}

	idx, ok := frames.IndexOf(arg)
	if !ok {
		return 0, "", frames.Frame{}, fmt.Errorf("%w: %q", errUnknownFrame, arg)
	}
	f, err := frames.Get(idx)
	return idx, arg, f, err
}

func runShow(out io.Writer, arg string) error {
	idx, name, f, err := resolveFrame(arg)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Frame %d: %s\n", idx, name)
	for i, w := range f {
		fmt.Fprintf(out, "  [%d] 0x%08x\n", i, w)
	}
	return nil
}
