package cmd

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/andresmejia3/frames/internal/frames"
	"github.com/andresmejia3/frames/internal/utils"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every frame in the table",
	Run: func(cmd *cobra.Command, args []string) {
		runList(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(out io.Writer) {
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "INDEX\tNAME\tWORDS")
	fmt.Fprintln(w, "-----\t----\t-----")

	for e := range frames.Entries() {
		fmt.Fprintf(w, "%d\t%s\t%s\n", e.Index, e.Name, utils.FormatWords(e.Frame))
	}
	w.Flush()
	fmt.Fprintf(out, "\n%d frames\n", frames.Count())
}
