package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/andresmejia3/frames/internal/utils"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Encode the frame table as JSON or CBOR",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return runExport(cmd.Context(), cmd.OutOrStdout(), exportFormat, exportOutput)
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Output format: json, cbor")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to a file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

func runExport(ctx context.Context, stdout io.Writer, format, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	out := stdout
	var f *os.File
	if path != "" {
		var err error
		f, err = os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		out = f
	}

	recs := utils.Records()
	err := utils.Encode(out, format, recs)
	if f != nil {
		err = closeOutput(f, path, err)
	}
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	if path != "" {
		log.Info("exported frame table", "frames", len(recs), "format", format, "path", path)
		fmt.Fprintf(os.Stderr, "✅ Wrote %d frames to %s\n", len(recs), path)
	}
	return nil
}

// closeOutput closes the export file and removes it if encoding or the close
// failed. Close surfaces write errors the encoder may not have seen.
func closeOutput(c io.Closer, path string, err error) error {
	if cerr := c.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("failed to close %s: %w", path, cerr)
	}
	if err != nil {
		os.Remove(path)
	}
	return err
}
