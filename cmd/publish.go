package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/andresmejia3/frames/internal/frames"
	"github.com/andresmejia3/frames/internal/types"
	"github.com/andresmejia3/frames/internal/utils"
	"github.com/charmbracelet/log"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

// framePublisher is the subset of the store that publishing needs.
type framePublisher interface {
	Publish(ctx context.Context, recs []types.FrameRecord, step func(types.FrameRecord)) (int64, error)
}

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Mirror the frame table into PostgreSQL",
	Long:  "Upserts every frame into the detection_frames table and removes rows the table no longer has, in a single transaction.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		ctx := cmd.Context()

		db, err := openDB(ctx)
		if err != nil {
			return err
		}
		// Background: ctx may already be cancelled by Ctrl+C and we still want a clean close
		defer db.Close(context.Background())

		bar := progressbar.NewOptions(frames.Count(),
			progressbar.OptionSetDescription("📤 Publishing frames"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
		)
		n, err := runPublish(ctx, db, func() { bar.Add(1) })
		bar.Finish()
		if err != nil {
			return err
		}

		fmt.Fprintf(os.Stderr, "\n🏁 Published %d frames.\n", n)
		return nil
	},
}

func init() {
	addDBFlag(publishCmd)
	rootCmd.AddCommand(publishCmd)
}

// runPublish mirrors the whole table in one call. Nothing is visible to
// readers unless every frame and the prune succeed.
// step is called once per frame written.
func runPublish(ctx context.Context, db framePublisher, step func()) (int, error) {
	recs := utils.Records()
	removed, err := db.Publish(ctx, recs, func(rec types.FrameRecord) {
		log.Debug("published frame", "index", rec.Index, "name", rec.Name)
		if step != nil {
			step()
		}
	})
	if err != nil {
		return 0, fmt.Errorf("publish failed, nothing was changed: %w", err)
	}
	if removed > 0 {
		log.Warn("removed stale published frames", "count", removed)
	}
	return len(recs), nil
}
