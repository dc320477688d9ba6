package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/tessro/tidal-presence/internal/presence"
	"github.com/tessro/tidal-presence/internal/tidal"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current track and the presence it maps to",
	Long: `Queries Tidal Hi-Fi once and prints the current track together with the
Rich Presence payload that would be sent to Discord. Nothing is sent.`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Tidal.TimeoutDuration())
	defer cancel()

	client := tidal.New(cfg.Tidal.URL, cfg.Tidal.TimeoutDuration())
	if Verbose() {
		client.SetVerbose(true, func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		})
	}

	snap, err := client.Current(ctx)
	if err != nil {
		return err
	}

	if snap == nil {
		if JSONOutput() {
			return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
				"playing": false,
				"message": "Nothing playing",
			})
		}
		fmt.Println("Nothing playing")
		return nil
	}

	activity := presence.BuildActivity(snap, time.Now())

	if JSONOutput() {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]interface{}{
			"playing":  snap.IsPlaying(),
			"track":    snap,
			"activity": activity,
		})
	}

	fmt.Println(renderStatus(snap, activity, stylesEnabled()))
	return nil
}
