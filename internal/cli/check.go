package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ytget/yt-playlist-maker/internal/model"
	"github.com/ytget/yt-playlist-maker/internal/platform"
)

// Check output markers
const (
	ValidMarker   = "ok"
	InvalidMarker = "--"
)

func newCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [url...]",
		Short: "Show how each input line is classified",
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")
			input, err := readInput(cmd.InOrStdin(), cmd.OutOrStdout(), file, args)
			if err != nil {
				return err
			}

			entries := platform.NewURLParserService().ParseInput(input)
			out := cmd.OutOrStdout()
			for _, e := range entries {
				if e.Valid {
					fmt.Fprintf(out, "%s %s %s\n", ValidMarker, e.VideoID, e.Original)
				} else {
					fmt.Fprintf(out, "%s %s\n", InvalidMarker, e.Original)
				}
			}

			stats := model.ComputeStats(entries)
			fmt.Fprintf(out, "total=%d valid=%d invalid=%d\n", stats.Total, stats.Valid, stats.Invalid)
			return nil
		},
	}
	cmd.Flags().StringP("file", "f", "", "read URLs from file (\"-\" for stdin)")
	return cmd
}
