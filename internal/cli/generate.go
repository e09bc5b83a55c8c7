package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ytget/yt-playlist-maker/internal/config"
	"github.com/ytget/yt-playlist-maker/internal/export"
	"github.com/ytget/yt-playlist-maker/internal/generate"
	"github.com/ytget/yt-playlist-maker/internal/model"
	"github.com/ytget/yt-playlist-maker/internal/platform"
)

// ErrCancelled is returned when a generation was interrupted
var ErrCancelled = errors.New("generation cancelled")

func newGenerateCommand() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "generate [url...]",
		Short: "Generate playlist links from YouTube URLs or video IDs",
		Long: "Generate reads one URL or video ID per line from --file, the arguments,\n" +
			"piped stdin or an interactive prompt, and prints one watch_videos link per chunk.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, v, args)
		},
	}

	config.RegisterFlags(cmd, v)
	cmd.Flags().StringP("file", "f", "", "read URLs from file (\"-\" for stdin)")
	cmd.Flags().Bool("csv", false, "export the playlists as CSV into the export directory")
	return cmd
}

func runGenerate(cmd *cobra.Command, v *viper.Viper, args []string) error {
	cfg, err := config.Load(v, config.GetConfigFile(cmd))
	if err != nil {
		return err
	}
	chunkSize, err := cfg.ParsedChunkSize()
	if err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	ctx := log.WithContext(cmd.Context(), logger)

	file, _ := cmd.Flags().GetString("file")
	input, err := readInput(cmd.InOrStdin(), cmd.OutOrStdout(), file, args)
	if err != nil {
		return err
	}

	svc := generate.NewService(platform.NewURLParserService())
	svc.SetLogger(logger.WithPrefix("generate"))
	if cfg.NoDelay {
		svc.SetDelays(generate.NoDelays())
	}

	lf := labelsFor(cfg.Lang)
	svc.SetStatsCallback(func(s model.RunStats) {
		logger.Infof(lf.stats, s.Total, s.Valid, s.Invalid)
	})
	svc.SetProgressCallback(func(p model.Progress) {
		logger.Debug(p.Message, "percent", p.Rounded, "elapsed", p.GetElapsedString())
	})

	state, err := svc.Start(ctx, input, chunkSize)
	if err != nil {
		return err
	}

	switch state.Status {
	case model.RunStatusCancelled:
		return ErrCancelled
	case model.RunStatusCompleted:
	default:
		return fmt.Errorf("unexpected run status: %s", state.Status)
	}

	if len(state.Results) == 0 {
		logger.Warn(state.Message)
		return nil
	}

	out := cmd.OutOrStdout()
	for _, r := range state.Results {
		fmt.Fprintln(out, r.LabelWith(lf.multi, lf.single))
		fmt.Fprintln(out, r.URL)
	}

	if exportCSV, _ := cmd.Flags().GetBool("csv"); exportCSV {
		exporter := export.NewService()
		exporter.SetLogger(logger.WithPrefix("export"))
		exporter.SetHeader(export.HeaderFor(cfg.Lang))

		path, err := exporter.Export(cfg.ExportDir, state.Results)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, path)
	}
	return nil
}
