package main

import (
	"fmt"
	"log/slog"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/phanxgames/imui"
)

func newRootCmd() *cobra.Command {
	var (
		verbose bool
		dumpDir string
	)

	cmd := &cobra.Command{
		Use:          "imui-replay <session.toml>",
		Short:        "Replay a scripted pointer session against a button menu",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(os.Stderr, level)
			imui.SetLogger(slog.New(logger))
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg, err := loadConfig(args[0])
			if err != nil {
				return err
			}
			logger.Debug("loaded session", "path", args[0], "buttons", len(cfg.Buttons), "steps", len(cfg.Steps))

			res, err := replay(ctx, cfg, replayOptions{DumpDir: dumpDir, Debug: verbose})
			if err != nil {
				return err
			}
			for _, c := range res.Clicks {
				fmt.Fprintf(cmd.OutOrStdout(), "frame %d: clicked %q\n", c.Frame, c.Button)
			}
			logger.Info("replay finished", "frames", res.Frames, "clicks", len(res.Clicks), "presses", res.Presses)
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	cmd.Flags().StringVar(&dumpDir, "dump", "", "directory receiving the draw commands of screenshot steps")
	return cmd
}
