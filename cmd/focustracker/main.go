package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	humanize "github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"focustracker/internal/bootstrap"
	analyticsinadapter "focustracker/internal/modules/analytics/adapter/in"
	analyticsdto "focustracker/internal/modules/analytics/dto"
	trackerinadapter "focustracker/internal/modules/tracker/adapter/in"
	"focustracker/internal/modules/tracker/domain"
	trackerdto "focustracker/internal/modules/tracker/dto"
	"focustracker/internal/platform/config"
	"focustracker/internal/platform/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootOptions struct {
	dataDir  string
	backend  string
	logLevel string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "focustracker",
		Short:         "Focus timer, pomodoro cycles and focus analytics",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.dataDir, "data-dir", config.DefaultDataDir(), "directory holding state, config and logs")
	root.PersistentFlags().StringVar(&opts.backend, "backend", "", "storage backend: file|sqlite (overrides config)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: trace|debug|info|warn|error (overrides config)")

	root.AddCommand(newTUICmd(opts))
	root.AddCommand(newTimerCmd(opts))
	root.AddCommand(newPomodoroCmd(opts))
	root.AddCommand(newSettingsCmd(opts))
	root.AddCommand(newStatsCmd(opts))
	root.AddCommand(newSessionsCmd(opts))
	root.AddCommand(newExportCmd(opts))
	root.AddCommand(newImportCmd(opts))
	root.AddCommand(newResetCmd(opts))
	return root
}

func loadConfig(opts *rootOptions) (config.Config, error) {
	cfg, err := config.Load(opts.dataDir)
	if err != nil {
		return config.Config{}, err
	}
	if opts.backend != "" {
		cfg.Backend = strings.ToLower(opts.backend)
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	return cfg, cfg.Validate()
}

func loadApp(opts *rootOptions, stderr io.Writer) (*bootstrap.App, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg, logging.New(cfg.LogLevel, stderr))
}

func newTUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the focustracker terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			logger, closer, err := logging.NewFile(cfg.LogLevel, cfg.LogPath)
			if err != nil {
				return err
			}
			defer closer.Close()
			app, err := bootstrap.New(cfg, logger)
			if err != nil {
				return err
			}
			defer app.Close()
			return bootstrap.RunTUI(app)
		},
	}
}

func newTimerCmd(opts *rootOptions) *cobra.Command {
	timer := &cobra.Command{Use: "timer", Short: "Manual focus timer"}

	timer.AddCommand(stateCmd(opts, "start", "Start a manual focus session", func(h trackerinadapter.CLIHandler, ctx context.Context) (trackerdto.StateOutput, error) {
		return h.Start(ctx, string(domain.KindManual))
	}))
	timer.AddCommand(stateCmd(opts, "pause", "Pause the running timer", trackerinadapter.CLIHandler.Pause))
	timer.AddCommand(stateCmd(opts, "resume", "Resume a paused timer", trackerinadapter.CLIHandler.Resume))
	timer.AddCommand(stateCmd(opts, "discard", "Stop the timer without recording a session", trackerinadapter.CLIHandler.Discard))
	timer.AddCommand(stateCmd(opts, "status", "Show the timer state", trackerinadapter.CLIHandler.Status))
	timer.AddCommand(&cobra.Command{
		Use:   "stop",
		Short: "Stop the timer and record the session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.TrackerCLI.Stop(cmd.Context())
			if err != nil {
				return err
			}
			if out.Recorded != nil {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "recorded %s session %s (%s)\n", out.Recorded.Type, out.Recorded.ID, domain.FormatDuration(out.Recorded.DurationMS))
			} else {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "timer stopped, nothing recorded")
			}
			printWarning(cmd, out.State)
			return nil
		},
	})
	return timer
}

func newPomodoroCmd(opts *rootOptions) *cobra.Command {
	pomodoro := &cobra.Command{Use: "pomodoro", Short: "Pomodoro cycle"}

	pomodoro.AddCommand(stateCmd(opts, "start", "Start the current pomodoro phase", func(h trackerinadapter.CLIHandler, ctx context.Context) (trackerdto.StateOutput, error) {
		return h.Start(ctx, string(domain.KindPomodoro))
	}))
	pomodoro.AddCommand(stateCmd(opts, "pause", "Pause the running phase", trackerinadapter.CLIHandler.Pause))
	pomodoro.AddCommand(stateCmd(opts, "resume", "Resume a paused phase", trackerinadapter.CLIHandler.Resume))
	pomodoro.AddCommand(stateCmd(opts, "stop", "Stop the phase without recording it", trackerinadapter.CLIHandler.Discard))
	pomodoro.AddCommand(stateCmd(opts, "status", "Show the pomodoro state", trackerinadapter.CLIHandler.Status))
	pomodoro.AddCommand(stateCmd(opts, "reset-count", "Reset the completed focus phase count", trackerinadapter.CLIHandler.ResetPomodoroCount))

	pomodoro.AddCommand(&cobra.Command{
		Use:   "phase <focus|short-break|long-break>",
		Short: "Set the current phase",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.TrackerCLI.SetPhase(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printState(cmd, out)
			return nil
		},
	})

	pomodoro.AddCommand(&cobra.Command{
		Use:   "tick",
		Short: "Apply phase completion if the running phase has finished",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.TrackerCLI.Tick(cmd.Context())
			if err != nil {
				return err
			}
			if out.Outcome != nil {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Outcome.Message)
				if out.Outcome.AutoStart {
					started, err := app.TrackerCLI.Start(cmd.Context(), string(domain.KindPomodoro))
					if err != nil {
						return err
					}
					printState(cmd, started)
					return nil
				}
			}
			printState(cmd, out.State)
			return nil
		},
	})

	pomodoro.AddCommand(newWatchCmd(opts))
	return pomodoro
}

// newWatchCmd drives the pomodoro cycle from the terminal: one tick per
// second while a phase runs, auto-starting the next phase when configured.
func newWatchCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Follow the running pomodoro phase until the cycle stops",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.Close()
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			ticker := time.NewTicker(time.Second)
			defer ticker.Stop()
			for {
				tick, err := app.TrackerCLI.Tick(ctx)
				if err != nil {
					return err
				}
				if tick.Outcome != nil {
					_, _ = fmt.Fprintf(out, "\n%s\n", tick.Outcome.Message)
					if !tick.Outcome.AutoStart {
						return nil
					}
					select {
					case <-ctx.Done():
						return nil
					case <-time.After(tick.Outcome.AutoStartAfter):
					}
					if _, err := app.TrackerCLI.Start(ctx, string(domain.KindPomodoro)); err != nil {
						return err
					}
					continue
				}
				state := tick.State
				if !state.Running && !state.Paused {
					_, _ = fmt.Fprintln(out, "no pomodoro phase running")
					return nil
				}
				marker := ""
				if state.Paused {
					marker = " (paused)"
				}
				_, _ = fmt.Fprintf(out, "\r%s %s remaining%s   ", state.PhaseLabel, domain.FormatElapsed(state.Remaining), marker)
				select {
				case <-ctx.Done():
					_, _ = fmt.Fprintln(out)
					return nil
				case <-ticker.C:
				}
			}
		},
	}
}

func newSettingsCmd(opts *rootOptions) *cobra.Command {
	settings := &cobra.Command{Use: "settings", Short: "Pomodoro settings"}
	settings.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show pomodoro settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.Close()
			s, err := app.TrackerCLI.Settings(cmd.Context())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "focus: %d min\nshort-break: %d min\nlong-break: %d min\nlong-break-every: %d\nauto-start: %t\n",
				s.FocusMinutes, s.ShortBreakMinutes, s.LongBreakMinutes, s.SessionsUntilLongBreak, s.AutoStartNext)
			return nil
		},
	})
	settings.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one setting (" + strings.Join(trackerinadapter.SettingKeys, "|") + ")",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.TrackerCLI.SetSetting(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s set to %s\n", args[0], args[1])
			printWarning(cmd, out)
			return nil
		},
	})
	return settings
}

func newStatsCmd(opts *rootOptions) *cobra.Command {
	stats := &cobra.Command{Use: "stats", Short: "Focus analytics"}

	var days int
	daily := &cobra.Command{
		Use:   "daily",
		Short: "Focus minutes per day",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.Close()
			totals, err := app.AnalyticsCLI.Daily(cmd.Context(), days)
			if err != nil {
				return err
			}
			for _, d := range totals {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d min\n", d.Date, d.Minutes)
			}
			return nil
		},
	}
	daily.Flags().IntVar(&days, "days", 7, "number of days ending today")
	stats.AddCommand(daily)

	stats.AddCommand(&cobra.Command{
		Use:   "streak",
		Short: "Consecutive days with a session, ending today",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.Close()
			streak, err := app.AnalyticsCLI.Streak(cmd.Context())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d days\n", streak)
			return nil
		},
	})

	var notePath string
	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Analytics overview as markdown",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.Close()
			summary, err := app.AnalyticsCLI.Summary(cmd.Context())
			if err != nil {
				return err
			}
			if notePath == "" {
				_, _ = fmt.Fprint(cmd.OutOrStdout(), analyticsinadapter.MarkdownReport(summary, app.Clock.Now()))
				return nil
			}
			return writeSummaryNote(notePath, summary, app.Clock.Now())
		},
	}
	summaryCmd.Flags().StringVar(&notePath, "note", "", "update the summary block of a markdown note instead of printing")
	stats.AddCommand(summaryCmd)
	return stats
}

func writeSummaryNote(path string, summary analyticsdto.SummaryOutput, now time.Time) error {
	existing, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("read note: %w", err)
	}
	updated, err := analyticsinadapter.UpdateNote(string(existing), summary, now)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		return fmt.Errorf("write note: %w", err)
	}
	return nil
}

func newSessionsCmd(opts *rootOptions) *cobra.Command {
	sessions := &cobra.Command{Use: "sessions", Short: "Recorded focus sessions"}
	sessions.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List recorded sessions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.Close()
			list, err := app.TrackerCLI.Sessions(cmd.Context())
			if err != nil {
				return err
			}
			if len(list) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no sessions")
				return nil
			}
			for _, s := range list {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t%s\n", s.ID, s.Date, s.Type, domain.FormatDuration(s.DurationMS), s.Start)
			}
			return nil
		},
	})
	return sessions
}

func newExportCmd(opts *rootOptions) *cobra.Command {
	var dir string
	var stdout bool
	export := &cobra.Command{
		Use:   "export",
		Short: "Write a JSON backup of sessions and settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.Close()
			if stdout {
				return app.TransferCLI.ExportTo(cmd.Context(), cmd.OutOrStdout())
			}
			out, err := app.TransferCLI.Export(cmd.Context(), dir)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exported %d sessions to %s (%s)\n", out.Sessions, out.Path, humanize.Bytes(uint64(out.SizeBytes)))
			return nil
		},
	}
	export.Flags().StringVar(&dir, "dir", ".", "directory to write the backup into")
	export.Flags().BoolVar(&stdout, "stdout", false, "write the backup to stdout")
	return export
}

func newImportCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace sessions and settings from a JSON backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.TransferCLI.Import(cmd.Context(), args[0])
			if err != nil {
				if out.Message != "" && out.Message != err.Error() {
					return errors.New(out.Message)
				}
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s (%d sessions)\n", out.Message, out.Sessions)
			return nil
		},
	}
}

func newResetCmd(opts *rootOptions) *cobra.Command {
	var yes bool
	reset := &cobra.Command{
		Use:   "reset --yes",
		Short: "Delete all sessions and restore default settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return fmt.Errorf("--yes is required to reset all data")
			}
			app, err := loadApp(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.TrackerCLI.Reset(cmd.Context())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "all data reset")
			printWarning(cmd, out)
			return nil
		},
	}
	reset.Flags().BoolVar(&yes, "yes", false, "confirm the reset")
	return reset
}

func stateCmd(opts *rootOptions, use, short string, run func(trackerinadapter.CLIHandler, context.Context) (trackerdto.StateOutput, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := run(app.TrackerCLI, cmd.Context())
			if err != nil {
				return err
			}
			printState(cmd, out)
			return nil
		},
	}
}

func printState(cmd *cobra.Command, s trackerdto.StateOutput) {
	w := cmd.OutOrStdout()
	switch {
	case s.Running:
		_, _ = fmt.Fprintf(w, "running %s session %s elapsed=%s", s.Kind, s.SessionID, domain.FormatElapsed(s.Elapsed))
	case s.Paused:
		_, _ = fmt.Fprintf(w, "paused %s session %s elapsed=%s", s.Kind, s.SessionID, domain.FormatElapsed(s.Elapsed))
	default:
		_, _ = fmt.Fprint(w, "idle")
	}
	if s.Kind == string(domain.KindPomodoro) || s.Kind == "" {
		_, _ = fmt.Fprintf(w, " phase=%q remaining=%s next=%q completed=%d", s.PhaseLabel, domain.FormatElapsed(s.Remaining), s.Upcoming, s.PomodoroCount)
	}
	if s.StartedAt != "" {
		if started, err := time.Parse(time.RFC3339, s.StartedAt); err == nil {
			_, _ = fmt.Fprintf(w, " started=%s", humanize.Time(started))
		}
	}
	_, _ = fmt.Fprintln(w)
	printWarning(cmd, s)
}

func printWarning(cmd *cobra.Command, s trackerdto.StateOutput) {
	if s.Warning != "" {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", s.Warning)
	}
}
