package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog"
	"github.com/san-kum/arrayviz/internal/config"
	"github.com/san-kum/arrayviz/internal/demo"
	"github.com/san-kum/arrayviz/internal/player"
	"github.com/san-kum/arrayviz/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string
	logLevel   string
	theme      string
	// play
	playFrom     int
	playInterval time.Duration
	// show
	asJSON bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "arrayviz",
		Short:        "step through array operations in the terminal",
		SilenceUsage: true,
		RunE:         runInteractive,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list walkthrough steps",
		Args:  cobra.NoArgs,
		RunE:  listSteps,
	}

	showCmd := &cobra.Command{
		Use:   "show [step|name]",
		Short: "render one step",
		Args:  cobra.MaximumNArgs(1),
		RunE:  showStep,
	}
	showCmd.Flags().BoolVar(&asJSON, "json", false, "emit the render tree as JSON")

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "auto-advance through the walkthrough without the TUI",
		Args:  cobra.NoArgs,
		RunE:  playSteps,
	}
	playCmd.Flags().IntVar(&playFrom, "from", config.DefaultStartStep, "first step to show")
	playCmd.Flags().DurationVar(&playInterval, "interval", config.DefaultInterval, "time between steps")

	plotCmd := &cobra.Command{
		Use:   "plot [step|name]",
		Short: "plot numeric sequences of one step",
		Args:  cobra.MaximumNArgs(1),
		RunE:  plotStep,
	}

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "list color themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := setup(cmd)
			if err != nil {
				return err
			}
			for _, name := range viz.ThemeNames() {
				mark := " "
				if name == cfg.Theme {
					mark = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", mark, name)
			}
			return nil
		},
	}

	rootCmd.AddCommand(listCmd, showCmd, playCmd, plotCmd, themesCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads the config, applies flags the user set explicitly and builds
// the stderr logger.
func setup(cmd *cobra.Command) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("interval") {
		cfg.Interval = playInterval
	}
	if flags.Changed("from") {
		cfg.StartStep = playFrom
	}

	if err := cfg.Validate(); err != nil {
		return nil, zerolog.Nop(), err
	}
	if _, ok := viz.LookupTheme(cfg.Theme); !ok {
		return nil, zerolog.Nop(), fmt.Errorf("unknown theme: %s (available: %s)", cfg.Theme, strings.Join(viz.ThemeNames(), ", "))
	}

	lvl, _ := cfg.Level()
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(lvl).
		With().
		Timestamp().
		Logger()
	return cfg, log, nil
}

func newSession(cfg *config.Config, step int) (*player.Session, error) {
	s, err := player.NewSession(demo.Default(), cfg.Interval)
	if err != nil {
		return nil, err
	}
	if err := s.Seek(step); err != nil {
		return nil, err
	}
	return s, nil
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, _, err := setup(cmd)
	if err != nil {
		return err
	}
	s, err := newSession(cfg, cfg.StartStep)
	if err != nil {
		return err
	}
	return viz.Run(s, viz.Options{
		Theme:      cfg.Theme,
		PlotWidth:  cfg.Plot.Width,
		PlotHeight: cfg.Plot.Height,
	})
}

func listSteps(cmd *cobra.Command, args []string) error {
	c := demo.Default()

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tNAME\tMUTATES\tDESCRIPTION")
	for i, e := range c.Entries() {
		mutates := "no"
		if e.Mutates {
			mutates = "yes"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i+1, e.Name, mutates, e.Description)
	}
	return w.Flush()
}

func showStep(cmd *cobra.Command, args []string) error {
	cfg, _, err := setup(cmd)
	if err != nil {
		return err
	}
	step, err := stepArg(demo.Default(), args, cfg.StartStep)
	if err != nil {
		return err
	}
	s, err := newSession(cfg, step)
	if err != nil {
		return err
	}

	f := s.Frame()
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(f.Tree)
	}
	printFrame(cmd.OutOrStdout(), f)
	return nil
}

func plotStep(cmd *cobra.Command, args []string) error {
	cfg, _, err := setup(cmd)
	if err != nil {
		return err
	}
	step, err := stepArg(demo.Default(), args, cfg.StartStep)
	if err != nil {
		return err
	}
	s, err := newSession(cfg, step)
	if err != nil {
		return err
	}

	f := s.Frame()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "step %d / %d: %s\n\n", f.Step, f.Total, f.Entry.Name)
	g, ok := viz.Graph(f.Snapshot, cfg.Plot.Width, cfg.Plot.Height)
	if !ok {
		fmt.Fprintln(out, "no numeric sequences to plot")
		return nil
	}
	fmt.Fprintln(out, g)
	return nil
}

func playSteps(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	s, err := newSession(cfg, cfg.StartStep)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printFrame(out, s.Frame())
	s.AddObserver(player.ObserverFunc(func(f player.Frame) {
		printFrame(out, f)
	}))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := player.NewRunner(s, log)
	errc := make(chan error, 1)
	go func() { errc <- r.Run(ctx) }()

	if _, err := r.Toggle(ctx); err != nil {
		return err
	}
	log.Info().
		Int("from", cfg.StartStep).
		Dur("interval", cfg.Interval).
		Msg("auto-play started")

	select {
	case <-r.Finished():
		log.Info().Msg("walkthrough complete")
	case <-ctx.Done():
		log.Info().Msg("interrupted")
	}
	stop()

	if err := <-errc; err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func printFrame(w io.Writer, f player.Frame) {
	fmt.Fprintf(w, "── step %d / %d ──\n", f.Step, f.Total)
	fmt.Fprintln(w, f.Tree.Text())
}
