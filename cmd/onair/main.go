package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/genricoloni/onair/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

const stopTimeout = 10 * time.Second

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

type rootOptions struct {
	cfgFile   string
	streamURL string
	serverURL string
	interval  time.Duration
	player    string
	logLevel  string
	headless  bool
	autostart bool
	noMPRIS   bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "onair",
		Short: "Listen to a radio stream with a live now playing display",
		Long: `onair plays an internet radio stream through an external player
(mpv, ffplay, mpg123 or vlc) and polls the station for the track on air.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.cfgFile, "config", "c", "", "config file (default: ~/.config/onair/config.toml)")
	cmd.PersistentFlags().StringVar(&opts.serverURL, "server-url", "", "station server serving /updateinfo")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	cmd.Flags().StringVar(&opts.streamURL, "stream-url", "", "audio stream URL")
	cmd.Flags().DurationVar(&opts.interval, "interval", 0, "now playing refresh interval")
	cmd.Flags().StringVar(&opts.player, "player", "", "stream player binary (default: first of mpv, ffplay, mpg123, cvlc)")
	cmd.Flags().BoolVar(&opts.headless, "headless", false, "no terminal UI, log to stderr")
	cmd.Flags().BoolVar(&opts.autostart, "autostart", false, "start playing immediately")
	cmd.Flags().BoolVar(&opts.noMPRIS, "no-mpris", false, "do not publish an MPRIS player on the session bus")

	cmd.AddCommand(newNowCmd(opts), newVersionCmd())
	return cmd
}

// loadConfig layers flags over the config file and environment
func loadConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if opts.cfgFile != "" {
		cfg, err = config.LoadFrom(opts.cfgFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("stream-url") {
		cfg.StreamURL = opts.streamURL
	}
	if flags.Changed("server-url") {
		cfg.ServerURL = opts.serverURL
	}
	if flags.Changed("interval") {
		cfg.PollInterval.Duration = opts.interval
	}
	if flags.Changed("player") {
		cfg.Player.Command = opts.player
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if flags.Changed("headless") {
		cfg.Headless = opts.headless
	}
	if flags.Changed("autostart") {
		cfg.Autostart = opts.autostart
	}
	if flags.Changed("no-mpris") {
		cfg.DisableMPRIS = opts.noMPRIS
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// run starts the application and blocks until a signal or a quit command
func run(ctx context.Context, cfg *config.Config) error {
	app := fx.New(AppOptions(cfg))

	// Handle graceful shutdown
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		return err
	}

	select {
	case <-ctx.Done():
	case <-app.Done():
	}

	stopCtx, stopCancel := context.WithTimeout(context.Background(), stopTimeout)
	defer stopCancel()
	return app.Stop(stopCtx)
}
