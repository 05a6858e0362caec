package main

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	backendtcell "github.com/odvcencio/furry-spotlight/backend/tcell"
	"github.com/odvcencio/furry-spotlight/config"
	"github.com/odvcencio/furry-spotlight/logging"
	"github.com/odvcencio/furry-spotlight/runtime"
	"github.com/odvcencio/furry-spotlight/spotlight"
)

//go:embed tours/home.yaml
var builtinTours []byte

var errNotTerminal = errors.New("demo needs an interactive terminal")

func newDemoCmd() *cobra.Command {
	var (
		tourFile string
		tourName string
		logFile  string
	)
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the interactive demo with a guided tour",
		Long: `Opens a sample home screen and presents a tour over it.

Enter, Right, Space or n advances; Esc or d dismisses; p replays the
tour and q quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if tourFile != "" {
				cfg.Tour.File = tourFile
			}
			if tourName != "" {
				cfg.Tour.Name = tourName
			}
			if logFile != "" {
				cfg.Log.File = logFile
			}
			return runDemo(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&tourFile, "tours", "", "tour file (default: built-in tours)")
	cmd.Flags().StringVar(&tourName, "tour", "", "name of the tour to present")
	cmd.Flags().StringVar(&logFile, "log", "", "append logs to this file")
	return cmd
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return config.Config{}, err
	}
	return config.Load(path)
}

// loadTours reads path, or the built-in tours when path is empty.
func loadTours(path string) (*spotlight.TourSet, error) {
	if path == "" {
		return spotlight.DecodeTours(bytes.NewReader(builtinTours))
	}
	return spotlight.LoadTours(path)
}

func runDemo(ctx context.Context, cfg config.Config) error {
	logger, closeLog, err := logging.Open(cfg.Log.File, cfg.LogLevel())
	if err != nil {
		return err
	}
	defer closeLog()

	tours, err := loadTours(cfg.Tour.File)
	if err != nil {
		return err
	}
	tour, err := tours.Find(cfg.Tour.Name)
	if err != nil {
		return err
	}
	opts, err := cfg.Overlay.Options()
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}
	be, err := backendtcell.New()
	if err != nil {
		return fmt.Errorf("create backend: %w", err)
	}
	d := newDemo(tour, opts, logger)
	app := runtime.NewApp(runtime.AppConfig{
		Backend:  be,
		Root:     d.root,
		TickRate: time.Second / 30,
		Logger:   logger,
	})
	d.replay()

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := app.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("demo failed", "error", err)
		return err
	}
	return nil
}
