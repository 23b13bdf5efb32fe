package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tui"
)

// RunApp - runs the application. Exactly one game instance exists for the
// lifetime of the process; it is created here and injected into the
// presentation layer.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	game := tictactoe.New()
	adapter := tui.New(logger, conf.Display, game)

	uiErrCh := make(chan error, 1)
	go func() {
		uiErrCh <- adapter.Run(ctx)
	}()

	select {
	case err := <-uiErrCh:
		if err != nil {
			return fmt.Errorf("presentation layer error: %w", err)
		}
		log.Info("Game closed", "final_status", game.Status().String())
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		<-uiErrCh
		return nil
	}
}
