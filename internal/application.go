package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe/internal/bot"
	"github.com/rocketscienceinc/tictactoe/internal/config"
	"github.com/rocketscienceinc/tictactoe/internal/game"
	"github.com/rocketscienceinc/tictactoe/internal/registry"
	"github.com/rocketscienceinc/tictactoe/transport/rest"
)

// RunApp - runs the API server until a signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig.String())
		cancel()
	}()

	// The bot capability is resolved once here; without it, sessions
	// requesting AI mode are created with the flag off.
	var mover game.Mover
	if conf.Bot.Enabled {
		mover = bot.NewEngine()
	} else {
		log.Info("Bot is disabled, AI mode will not be offered")
	}

	sessions := registry.New(logger, mover)
	handlers := rest.NewHandlers(logger, sessions)
	server := rest.New(logger, handlers)

	log.Info("Starting HTTP server", "port", conf.HTTPPort)
	if err := server.Start(ctx, conf.HTTPPort); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	return nil
}
