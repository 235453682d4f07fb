package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe/internal/bot"
	"github.com/rocketscienceinc/tictactoe/internal/console"
	"github.com/rocketscienceinc/tictactoe/internal/game"
	"github.com/rocketscienceinc/tictactoe/internal/snapshot"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	RunE: func(_ *cobra.Command, _ []string) error {
		conf, err := loadConfig()
		if err != nil {
			return err
		}

		var mover game.Mover
		if conf.Bot.Enabled {
			mover = bot.NewEngine()
		}

		runner := console.New(os.Stdin, os.Stdout, snapshot.New(conf.SnapshotPath), mover)

		interrupt := make(chan os.Signal, 1)
		signal.Notify(interrupt, syscall.SIGINT, syscall.SIGTERM)

		done := make(chan error, 1)
		go func() {
			done <- runner.Run()
		}()

		select {
		case err = <-done:
			return err
		case <-interrupt:
			fmt.Println("\nExiting. Goodbye!")
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(playCmd)
}
