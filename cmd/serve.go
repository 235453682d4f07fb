package cmd

import (
	"github.com/spf13/cobra"

	application "github.com/rocketscienceinc/tictactoe/internal"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the REST API server",
	RunE: func(_ *cobra.Command, _ []string) error {
		conf, err := loadConfig()
		if err != nil {
			return err
		}

		return application.RunApp(newLogger(conf), conf)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
