package cmd

import (
	"fmt"
	"os"

	"github.com/nguyentranbao-ct/lighting-api/internal/app"
	"github.com/nguyentranbao-ct/lighting-api/internal/server"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "lighting-api",
	Short:         "Design Lighting catalogue and contact API",
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		app.Invoke(
			server.StartServer,
		).Run()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
