package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/om607397-wq/namaa/cmd/server/commands"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "namaa",
		Short: "Namaa personal tracking service",
		Long:  `Namaa is a local-first personal tracking service (prayers, Quran, study, habits and more) with optional cloud backup to Firebase.`,
	}

	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewExportCommand())
	rootCmd.AddCommand(commands.NewImportCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
