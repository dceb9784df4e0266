package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rzz0/s3-lifecycle-manager/internal/flags"
)

func newRootCmd(app *appContainer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "s3lifecycle",
		Short: "s3lifecycle manages object-storage bucket lifecycle policies.",
		Long: `A command-line tool to back up, restore, and report on the lifecycle
policies of object-storage buckets. The default backup run enumerates all
buckets visible to the account, saves each bucket's lifecycle configuration
to a local backup file, and writes a CSV report.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolP(flags.Debug, flags.DebugShort, false, "Enable verbose logging")

	rootCmd.AddCommand(
		newBackupCmd(app),
		newRestoreCmd(app),
		newBackupsCmd(app),
		newLogScanCmd(app),
		newConfigCmd(app),
	)
	return rootCmd
}

func Execute(app *appContainer) {
	if err := newRootCmd(app).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
