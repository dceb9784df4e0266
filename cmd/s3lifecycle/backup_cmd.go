package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rzz0/s3-lifecycle-manager/internal/backup"
	"github.com/rzz0/s3-lifecycle-manager/internal/flags"
	"github.com/rzz0/s3-lifecycle-manager/internal/report"
	"github.com/rzz0/s3-lifecycle-manager/internal/service"
)

type backupFlags struct {
	provider  string
	backupDir string
	report    string
}

func newBackupCmd(app *appContainer) *cobra.Command {
	cmdFlags := backupFlags{}

	backupCmd := &cobra.Command{
		Use:   "backup [bucket...]",
		Short: "Back up bucket lifecycle policies and write the CSV report",
		Long: `Reads the lifecycle configuration of every bucket visible to the account
(or only the named buckets), writes one backup file per bucket into the
backup directory, and writes the CSV report. Buckets without a lifecycle
configuration are backed up as an empty sentinel file.

A later run against the same backup directory overwrites earlier backups;
point --backup-dir elsewhere to retain them.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			providerName := app.resolveProvider(cmdFlags.provider)

			client, err := app.getClient(ctx, providerName)
			if err != nil {
				return err
			}
			defer client.Close()

			backupDir := cmdFlags.backupDir
			if backupDir == "" {
				backupDir = app.Config.Backup.Dir
			}
			store, err := backup.NewStore(backupDir)
			if err != nil {
				return err
			}
			backupService := service.NewBackupService(store, app.Logger)

			policies, collectErr := app.LifecycleService.CollectPolicies(ctx, client, args)

			_, exportErr := backupService.Export(policies)

			reportPath := cmdFlags.report
			if reportPath == "" {
				reportPath = app.Config.Report.Path
			}
			reportErr := report.WritePolicyReport(reportPath, policies)
			if reportErr != nil {
				app.Logger.Error("Failed to write report", "path", reportPath, "error", reportErr)
			} else {
				app.Logger.Info("Report written", "path", reportPath, "buckets", len(policies))
			}

			fmt.Println(app.Formatter.FormatPolicyList(policies))

			// A partial run still produced backups and a report for the
			// buckets that succeeded; surface the failures via exit status.
			for _, err := range []error{collectErr, exportErr, reportErr} {
				if err != nil {
					return err
				}
			}
			return nil
		},
	}

	backupCmd.Flags().StringVarP(&cmdFlags.provider, flags.Provider, flags.ProviderShort, "", "The provider to back up from (defaults to the configured provider)")
	backupCmd.Flags().StringVar(&cmdFlags.backupDir, flags.BackupDir, "", "Directory for backup files (defaults to backup.dir)")
	backupCmd.Flags().StringVar(&cmdFlags.report, flags.Report, "", "Path of the CSV report (defaults to report.path)")

	return backupCmd
}
