package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rzz0/s3-lifecycle-manager/internal/backup"
	"github.com/rzz0/s3-lifecycle-manager/internal/flags"
	"github.com/rzz0/s3-lifecycle-manager/internal/service"
)

type restoreFlags struct {
	provider  string
	backupDir string
	force     bool
}

func newRestoreCmd(app *appContainer) *cobra.Command {
	cmdFlags := restoreFlags{}

	restoreCmd := &cobra.Command{
		Use:   "restore [bucket-name]",
		Short: "Restore a bucket's lifecycle policy from its backup file",
		Long: `Reads the bucket's backup file from the backup directory and re-applies it
as the bucket's lifecycle configuration, fully replacing whatever
configuration currently exists. An empty sentinel backup clears the
bucket's lifecycle configuration.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			bucketName := args[0]
			providerName := app.resolveProvider(cmdFlags.provider)

			if !cmdFlags.force {
				confirmed, err := app.Prompter.Confirm(
					fmt.Sprintf("Restoring will replace the current lifecycle configuration of bucket '%s' on %s.", bucketName, providerName),
					bucketName,
				)
				if err != nil {
					return err
				}
				if !confirmed {
					fmt.Println("Restore cancelled.")
					return nil
				}
			}

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

			if err := backupService.Restore(ctx, client, bucketName); err != nil {
				return fmt.Errorf("error restoring lifecycle policy for bucket '%s': %w", bucketName, err)
			}

			fmt.Printf("Lifecycle policy for bucket '%s' restored successfully from %s.\n", bucketName, store.Path(bucketName))
			return nil
		},
	}

	restoreCmd.Flags().StringVarP(&cmdFlags.provider, flags.Provider, flags.ProviderShort, "", "The provider where the bucket resides (defaults to the configured provider)")
	restoreCmd.Flags().StringVar(&cmdFlags.backupDir, flags.BackupDir, "", "Directory holding the backup files (defaults to backup.dir)")
	restoreCmd.Flags().BoolVarP(&cmdFlags.force, flags.Force, flags.ForceShort, false, "Skip the interactive confirmation")

	return restoreCmd
}

func newBackupsCmd(app *appContainer) *cobra.Command {
	var backupDir string

	backupsCmd := &cobra.Command{
		Use:   "backups",
		Short: "List buckets with a backup file in the backup directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := backupDir
			if dir == "" {
				dir = app.Config.Backup.Dir
			}
			store, err := backup.NewStore(dir)
			if err != nil {
				return err
			}

			buckets, err := store.List()
			if err != nil {
				return err
			}

			if len(buckets) == 0 {
				fmt.Printf("No backups found in %s.\n", dir)
				return nil
			}
			for _, b := range buckets {
				fmt.Println(b)
			}
			return nil
		},
	}

	backupsCmd.Flags().StringVar(&backupDir, flags.BackupDir, "", "Directory holding the backup files (defaults to backup.dir)")

	return backupsCmd
}
