package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rzz0/s3-lifecycle-manager/internal/flags"
	"github.com/rzz0/s3-lifecycle-manager/internal/report"
)

type logScanFlags struct {
	provider string
	bucket   string
	prefix   string
	output   string
}

func newLogScanCmd(app *appContainer) *cobra.Command {
	cmdFlags := logScanFlags{}

	logScanCmd := &cobra.Command{
		Use:   "logscan",
		Short: "Report job-log object paths under the configured prefix",
		Long: `Lists object keys under the configured job-log bucket and prefix,
categorizes them into temporary and Spark-UI paths by pattern matching, and
writes them to a CSV report.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			providerName := app.resolveProvider(cmdFlags.provider)

			scanCfg := app.Config.LogScan
			if cmdFlags.bucket != "" {
				scanCfg.Bucket = cmdFlags.bucket
			}
			if cmdFlags.prefix != "" {
				scanCfg.Prefix = cmdFlags.prefix
			}
			if cmdFlags.output != "" {
				scanCfg.Report = cmdFlags.output
			}
			if scanCfg.Bucket == "" {
				return fmt.Errorf("no job-log bucket configured. Use 's3lifecycle config set logscan.bucket <name>' or the --%s flag", flags.Bucket)
			}

			client, err := app.getClient(ctx, providerName)
			if err != nil {
				return err
			}
			defer client.Close()

			paths, err := app.LogScanService.Scan(ctx, client, scanCfg)
			if err != nil {
				return err
			}

			if err := report.WriteLogPathReport(scanCfg.Report, paths); err != nil {
				return err
			}
			app.Logger.Info("Log path report written", "path", scanCfg.Report, "keys", len(paths))

			fmt.Println(app.Formatter.FormatLogPaths(paths))
			return nil
		},
	}

	logScanCmd.Flags().StringVarP(&cmdFlags.provider, flags.Provider, flags.ProviderShort, "", "The provider to scan (defaults to the configured provider)")
	logScanCmd.Flags().StringVarP(&cmdFlags.bucket, flags.Bucket, flags.BucketShort, "", "Job-log bucket (defaults to logscan.bucket)")
	logScanCmd.Flags().StringVar(&cmdFlags.prefix, flags.Prefix, "", "Key prefix to scan under (defaults to logscan.prefix)")
	logScanCmd.Flags().StringVarP(&cmdFlags.output, flags.Output, flags.OutputShort, "", "Path of the CSV report (defaults to logscan.report)")

	return logScanCmd
}
