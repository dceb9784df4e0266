package auth

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"github.com/rzz0/s3-lifecycle-manager/internal/ui/prompt"
)

// EnsureCredentials verifies that the standard AWS credential chain yields
// working credentials, by calling sts:GetCallerIdentity. When it doesn't,
// the user is prompted for credentials, which are exported to the process
// environment and optionally persisted to ~/.aws/credentials.
func EnsureCredentials(ctx context.Context, region string, prompter prompt.Prompter, logger *slog.Logger) error {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return fmt.Errorf("failed to load AWS config: %w", err)
	}

	stsClient := sts.NewFromConfig(cfg)
	if _, err := stsClient.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{}); err == nil {
		logger.Info("AWS credentials are already configured")
		return nil
	}

	logger.Info("AWS credentials not found, prompting for input")

	accessKeyID, err := prompter.ReadLine("AWS Access Key ID")
	if err != nil {
		return err
	}
	secretAccessKey, err := prompter.ReadSecret("AWS Secret Access Key")
	if err != nil {
		return err
	}
	sessionToken, err := prompter.ReadSecret("AWS Session Token (leave empty if not applicable)")
	if err != nil {
		return err
	}

	if accessKeyID == "" || secretAccessKey == "" {
		return fmt.Errorf("AWS Access Key ID and Secret Access Key are required")
	}

	os.Setenv("AWS_ACCESS_KEY_ID", accessKeyID)
	os.Setenv("AWS_SECRET_ACCESS_KEY", secretAccessKey)
	if sessionToken != "" {
		os.Setenv("AWS_SESSION_TOKEN", sessionToken)
	}

	answer, err := prompter.ReadLine("Do you want to save these credentials for future use? (y/n)")
	if err != nil {
		return err
	}
	if strings.EqualFold(answer, "y") {
		path, err := defaultCredentialsPath()
		if err != nil {
			return err
		}
		if err := WriteCredentialsFile(path, accessKeyID, secretAccessKey, sessionToken); err != nil {
			return err
		}
		logger.Info("Credentials saved", "path", path)
	}

	return nil
}

func defaultCredentialsPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("error getting user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".aws", "credentials"), nil
}

// WriteCredentialsFile persists credentials under the [default] profile in
// the standard shared-credentials INI layout.
func WriteCredentialsFile(path, accessKeyID, secretAccessKey, sessionToken string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("error creating credentials directory: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("[default]\n")
	fmt.Fprintf(&sb, "aws_access_key_id = %s\n", accessKeyID)
	fmt.Fprintf(&sb, "aws_secret_access_key = %s\n", secretAccessKey)
	if sessionToken != "" {
		fmt.Fprintf(&sb, "aws_session_token = %s\n", sessionToken)
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0600); err != nil {
		return fmt.Errorf("error writing credentials file: %w", err)
	}
	return nil
}
