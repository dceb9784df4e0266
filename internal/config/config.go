package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	configDirName  = "s3lifecycle"
	configFileName = "config"
	configFileType = "yaml"
	envPrefix      = "S3LIFECYCLE"
)

type AWSConfig struct {
	Region string `mapstructure:"region" validate:"required"`
	// Endpoint and PathStyle support S3-compatible services (MinIO, MCG)
	Endpoint  string `mapstructure:"endpoint" validate:"omitempty,url"`
	PathStyle bool   `mapstructure:"path_style"`
}

type GCPConfig struct {
	Project string `mapstructure:"project" validate:"required"`
}

type BackupConfig struct {
	Dir string `mapstructure:"dir" validate:"required"`
}

type ReportConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

type LogScanConfig struct {
	Bucket         string `mapstructure:"bucket"`
	Prefix         string `mapstructure:"prefix"`
	TempPattern    string `mapstructure:"temp_pattern" validate:"required"`
	SparkUIPattern string `mapstructure:"sparkui_pattern" validate:"required"`
	Report         string `mapstructure:"report" validate:"required"`
}

type Config struct {
	Provider string        `mapstructure:"provider" validate:"required,oneof=aws gcp"`
	AWS      *AWSConfig    `mapstructure:"aws"`
	GCP      *GCPConfig    `mapstructure:"gcp"`
	Backup   BackupConfig  `mapstructure:"backup"`
	Report   ReportConfig  `mapstructure:"report"`
	LogScan  LogScanConfig `mapstructure:"logscan"`
}

// ConfigManager owns the viper instance backing the persisted configuration
// file (~/.config/s3lifecycle/config.yaml) and its S3LIFECYCLE_* environment
// overrides.
type ConfigManager struct {
	v        *viper.Viper
	path     string
	validate *validator.Validate
}

func NewConfigManager() (*ConfigManager, error) {
	dir, err := configDir()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(dir)

	v.SetDefault("provider", "aws")
	v.SetDefault("backup.dir", "./backups")
	v.SetDefault("report.path", "lifecycle_buckets.csv")
	v.SetDefault("logscan.temp_pattern", "temporary/")
	v.SetDefault("logscan.sparkui_pattern", "sparkHistoryLogs/")
	v.SetDefault("logscan.report", "glue_log_paths.csv")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return &ConfigManager{
		v:        v,
		path:     filepath.Join(dir, configFileName+"."+configFileType),
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}, nil
}

func configDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("error getting user home directory: %w", err)
	}

	dir := filepath.Join(homeDir, ".config", configDirName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating config directory: %w", err)
	}
	return dir, nil
}

// LoadConfig unmarshals and validates the effective configuration.
func (m *ConfigManager) LoadConfig() (*Config, error) {
	var cfg Config
	if err := m.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if err := m.validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func (m *ConfigManager) SetValue(key, value string) error {
	m.v.Set(strings.ToLower(key), value)
	if err := m.v.WriteConfigAs(m.path); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}
	return nil
}

func (m *ConfigManager) GetValue(key string) (string, bool) {
	key = strings.ToLower(key)
	if !m.v.IsSet(key) {
		return "", false
	}
	return m.v.GetString(key), true
}

// DeleteValue blanks a key out. Viper has no unset operation, so deletion is
// modeled as writing the empty string; empty values are hidden from listings.
func (m *ConfigManager) DeleteValue(key string) (bool, error) {
	key = strings.ToLower(key)
	if v, ok := m.GetValue(key); !ok || v == "" {
		return false, nil
	}
	if err := m.SetValue(key, ""); err != nil {
		return false, err
	}
	return true, nil
}

func (m *ConfigManager) GetAllSettings() map[string]interface{} {
	return m.v.AllSettings()
}

// Path returns the location of the backing config file.
func (m *ConfigManager) Path() string {
	return m.path
}
