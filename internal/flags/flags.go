package flags

// Centralized definitions for CLI flags used across the application

const (
	// Provider flags select the object-storage provider a run targets
	Provider      = "provider"
	ProviderShort = "p"

	// BackupDir flags override the directory holding per-bucket backup files
	BackupDir = "backup-dir"

	// Report flags override the CSV report path
	Report = "report"

	// Bucket flags override the bucket used for log scanning
	Bucket      = "bucket"
	BucketShort = "b"

	// Prefix flags filter object listings
	Prefix = "prefix"

	// Output flags override the log-scan report path
	Output      = "output"
	OutputShort = "o"

	// Force flags bypass interactive confirmation prompts for destructive operations
	Force      = "force"
	ForceShort = "f"

	// Debug flags enable verbose logging
	Debug      = "debug"
	DebugShort = "d"
)
