package main

import (
	"os"

	"github.com/rzz0/s3-lifecycle-manager/internal/flags"
	"github.com/rzz0/s3-lifecycle-manager/internal/logger"

	// Explicitly import provider implementations to ensure their init() functions run and they register themselves
	_ "github.com/rzz0/s3-lifecycle-manager/pkg/storage/aws"
	_ "github.com/rzz0/s3-lifecycle-manager/pkg/storage/gcp"
)

func main() {
	log := logger.NewLogger(debugRequested(os.Args[1:]))

	app, err := newApp(log)
	if err != nil {
		log.Error("Failed to initialize application", "error", err)
		os.Exit(1)
	}
	Execute(app)
}

// The logger must exist before cobra parses anything, so the debug flag is
// detected with a plain argument scan.
func debugRequested(args []string) bool {
	for _, a := range args {
		if a == "--"+flags.Debug || a == "-"+flags.DebugShort {
			return true
		}
	}
	return false
}
