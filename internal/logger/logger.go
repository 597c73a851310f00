// Package logger configures the process-wide logrus logger shared by the
// asset subcommands.
package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Setup points logrus at stderr so log lines never mix with the report
// output on stdout. Verbose enables debug-level messages.
func Setup(verbose bool) {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	level := logrus.InfoLevel
	if verbose {
		level = logrus.DebugLevel
	}
	logrus.SetLevel(level)
}
