package xdfstream

import (
	"log/slog"
	"os"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

// SetLogger overrides the package-level logger used to report non-fatal
// reconstruction warnings (missing footer, missing header for a footer,
// truncated file tail). The default logger writes to stderr; passing nil
// silences warnings by installing a discard logger.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.NewTextHandler(discardWriter{}, nil))
	}

	logger = l
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }
