package cli

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger writes human readable logs to w. Only warnings and errors
// are shown unless verbose is set, in which case every construction
// attempt is logged.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	conf := zap.NewDevelopmentEncoderConfig()
	conf.TimeKey = ""

	return zap.New(zapcore.NewCore(zapcore.NewConsoleEncoder(conf), zapcore.AddSync(w), level))
}
