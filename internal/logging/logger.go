// Package logging builds the application logger. The TUI owns stdout,
// so logs go to a file under the data directory; each run is tagged
// with a fresh session id so interleaved runs can be told apart.
package logging

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a logger writing to <dir>/logs/medimind.log. With debug
// set, debug-level entries are kept; otherwise info and up. Callers
// that can tolerate running without logs should fall back to
// zap.NewNop() on error.
func New(dir string, debug bool) (*zap.Logger, error) {
	logsDir := filepath.Join(dir, "logs")
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return nil, err
	}

	f, err := os.OpenFile(filepath.Join(logsDir, "medimind.log"),
		os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}

	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encCfg),
		zapcore.Lock(f),
		level,
	)

	return zap.New(core).With(
		zap.String("session_id", uuid.NewString()),
	), nil
}
