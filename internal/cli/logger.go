package cli

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

// newLogger builds a console logger writing to w at the given level. The
// menu owns stdout, so w is normally stderr.
func newLogger(level string, w io.Writer) (*zap.Logger, error) {
	if level == "" {
		level = types.DefaultLogLevel
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", types.ErrLogLevelUnknown, level)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(lvl),
	)
	return zap.New(core).Named("contacts"), nil
}
