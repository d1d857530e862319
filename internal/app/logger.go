package app

import (
	"fmt"
	"os"

	"github.com/nguyentranbao-ct/lighting-api/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger builds the process logger. Console output follows LOG_FORMAT, the
// optional LOG_FILE sink is always JSON and rotated.
func NewLogger(conf config.LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(conf.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", conf.Level, err)
	}

	var encoder zapcore.Encoder
	switch conf.Format {
	case "json", "":
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	case "console":
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	default:
		return nil, fmt.Errorf("invalid LOG_FORMAT %q", conf.Format)
	}

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), level),
	}
	if conf.File != "" {
		lumberJackLogger := &lumberjack.Logger{
			Filename:   conf.File,
			MaxSize:    64,
			MaxBackups: 7,
			MaxAge:     30,
			Compress:   true,
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(lumberJackLogger),
			level,
		))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), nil
}

func mustLogger(conf config.LogConfig) *zap.Logger {
	logger, err := NewLogger(conf)
	if err != nil {
		panic(err)
	}
	return logger
}
