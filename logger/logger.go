package logger

import (
	"os"
	"path"

	"github.com/xIceArcher/go-ytstats/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Init replaces the global zap logger. Stdout is reserved for command output, so console
// logs go to stderr.
func Init(cfg config.LogConfig) error {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return err
	}

	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), level),
	}

	if cfg.LogPath != "" {
		infoWriter := zapcore.AddSync(&lumberjack.Logger{
			Filename:   path.Join(cfg.LogPath, "info.log"),
			MaxSize:    50,
			MaxBackups: 3,
			MaxAge:     7,
		})

		errorWriter := zapcore.AddSync(&lumberjack.Logger{
			Filename:   path.Join(cfg.LogPath, "error.log"),
			MaxSize:    50,
			MaxBackups: 3,
			MaxAge:     28,
		})

		cores = append(cores,
			zapcore.NewCore(encoder, infoWriter, level),
			zapcore.NewCore(encoder, errorWriter, zap.ErrorLevel),
		)
	}

	logger := zap.New(zapcore.NewTee(cores...), zap.ErrorOutput(os.Stderr))
	zap.ReplaceGlobals(logger)
	return nil
}
