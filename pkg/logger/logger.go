package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger printf-логгер поверх zap
// Пишет одновременно в stdout и в файл (если указан)
type Logger struct {
	zl   *zap.Logger
	sl   *zap.SugaredLogger
	file *os.File
}

// New создает логгер с уровнем level ("debug", "info", "warn", "error")
// Пустой path означает вывод только в stdout
func New(path string, level string) (*Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(os.Stdout), lvl),
	}

	var file *os.File
	if path != "" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("logger: create log dir: %w", err)
			}
		}
		file, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logger: open log file: %w", err)
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(file), lvl))
	}

	zl := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(1))

	return &Logger{zl: zl, sl: zl.Sugar(), file: file}, nil
}

// NewNop логгер, который ничего не пишет (для тестов)
func NewNop() *Logger {
	zl := zap.NewNop()
	return &Logger{zl: zl, sl: zl.Sugar()}
}

func parseLevel(level string) (zap.AtomicLevel, error) {
	if strings.TrimSpace(level) == "" {
		return zap.NewAtomicLevelAt(zapcore.InfoLevel), nil
	}
	lvl, err := zap.ParseAtomicLevel(strings.ToLower(level))
	if err != nil {
		return zap.AtomicLevel{}, fmt.Errorf("logger: unknown level %q: %w", level, err)
	}
	return lvl, nil
}

func (l *Logger) Debug(format string, v ...interface{}) {
	l.sl.Debugf(format, v...)
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.sl.Infof(format, v...)
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.sl.Warnf(format, v...)
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.sl.Errorf(format, v...)
}

// Fatal пишет сообщение и завершает процесс
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.sl.Fatalf(format, v...)
}

// With возвращает дочерний логгер с постоянным полем
func (l *Logger) With(key string, value interface{}) *Logger {
	sl := l.sl.With(key, value)
	return &Logger{zl: sl.Desugar(), sl: sl, file: nil}
}

// Close сбрасывает буферы и закрывает файл
func (l *Logger) Close() error {
	_ = l.zl.Sync()
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
