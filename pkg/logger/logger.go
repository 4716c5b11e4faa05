package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger printf-style логгер поверх zap
// Пишет в stdout в консольном формате и, если указан файл, дублирует записи в файл в JSON
type Logger struct {
	sugar *zap.SugaredLogger
	file  *os.File
}

// New создает логгер
// level: debug, info, warn, error (по умолчанию info)
func New(filePath string, level string) (*Logger, error) {
	lvl := zapcore.InfoLevel
	if level != "" {
		parsed, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("logger: invalid level %q: %w", level, err)
		}
		lvl = parsed
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	consoleCfg := encCfg
	consoleCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(consoleCfg), zapcore.Lock(os.Stdout), lvl),
	}

	var file *os.File
	if filePath != "" {
		f, err := os.OpenFile(filePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logger: open log file: %w", err)
		}
		file = f
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(f), lvl))
	}

	z := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(1))

	return &Logger{sugar: z.Sugar(), file: file}, nil
}

// NewNop возвращает логгер, который ничего не пишет (для тестов)
func NewNop() *Logger {
	return &Logger{sugar: zap.NewNop().Sugar()}
}

func (l *Logger) Debug(format string, v ...interface{}) {
	l.sugar.Debugf(format, v...)
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.sugar.Infof(format, v...)
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.sugar.Warnf(format, v...)
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.sugar.Errorf(format, v...)
}

// Fatal пишет сообщение и завершает процесс
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.sugar.Fatalf(format, v...)
}

// Close сбрасывает буферы и закрывает файл лога
func (l *Logger) Close() error {
	_ = l.sugar.Sync()
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
