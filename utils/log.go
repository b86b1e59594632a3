package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/sirupsen/logrus"
	"github.com/topfreegames/pitaya/v3/pkg/logger/interfaces"
	logruswrapper "github.com/topfreegames/pitaya/v3/pkg/logger/logrus"
)

// LogOptions 日志文件配置
type LogOptions struct {
	Level  logrus.Level
	Dir    string
	MaxAge time.Duration
}

type Formatter struct{}

func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	timestamp := entry.Time.Format(time.DateTime)
	level := strings.ToLower(entry.Level.String())

	if entry.Caller == nil {
		return []byte(fmt.Sprintf("%s [%s] %s\n", timestamp, level, entry.Message)), nil
	}
	fileName := filepath.Base(entry.Caller.File)
	funcName := entry.Caller.Function
	if i := strings.LastIndex(funcName, "."); i >= 0 {
		funcName = funcName[i+1:]
	}

	logMessage := fmt.Sprintf("%s [%s] %s:%d %s %s\n", timestamp, level, fileName, entry.Caller.Line, funcName, entry.Message)
	return []byte(logMessage), nil
}

// Logger 按天切分日志文件的 logrus，包装为 pitaya 日志接口
func Logger(opts LogOptions) (interfaces.Logger, error) {
	writer, err := newSafeRotateLogs(opts.Dir, opts.MaxAge)
	if err != nil {
		return nil, err
	}
	l := logrus.New()
	l.SetOutput(writer)
	l.SetReportCaller(true)
	l.Formatter = &Formatter{}
	l.SetLevel(opts.Level)
	return logruswrapper.NewWithFieldLogger(l), nil
}

func newSafeRotateLogs(dir string, maxAge time.Duration) (*SafeRotateLogs, error) {
	programName := filepath.Base(os.Args[0])
	logFile := filepath.Join(dir, fmt.Sprintf("%s-%%Y%%m%%d.log", programName))
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("create log directory %s: %w", dir, err)
	}

	s := &SafeRotateLogs{
		logPattern: logFile,
		maxAge:     maxAge,
		rotation:   24 * time.Hour,
	}
	if err := s.open(); err != nil {
		return nil, err
	}
	return s, nil
}

// SafeRotateLogs 当前日志文件被删除时重建
type SafeRotateLogs struct {
	*rotatelogs.RotateLogs
	logPattern string
	maxAge     time.Duration
	rotation   time.Duration
}

func (s *SafeRotateLogs) open() error {
	writer, err := rotatelogs.New(
		s.logPattern,
		rotatelogs.WithMaxAge(s.maxAge),
		rotatelogs.WithRotationTime(s.rotation),
	)
	if err != nil {
		return fmt.Errorf("create log writer: %w", err)
	}
	s.RotateLogs = writer
	return nil
}

func (s *SafeRotateLogs) Write(p []byte) (n int, err error) {
	if current := s.RotateLogs.CurrentFileName(); current != "" {
		if _, err := os.Stat(current); os.IsNotExist(err) {
			if err := s.open(); err != nil {
				return 0, err
			}
		}
	}
	return s.RotateLogs.Write(p)
}
