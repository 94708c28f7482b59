package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync/atomic"
)

// Level es la severidad de un mensaje
type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[string]Level{
	"debug":   LevelDebug,
	"info":    LevelInfo,
	"warn":    LevelWarn,
	"warning": LevelWarn,
	"error":   LevelError,
}

var (
	current int32 = int32(LevelInfo)
	base          = log.New(os.Stderr, "", log.Ldate|log.Ltime)
)

// SetLevel cambia el nivel global; valores desconocidos se ignoran
func SetLevel(s string) bool {
	l, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return false
	}
	atomic.StoreInt32(&current, int32(l))
	return true
}

func GetLevel() Level { return Level(atomic.LoadInt32(&current)) }

// SetOutput redirige la salida (usado en tests)
func SetOutput(w io.Writer) { base.SetOutput(w) }

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	}
	return "INFO"
}

func logf(l Level, format string, args ...interface{}) {
	if GetLevel() > l {
		return
	}
	if len(args) == 0 {
		base.Printf("[%s] %s", l, format)
		return
	}
	base.Printf("[%s] %s", l, fmt.Sprintf(format, args...))
}

func Debugf(format string, a ...interface{}) { logf(LevelDebug, format, a...) }
func Infof(format string, a ...interface{})  { logf(LevelInfo, format, a...) }
func Warnf(format string, a ...interface{})  { logf(LevelWarn, format, a...) }
func Errorf(format string, a ...interface{}) { logf(LevelError, format, a...) }

// Fatalf registra el error y termina el proceso
func Fatalf(format string, a ...interface{}) {
	base.Fatalf("[FATAL] %s", fmt.Sprintf(format, a...))
}
