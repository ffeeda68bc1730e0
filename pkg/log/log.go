// package log provides a simple logger with leveled log messages.
//
//   - DebugLevel (highest verbosity)
//   - InfoLevel
//   - WarningLevel
//   - ErrorLevel
//   - FatalLevel (lowest verbosity)
//
// Output is written to the default logger of the standard log package.
package log

import (
	"fmt"
	"io"
	"log"
	"sync/atomic"
)

type level int32

const (
	DebugLevel   level = iota // DebugLevel logs all messages
	InfoLevel                 // InfoLevel logs info messages and and above
	WarningLevel              // WarningLevel logs warning messages and above
	ErrorLevel                // ErrorLevel logs error messages and above
	FatalLevel                // FatalLevel only logs fatal messages
)

var tags = [...]string{
	DebugLevel:   "DEBU",
	InfoLevel:    "INFO",
	WarningLevel: "WARN",
	ErrorLevel:   "ERRO",
	FatalLevel:   "FATA",
}

var levelNames = map[string]level{
	"debug":   DebugLevel,
	"info":    InfoLevel,
	"warning": WarningLevel,
	"error":   ErrorLevel,
	"fatal":   FatalLevel,
}

var currentLevel int32 = int32(InfoLevel)

// SetLevel sets the logging level.
func SetLevel(lv level) {
	atomic.StoreInt32(&currentLevel, int32(lv))
}

// SetLevelFromString sets the logging level by name: "debug", "info",
// "warning", "error" or "fatal".
func SetLevelFromString(levelName string) error {
	lv, ok := levelNames[levelName]
	if !ok {
		return fmt.Errorf("invalid logging level %s", levelName)
	}
	SetLevel(lv)
	return nil
}

// SetOutput sets the destination of all log messages.
func SetOutput(w io.Writer) {
	log.SetOutput(w)
}

// SetDate controls whether messages are prefixed by date and time.
func SetDate(enabled bool) {
	if enabled {
		log.SetFlags(log.LstdFlags)
	} else {
		log.SetFlags(0)
	}
}

func isEnabled(lv level) bool {
	return level(atomic.LoadInt32(&currentLevel)) <= lv
}

func logf(lv level, format string, v ...interface{}) {
	if isEnabled(lv) {
		log.Printf("["+tags[lv]+"] "+format, v...)
	}
}

func Debug(format string, v ...interface{}) {
	logf(DebugLevel, format, v...)
}

func Info(format string, v ...interface{}) {
	logf(InfoLevel, format, v...)
}

func Warning(format string, v ...interface{}) {
	logf(WarningLevel, format, v...)
}

func Error(format string, v ...interface{}) {
	logf(ErrorLevel, format, v...)
}

// Fatal logs regardless of level, and exits with status 1.
func Fatal(format string, v ...interface{}) {
	log.Fatalf("["+tags[FatalLevel]+"] "+format, v...)
}
