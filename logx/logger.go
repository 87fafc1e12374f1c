package logx

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/fatih/color"
)

// OutputFormat defines the log output format
type OutputFormat string

const (
	FormatConsole OutputFormat = "console"
	FormatJSON    OutputFormat = "json"
)

// Logger represents a logger instance
type Logger struct {
	level      Level
	out        io.Writer
	prefix     string
	showCaller bool
	colored    bool
	format     OutputFormat
	formatter  *ValueFormatter
}

// New creates a new logger with default settings
func New() *Logger {
	return &Logger{
		level:      InfoLevel,
		out:        os.Stdout,
		prefix:     "",
		showCaller: true,
		colored:    true,
		format:     FormatConsole,
		formatter:  NewValueFormatter(),
	}
}

// SetLevel sets the minimum log level
func (l *Logger) SetLevel(level Level) {
	l.level = level
}

// SetOutput sets the output destination
func (l *Logger) SetOutput(w io.Writer) {
	l.out = w
}

// SetPrefix sets a prefix for all log messages
func (l *Logger) SetPrefix(prefix string) {
	l.prefix = prefix
}

// SetShowCaller enables or disables showing caller information
func (l *Logger) SetShowCaller(show bool) {
	l.showCaller = show
}

// SetColored enables or disables colored output
func (l *Logger) SetColored(colored bool) {
	l.colored = colored
}

// SetFormat sets the output format
func (l *Logger) SetFormat(format OutputFormat) {
	l.format = format
	// Disable colors for JSON format
	if format == FormatJSON {
		l.colored = false
	}
}

// WithPrefix returns a copy of the logger with the given prefix
func (l *Logger) WithPrefix(prefix string) *Logger {
	clone := *l
	clone.prefix = prefix
	return &clone
}

// IsLevelEnabled checks if a level is enabled
func (l *Logger) IsLevelEnabled(level Level) bool {
	return level >= l.level
}

// findCaller finds the first caller outside of the logx package
func (l *Logger) findCaller() string {
	if !l.showCaller {
		return ""
	}

	// Start from frame 1 (skip this function itself)
	for i := 1; i < 15; i++ {
		_, file, line, ok := runtime.Caller(i)
		if !ok {
			break
		}

		filename := filepath.Base(file)

		// Skip internal Go runtime files
		if strings.HasPrefix(filename, "proc.go") ||
			strings.HasPrefix(filename, "runtime") ||
			strings.HasPrefix(filename, "asm_") {
			continue
		}

		// Skip logx package files
		if strings.Contains(file, "logx") &&
			(strings.HasSuffix(file, "/logger.go") ||
				strings.HasSuffix(file, "/global.go") ||
				strings.HasSuffix(file, "/formatter.go") ||
				strings.HasSuffix(file, "/level.go")) {
			continue
		}

		// This should be the actual caller
		return fmt.Sprintf(" %s:%d", filename, line)
	}

	return ""
}

// logInternal is the core logging function
func (l *Logger) logInternal(level Level, formatArgs bool, msg string, args ...any) {
	if !l.IsLevelEnabled(level) {
		return
	}

	if l.format == FormatJSON {
		l.logJSON(level, msg, args...)
		return
	}
	l.logConsole(level, formatArgs, msg, args...)
}

// logJSON outputs structured JSON logs
func (l *Logger) logJSON(level Level, msg string, args ...any) {
	logEntry := map[string]any{
		"timestamp": time.Now().Format(time.RFC3339),
		"level":     level.String(),
		"message":   fmt.Sprintf(msg, args...),
	}

	if l.prefix != "" {
		logEntry["prefix"] = l.prefix
	}

	if l.showCaller {
		caller := l.findCaller()
		if caller != "" {
			logEntry["caller"] = strings.TrimSpace(caller)
		}
	}

	if data, err := json.Marshal(logEntry); err == nil {
		fmt.Fprintln(l.out, string(data))
	}
}

// logConsole outputs human-readable console logs
func (l *Logger) logConsole(level Level, formatArgs bool, msg string, args ...any) {
	var processedArgs []any
	if formatArgs && level <= DebugLevel {
		processedArgs = make([]any, len(args))
		for i, arg := range args {
			processedArgs[i] = l.formatter.Format(arg)
		}
	} else {
		processedArgs = args
	}

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	levelStr := level.String()
	prefix := l.prefix

	if l.colored {
		levelStr = level.Sprint()
		if prefix != "" {
			prefix = color.New(color.FgMagenta).Sprint(prefix)
		}
	}

	caller := l.findCaller()
	message := fmt.Sprintf(msg, processedArgs...)

	var fullMessage string
	if prefix != "" {
		fullMessage = fmt.Sprintf("[%s] %s [%s]%s: %s\n",
			timestamp, prefix, levelStr, caller, message)
	} else {
		fullMessage = fmt.Sprintf("[%s] [%s]%s: %s\n",
			timestamp, levelStr, caller, message)
	}

	fmt.Fprint(l.out, fullMessage)
}

// Trace logs a message at trace level
func (l *Logger) Trace(msg string, args ...any) {
	l.logInternal(TraceLevel, true, msg, args...)
}

// Debug logs a message at debug level
func (l *Logger) Debug(msg string, args ...any) {
	l.logInternal(DebugLevel, true, msg, args...)
}

// Info logs a message at info level
func (l *Logger) Info(msg string, args ...any) {
	l.logInternal(InfoLevel, false, msg, args...)
}

// Warn logs a message at warn level
func (l *Logger) Warn(msg string, args ...any) {
	l.logInternal(WarnLevel, false, msg, args...)
}

// Error logs a message at error level
func (l *Logger) Error(msg string, args ...any) {
	l.logInternal(ErrorLevel, false, msg, args...)
}

// DebugValue logs a named value with full debug formatting
func (l *Logger) DebugValue(name string, value any) {
	if !l.IsLevelEnabled(DebugLevel) {
		return
	}

	if l.format == FormatJSON {
		logEntry := map[string]any{
			"timestamp": time.Now().Format(time.RFC3339),
			"level":     "DEBUG",
			"message":   fmt.Sprintf("%s = %s", name, l.formatter.Format(value)),
			"value":     value,
		}
		if l.showCaller {
			caller := l.findCaller()
			if caller != "" {
				logEntry["caller"] = strings.TrimSpace(caller)
			}
		}
		if data, err := json.Marshal(logEntry); err == nil {
			fmt.Fprintln(l.out, string(data))
		}
		return
	}

	formatted := l.formatter.Format(value)
	l.logConsole(DebugLevel, false, "%s = %s", name, formatted)
}
