package logger

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
)

// Logger writes category-tagged, colored lines to stdout and optionally
// mirrors them uncolored into a log file (LOG_FILE env). It is passed
// explicitly into every component instead of living as a package global.
type Logger struct {
	mu    sync.Mutex
	file  *os.File
	debug bool

	info    *color.Color
	warn    *color.Color
	err     *color.Color
	dbg     *color.Color
	process *color.Color
}

func NewLogger() *Logger {
	l := &Logger{
		debug:   os.Getenv("DEBUG") == "true",
		info:    color.New(color.FgGreen),
		warn:    color.New(color.FgYellow),
		err:     color.New(color.FgRed, color.Bold),
		dbg:     color.New(color.FgCyan),
		process: color.New(color.FgMagenta),
	}
	if path := os.Getenv("LOG_FILE"); path != "" {
		f, ferr := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if ferr == nil {
			l.file = f
		}
	}
	return l
}

func (l *Logger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		l.file.Close()
		l.file = nil
	}
}

func (l *Logger) write(c *color.Color, level, category, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	ts := time.Now().Format("2006-01-02 15:04:05.000")
	line := fmt.Sprintf("[%s] %-5s [%s] %s", ts, level, category, msg)
	c.Fprintln(os.Stdout, line)
	if l.file != nil {
		fmt.Fprintln(l.file, line)
	}
}

func (l *Logger) Info(category, msg string)  { l.write(l.info, "INFO", category, msg) }
func (l *Logger) Warn(category, msg string)  { l.write(l.warn, "WARN", category, msg) }
func (l *Logger) Error(category, msg string) { l.write(l.err, "ERROR", category, msg) }

func (l *Logger) Debug(category, msg string) {
	if !l.debug {
		return
	}
	l.write(l.dbg, "DEBUG", category, msg)
}

func (l *Logger) Fatal(category, msg string) {
	l.write(l.err, "FATAL", category, msg)
	l.Close()
	os.Exit(1)
}

// LogProcess marks lifecycle stages (startup, shutdown, component init).
func (l *Logger) LogProcess(stage, msg string) {
	l.write(l.process, "PROC", stage, msg)
}

// LogAPI records one handled HTTP request.
func (l *Logger) LogAPI(method, path, status, duration string) {
	l.Info("API", fmt.Sprintf("%s %s - %s (%s)", method, path, status, duration))
}

// LogDatabase records a storage operation against a named collection.
func (l *Logger) LogDatabase(op, collection, msg string) {
	l.Info("DATABASE", fmt.Sprintf("[%s] %s: %s", op, collection, msg))
}

// LogKafka records producer/consumer activity on a topic.
func (l *Logger) LogKafka(op, topic, msg string) {
	l.Info("KAFKA", fmt.Sprintf("[%s] %s: %s", op, topic, msg))
}

// LogBooking records booking lifecycle activity for one booking id.
func (l *Logger) LogBooking(action, bookingID, msg string) {
	l.Info("BOOKING", fmt.Sprintf("[%s] %s: %s", action, bookingID, msg))
}

// LogSecurity records auth and abuse-related events.
func (l *Logger) LogSecurity(event, msg string) {
	l.write(l.warn, "SEC", event, msg)
}
