package logger

import (
	"io"
	"strings"

	"github.com/fatih/color" // Colored console output for each log level
)

// Each level has its own color, mirroring the usual terminal conventions:
// green for progress, magenta for warnings, red for errors and cyan for debug.
var (
	infoColor  = color.New(color.FgGreen)
	warnColor  = color.New(color.FgHiMagenta)
	errorColor = color.New(color.FgRed)
	debugColor = color.New(color.FgCyan)
	plainColor = color.New(color.Reset)
)

// output is where every level writes. color.Output handles Windows consoles.
var output io.Writer = color.Output

// debugEnabled gates Debug; toggled once by Init from the --debug flag.
var debugEnabled bool

// Init enables or disables debug logging.
func Init(enableDebug bool) {
	debugEnabled = enableDebug
}

// SetOutput redirects all log output and returns the previous writer so
// callers (mostly tests) can restore it.
func SetOutput(w io.Writer) io.Writer {
	prev := output
	output = w
	return prev
}

// DebugEnabled reports whether --debug was passed.
func DebugEnabled() bool {
	return debugEnabled
}

// Info logs progress messages in green.
func Info(format string, a ...any) {
	write(infoColor, "[INFO] ", format, a...)
}

// Warn logs recoverable problems in bright magenta.
func Warn(format string, a ...any) {
	write(warnColor, "[WARN] ", format, a...)
}

// Error logs failures in red.
func Error(format string, a ...any) {
	write(errorColor, "[ERROR] ", format, a...)
}

// Debug logs in cyan, only when debug logging was enabled.
func Debug(format string, a ...any) {
	if !debugEnabled {
		return
	}
	write(debugColor, "[DEBUG] ", format, a...)
}

// Plain prints user-facing output (status tables, dry-run listings) without a level prefix.
func Plain(format string, a ...any) {
	write(plainColor, "", format, a...)
}

func write(c *color.Color, prefix, format string, a ...any) {
	if !strings.HasSuffix(format, "\n") {
		format += "\n"
	}
	_, _ = c.Fprintf(output, prefix+format, a...)
}
