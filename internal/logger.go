package internal

// LogFunc is where a Logger sends its lines
type LogFunc func(format string, a ...interface{})

// A Logger tags every line with a level and a name
type Logger struct {
	name string
	logf LogFunc
}

// NewLogger creates a Logger that writes through logf
func NewLogger(name string, logf LogFunc) *Logger {
	return &Logger{
		name: name,
		logf: logf,
	}
}

// Infof logs something routine
func (l *Logger) Infof(format string, a ...interface{}) {
	l.printf("I", format, a)
}

// Warnf logs something that worked but might not be what was meant
func (l *Logger) Warnf(format string, a ...interface{}) {
	l.printf("W", format, a)
}

func (l *Logger) printf(level, format string, a []interface{}) {
	args := append([]interface{}{level, l.name}, a...)
	l.logf("%s: %s: "+format, args...)
}
