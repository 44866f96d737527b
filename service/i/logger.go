package i

// Logger is the logging contract injected into every component.
type Logger interface {
	// Info logs an informational message.
	Info(msg string)

	// Warning logs a recoverable anomaly.
	Warning(msg string)

	// Error logs a failure.
	Error(msg string)
}
