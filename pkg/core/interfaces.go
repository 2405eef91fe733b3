package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// NopLogger discards everything. Tests use it to keep output quiet.
type NopLogger struct{}

// Printf does nothing
func (NopLogger) Printf(format string, args ...interface{}) {}
