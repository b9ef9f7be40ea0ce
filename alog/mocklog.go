package alog

import (
	"github.com/rs/zerolog"
	"io"
)

// MockWriter captures logs into an array of strings for testing
type MockWriter struct {
	Logs []string
}

// Write appends log entries to the internal Logs array
func (mw *MockWriter) Write(p []byte) (n int, err error) {
	mw.Logs = append(mw.Logs, string(p))
	return len(p), nil
}

// Reset clears the captured logs
func (mw *MockWriter) Reset() {
	mw.Logs = []string{}
}

// MockLogChannelProvisioner is a mock logger provisioner for unit testing
// atempo's own channel plumbing (LOGGER_CLI/LOGGER_ENGINE/LOGGER_RELATIONAL)
// without needing a real provisioned directory or rotating file writer.
type MockLogChannelProvisioner struct {
	ChannelProvisionerBase
	Component string
	Writer    *MockWriter
}

// AddWith adds metadata to the logger
func (cp *MockLogChannelProvisioner) AddWith(logger zerolog.Logger) zerolog.Logger {
	return logger.With().
		Timestamp().
		Str("component", cp.Component).
		Logger()
}

// GetWriters returns the mock writer as the logger output
func (cp *MockLogChannelProvisioner) GetWriters(ch *Channel, prov IChannelProvisioner) ([]io.Writer, error) {
	if cp.Writer == nil {
		cp.Writer = &MockWriter{}
	}
	return []io.Writer{cp.Writer}, nil
}

// NewMockLogChannelProvisioner creates a new MockLogChannelProvisioner
func NewMockLogChannelProvisioner(component string) *MockLogChannelProvisioner {
	return &MockLogChannelProvisioner{
		ChannelProvisionerBase: ChannelProvisionerBase{
			DirLog:            "",
			FileLoggerOptions: nil,
		},
		Component: component,
		Writer:    &MockWriter{},
	}
}

// SetupMockLogger sets up a mock logger for testing one of atempo's
// provisioned channels (LOGGER_CLI, LOGGER_ENGINE, LOGGER_RELATIONAL, ...)
// against an in-memory MockWriter instead of a console or file sink.
func SetupMockLogger(channelName ChannelLabel, logLevel zerolog.Level) (*MockLogChannelProvisioner, error) {
	channels := Channels{
		&Channel{
			Name:        channelName,
			LogLevel:    logLevel.String(),
			WriterTypes: WriterTypes{"custom"},
		},
	}

	prov := NewMockLogChannelProvisioner(string(channelName))

	// Set global logger
	if err := setGlobalLogger("", channels, prov); err != nil {
		return nil, err
	}

	return prov, nil
}
