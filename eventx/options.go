package eventx

import "github.com/will181/eventable/logx"

// Option configures a Manager at construction.
type Option func(*Manager)

// WithLogger sets the logger used for dispatch tracing and handler
// failure reports. The package default logger is used otherwise.
func WithLogger(log *logx.Logger) Option {
	return func(m *Manager) {
		m.log = log
	}
}
