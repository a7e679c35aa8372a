package library

import "fmt"

// Logger receives operational messages from the LibraryManager.
// *slog.Logger satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type discardLogger struct{}

func (discardLogger) Debug(string, ...any) {}
func (discardLogger) Info(string, ...any)  {}
func (discardLogger) Warn(string, ...any)  {}
func (discardLogger) Error(string, ...any) {}

// Limits caps how many nodes each container may allocate. Zero means no cap.
// Reaching a cap is reported as ErrAllocation.
type Limits struct {
	Books    int
	Requests int
	Actions  int
	Issued   int
}

func (l Limits) validate() error {
	if l.Books < 0 || l.Requests < 0 || l.Actions < 0 || l.Issued < 0 {
		return fmt.Errorf("limits must not be negative: %+v: %w", l, ErrInvalidInput)
	}
	return nil
}

// Option configures a LibraryManager.
type Option func(*LibraryManager) error

// WithLogger sets the logger. Info level reports every mutation, Warn level
// reports mutations that could not be fully recorded.
func WithLogger(logger Logger) Option {
	return func(m *LibraryManager) error {
		if logger == nil {
			return fmt.Errorf("nil logger: %w", ErrInvalidInput)
		}
		m.logger = logger
		return nil
	}
}

// WithLimits sets the per-container node budgets.
func WithLimits(limits Limits) Option {
	return func(m *LibraryManager) error {
		if err := limits.validate(); err != nil {
			return err
		}
		m.limits = limits
		return nil
	}
}
