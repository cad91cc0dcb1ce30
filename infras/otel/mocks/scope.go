package mocks

import (
	"sync"

	"tudu/infras/otel"
)

// Scope drops span data and remembers traced errors so tests can assert on them.
type Scope struct {
	mu     sync.Mutex
	errs   []error
	events []string
}

func NewScope() otel.Scope {
	return &Scope{}
}

func (s *Scope) End() {}

func (s *Scope) SetAttribute(_ string, _ any) {}

func (s *Scope) SetAttributes(_ map[string]any) {}

func (s *Scope) AddEvent(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = append(s.events, name)
}

func (s *Scope) TraceError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.errs = append(s.errs, err)
}

func (s *Scope) TraceIfError(err error) {
	if err != nil {
		s.TraceError(err)
	}
}

// Errors returns the errors traced so far, oldest first.
func (s *Scope) Errors() []error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]error(nil), s.errs...)
}

// Events returns the recorded event names, oldest first.
func (s *Scope) Events() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.events...)
}
