package mocks

import (
	"maps"
	"slices"
	"sync"
)

// Scope records what is reported on it.
type Scope struct {
	ScopeName string
	SpanName  string

	mu         sync.Mutex
	ended      bool
	events     []string
	attributes map[string]any
	errs       []error
}

func (s *Scope) End() {
	s.mu.Lock()
	s.ended = true
	s.mu.Unlock()
}

func (s *Scope) TraceError(err error) {
	s.mu.Lock()
	s.errs = append(s.errs, err)
	s.mu.Unlock()
}

func (s *Scope) TraceIfError(err error) {
	if err != nil {
		s.TraceError(err)
	}
}

func (s *Scope) AddEvent(name string) {
	s.mu.Lock()
	s.events = append(s.events, name)
	s.mu.Unlock()
}

func (s *Scope) SetAttribute(key string, value any) {
	s.SetAttributes(map[string]any{key: value})
}

func (s *Scope) SetAttributes(attributes map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attributes == nil {
		s.attributes = make(map[string]any, len(attributes))
	}

	maps.Copy(s.attributes, attributes)
}

func (s *Scope) Ended() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ended
}

func (s *Scope) Errors() []error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.errs)
}

func (s *Scope) Events() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.events)
}

func (s *Scope) Attributes() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	return maps.Clone(s.attributes)
}
