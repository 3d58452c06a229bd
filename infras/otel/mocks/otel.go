// Package mocks holds an in-memory otel.Otel for tests. Nothing is exported; every scope is kept so a
// test can check what the code under test traced.
package mocks

import (
	"context"
	"slices"
	"sync"

	"salon/infras/otel"
)

type Otel struct {
	mu     sync.Mutex
	scopes []*Scope
}

func NewOtel() *Otel {
	return &Otel{}
}

func (o *Otel) NewScope(ctx context.Context, scopeName, spanName string) (context.Context, otel.Scope) {
	s := &Scope{ScopeName: scopeName, SpanName: spanName}

	o.mu.Lock()
	o.scopes = append(o.scopes, s)
	o.mu.Unlock()

	return ctx, s
}

func (o *Otel) Shutdown(_ context.Context) error {
	return nil
}

// Scopes returns the scopes opened so far, oldest first.
func (o *Otel) Scopes() []*Scope {
	o.mu.Lock()
	defer o.mu.Unlock()

	return slices.Clone(o.scopes)
}

// Span returns the first scope opened with spanName, or nil.
func (o *Otel) Span(spanName string) *Scope {
	for _, s := range o.Scopes() {
		if s.SpanName == spanName {
			return s
		}
	}

	return nil
}
