package mocks

import (
	"context"

	"latina/infras/otel"
)

// Otel is a no-op tracer for tests; scopes record nothing.
type Otel struct{}

func (o *Otel) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, &Scope{}
}

func (o *Otel) Shutdown(_ context.Context) error {
	return nil
}

func NewOtel() otel.Otel {
	return &Otel{}
}

type Scope struct{}

func (s *Scope) End() {}
func (s *Scope) TraceError(_ error) {}
func (s *Scope) TraceIfError(_ error) {}
func (s *Scope) AddEvent(_ string, _ ...map[string]any) {}
func (s *Scope) SetAttribute(_ string, _ any) {}
func (s *Scope) SetAttributes(_ map[string]any) {}
