package ports

import "context"

// Span is a single timed phase of a run.
type Span interface {
	End()
	RecordError(err error)
	SetAttribute(key string, value any)
}

// Tracer starts spans around orchestrator phases.
//
//go:generate mockgen -source=tracer.go -destination=mocks/mock_tracer.go -package=mocks
type Tracer interface {
	Start(ctx context.Context, name string) (context.Context, Span)
}
