package ports

import (
	"context"
	"io"

	"go.trai.ch/wsprune/internal/core/domain"
)

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records the phases of a run.
type Telemetry interface {
	// Record starts a new phase.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// ShowProgress prints every phase and its log lines to w as they are recorded.
	ShowProgress(w io.Writer)
	// Close flushes the recording.
	Close() error
}

// Vertex is a single recorded phase.
type Vertex interface {
	// Log attaches a message to the phase.
	Log(level domain.LogLevel, msg string)
	// Complete marks the phase as finished, successfully when err is nil.
	Complete(err error)
}

type vertexKey struct{}

// ContextWithVertex returns a copy of ctx carrying v.
func ContextWithVertex(ctx context.Context, v Vertex) context.Context {
	return context.WithValue(ctx, vertexKey{}, v)
}

// VertexFromContext returns the vertex stored in ctx, or nil.
func VertexFromContext(ctx context.Context) Vertex {
	v, _ := ctx.Value(vertexKey{}).(Vertex)
	return v
}
