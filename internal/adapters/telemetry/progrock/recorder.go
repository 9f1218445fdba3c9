// Package progrock records the phases of a prune run on a progrock tape.
package progrock

import (
	"context"
	"errors"
	"io"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/wsprune/internal/core/ports"
)

// Recorder implements ports.Telemetry using a progrock recorder.
// Every update goes to the writer and to a Progress printer.
type Recorder struct {
	w        progrock.Writer
	progress *Progress
	rec      *progrock.Recorder
}

// New creates a new Recorder writing to an in-memory tape.
func New() ports.Telemetry {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a new Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	progress := NewProgress()
	return &Recorder{
		w:        w,
		progress: progress,
		rec:      progrock.NewRecorder(tee{w, progress}),
	}
}

// Record starts a vertex for the named phase and stores it in the returned context.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	v := &Vertex{vertex: r.rec.Vertex(digest.FromString(name), name)}
	return ports.ContextWithVertex(ctx, v), v
}

// ShowProgress prints the recorded phases to w from now on.
func (r *Recorder) ShowProgress(w io.Writer) {
	r.progress.SetOutput(w)
}

// Close stops the progress output and closes the underlying writer when it
// supports closing.
func (r *Recorder) Close() error {
	err := r.progress.Close()
	if c, ok := r.w.(interface{ Close() error }); ok {
		err = errors.Join(err, c.Close())
	}
	return err
}

// tee sends every update to each of its writers.
type tee []progrock.Writer

func (t tee) WriteStatus(update *progrock.StatusUpdate) error {
	var errs []error
	for _, w := range t {
		if err := w.WriteStatus(update); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close is a no-op; Recorder.Close closes the writers.
func (t tee) Close() error {
	return nil
}
