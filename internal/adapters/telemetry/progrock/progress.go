package progrock

import (
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/vito/progrock"
	"go.trai.ch/wsprune/internal/ui/output"
	"go.trai.ch/wsprune/internal/ui/style"
)

// Progress is a progrock.Writer that prints vertices and their logs as lines.
// It prints nothing until an output is set.
type Progress struct {
	mu    sync.Mutex
	out   *termenv.Output
	names map[string]string
	done  map[string]bool
}

// NewProgress creates a Progress without an output.
func NewProgress() *Progress {
	return &Progress{
		names: make(map[string]string),
		done:  make(map[string]bool),
	}
}

// SetOutput starts printing to w.
func (p *Progress) SetOutput(w io.Writer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.out = output.New(w)
}

// WriteStatus prints the vertices and logs of update.
func (p *Progress) WriteStatus(update *progrock.StatusUpdate) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.out == nil {
		return nil
	}

	var b strings.Builder
	for _, v := range update.GetVertexes() {
		p.writeVertex(&b, v)
	}
	for _, l := range update.GetLogs() {
		p.writeLog(&b, l)
	}
	if b.Len() == 0 {
		return nil
	}

	_, err := p.out.WriteString(b.String())
	return err
}

// Close stops printing.
func (p *Progress) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.out = nil
	return nil
}

func (p *Progress) writeVertex(b *strings.Builder, v *progrock.Vertex) {
	id := v.GetId()
	_, seen := p.names[id]
	p.names[id] = v.GetName()

	switch {
	case v.GetCompleted() != nil:
		if p.done[id] {
			return
		}
		p.done[id] = true
		if msg := v.GetError(); msg != "" {
			p.line(b, style.Red, style.Cross+" "+v.GetName()+": "+msg)
			return
		}
		p.line(b, style.Green, style.Check+" "+v.GetName())
	case !seen:
		p.line(b, style.Iris, style.Dot+" "+v.GetName())
	}
}

func (p *Progress) writeLog(b *strings.Builder, l *progrock.VertexLog) {
	text := strings.TrimRight(string(l.GetData()), "\n")
	if text == "" {
		return
	}

	for _, line := range strings.Split(text, "\n") {
		if l.GetStream() == progrock.LogStream_STDERR {
			p.line(b, style.Yellow, "  "+style.Warning+" "+line)
			continue
		}
		p.line(b, style.Slate, "  "+line)
	}
}

func (p *Progress) line(b *strings.Builder, color lipgloss.Color, text string) {
	b.WriteString(p.out.String(text).Foreground(p.out.Color(string(color))).String())
	b.WriteString("\n")
}
