package report

import (
	"io"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/wsprune/internal/core/domain"
	"go.trai.ch/wsprune/internal/ui/output"
	"go.trai.ch/wsprune/internal/ui/style"
)

const indent = "  "

func writeTextReport(w io.Writer, r *domain.Report) error {
	out := output.New(w)
	var b strings.Builder

	writeSection(&b, out, "Workspace packages:", r.Workspace)
	writeSection(&b, out, "Upstream packages:", r.Upstream)
	writeSection(&b, out, r.Action.Heading(), r.Unused)

	if !r.Filter.AcceptsAll() {
		b.WriteString(out.String("Dependency types: " + r.Filter.String()).Faint().String())
		b.WriteString("\n")
	}
	if r.Fingerprint != "" {
		b.WriteString(out.String("Fingerprint: " + r.Fingerprint).Faint().String())
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeSection(b *strings.Builder, out *termenv.Output, heading string, pkgs []domain.Package) {
	b.WriteString(out.String(heading).Bold().Foreground(out.Color(string(style.Iris))).String())
	b.WriteString("\n")

	if len(pkgs) == 0 {
		b.WriteString(indent + out.String("(none)").Faint().String() + "\n")
		return
	}
	for _, p := range pkgs {
		b.WriteString(indent + p.Name.String() + " ")
		b.WriteString(out.String("(" + p.Path + ")").Foreground(out.Color(string(style.Slate))).String())
		b.WriteString("\n")
	}
}

func writeTextPackages(w io.Writer, pkgs []domain.Package) error {
	out := output.New(w)
	var b strings.Builder

	for _, p := range pkgs {
		b.WriteString(out.String(p.Name.String()).Bold().String() + " ")
		b.WriteString(out.String("(" + p.Path + ")").Foreground(out.Color(string(style.Slate))).String())
		b.WriteString("\n")
		for _, d := range p.Deps {
			b.WriteString(indent + style.Arrow + " " + d.Name.String() + " ")
			b.WriteString(out.String("[" + d.Type.String() + "]").Faint().String())
			b.WriteString("\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
