package ghaction

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/pkgcoord/pkg/domain/model"
)

// Writer writes CI step outputs and step summaries. Variables are written as
// key=value lines; summaries are Markdown.
type Writer struct {
	w      io.Writer
	closer io.Closer
}

// New creates a writer on w. Close does not close w.
func New(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Open creates a writer appending to the file at path, creating it when
// missing. An empty path writes to stdout.
func Open(path string) (*Writer, error) {
	if path == "" {
		return New(os.Stdout), nil
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open output file", goerr.V("path", path))
	}

	return &Writer{w: f, closer: f}, nil
}

// Write implements io.Writer
func (x *Writer) Write(p []byte) (int, error) {
	return x.w.Write(p)
}

// Close closes the underlying file, if the writer owns one
func (x *Writer) Close() error {
	if x.closer == nil {
		return nil
	}
	if err := x.closer.Close(); err != nil {
		return goerr.Wrap(err, "failed to close output file")
	}
	return nil
}

// WriteVariables writes one key=value line per field
func (x *Writer) WriteVariables(fields []model.Field) error {
	var sb strings.Builder
	for _, f := range fields {
		sb.WriteString(f.Key)
		sb.WriteString("=")
		sb.WriteString(f.Value)
		sb.WriteString("\n")
	}

	if _, err := io.WriteString(x.w, sb.String()); err != nil {
		return goerr.Wrap(err, "failed to write variables")
	}
	return nil
}

// WriteSummary writes a heading followed by a bold label and a fenced
// block per field
func (x *Writer) WriteSummary(title string, fields []model.Field) error {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# %s\n\n", title))
	for _, f := range fields {
		sb.WriteString(fmt.Sprintf("**%s**\n```\n%s\n```\n\n", f.Key, f.Value))
	}

	if _, err := io.WriteString(x.w, sb.String()); err != nil {
		return goerr.Wrap(err, "failed to write summary")
	}
	return nil
}
