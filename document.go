package markup

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Document is the root of the markup tree, it renders <html> wrapper around its children.
//
// Document is finalized by Close: rendered markup is written to the output file,
// or printed to the standard output if output is empty.
type Document struct {
	root   *Node
	output string
	stdout io.Writer
	logger *slog.Logger
	closed bool
}

type Option func(d *Document)

func WithLogger(logger *slog.Logger) Option {
	return func(d *Document) {
		d.logger = logger
	}
}

// WithStdout changes where document is printed when there is no output file.
func WithStdout(w io.Writer) Option {
	return func(d *Document) {
		d.stdout = w
	}
}

func New(output string, opts ...Option) *Document {
	d := &Document{
		root:   &Node{Kind: DocumentKind, Tag: "html"},
		output: output,
		stdout: os.Stdout,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Build creates document, passes it to fn and closes it afterwards, even if fn panics.
func Build(output string, fn func(doc *Document), opts ...Option) (err error) {
	doc := New(output, opts...)

	defer func() {
		if cerr := doc.Close(); err == nil {
			err = cerr
		}
	}()

	fn(doc)

	return nil
}

func (d *Document) Append(child *Node) *Document {
	d.root.Append(child)
	return d
}

func (d *Document) Children() []*Node {
	return d.root.Children
}

func (d *Document) String() string {
	return String(d.root)
}

// Close writes document to the output. Only the first call has an effect.
func (d *Document) Close() error {
	if d.closed {
		return nil
	}

	d.closed = true

	html := d.String()

	if d.output == "" {
		if _, err := fmt.Fprintln(d.stdout, html); err != nil {
			return fmt.Errorf("print document: %w", err)
		}

		d.logger.Debug("document printed", "bytes", len(html))
		return nil
	}

	if err := os.WriteFile(d.output, []byte(html), 0o644); err != nil {
		return fmt.Errorf("write document to %s: %w", d.output, err)
	}

	d.logger.Debug("document written", "output", d.output, "bytes", len(html))
	return nil
}
