// Package tree prints a directory hierarchy as indented, color-coded lines.
package tree

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"dirtree/internal/style"
	"dirtree/internal/trace"
)

const (
	// DefaultIndent is added once per nesting level.
	DefaultIndent = "  "
	// DefaultDirMarker precedes directory names, inside the colored span.
	DefaultDirMarker = "[DIR] "
)

// Options configures a Printer.
type Options struct {
	Palette   style.Palette
	Indent    string
	DirMarker string
	Order     Order
	Tracer    trace.Tracer
}

// DefaultOptions returns the classic layout with colors enabled.
func DefaultOptions() Options {
	return Options{
		Palette:   style.Default(true),
		Indent:    DefaultIndent,
		DirMarker: DefaultDirMarker,
		Order:     OrderName,
		Tracer:    trace.Nop,
	}
}

// Stats counts what a traversal saw.
type Stats struct {
	Dirs    int
	Files   int
	Skipped int
}

// Lines is the number of lines written: one per directory and file.
func (s Stats) Lines() int { return s.Dirs + s.Files }

// Printer writes listings to an io.Writer. It is not safe for concurrent use.
type Printer struct {
	w      io.Writer
	opts   Options
	sort   func([]string)
	tracer trace.Tracer
}

// New creates a Printer writing to w.
func New(w io.Writer, opts Options) *Printer {
	tracer := opts.Tracer
	if tracer == nil {
		tracer = trace.Nop
	}
	return &Printer{
		w:      w,
		opts:   opts,
		sort:   opts.Order.sorter(),
		tracer: tracer,
	}
}

// frame is one directory whose children are still being printed.
type frame struct {
	dir   string
	depth int
	names []string
	next  int
}

// List prints every directory and regular file below root, depth first.
// A directory's line comes before its children and its whole subtree comes
// before its next sibling. Entries of any other kind are skipped.
//
// If root or any directory reached cannot be listed, List stops at once and
// returns an *EnumError; lines already written stay written.
func (p *Printer) List(root string) (Stats, error) {
	var stats Stats
	span := trace.Begin(p.tracer, trace.ScopePass, "list", 0).WithExtra("root", root)
	finish := func(detail string) {
		span.WithExtra("dirs", strconv.Itoa(stats.Dirs)).
			WithExtra("files", strconv.Itoa(stats.Files)).
			WithExtra("skipped", strconv.Itoa(stats.Skipped)).
			End(detail)
	}

	names, err := p.readNames(root, span.ID())
	if err != nil {
		finish("failed")
		return stats, err
	}

	// явный стек вместо рекурсии: глубина дерева не ограничена стеком вызовов
	stack := []*frame{{dir: root, names: names}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.next >= len(top.names) {
			stack = stack[:len(stack)-1]
			continue
		}
		name := top.names[top.next]
		top.next++
		full := filepath.Join(top.dir, name)

		switch Classify(full) {
		case KindDir:
			if err := p.writeLine(top.depth, p.opts.Palette.Dir(p.opts.DirMarker+name)); err != nil {
				finish("failed")
				return stats, err
			}
			stats.Dirs++
			children, err := p.readNames(full, span.ID())
			if err != nil {
				finish("failed")
				return stats, err
			}
			stack = append(stack, &frame{dir: full, depth: top.depth + 1, names: children})
		case KindFile:
			if err := p.writeLine(top.depth, p.opts.Palette.File(name)); err != nil {
				finish("failed")
				return stats, err
			}
			stats.Files++
		default:
			stats.Skipped++
			trace.Point(p.tracer, trace.ScopeEntry, "skip", full, span.ID())
		}
	}

	finish("")
	return stats, nil
}

// readNames lists the children of dir in the configured order. The handle is
// closed before returning.
func (p *Printer) readNames(dir string, parent uint64) ([]string, error) {
	trace.Point(p.tracer, trace.ScopeDir, "dir", dir, parent)

	f, err := os.Open(dir)
	if err != nil {
		return nil, p.enumFailed(dir, err, parent)
	}
	names, err := f.Readdirnames(-1)
	closeErr := f.Close()
	if err != nil {
		return nil, p.enumFailed(dir, err, parent)
	}
	if closeErr != nil {
		return nil, p.enumFailed(dir, closeErr, parent)
	}
	p.sort(names)
	return names, nil
}

func (p *Printer) enumFailed(dir string, err error, parent uint64) error {
	enumErr := &EnumError{Path: dir, Err: err}
	trace.Error(p.tracer, trace.ScopeDir, "enumerate", enumErr, parent)
	return enumErr
}

func (p *Printer) writeLine(depth int, text string) error {
	if _, err := fmt.Fprintf(p.w, "%s%s\n", strings.Repeat(p.opts.Indent, depth), text); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
