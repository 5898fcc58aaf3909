package testkit

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dirtree/internal/style"
)

// Line is one parsed line of a listing.
type Line struct {
	Depth int
	Dir   bool
	Name  string
}

// ParseListing splits printer output into lines and checks the rendering
// invariants on the way:
// 1) indentation is a whole number of indent units
// 2) every line is exactly one of the directory or file renderings
// 3) depth grows by at most one, and only right below a directory line
func ParseListing(out string, p style.Palette, indent, marker string) ([]Line, error) {
	if indent == "" {
		return nil, fmt.Errorf("empty indent unit")
	}
	dirPre, dirSuf := splitRendering(p.Dir(marker + "\x00"))
	filePre, fileSuf := splitRendering(p.File("\x00"))

	var lines []Line
	prevDepth, prevDir := -1, true
	for i, raw := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		if raw == "" && out == "" {
			break
		}
		depth := 0
		rest := raw
		for strings.HasPrefix(rest, indent) {
			rest = rest[len(indent):]
			depth++
		}

		var line Line
		switch {
		case strings.HasPrefix(rest, dirPre) && strings.HasSuffix(rest, dirSuf) && len(rest) > len(dirPre)+len(dirSuf):
			line = Line{Depth: depth, Dir: true, Name: rest[len(dirPre) : len(rest)-len(dirSuf)]}
		case strings.HasPrefix(rest, filePre) && strings.HasSuffix(rest, fileSuf) && len(rest) > len(filePre)+len(fileSuf):
			line = Line{Depth: depth, Name: rest[len(filePre) : len(rest)-len(fileSuf)]}
		default:
			return nil, fmt.Errorf("line %d: %q is neither a directory nor a file rendering", i+1, raw)
		}

		limit := prevDepth
		if prevDir {
			limit++
		}
		if depth > limit {
			return nil, fmt.Errorf("line %d: depth %d after depth %d", i+1, depth, prevDepth)
		}
		prevDepth, prevDir = depth, line.Dir
		lines = append(lines, line)
	}
	return lines, nil
}

func splitRendering(s string) (string, string) {
	pre, suf, _ := strings.Cut(s, "\x00")
	return pre, suf
}

// WriteTree creates a fixture hierarchy below root. Paths ending in "/" are
// directories; every other path becomes a file containing its own name.
func WriteTree(root string, paths ...string) error {
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		if strings.HasSuffix(p, "/") {
			if err := os.MkdirAll(full, 0o755); err != nil {
				return err
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(full, []byte(p), 0o644); err != nil {
			return err
		}
	}
	return nil
}
