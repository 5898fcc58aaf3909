package style

import (
	"strings"

	"github.com/fatih/color"
)

// resetSeq closes every styled name. Color.Sprint would close with
// per-attribute resets (22 after bold) instead.
const resetSeq = "\x1b[0m"

// Role names a semantic slot of the palette.
type Role uint8

const (
	// RoleDir styles directory lines, marker included.
	RoleDir Role = iota
	// RoleFile styles regular file lines.
	RoleFile
	// RoleReset restores default styling after a name.
	RoleReset
)

// String returns the config key of the role.
func (r Role) String() string {
	switch r {
	case RoleDir:
		return "dir"
	case RoleFile:
		return "file"
	case RoleReset:
		return "reset"
	default:
		return "unknown"
	}
}

// DefaultDirTokens and DefaultFileTokens reproduce the classic
// bright-blue directories and bright-green files.
var (
	DefaultDirTokens  = []string{"hiblue"}
	DefaultFileTokens = []string{"higreen"}
)

// Palette maps roles to display styling. The zero value renders plain text.
type Palette struct {
	dir     *color.Color
	file    *color.Color
	enabled bool
}

// NewPalette parses the token lists for each role. Color output is forced on
// or off regardless of the package-level color.NoColor detection.
func NewPalette(dirTokens, fileTokens []string, enabled bool) (Palette, error) {
	dir, err := ParseTokens(dirTokens)
	if err != nil {
		return Palette{}, &TokenError{Role: RoleDir, Err: err}
	}
	file, err := ParseTokens(fileTokens)
	if err != nil {
		return Palette{}, &TokenError{Role: RoleFile, Err: err}
	}
	return Palette{
		dir:     newColor(dir, enabled),
		file:    newColor(file, enabled),
		enabled: enabled,
	}, nil
}

// Default returns the built-in palette.
func Default(enabled bool) Palette {
	p, err := NewPalette(DefaultDirTokens, DefaultFileTokens, enabled)
	if err != nil {
		panic(err) // built-in tokens always parse
	}
	return p
}

// newColor returns nil for an empty attribute list: that role renders plain.
func newColor(attrs []color.Attribute, enabled bool) *color.Color {
	if len(attrs) == 0 {
		return nil
	}
	c := color.New(attrs...)
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// Enabled reports whether escapes are emitted.
func (p Palette) Enabled() bool { return p.enabled }

// Render wraps s in the escape sequence of role followed by ESC[0m.
// RoleReset and unknown roles return s unchanged.
func (p Palette) Render(role Role, s string) string {
	var c *color.Color
	switch role {
	case RoleDir:
		c = p.dir
	case RoleFile:
		c = p.file
	}
	if c == nil {
		return s
	}
	var b strings.Builder
	c.SetWriter(&b)
	if b.Len() == 0 {
		return s
	}
	b.WriteString(s)
	b.WriteString(resetSeq)
	return b.String()
}

// Dir is shorthand for Render(RoleDir, s).
func (p Palette) Dir(s string) string { return p.Render(RoleDir, s) }

// File is shorthand for Render(RoleFile, s).
func (p Palette) File(s string) string { return p.Render(RoleFile, s) }
