package style

import (
	"fmt"
	"strconv"
	"strings"

	"fortio.org/safecast"
	"github.com/fatih/color"
)

// TokenError reports a styling token that could not be parsed.
type TokenError struct {
	Role Role
	Err  error
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("style %s: %v", e.Role, e.Err)
}

func (e *TokenError) Unwrap() error { return e.Err }

var namedAttrs = map[string]color.Attribute{
	"reset":     color.Reset,
	"bold":      color.Bold,
	"faint":     color.Faint,
	"italic":    color.Italic,
	"underline": color.Underline,
	"reverse":   color.ReverseVideo,

	"black":   color.FgBlack,
	"red":     color.FgRed,
	"green":   color.FgGreen,
	"yellow":  color.FgYellow,
	"blue":    color.FgBlue,
	"magenta": color.FgMagenta,
	"cyan":    color.FgCyan,
	"white":   color.FgWhite,

	"hiblack":   color.FgHiBlack,
	"hired":     color.FgHiRed,
	"higreen":   color.FgHiGreen,
	"hiyellow":  color.FgHiYellow,
	"hiblue":    color.FgHiBlue,
	"himagenta": color.FgHiMagenta,
	"hicyan":    color.FgHiCyan,
	"hiwhite":   color.FgHiWhite,

	"bg-black":   color.BgBlack,
	"bg-red":     color.BgRed,
	"bg-green":   color.BgGreen,
	"bg-yellow":  color.BgYellow,
	"bg-blue":    color.BgBlue,
	"bg-magenta": color.BgMagenta,
	"bg-cyan":    color.BgCyan,
	"bg-white":   color.BgWhite,
}

// ParseTokens converts styling tokens into SGR attributes.
//
// Accepted forms:
//
//	hiblue, bold, bg-red   named attribute
//	94                     raw SGR parameter
//	fg256:208, bg256:17    xterm 256-color index
func ParseTokens(tokens []string) ([]color.Attribute, error) {
	attrs := make([]color.Attribute, 0, len(tokens))
	for _, raw := range tokens {
		tok := strings.ToLower(strings.TrimSpace(raw))
		if tok == "" {
			continue
		}
		parsed, err := parseToken(tok)
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, parsed...)
	}
	return attrs, nil
}

func parseToken(tok string) ([]color.Attribute, error) {
	if a, ok := namedAttrs[tok]; ok {
		return []color.Attribute{a}, nil
	}
	if idx, ok := strings.CutPrefix(tok, "fg256:"); ok {
		n, err := paletteIndex(idx)
		if err != nil {
			return nil, fmt.Errorf("token %q: %w", tok, err)
		}
		return []color.Attribute{38, 5, color.Attribute(n)}, nil
	}
	if idx, ok := strings.CutPrefix(tok, "bg256:"); ok {
		n, err := paletteIndex(idx)
		if err != nil {
			return nil, fmt.Errorf("token %q: %w", tok, err)
		}
		return []color.Attribute{48, 5, color.Attribute(n)}, nil
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return nil, fmt.Errorf("unknown token %q", tok)
	}
	sgr, err := safecast.Conv[uint8](n)
	if err != nil {
		return nil, fmt.Errorf("token %q: SGR parameter out of range", tok)
	}
	return []color.Attribute{color.Attribute(sgr)}, nil
}

// paletteIndex parses an xterm palette index, which must fit in a byte.
func paletteIndex(s string) (uint8, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("palette index %q is not a number", s)
	}
	idx, err := safecast.Conv[uint8](n)
	if err != nil {
		return 0, fmt.Errorf("palette index %d out of range 0-255", n)
	}
	return idx, nil
}
