// Package config loads dirtree.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"dirtree/internal/style"
	"dirtree/internal/tree"
)

// FileName is the manifest looked up from the working directory upwards.
const FileName = "dirtree.toml"

// Config is the decoded manifest merged over defaults.
type Config struct {
	Path   string `toml:"-"` // file it came from, empty for defaults
	Layout Layout `toml:"layout"`
	Style  Style  `toml:"style"`
}

// Layout controls line shape and ordering.
type Layout struct {
	Indent    string `toml:"indent"`
	DirMarker string `toml:"dir_marker"`
	Sort      string `toml:"sort"`
}

// Style holds styling tokens per role; see style.ParseTokens.
type Style struct {
	Dir  []string `toml:"dir"`
	File []string `toml:"file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Layout: Layout{
			Indent:    tree.DefaultIndent,
			DirMarker: tree.DefaultDirMarker,
			Sort:      tree.OrderName.String(),
		},
		Style: Style{
			Dir:  append([]string(nil), style.DefaultDirTokens...),
			File: append([]string(nil), style.DefaultFileTokens...),
		},
	}
}

// Find walks up from startDir to locate dirtree.toml.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Discover loads the nearest dirtree.toml above startDir, or the defaults
// when there is none.
func Discover(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

// Load decodes path and overlays every key it defines on the defaults.
// Unknown keys are rejected.
func Load(path string) (Config, error) {
	var file Config
	meta, err := toml.DecodeFile(path, &file)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	cfg := Default()
	cfg.Path = path
	if meta.IsDefined("layout", "indent") {
		cfg.Layout.Indent = file.Layout.Indent
	}
	if meta.IsDefined("layout", "dir_marker") {
		cfg.Layout.DirMarker = file.Layout.DirMarker
	}
	if meta.IsDefined("layout", "sort") {
		cfg.Layout.Sort = file.Layout.Sort
	}
	if meta.IsDefined("style", "dir") {
		cfg.Style.Dir = file.Style.Dir
	}
	if meta.IsDefined("style", "file") {
		cfg.Style.File = file.Style.File
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that every value can be turned into printer options.
func (c Config) Validate() error {
	if c.Layout.Indent == "" {
		return fmt.Errorf("[layout].indent must not be empty")
	}
	if c.Layout.DirMarker == "" {
		return fmt.Errorf("[layout].dir_marker must not be empty")
	}
	if _, err := tree.ParseOrder(c.Layout.Sort); err != nil {
		return fmt.Errorf("[layout].sort: %w", err)
	}
	if _, err := style.NewPalette(c.Style.Dir, c.Style.File, false); err != nil {
		return err
	}
	return nil
}

// Options builds printer options; colorEnabled comes from the --color flag.
func (c Config) Options(colorEnabled bool) (tree.Options, error) {
	order, err := tree.ParseOrder(c.Layout.Sort)
	if err != nil {
		return tree.Options{}, err
	}
	palette, err := style.NewPalette(c.Style.Dir, c.Style.File, colorEnabled)
	if err != nil {
		return tree.Options{}, err
	}
	return tree.Options{
		Palette:   palette,
		Indent:    c.Layout.Indent,
		DirMarker: c.Layout.DirMarker,
		Order:     order,
	}, nil
}
