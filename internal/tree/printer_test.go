package tree

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"dirtree/internal/style"
	"dirtree/internal/testkit"
	"dirtree/internal/trace"
)

func listString(t *testing.T, root string, opts Options) (string, Stats, error) {
	t.Helper()
	var buf bytes.Buffer
	stats, err := New(&buf, opts).List(root)
	return buf.String(), stats, err
}

func TestListScenario(t *testing.T) {
	root := t.TempDir()
	if err := testkit.WriteTree(root, "a.txt", "sub/b.txt"); err != nil {
		t.Fatalf("WriteTree: %v", err)
	}

	out, stats, err := listString(t, root, DefaultOptions())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := "\x1b[92ma.txt\x1b[0m\n" +
		"\x1b[94m[DIR] sub\x1b[0m\n" +
		"  \x1b[92mb.txt\x1b[0m\n"
	if out != want {
		t.Fatalf("output mismatch\n got: %q\nwant: %q", out, want)
	}
	if stats != (Stats{Dirs: 1, Files: 2}) {
		t.Fatalf("stats = %+v", stats)
	}
}

func TestListEmptyDirectory(t *testing.T) {
	out, stats, err := listString(t, t.TempDir(), DefaultOptions())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if out != "" {
		t.Fatalf("expected no output, got %q", out)
	}
	if stats.Lines() != 0 {
		t.Fatalf("stats = %+v", stats)
	}
}

func TestListMissingRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nope")
	out, _, err := listString(t, root, DefaultOptions())
	if err == nil {
		t.Fatal("expected an error for a missing root")
	}
	var enumErr *EnumError
	if !errors.As(err, &enumErr) {
		t.Fatalf("error %T is not *EnumError", err)
	}
	if enumErr.Path != root {
		t.Fatalf("EnumError.Path = %q, want %q", enumErr.Path, root)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("error %v should wrap fs.ErrNotExist", err)
	}
	if !strings.Contains(err.Error(), "cannot list "+root) {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if out != "" {
		t.Fatalf("no lines expected, got %q", out)
	}
}

func TestListRootIsFile(t *testing.T) {
	root := t.TempDir()
	if err := testkit.WriteTree(root, "plain.txt"); err != nil {
		t.Fatalf("WriteTree: %v", err)
	}
	_, _, err := listString(t, filepath.Join(root, "plain.txt"), DefaultOptions())
	var enumErr *EnumError
	if !errors.As(err, &enumErr) {
		t.Fatalf("expected *EnumError, got %v", err)
	}
}

func TestListInvariants(t *testing.T) {
	root := t.TempDir()
	paths := []string{
		"README.md",
		"cmd/app/main.go",
		"cmd/app/flags.go",
		"internal/",
		"internal/core/a.go",
		"internal/core/deep/er/still.txt",
		"docs/guide/intro.md",
		"empty/",
	}
	if err := testkit.WriteTree(root, paths...); err != nil {
		t.Fatalf("WriteTree: %v", err)
	}

	for _, order := range []Order{OrderName, OrderNone, OrderLocale} {
		t.Run(order.String(), func(t *testing.T) {
			opts := DefaultOptions()
			opts.Order = order
			out, stats, err := listString(t, root, opts)
			if err != nil {
				t.Fatalf("List: %v", err)
			}

			lines, err := testkit.ParseListing(out, opts.Palette, opts.Indent, opts.DirMarker)
			if err != nil {
				t.Fatalf("invariant violated: %v\n%s", err, out)
			}

			// README.md, cmd, app, main.go, flags.go, internal, core, a.go,
			// deep, er, still.txt, docs, guide, intro.md, empty
			if len(lines) != 15 || stats.Lines() != 15 {
				t.Fatalf("lines = %d, stats = %+v, want 15", len(lines), stats)
			}
			if stats.Dirs != 9 || stats.Files != 6 {
				t.Fatalf("stats = %+v, want 9 dirs / 6 files", stats)
			}

			got := rebuildPaths(lines)
			want := walkPaths(t, root)
			if strings.Join(got, "\n") != strings.Join(want, "\n") {
				t.Fatalf("paths mismatch\n got: %v\nwant: %v", got, want)
			}
		})
	}
}

// rebuildPaths turns parsed lines back into slash paths using their depth.
func rebuildPaths(lines []testkit.Line) []string {
	var stack, out []string
	for _, l := range lines {
		stack = append(stack[:l.Depth], l.Name)
		p := strings.Join(stack, "/")
		if l.Dir {
			p += "/"
		}
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

func walkPaths(t *testing.T, root string) []string {
	t.Helper()
	var out []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || path == root {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if d.IsDir() {
			rel += "/"
		}
		out = append(out, rel)
		return nil
	})
	if err != nil {
		t.Fatalf("WalkDir: %v", err)
	}
	sort.Strings(out)
	return out
}

func TestListIsRepeatable(t *testing.T) {
	root := t.TempDir()
	if err := testkit.WriteTree(root, "x/y/z.txt", "x/w.txt", "v.txt"); err != nil {
		t.Fatalf("WriteTree: %v", err)
	}
	first, _, err := listString(t, root, DefaultOptions())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	second, _, err := listString(t, root, DefaultOptions())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if first != second {
		t.Fatalf("runs differ:\n%q\n%q", first, second)
	}
}

func TestListOrders(t *testing.T) {
	root := t.TempDir()
	if err := testkit.WriteTree(root, "B.txt", "a.txt"); err != nil {
		t.Fatalf("WriteTree: %v", err)
	}
	opts := DefaultOptions()
	opts.Palette = style.Default(false)

	opts.Order = OrderName
	out, _, err := listString(t, root, opts)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if out != "B.txt\na.txt\n" {
		t.Fatalf("name order = %q", out)
	}

	opts.Order = OrderLocale
	out, _, err = listString(t, root, opts)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if out != "a.txt\nB.txt\n" {
		t.Fatalf("locale order = %q", out)
	}
}

func TestListCustomLayout(t *testing.T) {
	root := t.TempDir()
	if err := testkit.WriteTree(root, "d/e/f.txt"); err != nil {
		t.Fatalf("WriteTree: %v", err)
	}
	opts := Options{
		Palette:   style.Default(false),
		Indent:    "\t",
		DirMarker: "+ ",
	}
	out, _, err := listString(t, root, opts)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := "+ d\n\t+ e\n\t\tf.txt\n"
	if out != want {
		t.Fatalf("output = %q, want %q", out, want)
	}
}

func TestListSymlinks(t *testing.T) {
	root := t.TempDir()
	if err := testkit.WriteTree(root, "real/inner.txt", "target.txt"); err != nil {
		t.Fatalf("WriteTree: %v", err)
	}
	links := map[string]string{
		"dirlink":  filepath.Join(root, "real"),
		"filelink": filepath.Join(root, "target.txt"),
		"dangling": filepath.Join(root, "missing"),
	}
	for name, target := range links {
		if err := os.Symlink(target, filepath.Join(root, name)); err != nil {
			t.Skipf("symlinks unsupported: %v", err)
		}
	}

	opts := DefaultOptions()
	opts.Palette = style.Default(false)
	out, stats, err := listString(t, root, opts)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := "[DIR] dirlink\n" +
		"  inner.txt\n" +
		"filelink\n" +
		"[DIR] real\n" +
		"  inner.txt\n" +
		"target.txt\n"
	if out != want {
		t.Fatalf("output mismatch\n got: %q\nwant: %q", out, want)
	}
	if stats.Skipped != 1 {
		t.Fatalf("dangling link should be skipped, stats = %+v", stats)
	}
}

func TestListTracesSkipsAndRun(t *testing.T) {
	root := t.TempDir()
	if err := testkit.WriteTree(root, "ok.txt"); err != nil {
		t.Fatalf("WriteTree: %v", err)
	}
	if err := os.Symlink(filepath.Join(root, "gone"), filepath.Join(root, "broken")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	var traceBuf bytes.Buffer
	opts := DefaultOptions()
	opts.Tracer = trace.NewStreamTracer(&traceBuf, trace.LevelDebug, trace.FormatText)
	if _, _, err := listString(t, root, opts); err != nil {
		t.Fatalf("List: %v", err)
	}
	tr := traceBuf.String()
	for _, want := range []string{"→ list", "• dir (" + root + ")", "• skip (" + filepath.Join(root, "broken") + ")", "files=1", "skipped=1"} {
		if !strings.Contains(tr, want) {
			t.Errorf("trace missing %q:\n%s", want, tr)
		}
	}
}

func TestListTracesFailure(t *testing.T) {
	var traceBuf bytes.Buffer
	opts := DefaultOptions()
	opts.Tracer = trace.NewStreamTracer(&traceBuf, trace.LevelError, trace.FormatText)
	root := filepath.Join(t.TempDir(), "missing")
	if _, _, err := listString(t, root, opts); err == nil {
		t.Fatal("expected error")
	}
	tr := traceBuf.String()
	if !strings.Contains(tr, "! enumerate (cannot list "+root) {
		t.Fatalf("error event missing:\n%s", tr)
	}
	if strings.Contains(tr, "→ list") {
		t.Fatalf("error level must not record spans:\n%s", tr)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestListWriteFailure(t *testing.T) {
	root := t.TempDir()
	if err := testkit.WriteTree(root, "a.txt"); err != nil {
		t.Fatalf("WriteTree: %v", err)
	}
	_, err := New(failingWriter{}, DefaultOptions()).List(root)
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("expected write error, got %v", err)
	}
	var enumErr *EnumError
	if errors.As(err, &enumErr) {
		t.Fatal("write failures are not enumeration failures")
	}
}

func TestParseOrder(t *testing.T) {
	for in, want := range map[string]Order{"": OrderName, "NAME": OrderName, "none": OrderNone, " locale ": OrderLocale} {
		got, err := ParseOrder(in)
		if err != nil || got != want {
			t.Fatalf("ParseOrder(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseOrder("size"); err == nil {
		t.Fatal("ParseOrder(size) should fail")
	}
}
