package tree

import "os"

// Kind classifies a directory entry for printing.
type Kind uint8

const (
	// KindOther covers everything that is neither a directory nor a regular
	// file: broken links, devices, sockets, FIFOs, unreadable entries.
	KindOther Kind = iota
	KindDir
	KindFile
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	switch k {
	case KindDir:
		return "dir"
	case KindFile:
		return "file"
	default:
		return "other"
	}
}

// Classify stats path, following symbolic links.
func Classify(path string) Kind {
	info, err := os.Stat(path)
	if err != nil {
		return KindOther
	}
	switch {
	case info.IsDir():
		return KindDir
	case info.Mode().IsRegular():
		return KindFile
	default:
		return KindOther
	}
}
