package sourcefile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// Options configures file reading behavior.
type Options struct {
	// Required: if true, missing files cause an error. Default: false (reports not found).
	Required bool

	// FS, when set, is used instead of the host filesystem.
	// The path passed to Read must then be a valid fs.FS path.
	FS fs.FS
}

// Line is a single non-empty line of a definition file.
type Line struct {
	Number int    // 1-based physical line number
	Text   string // Line content without its terminator
}

// ErrNotFound is returned for a missing file when Options.Required is set.
var ErrNotFound = errors.New("sourcefile: required file not found")

const bom = "\ufeff"

// Read returns the non-empty lines of the file at path.
// found is false when no regular file exists there. When a file exists but
// cannot be read, found is true and err carries the underlying *fs.PathError.
func Read(path string, opts Options) (lines []Line, found bool, err error) {
	info, err := stat(path, opts.FS)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, true, err
	}
	if err != nil || !info.Mode().IsRegular() {
		if opts.Required {
			return nil, false, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, false, nil
	}

	data, err := readFile(path, opts.FS)
	if err != nil {
		return nil, true, err
	}

	return Split(string(data)), true, nil
}

// Split breaks content into lines, stripping "\n" and "\r\n" terminators and
// dropping lines that are completely empty. Line numbers count every physical line.
func Split(content string) []Line {
	content = strings.TrimPrefix(content, bom)

	raw := strings.Split(content, "\n")
	lines := make([]Line, 0, len(raw))
	for i, text := range raw {
		text = strings.TrimSuffix(text, "\r")
		if text == "" {
			continue
		}
		lines = append(lines, Line{Number: i + 1, Text: text})
	}
	return lines
}

func stat(path string, fsys fs.FS) (fs.FileInfo, error) {
	if fsys != nil {
		return fs.Stat(fsys, path)
	}
	return os.Stat(path)
}

func readFile(path string, fsys fs.FS) ([]byte, error) {
	if fsys != nil {
		return fs.ReadFile(fsys, path)
	}
	return os.ReadFile(path)
}
