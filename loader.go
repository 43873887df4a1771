package dotenv

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"path/filepath"

	"charm.land/log/v2"

	"github.com/Azhovan/dotenv/sourcefile"
)

// DefaultFile is the definition file name used when Options.File is empty.
const DefaultFile = ".env"

// Options configures a Loader. The zero value loads ".env" into DefaultNamespace.
type Options struct {
	// File is the definition file name within the directory. Default: ".env".
	File string

	// Namespace receives loaded variables. Default: DefaultNamespace().
	Namespace *Namespace

	// Required: if true, a missing file is an error. Default: false (nothing loaded).
	Required bool

	// FS, when set, is read instead of the host filesystem. The directory is
	// then a slash-separated path inside FS ("." for its root).
	FS fs.FS

	// Logger receives debug output. Values are never logged. Default: discard.
	Logger *log.Logger
}

// Loader reads a definition file and injects its variables into a Namespace
// without overwriting values that are already set.
// Not safe for concurrent use against the same Namespace.
type Loader struct {
	path string
	opts Options
	log  *log.Logger
}

// New creates a Loader for the definition file in directory.
func New(directory string, opts Options) *Loader {
	if opts.File == "" {
		opts.File = DefaultFile
	}
	if opts.Namespace == nil {
		opts.Namespace = DefaultNamespace()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	var p string
	if opts.FS != nil {
		p = path.Join(filepath.ToSlash(directory), opts.File)
	} else {
		p = filepath.Join(directory, opts.File)
	}

	return &Loader{
		path: p,
		opts: opts,
		log:  logger.With("path", p),
	}
}

// Path returns the definition file path.
func (l *Loader) Path() string {
	return l.path
}

// Load reads the definition file and writes its variables into the namespace.
// It returns false, with a nil error, when there is no file to load.
func (l *Loader) Load() (bool, error) {
	res, err := l.LoadResult()
	if err != nil {
		return false, err
	}
	return res != nil, nil
}

// Parse loads the definition file like Load and returns the decoded mapping.
// A nil map with a nil error means the file does not exist; an empty file
// yields an empty, non-nil map.
func (l *Loader) Parse() (map[string]string, error) {
	res, err := l.LoadResult()
	if err != nil {
		return nil, err
	}
	return res.Vars(), nil
}

// LoadResult loads the definition file and reports every assignment in file
// order together with the views it was written to. It returns nil, nil when
// the file does not exist.
//
// Processing stops at the first malformed value; variables from earlier
// lines stay written.
func (l *Loader) LoadResult() (*Result, error) {
	lines, found, err := sourcefile.Read(l.path, sourcefile.Options{
		Required: l.opts.Required,
		FS:       l.opts.FS,
	})
	if err != nil {
		if !found {
			return nil, fmt.Errorf("dotenv: %w", err)
		}
		return nil, &UnreadableError{Path: l.path, Err: err}
	}
	if !found {
		l.log.Debug("no definition file")
		return nil, nil
	}

	l.log.Debug("loading definition file", "lines", len(lines))

	res := &Result{
		Path:        l.path,
		Assignments: make([]Assignment, 0, len(lines)),
	}

	for _, line := range lines {
		a, ok, err := l.assign(line)
		if err != nil {
			return nil, err
		}
		if ok {
			res.Assignments = append(res.Assignments, a)
		}
	}

	return res, nil
}

// assign decodes, resolves and writes a single line.
func (l *Loader) assign(line sourcefile.Line) (Assignment, bool, error) {
	name, raw, ok := splitLine(line.Text)
	if !ok {
		return Assignment{}, false, nil
	}
	if name == "" {
		l.log.Debug("skipping assignment without a name", "line", line.Number)
		return Assignment{}, false, nil
	}

	value, err := decodeValue(raw)
	if err != nil {
		if errors.Is(err, errUnquotedSpace) {
			return Assignment{}, false, &MalformedValueError{
				Path:  l.path,
				Line:  line.Number,
				Name:  name,
				Value: raw,
			}
		}
		return Assignment{}, false, err
	}

	ns := l.opts.Namespace
	value = ns.Expand(value)

	written, err := ns.SetIfEmpty(name, value)
	if err != nil {
		return Assignment{}, false, fmt.Errorf("dotenv: %s:%d: %w", l.path, line.Number, err)
	}

	l.log.Debug("variable loaded", "name", name, "line", line.Number, "written", len(written))

	return Assignment{
		Name:    name,
		Value:   value,
		Line:    line.Number,
		Written: written,
	}, true, nil
}
