package deck

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/gofrs/flock"
	"github.com/specialistvlad/corequiz/internal/ctxlog"
	"github.com/specialistvlad/corequiz/internal/fsutil"
	"github.com/specialistvlad/corequiz/internal/quiz"
)

// DefaultLockTimeout bounds how long Load waits for a deck's shared lock.
const DefaultLockTimeout = 2 * time.Second

const lockRetryInterval = 50 * time.Millisecond

// Loader is the interface for anything that can produce seed entries from a
// set of paths.
type Loader interface {
	Load(ctx context.Context, paths ...string) ([]quiz.Entry, error)
}

// Decoder turns the raw contents of one deck file into entries. The filename
// is used for diagnostics only.
type Decoder interface {
	Decode(ctx context.Context, filename string, src []byte) ([]quiz.Entry, error)
}

// FileLoader reads decks from the file system, choosing a Decoder by file
// extension.
type FileLoader struct {
	decoders    map[string]Decoder
	lockTimeout time.Duration
}

// Option configures a FileLoader.
type Option func(*FileLoader)

// WithLockTimeout sets how long to wait for each file's shared lock.
func WithLockTimeout(d time.Duration) Option {
	return func(l *FileLoader) {
		if d > 0 {
			l.lockTimeout = d
		}
	}
}

// NewLoader creates a FileLoader with the HCL and YAML decoders registered.
func NewLoader(opts ...Option) *FileLoader {
	l := &FileLoader{
		decoders:    make(map[string]Decoder),
		lockTimeout: DefaultLockTimeout,
	}
	l.Register(".hcl", NewHCLDecoder())
	l.Register(".yaml", NewYAMLDecoder())
	l.Register(".yml", NewYAMLDecoder())

	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Register associates a decoder with a file extension (including the dot).
// Registering the same extension twice is a programming error.
func (l *FileLoader) Register(ext string, d Decoder) {
	ext = strings.ToLower(ext)
	if _, exists := l.decoders[ext]; exists {
		panic(fmt.Sprintf("deck decoder for extension '%s' already registered", ext))
	}
	l.decoders[ext] = d
}

// Extensions returns the registered extensions in sorted order.
func (l *FileLoader) Extensions() []string {
	exts := make([]string, 0, len(l.decoders))
	for ext := range l.decoders {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Load reads every deck file reachable from paths, in order, and returns the
// concatenated entries. Directories are walked recursively and files with an
// unregistered extension inside them are skipped; a file named explicitly
// must have a registered extension.
func (l *FileLoader) Load(ctx context.Context, paths ...string) ([]quiz.Entry, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Deck loader started.", "path_count", len(paths))

	files, err := l.resolve(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered deck files.", "count", len(files))

	var entries []quiz.Entry
	for _, file := range files {
		src, err := l.readShared(ctx, file)
		if err != nil {
			return nil, err
		}

		dec := l.decoders[strings.ToLower(filepath.Ext(file))]
		decoded, err := dec.Decode(ctx, file, src)
		if err != nil {
			return nil, err
		}
		if err := validate(file, decoded); err != nil {
			return nil, err
		}

		logger.Debug("Deck file loaded.", "file", file, "entries", len(decoded))
		entries = append(entries, decoded...)
	}

	logger.Info("Deck loaded.", "files", len(files), "entries", len(entries))
	return entries, nil
}

// resolve expands paths into a flat, de-duplicated list of deck files.
func (l *FileLoader) resolve(paths []string) ([]string, error) {
	var all []string
	seen := make(map[string]struct{})
	add := func(p string) {
		if _, ok := seen[p]; !ok {
			seen[p] = struct{}{}
			all = append(all, p)
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing deck path %s: %w", path, err)
		}

		if info.IsDir() {
			files, err := fsutil.FindFilesByExtension(path, l.Extensions()...)
			if err != nil {
				return nil, fmt.Errorf("failed to find deck files in %s: %w", path, err)
			}
			for _, f := range files {
				add(f)
			}
			continue
		}

		if _, ok := l.decoders[strings.ToLower(filepath.Ext(path))]; !ok {
			return nil, fmt.Errorf("unsupported deck file %s: extension must be one of %s", path, strings.Join(l.Extensions(), ", "))
		}
		add(path)
	}
	return all, nil
}

// readShared reads a deck file while holding a shared lock on its sidecar
// `<file>.lock`, so an editor holding the exclusive lock is never read
// mid-write. The sidecar is left in place: removing it would let two
// processes lock different inodes. If it cannot be created (read-only
// directory or file system) the file is read without it.
func (l *FileLoader) readShared(ctx context.Context, path string) ([]byte, error) {
	logger := ctxlog.FromContext(ctx)
	lock := flock.New(path + ".lock")

	lockCtx, cancel := context.WithTimeout(ctx, l.lockTimeout)
	defer cancel()

	locked, err := lock.TryRLockContext(lockCtx, lockRetryInterval)
	switch {
	case err != nil && lockUnavailable(err):
		logger.Warn("Deck lock unavailable, reading without it.", "file", path, "error", err)
	case err != nil:
		return nil, fmt.Errorf("failed to lock deck file %s: %w", path, err)
	case !locked:
		return nil, fmt.Errorf("failed to lock deck file %s: still locked after %s", path, l.lockTimeout)
	default:
		defer func() {
			if err := lock.Unlock(); err != nil {
				logger.Warn("Failed to release deck lock.", "file", path, "error", err)
			}
		}()
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read deck file %s: %w", path, err)
	}
	return src, nil
}

// lockUnavailable reports whether a lock error means the sidecar cannot be
// created at all, as opposed to a lock that is held.
func lockUnavailable(err error) bool {
	return errors.Is(err, fs.ErrPermission) || errors.Is(err, syscall.EROFS)
}

func validate(file string, entries []quiz.Entry) error {
	for i, e := range entries {
		if strings.TrimSpace(e.Question) == "" {
			return fmt.Errorf("%s: quiz #%d has an empty question", file, i+1)
		}
		if strings.TrimSpace(e.Answer) == "" {
			return fmt.Errorf("%s: quiz #%d has an empty answer", file, i+1)
		}
	}
	return nil
}
