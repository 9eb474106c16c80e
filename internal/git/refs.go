package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/Johannes-Berggren/gco/internal/models"
	"github.com/spf13/afero"
	"pkt.systems/pslog"
)

const (
	// MetadataDir is the repository metadata directory relative to the work tree.
	MetadataDir = ".git"
	HeadsDir    = "refs/heads"
	TagsDir     = "refs/tags"

	// MaxDepth bounds how many directory levels below a refs root are walked.
	MaxDepth = 32
)

var (
	// ErrNoRefs reports a repository without any loose branch or tag.
	ErrNoRefs = errors.New("no branches or tags found")
	// ErrNotDir reports a refs root that exists but is not a directory.
	ErrNotDir = errors.New("not a directory")
	// ErrTooDeep reports refs nested more than MaxDepth directories deep.
	ErrTooDeep = errors.New("ref directory nesting too deep")
)

// ScanError reports a refs root that could not be walked.
type ScanError struct {
	Root string
	Err  error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("scan refs in %s: %v", e.Root, e.Err)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// GitDir returns the metadata directory for the work tree at dir.
func GitDir(dir string) string {
	return filepath.Join(dir, MetadataDir)
}

// Scanner lists loose ref files below a refs root.
//
// Symbolic links pointing at regular files are listed under the link's own
// name. Links to directories are not followed, so cyclic trees terminate.
type Scanner struct {
	fs       afero.Fs
	maxDepth int
}

func NewScanner(fs afero.Fs) *Scanner {
	return &Scanner{fs: fs, maxDepth: MaxDepth}
}

type pendingDir struct {
	dir    string
	prefix string
	depth  int
}

// Scan returns the name of every regular file under root, slash separated
// and relative to root. Files of a directory come before the contents of its
// sub-directories.
func (s *Scanner) Scan(ctx context.Context, root string) ([]string, error) {
	log := pslog.Ctx(ctx).With("root", root)

	info, err := s.fs.Stat(root)
	if err != nil {
		return nil, &ScanError{Root: root, Err: err}
	}
	if !info.IsDir() {
		return nil, &ScanError{Root: root, Err: ErrNotDir}
	}

	names := []string{}
	queue := []pendingDir{{dir: root}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		entries, err := afero.ReadDir(s.fs, cur.dir)
		if err != nil {
			return nil, &ScanError{Root: root, Err: err}
		}

		for _, entry := range entries {
			name := path.Join(cur.prefix, entry.Name())
			full := filepath.Join(cur.dir, entry.Name())
			mode := entry.Mode()

			switch {
			case mode&os.ModeSymlink != 0:
				target, err := s.fs.Stat(full)
				if err != nil {
					log.Debug("skip dangling ref link", "ref", name, "err", err)
					continue
				}
				if !target.Mode().IsRegular() {
					log.Debug("skip ref link to non-file", "ref", name)
					continue
				}
				names = append(names, name)

			case entry.IsDir():
				if cur.depth+1 > s.maxDepth {
					return nil, &ScanError{Root: root, Err: fmt.Errorf("%s: %w", name, ErrTooDeep)}
				}
				queue = append(queue, pendingDir{dir: full, prefix: name, depth: cur.depth + 1})

			case mode.IsRegular():
				names = append(names, name)

			default:
				log.Debug("skip special file", "ref", name, "mode", mode.String())
			}
		}
	}

	log.Debug("refs scanned", "count", len(names))
	return names, nil
}

// ScanRepo lists the branches and then the tags of the repository whose
// metadata directory is gitDir.
func (s *Scanner) ScanRepo(ctx context.Context, gitDir string) ([]models.Ref, error) {
	heads, err := s.Scan(ctx, filepath.Join(gitDir, filepath.FromSlash(HeadsDir)))
	if err != nil {
		return nil, err
	}
	tags, err := s.Scan(ctx, filepath.Join(gitDir, filepath.FromSlash(TagsDir)))
	if err != nil {
		return nil, err
	}

	refs := make([]models.Ref, 0, len(heads)+len(tags))
	for _, name := range heads {
		refs = append(refs, models.Ref{Name: name, Kind: models.RefBranch})
	}
	for _, name := range tags {
		refs = append(refs, models.Ref{Name: name, Kind: models.RefTag})
	}
	return refs, nil
}
