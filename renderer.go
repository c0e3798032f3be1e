package coursesite

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

const (
	// DefaultFilePerms are the default file permissions for files rendered onto
	// disk when a specific file permission has not already been specified.
	defaultFilePerms = 0644
)

var (
	// ErrNoParentDir is the error returned with the parent directory is missing
	// and the user disabled it.
	errNoParentDir = errors.New("parent directory is missing")

	// ErrMissingDest is the error returned with the destination is empty.
	errMissingDest = errors.New("missing destination")
)

// FileRenderer will handle rendering the template text to a file.
type FileRenderer struct {
	createDestDirs bool
	path           string
	perms          os.FileMode
	backup         BackupFunc
}

// check for interface compliance
var _ Renderer = (*FileRenderer)(nil)

// NewFileRenderer returns a new FileRenderer.
func NewFileRenderer(i FileRendererInput) FileRenderer {
	backup := i.Backup
	if backup == nil {
		backup = func(string) {}
	}
	return FileRenderer{
		createDestDirs: i.CreateDestDirs,
		path:           i.Path,
		perms:          i.Perms,
		backup:         backup,
	}
}

// FileRendererInput is the input structure for NewFileRenderer.
type FileRendererInput struct {
	// CreateDestDirs causes missing directories on path to be created
	CreateDestDirs bool
	// Path is the full file path to write to
	Path string
	// Perms sets the mode of the file, 0 keeps the mode of an existing file
	Perms os.FileMode
	// Backup is called with the path before an existing file is replaced
	Backup BackupFunc
}

// BackupFunc defines the function type passed in to make backups of
// previously rendered files, if desired.
type BackupFunc func(path string)

// RenderResult is returned and stored. It contains the status of the render
// operation.
type RenderResult struct {
	// DidRender indicates if the contents were written to disk. It is false
	// when the file on disk already matches the new contents.
	DidRender bool

	// WouldRender indicates the file on disk has (or now has) the contents.
	// It is false only on error.
	WouldRender bool
}

// Render atomically writes the contents to disk, replacing any existing file.
// An existing file with identical contents is left untouched.
func (r FileRenderer) Render(contents []byte) (RenderResult, error) {
	existing, err := os.ReadFile(r.path)
	fileExists := !os.IsNotExist(err)
	if err != nil && fileExists {
		return RenderResult{}, errors.Wrap(err, "failed reading file")
	}

	if fileExists && bytes.Equal(existing, contents) {
		return RenderResult{
			DidRender:   false,
			WouldRender: true,
		}, nil
	}

	if fileExists {
		r.backup(r.path)
	}

	if err := atomicWrite(r.path, contents, r.perms, r.createDestDirs); err != nil {
		return RenderResult{}, errors.Wrap(err, "failed writing file")
	}

	return RenderResult{
		DidRender:   true,
		WouldRender: true,
	}, nil
}

// Backup creates a [filename].bak copy, preserving the Mode
// Provided for convenience (to use as the BackupFunc).
func Backup(path string) {
	if path == "" {
		return
	}
	bak, old := path+".bak", path+".old.bak"
	os.Rename(bak, old) // ignore error
	if err := os.Link(path, bak); err == nil {
		os.Remove(old) // ignore error
	}
}

// atomicWrite writes contents to a temporary file next to path and renames
// it into place, so readers never observe a partially written file.
//
// A missing parent directory is created (0755) only when createDestDirs is
// set. With perms 0 an existing file keeps its mode and ownership and a new
// file gets 0644.
func atomicWrite(
	path string, contents []byte, perms os.FileMode, createDestDirs bool,
) error {
	if path == "" {
		return errMissingDest
	}

	parent := filepath.Dir(path)
	if _, err := os.Stat(parent); os.IsNotExist(err) {
		if !createDestDirs {
			return errNoParentDir
		}
		if err := os.MkdirAll(parent, 0755); err != nil {
			return err
		}
	}

	f, err := os.CreateTemp(parent, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if _, err := f.Write(contents); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	if perms == 0 {
		currentInfo, err := os.Stat(path)
		switch {
		case os.IsNotExist(err):
			perms = defaultFilePerms
		case err != nil:
			return err
		default:
			perms = currentInfo.Mode()
			preserveFilePermissions(f.Name(), currentInfo)
		}
	}

	if err := os.Chmod(f.Name(), perms); err != nil {
		return err
	}

	return os.Rename(f.Name(), path)
}
