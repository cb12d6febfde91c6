package frames

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	"go.uber.org/zap"
)

// DescriptorFile is the descriptor file name inside each part directory.
const DescriptorFile = "part.json"

// ErrNoDatabase is returned when no prjxray database directory is known.
var ErrNoDatabase = errors.New("prjxray database directory is not configured")

// Database resolves part names to descriptors in a prjxray database tree.
type Database struct {
	fsys    fs.FS
	catalog *Catalog
	logger  *zap.Logger
}

// NewDatabase creates a Database over fsys, which must be rooted at the
// database directory. A nil logger disables logging.
func NewDatabase(fsys fs.FS, logger *zap.Logger) (*Database, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	catalog, err := LoadCatalog()
	if err != nil {
		return nil, err
	}
	return &Database{fsys: fsys, catalog: catalog, logger: logger}, nil
}

// OpenDatabase opens the database rooted at dir.
func OpenDatabase(dir string, logger *zap.Logger) (*Database, error) {
	if dir == "" {
		return nil, ErrNoDatabase
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open prjxray database: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("prjxray database %s is not a directory", dir)
	}
	return NewDatabase(os.DirFS(dir), logger)
}

// DescriptorPath returns the descriptor path for part, relative to the
// database root.
func (db *Database) DescriptorPath(part string) (string, error) {
	family, err := db.catalog.Lookup(part)
	if err != nil {
		return "", err
	}
	return path.Join(string(family), part, DescriptorFile), nil
}

// LoadPart reads and parses the descriptor for part.
func (db *Database) LoadPart(part string) (*Part, error) {
	p, err := db.DescriptorPath(part)
	if err != nil {
		return nil, err
	}

	f, err := db.fsys.Open(p)
	if err != nil {
		return nil, &DescriptorError{Path: p, Err: err}
	}
	defer f.Close()

	desc, err := ParsePart(f)
	if err != nil {
		return nil, &DescriptorError{Path: p, Err: err}
	}
	return desc, nil
}

// BuildFrameList returns the sorted frame address list for part.
func (db *Database) BuildFrameList(part string) ([]Address, error) {
	if db == nil {
		return nil, ErrNoDatabase
	}
	desc, err := db.LoadPart(part)
	if err != nil {
		return nil, err
	}

	list, err := desc.FrameAddresses()
	if err != nil {
		var descErr *DescriptorError
		if errors.As(err, &descErr) && descErr.Path == "" {
			descErr.Path, _ = db.DescriptorPath(part)
		}
		return nil, err
	}

	db.logger.Info("frame address list built",
		zap.String("part", part),
		zap.Int("frames", len(list)),
	)
	return list, nil
}
