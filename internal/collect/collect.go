package collect

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joseph-ayodele/image-inventory/constants"
	"github.com/joseph-ayodele/image-inventory/internal/common"
)

// ImageFile is one candidate image found during collection.
type ImageFile struct {
	// Path is the file path as discovered, relative to the caller's cwd
	// when the input directory was relative.
	Path string
	// Ext is the normalized extension without the dot, e.g. "jpeg".
	Ext string
	// Stem is the base name without extension; it becomes the row's
	// temporary item name.
	Stem string
}

// DirStats aggregates counters for one collection pass.
type DirStats struct {
	Scanned uint32
	Matched uint32
}

// Collector enumerates supported image files under a directory.
type Collector struct {
	logger *slog.Logger
}

func NewCollector(logger *slog.Logger) *Collector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Collector{logger: logger}
}

// ListImages returns the supported image files under root in lexicographic
// path order. Non-recursive mode considers only direct children that are
// regular files; recursive mode walks the whole tree. A missing or
// non-directory root is a fatal error; zero matches is not.
func (c *Collector) ListImages(root string, recursive bool) ([]ImageFile, DirStats, error) {
	var stats DirStats

	if strings.TrimSpace(root) == "" {
		return nil, stats, common.NewAppError("CONFIG_ERROR", "input directory is required", common.ErrInvalidInput)
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, stats, common.NewAppError("NOT_FOUND", "input folder not found: "+root, common.ErrNotFound)
	}
	if !info.IsDir() {
		return nil, stats, common.NewAppError("NOT_A_DIRECTORY", "input path is not a directory: "+root, common.ErrNotADirectory)
	}

	var files []ImageFile
	add := func(path string) {
		ext := constants.NormalizeExt(filepath.Ext(path))
		base := filepath.Base(path)
		files = append(files, ImageFile{
			Path: path,
			Ext:  ext,
			Stem: strings.TrimSuffix(base, filepath.Ext(base)),
		})
		stats.Matched++
	}

	if recursive {
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				// unreadable entry: log and keep walking
				c.logger.Warn("skipping unreadable entry", "path", path, "error", walkErr)
				return nil
			}
			if d.IsDir() {
				return nil
			}
			stats.Scanned++
			if constants.IsSupportedImage(path) {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, stats, common.WrapError(err, "walk "+root)
		}
	} else {
		entries, err := os.ReadDir(root)
		if err != nil {
			return nil, stats, common.WrapError(err, "read dir "+root)
		}
		for _, e := range entries {
			// directories, symlinks, fifos and such are not candidates
			if !e.Type().IsRegular() {
				continue
			}
			stats.Scanned++
			path := filepath.Join(root, e.Name())
			if constants.IsSupportedImage(path) {
				add(path)
			}
		}
	}

	// WalkDir and ReadDir both visit in lexical order, but row ordering is
	// an output contract, so sort explicitly.
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })

	return files, stats, nil
}
