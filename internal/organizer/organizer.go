// Package organizer relocates Image groups into the canonical date-based
// library layout.
//
// A run is a fixed pipeline: scan, date-resolve, name-resolve, move, prune.
// Per-Image and per-file failures are accumulated in the Result and never
// abort the batch; only a missing source directory or destination root is
// fatal. Moves are deliberately non-atomic per file: a partial failure can
// leave an Image's siblings split between old and new locations, and no
// rollback is attempted.
package organizer

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/homemedia/organizer/internal/catalog"
	"github.com/homemedia/organizer/internal/logger"
	"github.com/homemedia/organizer/internal/media"
	"github.com/homemedia/organizer/internal/scanner"
)

// MetadataPopulator fills capture metadata on an Image. Implementations
// must tolerate files without metadata and never fail the run.
type MetadataPopulator interface {
	Populate(img *media.Image)
}

// Options configures an Organizer.
type Options struct {
	Recursive       bool
	IncludeSidecars bool

	// Metadata populates capture metadata per Image; nil disables it.
	Metadata MetadataPopulator

	// Catalog records run manifests; nil disables it.
	Catalog *catalog.Catalog
}

// Organizer moves Image groups into a destination library root.
type Organizer struct {
	root string
	opts Options
}

// New creates an Organizer for the given destination root. An empty root
// is a configuration error and aborts before any scanning.
func New(destinationRoot string, opts Options) (*Organizer, error) {
	if destinationRoot == "" {
		return nil, fmt.Errorf("destination root is not configured")
	}
	return &Organizer{root: destinationRoot, opts: opts}, nil
}

// FileError records one per-Image or per-file failure.
type FileError struct {
	Path    string
	Message string
}

// Result accumulates the outcome of one organize run.
type Result struct {
	RunID           string
	ImagesProcessed int
	FilesMoved      int
	FilesSkipped    int
	Errors          []FileError
	StartedAt       time.Time
	FinishedAt      time.Time

	moves []catalog.FileMove
}

func (r *Result) addError(path, message string) {
	r.Errors = append(r.Errors, FileError{Path: path, Message: message})
}

func (r *Result) String() string {
	return fmt.Sprintf("Processed %d images. Moved %d files. Skipped %d files. Errors: %d",
		r.ImagesProcessed, r.FilesMoved, r.FilesSkipped, len(r.Errors))
}

// Organize runs the full pipeline over sourceDir. With dryRun set, the
// same plan is computed and logged but nothing on disk changes.
func (o *Organizer) Organize(sourceDir string, dryRun bool) (*Result, error) {
	result := &Result{
		RunID:     uuid.NewString(),
		StartedAt: time.Now(),
	}

	if _, err := os.Stat(sourceDir); err != nil {
		return nil, fmt.Errorf("source directory not found: %s: %w", sourceDir, err)
	}

	if !dryRun {
		if err := os.MkdirAll(o.root, 0o755); err != nil {
			return nil, fmt.Errorf("create destination root %s: %w", o.root, err)
		}
	}

	logger.Info("scanning source directory", "path", sourceDir, "dry_run", dryRun)

	files, err := scanner.CollectFiles(sourceDir, scanner.CollectOptions{
		Recursive:       o.opts.Recursive,
		IncludeSidecars: o.opts.IncludeSidecars,
	})
	if err != nil {
		return nil, fmt.Errorf("collect files: %w", err)
	}

	images := scanner.GroupFiles(files, sourceDir)
	for _, img := range images {
		img.RefineRoles()
		if o.opts.Metadata != nil {
			o.opts.Metadata.Populate(img)
		}
	}

	logger.Info("found image groups to process", "count", len(images))

	for _, img := range images {
		o.processImage(img, result, dryRun)
	}

	if !dryRun {
		pruneEmptyDirectories(sourceDir)
	}

	result.FinishedAt = time.Now()
	o.recordRun(sourceDir, dryRun, result)

	return result, nil
}

// processImage resolves one Image's target date and name, then moves its
// files. Every file is attempted independently.
func (o *Organizer) processImage(img *media.Image, result *Result, dryRun bool) {
	result.ImagesProcessed++

	targetDate, ok := o.resolveDate(img, result)
	if !ok {
		return
	}

	targetSubdir := targetDate.Format("2006/01/02")
	targetDir := filepath.Join(o.root, targetSubdir)
	targetBase := targetDate.Format("2006-01-02_15-04-05")

	finalBase := UniqueBaseName(targetDir, targetBase, img.Suffixes())

	for _, f := range img.Files {
		newFilename := finalBase + f.Suffix
		targetPath := filepath.Join(targetDir, newFilename)

		move := catalog.FileMove{
			BaseName:        finalBase,
			Role:            f.Role.String(),
			Format:          f.Format.String(),
			SourcePath:      f.Path,
			DestinationPath: targetPath,
			SizeBytes:       f.SizeBytes,
		}

		if dryRun {
			logger.Info("dry run: would move file", "from", f.Path, "to", targetPath)
			result.FilesMoved++
			move.Moved = true
			result.moves = append(result.moves, move)
			continue
		}

		if err := os.MkdirAll(targetDir, 0o755); err != nil {
			logger.Error("failed to create target directory", "path", targetDir, "error", err)
			result.addError(f.Path, err.Error())
			result.FilesSkipped++
			move.Error = err.Error()
			result.moves = append(result.moves, move)
			continue
		}

		logger.Info("moving file", "from", f.Filename, "to", targetPath)
		if err := moveFile(f.Path, targetPath); err != nil {
			logger.Error("failed to move file", "path", f.Path, "error", err)
			result.addError(f.Path, err.Error())
			result.FilesSkipped++
			move.Error = err.Error()
			result.moves = append(result.moves, move)
			continue
		}

		result.FilesMoved++
		move.Moved = true
		result.moves = append(result.moves, move)
	}
}

// resolveDate determines the date an Image files under. Priority: capture
// metadata, then a timestamp parsed from the base name, then the earliest
// file time. Images with no resolvable date are recorded as errors and
// left untouched.
func (o *Organizer) resolveDate(img *media.Image, result *Result) (time.Time, bool) {
	if img.CapturedAt != nil {
		return *img.CapturedAt, true
	}

	if t, ok := scanner.ParseDateFromFilename(img.BaseName); ok {
		logger.Info("no capture metadata, parsed date from filename",
			"base_name", img.BaseName, "date", t)
		return t, true
	}

	if t := img.EarliestFileTime(); t != nil {
		logger.Warn("no capture metadata or filename date, using file time",
			"base_name", img.BaseName, "date", *t)
		return *t, true
	}

	logger.Warn("no date found for image, skipping", "base_name", img.BaseName)
	result.addError(img.BaseName, "no date found")
	return time.Time{}, false
}

// moveFile renames src to dst, falling back to copy-and-remove when the
// rename fails (cross-device moves).
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return fmt.Errorf("copy %s: %w", src, err)
	}
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return fmt.Errorf("close %s: %w", dst, err)
	}

	if info, err := os.Stat(src); err == nil {
		os.Chtimes(dst, info.ModTime(), info.ModTime())
	}

	return os.Remove(src)
}

// pruneEmptyDirectories removes directories left empty after all moves,
// deepest first so a newly emptied child disappears before its parent is
// evaluated. The root itself is kept.
func pruneEmptyDirectories(root string) {
	var dirs []string
	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() && path != root {
			dirs = append(dirs, path)
		}
		return nil
	})

	// A child's path is always longer than its parent's.
	sort.Slice(dirs, func(i, j int) bool {
		return len(dirs[i]) > len(dirs[j])
	})

	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil || len(entries) > 0 {
			continue
		}
		if err := os.Remove(dir); err != nil {
			logger.Debug("could not remove directory", "path", dir, "error", err)
			continue
		}
		logger.Info("removed empty directory", "path", dir)
	}
}

// recordRun writes the run manifest to the catalog, if one is configured.
// Catalog failures are logged, never propagated.
func (o *Organizer) recordRun(sourceDir string, dryRun bool, result *Result) {
	if o.opts.Catalog == nil {
		return
	}

	run := &catalog.OrganizeRun{
		ID:              result.RunID,
		SourceDir:       sourceDir,
		DestinationRoot: o.root,
		DryRun:          dryRun,
		ImagesProcessed: result.ImagesProcessed,
		FilesMoved:      result.FilesMoved,
		FilesSkipped:    result.FilesSkipped,
		ErrorCount:      len(result.Errors),
		StartedAt:       result.StartedAt,
		FinishedAt:      result.FinishedAt,
	}

	if err := o.opts.Catalog.RecordRun(run, result.moves); err != nil {
		logger.Warn("failed to record run in catalog", "run_id", result.RunID, "error", err)
	}
}
