// =============================================================================
// Sales Analytics - File Manager Utility
// =============================================================================
//
// This module provides file management utilities for the pipeline:
//   - Directory management for output and archive locations
//   - Input archival after successful runs
//   - Error log generation for failed runs
//
// ARCHIVAL STRATEGY:
//   - The input file is moved into the archive directory after a successful
//     run, with a timestamp prefix so repeated exports never collide.
//   - Failed runs leave the input file in place.
//   - Error logs are created in the output directory with uuid names.
//
// =============================================================================

package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// FileManager handles file operations for the pipeline.
type FileManager struct {
	// ArchiveDir is the directory processed input files are moved into.
	ArchiveDir string

	// OutputDir is the directory error logs are written into.
	OutputDir string
}

// NewFileManager creates a FileManager over the given directories.
func NewFileManager(archiveDir, outputDir string) *FileManager {
	return &FileManager{
		ArchiveDir: archiveDir,
		OutputDir:  outputDir,
	}
}

// EnsureDirectories creates the managed directories if they don't exist.
func (fm *FileManager) EnsureDirectories() error {
	for _, dir := range []string{fm.ArchiveDir, fm.OutputDir} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// ArchiveFile moves a processed input file into the archive directory and
// returns the archived path. The archive name carries a timestamp prefix:
// 20240115_103000_sales_data.txt.
func (fm *FileManager) ArchiveFile(path string) (string, error) {
	if err := os.MkdirAll(fm.ArchiveDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	name := fmt.Sprintf("%s_%s", time.Now().Format("20060102_150405"), filepath.Base(path))
	dest := filepath.Join(fm.ArchiveDir, name)

	if err := os.Rename(path, dest); err == nil {
		return dest, nil
	}

	// Rename fails across filesystems; fall back to copy and remove.
	if err := copyFile(path, dest); err != nil {
		return "", fmt.Errorf("failed to archive %s: %w", path, err)
	}
	if err := os.Remove(path); err != nil {
		return "", fmt.Errorf("failed to remove archived source %s: %w", path, err)
	}
	return dest, nil
}

// WriteErrorLog writes a run failure log into the output directory and
// returns its path. Each log gets a uuid name so concurrent or repeated
// failures never overwrite each other.
func (fm *FileManager) WriteErrorLog(runErr error) (string, error) {
	if err := os.MkdirAll(fm.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(fm.OutputDir, fmt.Sprintf("error_%s.log", uuid.NewString()))
	content := fmt.Sprintf("Run failed at %s\n\n%v\n", time.Now().Format(time.RFC3339), runErr)

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write error log: %w", err)
	}
	return path, nil
}

// copyFile copies src to dst, creating or truncating dst.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
