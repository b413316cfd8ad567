package ingest

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/constants"
	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/internal/entity"
)

// FileResult reports the outcome of loading one file.
type FileResult struct {
	Path  string
	Name  string
	Pages int
	Err   string
}

type DirStats struct {
	Scanned   uint32
	Matched   uint32
	Succeeded uint32
	Failed    uint32
}

// Loader reads OCR'd contract text from the local filesystem. One file is one
// document; pages are split on the form feed that OCR tools emit between
// pages.
type Loader struct {
	logger      *slog.Logger
	allowedExts map[string]struct{}
}

func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		logger:      logger,
		allowedExts: map[string]struct{}{"txt": {}},
	}
}

// LoadDirectory walks root, loads every matching text file as a document for
// the given bank, and returns documents sorted by name. A broken file fails
// itself only; the walk continues.
func (l *Loader) LoadDirectory(ctx context.Context, root string, bank constants.BankType) ([]*entity.Document, []FileResult, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, nil, DirStats{}, fmt.Errorf("root path is required")
	}

	var (
		docs    []*entity.Document
		results []FileResult
		stats   DirStats
	)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		stats.Scanned++
		if walkErr != nil {
			results = append(results, FileResult{Path: path, Err: walkErr.Error()})
			stats.Failed++
			return nil // continue walking
		}
		if d.IsDir() {
			if isHidden(path) && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if isHidden(path) {
			return nil
		}
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
		if _, ok := l.allowedExts[ext]; !ok {
			return nil
		}
		stats.Matched++

		doc, err := l.LoadFile(path, bank)
		if err != nil {
			results = append(results, FileResult{Path: path, Err: err.Error()})
			stats.Failed++
			l.logger.Warn("ingest.file.failed", "path", path, "error", err)
			return nil
		}
		docs = append(docs, doc)
		results = append(results, FileResult{Path: path, Name: doc.Name, Pages: len(doc.Pages)})
		stats.Succeeded++
		return nil
	})
	if err != nil {
		return docs, results, stats, fmt.Errorf("walk %s: %w", root, err)
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].Name < docs[j].Name })
	l.logger.Info("ingest.done",
		"root", root, "scanned", stats.Scanned, "matched", stats.Matched,
		"succeeded", stats.Succeeded, "failed", stats.Failed)
	return docs, results, stats, nil
}

// LoadFile reads one text file into a document. The document name is the file
// name without extension.
func (l *Loader) LoadFile(path string, bank constants.BankType) (*entity.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	pages := SplitPages(string(data))
	return entity.NewDocument(name, bank, pages), nil
}

// SplitPages splits raw OCR text on form feeds into pages with estimated
// quality. Pages that are entirely whitespace are dropped.
func SplitPages(text string) []entity.Page {
	var pages []entity.Page
	for _, chunk := range strings.Split(text, "\f") {
		if strings.TrimSpace(chunk) == "" {
			continue
		}
		pages = append(pages, entity.Page{
			Index:   len(pages) + 1,
			Text:    chunk,
			Quality: estimateQuality(chunk),
		})
	}
	return pages
}

// estimateQuality is a cheap legibility proxy: the share of letters and
// digits among non-space runes. Garbled OCR output is punctuation-heavy and
// scores low.
func estimateQuality(text string) float64 {
	total, good := 0, 0
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			good++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(good) / float64(total)
}

func isHidden(path string) bool {
	return strings.HasPrefix(filepath.Base(path), ".")
}
