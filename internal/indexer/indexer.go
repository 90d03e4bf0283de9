// Package indexer provides document indexing into storage and the keyword index.
package indexer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hyperjump/shirushi/internal/extract"
	"github.com/hyperjump/shirushi/internal/fileid"
	"github.com/hyperjump/shirushi/internal/keyword"
	"github.com/hyperjump/shirushi/internal/models"
	"github.com/hyperjump/shirushi/internal/storage"
)

// Indexer indexes documents into storage and the keyword index.
type Indexer struct {
	storage      storage.Storage
	keywordIndex keyword.KeywordIndex
	extractor    *extract.Extractor
	logger       *zap.Logger // optional; when set, logs debug events
}

// IndexerOption configures an Indexer.
type IndexerOption func(*Indexer)

// WithLogger sets a logger for debug output (file indexed, document deleted, etc.).
func WithLogger(l *zap.Logger) IndexerOption {
	return func(idx *Indexer) { idx.logger = l }
}

// NewIndexer creates an indexer with the given dependencies.
// extractor may be nil; when nil, IndexFile treats all files as plain text.
// Options (e.g. WithLogger) can be passed for debug logging.
func NewIndexer(
	storage storage.Storage,
	keywordIndex keyword.KeywordIndex,
	extractor *extract.Extractor,
	opts ...IndexerOption,
) *Indexer {
	idx := &Indexer{
		storage:      storage,
		keywordIndex: keywordIndex,
		extractor:    extractor,
	}
	for _, opt := range opts {
		opt(idx)
	}
	return idx
}

// IndexDocument indexes a document: store, then index in the keyword index.
func (idx *Indexer) IndexDocument(ctx context.Context, input *models.DocumentInput) error {
	if input.ID == "" {
		input.ID = uuid.New().String()
	}
	doc := &models.Document{
		ID:       input.ID,
		Title:    input.Title,
		Content:  Preprocess(input.Content),
		Metadata: input.Metadata,
	}
	if err := idx.storage.CreateDocument(ctx, doc); err != nil {
		return fmt.Errorf("failed to store document: %w", err)
	}
	// Normalize title for keyword search: underscores as spaces so "company_profile_2021.xlsx"
	// is searchable as "company profile 2021" (standard analyzer does not split on underscore).
	docForKeyword := *doc
	docForKeyword.Title = normalizeTitleForKeywordSearch(doc.Title)
	if err := idx.keywordIndex.Index(ctx, doc.ID, &docForKeyword); err != nil {
		return fmt.Errorf("failed to index keywords: %w", err)
	}
	return nil
}

// normalizeTitleForKeywordSearch returns the title with underscores replaced by spaces
// so that Bleve's standard analyzer can match multi-word queries against filenames
// like "company_profile_2021.xlsx".
func normalizeTitleForKeywordSearch(title string) string {
	return strings.ReplaceAll(title, "_", " ")
}

const (
	metaKeySourcePath  = "source_path"
	metaKeySourceMtime = "source_mtime"
	metaKeySourceSize  = "source_size"
)

// IndexFile reads a file from path and indexes it. The document ID is derived from the
// absolute path so re-indexing updates the same document. If allowedExts is non-nil and
// non-empty, the file's extension must be in the list (case-insensitive). Returns an error
// if the path is not a regular file, cannot be read, or indexing fails.
// Skips indexing if the file is already indexed with the same mtime and size (incremental sync).
func (idx *Indexer) IndexFile(ctx context.Context, path string, allowedExts []string) error {
	if idx.logger != nil {
		idx.logger.Debug("indexer indexing file", zap.String("path", path))
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("absolute path: %w", err)
	}
	ext := strings.ToLower(filepath.Ext(absPath))
	if len(allowedExts) > 0 && !extensionAllowed(ext, allowedExts) {
		return fmt.Errorf("extension %q not in allowed list", ext)
	}
	info, err := os.Stat(absPath)
	if err != nil {
		return fmt.Errorf("stat file: %w", err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("not a regular file: %s", absPath)
	}
	docID := fileid.FileDocID(absPath)
	if skip, err := idx.shouldSkipFile(ctx, absPath, docID, info); err != nil {
		return err
	} else if skip {
		// Ensure the doc is in the keyword index (repopulates if Bleve was opened empty).
		if doc, getErr := idx.storage.GetDocument(ctx, docID); getErr == nil {
			docForKeyword := *doc
			docForKeyword.Title = normalizeTitleForKeywordSearch(doc.Title)
			_ = idx.keywordIndex.Index(ctx, doc.ID, &docForKeyword)
		}
		if idx.logger != nil {
			idx.logger.Debug("indexer skipping unchanged file", zap.String("path", absPath))
		}
		return nil
	}
	text, err := idx.extractContent(absPath)
	if err != nil {
		return fmt.Errorf("extract content: %w", err)
	}
	_ = idx.DeleteDocument(ctx, docID)
	input := &models.DocumentInput{
		ID:      docID,
		Title:   filepath.Base(absPath),
		Content: text,
		Metadata: map[string]interface{}{
			metaKeySourcePath:  absPath,
			metaKeySourceMtime: strconv.FormatInt(info.ModTime().UnixNano(), 10),
			metaKeySourceSize:  strconv.FormatInt(info.Size(), 10),
		},
	}
	if err := idx.IndexDocument(ctx, input); err != nil {
		return err
	}
	if idx.logger != nil {
		idx.logger.Debug("indexer file indexed", zap.String("path", absPath), zap.String("doc_id", docID))
	}
	return nil
}

// shouldSkipFile returns true if the file is already indexed with the same mtime and size.
func (idx *Indexer) shouldSkipFile(ctx context.Context, absPath, docID string, info os.FileInfo) (bool, error) {
	doc, err := idx.storage.GetDocument(ctx, docID)
	if err != nil {
		return false, nil
	}
	if doc.Metadata == nil {
		return false, nil
	}
	if doc.Metadata[metaKeySourcePath] != absPath {
		return false, nil
	}
	wantMtime := info.ModTime().UnixNano()
	wantSize := info.Size()
	// Values are stored as strings to avoid JSON float64 precision loss (UnixNano exceeds 53 bits).
	if metadataInt64(doc.Metadata, metaKeySourceMtime) != wantMtime || metadataInt64(doc.Metadata, metaKeySourceSize) != wantSize {
		return false, nil
	}
	return true, nil
}

func metadataInt64(m map[string]interface{}, key string) int64 {
	v, ok := m[key]
	if !ok {
		return 0
	}
	switch n := v.(type) {
	case string:
		x, _ := strconv.ParseInt(n, 10, 64)
		return x
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	default:
		return 0
	}
}

// IndexDirectory walks dir recursively and indexes each regular file whose extension
// is in allowedExts (if non-nil and non-empty; otherwise all files). Returns the number
// of files indexed and the first error encountered, if any.
func (idx *Indexer) IndexDirectory(ctx context.Context, dir string, allowedExts []string) (n int, err error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return 0, fmt.Errorf("absolute path: %w", err)
	}
	info, err := os.Stat(absDir)
	if err != nil {
		return 0, fmt.Errorf("stat directory: %w", err)
	}
	if !info.IsDir() {
		return 0, fmt.Errorf("not a directory: %s", absDir)
	}
	err = filepath.WalkDir(absDir, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if len(allowedExts) > 0 && !extensionAllowed(ext, allowedExts) {
			return nil
		}
		// Resolve symlinks so we only index regular files
		finfo, statErr := os.Stat(path)
		if statErr != nil {
			return nil
		}
		if !finfo.Mode().IsRegular() {
			return nil
		}
		if indexErr := idx.IndexFile(ctx, path, allowedExts); indexErr != nil {
			return indexErr
		}
		n++
		return nil
	})
	return n, err
}

func (idx *Indexer) extractContent(path string) (string, error) {
	if idx.extractor != nil {
		return idx.extractor.Extract(path)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

func extensionAllowed(ext string, allowed []string) bool {
	extNorm := strings.ToLower(strings.TrimPrefix(ext, "."))
	for _, a := range allowed {
		if strings.ToLower(strings.TrimPrefix(a, ".")) == extNorm {
			return true
		}
	}
	return false
}

// DeleteDocument removes a document from the keyword index and storage.
func (idx *Indexer) DeleteDocument(ctx context.Context, id string) error {
	if idx.logger != nil {
		idx.logger.Debug("indexer deleting document", zap.String("id", id))
	}
	if err := idx.keywordIndex.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete from keyword index: %w", err)
	}
	if err := idx.storage.DeleteDocument(ctx, id); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	if idx.logger != nil {
		idx.logger.Debug("indexer document deleted", zap.String("id", id))
	}
	return nil
}
