// Package fsdir reads recipe documents from a local directory tree. It backs
// the batch CLI and local development setups where no object store exists.
package fsdir

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"recettes/internal/domain"
)

var textExtensions = map[string]string{
	".txt":  "text/plain",
	".md":   "text/markdown",
	".text": "text/plain",
}

// Source lists and reads documents under a root directory.
type Source struct {
	root string
}

// New validates that root exists and is a directory.
func New(root string) (*Source, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("fsdir: stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("fsdir: %s is not a directory", root)
	}
	return &Source{root: root}, nil
}

// List walks the tree and returns one document per readable text file,
// sorted by relative path for deterministic scan order.
func (s *Source) List(ctx context.Context) ([]domain.RawDocument, error) {
	var docs []domain.RawDocument
	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != s.root {
				return filepath.SkipDir
			}
			return nil
		}
		ext := strings.ToLower(filepath.Ext(d.Name()))
		mime, ok := textExtensions[ext]
		if !ok {
			return nil
		}
		rel, err := filepath.Rel(s.root, path)
		if err != nil {
			return err
		}
		doc := domain.RawDocument{
			ID:       rel,
			Name:     strings.TrimSuffix(d.Name(), filepath.Ext(d.Name())),
			MimeType: mime,
			FullPath: filepath.ToSlash(rel),
		}
		if info, err := d.Info(); err == nil {
			doc.ModifiedTime = info.ModTime().UTC().Format(time.RFC3339)
		}
		docs = append(docs, doc)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("fsdir: walk %s: %w", s.root, err)
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	return docs, nil
}

// Text reads the document content. Unknown extensions yield "" rather than
// an error, matching the acquisition contract.
func (s *Source) Text(ctx context.Context, doc domain.RawDocument) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}
	if _, ok := textExtensions[strings.ToLower(filepath.Ext(doc.ID))]; !ok {
		return "", nil
	}
	data, err := os.ReadFile(filepath.Join(s.root, filepath.FromSlash(doc.ID)))
	if err != nil {
		return "", fmt.Errorf("fsdir: read %s: %w", doc.ID, err)
	}
	return string(data), nil
}
