package database

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/docusage/docusage-be/types"
)

const storeFileName = "knowledge-base.json"

// DocumentStore is the persisted knowledge base. Records are append-only and
// kept in insertion order.
type DocumentStore interface {
	Append(ctx context.Context, input types.DocumentInput) (*types.Document, error)
	ListAll(ctx context.Context) ([]types.Document, error)
	// Get returns (nil, nil) when no record has the given id.
	Get(ctx context.Context, id string) (*types.Document, error)
	// ReplaceAll reseeds the store, assigning fresh ids to every record.
	ReplaceAll(ctx context.Context, inputs []types.DocumentInput) error
}

var idCounter uint64

// newDocumentID combines a nanosecond timestamp with a process-local counter
// so rapid successive appends never collide.
func newDocumentID() string {
	return fmt.Sprintf("%d-%04d", time.Now().UnixNano(), atomic.AddUint64(&idCounter, 1)%10000)
}

// FileStore persists the document set as a single JSON array on disk.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(dataDir string) (*FileStore, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: create data dir: %v", types.ErrStorage, err)
	}
	s := &FileStore{path: filepath.Join(dataDir, storeFileName)}
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		if err := s.writeAll([]types.Document{}); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, fmt.Errorf("%w: stat knowledge base: %v", types.ErrStorage, err)
	}
	return s, nil
}

func (s *FileStore) readAll() ([]types.Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: read knowledge base: %v", types.ErrStorage, err)
	}
	var docs []types.Document
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("%w: decode knowledge base: %v", types.ErrStorage, err)
	}
	return docs, nil
}

// writeAll replaces the persisted set in one step: the new content is written
// to a temp file and renamed over the old one, so readers never observe a
// truncated set.
func (s *FileStore) writeAll(docs []types.Document) error {
	data, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode knowledge base: %v", types.ErrStorage, err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), storeFileName+".*")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %v", types.ErrStorage, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: write knowledge base: %v", types.ErrStorage, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: close temp file: %v", types.ErrStorage, err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: replace knowledge base: %v", types.ErrStorage, err)
	}
	return nil
}

func (s *FileStore) Append(ctx context.Context, input types.DocumentInput) (*types.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs, err := s.readAll()
	if err != nil {
		return nil, err
	}
	doc := types.Document{
		ID:          newDocumentID(),
		Source:      input.Source,
		Name:        input.Name,
		Content:     input.Content,
		LastIndexed: time.Now().Unix(),
	}
	docs = append(docs, doc)
	if err := s.writeAll(docs); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (s *FileStore) ListAll(ctx context.Context) ([]types.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readAll()
}

func (s *FileStore) Get(ctx context.Context, id string) (*types.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs, err := s.readAll()
	if err != nil {
		return nil, err
	}
	for i := range docs {
		if docs[i].ID == id {
			return &docs[i], nil
		}
	}
	return nil, nil
}

func (s *FileStore) ReplaceAll(ctx context.Context, inputs []types.DocumentInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs := make([]types.Document, 0, len(inputs))
	now := time.Now().Unix()
	for _, input := range inputs {
		docs = append(docs, types.Document{
			ID:          newDocumentID(),
			Source:      input.Source,
			Name:        input.Name,
			Content:     input.Content,
			LastIndexed: now,
		})
	}
	return s.writeAll(docs)
}
