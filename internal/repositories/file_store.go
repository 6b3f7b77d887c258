package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/storefront-backend/internal/models"
)

// FileStore persists the collection as a single JSON document
// {"orders": [...]}. Every append rewrites the whole document through a
// temp file and rename, so readers see either the old or the new
// document. The mutex serializes read-modify-write within the process.
type FileStore struct {
	path string
	mu   sync.Mutex
	log  *logrus.Entry
}

func NewFileStore(path string) *FileStore {
	return &FileStore{
		path: path,
		log:  logrus.WithField("component", "order_file_store"),
	}
}

func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) List(ctx context.Context) ([]models.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, wrap("list", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	coll, err := s.load()
	if err != nil {
		return nil, wrap("list", err)
	}
	return coll.Orders, nil
}

func (s *FileStore) Append(ctx context.Context, order models.Order) error {
	if err := ctx.Err(); err != nil {
		return wrap("append", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	coll, err := s.load()
	if err != nil {
		return wrap("append", err)
	}

	coll.Orders = append(coll.Orders, order)
	return wrap("append", s.save(coll))
}

// load reads the document, repairing it to an empty collection when it is
// missing, blank, unparsable, or lacks an orders array.
func (s *FileStore) load() (models.OrderCollection, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return s.reset("missing")
	}
	if err != nil {
		return models.OrderCollection{}, fmt.Errorf("read %s: %w", s.path, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return s.reset("empty")
	}

	var doc struct {
		Orders json.RawMessage `json:"orders"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return s.resetCorrupt(data, err)
	}

	raw := bytes.TrimSpace(doc.Orders)
	if len(raw) == 0 || raw[0] != '[' {
		return s.resetCorrupt(data, errors.New("orders is not an array"))
	}

	coll := models.OrderCollection{Orders: []models.Order{}}
	if err := json.Unmarshal(raw, &coll.Orders); err != nil {
		return s.resetCorrupt(data, err)
	}

	return coll, nil
}

func (s *FileStore) reset(reason string) (models.OrderCollection, error) {
	s.log.WithField("reason", reason).Info("Initializing empty order collection")

	coll := models.OrderCollection{Orders: []models.Order{}}
	if err := s.save(coll); err != nil {
		return models.OrderCollection{}, err
	}
	return coll, nil
}

func (s *FileStore) resetCorrupt(data []byte, cause error) (models.OrderCollection, error) {
	backupPath := s.path + ".corrupt." + time.Now().Format("20060102_150405")
	if err := os.WriteFile(backupPath, data, 0o644); err != nil {
		s.log.WithError(err).Warn("Failed to back up corrupt order collection")
	} else {
		s.log.WithField("backup", backupPath).Warn("Backed up corrupt order collection")
	}

	s.log.WithError(cause).Warn("Order collection is corrupt")
	return s.reset("corrupt")
}

func (s *FileStore) save(coll models.OrderCollection) error {
	if coll.Orders == nil {
		coll.Orders = []models.Order{}
	}

	data, err := json.MarshalIndent(coll, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal orders: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", s.path, err)
	}

	return nil
}
