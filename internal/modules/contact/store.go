package contact

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/folio-space/core/internal/models"
)

const messagesFile = "contact-messages.json"

// Store keeps contact messages in a single JSON array on disk. The volume is
// tiny (a personal site's inbox) so a flat file beats a table here; writes
// go through a temp file and rename so a crash never truncates the inbox.
type Store struct {
	mu   sync.Mutex
	path string
}

func NewStore(dataDir string) *Store {
	return &Store{path: filepath.Join(dataDir, messagesFile)}
}

// Append adds a message to the front of the list (newest first) and persists.
func (s *Store) Append(msg models.ContactMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load()
	if err != nil {
		return err
	}
	list = append([]models.ContactMessage{msg}, list...)
	return s.save(list)
}

// List returns all stored messages, newest first.
func (s *Store) List() ([]models.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) load() ([]models.ContactMessage, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []models.ContactMessage{}, nil
	}
	if err != nil {
		return nil, err
	}

	var list []models.ContactMessage
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *Store) save(list []models.ContactMessage) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
