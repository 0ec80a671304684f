package emailconfig

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/folio-space/core/internal/models"
	"github.com/folio-space/core/internal/pkg/mail"
	"gorm.io/gorm"
)

const optionName = "email"

// Service owns the outbound-email credential singleton, stored as a JSON
// value in the options table. Reads are cached in memory; every write
// invalidates the cache so a credential change applies immediately.
type Service struct {
	db *gorm.DB

	mu     sync.Mutex
	cached *mail.Config
}

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// Get returns the current relay credentials, zero-valued when never set.
func (s *Service) Get() (mail.Config, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil {
		return *s.cached, nil
	}

	var opt models.OptionModel
	err := s.db.First(&opt, "name = ?", optionName).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cfg := mail.Config{}
		s.cached = &cfg
		return cfg, nil
	}
	if err != nil {
		return mail.Config{}, err
	}

	var cfg mail.Config
	if err := json.Unmarshal([]byte(opt.Value), &cfg); err != nil {
		return mail.Config{}, err
	}
	s.cached = &cfg
	return cfg, nil
}

// Set replaces the relay credentials.
func (s *Service) Set(cfg mail.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, err := json.Marshal(cfg)
	if err != nil {
		return err
	}

	var opt models.OptionModel
	err = s.db.First(&opt, "name = ?", optionName).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		opt = models.OptionModel{Name: optionName, Value: string(value)}
		err = s.db.Create(&opt).Error
	case err == nil:
		err = s.db.Model(&opt).Update("value", string(value)).Error
	}
	if err != nil {
		return err
	}

	s.cached = &cfg
	return nil
}

// Sender builds a mail sender from the stored credentials.
func (s *Service) Sender() (*mail.Sender, error) {
	cfg, err := s.Get()
	if err != nil {
		return nil, err
	}
	if !cfg.Complete() {
		return nil, mail.ErrNotConfigured
	}
	return mail.New(cfg), nil
}
