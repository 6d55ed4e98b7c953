package blocks

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/lumiere/lumiere/internal/storage"
)

const pageKeyPrefix = "page-config-"

// Service persists page configurations, one storage key per page id.
type Service struct {
	store    storage.Store
	logger   zerolog.Logger
	validate *validator.Validate
}

// NewService creates a new page configuration service.
func NewService(store storage.Store, logger zerolog.Logger) *Service {
	return &Service{
		store:    store,
		logger:   logger.With().Str("component", "blocks").Logger(),
		validate: validator.New(),
	}
}

// Validate checks that a configuration has an id and at least one block,
// and that every block carries an id and a known type.
func (s *Service) Validate(config *PageConfig) error {
	if err := s.validate.Struct(config); err != nil {
		return fmt.Errorf("invalid page config: %w", err)
	}
	return nil
}

// Save validates and persists a page configuration. Validation failure is
// the only caller-facing precondition error in the layout system.
func (s *Service) Save(config *PageConfig) error {
	if err := s.Validate(config); err != nil {
		return err
	}

	raw, err := json.Marshal(config)
	if err != nil {
		return err
	}

	s.logger.Debug().Str("page", config.ID).Int("blocks", len(config.Blocks)).Msg("Saving page config")
	return s.store.Set(pageKeyPrefix+config.ID, string(raw))
}

// Load returns the stored configuration for a page, or nil when the page
// has none or the stored blob does not parse.
func (s *Service) Load(pageID string) *PageConfig {
	raw, err := s.store.Get(pageKeyPrefix + pageID)
	if err != nil {
		return nil
	}

	var config PageConfig
	if err := json.Unmarshal([]byte(raw), &config); err != nil {
		s.logger.Warn().Err(err).Str("page", pageID).Msg("Discarding corrupt page config")
		return nil
	}
	return &config
}

// Delete removes the stored configuration for a page.
func (s *Service) Delete(pageID string) error {
	return s.store.Remove(pageKeyPrefix + pageID)
}
