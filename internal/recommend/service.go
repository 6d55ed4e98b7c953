package recommend

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/lumiere/lumiere/internal/catalog"
	"github.com/lumiere/lumiere/internal/storage"
)

const behaviorKey = "user_behavior"

// Service persists user behavior in the key-value store and produces
// recommendations from it. Every mutation is a whole-blob
// read-modify-write of the stored record, so mutators hold the service
// mutex to keep concurrent requests from losing updates.
type Service struct {
	store  storage.Store
	engine *Engine
	logger zerolog.Logger

	mu sync.Mutex
}

// NewService creates a new recommendation service.
func NewService(store storage.Store, engine *Engine, logger zerolog.Logger) *Service {
	return &Service{
		store:  store,
		engine: engine,
		logger: logger.With().Str("component", "recommend").Logger(),
	}
}

// LoadBehavior returns the persisted behavior record. Missing or corrupt
// state silently falls back to empty defaults.
func (s *Service) LoadBehavior() UserBehavior {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadBehavior()
}

func (s *Service) loadBehavior() UserBehavior {
	raw, err := s.store.Get(behaviorKey)
	if err != nil {
		return DefaultBehavior()
	}

	var behavior UserBehavior
	if err := json.Unmarshal([]byte(raw), &behavior); err != nil {
		s.logger.Warn().Err(err).Msg("Discarding corrupt behavior record")
		return DefaultBehavior()
	}

	// Stored blobs may predate some fields
	if behavior.ViewedItems == nil {
		behavior.ViewedItems = []string{}
	}
	if behavior.FavoriteGenres == nil {
		behavior.FavoriteGenres = []string{}
	}
	if behavior.FavoritedItems == nil {
		behavior.FavoritedItems = []string{}
	}
	if behavior.ViewedAt == nil {
		behavior.ViewedAt = map[string]int64{}
	}
	if behavior.RatingGiven == nil {
		behavior.RatingGiven = map[string]float64{}
	}

	return behavior
}

// SaveBehavior replaces the persisted behavior record.
func (s *Service) SaveBehavior(behavior UserBehavior) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveBehavior(behavior)
}

func (s *Service) saveBehavior(behavior UserBehavior) error {
	raw, err := json.Marshal(behavior)
	if err != nil {
		return err
	}
	return s.store.Set(behaviorKey, string(raw))
}

// TrackViewedItem records a view of itemID. Repeat views refresh the
// timestamp without duplicating the entry; the list keeps only the most
// recent entries.
func (s *Service) TrackViewedItem(itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	behavior := s.loadBehavior()

	if !contains(behavior.ViewedItems, itemID) {
		behavior.ViewedItems = append(behavior.ViewedItems, itemID)
	}

	behavior.LastViewed = itemID
	behavior.ViewedAt[itemID] = time.Now().UnixMilli()

	if keep := s.engine.config.MaxViewedItems; len(behavior.ViewedItems) > keep {
		behavior.ViewedItems = behavior.ViewedItems[len(behavior.ViewedItems)-keep:]
	}

	return s.saveBehavior(behavior)
}

// AddFavoriteGenre adds genre to the favorites, once.
func (s *Service) AddFavoriteGenre(genre string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	behavior := s.loadBehavior()

	if !contains(behavior.FavoriteGenres, genre) {
		behavior.FavoriteGenres = append(behavior.FavoriteGenres, genre)
	}

	return s.saveBehavior(behavior)
}

// AddFavoritedItem adds itemID to the favorites, once.
func (s *Service) AddFavoritedItem(itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	behavior := s.loadBehavior()

	if !contains(behavior.FavoritedItems, itemID) {
		behavior.FavoritedItems = append(behavior.FavoritedItems, itemID)
	}

	return s.saveBehavior(behavior)
}

// RemoveFavoritedItem removes itemID from the favorites.
func (s *Service) RemoveFavoritedItem(itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	behavior := s.loadBehavior()

	filtered := behavior.FavoritedItems[:0]
	for _, id := range behavior.FavoritedItems {
		if id != itemID {
			filtered = append(filtered, id)
		}
	}
	behavior.FavoritedItems = filtered

	return s.saveBehavior(behavior)
}

// RateItem stores an explicit rating for itemID, clamped to the valid
// range rather than rejected.
func (s *Service) RateItem(itemID string, rating float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	behavior := s.loadBehavior()

	if rating < s.engine.config.MinRating {
		rating = s.engine.config.MinRating
	}
	if rating > s.engine.config.MaxRating {
		rating = s.engine.config.MaxRating
	}
	behavior.RatingGiven[itemID] = rating

	return s.saveBehavior(behavior)
}

// Recommendations returns personalized suggestions for the stored
// behavior record.
func (s *Service) Recommendations(items []catalog.ContentItem, limit int) []Recommendation {
	return s.engine.Recommendations(items, s.LoadBehavior(), limit)
}

// RelatedContent returns items similar to the given reference item.
func (s *Service) RelatedContent(items []catalog.ContentItem, reference *catalog.ContentItem, limit int) []catalog.ContentItem {
	return s.engine.RelatedContent(items, reference, limit)
}

// Statistics summarizes the stored behavior record.
func (s *Service) Statistics() Statistics {
	return s.engine.Statistics(s.LoadBehavior())
}

// FavoriteGenres returns the user's favorite genres for personalized
// search ranking.
func (s *Service) FavoriteGenres() []string {
	return s.LoadBehavior().FavoriteGenres
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
