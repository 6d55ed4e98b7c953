package catalog

import (
	"github.com/rs/zerolog"
)

// Service provides access to the content catalog.
type Service struct {
	logger zerolog.Logger
}

// NewService creates a new catalog service.
func NewService(logger zerolog.Logger) *Service {
	return &Service{
		logger: logger.With().Str("component", "catalog").Logger(),
	}
}

// Premiers returns this month's premieres.
func (s *Service) Premiers() []ContentItem {
	return mockPremiers
}

// Popular returns the currently popular items.
func (s *Service) Popular() []ContentItem {
	return mockPopular
}

// Kids returns the kids shelf.
func (s *Service) Kids() []ContentItem {
	return mockKids
}

// Free returns the free-to-watch shelf.
func (s *Service) Free() []ContentItem {
	free := make([]ContentItem, 0, len(mockFreeExtra)+len(mockPopular))
	free = append(free, mockFreeExtra...)
	free = append(free, mockPopular...)
	return free
}

// All returns the full catalog, each item once, in shelf order.
func (s *Service) All() []ContentItem {
	all := make([]ContentItem, 0, len(mockPremiers)+len(mockPopular)+len(mockKids)+len(mockFreeExtra))
	all = append(all, mockPremiers...)
	all = append(all, mockPopular...)
	all = append(all, mockKids...)
	all = append(all, mockFreeExtra...)
	return all
}

// GetByID returns the catalog item with the given id, or nil.
func (s *Service) GetByID(id string) *ContentItem {
	for _, item := range s.All() {
		if item.ID == id {
			return &item
		}
	}
	return nil
}

// Categories returns the top-level catalog categories.
func (s *Service) Categories() []Category {
	return []Category{
		{ID: "1", Name: "Movies", Slug: "movies", Items: mockPremiers},
		{ID: "2", Name: "Series", Slug: "series", Items: mockPopular},
	}
}

// Collections returns the curated storefront collections.
func (s *Service) Collections() []Collection {
	return mockCollections
}

// SportEvents returns live and upcoming sport broadcasts.
func (s *Service) SportEvents() []SportEvent {
	return mockSportEvents
}

// TVChannels returns the linear TV channel list.
func (s *Service) TVChannels() []TVChannel {
	return mockTVChannels
}
