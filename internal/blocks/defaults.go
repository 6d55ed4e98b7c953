package blocks

import "encoding/json"

// DefaultPage returns the built-in configuration for a page id, or nil
// when no built-in exists. Built-ins are served when nothing is stored.
func DefaultPage(pageID string) *PageConfig {
	switch pageID {
	case "home":
		return homePage()
	case "catalog":
		return catalogPage()
	default:
		return nil
	}
}

func homePage() *PageConfig {
	return &PageConfig{
		ID:   "home",
		Name: "Home page",
		Blocks: []Block{
			{
				ID:    "hero-1",
				Type:  BlockHeroBanner,
				Props: json.RawMessage(`{"title":"Welcome to Lumiere","subtitle":"Discover the best movies and series","variant":"home","showNav":true,"height":"large"}`),
			},
			{
				ID:    "carousel-1",
				Type:  BlockContentCarousel,
				Props: json.RawMessage(`{"title":"Premieres of the month","variant":"hero"}`),
			},
			{
				ID:    "carousel-2",
				Type:  BlockContentCarousel,
				Props: json.RawMessage(`{"title":"Popular for you","variant":"default"}`),
			},
			{
				ID:    "divider-1",
				Type:  BlockDivider,
				Props: json.RawMessage(`{"spacing":"medium"}`),
			},
			{
				ID:    "recommendations-1",
				Type:  BlockRecommendations,
				Props: json.RawMessage(`{"title":"Recommended for you","limit":10}`),
			},
		},
	}
}

func catalogPage() *PageConfig {
	return &PageConfig{
		ID:   "catalog",
		Name: "Catalog",
		Blocks: []Block{
			{
				ID:    "hero-catalog",
				Type:  BlockHeroBanner,
				Props: json.RawMessage(`{"title":"Find your movie","subtitle":"Explore thousands of movies, series and shows","showNav":false,"height":"large"}`),
			},
			{
				ID:    "filter-1",
				Type:  BlockFilterSection,
				Props: json.RawMessage(`{"title":"Filters","availableGenres":["Drama","Comedy","Action","Thriller","Romance"]}`),
			},
			{
				ID:    "grid-1",
				Type:  BlockGrid,
				Props: json.RawMessage(`{"title":"Results","columns":4}`),
			},
		},
	}
}
