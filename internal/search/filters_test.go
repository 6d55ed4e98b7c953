package search

import (
	"testing"

	"github.com/lumiere/lumiere/internal/catalog"
)

func TestFilterByGenres(t *testing.T) {
	items := testCatalog()

	filtered := FilterByGenres(items, []string{"sci-fi"})
	if len(filtered) != 3 {
		t.Errorf("Expected 3 sci-fi items, got %d", len(filtered))
	}

	// Empty filter keeps everything
	if got := FilterByGenres(items, nil); len(got) != len(items) {
		t.Errorf("Empty filter should keep all items, got %d", len(got))
	}
}

func TestFilterByType(t *testing.T) {
	items := testCatalog()

	movies := FilterByType(items, catalog.ContentTypeMovie)
	for _, item := range movies {
		if item.Type != catalog.ContentTypeMovie {
			t.Errorf("Expected only movies, got %s", item.Type)
		}
	}
	if len(movies) != 2 {
		t.Errorf("Expected 2 movies, got %d", len(movies))
	}

	if got := FilterByType(items, ""); len(got) != len(items) {
		t.Errorf("Empty type should keep all items, got %d", len(got))
	}
}

func TestFilterByYear(t *testing.T) {
	items := append(testCatalog(), catalog.ContentItem{ID: "5", Title: "Undated", Rating: 5})

	filtered := FilterByYear(items, 2021, 2023)

	ids := make(map[string]bool)
	for _, item := range filtered {
		ids[item.ID] = true
	}

	// Items in range plus the one without a year
	for _, want := range []string{"1", "4", "5"} {
		if !ids[want] {
			t.Errorf("Expected item %s in year filter result", want)
		}
	}
	if ids["3"] {
		t.Error("Item 3 (2018) should be filtered out")
	}
}

func TestFilterByRating(t *testing.T) {
	items := testCatalog()

	filtered := FilterByRating(items, 8)
	if len(filtered) != 2 {
		t.Errorf("Expected 2 items rated >= 8, got %d", len(filtered))
	}
}
