package recommend

import (
	"fmt"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumiere/lumiere/internal/storage"
)

func newTestService(t *testing.T) (*Service, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	logger := zerolog.New(zerolog.NewTestWriter(t))
	return NewService(store, NewDefaultEngine(), logger), store
}

func TestService_LoadBehavior_Defaults(t *testing.T) {
	service, _ := newTestService(t)

	behavior := service.LoadBehavior()

	assert.Empty(t, behavior.ViewedItems)
	assert.Empty(t, behavior.FavoriteGenres)
	assert.Empty(t, behavior.FavoritedItems)
	assert.NotNil(t, behavior.ViewedAt)
	assert.NotNil(t, behavior.RatingGiven)
}

func TestService_LoadBehavior_CorruptStateFallsBack(t *testing.T) {
	service, store := newTestService(t)

	require.NoError(t, store.Set("user_behavior", "{not json"))

	behavior := service.LoadBehavior()
	assert.Empty(t, behavior.ViewedItems)
}

func TestService_TrackViewedItem_Idempotent(t *testing.T) {
	service, _ := newTestService(t)

	require.NoError(t, service.TrackViewedItem("42"))
	first := service.LoadBehavior()
	firstSeen := first.ViewedAt["42"]

	require.NoError(t, service.TrackViewedItem("42"))
	second := service.LoadBehavior()

	assert.Equal(t, []string{"42"}, second.ViewedItems, "repeat views must not duplicate")
	assert.Equal(t, "42", second.LastViewed)
	assert.GreaterOrEqual(t, second.ViewedAt["42"], firstSeen, "timestamp refreshes on repeat view")
}

func TestService_TrackViewedItem_CapsHistory(t *testing.T) {
	service, _ := newTestService(t)

	for i := 0; i < 105; i++ {
		require.NoError(t, service.TrackViewedItem(itemID(i)))
	}

	behavior := service.LoadBehavior()
	assert.Len(t, behavior.ViewedItems, 100)
	// Oldest entries are trimmed from the front
	assert.Equal(t, itemID(5), behavior.ViewedItems[0])
	assert.Equal(t, itemID(104), behavior.ViewedItems[99])
}

func itemID(i int) string {
	return "item-" + string(rune('a'+i/26)) + string(rune('a'+i%26))
}

func TestService_Favorites(t *testing.T) {
	service, _ := newTestService(t)

	require.NoError(t, service.AddFavoritedItem("1"))
	require.NoError(t, service.AddFavoritedItem("1"))
	require.NoError(t, service.AddFavoritedItem("2"))

	behavior := service.LoadBehavior()
	assert.Equal(t, []string{"1", "2"}, behavior.FavoritedItems)

	require.NoError(t, service.RemoveFavoritedItem("1"))
	behavior = service.LoadBehavior()
	assert.Equal(t, []string{"2"}, behavior.FavoritedItems)
}

func TestService_AddFavoriteGenre_Deduplicates(t *testing.T) {
	service, _ := newTestService(t)

	require.NoError(t, service.AddFavoriteGenre("Drama"))
	require.NoError(t, service.AddFavoriteGenre("Drama"))
	require.NoError(t, service.AddFavoriteGenre("Comedy"))

	assert.Equal(t, []string{"Drama", "Comedy"}, service.FavoriteGenres())
}

func TestService_RateItem_Clamps(t *testing.T) {
	service, _ := newTestService(t)

	require.NoError(t, service.RateItem("1", 15))
	require.NoError(t, service.RateItem("2", -3))
	require.NoError(t, service.RateItem("3", 7.5))

	behavior := service.LoadBehavior()
	assert.Equal(t, 10.0, behavior.RatingGiven["1"])
	assert.Equal(t, 0.0, behavior.RatingGiven["2"])
	assert.Equal(t, 7.5, behavior.RatingGiven["3"])
}

func TestService_ConcurrentTrackingNotLost(t *testing.T) {
	service, _ := newTestService(t)

	const workers = 100
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			assert.NoError(t, service.TrackViewedItem(fmt.Sprintf("item-%d", n)))
			assert.NoError(t, service.AddFavoriteGenre(fmt.Sprintf("genre-%d", n)))
		}(i)
	}
	wg.Wait()

	behavior := service.LoadBehavior()
	assert.Len(t, behavior.ViewedItems, workers, "concurrent views must not be lost")
	assert.Len(t, behavior.FavoriteGenres, workers, "concurrent genre adds must not be lost")
}
