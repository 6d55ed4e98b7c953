package experiments

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumiere/lumiere/internal/storage"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	logger := zerolog.New(zerolog.NewTestWriter(t))
	return NewService(storage.NewMemoryStore(), logger)
}

func activeTest(id string, variants ...Variant) Test {
	return Test{
		ID:        id,
		Name:      id,
		Active:    true,
		StartDate: time.Now().UnixMilli(),
		EndDate:   time.Now().Add(24 * time.Hour).UnixMilli(),
		Variants:  variants,
	}
}

func TestService_CreateUpdateDelete(t *testing.T) {
	s := newTestService(t)

	require.NoError(t, s.Create(activeTest("t1", Variant{ID: "a", Weight: 100})))
	require.NoError(t, s.Create(activeTest("t2", Variant{ID: "b", Weight: 100})))
	assert.Len(t, s.All(), 2)

	updated := activeTest("t1", Variant{ID: "a", Weight: 100})
	updated.Name = "renamed"
	require.NoError(t, s.Update(updated))
	assert.Equal(t, "renamed", s.All()[0].Name)

	require.NoError(t, s.Delete("t1"))
	tests := s.All()
	require.Len(t, tests, 1)
	assert.Equal(t, "t2", tests[0].ID)
}

func TestService_CorruptStateFallsBack(t *testing.T) {
	s := newTestService(t)
	require.NoError(t, s.store.Set(testsKey, "{not json"))

	assert.Empty(t, s.All())
}

func TestService_ActiveDeactivatesExpired(t *testing.T) {
	s := newTestService(t)

	expired := activeTest("old", Variant{ID: "a", Weight: 100})
	expired.EndDate = time.Now().Add(-time.Hour).UnixMilli()
	require.NoError(t, s.Create(expired))

	assert.Nil(t, s.Active("old"))
	assert.False(t, s.All()[0].Active, "expired test should be deactivated in storage")
}

func TestService_SelectVariantWeighted(t *testing.T) {
	s := newTestService(t)
	test := activeTest("weights",
		Variant{ID: "a", Weight: 30},
		Variant{ID: "b", Weight: 70},
	)

	counts := map[string]int{}
	for i := 0; i < 10000; i++ {
		v := s.SelectVariant(&test)
		require.NotNil(t, v)
		counts[v.ID]++
	}

	// With 10k draws the observed share should be within a few points of
	// the configured weights.
	assert.InDelta(t, 3000, counts["a"], 500)
	assert.InDelta(t, 7000, counts["b"], 500)
}

func TestService_SelectVariantEdgeCases(t *testing.T) {
	s := newTestService(t)

	assert.Nil(t, s.SelectVariant(nil))

	empty := activeTest("empty")
	assert.Nil(t, s.SelectVariant(&empty))

	single := activeTest("single", Variant{ID: "only", Weight: 0})
	v := s.SelectVariant(&single)
	require.NotNil(t, v)
	assert.Equal(t, "only", v.ID)
}

func TestService_RecordResultCapsLog(t *testing.T) {
	s := newTestService(t)
	require.NoError(t, s.Create(activeTest("cap", Variant{ID: "a", Weight: 100})))

	for i := 0; i < maxResults+25; i++ {
		require.NoError(t, s.RecordResult("cap", "a", fmt.Sprintf("agent-%d", i)))
	}

	results := s.Results()
	require.Len(t, results, maxResults)
	assert.Equal(t, "agent-25", results[0].UserAgent, "oldest entries should be evicted first")
	assert.Equal(t, fmt.Sprintf("agent-%d", maxResults+24), results[len(results)-1].UserAgent)

	tests := s.All()
	require.NotNil(t, tests[0].Metrics)
	assert.Equal(t, int64(maxResults+25), tests[0].Metrics.Views["a"])
}

func TestService_ConcurrentClicksNotLost(t *testing.T) {
	s := newTestService(t)
	require.NoError(t, s.Create(activeTest("race", Variant{ID: "a", Weight: 100})))

	const clicks = 200
	var wg sync.WaitGroup
	for i := 0; i < clicks; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, s.RecordClick("race", "a"))
		}()
	}
	wg.Wait()

	tests := s.All()
	require.NotNil(t, tests[0].Metrics)
	assert.Equal(t, int64(clicks), tests[0].Metrics.Clicks["a"], "concurrent clicks must not be lost")
}

func TestService_ConcurrentSelectVariant(t *testing.T) {
	s := newTestService(t)
	test := activeTest("parallel",
		Variant{ID: "a", Weight: 50},
		Variant{ID: "b", Weight: 50},
	)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NotNil(t, s.SelectVariant(&test))
		}()
	}
	wg.Wait()
}

func TestService_StatsZeroViews(t *testing.T) {
	s := newTestService(t)
	require.NoError(t, s.Create(activeTest("fresh",
		Variant{ID: "a", Weight: 50},
		Variant{ID: "b", Weight: 50},
	)))

	stats := s.TestStats("fresh")
	require.NotNil(t, stats)
	require.Len(t, stats.Variants, 2)
	for _, vs := range stats.Variants {
		assert.Zero(t, vs.Views)
		assert.Zero(t, vs.CTR)
		assert.Zero(t, vs.ConversionRate)
	}
}

func TestService_StatsRates(t *testing.T) {
	s := newTestService(t)
	require.NoError(t, s.Create(activeTest("rates",
		Variant{ID: "a", Weight: 50},
		Variant{ID: "b", Weight: 50},
	)))

	for i := 0; i < 4; i++ {
		require.NoError(t, s.RecordResult("rates", "a", "ua"))
	}
	require.NoError(t, s.RecordClick("rates", "a"))
	require.NoError(t, s.RecordClick("rates", "a"))
	require.NoError(t, s.RecordConversion("rates", "a"))

	stats := s.TestStats("rates")
	require.NotNil(t, stats)
	assert.Equal(t, int64(4), stats.Variants[0].Views)
	assert.InDelta(t, 50.0, stats.Variants[0].CTR, 0.001)
	assert.InDelta(t, 25.0, stats.Variants[0].ConversionRate, 0.001)
	assert.Zero(t, stats.Variants[1].Views)
}

func TestService_BestVariantTiesGoEarlier(t *testing.T) {
	s := newTestService(t)
	require.NoError(t, s.Create(activeTest("tie",
		Variant{ID: "first", Weight: 50},
		Variant{ID: "second", Weight: 50},
	)))

	// Equal conversion rates on both variants.
	require.NoError(t, s.RecordResult("tie", "first", "ua"))
	require.NoError(t, s.RecordConversion("tie", "first"))
	require.NoError(t, s.RecordResult("tie", "second", "ua"))
	require.NoError(t, s.RecordConversion("tie", "second"))

	best := s.BestVariant("tie")
	require.NotNil(t, best)
	assert.Equal(t, "first", best.ID)
}

func TestService_BestVariantPrefersHigherRate(t *testing.T) {
	s := newTestService(t)
	require.NoError(t, s.Create(activeTest("best",
		Variant{ID: "a", Weight: 50},
		Variant{ID: "b", Weight: 50},
	)))

	require.NoError(t, s.RecordResult("best", "a", "ua"))
	require.NoError(t, s.RecordResult("best", "b", "ua"))
	require.NoError(t, s.RecordConversion("best", "b"))

	best := s.BestVariant("best")
	require.NotNil(t, best)
	assert.Equal(t, "b", best.ID)
}

func TestService_DeactivateExpired(t *testing.T) {
	s := newTestService(t)

	expired := activeTest("e1", Variant{ID: "a", Weight: 100})
	expired.EndDate = time.Now().Add(-time.Minute).UnixMilli()
	require.NoError(t, s.Create(expired))
	require.NoError(t, s.Create(activeTest("live", Variant{ID: "a", Weight: 100})))

	swept, err := s.DeactivateExpired()
	require.NoError(t, err)
	assert.Equal(t, 1, swept)

	tests := s.All()
	assert.False(t, tests[0].Active)
	assert.True(t, tests[1].Active)
}

func TestService_SessionIDStable(t *testing.T) {
	s := newTestService(t)

	first := s.SessionID()
	assert.NotEmpty(t, first)
	assert.Equal(t, first, s.SessionID())

	// A new service over the same store reuses the persisted id.
	other := NewService(s.store, zerolog.New(zerolog.NewTestWriter(t)))
	assert.Equal(t, first, other.SessionID())
}

func TestService_SeedDefaults(t *testing.T) {
	s := newTestService(t)

	require.NoError(t, s.SeedDefaults())
	tests := s.All()
	require.Len(t, tests, 1)
	assert.Equal(t, "banner-style", tests[0].ID)
	assert.Len(t, tests[0].Variants, 2)

	// Seeding again must not duplicate.
	require.NoError(t, s.SeedDefaults())
	assert.Len(t, s.All(), 1)
}
