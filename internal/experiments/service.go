package experiments

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lumiere/lumiere/internal/storage"
)

const (
	testsKey   = "ab_tests"
	resultsKey = "ab_test_results"
	sessionKey = "ab_test_session"

	// maxResults caps the impression log; the oldest entries are evicted
	// first.
	maxResults = 1000
)

// Service manages experiment definitions, variant selection and metrics.
// All state is whole-blob JSON in the key-value store; missing or corrupt
// blobs silently fall back to empty defaults. Handlers and the sweep run
// on concurrent goroutines, so every read-modify-write of the shared
// blobs holds the service mutex to keep counter increments from being
// lost.
type Service struct {
	store  storage.Store
	logger zerolog.Logger

	mu        sync.Mutex
	rng       *rand.Rand
	sessionID string
}

// NewService creates a new experiments service.
func NewService(store storage.Store, logger zerolog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger.With().Str("component", "experiments").Logger(),
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SessionID returns the session identifier, generating and persisting one
// on first use. It stays stable for the session's lifetime.
func (s *Service) SessionID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessionIDLocked()
}

func (s *Service) sessionIDLocked() string {
	if s.sessionID != "" {
		return s.sessionID
	}

	if stored, err := s.store.Get(sessionKey); err == nil && stored != "" {
		s.sessionID = stored
		return s.sessionID
	}

	s.sessionID = fmt.Sprintf("session_%d_%s", time.Now().UnixMilli(), uuid.NewString()[:8])
	if err := s.store.Set(sessionKey, s.sessionID); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to persist session id")
	}
	return s.sessionID
}

// All returns every stored experiment.
func (s *Service) All() []Test {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadAll()
}

func (s *Service) loadAll() []Test {
	raw, err := s.store.Get(testsKey)
	if err != nil {
		return []Test{}
	}

	var tests []Test
	if err := json.Unmarshal([]byte(raw), &tests); err != nil {
		s.logger.Warn().Err(err).Msg("Discarding corrupt experiment state")
		return []Test{}
	}
	return tests
}

func (s *Service) saveAll(tests []Test) error {
	raw, err := json.Marshal(tests)
	if err != nil {
		return err
	}
	return s.store.Set(testsKey, string(raw))
}

// Create stores a new experiment definition.
func (s *Service) Create(test Test) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.saveAll(append(s.loadAll(), test))
}

// Update replaces the stored experiment with the same id. Updating an
// unknown test is a no-op.
func (s *Service) Update(updated Test) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateLocked(updated)
}

func (s *Service) updateLocked(updated Test) error {
	tests := s.loadAll()
	for i := range tests {
		if tests[i].ID == updated.ID {
			tests[i] = updated
			return s.saveAll(tests)
		}
	}
	return nil
}

// Delete removes the experiment with the given id.
func (s *Service) Delete(testID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tests := s.loadAll()
	filtered := tests[:0]
	for _, test := range tests {
		if test.ID != testID {
			filtered = append(filtered, test)
		}
	}
	return s.saveAll(filtered)
}

// Active returns the experiment with the given id if it is currently
// active. A test read past its end date is deactivated, persisted, and
// treated as absent.
func (s *Service) Active(testID string) *Test {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeLocked(testID)
}

func (s *Service) activeLocked(testID string) *Test {
	for _, test := range s.loadAll() {
		if test.ID != testID {
			continue
		}
		if !test.Active {
			return nil
		}
		if test.EndDate > 0 && test.EndDate < time.Now().UnixMilli() {
			test.Active = false
			if err := s.updateLocked(test); err != nil {
				s.logger.Warn().Err(err).Str("test", testID).Msg("Failed to deactivate expired experiment")
			}
			return nil
		}
		return &test
	}
	return nil
}

// SelectVariant draws a variant from the test with probability
// proportional to weight. Returns nil for a nil test or one without
// variants. The first variant is the fallback when float rounding leaves
// the walk without a match.
func (s *Service) SelectVariant(test *Test) *Variant {
	if test == nil || len(test.Variants) == 0 {
		return nil
	}

	var totalWeight float64
	for _, variant := range test.Variants {
		totalWeight += variant.Weight
	}

	// rand.Rand is not goroutine safe; draws share the service mutex.
	s.mu.Lock()
	draw := s.rng.Float64() * totalWeight
	s.mu.Unlock()

	var cumulative float64
	for i := range test.Variants {
		cumulative += test.Variants[i].Weight
		if draw <= cumulative {
			return &test.Variants[i]
		}
	}

	return &test.Variants[0]
}

// RecordResult logs an impression of variantID and increments its view
// counter.
func (s *Service) RecordResult(testID, variantID, userAgent string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := Result{
		TestID:    testID,
		VariantID: variantID,
		Timestamp: time.Now().UnixMilli(),
		UserAgent: userAgent,
		SessionID: s.sessionIDLocked(),
	}

	results := append(s.loadResults(), result)
	if len(results) > maxResults {
		results = results[len(results)-maxResults:]
	}

	raw, err := json.Marshal(results)
	if err != nil {
		return err
	}
	if err := s.store.Set(resultsKey, string(raw)); err != nil {
		return err
	}

	return s.incrementLocked(testID, func(m *Metrics) {
		m.Views[variantID]++
	})
}

// RecordClick increments the click counter for variantID.
func (s *Service) RecordClick(testID, variantID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.incrementLocked(testID, func(m *Metrics) {
		m.Clicks[variantID]++
	})
}

// RecordConversion increments the conversion counter for variantID.
func (s *Service) RecordConversion(testID, variantID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.incrementLocked(testID, func(m *Metrics) {
		m.Conversions[variantID]++
	})
}

// incrementLocked applies one counter update to the stored test. Unknown
// tests are ignored. Callers hold the mutex so the load-update-save is
// atomic with respect to other mutators.
func (s *Service) incrementLocked(testID string, update func(*Metrics)) error {
	tests := s.loadAll()
	for i := range tests {
		if tests[i].ID != testID {
			continue
		}
		if tests[i].Metrics == nil {
			tests[i].Metrics = NewMetrics()
		}
		update(tests[i].Metrics)
		return s.saveAll(tests)
	}
	return nil
}

// Results returns the impression log.
func (s *Service) Results() []Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadResults()
}

func (s *Service) loadResults() []Result {
	raw, err := s.store.Get(resultsKey)
	if err != nil {
		return []Result{}
	}

	var results []Result
	if err := json.Unmarshal([]byte(raw), &results); err != nil {
		s.logger.Warn().Err(err).Msg("Discarding corrupt results log")
		return []Result{}
	}
	return results
}

// TestStats derives per-variant performance for an active test. Variants
// without recorded metrics report zeroes; a test with no views has zero
// rates rather than a division error.
func (s *Service) TestStats(testID string) *Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.statsLocked(testID)
}

func (s *Service) statsLocked(testID string) *Stats {
	test := s.activeLocked(testID)
	if test == nil {
		return nil
	}

	stats := &Stats{TestID: testID, Variants: make([]VariantStats, 0, len(test.Variants))}

	for _, variant := range test.Variants {
		vs := VariantStats{VariantID: variant.ID, Name: variant.Name}
		if test.Metrics != nil {
			vs.Views = test.Metrics.Views[variant.ID]
			vs.Clicks = test.Metrics.Clicks[variant.ID]
			vs.Conversions = test.Metrics.Conversions[variant.ID]
		}
		if vs.Views > 0 {
			vs.CTR = float64(vs.Clicks) / float64(vs.Views) * 100
			vs.ConversionRate = float64(vs.Conversions) / float64(vs.Views) * 100
		}
		stats.Variants = append(stats.Variants, vs)
	}

	return stats
}

// BestVariant returns the variant with the highest conversion rate. Ties
// go to the earlier-listed variant.
func (s *Service) BestVariant(testID string) *Variant {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := s.statsLocked(testID)
	if stats == nil || len(stats.Variants) == 0 {
		return nil
	}

	test := s.activeLocked(testID)
	if test == nil {
		return nil
	}

	best := stats.Variants[0]
	for _, vs := range stats.Variants[1:] {
		if vs.ConversionRate > best.ConversionRate {
			best = vs
		}
	}

	for i := range test.Variants {
		if test.Variants[i].ID == best.VariantID {
			return &test.Variants[i]
		}
	}
	return nil
}

// DeactivateExpired deactivates every active test past its end date and
// returns how many were swept. Run periodically by the scheduler.
func (s *Service) DeactivateExpired() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tests := s.loadAll()
	now := time.Now().UnixMilli()

	swept := 0
	for i := range tests {
		if tests[i].Active && tests[i].EndDate > 0 && tests[i].EndDate < now {
			tests[i].Active = false
			swept++
		}
	}

	if swept == 0 {
		return 0, nil
	}
	if err := s.saveAll(tests); err != nil {
		return 0, err
	}

	s.logger.Info().Int("count", swept).Msg("Deactivated expired experiments")
	return swept, nil
}
