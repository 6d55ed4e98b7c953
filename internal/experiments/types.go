// Package experiments provides weighted A/B-variant selection with
// persisted per-variant metrics and a capped impression log.
package experiments

import "encoding/json"

// Variant is one configurable alternative within an experiment. Weight is
// relative, not a percentage: selection probability is weight divided by
// the sum of all weights in the test. Config is opaque here and meaningful
// only to the consumer rendering the variant.
type Variant struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Weight      float64         `json:"weight"`
	Config      json.RawMessage `json:"config,omitempty"`
}

// Metrics holds per-variant counters, keyed by variant id.
type Metrics struct {
	Views       map[string]int64 `json:"views"`
	Clicks      map[string]int64 `json:"clicks"`
	Conversions map[string]int64 `json:"conversions"`
}

// NewMetrics returns an empty metrics structure.
func NewMetrics() *Metrics {
	return &Metrics{
		Views:       map[string]int64{},
		Clicks:      map[string]int64{},
		Conversions: map[string]int64{},
	}
}

// Test is a persisted experiment definition. A test past its end date is
// deactivated automatically the next time it is read.
type Test struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Active      bool      `json:"active"`
	Variants    []Variant `json:"variants"`
	StartDate   int64     `json:"startDate"`
	EndDate     int64     `json:"endDate,omitempty"`
	Metrics     *Metrics  `json:"metrics,omitempty"`
}

// Result is one logged impression. The log is append-only and capped;
// the oldest entries are evicted first.
type Result struct {
	TestID    string `json:"testId"`
	VariantID string `json:"variantId"`
	Timestamp int64  `json:"timestamp"`
	UserAgent string `json:"userAgent"`
	SessionID string `json:"sessionId"`
}

// VariantStats is the derived performance of one variant.
type VariantStats struct {
	VariantID      string  `json:"variantId"`
	Name           string  `json:"name"`
	Views          int64   `json:"views"`
	Clicks         int64   `json:"clicks"`
	Conversions    int64   `json:"conversions"`
	CTR            float64 `json:"ctr"`
	ConversionRate float64 `json:"conversionRate"`
}

// Stats is the derived performance of a whole test.
type Stats struct {
	TestID   string         `json:"testId"`
	Variants []VariantStats `json:"variants"`
}
