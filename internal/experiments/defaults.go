package experiments

import (
	"encoding/json"
	"time"
)

// SeedDefaults installs the example banner test when no experiments exist
// yet, giving a fresh install something to select against.
func (s *Service) SeedDefaults() error {
	if len(s.All()) > 0 {
		return nil
	}

	now := time.Now()
	banner := Test{
		ID:          "banner-style",
		Name:        "Home banner style",
		Description: "Compare the static hero banner against the auto-rotating carousel",
		Active:      true,
		StartDate:   now.UnixMilli(),
		EndDate:     now.AddDate(0, 1, 0).UnixMilli(),
		Variants: []Variant{
			{
				ID:     "control",
				Name:   "Static banner",
				Weight: 50,
				Config: json.RawMessage(`{"autoRotate":false}`),
			},
			{
				ID:     "carousel",
				Name:   "Rotating carousel",
				Weight: 50,
				Config: json.RawMessage(`{"autoRotate":true,"intervalMs":7000}`),
			},
		},
		Metrics: NewMetrics(),
	}

	s.logger.Info().Str("test", banner.ID).Msg("Seeding default experiment")
	return s.Create(banner)
}
