package blocks

import (
	"encoding/json"
	"testing"

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

func validConfig() *PageConfig {
	return &PageConfig{
		ID:   "landing",
		Name: "Landing",
		Blocks: []Block{
			{ID: "hero", Type: BlockHeroBanner, Props: json.RawMessage(`{"title":"Hi"}`)},
			{ID: "faq", Type: BlockFAQ},
		},
	}
}

func TestService_SaveLoadRoundTrip(t *testing.T) {
	s := newTestService(t)

	require.NoError(t, s.Save(validConfig()))

	loaded := s.Load("landing")
	require.NotNil(t, loaded)
	assert.Equal(t, "Landing", loaded.Name)
	require.Len(t, loaded.Blocks, 2)
	assert.Equal(t, BlockHeroBanner, loaded.Blocks[0].Type)
	assert.JSONEq(t, `{"title":"Hi"}`, string(loaded.Blocks[0].Props))
}

func TestService_SaveRejectsInvalid(t *testing.T) {
	s := newTestService(t)

	tests := []struct {
		name   string
		mutate func(*PageConfig)
	}{
		{"missing id", func(c *PageConfig) { c.ID = "" }},
		{"no blocks", func(c *PageConfig) { c.Blocks = nil }},
		{"block without id", func(c *PageConfig) { c.Blocks[0].ID = "" }},
		{"block without type", func(c *PageConfig) { c.Blocks[0].Type = "" }},
		{"unknown block type", func(c *PageConfig) { c.Blocks[0].Type = "mystery" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := validConfig()
			tt.mutate(config)
			assert.Error(t, s.Save(config))
			assert.Nil(t, s.Load(config.ID))
		})
	}
}

func TestService_LoadMissingOrCorrupt(t *testing.T) {
	s := newTestService(t)

	assert.Nil(t, s.Load("nothing-stored"))

	require.NoError(t, s.store.Set(pageKeyPrefix+"bad", "{broken"))
	assert.Nil(t, s.Load("bad"))
}

func TestService_Delete(t *testing.T) {
	s := newTestService(t)

	require.NoError(t, s.Save(validConfig()))
	require.NoError(t, s.Delete("landing"))
	assert.Nil(t, s.Load("landing"))
}

func TestDefaultPage(t *testing.T) {
	s := newTestService(t)

	home := DefaultPage("home")
	require.NotNil(t, home)
	assert.NoError(t, s.Validate(home), "built-in home page must pass validation")

	catalog := DefaultPage("catalog")
	require.NotNil(t, catalog)
	assert.NoError(t, s.Validate(catalog), "built-in catalog page must pass validation")

	assert.Nil(t, DefaultPage("unknown"))
}
