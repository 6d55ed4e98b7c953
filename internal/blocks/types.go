// Package blocks implements the page-layout configuration system. A page
// is an ordered list of typed blocks; each block carries opaque props that
// only the renderer interprets. Configurations persist as whole-blob JSON
// in the key-value store, one key per page.
package blocks

import "encoding/json"

// BlockType identifies how a block is rendered.
type BlockType string

const (
	BlockHeroBanner      BlockType = "hero-banner"
	BlockContentCarousel BlockType = "content-carousel"
	BlockGrid            BlockType = "grid"
	BlockFeaturedCard    BlockType = "featured-card"
	BlockDivider         BlockType = "divider"
	BlockTextSection     BlockType = "text-section"
	BlockFilterSection   BlockType = "filter-section"
	BlockRecommendations BlockType = "recommendations"
	BlockTestimonials    BlockType = "testimonials"
	BlockCTASection      BlockType = "cta-section"
	BlockStats           BlockType = "stats"
	BlockFAQ             BlockType = "faq"
)

// Block is one typed section of a page. Props holds the type-specific
// configuration and stays opaque to the layout plumbing.
type Block struct {
	ID     string          `json:"id" validate:"required"`
	Type   BlockType       `json:"type" validate:"required,oneof=hero-banner content-carousel grid featured-card divider text-section filter-section recommendations testimonials cta-section stats faq"`
	Hidden bool            `json:"hidden,omitempty"`
	Props  json.RawMessage `json:"props,omitempty"`
}

// Metadata carries optional authorship details for a page configuration.
type Metadata struct {
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
	Author    string `json:"author,omitempty"`
	Version   int    `json:"version,omitempty"`
}

// PageConfig is a named ordered list of blocks making up one page.
type PageConfig struct {
	ID          string    `json:"id" validate:"required"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Blocks      []Block   `json:"blocks" validate:"required,min=1,dive"`
	Metadata    *Metadata `json:"metadata,omitempty"`
}
