// Package catalog derives capability and pricing facts for xAI Grok model
// identifiers. Every lookup is a pure function over static tables and is
// total: unknown identifiers resolve to documented defaults instead of
// failing. The tables are initialized once and never mutated, so lookups are
// safe from any number of goroutines.
package catalog

// Family groups model identifiers that share a price tier.
type Family string

const (
	FamilyGrok4          Family = "grok4"
	FamilyGrok3          Family = "grok3"
	FamilyGrok3Mini      Family = "grok3_mini"
	FamilyGrok2          Family = "grok2"
	FamilyGrok2Vision    Family = "grok2_vision"
	FamilyGrokVisionBeta Family = "grok_vision_beta"
	FamilyUnknown        Family = "unknown"
)

// Price holds USD costs per one million tokens.
type Price struct {
	InputPerMillion  float64
	OutputPerMillion float64
}

// Defaults applied when an identifier is not in the tables.
const (
	DefaultContextWindow   = 128000
	DefaultMaxOutputTokens = 8192
)

var defaultPrice = Price{InputPerMillion: 1.0, OutputPerMillion: 1.0}

// modelIDs is the catalog in its fixed listing order.
var modelIDs = []string{
	"grok-4",
	"grok-3",
	"grok-3-mini",
	"grok-2",
	"grok-2-vision",
	"grok-vision-beta",
}

// families maps identifiers by exact string equality. Variants that share a
// lexical prefix with another identifier ("grok-3-mini" vs "grok-3") are
// listed explicitly so they never fall through to the base family.
var families = map[string]Family{
	"grok-4":           FamilyGrok4,
	"grok-3":           FamilyGrok3,
	"grok-3-mini":      FamilyGrok3Mini,
	"grok-2":           FamilyGrok2,
	"grok-2-vision":    FamilyGrok2Vision,
	"grok-vision-beta": FamilyGrokVisionBeta,
}

// contextWindows holds provider-published token-window sizes. No validation
// against live service limits is attempted.
var contextWindows = map[string]int{
	"grok-4":           256000,
	"grok-3":           1000000,
	"grok-3-mini":      131072,
	"grok-2":           128000,
	"grok-2-vision":    128000,
	"grok-vision-beta": 131072,
}

// grok2Price is shared by the grok-2 text and vision tiers.
var grok2Price = Price{InputPerMillion: 2.0, OutputPerMillion: 10.0}

var prices = map[Family]Price{
	FamilyGrok4:          {InputPerMillion: 3.0, OutputPerMillion: 15.0},
	FamilyGrok3:          {InputPerMillion: 3.0, OutputPerMillion: 15.0},
	FamilyGrok3Mini:      {InputPerMillion: 0.3, OutputPerMillion: 0.5},
	FamilyGrok2:          grok2Price,
	FamilyGrok2Vision:    grok2Price,
	FamilyGrokVisionBeta: {InputPerMillion: 5.0, OutputPerMillion: 15.0},
}

var visionModels = map[string]bool{
	"grok-2-vision":    true,
	"grok-vision-beta": true,
}

// ModelIDs returns the catalog identifiers in fixed order. The returned
// slice is a copy and safe to mutate.
func ModelIDs() []string {
	out := make([]string, len(modelIDs))
	copy(out, modelIDs)
	return out
}

// FamilyOf resolves the price-tier family for id. Unknown identifiers map to
// FamilyUnknown.
func FamilyOf(id string) Family {
	if family, ok := families[id]; ok {
		return family
	}
	return FamilyUnknown
}

// ContextWindow returns the token window for id, or DefaultContextWindow
// when the identifier is not in the catalog.
func ContextWindow(id string) int {
	if window, ok := contextWindows[id]; ok {
		return window
	}
	return DefaultContextWindow
}

// MaxOutputTokens returns the generation limit for id. The limit is
// currently uniform across the catalog; the identifier parameter stays so
// per-model limits can diverge without an API change.
func MaxOutputTokens(id string) int {
	return DefaultMaxOutputTokens
}

// SupportsVision reports whether id accepts image inputs.
func SupportsVision(id string) bool {
	return visionModels[id]
}

// SupportsTools reports whether id supports function calling. True for the
// whole catalog today; the parameter is kept for future divergence.
func SupportsTools(id string) bool {
	return true
}

// SupportsJSONMode reports whether id supports JSON-constrained output.
func SupportsJSONMode(id string) bool {
	return true
}

// PriceFor returns the per-million-token price pair for id's family, or the
// default pair when the family has no table entry.
func PriceFor(id string) Price {
	if price, ok := prices[FamilyOf(id)]; ok {
		return price
	}
	return defaultPrice
}
