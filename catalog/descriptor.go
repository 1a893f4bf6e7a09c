package catalog

import (
	"strings"
	"time"
)

// Modality tags.
const (
	ModalityText  = "text"
	ModalityImage = "image"
)

// Capability tags.
const (
	CapabilityStreaming = "streaming"
	CapabilityTools     = "tools"
	CapabilityVision    = "vision"
	CapabilityJSONMode  = "json_mode"
)

// Pricing structure keys.
const (
	CategoryTextTokens = "text_tokens"
	TierStandard       = "standard"
)

// Modalities lists the media a model accepts and produces.
type Modalities struct {
	Input  []string `json:"input"`
	Output []string `json:"output"`
}

// TierPrice is the cost pair for a single pricing tier.
type TierPrice struct {
	InputPerMillion  float64 `json:"input_per_million"`
	OutputPerMillion float64 `json:"output_per_million"`
}

// Pricing nests tier prices by token category and tier name.
type Pricing map[string]map[string]TierPrice

// ModelDescriptor is the derived record for one model identifier. Every call
// to BuildDescriptor returns a fresh value; descriptors are never cached and
// are safe for the caller to mutate.
type ModelDescriptor struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Provider        string         `json:"provider"`
	Family          Family         `json:"family"`
	CreatedAt       time.Time      `json:"created_at"`
	ContextWindow   int            `json:"context_window"`
	MaxOutputTokens int            `json:"max_output_tokens"`
	Modalities      Modalities     `json:"modalities"`
	Capabilities    []string       `json:"capabilities"`
	Pricing         Pricing        `json:"pricing"`
	Metadata        map[string]any `json:"metadata"`
}

// ModalitiesOf returns the input and output media for id. Input always
// includes text, plus image for vision-capable identifiers; output is text.
func ModalitiesOf(id string) Modalities {
	input := []string{ModalityText}
	if SupportsVision(id) {
		input = append(input, ModalityImage)
	}
	return Modalities{Input: input, Output: []string{ModalityText}}
}

// CapabilityTags returns the feature tags for id in stable order.
func CapabilityTags(id string) []string {
	tags := []string{CapabilityStreaming}
	if SupportsTools(id) {
		tags = append(tags, CapabilityTools)
	}
	if SupportsVision(id) {
		tags = append(tags, CapabilityVision)
	}
	if SupportsJSONMode(id) {
		tags = append(tags, CapabilityJSONMode)
	}
	return tags
}

// PricingOf wraps id's family price pair into the nested pricing structure
// under the standard text-token tier. The returned map is freshly built.
func PricingOf(id string) Pricing {
	price := PriceFor(id)
	return Pricing{
		CategoryTextTokens: {
			TierStandard: {
				InputPerMillion:  price.InputPerMillion,
				OutputPerMillion: price.OutputPerMillion,
			},
		},
	}
}

// DisplayName formats an identifier for humans: hyphen-separated segments
// with the first letter of each segment upper-cased, joined by spaces
// ("grok-3-mini" becomes "Grok 3 Mini").
func DisplayName(id string) string {
	segments := strings.Split(id, "-")
	for i, segment := range segments {
		if segment == "" {
			continue
		}
		segments[i] = strings.ToUpper(segment[:1]) + segment[1:]
	}
	return strings.Join(segments, " ")
}

// BuildDescriptor assembles the full descriptor for id on behalf of
// providerSlug. CreatedAt reflects the call time, not the model release
// date. Unknown identifiers still produce a complete descriptor built from
// defaults.
func BuildDescriptor(id, providerSlug string) ModelDescriptor {
	return ModelDescriptor{
		ID:              id,
		Name:            DisplayName(id),
		Provider:        providerSlug,
		Family:          FamilyOf(id),
		CreatedAt:       time.Now().UTC(),
		ContextWindow:   ContextWindow(id),
		MaxOutputTokens: MaxOutputTokens(id),
		Modalities:      ModalitiesOf(id),
		Capabilities:    CapabilityTags(id),
		Pricing:         PricingOf(id),
		Metadata:        map[string]any{},
	}
}
