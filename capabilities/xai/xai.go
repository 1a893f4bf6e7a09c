package xai

import "github.com/victorarias/modelweave/capabilities"

// Adapter reports xAI-specific capabilities.
type Adapter struct{}

func (Adapter) Capabilities() capabilities.Capabilities {
	return capabilities.Capabilities{
		Streaming: true,
		ToolUse:   true,
		JSONMode:  true,
		Vision:    true,
		ModelsAPI: true,
	}
}
