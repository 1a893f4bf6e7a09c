// Package capabilities describes optional provider features.
package capabilities

// Capabilities describe optional provider adapter features.
type Capabilities struct {
	Streaming bool
	ToolUse   bool
	JSONMode  bool
	Vision    bool
	ModelsAPI bool
}

// Adapter describes an LLM provider adapter.
type Adapter interface {
	Capabilities() Capabilities
}
