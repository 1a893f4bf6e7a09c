// Package wire holds the request/response codec shared by providers that
// speak the Anthropic messages shape, plus a thin HTTP client that combines
// a provider's connection parameters with a codec. Providers do not inherit
// wire behavior; they compose a codec implemented once.
package wire

// Roles understood by the codec.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of a chat exchange.
type Message struct {
	Role    string
	Content string
}

// ChatRequest is a provider-neutral completion request.
type ChatRequest struct {
	System      string
	Messages    []Message
	MaxTokens   int
	Temperature *float64
}

// ChatResponse is the provider-neutral result of one completion.
type ChatResponse struct {
	Text         string
	StopReason   string
	InputTokens  int
	OutputTokens int
}

// RequestBuilder encodes a chat request into a provider wire body.
type RequestBuilder interface {
	BuildRequest(model string, req ChatRequest) ([]byte, error)
}

// ResponseParser decodes a provider wire body into a chat response.
type ResponseParser interface {
	ParseResponse(body []byte) (ChatResponse, error)
}

// Codec builds requests and parses responses for one wire shape.
type Codec interface {
	RequestBuilder
	ResponseParser

	// Path is the endpoint path the codec's requests are posted to.
	Path() string
}
