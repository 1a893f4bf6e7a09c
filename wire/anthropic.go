package wire

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
)

// AnthropicCodec encodes requests and decodes responses using the Anthropic
// messages shape. Providers exposing the same shape on their own endpoint
// reuse this codec unchanged.
type AnthropicCodec struct{}

// Path implements Codec.
func (AnthropicCodec) Path() string { return "/messages" }

// BuildRequest implements RequestBuilder.
func (AnthropicCodec) BuildRequest(model string, req ChatRequest) ([]byte, error) {
	if strings.TrimSpace(model) == "" {
		return nil, errors.New("wire: model is required")
	}

	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 1024
	}

	messages := make([]sdk.MessageParam, 0, len(req.Messages))
	for _, msg := range req.Messages {
		content := strings.TrimSpace(msg.Content)
		if content == "" {
			continue
		}
		switch msg.Role {
		case RoleAssistant:
			messages = append(messages, sdk.NewAssistantMessage(sdk.NewTextBlock(content)))
		default:
			messages = append(messages, sdk.NewUserMessage(sdk.NewTextBlock(content)))
		}
	}

	params := sdk.MessageNewParams{
		Model:     sdk.Model(model),
		MaxTokens: int64(maxTokens),
		Messages:  messages,
	}
	if system := strings.TrimSpace(req.System); system != "" {
		params.System = []sdk.TextBlockParam{{Text: system}}
	}
	if req.Temperature != nil {
		params.Temperature = sdk.Float(*req.Temperature)
	}

	return json.Marshal(params)
}

// ParseResponse implements ResponseParser.
func (AnthropicCodec) ParseResponse(body []byte) (ChatResponse, error) {
	var msg sdk.Message
	if err := json.Unmarshal(body, &msg); err != nil {
		return ChatResponse{}, fmt.Errorf("wire: decode response: %w", err)
	}

	var text strings.Builder
	for _, block := range msg.Content {
		if variant, ok := block.AsAny().(sdk.TextBlock); ok {
			text.WriteString(variant.Text)
		}
	}

	return ChatResponse{
		Text:         strings.TrimSpace(text.String()),
		StopReason:   string(msg.StopReason),
		InputTokens:  int(msg.Usage.InputTokens),
		OutputTokens: int(msg.Usage.OutputTokens),
	}, nil
}
