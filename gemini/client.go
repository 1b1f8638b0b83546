package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/fwojciec/teachpy"
)

// Interface compliance check.
var _ teachpy.Dialer = (*Client)(nil)

// Client implements [teachpy.Dialer] for the Google Gemini API.
type Client struct {
	client  *genai.Client
	model   string
	persona string
}

// Option configures a [Client].
type Option func(*Client)

// WithModel sets the model ID. Default is gemini-2.0-flash.
func WithModel(model string) Option {
	return func(c *Client) { c.model = model }
}

// WithPersona sets the system instruction seeded into every handle.
// Default is teachpy.PersonaInstruction.
func WithPersona(persona string) Option {
	return func(c *Client) { c.persona = persona }
}

// New creates a new Gemini [Client] with the given API key and options.
func New(ctx context.Context, apiKey string, opts ...Option) (*Client, error) {
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	c := &Client{
		client:  gc,
		model:   defaultModel,
		persona: teachpy.PersonaInstruction,
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// Open creates a fresh chat handle seeded with the persona instruction and
// no history.
func (c *Client) Open(ctx context.Context) (teachpy.Conversation, error) {
	chat, err := c.client.Chats.Create(ctx, c.model, buildConfig(c.persona), nil)
	if err != nil {
		return nil, &teachpy.EndpointError{Err: err}
	}
	return &conversation{chat: chat}, nil
}

func buildConfig(persona string) *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{}
	if persona != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: persona}},
		}
	}
	return config
}

// conversation adapts a genai chat to [teachpy.Conversation].
type conversation struct {
	chat *genai.Chat
}

// Send forwards one user turn and returns the model's reply text. Failures
// are wrapped in *teachpy.EndpointError; nothing is retried.
func (s *conversation) Send(ctx context.Context, text string) (string, error) {
	resp, err := s.chat.SendMessage(ctx, genai.Part{Text: text})
	if err != nil {
		return "", &teachpy.EndpointError{Err: err}
	}
	return resp.Text(), nil
}
