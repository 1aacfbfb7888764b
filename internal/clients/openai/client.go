package openai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/quizbank/quizbank-backend/internal/pkg/logger"
)

// Client is the completion surface the scan and explanation services
// consume. It performs a single attempt per call; retry policy, if any,
// belongs to the caller.
type Client interface {
	GenerateText(ctx context.Context, system, user string) (string, error)

	// GenerateTextWithImage sends one multimodal turn. imageURL may be an
	// https URL or a data URL produced by DataURL.
	GenerateTextWithImage(ctx context.Context, system, user, imageURL string) (string, error)

	// WithAPIKey returns a client that authenticates with the given key,
	// for user-supplied provider keys. Empty key returns the receiver.
	WithAPIKey(key string) Client

	// HasKey reports whether the client has any key to authenticate with.
	HasKey() bool
}

type client struct {
	log        *logger.Logger
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewClient(log *logger.Logger) (Client, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}

	baseURL := strings.TrimSpace(os.Getenv("OPENAI_BASE_URL"))
	if baseURL == "" {
		baseURL = "https://api.openai.com"
	}
	baseURL = strings.TrimRight(baseURL, "/")

	model := strings.TrimSpace(os.Getenv("OPENAI_MODEL"))
	if model == "" {
		model = "gpt-4o-mini"
	}

	timeoutSec := 120
	if v := strings.TrimSpace(os.Getenv("OPENAI_TIMEOUT_SECONDS")); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			timeoutSec = parsed
		}
	}

	return &client{
		log:        log.With("client", "OpenAIClient"),
		baseURL:    baseURL,
		apiKey:     strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		model:      model,
		httpClient: &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
	}, nil
}

func (c *client) WithAPIKey(key string) Client {
	key = strings.TrimSpace(key)
	if key == "" {
		return c
	}
	clone := *c
	clone.apiKey = key
	return &clone
}

func (c *client) HasKey() bool { return c.apiKey != "" }

type chatMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type chatContentPart struct {
	Type     string         `json:"type"`
	Text     string         `json:"text,omitempty"`
	ImageURL *chatImagePart `json:"image_url,omitempty"`
}

type chatImagePart struct {
	URL string `json:"url"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

func (c *client) GenerateText(ctx context.Context, system, user string) (string, error) {
	msgs := make([]chatMessage, 0, 2)
	if strings.TrimSpace(system) != "" {
		msgs = append(msgs, chatMessage{Role: "system", Content: system})
	}
	msgs = append(msgs, chatMessage{Role: "user", Content: user})
	return c.complete(ctx, msgs)
}

func (c *client) GenerateTextWithImage(ctx context.Context, system, user, imageURL string) (string, error) {
	msgs := make([]chatMessage, 0, 2)
	if strings.TrimSpace(system) != "" {
		msgs = append(msgs, chatMessage{Role: "system", Content: system})
	}
	parts := []chatContentPart{
		{Type: "text", Text: user},
		{Type: "image_url", ImageURL: &chatImagePart{URL: imageURL}},
	}
	msgs = append(msgs, chatMessage{Role: "user", Content: parts})
	return c.complete(ctx, msgs)
}

func (c *client) complete(ctx context.Context, msgs []chatMessage) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("missing OpenAI API key")
	}

	body, err := json.Marshal(chatRequest{Model: c.model, Messages: msgs})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("openai request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return "", fmt.Errorf("read openai response: %w", err)
	}

	var out chatResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("decode openai response (status %d): %w", resp.StatusCode, err)
	}
	if resp.StatusCode != http.StatusOK {
		msg := strings.TrimSpace(string(raw))
		if out.Error != nil {
			msg = out.Error.Message
		}
		return "", fmt.Errorf("openai status %d: %s", resp.StatusCode, msg)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("openai response has no choices")
	}

	c.log.Debug("completion done",
		"model", c.model,
		"duration_ms", time.Since(started).Milliseconds())
	return out.Choices[0].Message.Content, nil
}

// DataURL encodes image bytes for an inline multimodal part.
func DataURL(mime string, b []byte) string {
	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(b))
}
