package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tidwall/gjson"
)

const (
	maxRetries   = 2
	initialDelay = 500 * time.Millisecond
)

// Client is a one-shot chat-completions caller. No state besides the HTTP
// client; the credential is checked on every call.
type Client struct {
	APIKey  string
	Model   string
	BaseURL string

	HTTPClient *http.Client
}

func New(apiKey, model, baseURL string, timeout time.Duration) *Client {
	return &Client{
		APIKey:  apiKey,
		Model:   model,
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Schema declares the structured-output contract sent as
// response_format.json_schema, so OpenAI is the one responsible for
// producing JSON that parses into it.
type Schema struct {
	Name   string
	Schema map[string]interface{}
}

type chatRequest struct {
	Model          string          `json:"model"`
	Temperature    float64         `json:"temperature"`
	Messages       []Message       `json:"messages"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type       string     `json:"type"`
	JSONSchema jsonSchema `json:"json_schema"`
}

type jsonSchema struct {
	Name   string                 `json:"name"`
	Strict bool                   `json:"strict"`
	Schema map[string]interface{} `json:"schema"`
}

// ChatJSON runs a schema-constrained completion and returns the raw JSON
// content of the first choice.
func (c *Client) ChatJSON(ctx context.Context, system, user string, temperature float64, schema Schema) (json.RawMessage, error) {
	req := chatRequest{
		Model:       c.Model,
		Temperature: temperature,
		Messages: []Message{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		ResponseFormat: &responseFormat{
			Type: "json_schema",
			JSONSchema: jsonSchema{
				Name:   schema.Name,
				Strict: true,
				Schema: schema.Schema,
			},
		},
	}

	content, err := c.complete(ctx, req)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(content), nil
}

// ChatText runs a plain completion and returns the assistant text.
func (c *Client) ChatText(ctx context.Context, system, user string, temperature float64) (string, error) {
	req := chatRequest{
		Model:       c.Model,
		Temperature: temperature,
		Messages: []Message{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	}
	return c.complete(ctx, req)
}

// complete does the request with bounded retry on transport errors and
// rate limiting. Quota exhaustion is never retried.
func (c *Client) complete(ctx context.Context, req chatRequest) (string, error) {
	if c.APIKey == "" {
		return "", NewError(KindMissingCredential,
			"OPENAI_API_KEY não configurada.",
			"defina OPENAI_API_KEY no ambiente do servidor")
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", NewError(KindTransport, "Não foi possível montar a requisição.", err.Error())
	}

	delay := initialDelay
	var lastErr error

	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", NewError(KindTransport, "Chamada cancelada.", ctx.Err().Error())
			case <-time.After(delay):
			}
			delay *= 2
		}

		content, err := c.doRequest(ctx, body)
		if err == nil {
			return content, nil
		}

		lastErr = err
		if kind, ok := KindOf(err); !ok || !retryable(kind) {
			return "", err
		}
	}

	return "", lastErr
}

func (c *Client) doRequest(ctx context.Context, body []byte) (string, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", NewError(KindTransport, "Não foi possível montar a requisição.", err.Error())
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.APIKey)
	httpReq.Header.Set("Content-Type", "application/json")

	res, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return "", &Error{
			Kind:    KindTransport,
			Message: "Erro de rede ao chamar a OpenAI.",
			Detail:  err.Error(),
			Err:     err,
		}
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return "", NewError(KindTransport, "Erro ao ler a resposta da OpenAI.", err.Error())
	}

	if res.StatusCode != http.StatusOK {
		return "", classifyStatus(res.StatusCode, raw)
	}

	msg := gjson.GetBytes(raw, "choices.0.message")
	if refusal := msg.Get("refusal"); refusal.Exists() && refusal.String() != "" {
		return "", NewError(KindRefusal,
			"O modelo se recusou a responder.",
			refusal.String())
	}

	content := msg.Get("content").String()
	if content == "" {
		return "", NewError(KindSchemaViolation,
			"Resposta vazia da OpenAI.",
			"choices[0].message.content ausente")
	}

	return content, nil
}

func classifyStatus(status int, raw []byte) *Error {
	apiMsg := gjson.GetBytes(raw, "error.message").String()
	apiCode := gjson.GetBytes(raw, "error.code").String()
	detail := fmt.Sprintf("status %d", status)
	if apiMsg != "" {
		detail = fmt.Sprintf("status %d: %s", status, apiMsg)
	}

	switch {
	case status == http.StatusTooManyRequests && apiCode == "insufficient_quota":
		return NewError(KindQuotaExceeded,
			"Cota da OpenAI esgotada. Tente mais tarde.", detail)
	case status == http.StatusTooManyRequests:
		return NewError(KindRateLimited,
			"Muitas chamadas em sequência. Tente de novo em instantes.", detail)
	default:
		return NewError(KindTransport,
			"Erro na chamada da OpenAI.", detail)
	}
}
