package geminiclient

import (
	"context"
	"errors"
	"net/http"
	"sync"

	pkgerrors "github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"google.golang.org/genai"
)

var ErrMissingAPIKey = errors.New("gemini: API key is not configured")

//go:generate mockgen -source=client.go -destination=mocks/client.go -package=mocks
type Client interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

type GeminiClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client

	mu     sync.Mutex
	client *genai.Client
}

// Option altera a configuração do cliente; usado para apontar para outro endpoint
type Option func(*GeminiClient)

func WithBaseURL(baseURL string) Option {
	return func(c *GeminiClient) {
		c.baseURL = baseURL
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *GeminiClient) {
		c.httpClient = httpClient
	}
}

// NewClient não valida a chave: a ausência só é reportada na chamada
func NewClient(cfg config.Gemini, opts ...Option) Client {
	client := &GeminiClient{
		apiKey: cfg.APIKey,
		model:  cfg.Model,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// GenerateContent envia o prompt ao modelo e retorna o texto da resposta sem alterações,
// inclusive quando vazio. Não há retry nem timeout próprio; vale o do contexto.
func (c *GeminiClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	client, err := c.genaiClient(ctx)
	if err != nil {
		return "", err
	}

	resp, err := client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", pkgerrors.Wrapf(err, "gemini: generating content with %s", c.model)
	}

	return resp.Text(), nil
}

// genaiClient cria o cliente na primeira chamada e o reutiliza nas seguintes
func (c *GeminiClient) genaiClient(ctx context.Context) (*genai.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client != nil {
		return c.client, nil
	}

	clientConfig := &genai.ClientConfig{
		APIKey:     c.apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: c.httpClient,
	}
	if c.baseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: c.baseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "gemini: creating client")
	}

	c.client = client
	return client, nil
}
