// Package ghostpay provides a lightweight GhostPay API client for the
// Rio Bonito SOS relay. Uses raw HTTP calls (no SDK) to minimize external
// dependencies.
package ghostpay

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// AuthScheme seleciona como a credencial é enviada à GhostPay.
type AuthScheme string

const (
	// AuthBearer envia "Authorization: Bearer <secret>" mais o header
	// X-Company-ID. Esquema usado pelas versões antigas da API.
	AuthBearer AuthScheme = "bearer"
	// AuthBasic envia "Authorization: Basic base64(<secret>:)". Esquema
	// atual da API.
	AuthBasic AuthScheme = "basic"
)

// requestTimeout bounds the single outbound call; there is no retry.
const requestTimeout = 30 * time.Second

// Config holds the credentials and target of the GhostPay API.
type Config struct {
	URL       string
	SecretKey string
	CompanyID string
	Scheme    AuthScheme

	// DebugPayloads enables verbose request/response logging at Debug
	// level. The secret key is masked before it reaches any log line.
	DebugPayloads bool
}

// Client é a interface do cliente GhostPay usada pelo service.
type Client interface {
	// CreateTransaction envia a transação PIX e retorna o corpo bruto da
	// resposta 201. Qualquer outro status vira *APIError; falha de rede
	// vira o erro de transporte original.
	CreateTransaction(ctx context.Context, payload Payload) (*Result, error)
}

// Result carries the processor's success response untouched so the handler
// can pass it through to the caller byte-for-byte.
type Result struct {
	StatusCode int
	Body       []byte
}

// APIError is a non-201 answer from GhostPay.
type APIError struct {
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("ghostpay: status %d: %s", e.StatusCode, e.Body)
}

// Detail returns the processor's structured refusal description when the
// body carries one, else the raw body as a string. A API usa ora "message"
// ora "description" para o motivo da recusa; os dois são aceitos.
func (e *APIError) Detail() any {
	var structured struct {
		Message     string `json:"message"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal(e.Body, &structured); err == nil {
		if structured.Message != "" {
			return structured.Message
		}
		if structured.Description != "" {
			return structured.Description
		}
	}
	return string(e.Body)
}

// ErrNotConfigured é retornado quando a secret key não foi configurada.
var ErrNotConfigured = errors.New("ghostpay: not configured")

// RealClient é a implementação raw HTTP do cliente GhostPay.
type RealClient struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient cria um RealClient com timeout fixo de 30 segundos.
func NewClient(cfg Config) *RealClient {
	if cfg.Scheme == "" {
		cfg.Scheme = AuthBasic
	}
	return &RealClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// CreateTransaction faz um único POST síncrono para a GhostPay.
func (c *RealClient) CreateTransaction(ctx context.Context, payload Payload) (*Result, error) {
	if c.cfg.SecretKey == "" {
		return nil, ErrNotConfigured
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	c.setAuth(req)

	if c.cfg.DebugPayloads {
		slog.Debug("ghostpay request",
			"url", c.cfg.URL,
			"scheme", string(c.cfg.Scheme),
			"secret_key", maskSecret(c.cfg.SecretKey),
			"payload", string(jsonBody),
		)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if c.cfg.DebugPayloads {
		slog.Debug("ghostpay response", "status", resp.StatusCode, "body", string(body))
	}

	if resp.StatusCode != http.StatusCreated {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: body}
	}
	return &Result{StatusCode: resp.StatusCode, Body: body}, nil
}

// setAuth aplica o esquema de autenticação configurado.
func (c *RealClient) setAuth(req *http.Request) {
	switch c.cfg.Scheme {
	case AuthBearer:
		req.Header.Set("Authorization", "Bearer "+c.cfg.SecretKey)
		req.Header.Set("X-Company-ID", c.cfg.CompanyID)
	default:
		// GhostPay basic auth: username = secret key, password vazio.
		credentials := c.cfg.SecretKey + ":"
		req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(credentials)))
	}
}

func maskSecret(s string) string {
	if len(s) <= 8 {
		return "***"
	}
	return s[:8] + "..."
}
