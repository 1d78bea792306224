// Package identity предоставляет клиент для внешнего сервиса проверки учётных данных.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
)

// ErrCredentialsRejected возвращается, если сервис идентификации отклонил учётные данные.
var ErrCredentialsRejected = errors.New("credentials rejected")

// Client инкапсулирует HTTP-взаимодействие с сервисом идентификации.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type verifyRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// NewClient создаёт клиент сервиса идентификации по указанному адресу.
// Временные сетевые ошибки и ответы 5xx повторяются автоматически.
func NewClient(baseURL string) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 3
	rc.Logger = nil

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: rc.StandardClient(),
	}
}

// Verify проверяет учётные данные оператора во внешнем сервисе.
func (c *Client) Verify(ctx context.Context, email, password string) error {
	if c == nil || c.baseURL == "" {
		return fmt.Errorf("identity client not configured")
	}

	base := c.baseURL
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		base = "http://" + base
	}

	body, err := json.Marshal(verifyRequest{Email: email, Password: password})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	url := base + "/api/identity/verify"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusUnauthorized:
		return ErrCredentialsRejected
	default:
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}
}
