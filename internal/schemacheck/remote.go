package schemacheck

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultTimeout = 10 * time.Second

const validateSchemaQuery = `query ValidateSchema($schema: String!) {
  validateSchema(schema: $schema) {
    valid
  }
}`

// RemoteConfig holds remote checker configuration.
type RemoteConfig struct {
	URL     string        // validation query endpoint, required
	Timeout time.Duration // request timeout
}

// RemoteChecker implements Checker over an HTTP GraphQL endpoint.
type RemoteChecker struct {
	config     RemoteConfig
	httpClient *http.Client
}

// NewRemoteChecker creates a new remote checker.
func NewRemoteChecker(config RemoteConfig) *RemoteChecker {
	if config.Timeout == 0 {
		config.Timeout = defaultTimeout
	}

	return &RemoteChecker{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphqlResponse struct {
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// CheckSchema posts the validation query with the schema as input. A GraphQL
// error in the response body is a semantic rejection; everything else that
// goes wrong is a plain error.
func (c *RemoteChecker) CheckSchema(ctx context.Context, schema string) error {
	body, err := json.Marshal(graphqlRequest{
		Query:     validateSchemaQuery,
		Variables: map[string]any{"schema": schema},
	})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var parsed graphqlResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	if len(parsed.Errors) > 0 {
		return &SemanticError{Message: parsed.Errors[0].Message}
	}

	return nil
}
