package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const defaultTimeout = 10 * time.Second

// HTTPOracle calls an external text-comparison service over HTTP.
// One request per guess, no retries: callers degrade to exact matching
// when this fails.
type HTTPOracle struct {
	client  *http.Client
	baseURL string
}

// HTTPConfig holds configuration for the HTTP oracle
type HTTPConfig struct {
	// BaseURL is the oracle endpoint
	BaseURL string

	// Timeout bounds each validation call. Zero means 10s.
	Timeout time.Duration
}

// NewHTTP creates a new HTTP-backed oracle
func NewHTTP(cfg *HTTPConfig) (*HTTPOracle, error) {
	if cfg == nil || cfg.BaseURL == "" {
		return nil, errors.New("base URL cannot be empty")
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	return &HTTPOracle{
		client:  &http.Client{Timeout: timeout},
		baseURL: cfg.BaseURL,
	}, nil
}

type validateRequest struct {
	Answer string `json:"answer"`
	Guess  string `json:"guess"`
}

type validateResponse struct {
	IsCorrect         bool    `json:"is_correct"`
	Confidence        float64 `json:"confidence"`
	Explanation       string  `json:"explanation"`
	CorrectedSpelling string  `json:"corrected_spelling"`
}

// Validate posts the answer/guess pair to the oracle service
func (o *HTTPOracle) Validate(ctx context.Context, input *ValidateInput) (*ValidateOutput, error) {
	body, err := json.Marshal(&validateRequest{
		Answer: input.Answer,
		Guess:  input.Guess,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal oracle request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL+"/validate", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build oracle request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("oracle request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("oracle returned status %d", resp.StatusCode)
	}

	var verdict validateResponse
	if err := json.NewDecoder(resp.Body).Decode(&verdict); err != nil {
		return nil, fmt.Errorf("failed to decode oracle response: %w", err)
	}

	return &ValidateOutput{
		IsCorrect:         verdict.IsCorrect,
		Confidence:        verdict.Confidence,
		Explanation:       verdict.Explanation,
		CorrectedSpelling: verdict.CorrectedSpelling,
	}, nil
}
