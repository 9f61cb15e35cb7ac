package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"pickomino/communication/server"
)

// AdviceClient queries a running advice server.
type AdviceClient struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *AdviceClient {
	return &AdviceClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *AdviceClient) Recommend(req server.RecommendRequest) (*server.RecommendResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := c.http.Post(c.baseURL+"/recommend", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to reach advice server: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return nil, fmt.Errorf("advice server rejected request: %s", apiErr.Error)
		}
		return nil, fmt.Errorf("advice server returned status %d", resp.StatusCode)
	}

	var rec server.RecommendResponse
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &rec, nil
}
