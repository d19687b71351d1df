package mls

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client fetches listings from the MLS Grid API
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient creates an MLS Grid client
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// propertyResponse is the OData envelope around listing results
type propertyResponse struct {
	Value []RawListing `json:"value"`
}

// FetchListings pulls up to top listings from the Property resource
func (c *Client) FetchListings(top int) ([]RawListing, error) {
	url := fmt.Sprintf("%s/Property?$top=%d", c.baseURL, top)

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Api-Version", "2.0")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("MLS Grid returned status %s", resp.Status)
	}

	var payload propertyResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode MLS Grid response: %w", err)
	}

	return payload.Value, nil
}
