package gem

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"
)

const (
	searchPath   = "/search-bids"
	documentPath = "/showbidDocument/"
)

type Config struct {
	BaseURL        string
	PageSize       int
	MaxAttempts    int
	AttemptTimeout time.Duration
	RetryBase      time.Duration
	PageDelay      time.Duration
	BatchSize      int
	BatchPause     time.Duration
}

func DefaultConfig(baseURL string) Config {
	return Config{
		BaseURL:        baseURL,
		PageSize:       10,
		MaxAttempts:    3,
		AttemptTimeout: 20 * time.Second,
		RetryBase:      time.Second,
		PageDelay:      500 * time.Millisecond,
		BatchSize:      50,
		BatchPause:     time.Second,
	}
}

// Client talks to the public GEM bid search endpoint.
type Client struct {
	config     Config
	httpClient *http.Client
}

func NewClient(config Config) *Client {
	return &Client{
		config:     config,
		httpClient: &http.Client{},
	}
}

type searchPayload struct {
	SearchType string `json:"searchType"`
	BidNumber  string `json:"bidNumber"`
	Category   string `json:"category"`
	BidEndFrom string `json:"bidEndFrom"`
	BidEndTo   string `json:"bidEndTo"`
	Page       int    `json:"page"`
}

type bidDoc struct {
	Id             string    `json:"id"`
	BidNumber      []string  `json:"b_bid_number"`
	TotalQuantity  []float64 `json:"b_total_quantity"`
	FinalEndDate   []string  `json:"final_end_date_sort"`
	DepartmentName []string  `json:"ba_official_details_deptName"`
}

type searchResult struct {
	Response struct {
		Response struct {
			NumFound int      `json:"numFound"`
			Docs     []bidDoc `json:"docs"`
		} `json:"response"`
	} `json:"response"`
}

// searchPage posts one page of the bid search. Transport errors are retried
// with exponential backoff, a received response is decoded as-is.
func (c *Client) searchPage(ctx context.Context, csrfToken string, categoryId string, endDate string, page int) (*searchResult, error) {
	raw, err := json.Marshal(searchPayload{
		SearchType: "bidNumber",
		Category:   categoryId,
		BidEndTo:   endDate,
		Page:       page,
	})
	if err != nil {
		return nil, err
	}

	body := "payload=" + url.QueryEscape(string(raw)) + "&csrf_bd_gem_nk=" + csrfToken

	var result searchResult
	backoff := retry.WithMaxRetries(uint64(c.config.MaxAttempts-1), retry.NewExponential(c.config.RetryBase))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		attemptCtx, cancel := context.WithTimeout(ctx, c.config.AttemptTimeout)
		defer cancel()

		req, err := http.NewRequestWithContext(attemptCtx, http.MethodPost, c.config.BaseURL+searchPath, strings.NewReader(body))
		if err != nil {
			return err
		}
		req.Header.Set("Accept", "application/json, text/javascript, */*; q=0.01")
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=UTF-8")
		req.Header.Set("X-Requested-With", "XMLHttpRequest")
		req.Header.Set("Cookie", "csrf_gem_cookie="+csrfToken+"; GeM=1474969956.20480.0000")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return retry.RetryableError(err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("search bids: unexpected status %d", resp.StatusCode)
		}

		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return fmt.Errorf("decode search response: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}
