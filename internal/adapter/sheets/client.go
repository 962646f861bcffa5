package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/Bekzhan-O/tutor-dashboard/config"
	"github.com/Bekzhan-O/tutor-dashboard/internal/domain/types"
	wrap "github.com/Bekzhan-O/tutor-dashboard/pkg/logger/wrapper"
)

// Client reads a spreadsheet range through the Google Sheets values API
// using an API key. The sheet must be readable by anyone with the key.
type Client struct {
	baseURL       string
	apiKey        string
	spreadsheetID string
	readRange     string

	httpClient *http.Client
}

func New(cfg config.SheetsConfig) *Client {
	return &Client{
		baseURL:       cfg.BaseURL,
		apiKey:        cfg.APIKey,
		spreadsheetID: cfg.SpreadsheetID,
		readRange:     cfg.Range,
		httpClient:    &http.Client{Timeout: cfg.Timeout},
	}
}

func (c *Client) Name() string {
	return types.SourceSheets.String()
}

type valuesPayload struct {
	Range          string     `json:"range"`
	MajorDimension string     `json:"majorDimension"`
	Values         [][]string `json:"values"`
}

// FetchRows pulls the configured range and returns it row-major,
// header row included.
func (c *Client) FetchRows(ctx context.Context) ([][]string, error) {
	const op = "sheets.FetchRows"

	endpoint := fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s?key=%s",
		c.baseURL,
		url.PathEscape(c.spreadsheetID),
		url.PathEscape(c.readRange),
		url.QueryEscape(c.apiKey),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, wrap.Error(ctx, fmt.Errorf("%s: build request: %w", op, err))
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		ctx = wrap.WithAction(ctx, types.ActionExternalServiceFailed)
		return nil, wrap.Error(ctx, fmt.Errorf("%s: request to sheets API: %w", op, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		ctx = wrap.WithAction(ctx, types.ActionExternalServiceFailed)
		return nil, wrap.Error(ctx, fmt.Errorf("%s: unexpected response status %d after %s", op, resp.StatusCode, time.Since(start)))
	}

	var payload valuesPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, wrap.Error(ctx, fmt.Errorf("%s: decode values payload: %w", op, err))
	}

	return payload.Values, nil
}
