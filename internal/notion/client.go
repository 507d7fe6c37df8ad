package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

const (
	// DefaultBaseURL is the Notion API endpoint.
	DefaultBaseURL = "https://api.notion.com"

	// apiVersion is the Notion-Version header sent with every request.
	apiVersion = "2022-06-28"

	// requestTimeout bounds every API call.
	requestTimeout = 30 * time.Second
)

// Client provides access to the Notion API for a single integration token.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a new Notion client for the given integration token.
// The token is carried as a bearer token on every request.
func NewClient(ctx context.Context, token string) (*Client, error) {
	if token == "" {
		return nil, &NotionError{
			Op:   "initialize",
			Kind: KindUnconfigured,
			Err:  fmt.Errorf("no integration token provided"),
		}
	}

	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := oauth2.NewClient(ctx, src)
	httpClient.Timeout = requestTimeout

	return &Client{
		httpClient: httpClient,
		baseURL:    DefaultBaseURL,
	}, nil
}

// NewClientWithBaseURL is like NewClient but targets a different API
// endpoint. Used against API-compatible proxies and in tests.
func NewClientWithBaseURL(ctx context.Context, token, baseURL string) (*Client, error) {
	client, err := NewClient(ctx, token)
	if err != nil {
		return nil, err
	}
	if baseURL != "" {
		client.baseURL = baseURL
	}
	return client, nil
}

// CreatePage creates a new page inside a database. The page gets a title
// property named "Name", any caller-supplied properties (which override the
// title property on key collision), and, when input.Content is set, a
// single paragraph block as its body.
func (c *Client) CreatePage(ctx context.Context, input PageInput) (*PageResult, error) {
	if input.DatabaseID == "" {
		return nil, &NotionError{
			Op:   "create_page",
			Kind: KindInvalidInput,
			Err:  fmt.Errorf("database_id is required"),
		}
	}
	if input.Title == "" {
		return nil, &NotionError{
			Op:   "create_page",
			Kind: KindInvalidInput,
			Err:  fmt.Errorf("title is required"),
		}
	}

	properties := map[string]any{
		"Name": map[string]any{
			"title": []any{
				map[string]any{
					"text": map[string]any{
						"content": input.Title,
					},
				},
			},
		},
	}
	// Caller-supplied properties are merged last, so they win on collision
	for key, value := range input.Properties {
		properties[key] = value
	}

	body := map[string]any{
		"parent":     map[string]any{"database_id": input.DatabaseID},
		"properties": properties,
	}

	if input.Content != "" {
		body["children"] = []any{
			map[string]any{
				"object": "block",
				"type":   "paragraph",
				"paragraph": map[string]any{
					"rich_text": []any{
						map[string]any{
							"type": "text",
							"text": map[string]any{
								"content": input.Content,
							},
						},
					},
				},
			},
		}
	}

	var page pageResponse
	if err := c.post(ctx, "create_page", "/v1/pages", body, &page); err != nil {
		return nil, err
	}

	return &PageResult{
		PageID:      page.ID,
		URL:         page.URL,
		Title:       input.Title,
		CreatedTime: page.CreatedTime,
		Status:      StatusSuccess,
	}, nil
}

// SearchDatabases lists the databases shared with the integration. The
// display title is taken from the first title segment; databases with no
// title segments are reported as "Untitled".
func (c *Client) SearchDatabases(ctx context.Context) ([]Database, error) {
	body := map[string]any{
		"filter": map[string]any{
			"property": "object",
			"value":    "database",
		},
	}

	var result searchResponse
	if err := c.post(ctx, "search", "/v1/search", body, &result); err != nil {
		return nil, err
	}

	databases := []Database{}
	for _, db := range result.Results {
		title := "Untitled"
		if len(db.Title) > 0 && db.Title[0].PlainText != "" {
			title = db.Title[0].PlainText
		}
		databases = append(databases, Database{
			ID:             db.ID,
			Title:          title,
			URL:            db.URL,
			CreatedTime:    db.CreatedTime,
			LastEditedTime: db.LastEditedTime,
		})
	}

	return databases, nil
}

// post issues a JSON POST against the API and decodes the response into out.
func (c *Client) post(ctx context.Context, op, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return &NotionError{Op: op, Kind: KindInvalidInput, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return &NotionError{Op: op, Kind: KindInvalidInput, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Notion-Version", apiVersion)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return &NotionError{
			Op:   op,
			Kind: KindRemote,
			Err:  fmt.Errorf("request failed: %w", err),
		}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return &NotionError{
			Op:         op,
			Kind:       KindRemote,
			StatusCode: res.StatusCode,
			Err:        fmt.Errorf("%s", readAPIError(res.Body, res.Status)),
		}
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return &NotionError{
			Op:   op,
			Kind: KindRemote,
			Err:  fmt.Errorf("failed to decode response: %w", err),
		}
	}

	return nil
}

// readAPIError extracts the API's error message from a failure body,
// falling back to the HTTP status line.
func readAPIError(body io.Reader, status string) string {
	data, err := io.ReadAll(io.LimitReader(body, 8192))
	if err != nil || len(data) == 0 {
		return status
	}

	var apiErr apiError
	if err := json.Unmarshal(data, &apiErr); err == nil && apiErr.Message != "" {
		return apiErr.Message
	}
	return status
}
