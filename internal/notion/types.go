package notion

import "fmt"

// StatusSuccess is the status reported on successful page creation.
const StatusSuccess = "success"

// PageInput describes a page to create inside a database.
type PageInput struct {
	// DatabaseID is the target database (required)
	DatabaseID string

	// Title becomes the page's title property (required)
	Title string

	// Content, when non-empty, becomes a single paragraph block in the
	// page body
	Content string

	// Properties are merged into the property set after the title
	// property; caller-supplied keys win on collision
	Properties map[string]any
}

// PageResult describes a created page.
type PageResult struct {
	PageID      string `json:"page_id"`
	URL         string `json:"url"`
	Title       string `json:"title"`
	CreatedTime string `json:"created_time"`
	Status      string `json:"status"`
}

// Database summarizes a database visible to the integration.
type Database struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	URL            string `json:"url"`
	CreatedTime    string `json:"created_time"`
	LastEditedTime string `json:"last_edited_time"`
}

// ErrorKind classifies Notion client failures.
type ErrorKind string

const (
	// KindUnconfigured means no integration token is available
	KindUnconfigured ErrorKind = "unconfigured"

	// KindInvalidInput means the request was malformed before any
	// network I/O happened
	KindInvalidInput ErrorKind = "invalid_input"

	// KindRemote means the Notion API rejected the request or was
	// unreachable
	KindRemote ErrorKind = "remote"
)

// NotionError represents an error that occurred during a Notion API operation
type NotionError struct {
	// Op is the operation that failed (e.g. "create_page", "search")
	Op string

	// Kind classifies the failure
	Kind ErrorKind

	// StatusCode is the HTTP status returned by the API, if any
	StatusCode int

	// Err is the underlying error
	Err error
}

// Error implements the error interface
func (e *NotionError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("notion %s (status %d): %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("notion %s: %v", e.Op, e.Err)
}

// Unwrap implements the errors.Unwrap interface
func (e *NotionError) Unwrap() error {
	return e.Err
}

// IsUnconfigured reports whether err is a NotionError with KindUnconfigured.
func IsUnconfigured(err error) bool {
	ne, ok := err.(*NotionError)
	return ok && ne.Kind == KindUnconfigured
}

// apiError is the error body returned by the Notion API.
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// richText is the fragment of Notion's rich text objects we consume.
type richText struct {
	PlainText string `json:"plain_text"`
}

// pageResponse is the slice of Notion's page object we consume.
type pageResponse struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	CreatedTime string `json:"created_time"`
}

// databaseResponse is the slice of Notion's database object we consume.
type databaseResponse struct {
	ID             string     `json:"id"`
	Title          []richText `json:"title"`
	URL            string     `json:"url"`
	CreatedTime    string     `json:"created_time"`
	LastEditedTime string     `json:"last_edited_time"`
}

// searchResponse is the body of a search call filtered to databases.
type searchResponse struct {
	Results []databaseResponse `json:"results"`
}
