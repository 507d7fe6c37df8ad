// Package notion provides a client for the Notion REST API.
//
// This package covers the small slice of the API the server needs:
//   - Creating pages inside a database, with a title property, optional
//     caller-supplied properties, and an optional paragraph body
//   - Searching for databases shared with the integration
//
// Authentication uses a Notion internal integration token, carried as a
// bearer token on every request via an oauth2 static token source. The
// token is typically provided through the NOTION_API_KEY environment
// variable and injected at construction time; there is no ambient global
// client.
//
// Errors are reported as *NotionError values carrying the operation, a
// kind, and (for remote failures) the HTTP status and the API's error
// message. Remote failures are never retried.
//
// Example usage:
//
//	client, err := notion.NewClient(ctx, os.Getenv("NOTION_API_KEY"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	page, err := client.CreatePage(ctx, notion.PageInput{
//	    DatabaseID: "d9824bdc-8445-4327-be8b-5b47500af6ce",
//	    Title:      "Weekly report",
//	    Content:    "All systems nominal.",
//	})
package notion
