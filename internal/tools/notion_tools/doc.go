// Package notion_tools provides MCP tools for creating content in Notion.
//
// Available tools:
//   - get_notion_databases: List databases accessible to the integration
//   - create_notion_page: Create a page with a title and optional body
//   - create_notion_page_from_file: Read a local file and publish it as a
//     page, formatting the body according to the file type
//
// The page creation tools are write operations and are not registered
// when the server runs in read-only mode. All tools require a configured
// NOTION_API_KEY; without one they return a configuration error without
// performing any network I/O.
package notion_tools
