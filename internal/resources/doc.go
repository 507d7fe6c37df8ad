// Package resources provides MCP resources for exposing server status data.
// Resources are read-only data sources that MCP clients can fetch, such as
// the Notion integration status and the database catalog.
package resources
