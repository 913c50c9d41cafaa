// Package server implements the MCP (Model Context Protocol) server for
// pixel color filters.
//
// This package provides a JSON-RPC 2.0 server that exposes the filter
// engine, the preset catalogs and color conversion through the MCP
// protocol.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// A line that is not valid JSON gets a -32700 parse error with a null id.
//
// # Available Tools
//
// Source Images:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//   - image_sample_color: Get color at pixel
//
// Filtering:
//   - filter_apply: Run a canvas preset or a filter chain over an image or region
//   - filter_list_presets: List canvas presets, CSS presets and filter types
//   - filter_css_preset: Get the CSS filter functions of a CSS preset
//
// Colors:
//   - color_convert: Convert between hex, rgb(a) and hsl(a)
//
// # Image Caching
//
// Images are cached by path and reused across tool calls. filter_apply
// always works on a copy, so cached images are never modified.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
//
// # Usage
//
//	srv := server.NewWithOptions(server.Options{Presets: presets})
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
