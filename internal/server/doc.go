// Package server implements the MCP (Model Context Protocol) server for color harmony tools.
//
// This package provides a JSON-RPC 2.0 server that exposes color conversion and
// harmony generation through the MCP protocol, so AI clients can build palettes
// with exact numbers instead of guessing.
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
// # Available Tools
//
// Parsing and Conversion:
//   - color_validate: Check a string against the #rrggbb format
//   - color_describe: Parse a hex color into every representation
//   - color_convert: Convert from hex, RGB or HSL (absolute or relative)
//
// Harmonies:
//   - color_harmony: Apply a named harmony scheme to a base color
//   - color_double_complementary: Complements of two independent colors
//
// Monochromatic:
//   - color_adjust: Saturate, desaturate, lighten or darken by a step
//   - color_mono: Four lighter and darker tones
//
// Preview:
//   - color_swatch: Render colors as a base64-encoded PNG strip
//
// # Configuration
//
// Defaults for omitted arguments (monochromatic step, analogous count, swatch
// size and scale) come from the config.Config passed to New. SetConfig swaps
// the configuration at runtime, for example when the config file is reloaded.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New(cfg)
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
