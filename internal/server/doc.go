// Package server implements the MCP (Model Context Protocol) server for maze solving.
//
// This package provides a JSON-RPC 2.0 server that exposes the maze solver
// through the MCP protocol, so MCP clients can inspect and solve maze images.
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
//   - maze_load: Image metadata, validity, validation errors, entrance and exit
//   - maze_solve: Solution rectangles, optionally written out as a painted image
//   - maze_corridors: Corridor rectangles and an outline overlay as base64 PNG
//   - maze_sample_pixel: Colour and classified feature of one pixel
//
// # Caching
//
// Images and analysed mazes are cached by path for the lifetime of the
// server, so a maze is classified and solved at most once however many tools
// are called on it.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string, e.g. "maze: unable to find a solution: ..."
//
// # Usage
//
//	srv := server.New(maze.DefaultPalette())
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
