// Package server implements an MCP (Model Context Protocol) server exposing
// the thinning engine as tools.
//
// # Protocol
//
// The server speaks JSON-RPC 2.0, one message per line:
//   - Input: requests read from the reader given to Run (stdin in production)
//   - Output: responses written to the writer given to Run (stdout)
//
// Logs go to the *log.Logger passed to New and never to the protocol stream.
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - skeleton_list_algorithms: Registered algorithm names and the default
//   - skeleton_load: Binarize an image and report its foreground statistics
//   - skeleton_thin: Skeletonize an image, optionally returning a PNG
//   - skeleton_frames: Write one PNG per iteration to a directory
//   - skeleton_compare: Run several algorithms concurrently on one image
//   - skeleton_contour: Render contour illustrations of an image or its skeleton
//
// Optional tool arguments fall back to the server's config.Config.
//
// # Error Handling
//
// Tool failures are JSON-RPC error responses with code -32000, data holding
// the Go error string. Malformed tools/call params yield -32602. A run that
// exhausts max_iterations is not a failure: its result carries converged=false
// and a warning.
//
// # Usage
//
//	srv := server.New(cfg, logger, server.WithVersion(version))
//	if err := srv.Run(ctx, os.Stdin, os.Stdout); err != nil {
//	    logger.Fatal("server stopped", "err", err)
//	}
package server
