// Package server implements the MCP (Model Context Protocol) server for the
// avatar tools.
//
// The server is built on the MCP Go SDK and communicates over stdio: the
// SDK handles the protocol handshake, tool listing and argument decoding,
// and each tool is a typed handler whose input and output schemas are
// inferred from the Go structs in tools.go.
//
// # Available Tools
//
// Avatars:
//   - avatar_initials: Initials over a colored circle, square or hexagon (SVG)
//   - avatar_identicon: Hash-derived grid of colored squares (SVG)
//   - avatar_gravatar: Gravatar image link for an email address
//   - avatar_render: Any avatar kind through one entry point
//   - avatar_raster: PNG or JPEG export with BlurHash and palette
//
// Inspection:
//   - identity_inspect: Digest, initials and seed color of a name
//   - color_convert: Hex, RGB, HSL and HSV views of a color
//   - color_pair: Dark and light avatar colors of a seed color
//   - pixel_matrix: Identicon cell pattern as rows of 1 and 0
//
// # Defaults
//
// Size, lightness, font and Gravatar type defaults come from the
// environment (see package config); each call may override them through
// its options.
//
// # Render Caching
//
// avatar_raster results are memoized in an imaging.RenderCache keyed by
// the normalized request, so repeated exports of the same avatar are
// encoded once. The cache is bounded by AVATAR_MCP_CACHE_ENTRIES.
//
// # Error Handling
//
// Handler errors are returned to the SDK, which reports them to the client
// as tool results with isError set. Errors carry a code from package
// errors (INVALID_FORMAT, OUT_OF_RANGE, COMPUTATION,
// UNSUPPORTED_COMBINATION, VALIDATION) that is also logged.
//
// # Usage
//
//	srv := server.New(cfg, logger)
//	if err := srv.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
package server
