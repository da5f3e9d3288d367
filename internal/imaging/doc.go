// Package imaging sits between image files and the thinning engine.
//
// It decodes PNG, JPEG and GIF files into binary rasters, encodes rasters back
// into PNG (on disk or as base64 for MCP responses), and renders the
// illustrations the command line tools produce: contour-brightened frames,
// hue-ramped contours and the labeled gallery used to compare algorithms side
// by side.
//
// # Coordinate System
//
// Pixel coordinates are 0-based with (0,0) at the top-left corner, X growing
// rightward and Y growing downward, matching the raster package.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. Every other function is stateless and
// never mutates its input.
package imaging
