// Package raster provides the binary image type consumed by the thinning engine.
//
// A Binary is a fixed-size, row-major grid of 8-bit pixels that are strictly
// Background (0) or Foreground (255). The package also implements the
// bounding-box cropper used to restrict thinning to the area occupied by the
// shape, 8-connected component counting and conversion to and from the
// standard library image types.
//
// # Coordinate System
//
// Pixel coordinates are 0-based with (0,0) at the top-left corner, X
// increasing rightward and Y increasing downward. Pix[y*Width+x] holds the
// pixel at (x, y). Reads outside the raster return Background.
//
// # Boxes
//
// A Box is given by its top-left corner and its size. Boxes computed by
// ComputeBox enclose every foreground pixel plus a one-pixel margin, clamped
// to the raster, so that every pixel of the original shape keeps its full
// 3x3 neighborhood inside the crop. An all-background raster yields the
// empty Box.
//
// # Thread Safety
//
// A Binary is a plain value with no internal locking. Functions in this
// package never retain or alias their inputs; results are always freshly
// allocated.
package raster
