package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ironsheep/skeletonize/internal/raster"
)

// ImageCache provides thread-safe caching of decoded images keyed by path.
//
// Binarization is not cached: the same file may be read with different
// thresholds or polarities, so LoadBinary thresholds the cached decode on every
// call.
//
// Cached images remain in memory until removed via Evict() or Clear(). The MCP
// server keeps one cache for its whole lifetime; the CLI builds one per command.
//
//	cache := imaging.NewImageCache()
//	bin, err := imaging.LoadBinary(cache, "shape.png", raster.DefaultThreshold, false)
//	if err != nil {
//	    return err
//	}
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewImageCache creates an empty image cache ready for concurrent use.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]image.Image),
	}
}

// Load retrieves an image from the cache or decodes it from disk.
//
// The image is cached under the exact path string provided; a relative and an
// absolute path to the same file are separate entries.
func (c *ImageCache) Load(path string) (image.Image, error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	c.mu.Lock()
	c.images[path] = img
	c.mu.Unlock()

	return img, nil
}

// Len reports the number of cached images.
func (c *ImageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.images)
}

// Clear removes all images from the cache.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]image.Image)
	c.mu.Unlock()
}

// Evict removes a single image from the cache. Unknown paths are ignored.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// LoadBinary loads path through cache and binarizes it.
//
// Pixels whose luminance is at least threshold become foreground. With invert
// set the polarity is swapped afterwards, for dark strokes on a light page.
func LoadBinary(cache *ImageCache, path string, threshold uint8, invert bool) (*raster.Binary, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}
	bin := raster.FromImage(img, threshold)
	if invert {
		bin.Invert()
	}
	return bin, nil
}

// ShapeInfo describes the binarized content of an image file.
type ShapeInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is "png", "jpeg", "gif" or "unknown", detected from the file extension.
	Format string `json:"format"`

	// ForegroundPixels is the number of pixels at or above the threshold.
	ForegroundPixels int `json:"foreground_pixels"`

	// Components is the number of 8-connected foreground components.
	Components int `json:"components"`

	// BoundingBox is the region the thinning engine would crop to.
	BoundingBox raster.Box `json:"bounding_box"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadShapeInfo loads path, binarizes it and summarizes the result.
func LoadShapeInfo(cache *ImageCache, path string, threshold uint8, invert bool) (*ShapeInfo, error) {
	bin, err := LoadBinary(cache, path, threshold, invert)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	return &ShapeInfo{
		Width:            bin.Width,
		Height:           bin.Height,
		Format:           formatFromExt(path),
		ForegroundPixels: bin.Count(),
		Components:       raster.CountComponents(bin),
		BoundingBox:      raster.ComputeBox(bin),
		FileSizeBytes:    stat.Size(),
	}, nil
}

func formatFromExt(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "png"
	case ".jpg", ".jpeg":
		return "jpeg"
	case ".gif":
		return "gif"
	}
	return "unknown"
}
