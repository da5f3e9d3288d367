package server

import (
	"fmt"
	"strings"

	"github.com/ironsheep/skeletonize/internal/thinning"
)

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// inputProperties returns the arguments every image tool accepts, plus extra.
func inputProperties(extra map[string]interface{}) map[string]interface{} {
	props := map[string]interface{}{
		"path": map[string]interface{}{
			"type":        "string",
			"description": "Absolute path to a PNG, JPEG or GIF image",
		},
		"threshold": map[string]interface{}{
			"type":        "integer",
			"description": "Luminance (0-255) at or above which a pixel is foreground. Defaults to the server config",
			"minimum":     0,
			"maximum":     255,
		},
		"invert": map[string]interface{}{
			"type":        "boolean",
			"description": "Treat dark pixels as foreground (dark strokes on a light page)",
			"default":     false,
		},
	}
	for k, v := range extra {
		props[k] = v
	}
	return props
}

func algorithmProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": description,
		"enum":        thinning.ListAlgorithms(),
	}
}

var (
	cropProperty = map[string]interface{}{
		"type":        "boolean",
		"description": "Restrict thinning to the bounding box of the foreground. Defaults to the server config",
	}
	scaleProperty = map[string]interface{}{
		"type":        "integer",
		"description": "Integer nearest-neighbor up-scaling of returned images (default 1) or written frames (default frame_scale)",
		"minimum":     1,
	}
)

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	names := strings.Join(thinning.ListAlgorithms(), ", ")

	return []Tool{
		{
			Name:        "skeleton_list_algorithms",
			Description: "List the registered thinning algorithms and the server's default.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			Name:        "skeleton_load",
			Description: "Binarize an image and report its size, foreground pixel count, number of 8-connected components and the crop bounding box.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": inputProperties(nil),
				"required":   []string{"path"},
			},
		},
		{
			Name:        "skeleton_thin",
			Description: fmt.Sprintf("Reduce the foreground of a binarized image to a one pixel wide skeleton. Algorithms: %s. Returns iteration statistics and, unless include_image is false, the skeleton as base64 PNG.", names),
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": inputProperties(map[string]interface{}{
					"algorithm": algorithmProperty("Thinning algorithm. Defaults to the server config"),
					"crop":      cropProperty,
					"iterations": map[string]interface{}{
						"type":        "integer",
						"description": "Run exactly this many iterations instead of running to convergence",
						"minimum":     0,
					},
					"scale": scaleProperty,
					"include_image": map[string]interface{}{
						"type":        "boolean",
						"description": "Return the skeleton image",
						"default":     true,
					},
				}),
				"required": []string{"path"},
			},
		},
		{
			Name:        "skeleton_frames",
			Description: "Thin an image one iteration at a time and write the input plus one PNG per iteration into a directory, for animation.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": inputProperties(map[string]interface{}{
					"algorithm": algorithmProperty("Thinning algorithm. Defaults to the server config"),
					"crop":      cropProperty,
					"output_dir": map[string]interface{}{
						"type":        "string",
						"description": "Directory receiving the frames; created if missing",
					},
					"prefix": map[string]interface{}{
						"type":        "string",
						"description": "Frame file name prefix",
						"default":     "frame",
					},
					"scale": scaleProperty,
					"bright": map[string]interface{}{
						"type":        "boolean",
						"description": "Highlight the contour and dim the interior of every frame",
						"default":     false,
					},
				}),
				"required": []string{"path", "output_dir"},
			},
		},
		{
			Name:        "skeleton_compare",
			Description: "Run several thinning algorithms on the same image concurrently and compare iteration counts and remaining pixels. Optionally returns a labeled gallery of the skeletons.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": inputProperties(map[string]interface{}{
					"algorithms": map[string]interface{}{
						"type":        "array",
						"items":       algorithmProperty("Thinning algorithm"),
						"description": "Algorithms to compare. Defaults to all registered algorithms",
					},
					"crop": cropProperty,
					"include_image": map[string]interface{}{
						"type":        "boolean",
						"description": "Return a gallery image of the query and every skeleton",
						"default":     false,
					},
					"columns": map[string]interface{}{
						"type":        "integer",
						"description": "Gallery columns. Defaults to the server config",
						"minimum":     1,
					},
					"label_color": map[string]interface{}{
						"type":        "string",
						"description": "Gallery label color as #RRGGBB; by default each algorithm gets its own hue",
					},
					"scale": scaleProperty,
				}),
				"required": []string{"path"},
			},
		},
		{
			Name:        "skeleton_contour",
			Description: "Render a contour illustration: 'bright' draws the 4-connected contour at full intensity over a dimmed interior, 'color' colors the contour by its angle around the centroid.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": inputProperties(map[string]interface{}{
					"mode": map[string]interface{}{
						"type":        "string",
						"enum":        []string{contourBright, contourColor},
						"description": "Illustration style",
						"default":     contourBright,
					},
					"thin": map[string]interface{}{
						"type":        "boolean",
						"description": "Illustrate the skeleton instead of the input",
						"default":     false,
					},
					"algorithm": algorithmProperty("Thinning algorithm used when thin is set. Defaults to the server config"),
					"scale":     scaleProperty,
				}),
				"required": []string{"path"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
