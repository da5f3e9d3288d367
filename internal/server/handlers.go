package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/ironsheep/skeletonize/internal/imaging"
	"github.com/ironsheep/skeletonize/internal/raster"
	"github.com/ironsheep/skeletonize/internal/thinning"
)

const (
	contourBright = "bright"
	contourColor  = "color"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "skeleton_thin").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(ctx context.Context, req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	start := time.Now()
	result, err := s.executeTool(ctx, params.Name, params.Arguments)
	if err != nil {
		s.logger.Warn("tool failed", "tool", params.Name, "err", err)
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}
	s.logger.Debug("tool done", "tool", params.Name, "elapsed", time.Since(start).Round(time.Millisecond))

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(ctx context.Context, name string, args json.RawMessage) (interface{}, error) {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}
	switch name {
	case "skeleton_list_algorithms":
		return s.handleListAlgorithms()
	case "skeleton_load":
		return s.handleLoad(args)
	case "skeleton_thin":
		return s.handleThin(ctx, args)
	case "skeleton_frames":
		return s.handleFrames(ctx, args)
	case "skeleton_compare":
		return s.handleCompare(ctx, args)
	case "skeleton_contour":
		return s.handleContour(ctx, args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Shared argument handling ===

// imageArgs are embedded by every tool that reads an image.
type imageArgs struct {
	Path      string `json:"path"`
	Threshold *int   `json:"threshold"`
	Invert    bool   `json:"invert"`
}

func (s *Server) threshold(a imageArgs) (uint8, error) {
	if a.Path == "" {
		return 0, fmt.Errorf("path is required")
	}
	if a.Threshold == nil {
		return s.cfg.GrayThreshold(), nil
	}
	if *a.Threshold < 0 || *a.Threshold > 255 {
		return 0, fmt.Errorf("threshold must be within 0..255, got %d", *a.Threshold)
	}
	return uint8(*a.Threshold), nil
}

func (s *Server) loadBinary(a imageArgs) (*raster.Binary, error) {
	threshold, err := s.threshold(a)
	if err != nil {
		return nil, err
	}
	return imaging.LoadBinary(s.cache, a.Path, threshold, a.Invert)
}

func (s *Server) algorithm(name string) string {
	if name == "" {
		return s.cfg.Algorithm
	}
	return name
}

func (s *Server) crop(v *bool) bool {
	if v == nil {
		return s.cfg.Crop
	}
	return *v
}

func scaleOr(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

// thin runs the engine under the server's iteration bound. Exhausting the
// bound is reported as a warning next to the best-effort result.
func (s *Server) thin(ctx context.Context, bin *raster.Binary, algorithm string, crop bool, iterations int) (*thinning.Result, string, error) {
	if iterations < 0 {
		return nil, "", fmt.Errorf("iterations must not be negative, got %d", iterations)
	}
	res, err := thinning.ThinContext(ctx, bin, algorithm, thinning.Options{
		Crop:          crop,
		Iterations:    iterations,
		MaxIterations: s.cfg.MaxIterations,
		Registry:      s.registry,
	})
	if err != nil {
		if res == nil || !errors.Is(err, thinning.ErrNonConvergence) {
			return nil, "", err
		}
		s.logger.Warn("thinning did not converge", "algorithm", algorithm, "iterations", res.Iterations)
		return res, err.Error(), nil
	}
	return res, "", nil
}

// === Algorithm listing ===

type algorithmInfo struct {
	Name             string `json:"name"`
	IncrementalReuse bool   `json:"incremental_reuse"`
}

type listAlgorithmsResult struct {
	Algorithms []algorithmInfo `json:"algorithms"`
	Default    string          `json:"default"`
}

func (s *Server) handleListAlgorithms() (interface{}, error) {
	res := &listAlgorithmsResult{Default: s.cfg.Algorithm}
	for _, name := range s.registry.Names() {
		desc, err := s.registry.Get(name)
		if err != nil {
			return nil, err
		}
		res.Algorithms = append(res.Algorithms, algorithmInfo{Name: desc.Name, IncrementalReuse: desc.IncrementalReuse})
	}
	return res, nil
}

// === Loading ===

func (s *Server) handleLoad(args json.RawMessage) (interface{}, error) {
	var a imageArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	threshold, err := s.threshold(a)
	if err != nil {
		return nil, err
	}
	return imaging.LoadShapeInfo(s.cache, a.Path, threshold, a.Invert)
}

// === Thinning ===

type thinArgs struct {
	imageArgs
	Algorithm    string `json:"algorithm"`
	Crop         *bool  `json:"crop"`
	Iterations   int    `json:"iterations"`
	Scale        int    `json:"scale"`
	IncludeImage *bool  `json:"include_image"`
}

type thinResult struct {
	*thinning.Result
	ForegroundBefore int                   `json:"foreground_before"`
	ForegroundAfter  int                   `json:"foreground_after"`
	ComponentsBefore int                   `json:"components_before"`
	ComponentsAfter  int                   `json:"components_after"`
	Warning          string                `json:"warning,omitempty"`
	Image            *imaging.EncodedImage `json:"image,omitempty"`
}

func (s *Server) handleThin(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a thinArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	bin, err := s.loadBinary(a.imageArgs)
	if err != nil {
		return nil, err
	}

	res, warning, err := s.thin(ctx, bin, s.algorithm(a.Algorithm), s.crop(a.Crop), a.Iterations)
	if err != nil {
		return nil, err
	}

	out := &thinResult{
		Result:           res,
		ForegroundBefore: bin.Count(),
		ForegroundAfter:  res.Skeleton.Count(),
		ComponentsBefore: raster.CountComponents(bin),
		ComponentsAfter:  raster.CountComponents(res.Skeleton),
		Warning:          warning,
	}
	if boolOr(a.IncludeImage, true) {
		out.Image, err = imaging.EncodePNG(imaging.ScaleFrame(res.Skeleton.ToGray(), scaleOr(a.Scale, 1)))
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// === Frames ===

type framesArgs struct {
	imageArgs
	Algorithm string `json:"algorithm"`
	Crop      *bool  `json:"crop"`
	OutputDir string `json:"output_dir"`
	Prefix    string `json:"prefix"`
	Scale     int    `json:"scale"`
	Bright    bool   `json:"bright"`
}

func (s *Server) handleFrames(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a framesArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.OutputDir == "" {
		return nil, fmt.Errorf("output_dir is required")
	}
	bin, err := s.loadBinary(a.imageArgs)
	if err != nil {
		return nil, err
	}

	return imaging.WriteFrames(ctx, bin, s.algorithm(a.Algorithm), imaging.FrameOptions{
		Dir:           a.OutputDir,
		Prefix:        a.Prefix,
		Scale:         scaleOr(a.Scale, s.cfg.FrameScale),
		Bright:        a.Bright,
		Crop:          s.crop(a.Crop),
		MaxIterations: s.cfg.MaxIterations,
		Registry:      s.registry,
	})
}

// === Comparison ===

type compareArgs struct {
	imageArgs
	Algorithms   []string `json:"algorithms"`
	Crop         *bool    `json:"crop"`
	IncludeImage bool     `json:"include_image"`
	Columns      int      `json:"columns"`
	LabelColor   string   `json:"label_color"`
	Scale        int      `json:"scale"`
}

type compareEntry struct {
	*thinning.Result
	ForegroundAfter int `json:"foreground_after"`
}

type compareResult struct {
	ForegroundBefore int                   `json:"foreground_before"`
	Results          []compareEntry        `json:"results"`
	Gallery          *imaging.EncodedImage `json:"gallery,omitempty"`
}

func (s *Server) handleCompare(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a compareArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	bin, err := s.loadBinary(a.imageArgs)
	if err != nil {
		return nil, err
	}
	names := a.Algorithms
	if len(names) == 0 {
		names = s.registry.Names()
	}

	results, err := thinning.Compare(ctx, bin, names, thinning.Options{
		Crop:          s.crop(a.Crop),
		MaxIterations: s.cfg.MaxIterations,
		Registry:      s.registry,
	})
	if err != nil {
		return nil, err
	}

	out := &compareResult{ForegroundBefore: bin.Count()}
	skeletons := make([]*raster.Binary, len(results))
	for i, res := range results {
		out.Results = append(out.Results, compareEntry{Result: res, ForegroundAfter: res.Skeleton.Count()})
		skeletons[i] = res.Skeleton
	}

	if a.IncludeImage {
		gallery, err := s.gallery(bin, names, skeletons, a)
		if err != nil {
			return nil, err
		}
		if out.Gallery, err = imaging.EncodePNG(gallery); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (s *Server) gallery(query *raster.Binary, names []string, skeletons []*raster.Binary, a compareArgs) (image.Image, error) {
	panels := imaging.ComparePanels(query, names, skeletons, 1)
	opts := imaging.GalleryOptions{Columns: a.Columns}
	if opts.Columns <= 0 {
		opts.Columns = s.cfg.GalleryColumns
	}
	if a.LabelColor != "" {
		c, err := imaging.ParseHexColor(a.LabelColor)
		if err != nil {
			return nil, fmt.Errorf("invalid label_color: %w", err)
		}
		opts.LabelColor = c
		for i := range panels {
			panels[i].LabelColor = nil
		}
	}
	gallery, err := imaging.Gallery(panels, opts)
	if err != nil {
		return nil, err
	}
	return imaging.ScaleFrame(gallery, scaleOr(a.Scale, 1)), nil
}

// === Contours ===

type contourArgs struct {
	imageArgs
	Mode      string `json:"mode"`
	Thin      bool   `json:"thin"`
	Algorithm string `json:"algorithm"`
	Scale     int    `json:"scale"`
}

type contourResult struct {
	*imaging.EncodedImage
	Mode          string `json:"mode"`
	ContourPixels int    `json:"contour_pixels"`
	Warning       string `json:"warning,omitempty"`
}

func (s *Server) handleContour(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a contourArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Mode == "" {
		a.Mode = contourBright
	}
	if a.Mode != contourBright && a.Mode != contourColor {
		return nil, fmt.Errorf("unknown mode %q, want %s or %s", a.Mode, contourBright, contourColor)
	}
	bin, err := s.loadBinary(a.imageArgs)
	if err != nil {
		return nil, err
	}

	out := &contourResult{Mode: a.Mode}
	if a.Thin {
		res, warning, err := s.thin(ctx, bin, s.algorithm(a.Algorithm), s.cfg.Crop, thinning.IterateAll)
		if err != nil {
			return nil, err
		}
		bin, out.Warning = res.Skeleton, warning
	}

	for y := 0; y < bin.Height; y++ {
		for x := 0; x < bin.Width; x++ {
			if raster.IsContour(bin, x, y) {
				out.ContourPixels++
			}
		}
	}

	var img image.Image = imaging.ContourBrighter(bin)
	if a.Mode == contourColor {
		img = imaging.ContourColor(bin)
	}
	out.EncodedImage, err = imaging.EncodePNG(imaging.ScaleFrame(img, scaleOr(a.Scale, 1)))
	if err != nil {
		return nil, err
	}
	return out, nil
}
