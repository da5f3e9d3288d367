package imaging

import (
	"context"
	"image"
	"image/color"

	"github.com/ironsheep/skeletonize/internal/raster"
	"github.com/ironsheep/skeletonize/internal/thinning"
)

// CompareOptions control CompareFrames.
type CompareOptions struct {
	Dir     string
	Prefix  string // defaults to "compare"
	Columns int
	Scale   int
	// FPS and HoldSeconds size the run of copies of the last frame appended
	// so a player lingers on the result. Defaults are 5 and 2.
	FPS         int
	HoldSeconds int
	// DilateRadius thickens skeleton strokes in the panels; 0 disables it.
	DilateRadius  float64
	Crop          bool
	MaxIterations int
	Registry      *thinning.Registry
}

func (o CompareOptions) holdFrames() int {
	fps, hold := o.FPS, o.HoldSeconds
	if fps <= 0 {
		fps = 5
	}
	switch {
	case hold < 0:
		return 0
	case hold == 0:
		hold = 2
	}
	return fps * hold
}

// AlgorithmRun summarizes one algorithm of a comparison.
type AlgorithmRun struct {
	Name       string `json:"name"`
	Iterations int    `json:"iterations"`
	Converged  bool   `json:"converged"`
}

// CompareResult lists what CompareFrames produced.
type CompareResult struct {
	Frames     []string       `json:"frames"`
	Rounds     int            `json:"rounds"`
	Algorithms []AlgorithmRun `json:"algorithms"`
}

// ComparePanels builds the gallery panels for one comparison frame: the
// query followed by each skeleton as a hue-ramped contour, labeled with its
// algorithm name in its own color.
func ComparePanels(query *raster.Binary, names []string, skeletons []*raster.Binary, dilate float64) []Panel {
	palette := Palette(len(names))
	panels := make([]Panel, 0, len(names)+1)
	panels = append(panels, Panel{Label: "query", Image: query.ToGray(), LabelColor: color.White})
	for i, skel := range skeletons {
		var img image.Image = ContourColor(skel)
		if dilate > 0 {
			img = Thicken(img, dilate)
		}
		panels = append(panels, Panel{Label: names[i], Image: img, LabelColor: palette[i]})
	}
	return panels
}

// CompareFrames steps one engine per algorithm in lock-step and writes a
// gallery frame after every round in which at least one algorithm changed,
// then FPS*HoldSeconds copies of the last frame. A HoldSeconds below zero
// disables the copies.
func CompareFrames(ctx context.Context, src *raster.Binary, names []string, opts CompareOptions) (*CompareResult, error) {
	engines := make([]*thinning.Engine, len(names))
	for i, name := range names {
		engines[i] = thinning.NewEngine(opts.Registry)
		if err := engines[i].Init(src, name, opts.Crop); err != nil {
			return nil, err
		}
	}

	prefix := opts.Prefix
	if prefix == "" {
		prefix = "compare"
	}
	res := &CompareResult{}

	var last image.Image
	emit := func() error {
		skeletons := make([]*raster.Binary, len(engines))
		for i, eng := range engines {
			skel, err := eng.Skeleton()
			if err != nil {
				return err
			}
			skeletons[i] = skel
		}
		gallery, err := Gallery(ComparePanels(src, names, skeletons, opts.DilateRadius), GalleryOptions{Columns: opts.Columns})
		if err != nil {
			return err
		}
		last = ScaleFrame(gallery, opts.Scale)
		path, err := WriteFrame(opts.Dir, prefix, len(res.Frames), last)
		if err != nil {
			return err
		}
		res.Frames = append(res.Frames, path)
		return nil
	}

	if err := emit(); err != nil {
		return nil, err
	}
	for opts.MaxIterations <= 0 || res.Rounds < opts.MaxIterations {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		moved := false
		for _, eng := range engines {
			changed, err := eng.Step()
			if err != nil {
				return nil, err
			}
			moved = moved || changed
		}
		if !moved {
			break
		}
		res.Rounds++
		if err := emit(); err != nil {
			return nil, err
		}
	}

	for range opts.holdFrames() {
		path, err := WriteFrame(opts.Dir, prefix, len(res.Frames), last)
		if err != nil {
			return nil, err
		}
		res.Frames = append(res.Frames, path)
	}

	for i, eng := range engines {
		res.Algorithms = append(res.Algorithms, AlgorithmRun{
			Name:       names[i],
			Iterations: eng.Iterations(),
			Converged:  eng.HasConverged(),
		})
	}
	return res, nil
}
