package grove

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"
)

// Plan is a declarative placement document: a list of patterns to
// generate and the object kinds that fill them. Plans are authored in
// YAML and loaded with LoadPlan or LoadPlanFile.
type Plan struct {
	Name       string      `yaml:"name"`
	Placements []Placement `yaml:"placements"`
}

// Placement is one entry of a Plan. Pattern selects the generator
// ("grid", "circle", "scatter" or "path"); the remaining fields
// parameterise it and unused ones are ignored.
type Placement struct {
	Kind    string `yaml:"kind"`
	Pattern string `yaml:"pattern"`

	// Count is shared by circle, scatter and path.
	Count int `yaml:"count"`

	// grid
	Rows     int       `yaml:"rows"`
	Cols     int       `yaml:"cols"`
	SpacingX float64   `yaml:"spacing_x"`
	SpacingY float64   `yaml:"spacing_y"`
	Origin   []float64 `yaml:"origin"`

	// circle
	Radius     float64   `yaml:"radius"`
	Center     []float64 `yaml:"center"`
	FaceCenter bool      `yaml:"face_center"`

	// scatter
	Bounds    *Bounds `yaml:"bounds"`
	Z         float64 `yaml:"z"`
	Scale     *Range  `yaml:"scale"`
	RandomYaw bool    `yaml:"random_yaw"`
	Seed      uint64  `yaml:"seed"`

	// path
	Points         [][]float64 `yaml:"points"`
	Tangents       [][]float64 `yaml:"tangents"`
	LateralOffset  float64     `yaml:"lateral_offset"`
	RotationOffset *Rotator    `yaml:"rotation_offset"`
	AlignToPath    bool        `yaml:"align_to_path"`
	Ease           string      `yaml:"ease"`
}

// Batch is the generated output of one placement: a kind plus its
// transforms.
type Batch struct {
	Kind       string
	Transforms []Transform
}

// LoadPlan parses a YAML plan document. Structural problems (an unknown
// pattern, a malformed point, an unknown ease name) are reported here;
// numeric validation happens when the plan generates.
func LoadPlan(data []byte) (*Plan, error) {
	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("grove: failed to parse plan YAML: %w", err)
	}
	for i := range p.Placements {
		if err := p.Placements[i].check(); err != nil {
			return nil, fmt.Errorf("plan placement %d: %w", i, err)
		}
	}
	return &p, nil
}

// LoadPlanFile reads and parses a YAML plan from disk.
func LoadPlanFile(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("grove: failed to read plan file: %w", err)
	}
	return LoadPlan(data)
}

// check validates the structural fields of a placement.
func (pl *Placement) check() error {
	if pl.Kind == "" {
		return fmt.Errorf("%w: kind must not be empty", ErrInvalidArgument)
	}
	switch pl.Pattern {
	case "grid", "circle", "scatter":
	case "path":
		if _, err := easeByName(pl.Ease); err != nil {
			return err
		}
		if len(pl.Tangents) > 0 && len(pl.Tangents) != len(pl.Points) {
			return fmt.Errorf("%w: %d tangents for %d points", ErrInvalidArgument, len(pl.Tangents), len(pl.Points))
		}
	default:
		return fmt.Errorf("%w: unknown pattern %q", ErrInvalidArgument, pl.Pattern)
	}
	if pl.Origin != nil && len(pl.Origin) != 3 {
		return fmt.Errorf("%w: origin wants 3 components, got %d", ErrInvalidArgument, len(pl.Origin))
	}
	if pl.Center != nil && len(pl.Center) != 3 {
		return fmt.Errorf("%w: center wants 3 components, got %d", ErrInvalidArgument, len(pl.Center))
	}
	for i, pt := range pl.Points {
		if len(pt) != 3 {
			return fmt.Errorf("%w: point %d wants 3 components, got %d", ErrInvalidArgument, i, len(pt))
		}
	}
	for i, tan := range pl.Tangents {
		if len(tan) != 3 {
			return fmt.Errorf("%w: tangent %d wants 3 components, got %d", ErrInvalidArgument, i, len(tan))
		}
	}
	return nil
}

// Transforms generates the transforms for this placement.
func (pl *Placement) Transforms() ([]Transform, error) {
	switch pl.Pattern {
	case "grid":
		return Grid(pl.Rows, pl.Cols, pl.SpacingX, pl.SpacingY, vec3(pl.Origin))
	case "circle":
		return Circle(pl.Count, pl.Radius, vec3(pl.Center), pl.FaceCenter)
	case "scatter":
		cfg := ScatterConfig{
			Count:     pl.Count,
			Z:         pl.Z,
			RandomYaw: pl.RandomYaw,
			Seed:      pl.Seed,
		}
		if pl.Bounds != nil {
			cfg.Bounds = *pl.Bounds
		}
		if pl.Scale != nil {
			cfg.Scale = *pl.Scale
		}
		return Scatter(cfg)
	case "path":
		points := make([]ControlPoint, len(pl.Points))
		for i, pt := range pl.Points {
			points[i].Position = vec3(pt)
			if i < len(pl.Tangents) {
				points[i].Tangent = vec3(pl.Tangents[i])
			}
		}
		path, err := NewPath(points)
		if err != nil {
			return nil, err
		}
		easeFn, err := easeByName(pl.Ease)
		if err != nil {
			return nil, err
		}
		cfg := AlongPathConfig{
			Count:         pl.Count,
			LateralOffset: pl.LateralOffset,
			AlignToPath:   pl.AlignToPath,
			Ease:          easeFn,
		}
		if pl.RotationOffset != nil {
			cfg.RotationOffset = *pl.RotationOffset
		}
		return AlongPath(path, cfg)
	default:
		return nil, fmt.Errorf("%w: unknown pattern %q", ErrInvalidArgument, pl.Pattern)
	}
}

// Generate produces one Batch per placement, in document order. The
// first bad placement stops generation.
func (p *Plan) Generate() ([]Batch, error) {
	batches := make([]Batch, 0, len(p.Placements))
	for i := range p.Placements {
		pl := &p.Placements[i]
		transforms, err := pl.Transforms()
		if err != nil {
			return nil, fmt.Errorf("plan placement %d (%s): %w", i, pl.Kind, err)
		}
		batches = append(batches, Batch{Kind: pl.Kind, Transforms: transforms})
	}
	return batches, nil
}

// Apply generates every placement and spawns the results through s,
// returning the total number spawned. Spawn failures skip the object
// and continue; the joined failures come back at the end.
func (p *Plan) Apply(s Spawner) (int, error) {
	batches, err := p.Generate()
	if err != nil {
		return 0, err
	}
	total := 0
	var errs []error
	for _, b := range batches {
		n, err := Place(s, b.Kind, b.Transforms)
		total += n
		if err != nil {
			errs = append(errs, err)
		}
	}
	return total, errors.Join(errs...)
}

// vec3 converts a YAML [x, y, z] triple. Lengths are validated by check.
func vec3(triple []float64) mgl64.Vec3 {
	if len(triple) != 3 {
		return mgl64.Vec3{}
	}
	return mgl64.Vec3{triple[0], triple[1], triple[2]}
}

// easeFuncs maps plan ease names to gween easing functions.
var easeFuncs = map[string]ease.TweenFunc{
	"linear":       ease.Linear,
	"in-quad":      ease.InQuad,
	"out-quad":     ease.OutQuad,
	"in-out-quad":  ease.InOutQuad,
	"in-cubic":     ease.InCubic,
	"out-cubic":    ease.OutCubic,
	"in-out-cubic": ease.InOutCubic,
	"in-sine":      ease.InSine,
	"out-sine":     ease.OutSine,
	"in-out-sine":  ease.InOutSine,
	"in-expo":      ease.InExpo,
	"out-expo":     ease.OutExpo,
	"in-out-expo":  ease.InOutExpo,
}

// easeByName resolves a plan ease name. The empty name means even
// spacing and resolves to nil.
func easeByName(name string) (ease.TweenFunc, error) {
	if name == "" {
		return nil, nil
	}
	fn, ok := easeFuncs[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown ease %q", ErrInvalidArgument, name)
	}
	return fn, nil
}
