package grove

import (
	"errors"
	"math/rand/v2"
	"testing"
)

func scatterConfig() ScatterConfig {
	return ScatterConfig{
		Count:     200,
		Bounds:    Bounds{MinX: -500, MaxX: 500, MinY: -500, MaxY: 500},
		Z:         10,
		Scale:     Range{Min: 0.8, Max: 1.2},
		RandomYaw: true,
		Seed:      42,
	}
}

// --- Determinism ---

func TestScatterDeterministic(t *testing.T) {
	cfg := scatterConfig()
	a, err := Scatter(cfg)
	if err != nil {
		t.Fatalf("Scatter error = %v", err)
	}
	b, err := Scatter(cfg)
	if err != nil {
		t.Fatalf("Scatter error = %v", err)
	}
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("transform %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestScatterSeedsDiffer(t *testing.T) {
	cfg := scatterConfig()
	a, _ := Scatter(cfg)
	cfg.Seed = 43
	b, _ := Scatter(cfg)
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("seeds 42 and 43 produced identical layouts")
	}
}

func TestScatterSourceOverridesSeed(t *testing.T) {
	cfg := scatterConfig()
	cfg.Source = rand.New(rand.NewPCG(1, 2))
	a, err := Scatter(cfg)
	if err != nil {
		t.Fatalf("Scatter error = %v", err)
	}
	// The same config again continues the caller-owned stream rather
	// than restarting it.
	b, err := Scatter(cfg)
	if err != nil {
		t.Fatalf("Scatter error = %v", err)
	}
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("shared Source produced identical layouts on consecutive calls")
	}
}

// --- Distribution ---

func TestScatterWithinBounds(t *testing.T) {
	cfg := scatterConfig()
	got, err := Scatter(cfg)
	if err != nil {
		t.Fatalf("Scatter error = %v", err)
	}
	if len(got) != cfg.Count {
		t.Fatalf("len = %d, want %d", len(got), cfg.Count)
	}
	for i, tf := range got {
		if !cfg.Bounds.Contains(tf.Position.X(), tf.Position.Y()) {
			t.Fatalf("transform %d at %v is outside %+v", i, tf.Position, cfg.Bounds)
		}
		assertNear(t, "Z", tf.Position.Z(), cfg.Z)
	}
}

func TestScatterScaleRange(t *testing.T) {
	cfg := scatterConfig()
	got, _ := Scatter(cfg)
	for i, tf := range got {
		s := tf.Scale.X()
		if s < cfg.Scale.Min || s >= cfg.Scale.Max {
			t.Fatalf("transform %d scale %v outside %+v", i, s, cfg.Scale)
		}
		if tf.Scale.Y() != s || tf.Scale.Z() != s {
			t.Fatalf("transform %d scale %v is not uniform", i, tf.Scale)
		}
	}
}

func TestScatterDefaultScale(t *testing.T) {
	cfg := scatterConfig()
	cfg.Scale = Range{}
	got, err := Scatter(cfg)
	if err != nil {
		t.Fatalf("Scatter error = %v", err)
	}
	for i, tf := range got {
		if tf.Scale != UniformScale(1) {
			t.Fatalf("transform %d scale = %v, want unit", i, tf.Scale)
		}
	}
}

func TestScatterYaw(t *testing.T) {
	cfg := scatterConfig()
	got, _ := Scatter(cfg)
	varied := false
	for i, tf := range got {
		yaw := tf.Rotation.Yaw
		if yaw < 0 || yaw >= 360 {
			t.Fatalf("transform %d yaw %v outside [0, 360)", i, yaw)
		}
		if tf.Rotation.Pitch != 0 || tf.Rotation.Roll != 0 {
			t.Fatalf("transform %d rotation %+v, want yaw only", i, tf.Rotation)
		}
		if yaw != got[0].Rotation.Yaw {
			varied = true
		}
	}
	if !varied {
		t.Fatal("RandomYaw produced constant yaw")
	}

	cfg.RandomYaw = false
	got, _ = Scatter(cfg)
	for i, tf := range got {
		if tf.Rotation != (Rotator{}) {
			t.Fatalf("transform %d rotation = %+v, want zero", i, tf.Rotation)
		}
	}
}

// --- Edge cases ---

func TestScatterCountZero(t *testing.T) {
	cfg := scatterConfig()
	cfg.Count = 0
	got, err := Scatter(cfg)
	if err != nil {
		t.Fatalf("Scatter error = %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}
}

func TestScatterPointBounds(t *testing.T) {
	cfg := scatterConfig()
	cfg.Bounds = Bounds{MinX: 7, MaxX: 7, MinY: -3, MaxY: -3}
	got, err := Scatter(cfg)
	if err != nil {
		t.Fatalf("Scatter error = %v", err)
	}
	for _, tf := range got {
		assertNear(t, "X", tf.Position.X(), 7)
		assertNear(t, "Y", tf.Position.Y(), -3)
	}
}

func TestScatterInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ScatterConfig)
	}{
		{"negative count", func(c *ScatterConfig) { c.Count = -1 }},
		{"inverted bounds x", func(c *ScatterConfig) { c.Bounds.MinX = c.Bounds.MaxX + 1 }},
		{"inverted bounds y", func(c *ScatterConfig) { c.Bounds.MinY = c.Bounds.MaxY + 1 }},
		{"inverted scale", func(c *ScatterConfig) { c.Scale = Range{Min: 2, Max: 1} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := scatterConfig()
			tt.mutate(&cfg)
			_, err := Scatter(cfg)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("Scatter error = %v, want ErrInvalidArgument", err)
			}
		})
	}
}
