package grove

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween/ease"
)

func linePath(t *testing.T, positions ...mgl64.Vec3) *Path {
	t.Helper()
	p, err := NewLinePath(positions...)
	if err != nil {
		t.Fatalf("NewLinePath error = %v", err)
	}
	return p
}

// --- Spacing ---

func TestAlongPathEvenSpacing(t *testing.T) {
	p := linePath(t, mgl64.Vec3{}, mgl64.Vec3{100, 0, 0})
	got, err := AlongPath(p, AlongPathConfig{Count: 5})
	if err != nil {
		t.Fatalf("AlongPath error = %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("len = %d, want 5", len(got))
	}
	for i, wantX := range []float64{0, 25, 50, 75, 100} {
		assertVec3(t, "position", got[i].Position, mgl64.Vec3{wantX, 0, 0})
	}
}

func TestAlongPathSingle(t *testing.T) {
	p := linePath(t, mgl64.Vec3{5, 5, 0}, mgl64.Vec3{105, 5, 0})
	got, err := AlongPath(p, AlongPathConfig{Count: 1})
	if err != nil {
		t.Fatalf("AlongPath error = %v", err)
	}
	assertVec3(t, "got[0]", got[0].Position, mgl64.Vec3{5, 5, 0})
}

func TestAlongPathSpansEndpoints(t *testing.T) {
	p, err := NewPath([]ControlPoint{
		{Position: mgl64.Vec3{0, 0, 0}, Tangent: mgl64.Vec3{100, 100, 0}},
		{Position: mgl64.Vec3{100, 0, 0}, Tangent: mgl64.Vec3{100, -100, 0}},
	})
	if err != nil {
		t.Fatalf("NewPath error = %v", err)
	}
	got, err := AlongPath(p, AlongPathConfig{Count: 7})
	if err != nil {
		t.Fatalf("AlongPath error = %v", err)
	}
	assertVec3(t, "first", got[0].Position, mgl64.Vec3{})
	assertVec3(t, "last", got[6].Position, mgl64.Vec3{100, 0, 0})
}

func TestAlongPathEase(t *testing.T) {
	p := linePath(t, mgl64.Vec3{}, mgl64.Vec3{100, 0, 0})
	got, err := AlongPath(p, AlongPathConfig{Count: 5, Ease: ease.OutQuad})
	if err != nil {
		t.Fatalf("AlongPath error = %v", err)
	}
	// Endpoints stay put, stations pack toward the far end.
	assertVec3(t, "first", got[0].Position, mgl64.Vec3{})
	if last := got[4].Position; last.Sub(mgl64.Vec3{100, 0, 0}).Len() > 1e-4 {
		t.Errorf("last = %v, want (100, 0, 0)", last)
	}
	if mid := got[2].Position.X(); mid <= 50 {
		t.Errorf("eased middle station at x=%v, want > 50", mid)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Position.X() <= got[i-1].Position.X() {
			t.Fatalf("stations not monotone: x[%d]=%v, x[%d]=%v", i-1, got[i-1].Position.X(), i, got[i].Position.X())
		}
	}
}

// --- Orientation and offsets ---

func TestAlongPathAlign(t *testing.T) {
	p := linePath(t, mgl64.Vec3{}, mgl64.Vec3{100, 0, 0}, mgl64.Vec3{100, 100, 0})
	got, err := AlongPath(p, AlongPathConfig{Count: 5, AlignToPath: true})
	if err != nil {
		t.Fatalf("AlongPath error = %v", err)
	}
	// Stations 0 and 1 sit on the +X leg, stations 3 and 4 on the +Y leg.
	assertNear(t, "got[0].Yaw", got[0].Rotation.Yaw, 0)
	assertNear(t, "got[1].Yaw", got[1].Rotation.Yaw, 0)
	assertNear(t, "got[3].Yaw", got[3].Rotation.Yaw, 90)
	assertNear(t, "got[4].Yaw", got[4].Rotation.Yaw, 90)
}

func TestAlongPathNoAlign(t *testing.T) {
	p := linePath(t, mgl64.Vec3{}, mgl64.Vec3{0, 100, 0})
	got, _ := AlongPath(p, AlongPathConfig{Count: 3})
	for i, tf := range got {
		if tf.Rotation != (Rotator{}) {
			t.Fatalf("got[%d].Rotation = %+v, want zero", i, tf.Rotation)
		}
	}
}

func TestAlongPathLateralOffset(t *testing.T) {
	p := linePath(t, mgl64.Vec3{}, mgl64.Vec3{100, 0, 0})
	got, err := AlongPath(p, AlongPathConfig{Count: 3, LateralOffset: 10})
	if err != nil {
		t.Fatalf("AlongPath error = %v", err)
	}
	// Travelling +X with Z up, right is -Y.
	assertVec3(t, "got[0]", got[0].Position, mgl64.Vec3{0, -10, 0})
	assertVec3(t, "got[1]", got[1].Position, mgl64.Vec3{50, -10, 0})
	assertVec3(t, "got[2]", got[2].Position, mgl64.Vec3{100, -10, 0})
}

func TestAlongPathNegativeLateralOffset(t *testing.T) {
	p := linePath(t, mgl64.Vec3{}, mgl64.Vec3{100, 0, 0})
	got, _ := AlongPath(p, AlongPathConfig{Count: 1, LateralOffset: -5})
	assertVec3(t, "got[0]", got[0].Position, mgl64.Vec3{0, 5, 0})
}

func TestAlongPathRotationOffset(t *testing.T) {
	p := linePath(t, mgl64.Vec3{}, mgl64.Vec3{0, 100, 0})
	offset := Rotator{Yaw: 90}

	got, _ := AlongPath(p, AlongPathConfig{Count: 1, RotationOffset: offset})
	assertRotator(t, "unaligned", got[0].Rotation, Rotator{Yaw: 90})

	got, _ = AlongPath(p, AlongPathConfig{Count: 1, RotationOffset: offset, AlignToPath: true})
	// Path heads +Y (yaw 90), plus the offset.
	assertRotator(t, "aligned", got[0].Rotation, Rotator{Yaw: 180})
}

// --- Edge cases ---

func TestAlongPathZeroLengthPath(t *testing.T) {
	p, err := NewPath([]ControlPoint{{Position: mgl64.Vec3{1, 2, 3}}})
	if err != nil {
		t.Fatalf("NewPath error = %v", err)
	}
	got, err := AlongPath(p, AlongPathConfig{
		Count:          3,
		AlignToPath:    true,
		LateralOffset:  10,
		RotationOffset: Rotator{Roll: 45},
	})
	if err != nil {
		t.Fatalf("AlongPath error = %v", err)
	}
	for _, tf := range got {
		assertVec3(t, "position", tf.Position, mgl64.Vec3{1, 2, 3})
		assertRotator(t, "rotation", tf.Rotation, Rotator{Roll: 45})
	}
}

func TestAlongPathInvalid(t *testing.T) {
	p := linePath(t, mgl64.Vec3{}, mgl64.Vec3{100, 0, 0})
	if _, err := AlongPath(nil, AlongPathConfig{Count: 3}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("AlongPath(nil path) error = %v, want ErrInvalidArgument", err)
	}
	if _, err := AlongPath(p, AlongPathConfig{Count: 0}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("AlongPath(count 0) error = %v, want ErrInvalidArgument", err)
	}
	if _, err := AlongPath(p, AlongPathConfig{Count: -2}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("AlongPath(count -2) error = %v, want ErrInvalidArgument", err)
	}
}
