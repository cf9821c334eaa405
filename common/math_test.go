package common

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(1e-5, 1e-5)

func sequenceMat(start float32) Mat4 {
	var m Mat4
	for i := range m {
		m[i] = start + float32(i)*0.5
	}
	return m
}

func TestMul4MatchesIndexConvention(t *testing.T) {
	a := sequenceMat(1)
	b := sequenceMat(-3)

	var got Mat4
	Mul4(got[:], a[:], b[:])

	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			var want float32
			for k := 0; k < 4; k++ {
				want += a.At(r, k) * b.At(k, c)
			}
			if diff := cmp.Diff(want, got.At(r, c), approx); diff != "" {
				t.Fatalf("element (%d,%d) mismatch (-want +got):\n%s", r, c, diff)
			}
		}
	}
}

// mgl32 stores column-major, so our row*4+col product a*b reads back as b*a there.
func TestMul4AgreesWithMathGL(t *testing.T) {
	a := sequenceMat(0.25)
	b := sequenceMat(2)

	want := mgl32.Mat4(b).Mul4(mgl32.Mat4(a))
	got := a.Mul(b)

	if diff := cmp.Diff([16]float32(want), [16]float32(got), approx); diff != "" {
		t.Fatalf("product mismatch (-want +got):\n%s", diff)
	}
}

func TestMul4Identity(t *testing.T) {
	a := sequenceMat(7)
	id := NewIdentity()
	if got := id.Mul(a); got != a {
		t.Fatalf("identity*a = %v, want %v", got, a)
	}
	if got := a.Mul(id); got != a {
		t.Fatalf("a*identity = %v, want %v", got, a)
	}
}

func TestMul4AllowsAliasing(t *testing.T) {
	a := sequenceMat(1)
	b := sequenceMat(2)
	want := a.Mul(b)

	Mul4(a[:], a[:], b[:])
	if a != want {
		t.Fatalf("aliased product = %v, want %v", a, want)
	}
}

func TestIdentityResetsSlice(t *testing.T) {
	m := sequenceMat(3)
	Identity(m[:])
	if m != NewIdentity() {
		t.Fatalf("Identity left %v", m)
	}
}

func TestSetAndAt(t *testing.T) {
	var m Mat4
	m.Set(3, 1, 42)
	if m[13] != 42 || m.At(3, 1) != 42 {
		t.Fatalf("Set(3,1) wrote %v", m)
	}
}

func TestTransformRow(t *testing.T) {
	m := NewIdentity()
	m.Set(3, 0, 1)
	m.Set(3, 1, 2)
	m.Set(3, 2, 3)

	got := m.TransformRow([4]float32{1, 1, 1, 1})
	want := [4]float32{2, 3, 4, 1}
	if got != want {
		t.Fatalf("TransformRow = %v, want %v", got, want)
	}
}

func TestHasNaNOrInf(t *testing.T) {
	m := NewIdentity()
	if m.HasNaNOrInf() {
		t.Fatalf("identity reported non-finite")
	}
	m[6] = float32(math.Inf(1))
	if !m.HasNaNOrInf() {
		t.Fatalf("Inf not reported")
	}
	m[6] = float32(math.NaN())
	if !m.HasNaNOrInf() {
		t.Fatalf("NaN not reported")
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   mgl32.Vec3
		want mgl32.Vec3
	}{
		{"unit", mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 0, 1}},
		{"scaled", mgl32.Vec3{3, 4, 0}, mgl32.Vec3{0.6, 0.8, 0}},
		{"zero stays zero", mgl32.Vec3{}, mgl32.Vec3{}},
		{"below epsilon untouched", mgl32.Vec3{0.00005, 0, 0}, mgl32.Vec3{0.00005, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if diff := cmp.Diff([3]float32(tt.want), [3]float32(got), approx); diff != "" {
				t.Fatalf("Normalize(%v) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestBasisIsOrthonormal(t *testing.T) {
	forward := Normalize(mgl32.Vec3{1, -2, 3})
	right, up := Basis(forward, WorldUp)

	for name, v := range map[string]mgl32.Vec3{"right": right, "up": up} {
		if l := v.Len(); math.Abs(float64(l-1)) > 1e-4 {
			t.Errorf("%s length = %v, want 1", name, l)
		}
	}
	for name, d := range map[string]float32{
		"right.forward": right.Dot(forward),
		"up.forward":    up.Dot(forward),
		"right.up":      right.Dot(up),
	} {
		if math.Abs(float64(d)) > 1e-4 {
			t.Errorf("%s = %v, want 0", name, d)
		}
	}
}

func TestBasisDegenerateForward(t *testing.T) {
	right, up := Basis(mgl32.Vec3{}, WorldUp)
	if right != (mgl32.Vec3{}) || up != (mgl32.Vec3{}) {
		t.Fatalf("Basis(zero) = %v, %v, want zero vectors", right, up)
	}
}

func TestCoalesce(t *testing.T) {
	if got := Coalesce[float32](0, 0, 2.5, 3); got != 2.5 {
		t.Fatalf("Coalesce = %v, want 2.5", got)
	}
	if got := Coalesce("", ""); got != "" {
		t.Fatalf("Coalesce of zeros = %q, want empty", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float32
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{3, 4, 2, 4},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
	if got := Clamp(-3, -2, 2); got != -2 {
		t.Errorf("Clamp on ints = %v, want -2", got)
	}
}
