package camera

import (
	"math"

	"github.com/Carmen-Shannon/ogde/common"
	"github.com/go-gl/mathgl/mgl32"
)

// eulerForward converts pitch and yaw (degrees) into a forward direction:
// (cos(pitch)*sin(yaw), sin(pitch), cos(pitch)*cos(yaw)). Yaw 0 looks down +Z.
func eulerForward(pitch, yaw float32) mgl32.Vec3 {
	p := float64(mgl32.DegToRad(pitch))
	y := float64(mgl32.DegToRad(yaw))
	cp := float32(math.Cos(p))
	return mgl32.Vec3{
		cp * float32(math.Sin(y)),
		float32(math.Sin(p)),
		cp * float32(math.Cos(y)),
	}
}

// buildViewMatrix writes the inverse of the camera's world transform.
// The basis is orthonormal, so the rotation inverts by transposition and the translation
// by projecting the position onto each axis.
func buildViewMatrix(position, right, up, forward mgl32.Vec3) common.Mat4 {
	var m common.Mat4
	m[0], m[1], m[2], m[3] = right[0], up[0], forward[0], 0
	m[4], m[5], m[6], m[7] = right[1], up[1], forward[1], 0
	m[8], m[9], m[10], m[11] = right[2], up[2], forward[2], 0

	m[12] = -right.Dot(position)
	m[13] = -up.Dot(position)
	m[14] = -forward.Dot(position)
	m[15] = 1
	return m
}

// buildPerspective writes a left-handed perspective projection mapping view depth
// near..far onto [0, 1]. No parameter checks; a zero or 180 degree fov, a zero aspect,
// or near == far yields Inf/NaN entries.
func buildPerspective(fovDegrees, aspect, near, far float32) common.Mat4 {
	tanHalfFov := float32(math.Tan(float64(mgl32.DegToRad(fovDegrees) / 2)))

	var m common.Mat4
	m[0] = 1 / (aspect * tanHalfFov)
	m[5] = 1 / tanHalfFov
	m[10] = far / (far - near)
	m[11] = 1
	m[14] = -(far * near) / (far - near)
	return m
}

// buildOrthographic writes an orthographic projection centered on the view axis with
// depth near..far mapped onto [0, 1].
func buildOrthographic(width, height, near, far float32) common.Mat4 {
	var m common.Mat4
	m[0] = 2 / width
	m[5] = 2 / height
	m[10] = 1 / (far - near)
	m[14] = -near / (far - near)
	m[15] = 1
	return m
}
