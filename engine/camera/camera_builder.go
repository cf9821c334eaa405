package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// CameraBuilderOption is a functional option for configuring a Camera.
type CameraBuilderOption func(*cameraImpl)

// WithPerspective configures a perspective projection.
//
// Parameters:
//   - fovDegrees: vertical field of view in degrees
//   - aspect: viewport aspect ratio (width / height)
//   - near: near clipping plane distance
//   - far: far clipping plane distance
//
// Returns:
//   - CameraBuilderOption: functional option to set the perspective projection
func WithPerspective(fovDegrees, aspect, near, far float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.setPerspective(fovDegrees, aspect, near, far)
	}
}

// WithOrthographic configures an orthographic projection.
//
// Parameters:
//   - width, height: size of the view volume
//   - near: near clipping plane
//   - far: far clipping plane
//
// Returns:
//   - CameraBuilderOption: functional option to set the orthographic projection
func WithOrthographic(width, height, near, far float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.setOrthographic(width, height, near, far)
	}
}

// WithPosition sets the initial world-space position.
//
// Parameters:
//   - x, y, z: world-space coordinates
//
// Returns:
//   - CameraBuilderOption: functional option to set the position
func WithPosition(x, y, z float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.setPosition(x, y, z)
	}
}

// WithRotation sets the initial orientation from Euler angles in degrees.
//
// Parameters:
//   - pitch, yaw, roll: angles in degrees (roll is stored only)
//
// Returns:
//   - CameraBuilderOption: functional option to set the rotation
func WithRotation(pitch, yaw, roll float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.setRotation(pitch, yaw, roll)
	}
}

// WithLookAt places the camera at eye looking toward target with a +Y up hint.
// Options apply in order, so a later WithPosition or WithRotation overrides part of it.
//
// Parameters:
//   - eyeX, eyeY, eyeZ: camera position
//   - targetX, targetY, targetZ: look-at point
//
// Returns:
//   - CameraBuilderOption: functional option to aim the camera
func WithLookAt(eyeX, eyeY, eyeZ, targetX, targetY, targetZ float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.lookAt(mgl32.Vec3{eyeX, eyeY, eyeZ}, mgl32.Vec3{targetX, targetY, targetZ}, mgl32.Vec3{0, 1, 0})
	}
}
