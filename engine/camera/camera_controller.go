package camera

// ControllerMode selects how a CameraController drives a Camera.
type ControllerMode int

const (
	// ControllerModeOrbit circles a target point and aims the camera with LookAt.
	ControllerModeOrbit ControllerMode = iota
	// ControllerModeFly moves freely and aims the camera with Euler angles via SetRotation.
	ControllerModeFly
)

// String returns a readable name for the controller mode.
//
// Returns:
//   - string: "orbit", "fly" or "unknown"
func (m ControllerMode) String() string {
	switch m {
	case ControllerModeOrbit:
		return "orbit"
	case ControllerModeFly:
		return "fly"
	default:
		return "unknown"
	}
}

// CameraController defines the union interface for camera control systems.
// Controllers own positional state and write it into a Camera through Apply. The camera
// itself is only marked dirty; callers still run Camera.Update once per frame.
// Embeds orbitCameraController and flyCameraController so either style can be driven from
// a single controller instance; Mode decides which state Apply uses.
type CameraController interface {
	orbitCameraController
	flyCameraController

	// Mode returns the active control mode.
	//
	// Returns:
	//   - ControllerMode: orbit or fly
	Mode() ControllerMode

	// SetMode switches the control mode, carrying the current view over so the camera does
	// not jump. Entering fly mode derives pitch and yaw from the orbit direction; entering
	// orbit mode places the target Radius units ahead of the fly position.
	//
	// Parameters:
	//   - mode: the mode to switch to
	SetMode(mode ControllerMode)

	// Position returns the controller's world-space position.
	//
	// Returns:
	//   - x, y, z: world-space camera position
	Position() (x, y, z float32)

	// MoveForward translates along the active mode's forward axis.
	// In orbit mode the target moves with the position, preserving the orbit.
	//
	// Parameters:
	//   - delta: distance scaled by MoveSpeed
	MoveForward(delta float32)

	// MoveRight translates along the active mode's right axis.
	//
	// Parameters:
	//   - delta: distance scaled by MoveSpeed
	MoveRight(delta float32)

	// MoveUp translates along the world up axis.
	//
	// Parameters:
	//   - delta: distance scaled by MoveSpeed
	MoveUp(delta float32)

	// MoveSpeed returns the translation speed multiplier.
	//
	// Returns:
	//   - float32: multiplier for Move* input
	MoveSpeed() float32

	// Apply writes the controller state into the camera.
	// Orbit mode calls LookAt(position, target, +Y); fly mode calls SetPosition and
	// SetRotation(pitch, yaw, 0).
	//
	// Parameters:
	//   - c: the camera to drive
	Apply(c Camera)
}

// orbitCameraController defines orbit-specific control methods.
// Provides third-person orbit controls using spherical coordinates (radius, azimuth, elevation)
// relative to the target/pivot point. In fly mode these calls only update the stored orbit
// parameters; the position does not move.
type orbitCameraController interface {
	// OrbitLeft rotates the camera left around the target by one orbit speed step.
	OrbitLeft()

	// OrbitRight rotates the camera right around the target by one orbit speed step.
	OrbitRight()

	// OrbitUp tilts the camera upward by one orbit speed step, clamped to max elevation.
	OrbitUp()

	// OrbitDown tilts the camera downward by one orbit speed step, clamped to min elevation.
	OrbitDown()

	// Orbit rotates by mouse deltas scaled by MouseSensitivity.
	//
	// Parameters:
	//   - dx: horizontal delta, added to azimuth
	//   - dy: vertical delta, added to elevation
	Orbit(dx, dy float32)

	// Zoom adjusts the orbit radius. Positive delta zooms in.
	//
	// Parameters:
	//   - delta: zoom amount scaled by ZoomSpeed
	Zoom(delta float32)

	// Target returns the look-at point.
	//
	// Returns:
	//   - x, y, z: world-space target position
	Target() (x, y, z float32)

	// SetTarget sets the look-at point and recomputes the orbit position.
	//
	// Parameters:
	//   - x, y, z: world-space coordinates
	SetTarget(x, y, z float32)

	// Radius returns the current orbit radius.
	//
	// Returns:
	//   - float32: distance from target
	Radius() float32

	// SetRadius sets the orbit radius, clamped to the radius limits.
	//
	// Parameters:
	//   - radius: new distance from target
	SetRadius(radius float32)

	// Azimuth returns the horizontal angle around the Y axis.
	//
	// Returns:
	//   - float32: azimuth in radians (0 = +Z side of the target)
	Azimuth() float32

	// SetAzimuth sets the horizontal angle and recomputes the orbit position.
	//
	// Parameters:
	//   - azimuth: angle in radians
	SetAzimuth(azimuth float32)

	// Elevation returns the vertical angle above the horizontal plane.
	//
	// Returns:
	//   - float32: elevation in radians
	Elevation() float32

	// SetElevation sets the vertical angle, clamped to the elevation limits.
	//
	// Parameters:
	//   - elevation: angle in radians
	SetElevation(elevation float32)
}

// flyCameraController defines free-look control methods.
// Angles are kept in degrees to match Camera.SetRotation.
type flyCameraController interface {
	// Look turns the view by mouse deltas scaled by MouseSensitivity.
	// Pitch is clamped to plus or minus MaxPitch so the basis never degenerates.
	//
	// Parameters:
	//   - dx: horizontal delta, added to yaw
	//   - dy: vertical delta, subtracted from pitch (screen y grows downward)
	Look(dx, dy float32)

	// Pitch returns the fly pitch.
	//
	// Returns:
	//   - float32: pitch in degrees
	Pitch() float32

	// Yaw returns the fly yaw.
	//
	// Returns:
	//   - float32: yaw in degrees
	Yaw() float32

	// SetAngles sets pitch (clamped) and yaw directly.
	//
	// Parameters:
	//   - pitch, yaw: angles in degrees
	SetAngles(pitch, yaw float32)

	// MaxPitch returns the pitch clamp.
	//
	// Returns:
	//   - float32: maximum absolute pitch in degrees
	MaxPitch() float32
}
