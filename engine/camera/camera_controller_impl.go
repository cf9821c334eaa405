package camera

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/ogde/common"
	"github.com/go-gl/mathgl/mgl32"
)

// cameraControllerImpl is the single implementation of CameraController.
// Orbit state (target, radius, azimuth, elevation) and fly state (pitch, yaw) are both kept;
// position is shared and, in orbit mode, recomputed from the orbit state whenever an orbit
// parameter changes.
type cameraControllerImpl struct {
	mu *sync.Mutex

	mode ControllerMode

	position mgl32.Vec3
	target   mgl32.Vec3

	// Spherical coordinates (offset from target)
	radius    float32
	azimuth   float32 // Horizontal angle around Y axis, radians
	elevation float32 // Vertical angle from horizontal plane, radians

	minRadius    float32
	maxRadius    float32
	minElevation float32
	maxElevation float32

	// Fly angles in degrees
	pitch    float32
	yaw      float32
	maxPitch float32

	orbitSpeed       float32
	mouseSensitivity float32
	zoomSpeed        float32
	moveSpeed        float32
}

var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a new camera controller in orbit mode, 10 units from the
// origin at a 30 degree elevation.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		mu:   &sync.Mutex{},
		mode: ControllerModeOrbit,

		radius:    10.0,
		azimuth:   0.0,
		elevation: float32(math.Pi / 6),

		minRadius:    0.5,
		maxRadius:    1000.0,
		minElevation: -float32(math.Pi/2 - 0.1),
		maxElevation: float32(math.Pi/2 - 0.1),

		maxPitch: 89.0,

		orbitSpeed:       0.03,
		mouseSensitivity: 0.005,
		zoomSpeed:        1.0,
		moveSpeed:        1.0,
	}

	for _, option := range options {
		option(cc)
	}

	cc.radius = common.Clamp(cc.radius, cc.minRadius, cc.maxRadius)
	cc.elevation = common.Clamp(cc.elevation, cc.minElevation, cc.maxElevation)
	cc.pitch = common.Clamp(cc.pitch, -cc.maxPitch, cc.maxPitch)
	if cc.mode == ControllerModeOrbit {
		cc.updatePosition()
	}
	return cc
}

// --- internal helpers ---

func radToDeg(r float64) float32 {
	return mgl32.RadToDeg(float32(r))
}

// updatePosition recomputes the position from the target and spherical coordinates.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) updatePosition() {
	cosElev := float32(math.Cos(float64(cc.elevation)))
	sinElev := float32(math.Sin(float64(cc.elevation)))
	cosAzim := float32(math.Cos(float64(cc.azimuth)))
	sinAzim := float32(math.Sin(float64(cc.azimuth)))

	cc.position = cc.target.Add(mgl32.Vec3{
		cc.radius * cosElev * sinAzim,
		cc.radius * sinElev,
		cc.radius * cosElev * cosAzim,
	})
}

// applyOrbit places the position on the orbit sphere in orbit mode. In fly mode orbit
// parameters are only stored and the fly position is left alone.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) applyOrbit() {
	if cc.mode == ControllerModeOrbit {
		cc.updatePosition()
	}
}

// localAxes returns the basis the camera will end up with after Apply, derived with the
// same routine the camera uses. Caller must hold the mutex.
func (cc *cameraControllerImpl) localAxes() (right, up, forward mgl32.Vec3) {
	if cc.mode == ControllerModeFly {
		forward = common.Normalize(eulerForward(cc.pitch, cc.yaw))
	} else {
		forward = common.Normalize(cc.target.Sub(cc.position))
	}
	right, up = common.Basis(forward, common.WorldUp)
	return right, up, forward
}

// translate shifts the position, and in orbit mode the target, by offset.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) translate(offset mgl32.Vec3) {
	cc.position = cc.position.Add(offset)
	if cc.mode == ControllerModeOrbit {
		cc.target = cc.target.Add(offset)
	}
}

// --- CameraController shared methods ---

func (cc *cameraControllerImpl) Mode() ControllerMode {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.mode
}

func (cc *cameraControllerImpl) SetMode(mode ControllerMode) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	if mode == cc.mode {
		return
	}

	switch mode {
	case ControllerModeFly:
		f := common.Normalize(cc.target.Sub(cc.position))
		cc.pitch = common.Clamp(radToDeg(math.Asin(float64(common.Clamp(f[1], -1, 1)))), -cc.maxPitch, cc.maxPitch)
		cc.yaw = radToDeg(math.Atan2(float64(f[0]), float64(f[2])))
	case ControllerModeOrbit:
		f := common.Normalize(eulerForward(cc.pitch, cc.yaw))
		cc.target = cc.position.Add(f.Mul(cc.radius))
		cc.elevation = common.Clamp(float32(math.Asin(float64(common.Clamp(-f[1], -1, 1)))), cc.minElevation, cc.maxElevation)
		cc.azimuth = float32(math.Atan2(float64(-f[0]), float64(-f[2])))
		cc.updatePosition()
	default:
		return
	}
	cc.mode = mode
}

func (cc *cameraControllerImpl) Position() (x, y, z float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.position[0], cc.position[1], cc.position[2]
}

func (cc *cameraControllerImpl) MoveForward(delta float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	_, _, forward := cc.localAxes()
	cc.translate(forward.Mul(delta * cc.moveSpeed))
}

func (cc *cameraControllerImpl) MoveRight(delta float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	right, _, _ := cc.localAxes()
	cc.translate(right.Mul(delta * cc.moveSpeed))
}

func (cc *cameraControllerImpl) MoveUp(delta float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.translate(common.WorldUp.Mul(delta * cc.moveSpeed))
}

func (cc *cameraControllerImpl) MoveSpeed() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.moveSpeed
}

func (cc *cameraControllerImpl) Apply(c Camera) {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	p := cc.position
	if cc.mode == ControllerModeFly {
		c.SetPosition(p[0], p[1], p[2])
		c.SetRotation(cc.pitch, cc.yaw, 0)
		return
	}
	t := cc.target
	c.LookAt(p[0], p[1], p[2], t[0], t[1], t[2], 0, 1, 0)
}

// --- orbitCameraController implementation ---

func (cc *cameraControllerImpl) OrbitLeft() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.azimuth -= cc.orbitSpeed
	cc.applyOrbit()
}

func (cc *cameraControllerImpl) OrbitRight() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.azimuth += cc.orbitSpeed
	cc.applyOrbit()
}

func (cc *cameraControllerImpl) OrbitUp() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.elevation = common.Clamp(cc.elevation+cc.orbitSpeed, cc.minElevation, cc.maxElevation)
	cc.applyOrbit()
}

func (cc *cameraControllerImpl) OrbitDown() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.elevation = common.Clamp(cc.elevation-cc.orbitSpeed, cc.minElevation, cc.maxElevation)
	cc.applyOrbit()
}

func (cc *cameraControllerImpl) Orbit(dx, dy float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.azimuth += dx * cc.mouseSensitivity
	cc.elevation = common.Clamp(cc.elevation+dy*cc.mouseSensitivity, cc.minElevation, cc.maxElevation)
	cc.applyOrbit()
}

func (cc *cameraControllerImpl) Zoom(delta float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.radius = common.Clamp(cc.radius-delta*cc.zoomSpeed, cc.minRadius, cc.maxRadius)
	cc.applyOrbit()
}

func (cc *cameraControllerImpl) Target() (x, y, z float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.target[0], cc.target[1], cc.target[2]
}

func (cc *cameraControllerImpl) SetTarget(x, y, z float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.target = mgl32.Vec3{x, y, z}
	cc.applyOrbit()
}

func (cc *cameraControllerImpl) Radius() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.radius
}

func (cc *cameraControllerImpl) SetRadius(radius float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.radius = common.Clamp(radius, cc.minRadius, cc.maxRadius)
	cc.applyOrbit()
}

func (cc *cameraControllerImpl) Azimuth() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.azimuth
}

func (cc *cameraControllerImpl) SetAzimuth(azimuth float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.azimuth = azimuth
	cc.applyOrbit()
}

func (cc *cameraControllerImpl) Elevation() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.elevation
}

func (cc *cameraControllerImpl) SetElevation(elevation float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.elevation = common.Clamp(elevation, cc.minElevation, cc.maxElevation)
	cc.applyOrbit()
}

// --- flyCameraController implementation ---

func (cc *cameraControllerImpl) Look(dx, dy float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	sens := radToDeg(float64(cc.mouseSensitivity))
	cc.yaw += dx * sens
	cc.pitch = common.Clamp(cc.pitch-dy*sens, -cc.maxPitch, cc.maxPitch)
}

func (cc *cameraControllerImpl) Pitch() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.pitch
}

func (cc *cameraControllerImpl) Yaw() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.yaw
}

func (cc *cameraControllerImpl) SetAngles(pitch, yaw float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.pitch = common.Clamp(pitch, -cc.maxPitch, cc.maxPitch)
	cc.yaw = yaw
}

func (cc *cameraControllerImpl) MaxPitch() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.maxPitch
}
