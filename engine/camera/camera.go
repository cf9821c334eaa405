package camera

import (
	"sync"

	"github.com/Carmen-Shannon/ogde/common"
	"github.com/go-gl/mathgl/mgl32"
)

type cameraImpl struct {
	mu *sync.Mutex

	projectionType ProjectionType

	position mgl32.Vec3
	rotation mgl32.Vec3 // pitch, yaw, roll in degrees
	forward  mgl32.Vec3
	right    mgl32.Vec3
	up       mgl32.Vec3

	fov         float32 // degrees
	aspect      float32
	near        float32
	far         float32
	orthoWidth  float32
	orthoHeight float32

	viewMatrix           common.Mat4
	projectionMatrix     common.Mat4
	viewProjectionMatrix common.Mat4

	viewDirty       bool
	projectionDirty bool
}

// Camera defines the interface for the camera transform system.
// The camera holds pose and projection settings. Mutators only record state and mark the
// affected matrices dirty; Update is the single place where matrices are recomputed.
// Read the matrices after Update, typically once per frame.
type Camera interface {
	// SetPerspective switches to a perspective projection.
	// Parameters are not validated; see Validate.
	//
	// Parameters:
	//   - fovDegrees: vertical field of view in degrees, expected in (0, 180)
	//   - aspect: viewport aspect ratio (width / height), expected > 0
	//   - near: near clipping plane distance (DefaultNear is conventional)
	//   - far: far clipping plane distance (DefaultFar is conventional)
	SetPerspective(fovDegrees, aspect, near, far float32)

	// SetOrthographic switches to an orthographic projection.
	// The near and far planes are shared with the perspective settings.
	//
	// Parameters:
	//   - width, height: size of the view volume
	//   - near: near clipping plane (DefaultOrthoNear is conventional)
	//   - far: far clipping plane (DefaultOrthoFar is conventional)
	SetOrthographic(width, height, near, far float32)

	// SetPosition sets the camera's world-space position.
	//
	// Parameters:
	//   - x, y, z: world-space coordinates
	SetPosition(x, y, z float32)

	// SetRotation sets the camera orientation from Euler angles and rebuilds the basis.
	// Roll is stored but not applied to the basis.
	//
	// Parameters:
	//   - pitch: rotation around the X axis in degrees
	//   - yaw: rotation around the Y axis in degrees
	//   - roll: rotation around the Z axis in degrees
	SetRotation(pitch, yaw, roll float32)

	// LookAt positions the camera at eye and orients it toward target.
	// The up vector only seeds the basis; the stored up is re-orthogonalized.
	// When eye equals target the basis collapses to zero vectors.
	// The stored rotation is left untouched.
	//
	// Parameters:
	//   - eyeX, eyeY, eyeZ: camera position in world space
	//   - targetX, targetY, targetZ: point to look at
	//   - upX, upY, upZ: approximate up direction (typically 0, 1, 0)
	LookAt(eyeX, eyeY, eyeZ, targetX, targetY, targetZ, upX, upY, upZ float32)

	// Update recomputes the dirty view and projection matrices and always recomputes the
	// view-projection matrix as projection * view.
	Update()

	// ViewMatrix returns the view matrix computed by the last Update.
	//
	// Returns:
	//   - common.Mat4: the view matrix
	ViewMatrix() common.Mat4

	// ProjectionMatrix returns the projection matrix computed by the last Update.
	//
	// Returns:
	//   - common.Mat4: the projection matrix
	ProjectionMatrix() common.Mat4

	// ViewProjectionMatrix returns projection * view as computed by the last Update.
	//
	// Returns:
	//   - common.Mat4: the combined view-projection matrix
	ViewProjectionMatrix() common.Mat4

	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - x, y, z: world-space position
	Position() (x, y, z float32)

	// Rotation returns the Euler angles last passed to SetRotation.
	//
	// Returns:
	//   - pitch, yaw, roll: angles in degrees
	Rotation() (pitch, yaw, roll float32)

	// Forward returns the camera's forward vector.
	//
	// Returns:
	//   - x, y, z: forward vector components
	Forward() (x, y, z float32)

	// Right returns the camera's right vector.
	//
	// Returns:
	//   - x, y, z: right vector components
	Right() (x, y, z float32)

	// Up returns the camera's up vector.
	//
	// Returns:
	//   - x, y, z: up vector components
	Up() (x, y, z float32)

	// ProjectionType returns the active projection type.
	//
	// Returns:
	//   - ProjectionType: perspective or orthographic
	ProjectionType() ProjectionType

	// Fov returns the perspective field of view in degrees.
	//
	// Returns:
	//   - float32: field of view in degrees
	Fov() float32

	// Aspect returns the perspective aspect ratio.
	//
	// Returns:
	//   - float32: width / height
	Aspect() float32

	// Near returns the near clipping plane.
	//
	// Returns:
	//   - float32: near plane
	Near() float32

	// Far returns the far clipping plane.
	//
	// Returns:
	//   - float32: far plane
	Far() float32

	// OrthoSize returns the orthographic view volume size.
	//
	// Returns:
	//   - width, height: view volume extents
	OrthoSize() (width, height float32)

	// ViewDirty reports whether the view matrix is stale.
	//
	// Returns:
	//   - bool: true if the next Update rebuilds the view matrix
	ViewDirty() bool

	// ProjectionDirty reports whether the projection matrix is stale.
	//
	// Returns:
	//   - bool: true if the next Update rebuilds the projection matrix
	ProjectionDirty() bool

	// Validate checks the current parameters for values that produce singular or
	// non-finite matrices. It never modifies the camera.
	//
	// Returns:
	//   - error: nil, or an error wrapping ErrInvalidParameter per offending value
	Validate() error
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera at the origin looking down +Z with a 45 degree, 16:9
// perspective projection (near 0.1, far 1000). All matrices start as identity except the
// projection, which is computed immediately; both dirty flags start set so the first
// Update builds everything.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:                   &sync.Mutex{},
		projectionType:       ProjectionPerspective,
		forward:              mgl32.Vec3{0, 0, 1},
		right:                mgl32.Vec3{1, 0, 0},
		up:                   mgl32.Vec3{0, 1, 0},
		fov:                  DefaultFov,
		aspect:               DefaultAspect,
		near:                 DefaultNear,
		far:                  DefaultFar,
		orthoWidth:           DefaultOrthoWidth,
		orthoHeight:          DefaultOrthoHeight,
		viewMatrix:           common.NewIdentity(),
		projectionMatrix:     common.NewIdentity(),
		viewProjectionMatrix: common.NewIdentity(),
		viewDirty:            true,
		projectionDirty:      true,
	}
	for _, option := range options {
		option(c)
	}
	c.updateProjectionMatrix()
	return c
}

func (c *cameraImpl) SetPerspective(fovDegrees, aspect, near, far float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setPerspective(fovDegrees, aspect, near, far)
}

func (c *cameraImpl) SetOrthographic(width, height, near, far float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setOrthographic(width, height, near, far)
}

func (c *cameraImpl) SetPosition(x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setPosition(x, y, z)
}

func (c *cameraImpl) SetRotation(pitch, yaw, roll float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setRotation(pitch, yaw, roll)
}

func (c *cameraImpl) LookAt(eyeX, eyeY, eyeZ, targetX, targetY, targetZ, upX, upY, upZ float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lookAt(
		mgl32.Vec3{eyeX, eyeY, eyeZ},
		mgl32.Vec3{targetX, targetY, targetZ},
		mgl32.Vec3{upX, upY, upZ},
	)
}

func (c *cameraImpl) Update() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.viewDirty {
		c.updateViewMatrix()
		c.viewDirty = false
	}
	if c.projectionDirty {
		c.updateProjectionMatrix()
		c.projectionDirty = false
	}
	c.updateViewProjectionMatrix()
}

func (c *cameraImpl) ViewMatrix() common.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() common.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix
}

func (c *cameraImpl) ViewProjectionMatrix() common.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewProjectionMatrix
}

func (c *cameraImpl) Position() (x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position[0], c.position[1], c.position[2]
}

func (c *cameraImpl) Rotation() (pitch, yaw, roll float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rotation[0], c.rotation[1], c.rotation[2]
}

func (c *cameraImpl) Forward() (x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.forward[0], c.forward[1], c.forward[2]
}

func (c *cameraImpl) Right() (x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.right[0], c.right[1], c.right[2]
}

func (c *cameraImpl) Up() (x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.up[0], c.up[1], c.up[2]
}

func (c *cameraImpl) ProjectionType() ProjectionType {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionType
}

func (c *cameraImpl) Fov() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *cameraImpl) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *cameraImpl) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraImpl) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *cameraImpl) OrthoSize() (width, height float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.orthoWidth, c.orthoHeight
}

func (c *cameraImpl) ViewDirty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewDirty
}

func (c *cameraImpl) ProjectionDirty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionDirty
}

// --- internal helpers, caller must hold the mutex ---

func (c *cameraImpl) setPerspective(fovDegrees, aspect, near, far float32) {
	c.projectionType = ProjectionPerspective
	c.fov = fovDegrees
	c.aspect = aspect
	c.near = near
	c.far = far
	c.projectionDirty = true
}

func (c *cameraImpl) setOrthographic(width, height, near, far float32) {
	c.projectionType = ProjectionOrthographic
	c.orthoWidth = width
	c.orthoHeight = height
	c.near = near
	c.far = far
	c.projectionDirty = true
}

func (c *cameraImpl) setPosition(x, y, z float32) {
	c.position = mgl32.Vec3{x, y, z}
	c.viewDirty = true
}

// setRotation rebuilds the basis from pitch and yaw against the fixed world up axis.
// Looking straight up or down leaves right and up near zero and unnormalized.
func (c *cameraImpl) setRotation(pitch, yaw, roll float32) {
	c.rotation = mgl32.Vec3{pitch, yaw, roll}
	c.forward = common.Normalize(eulerForward(pitch, yaw))
	c.right, c.up = common.Basis(c.forward, common.WorldUp)
	c.viewDirty = true
}

func (c *cameraImpl) lookAt(eye, target, up mgl32.Vec3) {
	c.position = eye
	c.forward = common.Normalize(target.Sub(eye))
	c.right, c.up = common.Basis(c.forward, up)
	c.viewDirty = true
}

func (c *cameraImpl) updateViewMatrix() {
	c.viewMatrix = buildViewMatrix(c.position, c.right, c.up, c.forward)
}

func (c *cameraImpl) updateProjectionMatrix() {
	if c.projectionType == ProjectionPerspective {
		c.projectionMatrix = buildPerspective(c.fov, c.aspect, c.near, c.far)
		return
	}
	c.projectionMatrix = buildOrthographic(c.orthoWidth, c.orthoHeight, c.near, c.far)
}

func (c *cameraImpl) updateViewProjectionMatrix() {
	common.Mul4(c.viewProjectionMatrix[:], c.projectionMatrix[:], c.viewMatrix[:])
}
