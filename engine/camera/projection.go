package camera

// ProjectionType selects the algorithm Update uses to build the projection matrix.
type ProjectionType int

const (
	// ProjectionPerspective is a left-handed perspective projection with depth in [0, 1].
	ProjectionPerspective ProjectionType = iota
	// ProjectionOrthographic is an orthographic projection for 2D and UI rendering.
	ProjectionOrthographic
)

// String returns a readable name for the projection type.
//
// Returns:
//   - string: "perspective", "orthographic" or "unknown"
func (p ProjectionType) String() string {
	switch p {
	case ProjectionPerspective:
		return "perspective"
	case ProjectionOrthographic:
		return "orthographic"
	default:
		return "unknown"
	}
}

// Default projection parameters applied by NewCamera and used by callers that want the
// conventional near/far planes for each projection type.
const (
	DefaultFov         float32 = 45.0
	DefaultAspect      float32 = 16.0 / 9.0
	DefaultNear        float32 = 0.1
	DefaultFar         float32 = 1000.0
	DefaultOrthoWidth  float32 = 800.0
	DefaultOrthoHeight float32 = 600.0
	DefaultOrthoNear   float32 = -1.0
	DefaultOrthoFar    float32 = 1.0
)
