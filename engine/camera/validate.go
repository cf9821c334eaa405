package camera

import (
	"errors"
	"fmt"

	"github.com/Carmen-Shannon/ogde/common"
	"github.com/go-gl/mathgl/mgl32"
)

// ErrInvalidParameter is wrapped by every error Validate reports.
// Mutators never return it; they accept any value and let the matrices go non-finite.
var ErrInvalidParameter = errors.New("camera: invalid parameter")

func (c *cameraImpl) Validate() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var errs []error
	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidParameter}, args...)...))
	}

	switch c.projectionType {
	case ProjectionPerspective:
		if c.fov <= 0 || c.fov >= 180 {
			invalid("fov %g outside (0, 180)", c.fov)
		}
		if c.aspect <= 0 {
			invalid("aspect ratio %g must be positive", c.aspect)
		}
		if c.near <= 0 {
			invalid("perspective near plane %g must be positive", c.near)
		}
	case ProjectionOrthographic:
		if c.orthoWidth <= 0 || c.orthoHeight <= 0 {
			invalid("orthographic size %gx%g must be positive", c.orthoWidth, c.orthoHeight)
		}
	}
	if c.near >= c.far {
		invalid("near plane %g must be less than far plane %g", c.near, c.far)
	}

	for _, axis := range []struct {
		name string
		v    mgl32.Vec3
	}{
		{"forward", c.forward},
		{"right", c.right},
		{"up", c.up},
	} {
		if l := axis.v.Len(); l <= common.NormalizeEpsilon {
			invalid("%s vector is degenerate (length %g)", axis.name, l)
		}
	}

	return errors.Join(errs...)
}
