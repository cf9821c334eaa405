package input

import (
	"testing"

	"github.com/Carmen-Shannon/ogde/engine/camera"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

type fakeKeys map[glfw.Key]glfw.Action

func (k fakeKeys) GetKey(key glfw.Key) glfw.Action {
	return k[key]
}

type fakeCursor struct {
	x, y float64
}

func (c *fakeCursor) GetCursorPos() (float64, float64) {
	return c.x, c.y
}

func position(cc camera.CameraController) mgl32.Vec3 {
	x, y, z := cc.Position()
	return mgl32.Vec3{x, y, z}
}

func TestHeldTreatsRepeatAsHeld(t *testing.T) {
	keys := fakeKeys{glfw.KeyW: glfw.Press, glfw.KeyD: glfw.Repeat, glfw.KeyS: glfw.Release}
	d := NewDriver(keys)

	want := map[Action]bool{ActionMoveForward: true, ActionMoveRight: true}
	if diff := cmp.Diff(want, d.Held()); diff != "" {
		t.Fatalf("Held mismatch (-want +got):\n%s", diff)
	}
}

func TestPollMovesFlyController(t *testing.T) {
	keys := fakeKeys{glfw.KeyW: glfw.Press}
	d := NewDriver(keys)
	cc := camera.NewCameraController(
		camera.WithControllerMode(camera.ControllerModeFly),
		camera.WithStartPosition(0, 0, 0),
		camera.WithMoveSpeed(2),
	)

	d.Poll(cc, 0.5)
	want := mgl32.Vec3{0, 0, 1}
	if diff := cmp.Diff([3]float32(want), [3]float32(position(cc)), cmpopts.EquateApprox(0, 1e-5)); diff != "" {
		t.Fatalf("position mismatch (-want +got):\n%s", diff)
	}

	keys[glfw.KeyW] = glfw.Press
	keys[glfw.KeyS] = glfw.Press
	d.Poll(cc, 0.5)
	if diff := cmp.Diff([3]float32(want), [3]float32(position(cc)), cmpopts.EquateApprox(0, 1e-5)); diff != "" {
		t.Fatalf("opposing keys should cancel (-want +got):\n%s", diff)
	}
}

func TestPollToggleFiresOnPressOnly(t *testing.T) {
	keys := fakeKeys{}
	d := NewDriver(keys)
	cc := camera.NewCameraController()

	keys[glfw.KeyTab] = glfw.Press
	d.Poll(cc, 0.016)
	if cc.Mode() != camera.ControllerModeFly {
		t.Fatalf("mode after press = %v, want fly", cc.Mode())
	}
	d.Poll(cc, 0.016)
	if cc.Mode() != camera.ControllerModeFly {
		t.Fatalf("holding Tab toggled again")
	}

	keys[glfw.KeyTab] = glfw.Release
	d.Poll(cc, 0.016)
	keys[glfw.KeyTab] = glfw.Press
	d.Poll(cc, 0.016)
	if cc.Mode() != camera.ControllerModeOrbit {
		t.Fatalf("mode after second press = %v, want orbit", cc.Mode())
	}
}

func TestPollOrbitKeysStepOncePerPoll(t *testing.T) {
	keys := fakeKeys{glfw.KeyRight: glfw.Press}
	d := NewDriver(keys)
	cc := camera.NewCameraController(camera.WithOrbitSpeed(0.25))

	d.Poll(cc, 1)
	d.Poll(cc, 1)
	if got := cc.Azimuth(); got != 0.5 {
		t.Fatalf("azimuth = %v, want 0.5", got)
	}
}

func TestPollCursorLooksInFlyMode(t *testing.T) {
	cursor := &fakeCursor{x: 100, y: 100}
	d := NewDriver(fakeKeys{}, WithCursor(cursor))
	cc := camera.NewCameraController(camera.WithControllerMode(camera.ControllerModeFly))

	d.Poll(cc, 0.016)
	if cc.Yaw() != 0 || cc.Pitch() != 0 {
		t.Fatalf("first cursor read must only record the position")
	}

	cursor.x = 110
	d.Poll(cc, 0.016)
	if cc.Yaw() <= 0 {
		t.Fatalf("yaw = %v, want positive after moving right", cc.Yaw())
	}
	if cc.Pitch() != 0 {
		t.Fatalf("pitch = %v, want 0", cc.Pitch())
	}
}

func TestPollCursorOrbitsInOrbitMode(t *testing.T) {
	cursor := &fakeCursor{}
	d := NewDriver(fakeKeys{}, WithCursor(cursor))
	cc := camera.NewCameraController()
	elev := cc.Elevation()

	d.Poll(cc, 0.016)
	cursor.y = -20
	d.Poll(cc, 0.016)
	if cc.Elevation() <= elev {
		t.Fatalf("elevation = %v, want above %v after moving the cursor up", cc.Elevation(), elev)
	}
}

func TestWithBindingsReplacesDefaults(t *testing.T) {
	keys := fakeKeys{glfw.KeyW: glfw.Press, glfw.KeyI: glfw.Press}
	d := NewDriver(keys, WithBindings(Bindings{glfw.KeyI: ActionMoveForward}))

	held := d.Held()
	if !held[ActionMoveForward] || len(held) != 1 {
		t.Fatalf("Held = %v, want only move forward", held)
	}
}

func TestPollIgnoresOrbitKeysInFlyMode(t *testing.T) {
	keys := fakeKeys{
		glfw.KeyQ:     glfw.Press,
		glfw.KeyE:     glfw.Release,
		glfw.KeyLeft:  glfw.Press,
		glfw.KeyUp:    glfw.Press,
		glfw.KeyRight: glfw.Repeat,
	}
	d := NewDriver(keys)
	cc := camera.NewCameraController(
		camera.WithControllerMode(camera.ControllerModeFly),
		camera.WithStartPosition(100, 0, 0),
	)
	radius, azimuth, elevation := cc.Radius(), cc.Azimuth(), cc.Elevation()

	for range 10 {
		d.Poll(cc, 0.016)
	}

	want := mgl32.Vec3{100, 0, 0}
	if diff := cmp.Diff([3]float32(want), [3]float32(position(cc)), cmpopts.EquateApprox(0, 1e-5)); diff != "" {
		t.Fatalf("fly position moved (-want +got):\n%s", diff)
	}
	if cc.Radius() != radius || cc.Azimuth() != azimuth || cc.Elevation() != elevation {
		t.Fatalf("orbit state changed in fly mode: radius %v azimuth %v elevation %v",
			cc.Radius(), cc.Azimuth(), cc.Elevation())
	}
}
