// Package input translates polled GLFW keyboard and cursor state into camera controller
// calls. It only reads state; window creation and event pumping belong to the caller.
package input

import (
	"github.com/Carmen-Shannon/ogde/engine/camera"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action is a camera control bound to a key.
type Action int

const (
	ActionNone Action = iota
	ActionMoveForward
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionOrbitLeft
	ActionOrbitRight
	ActionOrbitUp
	ActionOrbitDown
	ActionZoomIn
	ActionZoomOut
	ActionToggleMode
)

// KeyPoller reports the last known state of a key. *glfw.Window satisfies it.
type KeyPoller interface {
	GetKey(key glfw.Key) glfw.Action
}

// CursorPoller reports the cursor position in screen coordinates. *glfw.Window satisfies it.
type CursorPoller interface {
	GetCursorPos() (x, y float64)
}

var (
	_ KeyPoller    = (*glfw.Window)(nil)
	_ CursorPoller = (*glfw.Window)(nil)
)

// Bindings maps keys to camera actions.
type Bindings map[glfw.Key]Action

// DefaultBindings returns WASD movement, Space/Left Shift for vertical movement, arrow keys
// for orbiting, Q/E for zoom and Tab to switch between orbit and fly mode.
//
// Returns:
//   - Bindings: a fresh binding map the caller may modify
func DefaultBindings() Bindings {
	return Bindings{
		glfw.KeyW:         ActionMoveForward,
		glfw.KeyS:         ActionMoveBackward,
		glfw.KeyA:         ActionMoveLeft,
		glfw.KeyD:         ActionMoveRight,
		glfw.KeySpace:     ActionMoveUp,
		glfw.KeyLeftShift: ActionMoveDown,
		glfw.KeyLeft:      ActionOrbitLeft,
		glfw.KeyRight:     ActionOrbitRight,
		glfw.KeyUp:        ActionOrbitUp,
		glfw.KeyDown:      ActionOrbitDown,
		glfw.KeyE:         ActionZoomIn,
		glfw.KeyQ:         ActionZoomOut,
		glfw.KeyTab:       ActionToggleMode,
	}
}

// Driver polls input once per tick and forwards it to a CameraController.
// Not safe for concurrent use; poll from the goroutine that owns the window.
type Driver struct {
	keys     KeyPoller
	cursor   CursorPoller
	bindings Bindings

	lastX, lastY float64
	hasCursor    bool
	toggleHeld   bool
}

// DriverOption is a functional option for configuring a Driver.
type DriverOption func(*Driver)

// WithBindings replaces the default key bindings.
//
// Parameters:
//   - b: the bindings to use
//
// Returns:
//   - DriverOption: functional option to set the bindings
func WithBindings(b Bindings) DriverOption {
	return func(d *Driver) {
		d.bindings = b
	}
}

// WithCursor enables mouse look/orbit from cursor movement.
//
// Parameters:
//   - c: the cursor source, usually the same *glfw.Window as the key source
//
// Returns:
//   - DriverOption: functional option to set the cursor source
func WithCursor(c CursorPoller) DriverOption {
	return func(d *Driver) {
		d.cursor = c
	}
}

// NewDriver creates a Driver reading keys from keys with DefaultBindings.
//
// Parameters:
//   - keys: key state source
//   - options: functional options to configure the driver
//
// Returns:
//   - *Driver: the newly created driver
func NewDriver(keys KeyPoller, options ...DriverOption) *Driver {
	d := &Driver{
		keys:     keys,
		bindings: DefaultBindings(),
	}
	for _, option := range options {
		option(d)
	}
	return d
}

// Held reports which actions have at least one bound key pressed or repeating.
//
// Returns:
//   - map[Action]bool: the held actions
func (d *Driver) Held() map[Action]bool {
	held := make(map[Action]bool)
	for key, action := range d.bindings {
		switch d.keys.GetKey(key) {
		case glfw.Press, glfw.Repeat:
			held[action] = true
		}
	}
	return held
}

// Poll applies the current input to ctrl. Movement and zoom scale with dt; orbit keys step
// once per poll like the controller's keyboard orbit. Zoom and orbit keys are ignored in fly
// mode. Mode toggling fires on key press only, not while the key stays down. Cursor deltas turn the view in fly mode and orbit in orbit mode.
//
// Parameters:
//   - ctrl: the controller to drive
//   - dt: seconds since the previous poll
func (d *Driver) Poll(ctrl camera.CameraController, dt float32) {
	held := d.Held()

	if held[ActionToggleMode] && !d.toggleHeld {
		if ctrl.Mode() == camera.ControllerModeOrbit {
			ctrl.SetMode(camera.ControllerModeFly)
		} else {
			ctrl.SetMode(camera.ControllerModeOrbit)
		}
	}
	d.toggleHeld = held[ActionToggleMode]

	if forward := axis(held, ActionMoveForward, ActionMoveBackward); forward != 0 {
		ctrl.MoveForward(forward * dt)
	}
	if right := axis(held, ActionMoveRight, ActionMoveLeft); right != 0 {
		ctrl.MoveRight(right * dt)
	}
	if up := axis(held, ActionMoveUp, ActionMoveDown); up != 0 {
		ctrl.MoveUp(up * dt)
	}
	if ctrl.Mode() == camera.ControllerModeOrbit {
		d.pollOrbit(ctrl, held, dt)
	}

	d.pollCursor(ctrl)
}

// pollOrbit applies zoom and orbit keys; they have no meaning in fly mode.
func (d *Driver) pollOrbit(ctrl camera.CameraController, held map[Action]bool, dt float32) {
	if zoom := axis(held, ActionZoomIn, ActionZoomOut); zoom != 0 {
		ctrl.Zoom(zoom * dt)
	}
	if held[ActionOrbitLeft] {
		ctrl.OrbitLeft()
	}
	if held[ActionOrbitRight] {
		ctrl.OrbitRight()
	}
	if held[ActionOrbitUp] {
		ctrl.OrbitUp()
	}
	if held[ActionOrbitDown] {
		ctrl.OrbitDown()
	}
}

func (d *Driver) pollCursor(ctrl camera.CameraController) {
	if d.cursor == nil {
		return
	}
	x, y := d.cursor.GetCursorPos()
	if !d.hasCursor {
		d.lastX, d.lastY, d.hasCursor = x, y, true
		return
	}
	dx, dy := float32(x-d.lastX), float32(y-d.lastY)
	d.lastX, d.lastY = x, y
	if dx == 0 && dy == 0 {
		return
	}
	if ctrl.Mode() == camera.ControllerModeFly {
		ctrl.Look(dx, dy)
		return
	}
	ctrl.Orbit(dx, -dy)
}

// axis folds a pair of opposing actions into -1, 0 or 1.
func axis(held map[Action]bool, positive, negative Action) float32 {
	var v float32
	if held[positive] {
		v++
	}
	if held[negative] {
		v--
	}
	return v
}
