package camera

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
)

var (
	// ErrCameraExists is returned when a camera name is already registered on a Rig.
	ErrCameraExists = errors.New("camera: name already registered")
	// ErrCameraNotFound is returned when a camera name is not registered on a Rig.
	ErrCameraNotFound = errors.New("camera: name not registered")
)

// Rig is a named set of independent cameras updated together once per frame.
// Each camera is touched by exactly one worker per UpdateAll, so cameras never share
// mutable state across goroutines.
type Rig struct {
	mu *sync.Mutex

	cameras map[string]Camera
	order   []string
	active  string

	// workers bounds the pool used by UpdateAll; rigs with fewer cameras than
	// parallelThreshold update inline.
	workers           int
	parallelThreshold int
	pool              worker.DynamicWorkerPool
	closed            bool
}

// RigOption is a functional option for configuring a Rig.
type RigOption func(*Rig)

// WithRigWorkers sets the maximum number of pool workers used by UpdateAll.
//
// Parameters:
//   - n: worker count (values < 1 are treated as 1)
//
// Returns:
//   - RigOption: functional option to set the worker count
func WithRigWorkers(n int) RigOption {
	return func(r *Rig) {
		r.workers = max(n, 1)
	}
}

// WithParallelThreshold sets the camera count at which UpdateAll switches from inline
// updates to the worker pool.
//
// Parameters:
//   - n: minimum number of cameras for a parallel update
//
// Returns:
//   - RigOption: functional option to set the threshold
func WithParallelThreshold(n int) RigOption {
	return func(r *Rig) {
		r.parallelThreshold = n
	}
}

// NewRig creates an empty Rig.
//
// Parameters:
//   - options: functional options to configure the rig
//
// Returns:
//   - *Rig: the newly created rig
func NewRig(options ...RigOption) *Rig {
	r := &Rig{
		mu:                &sync.Mutex{},
		cameras:           make(map[string]Camera),
		workers:           max(runtime.NumCPU()-1, 1),
		parallelThreshold: 8,
	}
	for _, option := range options {
		option(r)
	}
	// Queue size of 256 covers typical camera counts; idle workers exit after a second.
	r.pool = worker.NewDynamicWorkerPool(r.workers, 256, 1*time.Second)
	return r
}

// Add registers a camera under name. The first camera added becomes the active one.
//
// Parameters:
//   - name: unique camera name
//   - c: the camera to register
//
// Returns:
//   - error: ErrCameraExists if name is taken
func (r *Rig) Add(name string, c Camera) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.cameras[name]; ok {
		return fmt.Errorf("add %q: %w", name, ErrCameraExists)
	}
	r.cameras[name] = c
	r.order = append(r.order, name)
	if r.active == "" {
		r.active = name
	}
	return nil
}

// Remove unregisters the camera under name. Removing the active camera makes the
// earliest remaining camera active.
//
// Parameters:
//   - name: the camera to remove
func (r *Rig) Remove(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.cameras[name]; !ok {
		return
	}
	delete(r.cameras, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	if r.active == name {
		r.active = ""
		if len(r.order) > 0 {
			r.active = r.order[0]
		}
	}
}

// Camera returns the camera registered under name, or nil.
//
// Parameters:
//   - name: the camera name
//
// Returns:
//   - Camera: the camera or nil
func (r *Rig) Camera(name string) Camera {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cameras[name]
}

// SetActive selects the camera the renderer should read.
//
// Parameters:
//   - name: a registered camera name
//
// Returns:
//   - error: ErrCameraNotFound if name is not registered
func (r *Rig) SetActive(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.cameras[name]; !ok {
		return fmt.Errorf("set active %q: %w", name, ErrCameraNotFound)
	}
	r.active = name
	return nil
}

// Active returns the active camera, or nil when the rig is empty.
//
// Returns:
//   - Camera: the active camera or nil
func (r *Rig) Active() Camera {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cameras[r.active]
}

// ActiveName returns the name of the active camera.
//
// Returns:
//   - string: the active camera name, empty when the rig is empty
func (r *Rig) ActiveName() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active
}

// Names returns the registered camera names in insertion order.
//
// Returns:
//   - []string: a copy of the camera names
func (r *Rig) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.order...)
}

// Len returns the number of registered cameras.
//
// Returns:
//   - int: camera count
func (r *Rig) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.order)
}

// Close stops the rig's worker pool. Later UpdateAll calls update inline.
// Call it when no UpdateAll is in flight; repeated calls are no-ops.
func (r *Rig) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.closed = true
	r.pool.Stop()
}

// UpdateAll calls Update on every registered camera and blocks until all are done.
// Large rigs fan out over the worker pool with a WaitGroup barrier; pool.Wait is not
// used because it blocks until workers idle out.
//
// Returns:
//   - int: the number of cameras updated
func (r *Rig) UpdateAll() int {
	r.mu.Lock()
	cams := make([]Camera, 0, len(r.order))
	for _, name := range r.order {
		cams = append(cams, r.cameras[name])
	}
	threshold := r.parallelThreshold
	closed := r.closed
	r.mu.Unlock()

	if closed || len(cams) < threshold {
		for _, c := range cams {
			c.Update()
		}
		return len(cams)
	}

	var wg sync.WaitGroup
	for i, c := range cams {
		wg.Add(1)
		cCap := c
		r.pool.SubmitTask(worker.Task{
			ID: i,
			Do: func() (any, error) {
				defer wg.Done()
				cCap.Update()
				return nil, nil
			},
		})
	}
	wg.Wait()
	return len(cams)
}
