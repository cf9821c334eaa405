// Command camera-demo drives orbiting cameras through the headless frame loop and logs
// their matrices, without opening a window or touching the GPU.
package main

import (
	"context"
	"fmt"
	"log"
	"math"
	"os"
	"os/signal"

	"github.com/Carmen-Shannon/ogde/common"
	"github.com/Carmen-Shannon/ogde/engine"
	"github.com/Carmen-Shannon/ogde/engine/camera"
	"github.com/spf13/cobra"
)

type options struct {
	frames     uint64
	cameras    int
	fov        float64
	aspect     float64
	ortho      bool
	orthoW     float64
	orthoH     float64
	radius     float64
	tickRate   float64
	frameLimit float64
	logEvery   uint64
	profile    bool
}

var opts options

var cmdRoot = &cobra.Command{
	Use:          "camera-demo",
	Short:        "Orbit cameras through the headless frame loop and log their matrices",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), opts)
	},
}

func init() {
	flags := cmdRoot.Flags()
	flags.Uint64Var(&opts.frames, "frames", 300, "render frames to run before exiting (0 = until interrupted)")
	flags.IntVar(&opts.cameras, "cameras", 1, "number of cameras orbiting the origin")
	flags.Float64Var(&opts.fov, "fov", 60, "vertical field of view in degrees")
	flags.Float64Var(&opts.aspect, "aspect", 0, "aspect ratio (0 = 16:9)")
	flags.BoolVar(&opts.ortho, "ortho", false, "use an orthographic projection")
	flags.Float64Var(&opts.orthoW, "ortho-width", 0, "orthographic view width (0 = 800)")
	flags.Float64Var(&opts.orthoH, "ortho-height", 0, "orthographic view height (0 = 600)")
	flags.Float64Var(&opts.radius, "radius", 8, "orbit radius")
	flags.Float64Var(&opts.tickRate, "tick", 60, "controller ticks per second")
	flags.Float64Var(&opts.frameLimit, "fps", 60, "render frame cap (0 = uncapped)")
	flags.Uint64Var(&opts.logEvery, "log-every", 60, "log matrices every N frames")
	flags.BoolVar(&opts.profile, "profile", false, "log frame statistics once per second")
}

// newCamera builds one camera according to the projection flags.
func newCamera(o options) camera.Camera {
	if o.ortho {
		return camera.NewCamera(camera.WithOrthographic(
			common.Coalesce(float32(o.orthoW), camera.DefaultOrthoWidth),
			common.Coalesce(float32(o.orthoH), camera.DefaultOrthoHeight),
			camera.DefaultOrthoNear,
			camera.DefaultOrthoFar,
		))
	}
	return camera.NewCamera(camera.WithPerspective(
		float32(o.fov),
		common.Coalesce(float32(o.aspect), camera.DefaultAspect),
		camera.DefaultNear,
		camera.DefaultFar,
	))
}

func formatMatrix(m common.Mat4) string {
	return fmt.Sprintf("[% .4f % .4f % .4f % .4f | % .4f % .4f % .4f % .4f | % .4f % .4f % .4f % .4f | % .4f % .4f % .4f % .4f]",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7],
		m[8], m[9], m[10], m[11], m[12], m[13], m[14], m[15])
}

func run(ctx context.Context, o options) error {
	rig := camera.NewRig()
	defer rig.Close()
	controllers := make(map[string]camera.CameraController, o.cameras)

	for i := range max(o.cameras, 1) {
		name := fmt.Sprintf("cam%d", i)
		cam := newCamera(o)
		ctrl := camera.NewCameraController(
			camera.WithRadius(float32(o.radius)),
			camera.WithAzimuth(float32(2*math.Pi*float64(i)/float64(max(o.cameras, 1)))),
		)
		ctrl.Apply(cam)
		if err := cam.Validate(); err != nil {
			log.Printf("[Demo] %s: %v", name, err)
		}
		if err := rig.Add(name, cam); err != nil {
			return err
		}
		controllers[name] = ctrl
	}

	e := engine.NewEngine(
		engine.WithRig(rig),
		engine.WithTickRate(o.tickRate),
		engine.WithRenderFrameLimit(o.frameLimit),
		engine.WithMaxFrames(o.frames),
		engine.WithProfiling(o.profile),
	)

	e.SetTickCallback(func(dt float32) {
		for name, ctrl := range controllers {
			ctrl.OrbitRight()
			ctrl.Apply(rig.Camera(name))
		}
	})

	e.SetRenderCallback(func(dt float32) {
		frame := e.Frames()
		if o.logEvery == 0 || frame%o.logEvery != 0 {
			return
		}
		cam := rig.Active()
		x, y, z := cam.Position()
		origin := cam.ViewMatrix().TransformRow([4]float32{0, 0, 0, 1})
		uniform := camera.NewGPUCameraUniform(cam)
		log.Printf("[Demo] frame %d %s: eye (%.3f, %.3f, %.3f) origin in view space (%.3f, %.3f, %.3f) uniform %d bytes",
			frame, rig.ActiveName(), x, y, z, origin[0], origin[1], origin[2], uniform.Size())
		log.Printf("[Demo] view-projection %s", formatMatrix(cam.ViewProjectionMatrix()))
	})

	log.Printf("[Demo] running %d camera(s), %s projection", rig.Len(), rig.Active().ProjectionType())
	if err := e.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	log.Printf("[Demo] finished after %d frames", e.Frames())
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cmdRoot.ExecuteContext(ctx); err != nil {
		log.Fatalf("camera-demo: %v", err)
	}
}
