// cerulean - Software 3D Rasterizer
// Spins a row of colored cubes, or a glTF model, in a desktop window, in the
// terminal, or headless to image files.
//
// Controls (window and terminal):
//
//	W/S, Up/Down    - Pitch impulse
//	A/D, Left/Right - Yaw impulse
//	Z/E             - Roll impulse
//	Mouse drag      - Spin (yaw/pitch)
//	Space           - Random spin impulse
//	R               - Reset spin and camera
//	P               - Pause or resume the spin
//	+/-, wheel      - Zoom in/out
//	X               - Toggle wireframe
//	?               - Toggle HUD
//	Esc, q          - Quit (ctrl+c in the terminal)
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"log/slog"
	"math"
	"math/rand/v2"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/taigrr/cerulean/internal/config"
	"github.com/taigrr/cerulean/internal/logging"
	"github.com/taigrr/cerulean/pkg/anim"
	"github.com/taigrr/cerulean/pkg/display"
	"github.com/taigrr/cerulean/pkg/hud"
	"github.com/taigrr/cerulean/pkg/math3d"
	"github.com/taigrr/cerulean/pkg/models"
	"github.com/taigrr/cerulean/pkg/render"
)

// Scene placement: cubes sit where the default camera frames a short row,
// loaded models (normalized to 2 units) closer in.
const (
	cubeDepth  = 10.0
	modelDepth = 4.0
)

const (
	kickStrength = 1.5   // spread of a random spin impulse, rad/s
	minCameraZ   = -20.0 // farthest the camera zooms out
	zoomMargin   = 2.0   // closest the camera gets to the nearest instance
)

var (
	configPath = flag.String("config", "", "Path to JSON config file")
	mode       = flag.String("mode", "", "Display mode: window, terminal or headless (default window)")
	width      = flag.Int("width", 0, "Framebuffer width in pixels (window and headless)")
	height     = flag.Int("height", 0, "Framebuffer height in pixels (window and headless)")
	fovDeg     = flag.Float64("fov", 0, "Horizontal field of view in degrees (default ~84)")
	fps        = flag.Int("fps", 0, "Target FPS (default 60)")
	cubes      = flag.Int("cubes", 0, "Number of cubes in a row (default 1)")
	modelPath  = flag.String("model", "", "Path to a .gltf or .glb model to show instead of cubes")
	wireframe  = flag.Bool("wireframe", false, "Draw triangle outlines instead of filled faces")
	background = flag.String("background", "", "Image drawn behind the scene: .png, .webp or .tga")
	showHUD    = flag.Bool("hud", false, "Overlay frame rate and triangle counts")
	bounds     = flag.Bool("bounds", false, "Outline each instance's bounding box")
	frames     = flag.Int("frames", 0, "Frames to render in headless mode (default 120)")
	output     = flag.String("out", "", "Snapshot path for headless mode: .png, .webp or .tga")
	saveEvery  = flag.Bool("save-every", false, "Headless: write every frame to a numbered file")
	scale      = flag.Int("scale", 0, "Headless: integer upscale factor for snapshots")
	logLevel   = flag.String("log-level", "", "Log level: debug, info, warn or error (default warn)")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "cerulean - Software 3D Rasterizer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: cerulean [options] [model.glb]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  Esc/q       - Quit (terminal)\n")
	}
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() (config.Config, error) {
	var cfg config.Config
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			return cfg, err
		}
	}

	flags := config.Flags{
		Mode:       *mode,
		Width:      *width,
		Height:     *height,
		FPS:        *fps,
		Cubes:      *cubes,
		Model:      *modelPath,
		Wireframe:  *wireframe,
		Bounds:     *bounds,
		HUD:        *showHUD,
		Background: *background,
		Frames:     *frames,
		Output:     *output,
		SaveEvery:  *saveEvery,
		Scale:      *scale,
		LogLevel:   *logLevel,
	}
	if *fovDeg > 0 {
		flags.FOV = *fovDeg * math.Pi / 180
	}
	if flag.NArg() == 1 {
		flags.Model = flag.Arg(0)
	}

	cfg.Resolve(flags)
	return cfg, cfg.Validate()
}

func setupLogger(level string) error {
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	render.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
	return nil
}

func buildScene(cfg config.Config) (*models.Scene, error) {
	scene := &models.Scene{}
	if cfg.Model == "" {
		scene.Add(models.CubeRow(cfg.Cubes, cubeDepth)...)
		return scene, nil
	}

	model, err := models.LoadGLTF(cfg.Model)
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}
	scene.Add(models.NewInstance(model, 0, 0, modelDepth))
	return scene, nil
}

// engine owns everything the frame loop touches between frames.
type engine struct {
	scene    *models.Scene
	camera   *render.Camera
	spin     *anim.Spin
	renderer *render.Renderer
	hud      *hud.HUD // nil when disabled

	target  math3d.Vec3 // configured spin rates
	paused  bool
	cameraZ float64
	maxZ    float64 // zoom limit in front of the nearest instance

	bgImage image.Image
	bg      *render.Framebuffer
}

func newEngine(cfg config.Config, scene *models.Scene, fbWidth, fbHeight int) (*engine, error) {
	var bgImage image.Image
	if cfg.Background != "" {
		var err error
		bgImage, err = render.LoadImage(cfg.Background)
		if err != nil {
			return nil, fmt.Errorf("background: %w", err)
		}
	}

	spin := cfg.Spin
	target := math3d.V3(spin[0], spin[1], spin[2])
	renderer := render.NewRenderer(render.NewFramebuffer(fbWidth, fbHeight))
	renderer.Wireframe = cfg.Wireframe
	renderer.ShowBounds = cfg.Bounds

	e := &engine{
		scene:    scene,
		camera:   render.NewCamera(cfg.FOV),
		spin:     anim.NewSpin(cfg.FPS, target),
		target:   target,
		renderer: renderer,
		bgImage:  bgImage,
	}
	if cfg.HUD {
		e.hud = hud.New()
	}
	for i, inst := range scene.Instances {
		if z := inst.Transform.Translation.Z - zoomMargin; i == 0 || z < e.maxZ {
			e.maxZ = z
		}
	}
	e.maxZ = max(e.maxZ, minCameraZ)
	return e, nil
}

// apply acts on user input: spin impulses, reset, zoom and toggles.
func (e *engine) apply(in display.Input) {
	if in.Reset {
		e.paused = false
		e.spin.SetTarget(e.target)
		e.spin.Reset()
		e.cameraZ = 0
		e.camera.SetPosition(math3d.Zero3())
	}
	if in.Pause {
		e.paused = !e.paused
		if e.paused {
			e.spin.SetTarget(math3d.Zero3())
		} else {
			e.spin.SetTarget(e.target)
		}
	}
	e.spin.Impulse(in.Spin)
	if in.Kick {
		e.spin.Impulse(math3d.V3(
			(rand.Float64()-0.5)*kickStrength,
			(rand.Float64()-0.5)*kickStrength,
			(rand.Float64()-0.5)*kickStrength,
		))
	}
	if in.Zoom != 0 {
		e.cameraZ = min(max(e.cameraZ+in.Zoom, minCameraZ), e.maxZ)
		e.camera.SetPosition(math3d.V3(0, 0, e.cameraZ))
	}
	if in.Wireframe {
		e.renderer.Wireframe = !e.renderer.Wireframe
	}
	if in.HUD {
		if e.hud == nil {
			e.hud = hud.New()
		} else {
			e.hud = nil
		}
	}
}

// clear resets fb to black or to the background image scaled to fit.
func (e *engine) clear(fb *render.Framebuffer) {
	if e.bgImage == nil {
		fb.Clear()
		return
	}
	if e.bg == nil || e.bg.Width != fb.Width || e.bg.Height != fb.Height {
		e.bg = render.FitImage(e.bgImage, fb.Width, fb.Height)
	}
	fb.DrawRaster(0, 0, e.bg)
}

// frame returns the per-frame step for s. Surfaces that report a size have
// the framebuffer follow it; interactive surfaces steer the engine.
func (e *engine) frame(s display.Surface) display.FrameFunc {
	sizer, _ := s.(display.Sizer)
	input, _ := s.(display.Interactive)
	return func() (*render.Framebuffer, error) {
		if sizer != nil {
			e.renderer.Resize(sizer.FramebufferSize())
		}
		if input != nil {
			e.apply(input.Input())
		}

		e.spin.Update()
		for _, inst := range e.scene.Instances {
			e.spin.Apply(&inst.Transform)
		}

		fb := e.renderer.Framebuffer()
		e.clear(fb)
		e.renderer.Render(e.camera, e.scene)
		if e.hud != nil {
			e.hud.Tick(time.Now())
			e.hud.Draw(fb, e.hud.StatsLines(e.renderer.Stats)...)
		}
		return fb, nil
	}
}

func run(cfg config.Config) error {
	if err := setupLogger(cfg.LogLevel); err != nil {
		return err
	}

	scene, err := buildScene(cfg)
	if err != nil {
		return err
	}
	logging.Logger().Info("scene ready",
		"instances", len(scene.Instances),
		"triangles", scene.TriangleCount(),
		"mode", cfg.Mode)

	// Context for clean shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch cfg.Mode {
	case config.ModeWindow:
		e, err := newEngine(cfg, scene, cfg.Width, cfg.Height)
		if err != nil {
			return err
		}
		return display.RunWindow(display.WindowConfig{
			Width:  cfg.Width,
			Height: cfg.Height,
			Title:  cfg.Title,
			TPS:    cfg.FPS,
		}, func(s display.Surface) error {
			return display.RunLoop(ctx, s, cfg.FPS, e.frame(s))
		})

	case config.ModeTerminal:
		term, err := display.OpenTerminal()
		if err != nil {
			return err
		}
		defer term.Close()

		w, h := term.FramebufferSize()
		e, err := newEngine(cfg, scene, w, h)
		if err != nil {
			return err
		}
		return display.RunLoop(ctx, term, cfg.FPS, e.frame(term))

	case config.ModeHeadless:
		e, err := newEngine(cfg, scene, cfg.Width, cfg.Height)
		if err != nil {
			return err
		}
		h := display.NewHeadless(display.HeadlessConfig{
			Frames:    cfg.Frames,
			Output:    cfg.Output,
			SaveEvery: cfg.SaveEvery,
			Scale:     cfg.Scale,
		})
		if err := display.RunLoop(ctx, h, 0, e.frame(h)); err != nil {
			return err
		}
		if saved := h.Saved(); len(saved) > 0 {
			fmt.Printf("Rendered %d frames, wrote %s\n", h.Frames(), filepath.Base(saved[len(saved)-1]))
		}
		return nil
	}

	return fmt.Errorf("unknown mode %q", cfg.Mode)
}
