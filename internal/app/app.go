// Package app runs the viewer: window, input, scene and the frame loop.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/scenery/internal/config"
	"github.com/Faultbox/scenery/internal/engine/camera"
	"github.com/Faultbox/scenery/internal/engine/input"
	"github.com/Faultbox/scenery/internal/engine/lighting"
	"github.com/Faultbox/scenery/internal/engine/picking"
	"github.com/Faultbox/scenery/internal/engine/renderer"
	"github.com/Faultbox/scenery/internal/engine/scene"
	"github.com/Faultbox/scenery/internal/engine/screenshot"
	"github.com/Faultbox/scenery/internal/engine/window"
	"github.com/Faultbox/scenery/internal/logger"
	"github.com/Faultbox/scenery/internal/watch"
)

const title = "Scenery"

// App is the viewer instance.
type App struct {
	cfg      *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	scene    *scene.Scene
	camera   *camera.OrbitCamera
	light    *lighting.PointLight
	capture  *screenshot.Capturer
	watcher  *watch.Watcher
	reloads  *reloadQueue
	log      *zap.Logger

	captureNext bool
}

// New opens the window and builds the scene described by cfg.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	a := &App{
		cfg:     cfg,
		input:   input.New(),
		capture: screenshot.New(cfg.Capture.Dir, cfg.Capture.Prefix),
		reloads: newReloadQueue(),
		log:     logger.Named("app"),
	}
	a.log.Info("initializing viewer",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Int("objects", len(cfg.Scene.Objects)),
	)

	var err error
	a.window, err = window.New(window.Config{
		Title:      title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The renderer loads GL, so it must follow the window.
	w, h := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{Width: w, Height: h, ClearColor: cfg.Graphics.ClearColor})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.scene, err = scene.Build(ctx, cfg)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to build scene: %w", err)
	}

	c := cfg.Camera
	a.camera = camera.NewOrbitCamera(c.Distance, c.Pitch, c.Yaw, mgl32.Vec3(c.Target))
	a.light = lighting.NewPointLight(mgl32.Vec3(cfg.Light.Position), cfg.Light.OrbitSpeed)

	if cfg.Assets.Watch {
		if err := a.startWatching(); err != nil {
			a.log.Warn("hot reload disabled", zap.Error(err))
		}
	}

	a.log.Info("viewer initialized")
	return a, nil
}

// Run drives the frame loop until the window closes, ESC is pressed or
// ctx is canceled.
func (a *App) Run(ctx context.Context) error {
	a.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	a.log.Info("starting frame loop")

	for a.running {
		if ctx.Err() != nil {
			break
		}

		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		if a.input.Update() {
			a.running = false
			break
		}
		for _, event := range a.input.Events() {
			a.handleEvent(event)
		}

		a.applyReloads()
		a.light.Update(float32(dt))

		frame := a.frame(float32(dt))
		a.renderer.Begin()
		a.scene.Render(frame)

		if a.captureNext {
			a.captureNext = false
			a.screenshot(frame)
		}

		a.window.SwapBuffers()
		a.limitFrameRate(now)

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			a.log.Debug("fps", zap.Int("count", frameCount), zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)))
			a.window.SetTitle(fmt.Sprintf("%s - %d fps", title, frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (a *App) frame(dt float32) *scene.Frame {
	g := a.cfg.Graphics
	w, h := a.renderer.Size()
	return &scene.Frame{
		View:       a.camera.ViewMatrix(),
		Projection: camera.Projection(g.FOV, w, h, g.Near, g.Far),
		CameraPos:  a.camera.Position(),
		LightPos:   a.light.Position(),
		DeltaTime:  dt,
	}
}

func (a *App) handleEvent(e input.Event) {
	switch e.Type {
	case input.EventWindowResize:
		a.renderer.Resize(a.window.DrawableSize())
	case input.EventMouseMove:
		if a.input.Dragging() {
			a.camera.HandleDrag(float32(e.DeltaX), float32(e.DeltaY))
		}
	case input.EventMouseWheel:
		a.camera.HandleZoom(e.Wheel)
	case input.EventMouseDown:
		if e.Button == sdl.BUTTON_RIGHT {
			a.pick(e.MouseX, e.MouseY)
		}
	case input.EventKeyDown:
		a.handleKey(e.Key)
	}
}

func (a *App) handleKey(key sdl.Scancode) {
	switch key {
	case sdl.SCANCODE_ESCAPE:
		a.running = false
	case sdl.SCANCODE_F12:
		a.captureNext = true
	case sdl.SCANCODE_F:
		a.frameModels()
	case sdl.SCANCODE_B:
		a.log.Info("bounds overlay", zap.Bool("visible", a.scene.ToggleOverlays()))
	default:
		if i, ok := input.DigitIndex(key); ok {
			if r, ok := a.scene.Toggle(i); ok {
				a.log.Info("renderer toggled", zap.String("name", r.Name()), zap.Bool("enabled", r.Enabled()))
			}
		}
	}
}

// pick logs the model under the cursor. Mouse coordinates are in window
// points, which differ from framebuffer pixels on high-DPI displays.
func (a *App) pick(x, y int) {
	w, h := a.window.Size()
	f := a.frame(0)
	ray := picking.ScreenToRay(float32(x), float32(y), float32(w), float32(h), f.Projection.Mul4(f.View).Inv())

	m, dist, ok := a.scene.Pick(ray)
	if !ok {
		a.log.Info("pick: nothing under cursor", zap.Int("x", x), zap.Int("y", y))
		return
	}
	b := m.Bounds()
	a.log.Info("pick",
		zap.String("name", m.Name()),
		zap.String("path", m.Path()),
		zap.Float32("distance", dist),
		zap.Float32s("min", b.Min[:]),
		zap.Float32s("max", b.Max[:]),
	)
}

// frameModels points the camera at the enabled models and backs off until
// they fit the view.
func (a *App) frameModels() {
	box, ok := a.scene.Bounds()
	if !ok {
		return
	}
	a.camera.Target = box.Min.Add(box.Max).Mul(0.5)
	a.camera.FitRadius(box.Max.Sub(box.Min).Len()/2, a.cfg.Graphics.FOV)
	a.log.Info("camera framed models",
		zap.Float32s("target", a.camera.Target[:]),
		zap.Float32("distance", a.camera.Distance))
}

func (a *App) screenshot(f *scene.Frame) {
	w, h := a.renderer.Size()
	var (
		name string
		err  error
	)
	if a.cfg.Capture.Scale > 1 {
		name, err = a.capture.CaptureScaled(w, h, a.cfg.Capture.Scale, func() {
			a.renderer.Begin()
			a.scene.Render(f)
		})
	} else {
		name, err = a.capture.Capture(w, h)
	}
	if err != nil {
		a.log.Error("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("file", name))
}

func (a *App) limitFrameRate(frameStart time.Time) {
	limit := a.cfg.Graphics.FPSLimit
	if limit <= 0 || a.cfg.Graphics.VSync {
		return
	}
	budget := time.Second / time.Duration(limit)
	if spent := time.Since(frameStart); spent < budget {
		time.Sleep(budget - spent)
	}
}

// Close releases the scene, watcher, renderer and window.
func (a *App) Close() {
	a.log.Info("closing viewer")

	if a.watcher != nil {
		if err := a.watcher.Close(); err != nil {
			a.log.Warn("closing watcher", zap.Error(err))
		}
	}
	if a.scene != nil {
		a.scene.Destroy()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
