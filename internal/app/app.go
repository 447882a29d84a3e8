// Package app wires the window, renderer, scene and input into the frame loop.
package app

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/halverson/glint/internal/assets"
	"github.com/halverson/glint/internal/config"
	"github.com/halverson/glint/internal/engine/camera"
	"github.com/halverson/glint/internal/engine/debug"
	"github.com/halverson/glint/internal/engine/input"
	"github.com/halverson/glint/internal/engine/lighting"
	"github.com/halverson/glint/internal/engine/renderer"
	"github.com/halverson/glint/internal/engine/scene"
	"github.com/halverson/glint/internal/engine/skybox"
	"github.com/halverson/glint/internal/engine/texture"
	"github.com/halverson/glint/internal/engine/window"
	"github.com/halverson/glint/internal/logger"
)

// lightMarkerSize is the edge length of the cube drawn at each light position.
const lightMarkerSize = 0.25

// App is the application instance.
type App struct {
	cfg     *config.Config
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	scene    *scene.Scene
	shots    *debug.ScreenshotCapture

	mouseCaptured bool
	modelName     string
}

// New creates the window, GL context, renderer and scene.
func New(cfg *config.Config) (*App, error) {
	logger.Info("initializing",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	a := &App{cfg: cfg}

	var err error
	a.window, err = window.New(window.Config{
		Title:      "glint",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer after window: the OpenGL context must exist.
	a.renderer, err = renderer.New(renderer.Config{
		Width:            cfg.Graphics.Width,
		Height:           cfg.Graphics.Height,
		ShadowResolution: cfg.Shadow.Resolution,
		ShadowsEnabled:   cfg.Shadow.Enabled,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.input = input.New()
	a.scene = scene.New(texture.NewCache())
	a.shots = debug.NewScreenshotCapture("screenshots", "glint")

	aspect := float32(cfg.Graphics.Width) / float32(cfg.Graphics.Height)
	cam := camera.New(mgl32.Vec3{0, 2, 6}, aspect)
	cam.FOV = cfg.Camera.FOV
	cam.Near = cfg.Camera.Near
	cam.Far = cfg.Camera.Far
	cam.Speed = cfg.Camera.Speed
	cam.Sensitivity = cfg.Camera.Sensitivity
	a.scene.Camera = cam

	a.setupScene()

	a.setMouseCaptured(true)

	logger.Info("initialized")
	return a, nil
}

// setupScene loads the configured model and skybox and places the lights.
// Asset failures degrade to an emptier scene, never abort startup.
func (a *App) setupScene() {
	root := a.cfg.Assets.Root
	if root == "" {
		found, err := assets.FindRoot()
		if err != nil {
			logger.Warn("asset root not found, scene will be empty", zap.Error(err))
		}
		root = found
	}

	if root != "" {
		a.loadModel(root)
		a.loadSkybox(root)
	}

	a.addLight(lighting.Light{
		Position:  mgl32.Vec3{4, 6, 4},
		Color:     mgl32.Vec3{1, 1, 1},
		Intensity: 2,
	})
	a.addLight(lighting.Light{
		Position:  mgl32.Vec3{-5, 3, -2},
		Color:     mgl32.Vec3{1, 0.6, 0.3},
		Intensity: 1,
	})

	logger.Info("scene ready",
		zap.Int("entities", len(a.scene.Entities())),
		zap.Int("lights", a.scene.Lights.Count()),
		zap.Int("triangles", a.scene.TriangleCount()),
	)
}

func (a *App) loadModel(root string) {
	name := a.cfg.Assets.Model
	meshData := assets.LoadOBJ(assets.ModelPath(root, name))
	if len(meshData) == 0 {
		return
	}

	handles := make([]scene.MeshHandle, 0, len(meshData))
	for _, md := range meshData {
		if h := a.scene.UploadMesh(md); h != 0 {
			handles = append(handles, h)
		}
	}

	a.scene.CreateEntity(name, handles,
		[3]float32{0, 0, 0}, [3]float32{0, 0, 0}, [3]float32{1, 1, 1})
	a.modelName = name

	// Ground plane under the model so the shadow has somewhere to land.
	ground := scene.NewCubeData("ground", 1, scene.DefaultMaterial())
	if h := a.scene.UploadMesh(ground); h != 0 {
		a.scene.CreateEntity("ground", []scene.MeshHandle{h},
			[3]float32{0, -1.05, 0}, [3]float32{0, 0, 0}, [3]float32{20, 0.1, 20})
	}
}

func (a *App) loadSkybox(root string) {
	sky, err := skybox.New(a.scene.Textures, assets.SkyboxFaces(root, a.cfg.Assets.Skybox))
	if err != nil {
		logger.Warn("skybox unavailable", zap.String("name", a.cfg.Assets.Skybox), zap.Error(err))
		return
	}
	a.renderer.SetSkybox(sky)
}

// addLight registers a light and creates its unlit marker entity.
func (a *App) addLight(l lighting.Light) {
	markerName := fmt.Sprintf("light_%d", a.scene.Lights.Count())
	l.EntityName = markerName

	if !a.scene.Lights.Add(l) {
		logger.Warn("light registry full", zap.String("marker", markerName))
		return
	}

	mat := scene.DefaultMaterial()
	mat.DiffuseColor = [4]float32{l.Color[0], l.Color[1], l.Color[2], 1}
	marker := scene.NewCubeData(markerName, lightMarkerSize, mat)
	if h := a.scene.UploadMesh(marker); h != 0 {
		a.scene.CreateEntity(markerName, []scene.MeshHandle{h},
			l.Position, [3]float32{0, 0, 0}, [3]float32{1, 1, 1})
	}
}

// Run starts the main loop.
func (a *App) Run() error {
	a.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting frame loop")

	for a.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		if a.input.Update() {
			break
		}
		a.handleEvents()
		a.handleMovement(dt)
		a.animate(dt)

		a.renderer.RenderFrame(a.scene)
		a.window.SwapBuffers()

		frameCount++
		if elapsed := time.Since(fpsTimer); elapsed >= time.Second {
			if a.cfg.Graphics.ShowFPS {
				avgMs := elapsed.Seconds() * 1000 / float64(frameCount)
				a.window.SetTitle(frameTitle(frameCount, avgMs, a.scene.TriangleCount()))
			}
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// frameTitle formats the once-per-second window title.
func frameTitle(fps int, frameMs float64, triangles int) string {
	return fmt.Sprintf("glint | %d fps (%.2f ms) | %d tris", fps, frameMs, triangles)
}

// handleEvents processes the discrete events from this frame.
func (a *App) handleEvents() {
	a.processEvents(a.input.Events())
}

func (a *App) processEvents(events []input.Event) {
	for _, event := range events {
		switch event.Type {
		case input.EventQuit:
			a.running = false

		case input.EventWindowResize:
			a.renderer.Resize(event.Width, event.Height)
			a.scene.Camera.SetAspect(event.Width, event.Height)

		case input.EventKeyDown:
			switch event.Key {
			case sdl.SCANCODE_ESCAPE:
				// ESC pauses camera look by releasing the mouse; quitting
				// goes through the window close event.
				a.setMouseCaptured(!a.mouseCaptured)
			case sdl.SCANCODE_F12:
				a.screenshot()
			}

		case input.EventMouseDown:
			if event.Button == sdl.BUTTON_LEFT && !a.mouseCaptured {
				a.setMouseCaptured(true)
			}
		}
	}
}

// setMouseCaptured switches between camera-look and free-cursor mode.
func (a *App) setMouseCaptured(captured bool) {
	a.mouseCaptured = captured
	a.input.SetRelativeMouseMode(captured)
}

// handleMovement applies held keys and mouse motion to the camera.
func (a *App) handleMovement(dt float32) {
	if !a.mouseCaptured {
		return
	}

	cam := a.scene.Camera

	dx, dy := a.input.MouseDelta()
	if dx != 0 || dy != 0 {
		// SDL reports Y growing downward; pitch grows upward.
		cam.ProcessMouse(dx, -dy)
	}

	scale := float32(1)
	if a.input.IsKeyHeld(sdl.SCANCODE_LSHIFT) {
		scale = a.cfg.Camera.SprintScale
	}

	if a.input.IsKeyHeld(sdl.SCANCODE_W) {
		cam.Move(camera.Forward, dt, scale)
	}
	if a.input.IsKeyHeld(sdl.SCANCODE_S) {
		cam.Move(camera.Backward, dt, scale)
	}
	if a.input.IsKeyHeld(sdl.SCANCODE_A) {
		cam.Move(camera.Left, dt, scale)
	}
	if a.input.IsKeyHeld(sdl.SCANCODE_D) {
		cam.Move(camera.Right, dt, scale)
	}
	if a.input.IsKeyHeld(sdl.SCANCODE_E) {
		cam.Move(camera.Up, dt, scale)
	}
	if a.input.IsKeyHeld(sdl.SCANCODE_Q) {
		cam.Move(camera.Down, dt, scale)
	}
}

// animate spins the loaded model slowly around Y.
func (a *App) animate(dt float32) {
	if a.modelName == "" {
		return
	}
	e := a.scene.FindEntity(a.modelName)
	if e == nil || !e.Active {
		return
	}
	rot := e.Rotation
	rot[1] += 15 * dt
	if rot[1] >= 360 {
		rot[1] -= 360
	}
	a.scene.UpdateEntity(a.modelName, scene.TransformUpdate{Rotation: &rot})
}

func (a *App) screenshot() {
	w, h := a.window.GetSize()
	path, err := a.shots.CaptureFramebuffer(w, h)
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// Close releases the scene, renderer and window in that order.
func (a *App) Close() {
	logger.Info("shutting down")

	if a.scene != nil {
		a.scene.Close()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
