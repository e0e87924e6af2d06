package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/ThatOtherAndrew/learngl/internal/assets"
	"github.com/ThatOtherAndrew/learngl/internal/camera"
	"github.com/ThatOtherAndrew/learngl/internal/config"
	"github.com/ThatOtherAndrew/learngl/internal/draw"
	"github.com/ThatOtherAndrew/learngl/internal/fps"
	"github.com/ThatOtherAndrew/learngl/internal/logging"
	"github.com/ThatOtherAndrew/learngl/internal/models"
	"github.com/ThatOtherAndrew/learngl/internal/opengl"
	"github.com/ThatOtherAndrew/learngl/internal/scene"
	"github.com/ThatOtherAndrew/learngl/internal/update"
	"github.com/ThatOtherAndrew/learngl/pkg/window"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the window and start rendering",
	Args:  cobra.NoArgs,
	RunE:  Run,
}

func init() {
	rootCmd.AddCommand(runCmd)
	addRunFlags(runCmd)

	// GLFW and the GL context belong to the main thread.
	runtime.LockOSThread()
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().String("assets", "", "assets directory (overrides assets_dir)")
	cmd.Flags().String("scene", "", "scene to start on, by index or name (overrides start_scene)")
	cmd.Flags().String("log-level", "", "debug, info, warn or error (overrides log_level)")
}

func applyRunFlags(cmd *cobra.Command, settings *config.Settings) error {
	flags := cmd.Flags()
	if dir, _ := flags.GetString("assets"); dir != "" {
		settings.AssetsDir = dir
	}
	if level, _ := flags.GetString("log-level"); level != "" {
		settings.LogLevel = level
	}
	if v, _ := flags.GetString("scene"); v != "" {
		i, err := scene.Parse(v)
		if err != nil {
			return err
		}
		settings.StartScene = i
	}
	return nil
}

func Run(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	if err := applyRunFlags(cmd, settings); err != nil {
		return err
	}
	slog.SetDefault(logging.New(settings.LogLevel, os.Stderr))

	bindings, err := update.ParseBindings(settings.Bindings)
	if err != nil {
		return fmt.Errorf("invalid key bindings: %w", err)
	}

	win, err := window.New(window.Options{
		Width:  settings.Window.Width,
		Height: settings.Window.Height,
		Title:  settings.Window.Title,
		VSync:  settings.Window.VSync,
	})
	if err != nil {
		return err
	}
	defer win.Destroy()

	if err := opengl.Init(win.FramebufferSize()); err != nil {
		return fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	resolver := assets.NewResolver(settings.AssetsDir)
	renderer := draw.New(resolver, draw.Options{
		ClearColor: settings.ClearColor,
		Near:       settings.Camera.Near,
		Far:        settings.Camera.Far,
		StartScene: settings.StartScene,
	})
	if err := renderer.Init(); err != nil {
		return fmt.Errorf("failed to initialize renderer (%s error): %w", models.KindOf(err), err)
	}
	defer renderer.Cleanup()

	cam := camera.New(
		mgl32.Vec3(settings.Camera.Position),
		mgl32.Vec3{0, 0, -1},
		mgl32.Vec3{0, 1, 0},
		camera.WithSpeeds(settings.Camera.MoveSpeed, settings.Camera.SprintSpeed),
		camera.WithSensitivity(settings.Camera.Sensitivity),
		camera.WithFOV(settings.Camera.FOV),
		camera.WithSprintBackwards(settings.Camera.SprintBackwards),
	)
	controller := update.New(cam, renderer, bindings)

	var reloads <-chan string
	if settings.WatchShaders {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		reloads, err = assets.WatchShaders(ctx, resolver)
		if err != nil {
			slog.Warn("shader hot reload disabled", "error", err)
		} else {
			slog.Info("watching shaders", "dir", resolver.ShaderRoot())
		}
	}

	loop(win, renderer, controller, cam, reloads)
	return nil
}

func loop(
	win *window.Window,
	renderer *draw.Renderer,
	controller *update.Controller,
	cam *camera.Camera,
	reloads <-chan string,
) {
	counter := fps.New()
	lastTime := time.Now()

	for !win.ShouldClose() {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		win.PollEvents()
		for _, event := range win.Events() {
			switch e := event.(type) {
			case window.EventKey:
				if controller.HandleKey(e.Name, e.Pressed) {
					win.SetShouldClose(true)
				}
			case window.EventMouseMove:
				controller.HandleMouse(e.DX, e.DY)
			case window.EventScroll:
				controller.HandleScroll(e.DY)
			case window.EventResize:
				opengl.Viewport(e.Width, e.Height)
			}
		}
		reloads = drainReloads(renderer, reloads)

		controller.Tick(dt)

		width, height := win.FramebufferSize()
		if width == 0 || height == 0 {
			// minimised
			time.Sleep(50 * time.Millisecond)
			continue
		}
		renderer.Render(cam, float32(width)/float32(height))
		win.SwapBuffers()

		if rate, ok := counter.Tick(now); ok {
			slog.Debug("frame rate", "fps", rate, "scene", renderer.Scene().Name)
		}
	}
}

// drainReloads applies every pending shader change without blocking. It
// returns nil once the watcher has stopped.
func drainReloads(renderer *draw.Renderer, reloads <-chan string) <-chan string {
	for {
		select {
		case name, ok := <-reloads:
			if !ok {
				return nil
			}
			if err := renderer.Reload(name); err != nil {
				if errors.Is(err, draw.ErrUnknownProgram) {
					slog.Debug("ignoring change to unused shader", "name", name)
					continue
				}
				slog.Error("shader reload failed, keeping previous program",
					"name", name, "kind", models.KindOf(err), "error", err)
			}
		default:
			return reloads
		}
	}
}
