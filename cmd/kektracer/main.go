package main

import (
	"flag"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/menuan/kektracer/pkg/framebuffer"
	"github.com/menuan/kektracer/pkg/renderer"
	"github.com/menuan/kektracer/pkg/scene"
)

func main() {
	sceneType := flag.String("scene", "default", "Scene type: 'default' or 'closeup'")
	width := flag.Int("width", 400, "Image width in pixels")
	height := flag.Int("height", 200, "Image height in pixels")
	samples := flag.Int("samples", 50, "Anti-aliasing samples per pixel")
	depth := flag.Int("depth", 50, "Maximum ray bounce depth")
	workers := flag.Int("workers", 0, "Render workers (0 = one per CPU)")
	scale := flag.Int("scale", 4, "Window scale factor")
	present := flag.Bool("present", true, "Open a window to present the render")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("kektracer")
		fmt.Println("Usage: kektracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default - Diffuse and metal spheres on a ground sphere")
		fmt.Println("  closeup - Same world through a narrow field of view")
		return
	}

	if *width <= 0 || *height <= 0 {
		fmt.Printf("Invalid image size %dx%d\n", *width, *height)
		return
	}

	aspectRatio := float32(*width) / float32(*height)

	selectedScene, err := createScene(*sceneType, aspectRatio)
	if err != nil {
		fmt.Printf("%v. Using default scene.\n", err)
		selectedScene = scene.NewDefaultScene(aspectRatio)
	}

	raytracer := renderer.NewRaytracer(selectedScene, *width, *height)
	raytracer.SetSamplingConfig(renderer.SamplingConfig{
		SamplesPerPixel: *samples,
		MaxDepth:        *depth,
	})
	raytracer.SetWorkers(*workers)

	bitmap := framebuffer.NewBitmap(*width, *height)

	fmt.Printf("Rendering %dx%d at %d samples/pixel...\n", *width, *height, *samples)
	stats := raytracer.Render(bitmap)
	fmt.Printf("Render completed in %v (%d workers, %d samples)\n",
		stats.Elapsed, stats.Workers, stats.TotalSamples)

	if *present {
		presentLoop(bitmap, *scale)
	}
}

// createScene builds a scene by name
func createScene(sceneType string, aspectRatio float32) (*scene.Scene, error) {
	switch sceneType {
	case "default":
		return scene.NewDefaultScene(aspectRatio), nil
	case "closeup":
		return scene.NewCloseupScene(aspectRatio), nil
	default:
		return nil, fmt.Errorf("unknown scene type: %s", sceneType)
	}
}

// presentLoop shows the rendered bitmap in a window until ESC or Q is
// pressed. While the left mouse button is down, the pixel under the cursor
// is overwritten with a white marker directly in the framebuffer.
func presentLoop(bitmap *framebuffer.Bitmap, scale int) {
	if scale < 1 {
		scale = 1
	}
	width := bitmap.Width()
	height := bitmap.Height()

	rl.InitWindow(int32(width*scale), int32(height*scale), "kektracer")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	texture := rl.LoadTextureFromImage(rl.GenImageColor(width, height, rl.Black))
	defer rl.UnloadTexture(texture)

	for !rl.WindowShouldClose() && !rl.IsKeyDown(rl.KeyQ) {
		if rl.IsMouseButtonDown(rl.MouseButtonLeft) {
			pos := rl.GetMousePosition()
			bitmap.Set(int(pos.X)/scale, int(pos.Y)/scale, 0x00ffffff)
		}

		rl.UpdateTexture(texture, bitmap.RGBA())

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		rl.DrawTextureEx(texture, rl.NewVector2(0, 0), 0, float32(scale), rl.White)
		rl.EndDrawing()
	}
}
