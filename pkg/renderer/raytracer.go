package renderer

import (
	"github.com/chewxy/math32"

	"github.com/menuan/kektracer/pkg/core"
	"github.com/menuan/kektracer/pkg/framebuffer"
	"github.com/menuan/kektracer/pkg/geometry"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of jittered rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 50,
		MaxDepth:        50,
	}
}

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *geometry.Camera
	GetBackgroundColors() (topColor, bottomColor core.Vec3)
	Hit(ray core.Ray, tMin, tMax float32) (*core.HitRecord, bool)
}

// Raytracer renders a scene into a framebuffer
type Raytracer struct {
	scene      Scene
	width      int
	height     int
	config     SamplingConfig
	numWorkers int
}

// NewRaytracer creates a new raytracer for the given output dimensions
func NewRaytracer(scene Scene, width, height int) *Raytracer {
	return &Raytracer{
		scene:  scene,
		width:  width,
		height: height,
		config: DefaultSamplingConfig(),
	}
}

// SetSamplingConfig updates the sampling configuration
func (rt *Raytracer) SetSamplingConfig(config SamplingConfig) {
	rt.config = config
}

// SetWorkers overrides the worker count; n <= 0 means one per CPU
func (rt *Raytracer) SetWorkers(n int) {
	rt.numWorkers = n
}

// backgroundGradient returns the sky color for a ray that hit nothing,
// blending bottom to top on the ray's vertical component
func (rt *Raytracer) backgroundGradient(r core.Ray) core.Vec3 {
	topColor, bottomColor := rt.scene.GetBackgroundColors()

	unitDirection := r.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)

	return core.Lerp(bottomColor, topColor, t)
}

// rayColor returns the radiance along a ray with depth bounces remaining
func (rt *Raytracer) rayColor(r core.Ray, depth int, sampler core.Sampler) core.Vec3 {
	// Bounce budget exhausted; no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	// The 0.001 lower bound suppresses self-intersection at the hit point
	hit, isHit := rt.scene.Hit(r, 0.001, math32.MaxFloat32)
	if !isHit {
		return rt.backgroundGradient(r)
	}

	scatter, didScatter := hit.Material.Scatter(r, *hit, sampler)
	if !didScatter {
		return core.Vec3{} // Material absorbed the ray
	}

	return scatter.Attenuation.MultiplyVec(rt.rayColor(scatter.Scattered, depth-1, sampler))
}

// renderPixel averages the jittered samples for one pixel and returns the
// gamma-corrected color packed as 0x00RRGGBB
func (rt *Raytracer) renderPixel(x, y int, sampler core.Sampler) uint32 {
	camera := rt.scene.GetCamera()

	colorAccum := core.Vec3{}
	for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
		s := (float32(x) + sampler.Get1D()) / float32(rt.width)
		t := (float32(y) + sampler.Get1D()) / float32(rt.height)

		ray := camera.GetRay(s, t)
		colorAccum = colorAccum.Add(rt.rayColor(ray, rt.config.MaxDepth, sampler))
	}

	colorVec := colorAccum.Divide(float32(rt.config.SamplesPerPixel)).
		GammaCorrect().
		Clamp(0, 1)

	r := uint32(colorVec.X * 255)
	g := uint32(colorVec.Y * 255)
	b := uint32(colorVec.Z * 255)
	return r<<16 | g<<8 | b
}

// renderRow renders one scanline into the bitmap. Rows never overlap, so
// concurrent calls for distinct rows need no synchronization.
func (rt *Raytracer) renderRow(y int, bmp *framebuffer.Bitmap, sampler core.Sampler) {
	for x := 0; x < rt.width; x++ {
		bmp.Set(x, y, rt.renderPixel(x, y, sampler))
	}
}
