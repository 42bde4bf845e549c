package renderer

import (
	"testing"

	"github.com/menuan/kektracer/pkg/framebuffer"
	scenepkg "github.com/menuan/kektracer/pkg/scene"
)

func TestWorkerPool_DefaultsToOnePerCPU(t *testing.T) {
	rt := NewRaytracer(emptyScene(1), 4, 4)
	bmp := framebuffer.NewBitmap(4, 4)

	pool := newWorkerPool(rt, bmp, 0)
	if pool.numWorkers <= 0 {
		t.Errorf("Worker count must default to a positive value, got %d", pool.numWorkers)
	}
}

func TestWorkerPool_MoreWorkersThanRows(t *testing.T) {
	s := emptyScene(1)
	rt := NewRaytracer(s, 4, 2)
	rt.SetSamplingConfig(SamplingConfig{SamplesPerPixel: 1, MaxDepth: 2})
	rt.SetWorkers(8) // more workers than scanlines

	bmp := framebuffer.NewBitmap(4, 2)
	stats := rt.Render(bmp)

	if stats.Workers != 8 {
		t.Errorf("Expected 8 workers, got %d", stats.Workers)
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			if packed, _ := bmp.At(x, y); packed&0x00ffffff == 0 {
				t.Fatalf("Pixel (%d,%d) was never written", x, y)
			}
		}
	}
}

func TestRender_RepeatedRunsFullyRepopulate(t *testing.T) {
	s := scenepkg.NewDefaultScene(1)
	rt := NewRaytracer(s, 4, 4)
	rt.SetSamplingConfig(SamplingConfig{SamplesPerPixel: 1, MaxDepth: 4})

	bmp := framebuffer.NewBitmap(4, 4)
	rt.Render(bmp)
	first := make([]uint32, len(bmp.Pix()))
	copy(first, bmp.Pix())

	bmp.Fill(0)
	rt.Render(bmp)

	// Colors differ between runs (fresh random seeds) but every pixel is
	// written again; the buffer must not retain the cleared state anywhere
	// the sky or a lit surface is visible
	sky := 0
	for _, p := range bmp.Pix() {
		if p&0x00ffffff != 0 {
			sky++
		}
	}
	if sky == 0 {
		t.Error("Second render left the buffer empty")
	}
}
