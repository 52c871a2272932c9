package world

// SurfaceSizer receives the drawing surface size and pixel ratio.
type SurfaceSizer interface {
	SetSize(width, height int)
	SetPixelRatio(ratio float32)
}

// Projection is the part of the camera that depends on the viewport.
type Projection interface {
	SetAspect(aspect float32)
}

// Viewport keeps the camera aspect and the surface size in step with the
// window.
type Viewport struct {
	Width         int
	Height        int
	PixelRatio    float32
	MaxPixelRatio float32

	camera  Projection
	surface SurfaceSizer
}

func NewViewport(camera Projection, surface SurfaceSizer, maxPixelRatio float32) *Viewport {
	return &Viewport{camera: camera, surface: surface, MaxPixelRatio: maxPixelRatio}
}

// Resize applies a new window size and device pixel ratio. Non-positive sizes
// (a minimised window) are ignored and leave the previous state untouched.
// It reports whether anything was applied.
func (v *Viewport) Resize(width, height int, devicePixelRatio float32) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	ratio := devicePixelRatio
	if ratio <= 0 {
		ratio = 1
	}
	ratio = min(ratio, v.MaxPixelRatio)

	v.Width, v.Height, v.PixelRatio = width, height, ratio
	v.camera.SetAspect(float32(width) / float32(height))
	v.surface.SetSize(width, height)
	v.surface.SetPixelRatio(ratio)
	return true
}

func (v *Viewport) Aspect() float32 {
	if v.Height == 0 {
		return 0
	}
	return float32(v.Width) / float32(v.Height)
}
