package world

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Surface is the offscreen colour target the lit pass draws into. Its backing
// size is the logical window size times the pixel ratio; it is reallocated
// lazily on the next Begin after either changes.
type Surface struct {
	Width      int
	Height     int
	PixelRatio float32

	target rl.RenderTexture2D
	loaded bool
	dirty  bool
}

func NewSurface(width, height int, pixelRatio float32) *Surface {
	return &Surface{Width: width, Height: height, PixelRatio: pixelRatio, dirty: true}
}

func (s *Surface) SetSize(width, height int) {
	if width == s.Width && height == s.Height {
		return
	}
	s.Width, s.Height = width, height
	s.dirty = true
}

func (s *Surface) SetPixelRatio(ratio float32) {
	if ratio == s.PixelRatio {
		return
	}
	s.PixelRatio = ratio
	s.dirty = true
}

// BackingSize is the size in texels of the render target.
func (s *Surface) BackingSize() (int32, int32) {
	w := int32(float32(s.Width)*s.PixelRatio + 0.5)
	h := int32(float32(s.Height)*s.PixelRatio + 0.5)
	return max(w, 1), max(h, 1)
}

func (s *Surface) Begin() {
	if s.dirty || !s.loaded {
		if s.loaded {
			rl.UnloadRenderTexture(s.target)
		}
		w, h := s.BackingSize()
		s.target = rl.LoadRenderTexture(w, h)
		rl.SetTextureFilter(s.target.Texture, rl.FilterBilinear)
		s.loaded = true
		s.dirty = false
	}
	rl.BeginTextureMode(s.target)
}

func (s *Surface) End() {
	rl.EndTextureMode()
}

// Present blits the surface to the window, scaled to the logical size.
// Render textures are stored bottom-up, hence the negative source height.
func (s *Surface) Present() {
	if !s.loaded {
		return
	}
	tex := s.target.Texture
	src := rl.Rectangle{X: 0, Y: 0, Width: float32(tex.Width), Height: -float32(tex.Height)}
	dst := rl.Rectangle{X: 0, Y: 0, Width: float32(s.Width), Height: float32(s.Height)}
	rl.DrawTexturePro(tex, src, dst, rl.Vector2{}, 0, rl.White)
}

func (s *Surface) Unload() {
	if s.loaded {
		rl.UnloadRenderTexture(s.target)
		s.loaded = false
	}
}
