package world

import (
	"fmt"

	"lightwall/internal/assets"
	"lightwall/internal/components"
	"lightwall/internal/config"
	"lightwall/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	ShadowNear float32 = 1.0
	ShadowFar  float32 = 150.0
	// ShadowFOV is wide enough for a light at the front of the room to see
	// the whole floor and wall.
	ShadowFOV  float32 = 120.0
)

var shadowTarget = rl.Vector3{X: 0, Y: 0, Z: 5}

type shaderLocs struct {
	viewPos, lightPos, lightColor, ambient int32
	roughness, receiveShadow, shadowPass   int32
	matLightVP, shadowMap, shadowMapSize   int32
	fogColor, fogNear, fogFar              int32
}

// Renderer draws the scene in two passes: depth from the point light into a
// shadow map, then the lit scene into the surface.
type Renderer struct {
	Shader      rl.Shader
	ShadowMap   rl.RenderTexture2D
	Light       *components.PointLight
	Ambient     *components.AmbientLight
	LightCamera rl.Camera3D
	MatLightVP  rl.Matrix

	// Overlays are drawn on top of the composited scene, in order.
	Overlays []func()

	cfg        config.Render
	surface    *Surface
	locs       shaderLocs
	background rl.Color
	fog        rl.Color
}

func NewRenderer(cfg config.Render, surface *Surface) (*Renderer, error) {
	bg, err := components.ColorFromHex(cfg.Background)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}
	fog, err := components.ColorFromHex(cfg.FogColour)
	if err != nil {
		return nil, fmt.Errorf("fog: %w", err)
	}
	return &Renderer{
		cfg:        cfg,
		surface:    surface,
		background: bg,
		fog:        fog,
	}, nil
}

// Initialize compiles the scene shader and allocates the shadow map. It needs
// a live GL context.
func (r *Renderer) Initialize() error {
	shader, err := assets.LoadShader("scene")
	if err != nil {
		return fmt.Errorf("load scene shader: %w", err)
	}
	r.Shader = shader

	r.locs = shaderLocs{
		viewPos:       rl.GetShaderLocation(shader, "viewPos"),
		lightPos:      rl.GetShaderLocation(shader, "lightPos"),
		lightColor:    rl.GetShaderLocation(shader, "lightColor"),
		ambient:       rl.GetShaderLocation(shader, "ambient"),
		roughness:     rl.GetShaderLocation(shader, "roughness"),
		receiveShadow: rl.GetShaderLocation(shader, "receiveShadow"),
		shadowPass:    rl.GetShaderLocation(shader, "shadowPass"),
		matLightVP:    rl.GetShaderLocation(shader, "matLightVP"),
		shadowMap:     rl.GetShaderLocation(shader, "shadowMap"),
		shadowMapSize: rl.GetShaderLocation(shader, "shadowMapSize"),
		fogColor:      rl.GetShaderLocation(shader, "fogColor"),
		fogNear:       rl.GetShaderLocation(shader, "fogNear"),
		fogFar:        rl.GetShaderLocation(shader, "fogFar"),
	}

	size := int32(r.cfg.ShadowMapSize)
	r.ShadowMap = loadShadowmapRenderTexture(size, size)

	rl.SetShaderValue(shader, r.locs.shadowMapSize, []float32{float32(size)}, rl.ShaderUniformFloat)
	rl.SetShaderValue(shader, r.locs.fogColor, colorVec(r.fog), rl.ShaderUniformVec3)
	rl.SetShaderValue(shader, r.locs.fogNear, []float32{r.cfg.FogNear}, rl.ShaderUniformFloat)
	rl.SetShaderValue(shader, r.locs.fogFar, []float32{r.cfg.FogFar}, rl.ShaderUniformFloat)
	return nil
}

func (r *Renderer) SetLights(point *components.PointLight, ambient *components.AmbientLight) {
	r.Light = point
	r.Ambient = ambient
}

// Render draws one frame: shadow pass, lit pass into the surface, then the
// surface and overlays onto the window.
func (r *Renderer) Render(scene *engine.Scene, cam *components.Camera) {
	meshes := engine.Components[*components.MeshRenderer](scene)
	for _, m := range meshes {
		m.Upload(r.Shader)
	}

	r.updateLightUniforms()
	r.DrawShadowMap(meshes)

	r.surface.Begin()
	rl.ClearBackground(r.background)
	rl.BeginMode3D(cam.GetRaylibCamera())
	rl.SetMatrixProjection(cam.ProjectionMatrix())
	r.DrawWithShadows(cam.Position(), meshes)
	rl.EndMode3D()
	r.surface.End()

	rl.BeginDrawing()
	rl.ClearBackground(r.background)
	r.surface.Present()
	for _, draw := range r.Overlays {
		draw()
	}
	rl.EndDrawing()
}

func (r *Renderer) updateLightUniforms() {
	if r.Light != nil {
		pos := r.Light.GetPosition()
		rl.SetShaderValue(r.Shader, r.locs.lightPos, []float32{pos.X, pos.Y, pos.Z}, rl.ShaderUniformVec3)
		rl.SetShaderValue(r.Shader, r.locs.lightColor, r.Light.GetColorFloat(), rl.ShaderUniformVec3)
		r.LightCamera = rl.Camera3D{
			Position:   pos,
			Target:     shadowTarget,
			Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
			Fovy:       ShadowFOV,
			Projection: rl.CameraPerspective,
		}
	}
	if r.Ambient != nil {
		rl.SetShaderValue(r.Shader, r.locs.ambient, r.Ambient.GetColorFloat(), rl.ShaderUniformVec3)
	}
}

func (r *Renderer) DrawShadowMap(meshes []*components.MeshRenderer) {
	if r.Light == nil || !r.Light.CastShadow {
		return
	}
	rl.BeginTextureMode(r.ShadowMap)
	rl.ClearBackground(rl.White)

	rl.BeginMode3D(r.LightCamera)

	lightProj := rl.MatrixPerspective(ShadowFOV*rl.Deg2rad, 1, ShadowNear, ShadowFar)
	rl.SetMatrixProjection(lightProj)
	lightView := rl.GetMatrixModelview()

	rl.SetShaderValue(r.Shader, r.locs.shadowPass, []float32{1}, rl.ShaderUniformFloat)
	for _, m := range meshes {
		if m.CastShadow {
			m.Draw()
		}
	}
	rl.SetShaderValue(r.Shader, r.locs.shadowPass, []float32{0}, rl.ShaderUniformFloat)

	rl.EndMode3D()
	rl.EndTextureMode()

	r.MatLightVP = rl.MatrixMultiply(lightView, lightProj)
}

func (r *Renderer) DrawWithShadows(cameraPos rl.Vector3, meshes []*components.MeshRenderer) {
	rl.SetShaderValue(r.Shader, r.locs.viewPos, []float32{cameraPos.X, cameraPos.Y, cameraPos.Z}, rl.ShaderUniformVec3)
	rl.SetShaderValueMatrix(r.Shader, r.locs.matLightVP, r.MatLightVP)

	rl.EnableShader(r.Shader.ID)
	textureSlot := int32(10)
	rl.ActiveTextureSlot(textureSlot)
	rl.EnableTexture(r.ShadowMap.Depth.ID)
	rl.SetUniform(r.locs.shadowMap, []int32{textureSlot}, int32(rl.ShaderUniformInt), 1)

	shadows := r.Light != nil && r.Light.CastShadow
	for _, m := range meshes {
		receive := float32(0)
		if shadows && m.ReceiveShadow {
			receive = 1
		}
		rl.SetShaderValue(r.Shader, r.locs.receiveShadow, []float32{receive}, rl.ShaderUniformFloat)
		rl.SetShaderValue(r.Shader, r.locs.roughness, []float32{m.Material.Roughness}, rl.ShaderUniformFloat)
		m.Draw()
	}
}

func (r *Renderer) Unload(scene *engine.Scene) {
	rl.UnloadShader(r.Shader)
	rl.UnloadRenderTexture(r.ShadowMap)
	r.surface.Unload()

	for _, m := range engine.Components[*components.MeshRenderer](scene) {
		m.Unload()
	}
}

func colorVec(c rl.Color) []float32 {
	return []float32{float32(c.R) / 255.0, float32(c.G) / 255.0, float32(c.B) / 255.0}
}

func loadShadowmapRenderTexture(width, height int32) rl.RenderTexture2D {
	target := rl.RenderTexture2D{}

	target.ID = rl.LoadFramebuffer()
	target.Texture.Width = width
	target.Texture.Height = height

	if target.ID > 0 {
		rl.EnableFramebuffer(target.ID)

		target.Depth.ID = rl.LoadTextureDepth(width, height, false)
		target.Depth.Width = width
		target.Depth.Height = height
		target.Depth.Format = 19
		target.Depth.Mipmaps = 1

		rl.FramebufferAttach(target.ID, target.Depth.ID, rl.AttachmentDepth, rl.AttachmentTexture2d, 0)

		rl.DisableFramebuffer()
	}

	return target
}
