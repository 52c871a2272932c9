// Package assets carries the GLSL sources the renderer compiles at startup.
package assets

import (
	"embed"
	"errors"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

//go:embed shaders
var shaderFS embed.FS

// ErrShader is returned when the GPU rejects a shader program.
var ErrShader = errors.New("shader failed to compile")

// ShaderSource returns the embedded source for shaders/<name>.
func ShaderSource(name string) (string, error) {
	b, err := shaderFS.ReadFile("shaders/" + name)
	if err != nil {
		return "", fmt.Errorf("shader source %s: %w", name, err)
	}
	return string(b), nil
}

// LoadShader compiles shaders/<name>.vs and shaders/<name>.fs. It needs a
// live GL context.
func LoadShader(name string) (rl.Shader, error) {
	vs, err := ShaderSource(name + ".vs")
	if err != nil {
		return rl.Shader{}, err
	}
	fs, err := ShaderSource(name + ".fs")
	if err != nil {
		return rl.Shader{}, err
	}
	shader := rl.LoadShaderFromMemory(vs, fs)
	if !rl.IsShaderValid(shader) {
		return rl.Shader{}, fmt.Errorf("%s: %w", name, ErrShader)
	}
	return shader, nil
}
