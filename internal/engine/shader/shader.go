// Package shader provides OpenGL shader compilation and uniform access.
package shader

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Shader wraps a linked GPU program and caches uniform locations.
type Shader struct {
	Program  uint32
	uniforms map[string]int32
}

// New compiles and links a program from vertex and fragment sources.
func New(vertexSrc, fragmentSrc string) (*Shader, error) {
	program, err := CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}
	return &Shader{
		Program:  program,
		uniforms: make(map[string]int32),
	}, nil
}

// Use makes this program current.
func (s *Shader) Use() {
	gl.UseProgram(s.Program)
}

// Delete releases the program object.
func (s *Shader) Delete() {
	if s.Program != 0 {
		gl.DeleteProgram(s.Program)
		s.Program = 0
	}
}

// Loc returns the cached uniform location (-1 if the uniform is inactive).
func (s *Shader) Loc(name string) int32 {
	if loc, ok := s.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(s.Program, gl.Str(name+"\x00"))
	s.uniforms[name] = loc
	return loc
}

// SetInt sets an int or sampler uniform.
func (s *Shader) SetInt(name string, v int32) {
	gl.Uniform1i(s.Loc(name), v)
}

// SetBool sets a bool uniform (0 or 1).
func (s *Shader) SetBool(name string, v bool) {
	var i int32
	if v {
		i = 1
	}
	gl.Uniform1i(s.Loc(name), i)
}

// SetFloat sets a float uniform.
func (s *Shader) SetFloat(name string, v float32) {
	gl.Uniform1f(s.Loc(name), v)
}

// SetVec3 sets a vec3 uniform.
func (s *Shader) SetVec3(name string, v mgl32.Vec3) {
	gl.Uniform3f(s.Loc(name), v[0], v[1], v[2])
}

// SetVec4 sets a vec4 uniform.
func (s *Shader) SetVec4(name string, v mgl32.Vec4) {
	gl.Uniform4f(s.Loc(name), v[0], v[1], v[2], v[3])
}

// SetMat3 sets a mat3 uniform.
func (s *Shader) SetMat3(name string, m mgl32.Mat3) {
	gl.UniformMatrix3fv(s.Loc(name), 1, false, &m[0])
}

// SetMat4 sets a mat4 uniform.
func (s *Shader) SetMat4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(s.Loc(name), 1, false, &m[0])
}

// SetFloatSlice sets a float[] uniform array.
func (s *Shader) SetFloatSlice(name string, v []float32) {
	if len(v) == 0 {
		return
	}
	gl.Uniform1fv(s.Loc(name), int32(len(v)), &v[0])
}

// SetVec3Slice sets a vec3[] uniform array from a flat [x0 y0 z0 x1 ...] slice.
func (s *Shader) SetVec3Slice(name string, flat []float32) {
	if len(flat) == 0 {
		return
	}
	gl.Uniform3fv(s.Loc(name), int32(len(flat)/3), &flat[0])
}

// CompileProgram compiles vertex and fragment shaders and links them into a
// program. Returns the program ID or an error carrying the GL info log.
func CompileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertShader)

	fragShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertShader)
	gl.AttachShader(program, fragShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetProgramInfoLog(program, logLen, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link: %s", string(log))
	}

	return program, nil
}

// compileShader compiles a single shader of the given type.
func compileShader(source string, shaderType uint32, name string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetShaderInfoLog(shader, logLen, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s shader: %s", name, string(log))
	}

	return shader, nil
}
