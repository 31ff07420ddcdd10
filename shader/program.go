package shader

import (
	"fmt"
	"strings"

	"github.com/gogpu/nle/value"
)

// Dialect selects the shading language of a generated program.
type Dialect uint8

const (
	// GLSL emits a GLSL 1.10 fragment program.
	GLSL Dialect = iota
	// WGSL emits a WGSL fragment entry point that naga can compile.
	WGSL
)

// String returns the dialect name.
func (d Dialect) String() string {
	switch d {
	case GLSL:
		return "glsl"
	case WGSL:
		return "wgsl"
	default:
		return "unknown"
	}
}

// EntryPoint is the name of the fragment function in every generated program.
const EntryPoint = "main"

// TexCoord is the name of the interpolated texture coordinate input.
const TexCoord = "ove_texcoord"

// SamplerSuffix is appended to a texture uniform's name to name its sampler
// in dialects with separate sampler objects.
const SamplerSuffix = "_sampler"

// NoBinding marks a uniform without a sampler.
const NoBinding = -1

// Uniform describes one bindable program input. Name always equals the id of
// the node input it is bound from.
type Uniform struct {
	Name    string
	Kind    value.Kind
	Binding int

	// SamplerBinding is the binding of the texture's sampler, or NoBinding.
	SamplerBinding int
}

// SamplerName returns the sampler variable name of a texture uniform.
func (u Uniform) SamplerName() string {
	return u.Name + SamplerSuffix
}

// Program is a generated fragment program.
type Program struct {
	Identity   Identity
	Dialect    Dialect
	Source     string
	EntryPoint string
	Uniforms   []Uniform
}

// Uniform returns the uniform named name.
func (p *Program) Uniform(name string) (Uniform, bool) {
	for _, u := range p.Uniforms {
		if u.Name == name {
			return u, true
		}
	}
	return Uniform{}, false
}

// Generate builds the fragment program combining two operands.
//
// inputA and inputB are the node input ids of the operands and become the
// uniform names. The kinds in id decide each operand's uniform type: a texture
// is sampled at the texture coordinate, anything else is a float uniform.
// Generate is a pure function of its arguments.
func Generate(id Identity, inputA, inputB string, d Dialect) Program {
	uniforms := bindUniforms([]operand{
		{name: inputA, kind: id.KindA},
		{name: inputB, kind: id.KindB},
	})

	var src string
	switch d {
	case WGSL:
		src = wgslSource(id.Op, uniforms)
	default:
		d = GLSL
		src = glslSource(id.Op, uniforms)
	}

	return Program{
		Identity:   id,
		Dialect:    d,
		Source:     src,
		EntryPoint: EntryPoint,
		Uniforms:   uniforms,
	}
}

type operand struct {
	name string
	kind value.Kind
}

// bindUniforms assigns sequential bindings in operand order. Textures take
// an extra binding for their sampler.
func bindUniforms(ops []operand) []Uniform {
	out := make([]Uniform, 0, len(ops))
	next := 0
	for _, op := range ops {
		kind := op.kind
		if kind != value.KindTexture {
			kind = value.KindFloat
		}
		u := Uniform{Name: op.name, Kind: kind, Binding: next, SamplerBinding: NoBinding}
		next++
		if kind == value.KindTexture {
			u.SamplerBinding = next
			next++
		}
		out = append(out, u)
	}
	return out
}

func isTexture(u Uniform) bool { return u.Kind == value.KindTexture }

// glslUniformType returns the declared GLSL type of an operand.
func glslUniformType(u Uniform) string {
	if isTexture(u) {
		return "sampler2D"
	}
	return "float"
}

// glslVariableCall returns the GLSL expression reading an operand.
func glslVariableCall(u Uniform) string {
	if isTexture(u) {
		return fmt.Sprintf("texture2D(%s, %s)", u.Name, TexCoord)
	}
	return u.Name
}

func glslSource(op Operation, us []Uniform) string {
	var b strings.Builder
	b.WriteString("#version 110\n\n")
	fmt.Fprintf(&b, "varying vec2 %s;\n\n", TexCoord)
	for _, u := range us {
		fmt.Fprintf(&b, "uniform %s %s;\n", glslUniformType(u), u.Name)
	}

	expr := joinOperands(op, us, glslVariableCall)
	if !anyTexture(us) {
		// Scalar-only results still need a vec4 color.
		expr = "vec4(" + expr + ")"
	}

	fmt.Fprintf(&b, "\nvoid %s(void) {\n", EntryPoint)
	fmt.Fprintf(&b, "  gl_FragColor = %s;\n", expr)
	b.WriteString("}\n")
	return b.String()
}

// wgslVariableCall returns the WGSL expression reading an operand as vec4.
func wgslVariableCall(u Uniform) string {
	if isTexture(u) {
		return fmt.Sprintf("textureSample(%s, %s, %s)", u.Name, u.SamplerName(), TexCoord)
	}
	return fmt.Sprintf("vec4<f32>(%s)", u.Name)
}

func wgslSource(op Operation, us []Uniform) string {
	var b strings.Builder
	for _, u := range us {
		if isTexture(u) {
			fmt.Fprintf(&b, "@group(0) @binding(%d) var %s: texture_2d<f32>;\n", u.Binding, u.Name)
			fmt.Fprintf(&b, "@group(0) @binding(%d) var %s: sampler;\n", u.SamplerBinding, u.SamplerName())
			continue
		}
		fmt.Fprintf(&b, "@group(0) @binding(%d) var<uniform> %s: f32;\n", u.Binding, u.Name)
	}

	b.WriteString("\n@fragment\n")
	fmt.Fprintf(&b, "fn %s(@location(0) %s: vec2<f32>) -> @location(0) vec4<f32> {\n", EntryPoint, TexCoord)
	fmt.Fprintf(&b, "    return %s;\n", joinOperands(op, us, wgslVariableCall))
	b.WriteString("}\n")
	return b.String()
}

func joinOperands(op Operation, us []Uniform, call func(Uniform) string) string {
	parts := make([]string, len(us))
	for i, u := range us {
		parts[i] = call(u)
	}
	return strings.Join(parts, " "+op.Symbol()+" ")
}

func anyTexture(us []Uniform) bool {
	for _, u := range us {
		if isTexture(u) {
			return true
		}
	}
	return false
}
