// Package materials analyzes which materials a scene hierarchy uses and
// keeps a selection of scene objects in sync with a material list.
package materials

import (
	"github.com/google/uuid"
)

// Shader is the program a material renders with.
type Shader struct {
	Name string
}

// Material is a shared render asset. Two slots refer to the same material
// when they hold the same pointer.
type Material struct {
	ID        uuid.UUID
	Name      string
	Shader    *Shader // nil when the shader is missing
	AssetPath string
}

// NewMaterial creates a material with a fresh ID.
func NewMaterial(name, assetPath string, shader *Shader) *Material {
	return &Material{ID: uuid.New(), Name: name, Shader: shader, AssetPath: assetPath}
}

// ComponentKind identifies what a component is.
type ComponentKind int

const (
	KindUnknown ComponentKind = iota
	KindTransform
	KindMeshFilter
	KindMeshRenderer
	KindParticleSystem
	KindParticleSystemRenderer
	KindCollider
	KindScript
)

var kindNames = map[ComponentKind]string{
	KindUnknown:                "Unknown",
	KindTransform:              "Transform",
	KindMeshFilter:             "MeshFilter",
	KindMeshRenderer:           "MeshRenderer",
	KindParticleSystem:         "ParticleSystem",
	KindParticleSystemRenderer: "ParticleSystemRenderer",
	KindCollider:               "Collider",
	KindScript:                 "Script",
}

// String returns the kind's name as written in scene files.
func (k ComponentKind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "Unknown"
}

// ParseKind maps a scene-file name to a kind. Unrecognized names map to
// KindUnknown and report false.
func ParseKind(name string) (ComponentKind, bool) {
	for k, n := range kindNames {
		if n == name && k != KindUnknown {
			return k, true
		}
	}
	return KindUnknown, false
}

// materialSource returns the material slots a component renders with.
type materialSource func(c *Component) []*Material

func sharedMaterials(c *Component) []*Material {
	return c.Materials
}

// renderers is the capability table of renderer-like kinds. Kinds not
// listed here never contribute materials.
var renderers = map[ComponentKind]materialSource{
	KindMeshRenderer:           sharedMaterials,
	KindParticleSystemRenderer: sharedMaterials,
}

// IsRenderer reports whether components of this kind reference materials.
func (k ComponentKind) IsRenderer() bool {
	_, ok := renderers[k]
	return ok
}

// Component is attached to an object. A nil *Component stands for a
// component whose script is missing.
type Component struct {
	Kind      ComponentKind
	Materials []*Material // slots; nil entries are empty slots
}

// SharedMaterials returns the material slots of a renderer-like
// component, or nil for any other kind.
func (c *Component) SharedMaterials() []*Material {
	if c == nil {
		return nil
	}
	src, ok := renderers[c.Kind]
	if !ok {
		return nil
	}
	return src(c)
}

// Object is a node of the scene hierarchy.
type Object struct {
	ID         uuid.UUID
	Name       string
	Components []*Component
	Children   []*Object
}

// NewObject creates an object with a fresh ID.
func NewObject(name string, components ...*Component) *Object {
	return &Object{ID: uuid.New(), Name: name, Components: components}
}

// AddChild appends child and returns it.
func (o *Object) AddChild(child *Object) *Object {
	o.Children = append(o.Children, child)
	return child
}

// Find returns the first descendant (or o itself) at the slash-separated
// path of names relative to o, or nil.
func (o *Object) Find(path []string) *Object {
	if len(path) == 0 || o.Name != path[0] {
		return nil
	}
	if len(path) == 1 {
		return o
	}
	for _, c := range o.Children {
		if found := c.Find(path[1:]); found != nil {
			return found
		}
	}
	return nil
}
