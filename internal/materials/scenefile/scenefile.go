// Package scenefile reads YAML scene documents into object hierarchies the
// material analyzer can scan.
package scenefile

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tiny-planets/internal/materials"
)

// KindMissing marks a component whose script could not be loaded.
const KindMissing = "Missing"

// Document is the on-disk form of a scene.
type Document struct {
	Name      string        `yaml:"name"`
	Materials []MaterialDoc `yaml:"materials"`
	Objects   []ObjectDoc   `yaml:"objects"`
}

// MaterialDoc declares a material asset.
type MaterialDoc struct {
	Path   string `yaml:"path"`
	Name   string `yaml:"name"`   // defaults to the file name without extension
	Shader string `yaml:"shader"` // empty means the shader is missing
}

// ObjectDoc is a node of the hierarchy.
type ObjectDoc struct {
	Name       string         `yaml:"name"`
	Components []ComponentDoc `yaml:"components"`
	Children   []ObjectDoc    `yaml:"children"`
}

// ComponentDoc is a component with material references by asset path.
type ComponentDoc struct {
	Kind      string   `yaml:"kind"`
	Materials []string `yaml:"materials"`
}

// Scene is a loaded document.
type Scene struct {
	Name      string
	Path      string
	Roots     []*materials.Object
	Materials map[string]*materials.Material // by asset path

	// Unresolved lists material references that name no declared asset.
	Unresolved []string
}

// Load reads and parses a scene file.
func Load(filename string) (*Scene, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("scenefile: cannot read %s: %w", filename, err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scenefile: %s: %w", filename, err)
	}
	sc.Path = filename
	if sc.Name == "" {
		sc.Name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}
	return sc, nil
}

// Parse builds a scene from YAML. Each material path resolves to one shared
// *Material; empty or undeclared references become empty slots.
func Parse(data []byte) (*Scene, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("cannot parse scene: %w", err)
	}

	sc := &Scene{
		Name:      doc.Name,
		Materials: make(map[string]*materials.Material, len(doc.Materials)),
	}
	shaders := make(map[string]*materials.Shader)
	for _, md := range doc.Materials {
		if md.Path == "" {
			return nil, errors.New("material without path")
		}
		if _, dup := sc.Materials[md.Path]; dup {
			return nil, fmt.Errorf("material %q declared twice", md.Path)
		}
		name := md.Name
		if name == "" {
			name = strings.TrimSuffix(path.Base(md.Path), path.Ext(md.Path))
		}
		var shader *materials.Shader
		if md.Shader != "" {
			shader = shaders[md.Shader]
			if shader == nil {
				shader = &materials.Shader{Name: md.Shader}
				shaders[md.Shader] = shader
			}
		}
		sc.Materials[md.Path] = materials.NewMaterial(name, md.Path, shader)
	}

	for _, od := range doc.Objects {
		sc.Roots = append(sc.Roots, sc.buildObject(od))
	}
	return sc, nil
}

func (sc *Scene) buildObject(od ObjectDoc) *materials.Object {
	o := materials.NewObject(od.Name)
	for _, cd := range od.Components {
		o.Components = append(o.Components, sc.buildComponent(cd))
	}
	for _, child := range od.Children {
		o.AddChild(sc.buildObject(child))
	}
	return o
}

func (sc *Scene) buildComponent(cd ComponentDoc) *materials.Component {
	if cd.Kind == KindMissing {
		return nil
	}
	kind, _ := materials.ParseKind(cd.Kind)
	c := &materials.Component{Kind: kind}
	for _, ref := range cd.Materials {
		m := sc.Materials[ref]
		if m == nil && ref != "" {
			sc.Unresolved = append(sc.Unresolved, ref)
		}
		c.Materials = append(c.Materials, m)
	}
	return c
}

// Select returns the objects named by slash-separated paths such as
// "Level/Ship". Each path is looked up in every scene, in order.
// With no paths, all top-level objects of all scenes are returned.
func Select(scenes []*Scene, paths []string) ([]*materials.Object, error) {
	var out []*materials.Object
	if len(paths) == 0 {
		for _, sc := range scenes {
			out = append(out, sc.Roots...)
		}
		return out, nil
	}

	for _, p := range paths {
		parts := strings.Split(strings.Trim(p, "/"), "/")
		found := false
		for _, sc := range scenes {
			for _, root := range sc.Roots {
				if o := root.Find(parts); o != nil {
					out = append(out, o)
					found = true
				}
			}
		}
		if !found {
			return nil, fmt.Errorf("scenefile: no object at %q", p)
		}
	}
	return out, nil
}
