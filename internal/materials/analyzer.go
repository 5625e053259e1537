package materials

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tiny-planets/internal/logging"
)

// MissingShader is displayed in place of a missing shader name.
const MissingShader = "<MISSING>"

const dumpIndent = "    "

// Entry groups the objects that reference one material.
type Entry struct {
	Material *Material
	Selected bool

	objects []*Object
	seen    map[*Object]struct{}
}

func newEntry(m *Material) *Entry {
	return &Entry{Material: m, seen: make(map[*Object]struct{})}
}

func (e *Entry) add(o *Object) {
	if _, ok := e.seen[o]; ok {
		return
	}
	e.seen[o] = struct{}{}
	e.objects = append(e.objects, o)
}

// Objects returns the referencing objects in discovery order.
func (e *Entry) Objects() []*Object {
	return e.objects
}

// Contains reports whether o references the entry's material.
func (e *Entry) Contains(o *Object) bool {
	_, ok := e.seen[o]
	return ok
}

// Diagnostic reports a component with empty material slots.
type Diagnostic struct {
	Object    *Object
	Component ComponentKind
	Missing   int // empty slots on the component
}

// String formats the diagnostic the way it is logged.
func (d Diagnostic) String() string {
	return fmt.Sprintf("Material(s) missing in game object '%s'!", d.Object.Name)
}

// Row is one display line of the material list.
type Row struct {
	Name     string
	Shader   string
	Path     string
	Objects  int
	Selected bool
}

// Analyzer collects the materials used by a set of root objects.
// It is not safe for concurrent use; a scan completes before its results
// are read.
type Analyzer struct {
	logger  *log.Logger
	index   map[*Material]*Entry
	entries []*Entry
	diags   []Diagnostic
	dump    strings.Builder

	selection []*Object
	active    *Material
}

// NewAnalyzer creates an analyzer. A nil logger discards warnings.
func NewAnalyzer(logger *log.Logger) *Analyzer {
	return &Analyzer{
		logger: logging.OrDiscard(logger),
		index:  make(map[*Material]*Entry),
	}
}

// Analyze rebuilds the material list from roots, walking each hierarchy
// depth-first. Empty material slots are diagnosed and skipped.
func (a *Analyzer) Analyze(roots []*Object) {
	a.index = make(map[*Material]*Entry)
	a.entries = nil
	a.diags = nil
	a.dump.Reset()
	a.selection = nil
	a.active = nil

	if len(roots) == 0 {
		a.logger.Warn("Please select the object(s) you wish to analyze.")
		return
	}

	for _, root := range roots {
		a.walk(root, "")
	}

	slices.SortFunc(a.entries, func(x, y *Entry) int {
		return cmp.Or(
			strings.Compare(x.Material.Name, y.Material.Name),
			strings.Compare(x.Material.AssetPath, y.Material.AssetPath),
			strings.Compare(x.Material.ID.String(), y.Material.ID.String()),
		)
	})
	a.logger.Debug("analysis complete", "roots", len(roots), "materials", len(a.entries), "diagnostics", len(a.diags))
}

func (a *Analyzer) walk(o *Object, indent string) {
	if o == nil {
		return
	}
	a.dump.WriteString(indent + o.Name + "\n")

	for _, c := range o.Components {
		a.component(o, c, indent+dumpIndent)
	}
	for _, child := range o.Children {
		a.walk(child, indent+dumpIndent)
	}
}

func (a *Analyzer) component(o *Object, c *Component, indent string) {
	// Missing scripts are skipped.
	if c == nil {
		return
	}

	missing := 0
	for _, m := range c.SharedMaterials() {
		if m == nil {
			missing++
			a.dump.WriteString(indent + "> MISSING\n")
			continue
		}

		e, ok := a.index[m]
		if !ok {
			e = newEntry(m)
			a.index[m] = e
			a.entries = append(a.entries, e)
		}
		e.add(o)
		a.dump.WriteString(indent + "> " + m.Name + " " + dumpShader(m) + "\n")
	}

	if missing > 0 {
		d := Diagnostic{Object: o, Component: c.Kind, Missing: missing}
		a.diags = append(a.diags, d)
		a.logger.Warn(d.String(), "component", c.Kind, "slots", missing)
	}
}

// Entries returns the material entries ordered by material name, then
// asset path, then ID.
func (a *Analyzer) Entries() []*Entry {
	return a.entries
}

// Len returns the number of distinct materials found.
func (a *Analyzer) Len() int {
	return len(a.entries)
}

// Lookup returns the entry of a material, or nil.
func (a *Analyzer) Lookup(m *Material) *Entry {
	return a.index[m]
}

// Rows returns the display rows in entry order.
func (a *Analyzer) Rows() []Row {
	rows := make([]Row, len(a.entries))
	for i, e := range a.entries {
		rows[i] = Row{
			Name:     e.Material.Name,
			Shader:   ShaderName(e.Material),
			Path:     DisplayPath(e.Material.AssetPath),
			Objects:  len(e.objects),
			Selected: e.Selected,
		}
	}
	return rows
}

// Diagnostics returns the empty-slot reports of the last scan.
func (a *Analyzer) Diagnostics() []Diagnostic {
	return a.diags
}

// Dump returns an indented text listing of the scanned hierarchy.
func (a *Analyzer) Dump() string {
	return a.dump.String()
}

// SelectObjects selects the objects of an entry. With multi the entry's
// flag is toggled and other entries keep theirs; otherwise the entry
// becomes the only selected one. The returned selection is the union of
// the objects of all selected entries, without duplicates.
func (a *Analyzer) SelectObjects(e *Entry, multi bool) []*Object {
	if e == nil || a.index[e.Material] != e {
		return a.selection
	}

	if multi {
		e.Selected = !e.Selected
	} else {
		for _, other := range a.entries {
			other.Selected = false
		}
		e.Selected = true
	}

	a.active = nil
	a.selection = nil
	seen := make(map[*Object]struct{})
	for _, entry := range a.entries {
		if !entry.Selected {
			continue
		}
		for _, o := range entry.objects {
			if _, ok := seen[o]; ok {
				continue
			}
			seen[o] = struct{}{}
			a.selection = append(a.selection, o)
		}
	}
	return a.selection
}

// SelectMaterial clears every entry flag and makes the entry's material
// the active selection instead of scene objects.
func (a *Analyzer) SelectMaterial(e *Entry) *Material {
	if e == nil || a.index[e.Material] != e {
		return a.active
	}
	for _, other := range a.entries {
		other.Selected = false
	}
	a.selection = nil
	a.active = e.Material
	return a.active
}

// Selection returns the currently selected scene objects.
func (a *Analyzer) Selection() []*Object {
	return a.selection
}

// ActiveMaterial returns the material chosen with SelectMaterial, or nil.
func (a *Analyzer) ActiveMaterial() *Material {
	return a.active
}

// ShaderName returns the material's shader name or MissingShader.
func ShaderName(m *Material) string {
	if m == nil || m.Shader == nil {
		return MissingShader
	}
	return m.Shader.Name
}

// dumpShader is the shader part of a dump line. MissingShader already
// carries its brackets.
func dumpShader(m *Material) string {
	if m.Shader == nil {
		return MissingShader
	}
	return "<" + m.Shader.Name + ">"
}

// DisplayPath shortens an asset path for display by dropping the "Assets/"
// prefix and ".mat" suffix.
func DisplayPath(p string) string {
	p = strings.TrimPrefix(p, "Assets/")
	return strings.TrimSuffix(p, ".mat")
}
