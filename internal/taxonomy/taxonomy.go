package taxonomy

import (
	"errors"
	"fmt"
	"strings"
)

// Axis names. Votes are keyed by these, so they are part of the stored data
// and must stay stable across releases.
const (
	AxisPrimaryGeographic   = "primary_geographic"
	AxisSecondaryGeographic = "secondary_geographic"
	AxisTertiaryGeographic  = "tertiary_geographic"

	AxisPrimaryPhenotype   = "primary_phenotype"
	AxisSecondaryPhenotype = "secondary_phenotype"
	AxisTertiaryPhenotype  = "tertiary_phenotype"

	AxisHairColor   = "hair_color"
	AxisHairTexture = "hair_texture"
	AxisEyeColor    = "eye_color"
	AxisSkinTone    = "skin_tone"
	AxisHeight      = "height"
	AxisBuild       = "build"
)

const (
	FamilyGeographic = "geographic"
	FamilyPhenotype  = "phenotype"
)

var ErrUnknownAxis = errors.New("unknown axis")

// Group is one node of an axis tree. Its label and all labels below it are
// independently selectable values of the axis.
type Group struct {
	Label    string  `json:"label"`
	Children []Group `json:"children,omitempty"`
}

// Hierarchy is an ordered primary -> secondary -> tertiary axis chain
// sharing one value domain and the no-duplicate-ancestor rule.
type Hierarchy struct {
	Family string
	Axes   []string
}

type axis struct {
	tree      []Group
	values    []string
	canonical map[string]string
}

var registry = map[string]*axis{}

func init() {
	registerTreeAxis(AxisPrimaryGeographic, geographicTree)
	registerTreeAxis(AxisSecondaryGeographic, geographicTree)
	registerTreeAxis(AxisTertiaryGeographic, geographicTree)

	registerTreeAxis(AxisPrimaryPhenotype, phenotypeTree)
	registerTreeAxis(AxisSecondaryPhenotype, phenotypeTree)
	registerTreeAxis(AxisTertiaryPhenotype, phenotypeTree)

	registerFlatAxis(AxisHairColor, hairColors)
	registerFlatAxis(AxisHairTexture, hairTextures)
	registerFlatAxis(AxisEyeColor, eyeColors)
	registerFlatAxis(AxisSkinTone, skinTones)
	registerFlatAxis(AxisHeight, heights)
	registerFlatAxis(AxisBuild, builds)
}

func registerFlatAxis(name string, values []string) {
	a := &axis{canonical: make(map[string]string, len(values))}
	for _, v := range values {
		a.addValue(v)
	}
	registry[name] = a
}

func registerTreeAxis(name string, tree []Group) {
	a := &axis{tree: tree, canonical: make(map[string]string)}
	var walk func(groups []Group)
	walk = func(groups []Group) {
		for _, g := range groups {
			a.addValue(g.Label)
			walk(g.Children)
		}
	}
	walk(tree)
	registry[name] = a
}

func (a *axis) addValue(v string) {
	key := strings.ToLower(v)
	if _, ok := a.canonical[key]; ok {
		return
	}
	a.canonical[key] = v
	a.values = append(a.values, v)
}

// Values returns the full value domain of an axis in declared order,
// tree axes flattened depth-first.
func Values(axisName string) ([]string, error) {
	a, ok := registry[axisName]
	if !ok {
		return nil, fmt.Errorf("taxonomy.Values: %w: %s", ErrUnknownAxis, axisName)
	}
	out := make([]string, len(a.values))
	copy(out, a.values)
	return out, nil
}

// IsValid reports whether value belongs to the axis domain.
// Matching is case-insensitive.
func IsValid(axisName, value string) bool {
	_, ok := Canonical(axisName, value)
	return ok
}

// Canonical resolves a case-insensitive value to its declared spelling.
func Canonical(axisName, value string) (string, bool) {
	a, ok := registry[axisName]
	if !ok {
		return "", false
	}
	c, ok := a.canonical[strings.ToLower(strings.TrimSpace(value))]
	return c, ok
}

// Tree returns the presentation grouping of an axis. Flat axes return a
// single level of childless groups.
func Tree(axisName string) ([]Group, error) {
	a, ok := registry[axisName]
	if !ok {
		return nil, fmt.Errorf("taxonomy.Tree: %w: %s", ErrUnknownAxis, axisName)
	}
	if a.tree != nil {
		return a.tree, nil
	}
	out := make([]Group, 0, len(a.values))
	for _, v := range a.values {
		out = append(out, Group{Label: v})
	}
	return out, nil
}

// Axes lists every registered axis name, hierarchical chains first.
func Axes() []string {
	return []string{
		AxisPrimaryGeographic, AxisSecondaryGeographic, AxisTertiaryGeographic,
		AxisPrimaryPhenotype, AxisSecondaryPhenotype, AxisTertiaryPhenotype,
		AxisHairColor, AxisHairTexture, AxisEyeColor,
		AxisSkinTone, AxisHeight, AxisBuild,
	}
}

// Hierarchies returns the two primary->secondary->tertiary chains.
func Hierarchies() []Hierarchy {
	return []Hierarchy{
		{
			Family: FamilyGeographic,
			Axes:   []string{AxisPrimaryGeographic, AxisSecondaryGeographic, AxisTertiaryGeographic},
		},
		{
			Family: FamilyPhenotype,
			Axes:   []string{AxisPrimaryPhenotype, AxisSecondaryPhenotype, AxisTertiaryPhenotype},
		},
	}
}

// HierarchyByFamily looks a chain up by its family name.
func HierarchyByFamily(family string) (Hierarchy, bool) {
	for _, h := range Hierarchies() {
		if h.Family == family {
			return h, true
		}
	}
	return Hierarchy{}, false
}
