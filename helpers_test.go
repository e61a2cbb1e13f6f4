package fontmatch

import "testing"

// fakeFont is a Font backed by a plain descriptor.
type fakeFont struct {
	d Descriptor
}

func (f fakeFont) Descriptor() Descriptor { return f.d }

// fakeCatalog is an in-memory Catalog for tests.
// Families listed in synth report no variants and accept any trait set.
// Families listed in hidden report no variants and reject trait changes.
type fakeCatalog struct {
	variants  map[string]Descriptor
	families  map[string][]string
	synth     map[string]bool
	hidden    map[string]bool
	loadFails map[string]bool

	standardWeights []Weight
}

func newFakeCatalog(ds ...Descriptor) *fakeCatalog {
	c := &fakeCatalog{
		variants:  make(map[string]Descriptor),
		families:  make(map[string][]string),
		synth:     make(map[string]bool),
		hidden:    make(map[string]bool),
		loadFails: make(map[string]bool),
	}
	for _, d := range ds {
		c.variants[d.Name] = d
		c.families[d.Family] = append(c.families[d.Family], d.Name)
	}
	return c
}

func (c *fakeCatalog) VariantNames(family string) []string {
	if c.synth[family] || c.hidden[family] {
		return nil
	}
	return c.families[family]
}

func (c *fakeCatalog) Load(name string, size float64) (Font, bool) {
	if c.loadFails[name] {
		return nil, false
	}
	if d, ok := c.variants[name]; ok {
		d.Size = size
		return fakeFont{d}, true
	}
	if names := c.families[name]; len(names) > 0 {
		return c.Load(names[0], size)
	}
	return nil, false
}

func (c *fakeCatalog) WithTraits(f Font, traits Traits) (Font, bool) {
	d := f.Descriptor()
	if !c.synth[d.Family] {
		return nil, false
	}
	d.Traits = traits
	d.Name += "+" + traits.String()
	return fakeFont{d}, true
}

func (c *fakeCatalog) WithSize(f Font, size float64) Font {
	d := f.Descriptor()
	d.Size = size
	return fakeFont{d}
}

func (c *fakeCatalog) StandardFont(size float64, weight Weight) Font {
	c.standardWeights = append(c.standardWeights, weight)
	return fakeFont{Descriptor{
		Name:   "System-" + weight.String(),
		Family: "System",
		Weight: weight,
		Size:   size,
	}}
}

func (c *fakeCatalog) mustLoad(t *testing.T, name string, size float64) Font {
	t.Helper()
	f, ok := c.Load(name, size)
	if !ok {
		t.Fatalf("Load(%q) failed", name)
	}
	return f
}

// fakeStyles is a TextStyleService with a fixed table.
type fakeStyles map[TextStyle]Descriptor

func (s fakeStyles) PreferredFont(style TextStyle) Font {
	if d, ok := s[style]; ok {
		return fakeFont{d}
	}
	return fakeFont{s[StyleBody]}
}

func fooFamily() []Descriptor {
	return []Descriptor{
		{Name: "Foo-Regular", Family: "Foo", Weight: WeightRegular},
		{Name: "Foo-Bold", Family: "Foo", Traits: Bold, Weight: WeightBold},
		{Name: "Foo-Italic", Family: "Foo", Traits: Italic, Weight: WeightRegular},
		{Name: "Foo-BoldItalic", Family: "Foo", Traits: Bold | Italic, Weight: WeightBold},
	}
}

func testStyles() fakeStyles {
	return fakeStyles{
		StyleBody:     {Name: "System-regular", Family: "System", Weight: WeightRegular, Size: 17},
		StyleHeadline: {Name: "System-semibold", Family: "System", Weight: WeightSemibold, Size: 17},
		StyleCaption1: {Name: "System-regular", Family: "System", Weight: WeightRegular, Size: 12},
	}
}

func nameOf(f Font) string {
	if f == nil {
		return "<nil>"
	}
	return f.Descriptor().Name
}
