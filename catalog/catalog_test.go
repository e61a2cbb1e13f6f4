package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"testing"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/gofont/gosmallcapsitalic"

	"github.com/gogpu/fontmatch"
)

// goFamily registers Go Regular, Bold, Italic and Bold Italic in an
// otherwise empty catalog and returns their names in that order.
func goFamily(t *testing.T) (*Catalog, []string) {
	t.Helper()
	c := New(WithoutBundledFonts())
	var names []string
	for _, data := range [][]byte{goregular.TTF, gobold.TTF, goitalic.TTF, gobolditalic.TTF} {
		name, err := c.Add(data)
		if err != nil {
			t.Fatalf("Add() error = %v", err)
		}
		names = append(names, name)
	}
	return c, names
}

func mustLoad(t *testing.T, c *Catalog, name string, size float64) fontmatch.Font {
	t.Helper()
	f, ok := c.Load(name, size)
	if !ok {
		t.Fatalf("Load(%q) failed", name)
	}
	return f
}

func TestNewBundled(t *testing.T) {
	c := New()
	if got, want := c.Len(), len(Bundled()); got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
	families := c.Families()
	if !slices.Contains(families, GoFamily) || !slices.Contains(families, GoMonoFamily) {
		t.Errorf("Families() = %v, want %q and %q", families, GoFamily, GoMonoFamily)
	}
}

func TestDescriptors(t *testing.T) {
	c, names := goFamily(t)

	tests := []struct {
		name       string
		wantTraits fontmatch.Traits
		wantWeight fontmatch.Weight
	}{
		{names[0], 0, fontmatch.WeightRegular},
		{names[1], fontmatch.Bold, fontmatch.WeightBold},
		{names[2], fontmatch.Italic, fontmatch.WeightRegular},
		{names[3], fontmatch.Bold | fontmatch.Italic, fontmatch.WeightBold},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := mustLoad(t, c, tt.name, 15).Descriptor()
			if d.Name != tt.name {
				t.Errorf("Name = %q, want %q", d.Name, tt.name)
			}
			if d.Family != GoFamily {
				t.Errorf("Family = %q, want %q", d.Family, GoFamily)
			}
			if d.Traits != tt.wantTraits {
				t.Errorf("Traits = %v, want %v", d.Traits, tt.wantTraits)
			}
			if d.Weight != tt.wantWeight {
				t.Errorf("Weight = %v, want %v", d.Weight, tt.wantWeight)
			}
			if d.Size != 15 {
				t.Errorf("Size = %v, want 15", d.Size)
			}
		})
	}
}

func TestBundledDescriptors(t *testing.T) {
	const (
		bold   = fontmatch.Bold
		italic = fontmatch.Italic
		mono   = fontmatch.Monospace
	)
	tests := []struct {
		name       string
		data       []byte
		wantWeight fontmatch.Weight
		wantTraits fontmatch.Traits
	}{
		{"Go Regular", goregular.TTF, fontmatch.WeightRegular, 0},
		{"Go Bold", gobold.TTF, fontmatch.WeightBold, bold},
		{"Go Italic", goitalic.TTF, fontmatch.WeightRegular, italic},
		{"Go Bold Italic", gobolditalic.TTF, fontmatch.WeightBold, bold | italic},
		{"Go Medium", gomedium.TTF, fontmatch.WeightMedium, 0},
		{"Go Medium Italic", gomediumitalic.TTF, fontmatch.WeightMedium, italic},
		{"Go Mono", gomono.TTF, fontmatch.WeightRegular, mono},
		{"Go Mono Bold", gomonobold.TTF, fontmatch.WeightBold, mono | bold},
		{"Go Mono Italic", gomonoitalic.TTF, fontmatch.WeightRegular, mono | italic},
		{"Go Mono Bold Italic", gomonobolditalic.TTF, fontmatch.WeightBold, mono | bold | italic},
		{"Go Smallcaps", gosmallcaps.TTF, fontmatch.WeightRegular, 0},
		{"Go Smallcaps Italic", gosmallcapsitalic.TTF, fontmatch.WeightRegular, italic},
	}
	if len(tests) != len(Bundled()) {
		t.Fatalf("%d cases for %d bundled faces", len(tests), len(Bundled()))
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := describe(tt.data)
			if err != nil {
				t.Fatalf("describe() error = %v", err)
			}
			if p.desc.Weight != tt.wantWeight {
				t.Errorf("Weight = %v, want %v", p.desc.Weight, tt.wantWeight)
			}
			if p.desc.Traits != tt.wantTraits {
				t.Errorf("Traits = %v, want %v", p.desc.Traits, tt.wantTraits)
			}
		})
	}
}

func TestNamedWeight(t *testing.T) {
	tests := []struct {
		full, subfamily string
		want            fontmatch.Weight
		wantOK          bool
	}{
		{"Go Bold", "Bold", fontmatch.WeightBold, true},
		{"Go Medium", "Regular", fontmatch.WeightMedium, true},
		{"Foo Semi Bold", "Semi Bold", fontmatch.WeightSemibold, true},
		{"Foo-ExtraBold", "", fontmatch.WeightHeavy, true},
		{"Go Smallcaps Italic", "Italic", fontmatch.WeightRegular, true},
		{"Foo", "Regular", fontmatch.WeightRegular, true},
		{"Foo Wide", "Wide", 0, false},
		{"", "", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.full, func(t *testing.T) {
			got, ok := namedWeight(tt.full, tt.subfamily)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("namedWeight(%q, %q) = %v, %v, want %v, %v",
					tt.full, tt.subfamily, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestMonospaceDetection(t *testing.T) {
	c := New(WithoutBundledFonts())
	mono, err := c.Add(gomono.TTF)
	if err != nil {
		t.Fatalf("Add(gomono) error = %v", err)
	}
	regular, err := c.Add(goregular.TTF)
	if err != nil {
		t.Fatalf("Add(goregular) error = %v", err)
	}
	if d := mustLoad(t, c, mono, 12).Descriptor(); !d.Traits.Has(fontmatch.Monospace) {
		t.Errorf("Go Mono traits = %v, want monospace", d.Traits)
	}
	if d := mustLoad(t, c, regular, 12).Descriptor(); d.Traits.Has(fontmatch.Monospace) {
		t.Errorf("Go Regular traits = %v, want no monospace", d.Traits)
	}
}

func TestVariantNamesOrder(t *testing.T) {
	c, names := goFamily(t)
	if got := c.VariantNames(GoFamily); !slices.Equal(got, names) {
		t.Errorf("VariantNames() = %v, want %v", got, names)
	}
	if got := c.VariantNames("Nope"); got != nil {
		t.Errorf("VariantNames(Nope) = %v, want nil", got)
	}
}

func TestLoad(t *testing.T) {
	c, names := goFamily(t)

	if got := mustLoad(t, c, GoFamily, 10).Descriptor().Name; got != names[0] {
		t.Errorf("Load(family) = %q, want regular %q", got, names[0])
	}
	if _, ok := c.Load("Nope", 10); ok {
		t.Error("Load(Nope) should fail")
	}
}

func TestAddErrors(t *testing.T) {
	c, _ := goFamily(t)

	if _, err := c.Add(nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("Add(nil) error = %v, want ErrEmptyFontData", err)
	}
	if _, err := c.Add([]byte("not a font")); err == nil {
		t.Error("Add(garbage) should fail")
	}
	if _, err := c.Add(goregular.TTF); !errors.Is(err, ErrDuplicateFace) {
		t.Errorf("Add(duplicate) error = %v, want ErrDuplicateFace", err)
	}
	if got := c.Len(); got != 4 {
		t.Errorf("Len() after failed adds = %d, want 4", got)
	}
}

func TestAddFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "go.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o600); err != nil {
		t.Fatal(err)
	}
	c := New(WithoutBundledFonts())
	if _, err := c.AddFile(path); err != nil {
		t.Fatalf("AddFile() error = %v", err)
	}
	if _, err := c.AddFile(filepath.Join(t.TempDir(), "missing.ttf")); err == nil {
		t.Error("AddFile(missing) should fail")
	}
}

func TestWithTraits(t *testing.T) {
	c, names := goFamily(t)
	regular := mustLoad(t, c, names[0], 18)

	f, ok := c.WithTraits(regular, fontmatch.Italic)
	if !ok {
		t.Fatal("WithTraits(italic) failed")
	}
	if d := f.Descriptor(); d.Name != names[2] || d.Size != 18 {
		t.Errorf("WithTraits(italic) = %+v, want %s at 18", d, names[2])
	}

	f, ok = c.WithTraits(regular, fontmatch.Bold|fontmatch.Italic)
	if !ok || f.Descriptor().Name != names[3] {
		t.Errorf("WithTraits(bold|italic) = %v, %v, want %s", f, ok, names[3])
	}

	if _, ok := c.WithTraits(regular, fontmatch.Condensed); ok {
		t.Error("WithTraits(condensed) should fail for the Go family")
	}
}

func TestWithSize(t *testing.T) {
	c, names := goFamily(t)
	f := c.WithSize(mustLoad(t, c, names[1], 10), 32)
	if d := f.Descriptor(); d.Name != names[1] || d.Size != 32 {
		t.Errorf("WithSize() = %+v, want %s at 32", d, names[1])
	}

	foreign := stubFont{fontmatch.Descriptor{Name: "Elsewhere", Family: "Elsewhere", Size: 9}}
	f = c.WithSize(foreign, 11)
	if d := f.Descriptor(); d.Name != "Elsewhere" || d.Size != 11 {
		t.Errorf("WithSize(foreign) = %+v, want Elsewhere at 11", d)
	}
	if f.(*Face).HasData() {
		t.Error("foreign font should become a placeholder face")
	}
}

func TestStandardFont(t *testing.T) {
	c, names := goFamily(t)

	tests := []struct {
		weight fontmatch.Weight
		want   string
	}{
		{fontmatch.WeightRegular, names[0]},
		{fontmatch.WeightLight, names[0]},
		{fontmatch.WeightSemibold, names[1]},
		{fontmatch.WeightBlack, names[1]},
	}
	for _, tt := range tests {
		d := c.StandardFont(14, tt.weight).Descriptor()
		if d.Name != tt.want || d.Size != 14 {
			t.Errorf("StandardFont(14, %v) = %+v, want %s", tt.weight, d, tt.want)
		}
	}

	other := New(WithoutBundledFonts(), WithStandardFamily("Missing"))
	if _, err := other.Add(goitalic.TTF); err != nil {
		t.Fatal(err)
	}
	if got := other.StandardFont(12, fontmatch.WeightRegular).Descriptor().Name; got == "" {
		t.Error("StandardFont should fall back to any registered face")
	}

	empty := New(WithoutBundledFonts())
	f := empty.StandardFont(12, fontmatch.WeightBold)
	if d := f.Descriptor(); d.Family != GoFamily || d.Weight != fontmatch.WeightBold || d.Size != 12 {
		t.Errorf("empty StandardFont() = %+v, want placeholder %s", d, GoFamily)
	}
	if _, err := f.(*Face).NewFace(); !errors.Is(err, ErrNoFontData) {
		t.Errorf("placeholder NewFace() error = %v, want ErrNoFontData", err)
	}
}

func TestNewFace(t *testing.T) {
	c, names := goFamily(t)
	f := mustLoad(t, c, names[0], 24).(*Face)

	face, err := f.NewFace()
	if err != nil {
		t.Fatalf("NewFace() error = %v", err)
	}
	defer face.Close()
	if m := face.Metrics(); m.Ascent <= 0 || m.Height <= 0 {
		t.Errorf("Metrics() = %+v, want positive ascent and height", m)
	}

	big, err := f.NewFace(WithDPI(144))
	if err != nil {
		t.Fatalf("NewFace(144 dpi) error = %v", err)
	}
	defer big.Close()
	if big.Metrics().Height <= face.Metrics().Height {
		t.Error("144 DPI face should be taller than 72 DPI face")
	}
}

func TestResolveWithCatalog(t *testing.T) {
	c := New()
	r := fontmatch.NewResolver(c, nil, fontmatch.WithMonospaceFamily(GoMonoFamily))

	tests := []struct {
		expr       string
		wantFamily string
		wantTraits fontmatch.Traits
		wantSize   float64
	}{
		{"Go bold italic 20", GoFamily, fontmatch.Bold | fontmatch.Italic, 20},
		{"Go italic", GoFamily, fontmatch.Italic, fontmatch.DefaultSize},
		{"Go 200%", GoFamily, 0, 34},
		{"monospace bold 11", GoMonoFamily, fontmatch.Monospace | fontmatch.Bold, 11},
		{"monospace italic", GoMonoFamily, fontmatch.Monospace | fontmatch.Italic, fontmatch.DefaultSize},
		{"Go Mono bold italic", GoMonoFamily, fontmatch.Monospace | fontmatch.Bold | fontmatch.Italic, fontmatch.DefaultSize},
		{"italic", GoFamily, fontmatch.Italic, fontmatch.DefaultSize},
		{"bold", GoFamily, fontmatch.Bold, fontmatch.DefaultSize},
		{"medium", GoFamily, 0, fontmatch.DefaultSize},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			f, err := r.Parse(tt.expr)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			d := f.Descriptor()
			if d.Family != tt.wantFamily || d.Traits != tt.wantTraits || d.Size != tt.wantSize {
				t.Errorf("Parse(%q) = %+v, want family %s traits %v size %v",
					tt.expr, d, tt.wantFamily, tt.wantTraits, tt.wantSize)
			}
		})
	}
}

func TestResolveBoldWeights(t *testing.T) {
	c := New()
	r := fontmatch.NewResolver(c, nil, fontmatch.WithMonospaceFamily(GoMonoFamily))

	tests := []struct {
		expr     string
		wantName string
	}{
		{"Go bold italic 20", "Go-BoldItalic"},
		{"Go bold", "Go-Bold"},
		{"Go Mono bold", "GoMono-Bold"},
		{"monospace bold italic", "GoMono-BoldItalic"},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			f, err := r.Parse(tt.expr)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if d := f.Descriptor(); d.Name != tt.wantName || d.Weight != fontmatch.WeightBold {
				t.Errorf("Parse(%q) = %+v, want %s at weight bold", tt.expr, d, tt.wantName)
			}
		})
	}
}

func TestMonospaceWithoutFamilyOption(t *testing.T) {
	c := New()
	r := fontmatch.NewResolver(c, nil)

	// The default monospace family is not bundled, so the request falls
	// back to the standard font with the trait left unsatisfied.
	f, err := r.Font(fontmatch.Monospace)
	if err != nil {
		t.Fatalf("Font() error = %v", err)
	}
	if d := f.Descriptor(); d.Family != GoFamily {
		t.Errorf("Font(monospace) family = %q, want %q", d.Family, GoFamily)
	}
}

func TestConcurrentAddAndLoad(t *testing.T) {
	c := New(WithoutBundledFonts())
	var wg sync.WaitGroup
	for _, data := range [][]byte{goregular.TTF, gobold.TTF, goitalic.TTF, gobolditalic.TTF} {
		data := data
		wg.Add(2)
		go func() {
			defer wg.Done()
			if _, err := c.Add(data); err != nil {
				t.Errorf("Add() error = %v", err)
			}
		}()
		go func() {
			defer wg.Done()
			c.VariantNames(GoFamily)
			c.StandardFont(12, fontmatch.WeightRegular)
		}()
	}
	wg.Wait()
	if c.Len() != 4 {
		t.Errorf("Len() = %d, want 4", c.Len())
	}
}

type stubFont struct {
	d fontmatch.Descriptor
}

func (f stubFont) Descriptor() fontmatch.Descriptor { return f.d }
