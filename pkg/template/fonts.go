// fonts.go - Font resolution with an ordered fallback chain.
// Sources are tried in order; the first one that yields a face for every
// requested size wins. A chain with no usable source resolves to nil and
// callers render without text.
package template

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// DefaultSystemFonts are the system tier candidates when none are configured.
var DefaultSystemFonts = []string{"/System/Library/Fonts/Helvetica.ttc"}

// ErrNoFont is returned by a FontSource that has nothing to offer.
var ErrNoFont = errors.New("template: no font available")

// FontSource produces one face per requested size from a single font.
type FontSource interface {
	Name() string
	Faces(sizes ...float64) ([]font.Face, error)
}

// FaceSet holds the faces resolved from one source, aligned with the sizes
// passed to FontChain.Resolve.
type FaceSet struct {
	Source string
	faces  []font.Face
}

// Face returns the face for the i-th requested size.
func (s *FaceSet) Face(i int) font.Face {
	return s.faces[i]
}

// Len returns the number of faces in the set.
func (s *FaceSet) Len() int {
	return len(s.faces)
}

// Close releases every face in the set.
func (s *FaceSet) Close() error {
	if s == nil {
		return nil
	}
	var errs []error
	for _, f := range s.faces {
		if err := f.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// FontChain is an ordered list of font sources.
type FontChain []FontSource

// ChainOptions configures NewFontChain.
type ChainOptions struct {
	Paths    []string // system tier candidates; DefaultSystemFonts when empty
	Index    int      // collection index for .ttc files
	Embedded bool     // insert the embedded Go font before the bitmap default
}

// NewFontChain builds the standard chain: system font files, optionally the
// embedded Go font, then the fixed-size bitmap default.
func NewFontChain(opts ChainOptions) FontChain {
	paths := opts.Paths
	if len(paths) == 0 {
		paths = DefaultSystemFonts
	}

	chain := FontChain{&SystemFontSource{Paths: paths, Index: opts.Index}}
	if opts.Embedded {
		chain = append(chain, EmbeddedFontSource{})
	}
	return append(chain, DefaultFontSource{})
}

// Resolve returns the faces of the first source that can serve every size,
// or nil if no source can. Failures, including panics inside a source, are
// logged and never returned.
func (c FontChain) Resolve(sizes ...float64) *FaceSet {
	log := Logger()
	for tier, src := range c {
		faces, err := tryFaces(src, sizes)
		if err != nil {
			log.Debug("font source unavailable",
				"tier", tier, "source", src.Name(),
				"notFound", errors.Is(err, fs.ErrNotExist), "err", err)
			continue
		}
		log.Debug("font resolved", "tier", tier, "source", src.Name())
		return &FaceSet{Source: src.Name(), faces: faces}
	}
	log.Debug("no font resolved; text will be skipped")
	return nil
}

// tryFaces runs one attempt in isolation.
func tryFaces(src FontSource, sizes []float64) (faces []font.Face, err error) {
	defer func() {
		if r := recover(); r != nil {
			faces, err = nil, fmt.Errorf("%s: panic: %v", src.Name(), r)
		}
	}()

	faces, err = src.Faces(sizes...)
	if err == nil && len(faces) != len(sizes) {
		closeFaces(faces)
		return nil, fmt.Errorf("%s: got %d faces for %d sizes", src.Name(), len(faces), len(sizes))
	}
	return faces, err
}

// SystemFontSource loads a named font file. Each path is tried in order.
type SystemFontSource struct {
	Paths []string
	Index int
}

// Name implements FontSource.
func (s *SystemFontSource) Name() string {
	return "system"
}

// Faces implements FontSource.
func (s *SystemFontSource) Faces(sizes ...float64) ([]font.Face, error) {
	if len(s.Paths) == 0 {
		return nil, ErrNoFont
	}

	var errs []error
	for _, path := range s.Paths {
		f, err := loadFontFile(path, s.Index)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		faces, err := newFaces(f, sizes)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
			continue
		}
		Logger().Debug("loaded font file", "path", path, "family", familyName(f))
		return faces, nil
	}
	return nil, errors.Join(errs...)
}

// EmbeddedFontSource serves the Go Regular font compiled into the binary.
type EmbeddedFontSource struct{}

// Name implements FontSource.
func (EmbeddedFontSource) Name() string {
	return "embedded"
}

// Faces implements FontSource.
func (EmbeddedFontSource) Faces(sizes ...float64) ([]font.Face, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse embedded font: %w", err)
	}
	return newFaces(f, sizes)
}

// DefaultFontSource serves the 7x13 bitmap face. Its size is fixed, so every
// requested size gets the same face.
type DefaultFontSource struct{}

// Name implements FontSource.
func (DefaultFontSource) Name() string {
	return "default"
}

// Faces implements FontSource.
func (DefaultFontSource) Faces(sizes ...float64) ([]font.Face, error) {
	faces := make([]font.Face, len(sizes))
	for i := range faces {
		faces[i] = basicfont.Face7x13
	}
	return faces, nil
}

// loadFontFile reads a TTF, OTF, TTC or OTC file and returns the font at
// index. Single-font files are treated as a collection of one.
func loadFontFile(path string, index int) (*opentype.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}

	coll, err := opentype.ParseCollection(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if index < 0 || index >= coll.NumFonts() {
		return nil, fmt.Errorf("%s: font index %d out of range (%d fonts)", path, index, coll.NumFonts())
	}

	f, err := coll.Font(index)
	if err != nil {
		return nil, fmt.Errorf("%s: font %d: %w", path, index, err)
	}
	return f, nil
}

// newFaces creates one face per size. On error the faces created so far are
// closed.
func newFaces(f *opentype.Font, sizes []float64) ([]font.Face, error) {
	faces := make([]font.Face, 0, len(sizes))
	for _, size := range sizes {
		face, err := opentype.NewFace(f, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			closeFaces(faces)
			return nil, fmt.Errorf("create %gpt face: %w", size, err)
		}
		faces = append(faces, face)
	}
	return faces, nil
}

func closeFaces(faces []font.Face) {
	for _, f := range faces {
		f.Close()
	}
}

func familyName(f *opentype.Font) string {
	name, err := f.Name(nil, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return name
}
