package skin

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/agnivade/levenshtein"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/ggui/pkg/errors"
)

// SupportedMajor is the skin asset format major version this package reads.
const SupportedMajor = "v1"

// StyleInfo is one named override in a skin asset.
type StyleInfo struct {
	Name  string `yaml:"name"`
	Style *Style `yaml:"style"`
}

// Data is a persisted skin: a default style and named per-kind overrides,
// layered over DefaultSkin when the skin is first requested.
type Data struct {
	// Version is the asset format version ("v1.0.0"). Empty means current.
	Version string      `yaml:"version,omitempty"`
	Default *Style      `yaml:"default,omitempty"`
	Styles  []StyleInfo `yaml:"styles,omitempty"`

	skin *Skin
}

// Skin composes the asset onto a fresh baseline. The result is cached
// until Invalidate is called.
//
// The saved default is merged onto the baseline default. A named style
// that the baseline already has is merged onto it; any other name is
// added as-is and reported when it does not match a known key.
func (d *Data) Skin() *Skin {
	if d.skin != nil {
		return d.skin
	}
	s := DefaultSkin()
	s.Default.Merge(d.Default)
	for _, info := range d.Styles {
		if info.Style == nil {
			continue
		}
		if existing, ok := s.Lookup(info.Name); ok {
			existing.Merge(info.Style)
			continue
		}
		if !slices.Contains(KnownKeys, info.Name) {
			warnUnknownKey(info.Name)
		}
		s.Set(info.Name, info.Style.Clone())
	}
	d.skin = s
	return s
}

// Invalidate drops the cached skin so the next Skin call rebuilds it.
func (d *Data) Invalidate() { d.skin = nil }

// Suggest returns the known style key closest to name, or "" when nothing
// is within two edits.
func Suggest(name string) string {
	best, bestDist := "", 3
	for _, k := range KnownKeys {
		if d := levenshtein.ComputeDistance(name, k); d < bestDist {
			best, bestDist = k, d
		}
	}
	return best
}

func warnUnknownKey(name string) {
	if s := Suggest(name); s != "" {
		errors.Warnf("skin.Data.Skin", errors.KindStyle, nil, "style %q is not used by any control (did you mean %q?)", name, s)
		return
	}
	errors.Warnf("skin.Data.Skin", errors.KindStyle, nil, "style %q is not used by any control", name)
}

// ErrUnsupportedVersion is returned for skin assets of another major version.
var ErrUnsupportedVersion = stderrors.New("unsupported skin asset version")

// LoadData decodes a YAML skin asset.
func LoadData(r io.Reader) (*Data, error) {
	var d Data
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse skin asset: %w", err)
	}
	if err := checkVersion(d.Version); err != nil {
		return nil, err
	}
	return &d, nil
}

// LoadFile reads a YAML skin asset from path.
func LoadFile(path string) (*Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read skin asset: %w", err)
	}
	defer f.Close()
	d, err := LoadData(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// LoadOptional reads the skin asset at path if present. An empty path or a
// missing file yields empty Data, whose Skin is the baseline skin.
func LoadOptional(path string) (*Data, error) {
	if path == "" {
		return &Data{}, nil
	}
	d, err := LoadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return &Data{}, nil
		}
		return nil, err
	}
	return d, nil
}

// Encode writes d as YAML.
func (d *Data) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("failed to encode skin asset: %w", err)
	}
	return enc.Close()
}

// DataFromSkin captures s as an asset at the current version.
func DataFromSkin(s *Skin) *Data {
	d := &Data{Version: SupportedMajor + ".0.0", Default: s.Default.Clone()}
	for _, k := range s.Keys() {
		st, _ := s.Lookup(k)
		d.Styles = append(d.Styles, StyleInfo{Name: k, Style: st.Clone()})
	}
	return d
}

func checkVersion(v string) error {
	if v == "" {
		return nil
	}
	if !semver.IsValid(v) {
		return fmt.Errorf("invalid skin asset version %q", v)
	}
	if semver.Major(v) != SupportedMajor {
		return fmt.Errorf("%w: %s (want %s.x)", ErrUnsupportedVersion, v, SupportedMajor)
	}
	return nil
}
