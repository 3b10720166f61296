package tw

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
)

var (
	// ErrUnknownValidator is returned for a "$name" item that names no built-in validator.
	ErrUnknownValidator = errors.New("unknown validator")
	// ErrUnknownThemeScale is returned when a "@scale" reference has no theme entry.
	ErrUnknownThemeScale = errors.New("unknown theme scale")
	// ErrInvalidClassDef is returned for items that are neither strings nor tables of lists.
	ErrInvalidClassDef = errors.New("invalid class definition")
)

// DefaultConfigFile is the file name the CLI looks for.
const DefaultConfigFile = "twmerge.toml"

// FileConfig is the TOML form of a configuration:
//
//	prefix = "tw"
//	cache_size = 1000
//
//	[extend.theme]
//	color = ["brand", "accent"]
//
//	[extend.class_groups]
//	shadow = ["glow"]
//	"text-stroke" = [{ "text-stroke" = ["", "$number"] }]
//
//	[extend.conflicting_class_groups]
//	"text-stroke" = ["text-color"]
//
// Class group items are literals ("glow"), validator references ("$number"),
// theme scale references ("@spacing") or inline tables opening nested parts.
type FileConfig struct {
	Prefix    *string   `toml:"prefix"`
	CacheSize *int      `toml:"cache_size"`
	Extend    FilePatch `toml:"extend"`
	Override  FilePatch `toml:"override"`
}

// FilePatch is the TOML form of a Patch.
type FilePatch struct {
	Theme                          map[string][]any    `toml:"theme"`
	ClassGroups                    map[string][]any    `toml:"class_groups"`
	ConflictingClassGroups         map[string][]string `toml:"conflicting_class_groups"`
	ConflictingClassGroupModifiers map[string][]string `toml:"conflicting_class_group_modifiers"`
	OrderSensitiveModifiers        []string            `toml:"order_sensitive_modifiers"`
}

// LoadFile reads and decodes a TOML configuration. Unknown keys are rejected.
func LoadFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	fc, err := ParseFile(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return fc, nil
}

// ParseFile decodes TOML configuration data.
func ParseFile(data []byte) (*FileConfig, error) {
	var fc FileConfig
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&fc); err != nil {
		return nil, err
	}
	return &fc, nil
}

// Build applies the file to a copy of base: overrides first, then extensions.
// A nil base means DefaultConfig.
func (fc *FileConfig) Build(base *Config) (*Config, error) {
	cfg := base.Clone()
	if cfg == nil {
		cfg = DefaultConfig()
	}

	override, err := fc.Override.patch()
	if err != nil {
		return nil, fmt.Errorf("override: %w", err)
	}
	extend, err := fc.Extend.patch()
	if err != nil {
		return nil, fmt.Errorf("extend: %w", err)
	}
	cfg.Override(override).Extend(extend)

	if fc.Prefix != nil {
		cfg.Prefix = *fc.Prefix
	}
	if fc.CacheSize != nil {
		cfg.CacheSize = *fc.CacheSize
	}
	if err := checkThemeRefs(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Options builds the default configuration patched by the file and returns the
// engine options that apply it.
func (fc *FileConfig) Options(logger *zap.Logger) ([]Option, error) {
	cfg, err := fc.Build(nil)
	if err != nil {
		return nil, err
	}
	opts := []Option{WithConfig(cfg)}
	if logger != nil {
		opts = append(opts, WithLogger(logger))
	}
	return opts, nil
}

func (p FilePatch) patch() (Patch, error) {
	out := Patch{
		ConflictingClassGroups:         p.ConflictingClassGroups,
		ConflictingClassGroupModifiers: p.ConflictingClassGroupModifiers,
		OrderSensitiveModifiers:        p.OrderSensitiveModifiers,
	}
	if len(p.Theme) > 0 {
		out.Theme = make(map[string][]ClassDef, len(p.Theme))
		for name, items := range p.Theme {
			defs, err := decodeDefs(items)
			if err != nil {
				return Patch{}, fmt.Errorf("theme %q: %w", name, err)
			}
			out.Theme[name] = defs
		}
	}
	// TOML tables are unordered; new groups are appended in id order
	for _, id := range sortedKeys(p.ClassGroups) {
		defs, err := decodeDefs(p.ClassGroups[id])
		if err != nil {
			return Patch{}, fmt.Errorf("class group %q: %w", id, err)
		}
		out.ClassGroups = append(out.ClassGroups, ClassGroup{ID: id, Defs: defs})
	}
	return out, nil
}

func decodeDefs(items []any) ([]ClassDef, error) {
	defs := make([]ClassDef, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case string:
			def, err := decodeString(v)
			if err != nil {
				return nil, err
			}
			defs = append(defs, def)
		case map[string]any:
			for _, key := range sortedKeys(v) {
				list, ok := v[key].([]any)
				if !ok {
					return nil, fmt.Errorf("%w: %q must map to a list", ErrInvalidClassDef, key)
				}
				nested, err := decodeDefs(list)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", key, err)
				}
				defs = append(defs, Nested(key, nested...))
			}
		default:
			return nil, fmt.Errorf("%w: %v (%T)", ErrInvalidClassDef, item, item)
		}
	}
	return defs, nil
}

func decodeString(s string) (ClassDef, error) {
	if name, ok := strings.CutPrefix(s, "$"); ok {
		fn, found := LookupValidator(name)
		if !found {
			return ClassDef{}, fmt.Errorf("%w: %q", ErrUnknownValidator, name)
		}
		return Check(name, fn), nil
	}
	if scale, ok := strings.CutPrefix(s, "@"); ok {
		if scale == "" {
			return ClassDef{}, fmt.Errorf("%w: empty theme reference", ErrInvalidClassDef)
		}
		return FromTheme(scale), nil
	}
	return Literal(s), nil
}

func checkThemeRefs(cfg *Config) error {
	var walk func(defs []ClassDef) error
	walk = func(defs []ClassDef) error {
		for _, d := range defs {
			switch d.Kind {
			case DefTheme:
				if _, ok := cfg.Theme[d.Value]; !ok {
					return fmt.Errorf("%w: %q", ErrUnknownThemeScale, d.Value)
				}
			case DefNested:
				if err := walk(d.Defs); err != nil {
					return err
				}
			}
		}
		return nil
	}
	for _, name := range sortedKeys(cfg.Theme) {
		if err := walk(cfg.Theme[name]); err != nil {
			return fmt.Errorf("theme %q: %w", name, err)
		}
	}
	for _, g := range cfg.ClassGroups {
		if err := walk(g.Defs); err != nil {
			return fmt.Errorf("class group %q: %w", g.ID, err)
		}
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
