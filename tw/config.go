package tw

import "slices"

// DefKind tags the variant held by a ClassDef.
type DefKind uint8

const (
	// DefLiteral is an exact dash-separated class name suffix ("block", "x-auto").
	// The empty literal marks the insertion point itself as a member of the group.
	DefLiteral DefKind = iota
	// DefValidator matches whatever remains of the class name once the exact
	// walk through the trie cannot continue.
	DefValidator
	// DefNested opens a sub-trie under Value and applies Defs there.
	DefNested
	// DefTheme splices the items of the theme scale named Value in place.
	DefTheme
)

// Validator reports whether the remaining suffix of a class name belongs to a group.
type Validator func(value string) bool

// ClassDef is one item of a class group definition.
type ClassDef struct {
	Kind     DefKind
	Value    string // literal text, nested key or theme scale name
	Name     string // validator name, used for config summaries and TOML references
	Validate Validator
	Defs     []ClassDef
}

// Literal returns a literal class definition.
func Literal(s string) ClassDef {
	return ClassDef{Kind: DefLiteral, Value: s}
}

// Literals returns one literal definition per string.
func Literals(ss ...string) []ClassDef {
	defs := make([]ClassDef, len(ss))
	for i, s := range ss {
		defs[i] = Literal(s)
	}
	return defs
}

// Check wraps a validator into a class definition.
func Check(name string, fn Validator) ClassDef {
	return ClassDef{Kind: DefValidator, Name: name, Validate: fn}
}

// Nested returns a definition that applies defs below the dash-separated key.
func Nested(key string, defs ...ClassDef) ClassDef {
	return ClassDef{Kind: DefNested, Value: key, Defs: defs}
}

// FromTheme returns a reference to a theme scale.
func FromTheme(scale string) ClassDef {
	return ClassDef{Kind: DefTheme, Value: scale}
}

// ClassGroup names a semantic bucket of utility classes.
type ClassGroup struct {
	ID   string
	Defs []ClassDef
}

// Config is the declarative table the engine is built from.
//
// ClassGroups is ordered: validators attached to the same trie node are tried
// in the order their groups appear here.
type Config struct {
	// CacheSize bounds each cache generation. Zero disables caching.
	CacheSize int
	// Prefix, when set, is the namespace every recognized token must start with
	// ("tw" matches "tw:hover:p-2"). Tokens without it pass through untouched.
	Prefix string

	Theme                          map[string][]ClassDef
	ClassGroups                    []ClassGroup
	ConflictingClassGroups         map[string][]string
	ConflictingClassGroupModifiers map[string][]string
	OrderSensitiveModifiers        []string
}

// Patch is a partial Config applied with Extend or Override.
type Patch struct {
	Theme                          map[string][]ClassDef
	ClassGroups                    []ClassGroup
	ConflictingClassGroups         map[string][]string
	ConflictingClassGroupModifiers map[string][]string
	OrderSensitiveModifiers        []string
}

// Clone returns a copy that can be patched without touching c.
// ClassDef values are shared; they are never mutated after construction.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	out := &Config{
		CacheSize:                      c.CacheSize,
		Prefix:                         c.Prefix,
		Theme:                          make(map[string][]ClassDef, len(c.Theme)),
		ClassGroups:                    make([]ClassGroup, len(c.ClassGroups)),
		ConflictingClassGroups:         cloneLists(c.ConflictingClassGroups),
		ConflictingClassGroupModifiers: cloneLists(c.ConflictingClassGroupModifiers),
		OrderSensitiveModifiers:        slices.Clone(c.OrderSensitiveModifiers),
	}
	for k, v := range c.Theme {
		out.Theme[k] = slices.Clone(v)
	}
	for i, g := range c.ClassGroups {
		out.ClassGroups[i] = ClassGroup{ID: g.ID, Defs: slices.Clone(g.Defs)}
	}
	return out
}

// Override replaces every theme scale, class group, conflict list and the
// order-sensitive modifier list that p names. Unnamed entries are kept.
func (c *Config) Override(p Patch) *Config {
	if c.Theme == nil {
		c.Theme = make(map[string][]ClassDef)
	}
	for k, v := range p.Theme {
		c.Theme[k] = slices.Clone(v)
	}
	for _, g := range p.ClassGroups {
		if i := c.groupIndex(g.ID); i >= 0 {
			c.ClassGroups[i].Defs = slices.Clone(g.Defs)
			continue
		}
		c.ClassGroups = append(c.ClassGroups, ClassGroup{ID: g.ID, Defs: slices.Clone(g.Defs)})
	}
	c.ConflictingClassGroups = overrideLists(c.ConflictingClassGroups, p.ConflictingClassGroups)
	c.ConflictingClassGroupModifiers = overrideLists(c.ConflictingClassGroupModifiers, p.ConflictingClassGroupModifiers)
	if p.OrderSensitiveModifiers != nil {
		c.OrderSensitiveModifiers = slices.Clone(p.OrderSensitiveModifiers)
	}
	return c
}

// Extend appends the entries of p to the matching entries of c, creating the
// ones that do not exist yet.
func (c *Config) Extend(p Patch) *Config {
	if c.Theme == nil {
		c.Theme = make(map[string][]ClassDef)
	}
	for k, v := range p.Theme {
		c.Theme[k] = append(c.Theme[k], v...)
	}
	for _, g := range p.ClassGroups {
		if i := c.groupIndex(g.ID); i >= 0 {
			c.ClassGroups[i].Defs = append(c.ClassGroups[i].Defs, g.Defs...)
			continue
		}
		c.ClassGroups = append(c.ClassGroups, ClassGroup{ID: g.ID, Defs: slices.Clone(g.Defs)})
	}
	c.ConflictingClassGroups = extendLists(c.ConflictingClassGroups, p.ConflictingClassGroups)
	c.ConflictingClassGroupModifiers = extendLists(c.ConflictingClassGroupModifiers, p.ConflictingClassGroupModifiers)
	for _, m := range p.OrderSensitiveModifiers {
		if !slices.Contains(c.OrderSensitiveModifiers, m) {
			c.OrderSensitiveModifiers = append(c.OrderSensitiveModifiers, m)
		}
	}
	return c
}

// Group returns the definition of the class group with the given id.
func (c *Config) Group(id string) (ClassGroup, bool) {
	if i := c.groupIndex(id); i >= 0 {
		return c.ClassGroups[i], true
	}
	return ClassGroup{}, false
}

func (c *Config) groupIndex(id string) int {
	return slices.IndexFunc(c.ClassGroups, func(g ClassGroup) bool { return g.ID == id })
}

func cloneLists(m map[string][]string) map[string][]string {
	out := make(map[string][]string, len(m))
	for k, v := range m {
		out[k] = slices.Clone(v)
	}
	return out
}

func overrideLists(dst, src map[string][]string) map[string][]string {
	if dst == nil {
		dst = make(map[string][]string, len(src))
	}
	for k, v := range src {
		dst[k] = slices.Clone(v)
	}
	return dst
}

func extendLists(dst, src map[string][]string) map[string][]string {
	if dst == nil {
		dst = make(map[string][]string, len(src))
	}
	for k, v := range src {
		for _, id := range v {
			if !slices.Contains(dst[k], id) {
				dst[k] = append(dst[k], id)
			}
		}
	}
	return dst
}
