package tw

import (
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultCacheSize is the per-generation capacity used when no config sets one.
const DefaultCacheSize = 500

// Engine merges utility class lists. It is safe for concurrent use. The class
// group trie is built once, on the first merge, and is read-only afterwards.
type Engine struct {
	config *Config
	logger *zap.Logger
	cache  *Cache

	once              sync.Once
	trie              *groupTrie
	parser            tokenParser
	sorter            modifierSorter
	conflicts         map[string][]string
	conflictModifiers map[string][]string
}

type options struct {
	config    *Config
	cacheSize *int
	prefix    *string
	logger    *zap.Logger
}

// Option configures an Engine.
type Option func(*options)

// WithConfig builds the engine from cfg instead of DefaultConfig. The engine
// keeps its own copy.
func WithConfig(cfg *Config) Option {
	return func(o *options) { o.config = cfg }
}

// WithCacheSize overrides the config's cache size. Zero disables caching.
func WithCacheSize(size int) Option {
	return func(o *options) { o.cacheSize = &size }
}

// WithPrefix overrides the config's class prefix.
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = &prefix }
}

// WithLogger sets the logger used for build and cache diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// New creates an Engine.
func New(opts ...Option) *Engine {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	cfg := o.config.Clone()
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if o.cacheSize != nil {
		cfg.CacheSize = *o.cacheSize
	}
	if o.prefix != nil {
		cfg.Prefix = *o.prefix
	}
	logger := o.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Engine{
		config: cfg,
		logger: logger,
		cache:  NewCache(cfg.CacheSize, logger),
	}
}

// Config returns the engine's configuration. Callers must not modify it.
func (e *Engine) Config() *Config {
	return e.config
}

// Stats returns the result cache counters.
func (e *Engine) Stats() CacheStats {
	return e.cache.Stats()
}

func (e *Engine) init() {
	e.once.Do(func() {
		start := time.Now()
		e.trie = buildTrie(e.config)
		e.parser = newTokenParser(e.config.Prefix)
		e.sorter = newModifierSorter(e.config.OrderSensitiveModifiers)
		e.conflicts = e.config.ConflictingClassGroups
		e.conflictModifiers = e.config.ConflictingClassGroupModifiers
		e.logger.Debug("Built class group trie",
			zap.Int("groups", len(e.config.ClassGroups)),
			zap.Int("nodes", e.trie.nodes),
			zap.String("prefix", e.config.Prefix),
			zap.Duration("elapsed", time.Since(start)),
		)
	})
}

// Merge joins its arguments like Join and drops every class overridden by a
// later class of the same group, or of a group declared to conflict with it,
// under the same modifiers and important flag. Surviving classes keep their
// original order.
//
//	e.Merge("px-2 py-1 bg-red hover:bg-dark-red", "p-3 bg-[#B91C1C]")
//	// "hover:bg-dark-red p-3 bg-[#B91C1C]"
func (e *Engine) Merge(args ...any) string {
	classList := Join(args...)
	if classList == "" {
		return ""
	}
	if merged, ok := e.cache.Get(classList); ok {
		return merged
	}
	e.init()
	merged := e.resolve(classList)
	e.cache.Set(classList, merged)
	return merged
}

// tokenClass is the classification of one token.
type tokenClass struct {
	parsed  ParsedToken
	groupID string
	// postfix is true when the group was found without the "/value" suffix.
	postfix    bool
	modifierID string
}

func (e *Engine) classifyToken(token string) tokenClass {
	tc := tokenClass{parsed: e.parser.parse(token)}
	if tc.parsed.IsExternal {
		return tc
	}

	base := tc.parsed.BaseClassName
	tc.postfix = tc.parsed.HasPostfixModifier()
	if tc.postfix {
		tc.groupID = e.trie.classify(base[:tc.parsed.PostfixModifierPosition])
	} else {
		tc.groupID = e.trie.classify(base)
	}
	if tc.groupID == "" && tc.postfix {
		// "aspect-3/2" is a fraction, not a modifier
		tc.groupID = e.trie.classify(base)
		tc.postfix = false
	}
	if tc.groupID == "" {
		return tc
	}

	tc.modifierID = strings.Join(e.sorter.sort(tc.parsed.Modifiers), string(modifierSeparator))
	if tc.parsed.HasImportant {
		tc.modifierID += importantModifier
	}
	return tc
}

func conflictKey(modifierID, groupID string) string {
	return modifierID + string(modifierSeparator) + groupID
}

func (e *Engine) conflictingGroups(groupID string, postfix bool) []string {
	groups := e.conflicts[groupID]
	if !postfix {
		return groups
	}
	if extra := e.conflictModifiers[groupID]; len(extra) > 0 {
		return append(groups[:len(groups):len(groups)], extra...)
	}
	return groups
}

// resolve walks the tokens from last to first so that the first claim on a
// conflict key is the one that wins.
func (e *Engine) resolve(classList string) string {
	tokens := strings.Fields(classList)
	if len(tokens) == 0 {
		return ""
	}

	claimed := make(map[string]struct{}, len(tokens)*2)
	keep := make([]bool, len(tokens))

	for i := len(tokens) - 1; i >= 0; i-- {
		tc := e.classifyToken(tokens[i])
		if tc.groupID == "" {
			keep[i] = true
			continue
		}

		key := conflictKey(tc.modifierID, tc.groupID)
		if _, ok := claimed[key]; ok {
			continue
		}
		claimed[key] = struct{}{}
		for _, g := range e.conflictingGroups(tc.groupID, tc.postfix) {
			claimed[conflictKey(tc.modifierID, g)] = struct{}{}
		}
		keep[i] = true
	}

	var b strings.Builder
	b.Grow(len(classList))
	for i, token := range tokens {
		if !keep[i] {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(token)
	}
	return b.String()
}

// ClassInfo describes how the engine sees a single class token.
type ClassInfo struct {
	Token     string
	Modifiers []string
	// SortedModifiers is the canonical modifier order used in ConflictKey.
	SortedModifiers []string
	Important       bool
	BaseClassName   string
	// Postfix is the "/value" suffix split off for classification.
	Postfix  string
	External bool
	// GroupID is empty for unclassified tokens, which are always kept.
	GroupID     string
	ConflictKey string
	// Conflicts lists the groups this token overrides when it comes later.
	Conflicts []string
}

// Classify explains a single token without merging.
func (e *Engine) Classify(token string) ClassInfo {
	e.init()
	tc := e.classifyToken(token)
	info := ClassInfo{
		Token:         token,
		Modifiers:     tc.parsed.Modifiers,
		Important:     tc.parsed.HasImportant,
		BaseClassName: tc.parsed.BaseClassName,
		External:      tc.parsed.IsExternal,
		GroupID:       tc.groupID,
	}
	if tc.groupID == "" {
		return info
	}
	info.SortedModifiers = e.sorter.sort(tc.parsed.Modifiers)
	if tc.postfix {
		info.Postfix = tc.parsed.BaseClassName[tc.parsed.PostfixModifierPosition+1:]
	}
	info.ConflictKey = conflictKey(tc.modifierID, tc.groupID)
	info.Conflicts = e.conflictingGroups(tc.groupID, tc.postfix)
	return info
}
