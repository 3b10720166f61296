package tw

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestMerge(t *testing.T) {
	e := New()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"whitespace only", "  \t\n ", ""},
		{"collapses whitespace", "  p-2 \n p-4\t", "p-4"},
		{"last wins within a group", "pt-2 pt-4", "pt-4"},
		{"unknown classes are kept", "foo bar foo", "foo bar foo"},
		{"unknown classes keep their place", "card p-2 shadow-xl p-4 my-btn", "card shadow-xl p-4 my-btn"},
		{"broader group overrides narrower", "px-2 py-1 p-3", "p-3"},
		{"narrower group after broader is kept", "p-3 px-2", "p-3 px-2"},
		{"modifiers scope conflicts", "hover:pt-2 pt-4", "hover:pt-2 pt-4"},
		{"same modifiers conflict", "hover:pt-2 hover:pt-4", "hover:pt-4"},
		{"modifier order does not matter", "hover:focus:pt-2 focus:hover:pt-4", "focus:hover:pt-4"},
		{"order-sensitive modifiers keep their order", "before:hover:pt-2 hover:before:pt-4", "before:hover:pt-2 hover:before:pt-4"},
		{"order-sensitive modifiers same order", "md:hover:before:pt-2 hover:md:before:pt-4", "hover:md:before:pt-4"},
		{"important is part of the signature", "!p-2 p-4", "!p-2 p-4"},
		{"important both ends", "p-2! !p-4", "!p-4"},
		{"negative values", "-m-2 m-4", "m-4"},
		{"negative value wins", "m-4 -m-2", "-m-2"},
		{"arbitrary value", "p-[3px] p-4", "p-4"},
		{"arbitrary color", "bg-red-500 bg-[#fff]", "bg-[#fff]"},
		{"arbitrary variable", "p-4 p-(--gap)", "p-(--gap)"},
		{"colon inside brackets", "[mask:theme(foo)]", "[mask:theme(foo)]"},
		{"unclosed bracket leaves neighbours alone", "hover:[a:b p-2 hover:p-2", "hover:[a:b p-2 hover:p-2"},
		{"infinity is not a number", "p-inf p-2", "p-inf p-2"},
		{"arbitrary property last wins", "[mask-type:luminance] [mask-type:alpha]", "[mask-type:alpha]"},
		{"arbitrary property under different modifiers", "hover:[mask-type:luminance] [mask-type:alpha]", "hover:[mask-type:luminance] [mask-type:alpha]"},
		{"arbitrary property distinct props", "[mask-type:luminance] [--x:1]", "[mask-type:luminance] [--x:1]"},
		{"fraction postfix", "w-1/2 w-full", "w-full"},
		{"unclassified before slash falls back", "aspect-3/2 aspect-video", "aspect-video"},
		{"postfix line height overrides leading", "leading-3 text-lg/7", "text-lg/7"},
		{"font size overrides leading", "leading-3 text-lg", "text-lg"},
		{"leading after font size is kept", "text-lg/7 leading-3", "text-lg/7 leading-3"},
		{"text color and size coexist", "text-red-500 text-lg", "text-red-500 text-lg"},
		{"display", "block flex hidden", "hidden"},
		{"line clamp overrides display", "block overflow-hidden line-clamp-2", "line-clamp-2"},
		{"shadow and shadow color", "shadow-lg shadow-red-500 shadow-md", "shadow-red-500 shadow-md"},
		{"rounded corners", "rounded-tl-lg rounded-t-sm rounded-md", "rounded-md"},
		{"border width and color", "border-2 border-red-500 border border-blue-500", "border border-blue-500"},
		{"touch groups conflict both ways", "touch-none touch-pan-x", "touch-pan-x"},
		{"touch groups conflict both ways reversed", "touch-pan-x touch-none", "touch-none"},
		{"numeric variants", "normal-nums tabular-nums", "tabular-nums"},
		{"numeric variants reversed", "tabular-nums normal-nums", "normal-nums"},
		{"translate none", "translate-x-2 translate-y-4 translate-none", "translate-none"},
		{
			"end to end",
			"flex items-center p-2 hover:p-4 p-6",
			"flex items-center hover:p-4 p-6",
		},
		{
			"readme example",
			"px-2 py-1 bg-red hover:bg-dark-red p-3 bg-[#B91C1C]",
			"hover:bg-dark-red p-3 bg-[#B91C1C]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Merge(tt.input))
		})
	}
}

func TestMergeConflictTableIsDirectional(t *testing.T) {
	e := New()

	// p declares a conflict with px, not the other way round
	assert.Equal(t, "p-2 px-4", e.Merge("p-2 px-4"))
	assert.Equal(t, "p-2", e.Merge("px-4 p-2"))
}

func TestMergeArguments(t *testing.T) {
	e := New()

	got := e.Merge(
		"px-2",
		[]string{"py-1", ""},
		map[string]bool{"p-3": true, "hidden": false},
		If(false, "m-2"),
		[]any{"text-sm", []string{"text-lg"}},
		nil,
		true,
	)
	assert.Equal(t, "p-3 text-lg", got)
}

func TestMergeCacheTransparency(t *testing.T) {
	inputs := []string{
		"px-2 py-1 p-3",
		"hover:pt-2 pt-4",
		"[mask:theme(foo)]",
		"text-lg/7 leading-3 leading-none",
		"flex items-center p-2 hover:p-4 p-6",
		"before:hover:pt-2 hover:before:pt-4",
	}

	cached := New(WithCacheSize(2))
	uncached := New(WithCacheSize(0))
	for round := 0; round < 3; round++ {
		for _, in := range inputs {
			assert.Equal(t, uncached.Merge(in), cached.Merge(in), in)
		}
	}

	assert.Positive(t, cached.Stats().Hits+cached.Stats().Rollovers)
	assert.Zero(t, uncached.Stats().Hits)
	assert.Zero(t, uncached.Stats().Size)
}

func TestMergeIdempotent(t *testing.T) {
	e := New()
	inputs := []string{
		"px-2 py-1 p-3 hover:p-4",
		"bg-red-500 text-white bg-blue-500 hover:bg-blue-600",
		"tw-card p-2! !p-4 -mt-2 mt-4",
		"w-1/2 h-full aspect-3/2 text-lg/7 leading-3",
		"[mask-type:luminance] hover:[mask-type:alpha] [mask-type:alpha]",
	}
	for _, in := range inputs {
		once := e.Merge(in)
		assert.Equal(t, once, e.Merge(once), in)
	}
}

func TestMergeWithPrefix(t *testing.T) {
	e := New(WithPrefix("tw"))

	assert.Equal(t, "tw:p-4", e.Merge("tw:p-2 tw:p-4"))
	assert.Equal(t, "tw:hover:p-2 tw:p-4", e.Merge("tw:hover:p-2 tw:p-4"))
	// tokens outside the prefix are never dropped or reordered
	assert.Equal(t, "p-2 foo:bar tw:p-4 p-4", e.Merge("p-2 tw:p-2 foo:bar tw:p-4 p-4"))
}

func TestMergeExtendedConfig(t *testing.T) {
	cfg := DefaultConfig().Extend(Patch{
		ClassGroups: []ClassGroup{
			{ID: "shadow", Defs: []ClassDef{Nested("shadow", Literal("glow"))}},
		},
	})

	assert.Equal(t, "shadow-lg shadow-glow", New().Merge("shadow-lg shadow-glow"))
	assert.Equal(t, "shadow-glow", New(WithConfig(cfg)).Merge("shadow-lg shadow-glow"))
}

func TestMergeOverriddenTheme(t *testing.T) {
	cfg := DefaultConfig().Override(Patch{
		Theme: map[string][]ClassDef{"spacing": Literals("sm", "lg")},
	})
	e := New(WithConfig(cfg))

	assert.Equal(t, "p-2 p-4", e.Merge("p-2 p-4"))
	assert.Equal(t, "p-lg", e.Merge("px-sm p-lg"))
}

func TestNewCopiesConfig(t *testing.T) {
	cfg := DefaultConfig()
	e := New(WithConfig(cfg), WithCacheSize(0))
	cfg.ConflictingClassGroups["p"] = nil

	assert.Equal(t, "p-2", e.Merge("px-4 p-2"))
	assert.Equal(t, 0, e.Config().CacheSize)
	assert.Equal(t, DefaultCacheSize, cfg.CacheSize)
}

func TestEngineLogsTrieBuildOnce(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	e := New(WithLogger(zap.New(core)))

	e.Merge("p-2 p-4")
	e.Merge("m-2 m-4")
	e.Classify("p-2")

	entries := logs.FilterMessage("Built class group trie").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(len(DefaultConfig().ClassGroups)), entries[0].ContextMap()["groups"])
}

func TestEngineStats(t *testing.T) {
	e := New()
	e.Merge("p-2 p-4")
	e.Merge("p-2 p-4")
	e.Merge("")

	stats := e.Stats()
	assert.Equal(t, uint64(1), stats.Hits)
	assert.Equal(t, uint64(1), stats.Misses)
	assert.Equal(t, 1, stats.Size)
}

func TestEngineConcurrentMerge(t *testing.T) {
	e := New(WithCacheSize(4))
	inputs := map[string]string{
		"pt-2 pt-4":                          "pt-4",
		"px-2 py-1 p-3":                      "p-3",
		"hover:pt-2 pt-4":                    "hover:pt-2 pt-4",
		"text-red-500 text-lg text-blue-500": "text-lg text-blue-500",
		"block flex":                         "flex",
		"touch-none touch-pan-x":             "touch-pan-x",
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				for in, want := range inputs {
					assert.Equal(t, want, e.Merge(in))
				}
			}
		}()
	}
	wg.Wait()
}

func TestClassify(t *testing.T) {
	e := New()

	info := e.Classify("md:hover:!text-lg/7")
	assert.Equal(t, []string{"md", "hover"}, info.Modifiers)
	assert.Equal(t, []string{"hover", "md"}, info.SortedModifiers)
	assert.True(t, info.Important)
	assert.Equal(t, "text-lg/7", info.BaseClassName)
	assert.Equal(t, "7", info.Postfix)
	assert.Equal(t, "font-size", info.GroupID)
	assert.Equal(t, "hover:md!:font-size", info.ConflictKey)
	assert.Contains(t, info.Conflicts, "leading")

	info = e.Classify("px-2")
	assert.Equal(t, "px", info.GroupID)
	assert.Equal(t, ":px", info.ConflictKey)
	assert.Equal(t, []string{"pr", "pl"}, info.Conflicts)
	assert.Empty(t, info.Postfix)

	info = e.Classify("w-1/2")
	assert.Equal(t, "w", info.GroupID)
	assert.Equal(t, "2", info.Postfix)

	info = e.Classify("my-component")
	assert.Empty(t, info.GroupID)
	assert.Empty(t, info.ConflictKey)
	assert.False(t, info.External)

	info = New(WithPrefix("tw")).Classify("p-2")
	assert.True(t, info.External)
	assert.Empty(t, info.GroupID)
}

func TestConflictingGroupsDoesNotAliasTable(t *testing.T) {
	e := New()
	e.Classify("text-lg")

	first := e.conflictingGroups("font-size", true)
	second := e.conflictingGroups("font-size", false)
	assert.Equal(t, []string{"leading", "leading"}, first)
	assert.Equal(t, []string{"leading"}, second)
	assert.Equal(t, []string{"leading"}, e.config.ConflictingClassGroups["font-size"])
}

func BenchmarkMerge(b *testing.B) {
	const input = "flex items-center justify-between px-4 py-2 p-3 bg-red-500 hover:bg-red-600 text-sm text-white rounded-md shadow-lg"

	b.Run("cached", func(b *testing.B) {
		e := New()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			e.Merge(input)
		}
	})

	b.Run("uncached", func(b *testing.B) {
		e := New(WithCacheSize(0))
		e.Merge(input)
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			e.Merge(input)
		}
	})
}

func BenchmarkNew(b *testing.B) {
	for i := 0; i < b.N; i++ {
		New().Classify("p-2")
	}
}
