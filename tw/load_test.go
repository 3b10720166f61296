package tw

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
prefix = "tw"
cache_size = 100

[override.theme]
spacing = ["px", "sm", "lg", "$number"]

[extend]
order_sensitive_modifiers = ["prose"]

[extend.class_groups]
shadow = [{ shadow = ["glow"] }]
"text-stroke" = [{ "text-stroke" = ["", "$number", "@color"] }]

[extend.conflicting_class_groups]
"text-stroke" = ["text-color"]
`

func TestFileConfigBuild(t *testing.T) {
	fc, err := ParseFile([]byte(sampleConfig))
	require.NoError(t, err)

	cfg, err := fc.Build(nil)
	require.NoError(t, err)
	assert.Equal(t, "tw", cfg.Prefix)
	assert.Equal(t, 100, cfg.CacheSize)
	assert.Contains(t, cfg.OrderSensitiveModifiers, "prose")
	assert.Contains(t, cfg.OrderSensitiveModifiers, "before")
	assert.Equal(t, []string{"text-color"}, cfg.ConflictingClassGroups["text-stroke"])

	group, ok := cfg.Group("text-stroke")
	require.True(t, ok)
	require.Len(t, group.Defs, 1)
	assert.Equal(t, DefNested, group.Defs[0].Kind)
	assert.Equal(t, "text-stroke", group.Defs[0].Value)

	e := New(WithConfig(cfg))
	tests := []struct {
		input string
		want  string
	}{
		{"tw:shadow-lg tw:shadow-glow", "tw:shadow-glow"},
		{"tw:p-sm tw:p-4", "tw:p-4"},
		{"tw:text-red-500 tw:text-stroke-2", "tw:text-stroke-2"},
		{"tw:text-stroke tw:text-stroke-blue-500", "tw:text-stroke-blue-500"},
		{"tw:prose:hover:p-2 tw:hover:prose:p-4", "tw:prose:hover:p-2 tw:hover:prose:p-4"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Merge(tt.input))
		})
	}
}

func TestFileConfigBuildKeepsBase(t *testing.T) {
	fc, err := ParseFile([]byte(`
[override.conflicting_class_groups]
p = []
`))
	require.NoError(t, err)

	base := DefaultConfig()
	cfg, err := fc.Build(base)
	require.NoError(t, err)

	assert.Empty(t, cfg.ConflictingClassGroups["p"])
	assert.NotEmpty(t, base.ConflictingClassGroups["p"])
	assert.Equal(t, "px-4 p-2", New(WithConfig(cfg)).Merge("px-4 p-2"))
}

func TestFileConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{
			name: "unknown validator",
			data: "[extend.class_groups]\nfoo = [\"$nope\"]\n",
			want: ErrUnknownValidator,
		},
		{
			name: "unknown theme scale",
			data: "[extend.class_groups]\nfoo = [\"@nope\"]\n",
			want: ErrUnknownThemeScale,
		},
		{
			name: "empty theme reference",
			data: "[extend.theme]\nfoo = [\"@\"]\n",
			want: ErrInvalidClassDef,
		},
		{
			name: "number item",
			data: "[override.class_groups]\nfoo = [1]\n",
			want: ErrInvalidClassDef,
		},
		{
			name: "nested value is not a list",
			data: "[extend.class_groups]\nfoo = [{ foo = \"bar\" }]\n",
			want: ErrInvalidClassDef,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc, err := ParseFile([]byte(tt.data))
			require.NoError(t, err)

			_, err = fc.Build(nil)
			assert.ErrorIs(t, err, tt.want)

			_, err = fc.Options(nil)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseFileRejectsUnknownKeys(t *testing.T) {
	_, err := ParseFile([]byte("prefx = \"tw\"\n"))
	require.Error(t, err)

	var strict *toml.StrictMissingError
	assert.True(t, errors.As(err, &strict))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultConfigFile)
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0644))

	fc, err := LoadFile(path)
	require.NoError(t, err)
	require.NotNil(t, fc.Prefix)
	assert.Equal(t, "tw", *fc.Prefix)

	opts, err := fc.Options(nil)
	require.NoError(t, err)
	assert.Equal(t, "tw:p-4", New(opts...).Merge("tw:p-2 tw:p-4"))

	_, err = LoadFile(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
