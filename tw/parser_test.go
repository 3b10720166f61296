package tw

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseToken(t *testing.T) {
	tests := []struct {
		name      string
		prefix    string
		input     string
		modifiers []string
		important bool
		base      string
		external  bool
		postfix   int
	}{
		{
			name:    "plain class",
			input:   "p-4",
			base:    "p-4",
			postfix: -1,
		},
		{
			name:      "modifiers and leading important with postfix",
			input:     "hover:md:!bg-red-500/50",
			modifiers: []string{"hover", "md"},
			important: true,
			base:      "bg-red-500/50",
			postfix:   10,
		},
		{
			name:      "trailing important",
			input:     "p-2!",
			important: true,
			base:      "p-2",
			postfix:   -1,
		},
		{
			name:      "trailing important keeps postfix position",
			input:     "text-lg/7!",
			important: true,
			base:      "text-lg/7",
			postfix:   7,
		},
		{
			name:    "colon inside brackets is not a separator",
			input:   "[mask:theme(foo)]",
			base:    "[mask:theme(foo)]",
			postfix: -1,
		},
		{
			name:    "slash inside arbitrary value is not a postfix",
			input:   "bg-[url(/img/hero.png)]",
			base:    "bg-[url(/img/hero.png)]",
			postfix: -1,
		},
		{
			name:    "slash inside arbitrary variable is not a postfix",
			input:   "w-(--size/2)",
			base:    "w-(--size/2)",
			postfix: -1,
		},
		{
			name:      "arbitrary variant",
			input:     "hover:[&>p]:underline",
			modifiers: []string{"hover", "[&>p]"},
			base:      "underline",
			postfix:   -1,
		},
		{
			name:      "arbitrary variant with colon",
			input:     "[&:nth-child(3)]:py-0",
			modifiers: []string{"[&:nth-child(3)]"},
			base:      "py-0",
			postfix:   -1,
		},
		{
			name:    "fraction",
			input:   "w-1/2",
			base:    "w-1/2",
			postfix: 3,
		},
		{
			name:    "leading slash is not a postfix",
			input:   "/foo",
			base:    "/foo",
			postfix: -1,
		},
		{
			name:      "unbalanced closing bracket",
			input:     "a]]:b",
			modifiers: []string{"a]]"},
			base:      "b",
			postfix:   -1,
		},
		{
			name:    "unclosed bracket swallows the rest",
			input:   "[a:b",
			base:    "[a:b",
			postfix: -1,
		},
		{
			name:      "unclosed paren after a modifier",
			input:     "hover:(x:y",
			modifiers: []string{"hover"},
			base:      "(x:y",
			postfix:   -1,
		},
		{
			name:      "prefixed token",
			prefix:    "tw",
			input:     "tw:hover:p-2",
			modifiers: []string{"hover"},
			base:      "p-2",
			postfix:   -1,
		},
		{
			name:     "token outside the prefix",
			prefix:   "tw",
			input:    "hover:p-2",
			base:     "hover:p-2",
			external: true,
			postfix:  -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := newTokenParser(tt.prefix).parse(tt.input)
			assert.Equal(t, tt.modifiers, got.Modifiers)
			assert.Equal(t, tt.important, got.HasImportant)
			assert.Equal(t, tt.base, got.BaseClassName)
			assert.Equal(t, tt.external, got.IsExternal)
			assert.Equal(t, tt.postfix, got.PostfixModifierPosition)
			assert.Equal(t, tt.postfix > 0, got.HasPostfixModifier())
		})
	}
}
