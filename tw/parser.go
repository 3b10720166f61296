package tw

import "strings"

const (
	modifierSeparator = ':'
	postfixSeparator  = '/'
	importantModifier = "!"
)

// ParsedToken is one class token split into its parts.
// "hover:md:!bg-red-500/50" → Modifiers [hover md], HasImportant, BaseClassName "bg-red-500/50",
// PostfixModifierPosition 10.
type ParsedToken struct {
	Modifiers     []string
	HasImportant  bool
	BaseClassName string
	// IsExternal marks tokens outside the configured prefix. They are never
	// classified or dropped.
	IsExternal bool
	// PostfixModifierPosition is the index of the top-level "/" inside
	// BaseClassName, or -1.
	PostfixModifierPosition int
}

// HasPostfixModifier reports whether the base class carries a "/value" suffix.
func (p ParsedToken) HasPostfixModifier() bool {
	return p.PostfixModifierPosition > 0
}

type tokenParser struct {
	prefix string
}

func newTokenParser(prefix string) tokenParser {
	if prefix == "" {
		return tokenParser{}
	}
	return tokenParser{prefix: prefix + string(modifierSeparator)}
}

// parse splits a token on top-level colons. Colons and slashes nested inside
// brackets or parentheses belong to the value: "[mask:theme(foo)]" has no modifiers.
func (p tokenParser) parse(token string) ParsedToken {
	if p.prefix != "" {
		rest, ok := strings.CutPrefix(token, p.prefix)
		if !ok {
			return ParsedToken{BaseClassName: token, IsExternal: true, PostfixModifierPosition: -1}
		}
		token = rest
	}

	var modifiers []string
	bracketDepth, parenDepth := 0, 0
	modifierStart := 0
	postfix := -1

	for i := 0; i < len(token); i++ {
		c := token[i]
		if bracketDepth == 0 && parenDepth == 0 {
			if c == modifierSeparator {
				modifiers = append(modifiers, token[modifierStart:i])
				modifierStart = i + 1
				continue
			}
			if c == postfixSeparator {
				postfix = i
				continue
			}
		}
		switch c {
		case '[':
			bracketDepth++
		case ']':
			if bracketDepth > 0 {
				bracketDepth--
			}
		case '(':
			parenDepth++
		case ')':
			if parenDepth > 0 {
				parenDepth--
			}
		}
	}

	base := token[modifierStart:]
	important := false
	shift := 0
	if stripped, ok := strings.CutSuffix(base, importantModifier); ok {
		base, important = stripped, true
	} else if stripped, ok := strings.CutPrefix(base, importantModifier); ok {
		// legacy "!p-2" form
		base, important, shift = stripped, true, 1
	}

	pos := -1
	if postfix > modifierStart {
		pos = postfix - modifierStart - shift
		if pos <= 0 || pos >= len(base) {
			pos = -1
		}
	}

	return ParsedToken{
		Modifiers:               modifiers,
		HasImportant:            important,
		BaseClassName:           base,
		PostfixModifierPosition: pos,
	}
}
