package tw

import (
	"sort"
	"strings"
)

// Cond is a class list included only when On is true.
type Cond struct {
	Class string
	On    bool
}

// If returns a conditional class list.
//
//	tw.Join("btn", tw.If(disabled, "opacity-50 cursor-not-allowed"))
func If(on bool, class string) Cond {
	return Cond{Class: class, On: on}
}

// Join flattens its arguments into one space-separated class list without
// resolving conflicts. Accepted argument shapes:
//
//   - string; empty strings are skipped
//   - []string and []any, nested to any depth
//   - Cond and []Cond
//   - map[string]bool; keys whose value is true, in sorted key order
//
// nil, bool and any other type contribute nothing.
func Join(args ...any) string {
	var b strings.Builder
	for _, arg := range args {
		appendClasses(&b, arg)
	}
	return b.String()
}

func appendClasses(b *strings.Builder, arg any) {
	switch v := arg.(type) {
	case string:
		writeClass(b, v)
	case []string:
		for _, s := range v {
			writeClass(b, s)
		}
	case []any:
		for _, item := range v {
			appendClasses(b, item)
		}
	case Cond:
		if v.On {
			writeClass(b, v.Class)
		}
	case []Cond:
		for _, c := range v {
			if c.On {
				writeClass(b, c.Class)
			}
		}
	case map[string]bool:
		keys := make([]string, 0, len(v))
		for k, on := range v {
			if on {
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)
		for _, k := range keys {
			writeClass(b, k)
		}
	}
}

func writeClass(b *strings.Builder, s string) {
	if s == "" {
		return
	}
	if b.Len() > 0 {
		b.WriteByte(' ')
	}
	b.WriteString(s)
}
