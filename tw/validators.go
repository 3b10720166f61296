package tw

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var (
	arbitraryValueRegex    = regexp.MustCompile(`(?i)^\[(?:(\w[\w-]*):)?(.+)\]$`)
	arbitraryVariableRegex = regexp.MustCompile(`(?i)^\((?:(\w[\w-]*):)?(.+)\)$`)
	fractionRegex          = regexp.MustCompile(`^\d+/\d+$`)
	tshirtUnitRegex        = regexp.MustCompile(`^(\d+(\.\d+)?)?(xs|sm|md|lg|xl)$`)
	lengthUnitRegex        = regexp.MustCompile(`\d+(%|px|r?em|[sdl]?v([hwib]|min|max)|pt|pc|in|cm|mm|cap|ch|ex|r?lh|cq(w|h|i|b|min|max))|\b(calc|min|max|clamp)\(.+\)|^0$`)
	colorFunctionRegex     = regexp.MustCompile(`^(rgba?|hsla?|hwb|(ok)?(lab|lch)|color-mix)\(.+\)$`)
	// shadow offsets: "0_35px_60px_-15px_rgba(0,0,0,0.3)", "inset_0_1px_0,inset_0_-1px_0"
	shadowRegex = regexp.MustCompile(`^(inset_)?-?((\d+)?\.?(\d+)[a-z]+|0)_-?((\d+)?\.?(\d+)[a-z]+|0)`)
	imageRegex  = regexp.MustCompile(`^(url|image|image-set|cross-fade|element|(repeating-)?(linear|radial|conic)-gradient)\(.+\)$`)
)

// IsAny accepts every value.
func IsAny(string) bool { return true }

// IsNever rejects every value.
func IsNever(string) bool { return false }

// IsFraction accepts "1/2", "3/4".
func IsFraction(value string) bool { return fractionRegex.MatchString(value) }

// IsNumber accepts decimal numbers. The only infinity spelling accepted is
// "Infinity" with an optional sign.
func IsNumber(value string) bool {
	if value == "" {
		return false
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(f) {
		return false
	}
	if math.IsInf(f, 0) {
		return strings.TrimLeft(value, "+-") == "Infinity"
	}
	return true
}

// IsInteger accepts numbers without a fractional part ("2", "2.0").
func IsInteger(value string) bool {
	if value == "" {
		return false
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	return f == math.Trunc(f)
}

// IsPercent accepts "50%".
func IsPercent(value string) bool {
	num, ok := strings.CutSuffix(value, "%")
	return ok && IsNumber(num)
}

// IsTshirtSize accepts "xs", "sm", "lg", "2xl", "1.5xl".
func IsTshirtSize(value string) bool { return tshirtUnitRegex.MatchString(value) }

// IsArbitraryValue accepts bracketed values such as "[3px]" or "[length:var(--x)]".
func IsArbitraryValue(value string) bool { return arbitraryValueRegex.MatchString(value) }

// IsArbitraryVariable accepts CSS variable shorthands such as "(--gap)".
func IsArbitraryVariable(value string) bool { return arbitraryVariableRegex.MatchString(value) }

// IsAnyNonArbitrary accepts everything that is neither an arbitrary value nor
// an arbitrary variable.
func IsAnyNonArbitrary(value string) bool {
	return !IsArbitraryValue(value) && !IsArbitraryVariable(value)
}

// IsArbitrarySize accepts bracketed values labeled as a size: "[size:200px]".
func IsArbitrarySize(value string) bool {
	return arbitraryValueOf(value, isLabelSize, IsNever)
}

// IsArbitraryLength accepts bracketed lengths such as "[3px]" or "[length:var(--x)]".
func IsArbitraryLength(value string) bool {
	return arbitraryValueOf(value, isLabelLength, isLengthOnly)
}

// IsArbitraryNumber accepts bracketed numbers: "[2]", "[number:var(--n)]".
func IsArbitraryNumber(value string) bool {
	return arbitraryValueOf(value, isLabelNumber, IsNumber)
}

// IsArbitraryPosition accepts bracketed values labeled as a position.
func IsArbitraryPosition(value string) bool {
	return arbitraryValueOf(value, isLabelPosition, IsNever)
}

// IsArbitraryImage accepts bracketed images: "[url(/a.png)]", "[linear-gradient(...)]".
func IsArbitraryImage(value string) bool {
	return arbitraryValueOf(value, isLabelImage, isImage)
}

// IsArbitraryShadow accepts bracketed shadows: "[0_35px_60px_-15px_rgba(0,0,0,0.3)]".
func IsArbitraryShadow(value string) bool {
	return arbitraryValueOf(value, isLabelShadow, isShadow)
}

// IsArbitraryVariableLength accepts variables labeled as a length: "(length:--w)".
func IsArbitraryVariableLength(value string) bool {
	return arbitraryVariableOf(value, isLabelLength, false)
}

// IsArbitraryVariableFamilyName accepts variables labeled as a font family.
func IsArbitraryVariableFamilyName(value string) bool {
	return arbitraryVariableOf(value, isLabelFamilyName, false)
}

// IsArbitraryVariablePosition accepts variables labeled as a position.
func IsArbitraryVariablePosition(value string) bool {
	return arbitraryVariableOf(value, isLabelPosition, false)
}

// IsArbitraryVariableSize accepts variables labeled as a size: "(size:--s)".
func IsArbitraryVariableSize(value string) bool {
	return arbitraryVariableOf(value, isLabelSize, false)
}

// IsArbitraryVariableImage accepts variables labeled as an image: "(image:--bg)".
func IsArbitraryVariableImage(value string) bool {
	return arbitraryVariableOf(value, isLabelImage, false)
}

// IsArbitraryVariableShadow also matches unlabeled variables: "shadow-(--x)".
func IsArbitraryVariableShadow(value string) bool {
	return arbitraryVariableOf(value, isLabelShadow, true)
}

func arbitraryValueOf(value string, testLabel, testValue func(string) bool) bool {
	m := arbitraryValueRegex.FindStringSubmatch(value)
	if m == nil {
		return false
	}
	if m[1] != "" {
		return testLabel(m[1])
	}
	return testValue(m[2])
}

func arbitraryVariableOf(value string, testLabel func(string) bool, matchNoLabel bool) bool {
	m := arbitraryVariableRegex.FindStringSubmatch(value)
	if m == nil {
		return false
	}
	if m[1] != "" {
		return testLabel(m[1])
	}
	return matchNoLabel
}

// colors like "rgb(0,0,0)" carry digits but are not lengths
func isLengthOnly(value string) bool {
	return lengthUnitRegex.MatchString(value) && !colorFunctionRegex.MatchString(value)
}

func isShadow(value string) bool { return shadowRegex.MatchString(value) }
func isImage(value string) bool  { return imageRegex.MatchString(value) }

func isLabelPosition(label string) bool   { return label == "position" || label == "percentage" }
func isLabelImage(label string) bool      { return label == "image" || label == "url" }
func isLabelSize(label string) bool       { return label == "length" || label == "size" || label == "bg-size" }
func isLabelLength(label string) bool     { return label == "length" }
func isLabelNumber(label string) bool     { return label == "number" }
func isLabelFamilyName(label string) bool { return label == "family-name" }
func isLabelShadow(label string) bool     { return label == "shadow" }

// validators is the registry TOML configs reference with "$name".
var validators = map[string]Validator{
	"any":                            IsAny,
	"never":                          IsNever,
	"any-non-arbitrary":              IsAnyNonArbitrary,
	"number":                         IsNumber,
	"integer":                        IsInteger,
	"percent":                        IsPercent,
	"fraction":                       IsFraction,
	"tshirt-size":                    IsTshirtSize,
	"arbitrary-value":                IsArbitraryValue,
	"arbitrary-variable":             IsArbitraryVariable,
	"arbitrary-size":                 IsArbitrarySize,
	"arbitrary-length":               IsArbitraryLength,
	"arbitrary-number":               IsArbitraryNumber,
	"arbitrary-position":             IsArbitraryPosition,
	"arbitrary-image":                IsArbitraryImage,
	"arbitrary-shadow":               IsArbitraryShadow,
	"arbitrary-variable-length":      IsArbitraryVariableLength,
	"arbitrary-variable-family-name": IsArbitraryVariableFamilyName,
	"arbitrary-variable-position":    IsArbitraryVariablePosition,
	"arbitrary-variable-size":        IsArbitraryVariableSize,
	"arbitrary-variable-image":       IsArbitraryVariableImage,
	"arbitrary-variable-shadow":      IsArbitraryVariableShadow,
}

// LookupValidator returns the built-in validator registered under name.
func LookupValidator(name string) (Validator, bool) {
	fn, ok := validators[name]
	return fn, ok
}

// ValidatorNames lists the registered validator names in sorted order.
func ValidatorNames() []string {
	names := make([]string, 0, len(validators))
	for name := range validators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
