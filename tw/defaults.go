package tw

// Validator definitions shared by the default class groups.
var (
	isAny                    = Check("any", IsAny)
	isAnyNonArbitrary        = Check("any-non-arbitrary", IsAnyNonArbitrary)
	isNumber                 = Check("number", IsNumber)
	isInteger                = Check("integer", IsInteger)
	isPercent                = Check("percent", IsPercent)
	isFraction               = Check("fraction", IsFraction)
	isTshirtSize             = Check("tshirt-size", IsTshirtSize)
	isArbitraryValue         = Check("arbitrary-value", IsArbitraryValue)
	isArbitraryVariable      = Check("arbitrary-variable", IsArbitraryVariable)
	isArbitrarySize          = Check("arbitrary-size", IsArbitrarySize)
	isArbitraryLength        = Check("arbitrary-length", IsArbitraryLength)
	isArbitraryNumber        = Check("arbitrary-number", IsArbitraryNumber)
	isArbitraryPosition      = Check("arbitrary-position", IsArbitraryPosition)
	isArbitraryImage         = Check("arbitrary-image", IsArbitraryImage)
	isArbitraryShadow        = Check("arbitrary-shadow", IsArbitraryShadow)
	isArbitraryVarLength     = Check("arbitrary-variable-length", IsArbitraryVariableLength)
	isArbitraryVarFamilyName = Check("arbitrary-variable-family-name", IsArbitraryVariableFamilyName)
	isArbitraryVarPosition   = Check("arbitrary-variable-position", IsArbitraryVariablePosition)
	isArbitraryVarSize       = Check("arbitrary-variable-size", IsArbitraryVariableSize)
	isArbitraryVarImage      = Check("arbitrary-variable-image", IsArbitraryVariableImage)
	isArbitraryVarShadow     = Check("arbitrary-variable-shadow", IsArbitraryVariableShadow)
)

var (
	themeColor       = FromTheme("color")
	themeFont        = FromTheme("font")
	themeText        = FromTheme("text")
	themeFontWeight  = FromTheme("font-weight")
	themeTracking    = FromTheme("tracking")
	themeLeading     = FromTheme("leading")
	themeBreakpoint  = FromTheme("breakpoint")
	themeContainer   = FromTheme("container")
	themeSpacing     = FromTheme("spacing")
	themeRadius      = FromTheme("radius")
	themeShadow      = FromTheme("shadow")
	themeInsetShadow = FromTheme("inset-shadow")
	themeTextShadow  = FromTheme("text-shadow")
	themeDropShadow  = FromTheme("drop-shadow")
	themeBlur        = FromTheme("blur")
	themePerspective = FromTheme("perspective")
	themeAspect      = FromTheme("aspect")
	themeEase        = FromTheme("ease")
	themeAnimate     = FromTheme("animate")
)

// defs flattens literals, definitions and definition lists. It is only used to
// keep the static tables below readable.
func defs(items ...any) []ClassDef {
	out := make([]ClassDef, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case string:
			out = append(out, Literal(v))
		case []string:
			out = append(out, Literals(v...)...)
		case ClassDef:
			out = append(out, v)
		case []ClassDef:
			out = append(out, v...)
		}
	}
	return out
}

func sub(key string, items ...any) ClassDef {
	return Nested(key, defs(items...)...)
}

func group(id string, items ...any) ClassGroup {
	return ClassGroup{ID: id, Defs: defs(items...)}
}

// prefixed is the common shape of a group whose classes all share one prefix:
// group("p", sub("p", ...)).
func prefixed(id, key string, items ...any) ClassGroup {
	return ClassGroup{ID: id, Defs: []ClassDef{sub(key, items...)}}
}

func scaleBreak() []string {
	return []string{"auto", "avoid", "all", "avoid-page", "page", "left", "right", "column"}
}

func scalePosition() []string {
	return []string{
		"center", "top", "bottom", "left", "right",
		"top-left", "left-top", "top-right", "right-top",
		"bottom-right", "right-bottom", "bottom-left", "left-bottom",
	}
}

func scalePositionWithArbitrary() []ClassDef {
	return defs(scalePosition(), isArbitraryVariable, isArbitraryValue)
}

func scaleOverflow() []string  { return []string{"auto", "hidden", "clip", "visible", "scroll"} }
func scaleOverscroll() []string { return []string{"auto", "contain", "none"} }

func scaleUnambiguousSpacing() []ClassDef {
	return []ClassDef{isArbitraryVariable, isArbitraryValue, themeSpacing}
}

func scaleInset() []ClassDef {
	return defs(isFraction, "full", "auto", scaleUnambiguousSpacing())
}

func scaleGridTemplateColsRows() []ClassDef {
	return defs(isInteger, "none", "subgrid", isArbitraryVariable, isArbitraryValue)
}

func scaleGridColRowStartAndEnd() []ClassDef {
	return defs(
		"auto",
		sub("span", "full", isInteger, isArbitraryVariable, isArbitraryValue),
		isInteger, isArbitraryVariable, isArbitraryValue,
	)
}

func scaleGridColRowStartOrEnd() []ClassDef {
	return defs(isInteger, "auto", isArbitraryVariable, isArbitraryValue)
}

func scaleGridAutoColsRows() []ClassDef {
	return defs("auto", "min", "max", "fr", isArbitraryVariable, isArbitraryValue)
}

func scaleAlignPrimaryAxis() []string {
	return []string{"start", "end", "center", "between", "around", "evenly", "stretch", "baseline", "center-safe", "end-safe"}
}

func scaleAlignSecondaryAxis() []string {
	return []string{"start", "end", "center", "stretch", "center-safe", "end-safe"}
}

func scaleMargin() []ClassDef {
	return defs("auto", scaleUnambiguousSpacing())
}

func scaleSizing() []ClassDef {
	return defs(isFraction, "auto", "full", "dvw", "dvh", "lvw", "lvh", "svw", "svh", "min", "max", "fit", scaleUnambiguousSpacing())
}

func scaleColor() []ClassDef {
	return []ClassDef{themeColor, isArbitraryVariable, isArbitraryValue}
}

func scaleBgPosition() []ClassDef {
	return defs(scalePosition(), isArbitraryVarPosition, isArbitraryPosition,
		sub("position", isArbitraryVariable, isArbitraryValue))
}

func scaleBgRepeat() []ClassDef {
	return defs("no-repeat", sub("repeat", "", "x", "y", "space", "round"))
}

func scaleBgSize() []ClassDef {
	return defs("auto", "cover", "contain", isArbitraryVarSize, isArbitrarySize,
		sub("size", isArbitraryVariable, isArbitraryValue))
}

func scaleGradientStopPosition() []ClassDef {
	return defs(isPercent, isArbitraryVarLength, isArbitraryLength)
}

func scaleRadius() []ClassDef {
	return defs("", "none", "full", themeRadius, isArbitraryVariable, isArbitraryValue)
}

func scaleBorderWidth() []ClassDef {
	return defs("", isNumber, isArbitraryVarLength, isArbitraryLength)
}

func scaleLineStyle() []string { return []string{"solid", "dashed", "dotted", "double"} }

func scaleBlendMode() []string {
	return []string{
		"normal", "multiply", "screen", "overlay", "darken", "lighten", "color-dodge", "color-burn",
		"hard-light", "soft-light", "difference", "exclusion", "hue", "saturation", "color", "luminosity",
	}
}

func scaleMaskImagePosition() []ClassDef {
	return defs(isNumber, isPercent, isArbitraryVarPosition, isArbitraryPosition)
}

func scaleBlur() []ClassDef {
	return defs("", "none", themeBlur, isArbitraryVariable, isArbitraryValue)
}

func scaleRotate() []ClassDef {
	return defs("none", isNumber, isArbitraryVariable, isArbitraryValue)
}

func scaleScale() []ClassDef {
	return defs("none", isNumber, isArbitraryVariable, isArbitraryValue)
}

func scaleSkew() []ClassDef {
	return defs(isNumber, isArbitraryVariable, isArbitraryValue)
}

func scaleTranslate() []ClassDef {
	return defs(isFraction, "full", scaleUnambiguousSpacing())
}

func scaleNumberOrArbitrary() []ClassDef {
	return defs(isNumber, isArbitraryVariable, isArbitraryValue)
}

func scaleFilterAmount() []ClassDef {
	return defs("", isNumber, isArbitraryVariable, isArbitraryValue)
}

// DefaultOrderSensitiveModifiers are the modifiers whose position relative to
// their neighbours changes the generated selector.
func DefaultOrderSensitiveModifiers() []string {
	return []string{
		"*", "**", "after", "backdrop", "before", "details-content", "file",
		"first-letter", "first-line", "marker", "placeholder", "selection",
	}
}

// DefaultConfig returns the Tailwind CSS v4 class group table.
func DefaultConfig() *Config {
	return &Config{
		CacheSize:                      DefaultCacheSize,
		Theme:                          defaultTheme(),
		ClassGroups:                    defaultClassGroups(),
		ConflictingClassGroups:         defaultConflictingClassGroups(),
		ConflictingClassGroupModifiers: map[string][]string{"font-size": {"leading"}},
		OrderSensitiveModifiers:        DefaultOrderSensitiveModifiers(),
	}
}

func defaultTheme() map[string][]ClassDef {
	return map[string][]ClassDef{
		"animate":      Literals("spin", "ping", "pulse", "bounce"),
		"aspect":       Literals("video"),
		"blur":         {isTshirtSize},
		"breakpoint":   {isTshirtSize},
		"color":        {isAny},
		"container":    {isTshirtSize},
		"drop-shadow":  {isTshirtSize},
		"ease":         Literals("in", "out", "in-out"),
		"font":         {isAnyNonArbitrary},
		"font-weight":  Literals("thin", "extralight", "light", "normal", "medium", "semibold", "bold", "extrabold", "black"),
		"inset-shadow": {isTshirtSize},
		"leading":      Literals("none", "tight", "snug", "normal", "relaxed", "loose"),
		"perspective":  Literals("dramatic", "near", "normal", "midrange", "distant", "none"),
		"radius":       {isTshirtSize},
		"shadow":       {isTshirtSize},
		"spacing":      {Literal("px"), isNumber},
		"text":         {isTshirtSize},
		"text-shadow":  {isTshirtSize},
		"tracking":     Literals("tighter", "tight", "normal", "wide", "wider", "widest"),
	}
}

func defaultClassGroups() []ClassGroup {
	var groups []ClassGroup
	groups = append(groups, layoutGroups()...)
	groups = append(groups, flexGridGroups()...)
	groups = append(groups, spacingSizingGroups()...)
	groups = append(groups, typographyGroups()...)
	groups = append(groups, backgroundBorderGroups()...)
	groups = append(groups, effectFilterGroups()...)
	groups = append(groups, tableTransitionTransformGroups()...)
	groups = append(groups, interactivitySvgGroups()...)
	return groups
}

func layoutGroups() []ClassGroup {
	return []ClassGroup{
		prefixed("aspect", "aspect", "auto", "square", isFraction, isArbitraryValue, isArbitraryVariable, themeAspect),
		group("container", "container"),
		prefixed("columns", "columns", isNumber, isArbitraryValue, isArbitraryVariable, themeContainer),
		prefixed("break-after", "break-after", scaleBreak()),
		prefixed("break-before", "break-before", scaleBreak()),
		prefixed("break-inside", "break-inside", "auto", "avoid", "avoid-page", "avoid-column"),
		prefixed("box-decoration", "box-decoration", "slice", "clone"),
		prefixed("box", "box", "border", "content"),
		group("display",
			"block", "inline-block", "inline", "flex", "inline-flex", "table", "inline-table",
			"table-caption", "table-cell", "table-column", "table-column-group", "table-footer-group",
			"table-header-group", "table-row-group", "table-row", "flow-root", "grid", "inline-grid",
			"contents", "list-item", "hidden"),
		group("sr", "sr-only", "not-sr-only"),
		prefixed("float", "float", "right", "left", "none", "start", "end"),
		prefixed("clear", "clear", "left", "right", "both", "none", "start", "end"),
		group("isolation", "isolate", "isolation-auto"),
		prefixed("object-fit", "object", "contain", "cover", "fill", "none", "scale-down"),
		prefixed("object-position", "object", scalePositionWithArbitrary()),
		prefixed("overflow", "overflow", scaleOverflow()),
		prefixed("overflow-x", "overflow-x", scaleOverflow()),
		prefixed("overflow-y", "overflow-y", scaleOverflow()),
		prefixed("overscroll", "overscroll", scaleOverscroll()),
		prefixed("overscroll-x", "overscroll-x", scaleOverscroll()),
		prefixed("overscroll-y", "overscroll-y", scaleOverscroll()),
		group("position", "static", "fixed", "absolute", "relative", "sticky"),
		prefixed("inset", "inset", scaleInset()),
		prefixed("inset-x", "inset-x", scaleInset()),
		prefixed("inset-y", "inset-y", scaleInset()),
		prefixed("start", "start", scaleInset()),
		prefixed("end", "end", scaleInset()),
		prefixed("top", "top", scaleInset()),
		prefixed("right", "right", scaleInset()),
		prefixed("bottom", "bottom", scaleInset()),
		prefixed("left", "left", scaleInset()),
		group("visibility", "visible", "invisible", "collapse"),
		prefixed("z", "z", isInteger, "auto", isArbitraryVariable, isArbitraryValue),
	}
}

func flexGridGroups() []ClassGroup {
	return []ClassGroup{
		prefixed("basis", "basis", isFraction, "full", "auto", themeContainer, scaleUnambiguousSpacing()),
		prefixed("flex-direction", "flex", "row", "row-reverse", "col", "col-reverse"),
		prefixed("flex-wrap", "flex", "nowrap", "wrap", "wrap-reverse"),
		prefixed("flex", "flex", isNumber, isFraction, "auto", "initial", "none", isArbitraryValue),
		prefixed("grow", "grow", "", isNumber, isArbitraryVariable, isArbitraryValue),
		prefixed("shrink", "shrink", "", isNumber, isArbitraryVariable, isArbitraryValue),
		prefixed("order", "order", isInteger, "first", "last", "none", isArbitraryVariable, isArbitraryValue),
		prefixed("grid-cols", "grid-cols", scaleGridTemplateColsRows()),
		prefixed("col-start-end", "col", scaleGridColRowStartAndEnd()),
		prefixed("col-start", "col-start", scaleGridColRowStartOrEnd()),
		prefixed("col-end", "col-end", scaleGridColRowStartOrEnd()),
		prefixed("grid-rows", "grid-rows", scaleGridTemplateColsRows()),
		prefixed("row-start-end", "row", scaleGridColRowStartAndEnd()),
		prefixed("row-start", "row-start", scaleGridColRowStartOrEnd()),
		prefixed("row-end", "row-end", scaleGridColRowStartOrEnd()),
		prefixed("grid-flow", "grid-flow", "row", "col", "dense", "row-dense", "col-dense"),
		prefixed("auto-cols", "auto-cols", scaleGridAutoColsRows()),
		prefixed("auto-rows", "auto-rows", scaleGridAutoColsRows()),
		prefixed("gap", "gap", scaleUnambiguousSpacing()),
		prefixed("gap-x", "gap-x", scaleUnambiguousSpacing()),
		prefixed("gap-y", "gap-y", scaleUnambiguousSpacing()),
		prefixed("justify-content", "justify", scaleAlignPrimaryAxis(), "normal"),
		prefixed("justify-items", "justify-items", scaleAlignSecondaryAxis(), "normal"),
		prefixed("justify-self", "justify-self", "auto", scaleAlignSecondaryAxis()),
		prefixed("align-content", "content", "normal", scaleAlignPrimaryAxis()),
		prefixed("align-items", "items", scaleAlignSecondaryAxis(), sub("baseline", "", "last")),
		prefixed("align-self", "self", "auto", scaleAlignSecondaryAxis(), sub("baseline", "", "last")),
		prefixed("place-content", "place-content", scaleAlignPrimaryAxis()),
		prefixed("place-items", "place-items", scaleAlignSecondaryAxis(), "baseline"),
		prefixed("place-self", "place-self", "auto", scaleAlignSecondaryAxis()),
	}
}

func spacingSizingGroups() []ClassGroup {
	groups := make([]ClassGroup, 0, 32)
	for _, id := range []string{"p", "px", "py", "ps", "pe", "pt", "pr", "pb", "pl"} {
		groups = append(groups, prefixed(id, id, scaleUnambiguousSpacing()))
	}
	for _, id := range []string{"m", "mx", "my", "ms", "me", "mt", "mr", "mb", "ml"} {
		groups = append(groups, prefixed(id, id, scaleMargin()))
	}
	return append(groups,
		prefixed("space-x", "space-x", scaleUnambiguousSpacing()),
		group("space-x-reverse", "space-x-reverse"),
		prefixed("space-y", "space-y", scaleUnambiguousSpacing()),
		group("space-y-reverse", "space-y-reverse"),
		prefixed("size", "size", scaleSizing()),
		prefixed("w", "w", themeContainer, "screen", scaleSizing()),
		prefixed("min-w", "min-w", themeContainer, "screen", "none", scaleSizing()),
		prefixed("max-w", "max-w", themeContainer, "screen", "none", "prose",
			sub("screen", themeBreakpoint), scaleSizing()),
		prefixed("h", "h", "screen", "lh", scaleSizing()),
		prefixed("min-h", "min-h", "screen", "lh", "none", scaleSizing()),
		prefixed("max-h", "max-h", "screen", "lh", scaleSizing()),
	)
}

func typographyGroups() []ClassGroup {
	return []ClassGroup{
		prefixed("font-size", "text", "base", themeText, isArbitraryVarLength, isArbitraryLength),
		group("font-smoothing", "antialiased", "subpixel-antialiased"),
		group("font-style", "italic", "not-italic"),
		prefixed("font-weight", "font", themeFontWeight, isArbitraryVariable, isArbitraryNumber),
		prefixed("font-stretch", "font-stretch",
			"ultra-condensed", "extra-condensed", "condensed", "semi-condensed", "normal",
			"semi-expanded", "expanded", "extra-expanded", "ultra-expanded", isPercent, isArbitraryValue),
		prefixed("font-family", "font", isArbitraryVarFamilyName, isArbitraryValue, themeFont),
		group("fvn-normal", "normal-nums"),
		group("fvn-ordinal", "ordinal"),
		group("fvn-slashed-zero", "slashed-zero"),
		group("fvn-figure", "lining-nums", "oldstyle-nums"),
		group("fvn-spacing", "proportional-nums", "tabular-nums"),
		group("fvn-fraction", "diagonal-fractions", "stacked-fractions"),
		prefixed("tracking", "tracking", themeTracking, isArbitraryVariable, isArbitraryValue),
		prefixed("line-clamp", "line-clamp", isNumber, "none", isArbitraryVariable, isArbitraryNumber),
		prefixed("leading", "leading", themeLeading, scaleUnambiguousSpacing()),
		prefixed("list-image", "list-image", "none", isArbitraryVariable, isArbitraryValue),
		prefixed("list-style-position", "list", "inside", "outside"),
		prefixed("list-style-type", "list", "disc", "decimal", "none", isArbitraryVariable, isArbitraryValue),
		prefixed("text-alignment", "text", "left", "center", "right", "justify", "start", "end"),
		prefixed("placeholder-color", "placeholder", scaleColor()),
		prefixed("text-color", "text", scaleColor()),
		group("text-decoration", "underline", "overline", "line-through", "no-underline"),
		prefixed("text-decoration-style", "decoration", scaleLineStyle(), "wavy"),
		prefixed("text-decoration-thickness", "decoration", isNumber, "from-font", "auto", isArbitraryVariable, isArbitraryLength),
		prefixed("text-decoration-color", "decoration", scaleColor()),
		prefixed("underline-offset", "underline-offset", isNumber, "auto", isArbitraryVariable, isArbitraryValue),
		group("text-transform", "uppercase", "lowercase", "capitalize", "normal-case"),
		group("text-overflow", "truncate", "text-ellipsis", "text-clip"),
		prefixed("text-wrap", "text", "wrap", "nowrap", "balance", "pretty"),
		prefixed("indent", "indent", scaleUnambiguousSpacing()),
		prefixed("vertical-align", "align",
			"baseline", "top", "middle", "bottom", "text-top", "text-bottom", "sub", "super",
			isArbitraryVariable, isArbitraryValue),
		prefixed("whitespace", "whitespace", "normal", "nowrap", "pre", "pre-line", "pre-wrap", "break-spaces"),
		prefixed("break", "break", "normal", "words", "all", "keep"),
		prefixed("wrap", "wrap", "break-word", "anywhere", "normal"),
		prefixed("hyphens", "hyphens", "none", "manual", "auto"),
		prefixed("content", "content", "none", isArbitraryVariable, isArbitraryValue),
	}
}

func backgroundBorderGroups() []ClassGroup {
	groups := []ClassGroup{
		prefixed("bg-attachment", "bg", "fixed", "local", "scroll"),
		prefixed("bg-clip", "bg-clip", "border", "padding", "content", "text"),
		prefixed("bg-origin", "bg-origin", "border", "padding", "content"),
		prefixed("bg-position", "bg", scaleBgPosition()),
		prefixed("bg-repeat", "bg", scaleBgRepeat()),
		prefixed("bg-size", "bg", scaleBgSize()),
		prefixed("bg-image", "bg",
			"none",
			sub("linear",
				sub("to", "t", "tr", "r", "br", "b", "bl", "l", "tl"),
				isInteger, isArbitraryVariable, isArbitraryValue),
			sub("radial", "", isArbitraryVariable, isArbitraryValue),
			sub("conic", isInteger, isArbitraryVariable, isArbitraryValue),
			isArbitraryVarImage, isArbitraryImage),
		prefixed("bg-color", "bg", scaleColor()),
		prefixed("gradient-from-pos", "from", scaleGradientStopPosition()),
		prefixed("gradient-via-pos", "via", scaleGradientStopPosition()),
		prefixed("gradient-to-pos", "to", scaleGradientStopPosition()),
		prefixed("gradient-from", "from", scaleColor()),
		prefixed("gradient-via", "via", scaleColor()),
		prefixed("gradient-to", "to", scaleColor()),
		prefixed("rounded", "rounded", scaleRadius()),
	}
	for _, side := range []string{"s", "e", "t", "r", "b", "l", "ss", "se", "ee", "es", "tl", "tr", "br", "bl"} {
		groups = append(groups, prefixed("rounded-"+side, "rounded-"+side, scaleRadius()))
	}
	groups = append(groups, prefixed("border-w", "border", scaleBorderWidth()))
	for _, side := range []string{"x", "y", "s", "e", "t", "r", "b", "l"} {
		groups = append(groups, prefixed("border-w-"+side, "border-"+side, scaleBorderWidth()))
	}
	groups = append(groups,
		prefixed("divide-x", "divide-x", scaleBorderWidth()),
		group("divide-x-reverse", "divide-x-reverse"),
		prefixed("divide-y", "divide-y", scaleBorderWidth()),
		group("divide-y-reverse", "divide-y-reverse"),
		prefixed("border-style", "border", scaleLineStyle(), "hidden", "none"),
		prefixed("divide-style", "divide", scaleLineStyle(), "hidden", "none"),
		prefixed("border-color", "border", scaleColor()),
	)
	for _, side := range []string{"x", "y", "s", "e", "t", "r", "b", "l"} {
		groups = append(groups, prefixed("border-color-"+side, "border-"+side, scaleColor()))
	}
	return append(groups,
		prefixed("divide-color", "divide", scaleColor()),
		prefixed("outline-style", "outline", scaleLineStyle(), "none", "hidden"),
		prefixed("outline-offset", "outline-offset", isNumber, isArbitraryVariable, isArbitraryValue),
		prefixed("outline-w", "outline", "", isNumber, isArbitraryVarLength, isArbitraryLength),
		prefixed("outline-color", "outline", scaleColor()),
	)
}

func effectFilterGroups() []ClassGroup {
	return []ClassGroup{
		prefixed("shadow", "shadow", "", "none", themeShadow, isArbitraryVarShadow, isArbitraryShadow),
		prefixed("shadow-color", "shadow", scaleColor()),
		prefixed("inset-shadow", "inset-shadow", "none", themeInsetShadow, isArbitraryVarShadow, isArbitraryShadow),
		prefixed("inset-shadow-color", "inset-shadow", scaleColor()),
		prefixed("ring-w", "ring", scaleBorderWidth()),
		group("ring-w-inset", "ring-inset"),
		prefixed("ring-color", "ring", scaleColor()),
		prefixed("ring-offset-w", "ring-offset", isNumber, isArbitraryLength),
		prefixed("ring-offset-color", "ring-offset", scaleColor()),
		prefixed("inset-ring-w", "inset-ring", scaleBorderWidth()),
		prefixed("inset-ring-color", "inset-ring", scaleColor()),
		prefixed("text-shadow", "text-shadow", "none", themeTextShadow, isArbitraryVarShadow, isArbitraryShadow),
		prefixed("text-shadow-color", "text-shadow", scaleColor()),
		prefixed("opacity", "opacity", isNumber, isArbitraryVariable, isArbitraryValue),
		prefixed("mix-blend", "mix-blend", scaleBlendMode(), "plus-darker", "plus-lighter"),
		prefixed("bg-blend", "bg-blend", scaleBlendMode()),
		prefixed("mask-clip", "mask-clip", "border", "padding", "content", "fill", "stroke", "view", "no-clip"),
		prefixed("mask-composite", "mask", "add", "subtract", "intersect", "exclude"),
		prefixed("mask-image-linear-pos", "mask-linear", isNumber),
		prefixed("mask-image-radial-pos", "mask-radial-at", scalePosition()),
		prefixed("mask-mode", "mask", "alpha", "luminance", "match"),
		prefixed("mask-position", "mask", scaleBgPosition()),
		prefixed("mask-repeat", "mask", scaleBgRepeat()),
		prefixed("mask-size", "mask", scaleBgSize()),
		prefixed("mask-type", "mask-type", "alpha", "luminance"),
		prefixed("mask-image", "mask", "none", isArbitraryVariable, isArbitraryValue),
		prefixed("filter", "filter", "", "none", isArbitraryVariable, isArbitraryValue),
		prefixed("blur", "blur", scaleBlur()),
		prefixed("brightness", "brightness", scaleNumberOrArbitrary()),
		prefixed("contrast", "contrast", scaleNumberOrArbitrary()),
		prefixed("drop-shadow", "drop-shadow", "", "none", themeDropShadow, isArbitraryVarShadow, isArbitraryShadow),
		prefixed("drop-shadow-color", "drop-shadow", scaleColor()),
		prefixed("grayscale", "grayscale", scaleFilterAmount()),
		prefixed("hue-rotate", "hue-rotate", scaleNumberOrArbitrary()),
		prefixed("invert", "invert", scaleFilterAmount()),
		prefixed("saturate", "saturate", scaleNumberOrArbitrary()),
		prefixed("sepia", "sepia", scaleFilterAmount()),
		prefixed("backdrop-filter", "backdrop-filter", "", "none", isArbitraryVariable, isArbitraryValue),
		prefixed("backdrop-blur", "backdrop-blur", scaleBlur()),
		prefixed("backdrop-brightness", "backdrop-brightness", scaleNumberOrArbitrary()),
		prefixed("backdrop-contrast", "backdrop-contrast", scaleNumberOrArbitrary()),
		prefixed("backdrop-grayscale", "backdrop-grayscale", scaleFilterAmount()),
		prefixed("backdrop-hue-rotate", "backdrop-hue-rotate", scaleNumberOrArbitrary()),
		prefixed("backdrop-invert", "backdrop-invert", scaleFilterAmount()),
		prefixed("backdrop-opacity", "backdrop-opacity", scaleNumberOrArbitrary()),
		prefixed("backdrop-saturate", "backdrop-saturate", scaleNumberOrArbitrary()),
		prefixed("backdrop-sepia", "backdrop-sepia", scaleFilterAmount()),
	}
}

func tableTransitionTransformGroups() []ClassGroup {
	return []ClassGroup{
		prefixed("border-collapse", "border", "collapse", "separate"),
		prefixed("border-spacing", "border-spacing", scaleUnambiguousSpacing()),
		prefixed("border-spacing-x", "border-spacing-x", scaleUnambiguousSpacing()),
		prefixed("border-spacing-y", "border-spacing-y", scaleUnambiguousSpacing()),
		prefixed("table-layout", "table", "auto", "fixed"),
		prefixed("caption", "caption", "top", "bottom"),
		prefixed("transition", "transition",
			"", "all", "colors", "opacity", "shadow", "transform", "none", isArbitraryVariable, isArbitraryValue),
		prefixed("transition-behavior", "transition", "normal", "discrete"),
		prefixed("duration", "duration", isNumber, "initial", isArbitraryVariable, isArbitraryValue),
		prefixed("ease", "ease", "linear", "initial", themeEase, isArbitraryVariable, isArbitraryValue),
		prefixed("delay", "delay", scaleNumberOrArbitrary()),
		prefixed("animate", "animate", "none", themeAnimate, isArbitraryVariable, isArbitraryValue),
		prefixed("backface", "backface", "hidden", "visible"),
		prefixed("perspective", "perspective", themePerspective, isArbitraryVariable, isArbitraryValue),
		prefixed("perspective-origin", "perspective-origin", scalePositionWithArbitrary()),
		prefixed("rotate", "rotate", scaleRotate()),
		prefixed("rotate-x", "rotate-x", scaleRotate()),
		prefixed("rotate-y", "rotate-y", scaleRotate()),
		prefixed("rotate-z", "rotate-z", scaleRotate()),
		prefixed("scale", "scale", scaleScale()),
		prefixed("scale-x", "scale-x", scaleScale()),
		prefixed("scale-y", "scale-y", scaleScale()),
		prefixed("scale-z", "scale-z", scaleScale()),
		group("scale-3d", "scale-3d"),
		prefixed("skew", "skew", scaleSkew()),
		prefixed("skew-x", "skew-x", scaleSkew()),
		prefixed("skew-y", "skew-y", scaleSkew()),
		prefixed("transform", "transform", isArbitraryVariable, isArbitraryValue, "", "none", "gpu", "cpu"),
		prefixed("transform-origin", "origin", scalePositionWithArbitrary()),
		prefixed("transform-style", "transform", "3d", "flat"),
		prefixed("translate", "translate", scaleTranslate()),
		prefixed("translate-x", "translate-x", scaleTranslate()),
		prefixed("translate-y", "translate-y", scaleTranslate()),
		prefixed("translate-z", "translate-z", scaleTranslate()),
		group("translate-none", "translate-none"),
	}
}

func interactivitySvgGroups() []ClassGroup {
	groups := []ClassGroup{
		prefixed("accent", "accent", scaleColor()),
		prefixed("appearance", "appearance", "none", "auto"),
		prefixed("caret-color", "caret", scaleColor()),
		prefixed("color-scheme", "scheme", "normal", "dark", "light", "light-dark", "only-dark", "only-light"),
		prefixed("cursor", "cursor",
			"auto", "default", "pointer", "wait", "text", "move", "help", "not-allowed", "none",
			"context-menu", "progress", "cell", "crosshair", "vertical-text", "alias", "copy", "no-drop",
			"grab", "grabbing", "all-scroll", "col-resize", "row-resize", "n-resize", "e-resize",
			"s-resize", "w-resize", "ne-resize", "nw-resize", "se-resize", "sw-resize", "ew-resize",
			"ns-resize", "nesw-resize", "nwse-resize", "zoom-in", "zoom-out",
			isArbitraryVariable, isArbitraryValue),
		prefixed("field-sizing", "field-sizing", "fixed", "content"),
		prefixed("pointer-events", "pointer-events", "auto", "none"),
		prefixed("resize", "resize", "none", "", "y", "x"),
		prefixed("scroll-behavior", "scroll", "auto", "smooth"),
	}
	for _, id := range []string{"scroll-m", "scroll-mx", "scroll-my", "scroll-ms", "scroll-me", "scroll-mt", "scroll-mr", "scroll-mb", "scroll-ml",
		"scroll-p", "scroll-px", "scroll-py", "scroll-ps", "scroll-pe", "scroll-pt", "scroll-pr", "scroll-pb", "scroll-pl"} {
		groups = append(groups, prefixed(id, id, scaleUnambiguousSpacing()))
	}
	return append(groups,
		prefixed("snap-align", "snap", "start", "end", "center", "align-none"),
		prefixed("snap-stop", "snap", "normal", "always"),
		prefixed("snap-type", "snap", "none", "x", "y", "both"),
		prefixed("snap-strictness", "snap", "mandatory", "proximity"),
		prefixed("touch", "touch", "auto", "none", "manipulation"),
		prefixed("touch-x", "touch-pan", "x", "left", "right"),
		prefixed("touch-y", "touch-pan", "y", "up", "down"),
		group("touch-pz", "touch-pinch-zoom"),
		prefixed("select", "select", "none", "text", "all", "auto"),
		prefixed("will-change", "will-change",
			"auto", "scroll", "contents", "transform", isArbitraryVariable, isArbitraryValue),
		prefixed("fill", "fill", "none", scaleColor()),
		prefixed("stroke-w", "stroke", isNumber, isArbitraryVarLength, isArbitraryLength, isArbitraryNumber),
		prefixed("stroke", "stroke", "none", scaleColor()),
		prefixed("forced-color-adjust", "forced-color-adjust", "auto", "none"),
	)
}

func defaultConflictingClassGroups() map[string][]string {
	return map[string][]string{
		"overflow":         {"overflow-x", "overflow-y"},
		"overscroll":       {"overscroll-x", "overscroll-y"},
		"inset":            {"inset-x", "inset-y", "start", "end", "top", "right", "bottom", "left"},
		"inset-x":          {"right", "left"},
		"inset-y":          {"top", "bottom"},
		"flex":             {"basis", "grow", "shrink"},
		"gap":              {"gap-x", "gap-y"},
		"p":                {"px", "py", "ps", "pe", "pt", "pr", "pb", "pl"},
		"px":               {"pr", "pl"},
		"py":               {"pt", "pb"},
		"m":                {"mx", "my", "ms", "me", "mt", "mr", "mb", "ml"},
		"mx":               {"mr", "ml"},
		"my":               {"mt", "mb"},
		"size":             {"w", "h"},
		"font-size":        {"leading"},
		"fvn-normal":       {"fvn-ordinal", "fvn-slashed-zero", "fvn-figure", "fvn-spacing", "fvn-fraction"},
		"fvn-ordinal":      {"fvn-normal"},
		"fvn-slashed-zero": {"fvn-normal"},
		"fvn-figure":       {"fvn-normal"},
		"fvn-spacing":      {"fvn-normal"},
		"fvn-fraction":     {"fvn-normal"},
		"line-clamp":       {"display", "overflow"},
		"rounded": {
			"rounded-s", "rounded-e", "rounded-t", "rounded-r", "rounded-b", "rounded-l",
			"rounded-ss", "rounded-se", "rounded-ee", "rounded-es", "rounded-tl", "rounded-tr", "rounded-br", "rounded-bl",
		},
		"rounded-s":      {"rounded-ss", "rounded-es"},
		"rounded-e":      {"rounded-se", "rounded-ee"},
		"rounded-t":      {"rounded-tl", "rounded-tr"},
		"rounded-r":      {"rounded-tr", "rounded-br"},
		"rounded-b":      {"rounded-br", "rounded-bl"},
		"rounded-l":      {"rounded-tl", "rounded-bl"},
		"border-spacing": {"border-spacing-x", "border-spacing-y"},
		"border-w": {
			"border-w-x", "border-w-y", "border-w-s", "border-w-e",
			"border-w-t", "border-w-r", "border-w-b", "border-w-l",
		},
		"border-w-x": {"border-w-r", "border-w-l"},
		"border-w-y": {"border-w-t", "border-w-b"},
		"border-color": {
			"border-color-x", "border-color-y", "border-color-s", "border-color-e",
			"border-color-t", "border-color-r", "border-color-b", "border-color-l",
		},
		"border-color-x": {"border-color-r", "border-color-l"},
		"border-color-y": {"border-color-t", "border-color-b"},
		"translate":      {"translate-x", "translate-y", "translate-none"},
		"translate-none": {"translate", "translate-x", "translate-y", "translate-z"},
		"scroll-m":       {"scroll-mx", "scroll-my", "scroll-ms", "scroll-me", "scroll-mt", "scroll-mr", "scroll-mb", "scroll-ml"},
		"scroll-mx":      {"scroll-mr", "scroll-ml"},
		"scroll-my":      {"scroll-mt", "scroll-mb"},
		"scroll-p":       {"scroll-px", "scroll-py", "scroll-ps", "scroll-pe", "scroll-pt", "scroll-pr", "scroll-pb", "scroll-pl"},
		"scroll-px":      {"scroll-pr", "scroll-pl"},
		"scroll-py":      {"scroll-pt", "scroll-pb"},
		"touch":          {"touch-x", "touch-y", "touch-pz"},
		"touch-x":        {"touch"},
		"touch-y":        {"touch"},
		"touch-pz":       {"touch"},
	}
}
