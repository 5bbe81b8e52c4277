package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/tokenguard/pkg/classname"
	"github.com/leapstack-labs/tokenguard/pkg/core"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		class       string
		governed    bool
		category    core.Category
		nonSemantic bool
	}{
		// sizing
		{"sizing in range", "h-10", true, core.CategorySizing, true},
		{"sizing floor", "w-4", true, core.CategorySizing, true},
		{"sizing ceiling", "min-h-16", true, core.CategorySizing, true},
		{"sizing below floor", "h-3.5", true, core.CategorySizing, false},
		{"sizing above ceiling", "max-w-17", true, core.CategorySizing, false},
		{"sizing zero", "h-0", true, core.CategorySizing, false},
		{"sizing full", "w-full", true, core.CategorySizing, false},
		{"sizing auto", "h-auto", true, core.CategorySizing, false},
		{"sizing screen", "h-screen", true, core.CategorySizing, false},
		{"sizing fraction", "w-1/2", true, core.CategorySizing, false},
		{"sizing arbitrary", "h-[300px]", true, core.CategorySizing, false},
		{"sizing keyword", "max-w-prose", true, core.CategorySizing, false},
		{"sizing semantic", "h-size-md", true, core.CategorySizing, false},
		{"sizing with variant", "hover:h-10", true, core.CategorySizing, true},
		{"negative height not sizing", "-h-8", false, core.CategoryNone, false},

		// spacing
		{"padding", "p-4", true, core.CategorySpacing, true},
		{"padding axis", "px-3", true, core.CategorySpacing, true},
		{"padding arbitrary", "p-[13px]", true, core.CategorySpacing, true},
		{"margin negative", "-mt-2", true, core.CategorySpacing, true},
		{"gap", "gap-x-6", true, core.CategorySpacing, true},
		{"space between", "space-y-2", true, core.CategorySpacing, true},
		{"space reverse", "space-x-reverse", true, core.CategorySpacing, false},
		{"spacing zero", "p-0", true, core.CategorySpacing, false},
		{"spacing px", "m-px", true, core.CategorySpacing, false},
		{"spacing auto", "mx-auto", true, core.CategorySpacing, false},
		{"spacing semantic", "p-space-md", true, core.CategorySpacing, false},
		{"negative padding not spacing", "-p-4", false, core.CategoryNone, false},

		// color
		{"palette bg", "bg-red-500", true, core.CategoryColor, true},
		{"palette with opacity", "text-blue-700/50", true, core.CategoryColor, true},
		{"border side color", "border-t-gray-200", true, core.CategoryColor, true},
		{"black", "text-black", true, core.CategoryColor, true},
		{"white", "bg-white", true, core.CategoryColor, true},
		{"arbitrary hex", "bg-[#ff0000]", true, core.CategoryColor, true},
		{"arbitrary rgb", "text-[rgb(0_0_0)]", true, core.CategoryColor, true},
		{"transparent", "bg-transparent", true, core.CategoryColor, false},
		{"current", "text-current", true, core.CategoryColor, false},
		{"semantic intent", "bg-danger", true, core.CategoryColor, false},
		{"semantic emphasis", "text-success-strong", true, core.CategoryColor, false},
		{"semantic neutral", "text-muted", true, core.CategoryColor, false},
		{"text size not color", "text-sm", false, core.CategoryNone, false},
		{"border width not color", "border-2", false, core.CategoryNone, false},
		{"bg keyword not color", "bg-cover", false, core.CategoryNone, false},
		{"text arbitrary size not color", "text-[14px]", false, core.CategoryNone, false},
		{"unknown shade", "bg-red-550", false, core.CategoryNone, false},

		// shadow
		{"shadow bare", "shadow", true, core.CategoryShadow, true},
		{"shadow none", "shadow-none", true, core.CategoryShadow, true},
		{"shadow xl", "shadow-xl", true, core.CategoryShadow, true},
		{"shadow arbitrary", "shadow-[0_0_2px_black]", true, core.CategoryShadow, true},
		{"shadow allowed", "shadow-md", true, core.CategoryShadow, false},
		{"shadow family", "shadow-interactive-hover", true, core.CategoryShadow, false},
		{"shadow inset", "shadow-inset-sm", true, core.CategoryShadow, false},
		{"shadow other", "shadow-red-500", true, core.CategoryShadow, false},

		// border radius
		{"rounded bare", "rounded", true, core.CategoryBorderRadius, true},
		{"rounded xl", "rounded-xl", true, core.CategoryBorderRadius, true},
		{"rounded side", "rounded-t-2xl", true, core.CategoryBorderRadius, true},
		{"rounded corner bare", "rounded-tl", true, core.CategoryBorderRadius, true},
		{"rounded arbitrary table", "rounded-[3px]", true, core.CategoryBorderRadius, true},
		{"rounded arbitrary other", "rounded-[5px]", true, core.CategoryBorderRadius, true},
		{"rounded allowed", "rounded-lg", true, core.CategoryBorderRadius, false},
		{"rounded side allowed", "rounded-b-none", true, core.CategoryBorderRadius, false},
		{"rounded family", "rounded-card", true, core.CategoryBorderRadius, false},
		{"rounded sm is not side s", "rounded-sm", true, core.CategoryBorderRadius, false},

		// not governed
		{"flex", "flex", false, core.CategoryNone, false},
		{"font", "font-bold", false, core.CategoryNone, false},
		{"hidden", "hidden", false, core.CategoryNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ClassifyString(tt.class)
			assert.Equal(t, tt.governed, res.IsGoverned, "governed")
			assert.Equal(t, tt.category, res.Category, "category")
			assert.Equal(t, tt.nonSemantic, res.IsNonSemantic, "non-semantic")
		})
	}
}

func TestClassify_SizingRangeBoundaries(t *testing.T) {
	for _, value := range []string{"3", "3.5"} {
		assert.False(t, IsNonSemantic(classname.Parse("h-"+value)), "below floor %s", value)
	}
	for _, value := range []string{"4", "8", "9", "10", "12", "16"} {
		assert.True(t, IsNonSemantic(classname.Parse("h-"+value)), "in range %s", value)
	}
	for _, value := range []string{"17", "20", "96"} {
		assert.False(t, IsNonSemantic(classname.Parse("w-"+value)), "above ceiling %s", value)
	}
}

func TestClassify_VariantDoesNotChangeResult(t *testing.T) {
	for _, base := range []string{"h-10", "bg-red-500", "shadow-xl", "rounded", "p-4", "flex"} {
		plain := ClassifyString(base)
		for _, variant := range []string{"hover:", "md:focus:", "dark:!", "[&:hover]:"} {
			assert.Equal(t, plain, ClassifyString(variant+base), "%s%s", variant, base)
		}
	}
}

func TestClassify_EmptyToken(t *testing.T) {
	assert.Equal(t, Result{}, Classify(classname.ClassToken{}))
	assert.Equal(t, Result{}, ClassifyString("hover:"))
}

func TestOrder(t *testing.T) {
	assert.Equal(t, []core.Category{
		core.CategoryColor,
		core.CategorySpacing,
		core.CategorySizing,
		core.CategoryShadow,
		core.CategoryBorderRadius,
	}, Order())
}

func TestFor(t *testing.T) {
	for _, c := range core.Categories {
		cl := For(c)
		require.NotNil(t, cl, c.String())
		assert.Equal(t, c, cl.Category())
	}
	assert.Nil(t, For(core.CategoryNone))
}

func TestSplitColor(t *testing.T) {
	parts, ok := SplitColor("border-t-red-500/40")
	require.True(t, ok)
	assert.Equal(t, "border-t", parts.Prefix)
	assert.Equal(t, "red-500", parts.Value)
	assert.Equal(t, "40", parts.Opacity)
	assert.Equal(t, ColorPalette, parts.Kind)
	assert.Equal(t, "red", parts.Hue)
	assert.Equal(t, 500, parts.Shade)

	parts, ok = SplitColor("bg-[rgb(0_0_0/50%)]")
	require.True(t, ok)
	assert.Equal(t, "[rgb(0_0_0/50%)]", parts.Value)
	assert.Empty(t, parts.Opacity)
	assert.Equal(t, ColorArbitrary, parts.Kind)
}

func TestSplitSpacing(t *testing.T) {
	parts, ok := SplitSpacing("-mx-4")
	require.True(t, ok)
	assert.Equal(t, SpacingParts{Negative: true, Prefix: "mx", Value: "4"}, parts)
	assert.Equal(t, "-mx", parts.Utility())

	parts, ok = SplitSpacing("space-x-2")
	require.True(t, ok)
	assert.Equal(t, "space-x", parts.Prefix)

	_, ok = SplitSpacing("-gap-2")
	assert.False(t, ok)
}

func TestSplitRadius(t *testing.T) {
	tests := []struct {
		base string
		want RadiusParts
	}{
		{"rounded", RadiusParts{}},
		{"rounded-xl", RadiusParts{Size: "xl"}},
		{"rounded-t", RadiusParts{Side: "t"}},
		{"rounded-tl-2xl", RadiusParts{Side: "tl", Size: "2xl"}},
		{"rounded-se-[3px]", RadiusParts{Side: "se", Size: "[3px]"}},
		{"rounded-sm", RadiusParts{Size: "sm"}},
	}
	for _, tt := range tests {
		t.Run(tt.base, func(t *testing.T) {
			got, ok := SplitRadius(tt.base)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := SplitRadius("roundedness")
	assert.False(t, ok)
}
