package ui

import (
	"testing"

	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
)

func TestRangeSliderStyleForTheme(t *testing.T) {
	compact := NewCompactTheme()

	dark := RangeSliderStyleForTheme(compact, theme.VariantDark)
	assert.Equal(t, RangeThumbColor, dark.ThumbColor)
	assert.Equal(t, RangeSelectionColor, dark.SelectionColor)

	light := RangeSliderStyleForTheme(compact, theme.VariantLight)
	assert.NotEqual(t, RangeThumbColor, light.ThumbColor)

	// Themes without trim colors keep the defaults
	fallback := RangeSliderStyleForTheme(theme.DefaultTheme(), theme.VariantLight)
	assert.Equal(t, DefaultRangeSliderStyle(), fallback)
}
