package theme

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistryLoads(t *testing.T) {
	t.Parallel()

	r, err := Default()
	require.NoError(t, err)

	presets := r.Presets()
	require.Len(t, presets, 4)
	assert.Equal(t, "Clean", presets[0].Name)
	assert.Equal(t, "Clean", r.DefaultTheme().Name)
}

func TestPresetLookupIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	r, err := Default()
	require.NoError(t, err)

	bold, ok := r.Preset("Bold")
	require.True(t, ok)
	assert.Equal(t, "#dc2626", bold.PrimaryColor)

	dark, ok := r.Preset("dark")
	require.True(t, ok)
	assert.Equal(t, "#111827", dark.BackgroundColor)

	_, ok = r.Preset("neon")
	assert.False(t, ok)
}

func TestNextCyclesPresets(t *testing.T) {
	t.Parallel()

	r, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "Bold", r.Next("clean").Name)
	assert.Equal(t, "Clean", r.Next("dark").Name)
	assert.Equal(t, "Clean", r.Next("nonsense").Name)
}

func TestGenerateCSSIsDeterministic(t *testing.T) {
	t.Parallel()

	r, err := Default()
	require.NoError(t, err)

	clean := r.DefaultTheme()
	first := GenerateCSS(clean)
	second := GenerateCSS(clean)
	assert.Equal(t, first, second)
	assert.True(t, strings.HasPrefix(first, ":root {"))
	assert.Contains(t, first, "--primary-color: #2563eb;")
}

func TestGenerateCSSBranchesOnLightBackground(t *testing.T) {
	t.Parallel()

	r, err := Default()
	require.NoError(t, err)

	clean, _ := r.Preset("clean")
	dark, _ := r.Preset("dark")

	lightCSS := GenerateCSS(clean)
	darkCSS := GenerateCSS(dark)

	assert.Contains(t, lightCSS, "background: #f8fafc;")
	assert.Contains(t, darkCSS, "background: rgba(255,255,255,0.05);")
	assert.Contains(t, lightCSS, "background: #1e293b;")
	assert.Contains(t, darkCSS, "background: #000000;")
}

func TestGenerateCSSPrimaryColorDeltaIsLocal(t *testing.T) {
	t.Parallel()

	r, err := Default()
	require.NoError(t, err)

	base := r.DefaultTheme()
	changed := base
	changed.PrimaryColor = "#ff0000"

	baseLines := strings.Split(GenerateCSS(base), "\n")
	changedLines := strings.Split(GenerateCSS(changed), "\n")
	require.Len(t, changedLines, len(baseLines))

	var diff []string
	for i := range baseLines {
		if baseLines[i] != changedLines[i] {
			diff = append(diff, changedLines[i])
		}
	}

	// Only the custom-property declaration and the derived hover rule may move.
	require.NotEmpty(t, diff)
	for _, line := range diff {
		ok := strings.Contains(line, "--primary-color:") || strings.Contains(line, "background:")
		assert.True(t, ok, "unexpected diff line: %q", line)
	}
}

func TestHoverColorDerivation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		primary string
		want    string
	}{
		{"no trailing digits", "#2563eb", "#2563eb"},
		{"trailing digits decremented", "#ff9045", "#ff9025"},
		{"pads to three digits", "#aa0100", "#aa0080"},
		{"empty falls back", "", "#1d4ed8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, hoverColor(tt.primary))
		})
	}
}
