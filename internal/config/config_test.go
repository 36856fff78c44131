package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/vitals/pkg/spark"
	"github.com/dkoosis/vitals/pkg/stream"
)

// clearEnv blanks every variable Resolve reads so the host environment
// cannot leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"VITALS_STYLE", "VITALS_FORMAT", "VITALS_THEME", "VITALS_WINDOW",
		"VITALS_NO_COLOR", "NO_COLOR", "VITALS_DEBUG",
	} {
		t.Setenv(k, "")
	}
}

func TestResolve_Defaults(t *testing.T) {
	clearEnv(t)
	r, err := Resolve(CliFlags{})
	require.NoError(t, err)

	assert.Equal(t, spark.StyleBar, r.Style)
	assert.Equal(t, "auto", r.Format)
	assert.Equal(t, "default", r.Theme)
	assert.Equal(t, stream.DefaultWindow, r.Window)
	assert.False(t, r.NoColor)
	assert.False(t, r.Debug)
	assert.Equal(t, SourceDefault, r.StyleSource)
	assert.Equal(t, SourceDefault, r.NoColorSource)
	assert.Empty(t, r.Warnings)
}

func TestResolve_PriorityOrder(t *testing.T) {
	tests := []struct {
		name       string
		flags      CliFlags
		env        map[string]string
		wantStyle  spark.Style
		wantSource string
	}{
		{
			name:       "CLI style has priority over env",
			flags:      CliFlags{Style: "fire", StyleSet: true},
			env:        map[string]string{"VITALS_STYLE": "line"},
			wantStyle:  spark.StyleFire,
			wantSource: SourceCLI,
		},
		{
			name:       "Env has priority over default",
			env:        map[string]string{"VITALS_STYLE": "line"},
			wantStyle:  spark.StyleLine,
			wantSource: SourceEnv,
		},
		{
			name:       "Unset CLI flag does not override env",
			flags:      CliFlags{Style: "fire"},
			env:        map[string]string{"VITALS_STYLE": "shaded"},
			wantStyle:  spark.StyleShaded,
			wantSource: SourceEnv,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			r, err := Resolve(tt.flags)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStyle, r.Style)
			assert.Equal(t, tt.wantSource, r.StyleSource)
		})
	}
}

func TestResolve_NoColor(t *testing.T) {
	t.Run("NO_COLOR any value", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("NO_COLOR", "yes please")
		r, err := Resolve(CliFlags{})
		require.NoError(t, err)
		assert.True(t, r.NoColor)
		assert.Equal(t, SourceEnv, r.NoColorSource)
	})
	t.Run("VITALS_NO_COLOR=false beats NO_COLOR", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("NO_COLOR", "1")
		t.Setenv("VITALS_NO_COLOR", "false")
		r, err := Resolve(CliFlags{})
		require.NoError(t, err)
		assert.False(t, r.NoColor)
	})
	t.Run("CLI wins", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("VITALS_NO_COLOR", "true")
		r, err := Resolve(CliFlags{NoColor: false, NoColorSet: true})
		require.NoError(t, err)
		assert.False(t, r.NoColor)
		assert.Equal(t, SourceCLI, r.NoColorSource)
	})
	t.Run("malformed bool warns", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("VITALS_NO_COLOR", "maybe")
		r, err := Resolve(CliFlags{})
		require.NoError(t, err)
		assert.False(t, r.NoColor)
		assert.Len(t, r.Warnings, 1)
	})
}

func TestResolve_Window(t *testing.T) {
	t.Run("env", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("VITALS_WINDOW", "12")
		r, err := Resolve(CliFlags{})
		require.NoError(t, err)
		assert.Equal(t, 12, r.Window)
		assert.Equal(t, SourceEnv, r.WindowSource)
	})
	t.Run("non-integer env warns and keeps default", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("VITALS_WINDOW", "lots")
		r, err := Resolve(CliFlags{})
		require.NoError(t, err)
		assert.Equal(t, stream.DefaultWindow, r.Window)
		assert.NotEmpty(t, r.Warnings)
	})
	t.Run("non-positive CLI value uses default", func(t *testing.T) {
		clearEnv(t)
		r, err := Resolve(CliFlags{Window: -3, WindowSet: true})
		require.NoError(t, err)
		assert.Equal(t, stream.DefaultWindow, r.Window)
	})
}

func TestResolve_Validation(t *testing.T) {
	clearEnv(t)
	_, err := Resolve(CliFlags{Format: "html", FormatSet: true})
	require.Error(t, err)

	r, err := Resolve(CliFlags{Format: "JSON", FormatSet: true})
	require.NoError(t, err)
	assert.Equal(t, "json", r.Format)
}

func TestResolve_Debug(t *testing.T) {
	clearEnv(t)
	t.Setenv("VITALS_DEBUG", "1")
	r, err := Resolve(CliFlags{})
	require.NoError(t, err)
	assert.True(t, r.Debug)

	r, err = Resolve(CliFlags{Debug: false, DebugSet: true})
	require.NoError(t, err)
	assert.False(t, r.Debug)
}
