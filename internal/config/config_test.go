package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/mP1/walkingkooka-spreadsheet-sub024/value"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, "en-US", cfg.Locale)
	assert.Equal(t, "decimal", cfg.NumberKind)
	assert.Equal(t, ".", cfg.DecimalSeparator)
	assert.Equal(t, ",", cfg.GroupSeparator)
	assert.Equal(t, int64(0), cfg.DateOffset)
	assert.Equal(t, 50, cfg.TwoDigitYear)
	assert.Equal(t, "general", cfg.Converter)
	assert.Empty(t, cfg.AliasesFile)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"LOCALE":            "de-DE",
		"NUMBER_KIND":       "double",
		"MISSING_NUMBER":    "-1",
		"DECIMAL_SEPARATOR": ",",
		"GROUP_SEPARATOR":   ".",
		"DATE_OFFSET":       "1462",
		"TWO_DIGIT_YEAR":    "30",
		"DATE_FORMAT":       "02.01.2006",
		"CONVERTER":         "general-throwing",
		"ALIASES_FILE":      "aliases.yaml",
		"LOG_LEVEL":         "debug",
		"LOG_FORMAT":        "console",
	})
	require.NoError(t, err)

	ctx, err := cfg.Context(zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, language.MustParse("de-DE"), ctx.Locale())
	assert.Equal(t, value.NumberKindDouble, ctx.NumberKind())
	assert.Equal(t, "-1", ctx.MissingNumber().String())
	assert.Equal(t, value.NumberKindDouble, ctx.MissingNumber().Kind())
	assert.Equal(t, ',', ctx.DecimalSeparator())
	assert.Equal(t, '.', ctx.GroupSeparator())
	assert.Equal(t, int64(1462), ctx.DateOffset())
	assert.Equal(t, 30, ctx.TwoDigitYear())
	assert.Equal(t, "02.01.2006", ctx.DateLayout())
	assert.Equal(t, "15:04:05", ctx.TimeLayout())
	assert.NotNil(t, ctx.Logger())

	selector, err := cfg.ConverterSelector()
	require.NoError(t, err)
	assert.Equal(t, "general-throwing", selector.Name.String())
}

func TestLoadFrom_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		contains string
	}{
		{"locale", map[string]string{"LOCALE": "not a locale!"}, "LOCALE"},
		{"number kind", map[string]string{"NUMBER_KIND": "float"}, "NUMBER_KIND"},
		{"missing number", map[string]string{"MISSING_NUMBER": "zero"}, "MISSING_NUMBER"},
		{"decimal separator", map[string]string{"DECIMAL_SEPARATOR": ".."}, "DECIMAL_SEPARATOR"},
		{"group separator", map[string]string{"GROUP_SEPARATOR": "ab"}, "GROUP_SEPARATOR"},
		{"same separators", map[string]string{"GROUP_SEPARATOR": "."}, "must differ"},
		{"date offset", map[string]string{"DATE_OFFSET": "-1"}, "DATE_OFFSET"},
		{"date offset type", map[string]string{"DATE_OFFSET": "soon"}, "failed to parse config"},
		{"two digit year", map[string]string{"TWO_DIGIT_YEAR": "100"}, "TWO_DIGIT_YEAR"},
		{"converter", map[string]string{"CONVERTER": "1general"}, "CONVERTER"},
		{"log level", map[string]string{"LOG_LEVEL": "trace"}, "LOG_LEVEL"},
		{"log format", map[string]string{"LOG_FORMAT": "xml"}, "LOG_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFrom(tt.env)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestConfig_String(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{"ALIASES_FILE": "a.yaml"})
	require.NoError(t, err)

	s := cfg.String()
	assert.Contains(t, s, "Locale=en-US")
	assert.Contains(t, s, `DecimalSeparator="."`)
	assert.Contains(t, s, "AliasesFile=a.yaml")
}
