package config

import (
	"fmt"
	"unicode/utf8"

	"github.com/caarlos0/env/v10"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/mP1/walkingkooka-spreadsheet-sub024/convert"
	"github.com/mP1/walkingkooka-spreadsheet-sub024/plugin"
	"github.com/mP1/walkingkooka-spreadsheet-sub024/value"
)

// Config holds the conversion context and wiring settings.
type Config struct {
	// Locale is a BCP 47 tag used for collation.
	Locale        string `env:"LOCALE" envDefault:"en-US"`
	NumberKind    string `env:"NUMBER_KIND" envDefault:"decimal"`
	// MissingNumber is what a blank value converts to when a number is wanted.
	MissingNumber string `env:"MISSING_NUMBER" envDefault:"0"`

	DecimalSeparator string `env:"DECIMAL_SEPARATOR" envDefault:"."`
	GroupSeparator   string `env:"GROUP_SEPARATOR" envDefault:","`

	// DateOffset is 0 for the 1900 date system and 1462 for the 1904 one.
	DateOffset     int64  `env:"DATE_OFFSET" envDefault:"0"`
	TwoDigitYear   int    `env:"TWO_DIGIT_YEAR" envDefault:"50"`
	DateFormat     string `env:"DATE_FORMAT" envDefault:"2006-01-02"`
	TimeFormat     string `env:"TIME_FORMAT" envDefault:"15:04:05"`
	DateTimeFormat string `env:"DATE_TIME_FORMAT" envDefault:"2006-01-02 15:04:05"`

	// Converter is a selector resolved by the converter provider.
	Converter   string `env:"CONVERTER" envDefault:"general"`
	AliasesFile string `env:"ALIASES_FILE"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	return load(env.Options{})
}

// LoadFrom loads configuration from the given variables instead of the
// process environment.
func LoadFrom(environment map[string]string) (*Config, error) {
	return load(env.Options{Environment: environment})
}

func load(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if _, err := language.Parse(c.Locale); err != nil {
		return fmt.Errorf("LOCALE %q: %w", c.Locale, err)
	}

	if _, err := value.ParseNumberKind(c.NumberKind); err != nil {
		return fmt.Errorf("NUMBER_KIND: %w", err)
	}

	if _, err := decimal.NewFromString(c.MissingNumber); err != nil {
		return fmt.Errorf("MISSING_NUMBER %q is not a number", c.MissingNumber)
	}

	if utf8.RuneCountInString(c.DecimalSeparator) != 1 {
		return fmt.Errorf("DECIMAL_SEPARATOR must be a single character")
	}

	if utf8.RuneCountInString(c.GroupSeparator) != 1 {
		return fmt.Errorf("GROUP_SEPARATOR must be a single character")
	}

	if c.DecimalSeparator == c.GroupSeparator {
		return fmt.Errorf("DECIMAL_SEPARATOR and GROUP_SEPARATOR must differ")
	}

	if c.DateOffset < 0 {
		return fmt.Errorf("DATE_OFFSET must be non-negative")
	}

	if c.TwoDigitYear < 0 || c.TwoDigitYear > 99 {
		return fmt.Errorf("TWO_DIGIT_YEAR must be between 0 and 99")
	}

	if c.DateFormat == "" || c.TimeFormat == "" || c.DateTimeFormat == "" {
		return fmt.Errorf("DATE_FORMAT, TIME_FORMAT and DATE_TIME_FORMAT are required")
	}

	if _, err := plugin.ParseSelector(c.Converter); err != nil {
		return fmt.Errorf("CONVERTER: %w", err)
	}

	if !isValidLogLevel(c.LogLevel) {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error")
	}

	if c.LogFormat != "json" && c.LogFormat != "console" {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}

	return nil
}

func isValidLogLevel(level string) bool {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	return validLevels[level]
}

// Context builds the conversion context. The configuration must be valid.
func (c *Config) Context(logger *zap.Logger) (*convert.BasicContext, error) {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return nil, err
	}

	kind, err := value.ParseNumberKind(c.NumberKind)
	if err != nil {
		return nil, err
	}

	missing, err := decimal.NewFromString(c.MissingNumber)
	if err != nil {
		return nil, err
	}

	m := value.NewDecimal(missing).SetKind(kind)

	decimalSeparator, _ := utf8.DecodeRuneInString(c.DecimalSeparator)
	groupSeparator, _ := utf8.DecodeRuneInString(c.GroupSeparator)

	return &convert.BasicContext{
		Lang:     tag,
		Kind:     kind,
		Missing:  &m,
		Decimal:  decimalSeparator,
		Group:    groupSeparator,
		Offset:   c.DateOffset,
		Pivot:    c.TwoDigitYear,
		Date:     c.DateFormat,
		Time:     c.TimeFormat,
		DateTime: c.DateTimeFormat,
		Log:      logger,
	}, nil
}

// ConverterSelector returns the parsed CONVERTER selector.
func (c *Config) ConverterSelector() (plugin.Selector, error) {
	return plugin.ParseSelector(c.Converter)
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Locale=%s, NumberKind=%s, MissingNumber=%s, DecimalSeparator=%q, GroupSeparator=%q, "+
			"DateOffset=%d, TwoDigitYear=%d, DateFormat=%q, TimeFormat=%q, DateTimeFormat=%q, "+
			"Converter=%s, AliasesFile=%s, LogLevel=%s, LogFormat=%s}",
		c.Locale,
		c.NumberKind,
		c.MissingNumber,
		c.DecimalSeparator,
		c.GroupSeparator,
		c.DateOffset,
		c.TwoDigitYear,
		c.DateFormat,
		c.TimeFormat,
		c.DateTimeFormat,
		c.Converter,
		c.AliasesFile,
		c.LogLevel,
		c.LogFormat,
	)
}
