package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		level  string
		format string
		want   zapcore.Level
	}{
		{"debug", "json", zapcore.DebugLevel},
		{"info", "console", zapcore.InfoLevel},
		{"warn", "json", zapcore.WarnLevel},
		{"error", "console", zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level+"/"+tt.format, func(t *testing.T) {
			logger, err := New(tt.level, tt.format)
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tt.want))

			if tt.want > zapcore.DebugLevel {
				assert.False(t, logger.Core().Enabled(tt.want-1))
			}
		})
	}
}

func TestNew_Invalid(t *testing.T) {
	_, err := New("loud", "json")
	assert.ErrorContains(t, err, `log level "loud"`)

	_, err = New("info", "xml")
	assert.EqualError(t, err, `unknown log format "xml"`)
}
