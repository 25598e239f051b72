package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics(t *testing.T) {
	var d Diagnostics
	assert.True(t, d.IsValid())
	assert.NoError(t, d.Error())

	d.AddInfo("unsupported", "no conversion", "Date->Time", "")
	d.AddWarning("unknown-target", "alias target not found", "", "sort-by", "number")
	assert.True(t, d.IsValid())

	d.AddError("missing-cell", "no converter", "Boolean->Text", "")
	assert.True(t, d.HasErrors())

	err := d.Error()
	require.Error(t, err)
	assert.Equal(t, "[Boolean->Text]: [missing-cell] no converter", err.Error())
	assert.Equal(t, "sort-by: [unknown-target] alias target not found (did you mean number?)", d.Warnings[0].String())
}

func TestDiagnostics_Merge(t *testing.T) {
	var a, b Diagnostics
	a.AddError("x", "first", "", "")
	b.AddError("y", "second", "", "")
	b.AddInfo("z", "third", "", "")

	a.Merge(b)
	assert.Len(t, a.Errors, 2)
	assert.Len(t, a.Infos, 1)
	assert.Equal(t, "warning", DiagnosticWarning.String())
}
