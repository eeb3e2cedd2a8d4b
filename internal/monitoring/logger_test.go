package monitoring

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetLogger(t *testing.T) {
	original := Logf
	defer func() { Logf = original }()

	var lines []string
	SetLogger(func(format string, v ...interface{}) {
		lines = append(lines, fmt.Sprintf(format, v...))
	})

	Logf("converted %d rows", 3)
	require.Len(t, lines, 1)
	assert.Equal(t, "converted 3 rows", lines[0])

	// A nil logger installs a no-op instead of panicking.
	SetLogger(nil)
	Logf("dropped")
	assert.Len(t, lines, 1)
}

func TestWarnf(t *testing.T) {
	original := Logf
	defer func() { Logf = original }()

	var lines []string
	SetLogger(func(format string, v ...interface{}) {
		lines = append(lines, fmt.Sprintf(format, v...))
	})

	Warnf("skipping row %d", 7)
	require.Len(t, lines, 1)
	assert.Equal(t, "warning: skipping row 7", lines[0])
}

func TestLogfDefault(t *testing.T) {
	assert.NotNil(t, Logf)
}
