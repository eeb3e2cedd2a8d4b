package raceline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRows(t *testing.T) {
	t.Parallel()

	t.Run("skips comments, blanks and digit-free lines", func(t *testing.T) {
		t.Parallel()
		input := "# lap time: 108.69\n" +
			"#\n" +
			"\n" +
			"1.0, 2.0 ,3.0\n" +
			"nan,nan,nan\n" +
			"   \n" +
			"4.5,5.5,6.5\n"

		rows, err := ParseRows(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, Row{"1.0", "2.0", "3.0"}, rows[0])
		assert.Equal(t, Row{"4.5", "5.5", "6.5"}, rows[1])
	})

	t.Run("preserves file order", func(t *testing.T) {
		t.Parallel()
		rows, err := ParseRows(strings.NewReader("3,0\n1,0\n2,0\n"))
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, "3", rows[0][0])
		assert.Equal(t, "1", rows[1][0])
		assert.Equal(t, "2", rows[2][0])
	})

	t.Run("empty input yields no rows", func(t *testing.T) {
		t.Parallel()
		rows, err := ParseRows(strings.NewReader("# only a header\n"))
		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}

func TestRowField(t *testing.T) {
	t.Parallel()

	row := Row{"1.5", "-2.25", "abc"}

	t.Run("converts numeric fields", func(t *testing.T) {
		t.Parallel()
		v, err := row.Field(1)
		require.NoError(t, err)
		assert.Equal(t, -2.25, v)
	})

	t.Run("rejects non-numeric fields", func(t *testing.T) {
		t.Parallel()
		_, err := row.Field(2)
		assert.Error(t, err)
	})

	t.Run("rejects out-of-range columns", func(t *testing.T) {
		t.Parallel()
		_, err := row.Field(10)
		assert.Error(t, err)
	})
}
