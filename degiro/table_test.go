package degiro

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_CellAccess(t *testing.T) {
	table := &Table{}
	table.AddRow([]string{"a", "b", "c"})
	table.AddRow([]string{"d", "e", "f"})

	cell, err := table.Cell(1, 2)
	require.NoError(t, err)
	assert.Equal(t, "f", cell)

	_, err = table.Cell(2, 0)
	assert.Error(t, err, "row out of range must not silently return empty")
	_, err = table.Cell(0, 3)
	assert.Error(t, err, "column out of range must not silently return empty")
	_, err = table.Cell(-1, 0)
	assert.Error(t, err)
}

func TestTable_DeleteRow(t *testing.T) {
	table := &Table{}
	table.AddRow([]string{"header", "header"})
	table.AddRow([]string{"a", "b"})

	require.NoError(t, table.DeleteRow(0))
	assert.Equal(t, 1, table.Rows())

	cell, err := table.Cell(0, 0)
	require.NoError(t, err)
	assert.Equal(t, "a", cell)

	assert.Error(t, table.DeleteRow(5))
}

func TestTable_Row(t *testing.T) {
	table := &Table{}
	table.AddRow([]string{"a", "b", "c"})

	row, err := table.Row(0)
	require.NoError(t, err)
	assert.Equal(t, "a,b,c", row)
}

func TestReadTable(t *testing.T) {
	in := "h1,h2,h3\n\na,b,c\r\n"
	table, err := ReadTable(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, 2, table.Rows(), "blank lines are skipped")
	cell, err := table.Cell(1, 2)
	require.NoError(t, err)
	assert.Equal(t, "c", cell, "carriage returns are stripped")
}
