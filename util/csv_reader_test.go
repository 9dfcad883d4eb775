package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRows(t *testing.T) {
	input := "SYMBOL, CLIENT ,QTY\nINFY, SBI MF ,100\nTCS,\"FII, DESK\",200\n"

	header, rows, err := ReadRows(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"SYMBOL", "CLIENT", "QTY"}, header)
	require.Len(t, rows, 2)
	assert.Equal(t, "SBI MF", rows[0]["CLIENT"])
	assert.Equal(t, "FII, DESK", rows[1]["CLIENT"])
}

func TestReadRowsSkipsShortRecords(t *testing.T) {
	input := "SYMBOL,CLIENT\nINFY\nTCS,FII DESK\n"

	_, rows, err := ReadRows(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "TCS", rows[0]["SYMBOL"])
}

func TestReadRowsEmptyInput(t *testing.T) {
	_, _, err := ReadRows(strings.NewReader(""))
	assert.Error(t, err)
}
