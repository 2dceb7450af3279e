package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"collalgo/arrays"
)

func TestArrayCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"filter in place", []string{"array", "filter", "--keep", "odd", "1", "2", "3", "4", "5"}, "count=3 [1 3 5 0 0]\n"},
		{"filter pure", []string{"array", "filter", "--pure", "--keep", "even", "6", "7", "8", "9", "10"}, "count=3 [6 8 10]\n"},
		{"insert", []string{"array", "insert", "--pos", "2", "--elem", "9", "1", "2", "3", "4", "5"}, "[1 2 9 3 4]\n"},
		{"remove", []string{"array", "remove", "--pos", "2", "1", "2", "3", "4", "5"}, "[1 2 4 5 0]\n"},
		{"reverse", []string{"array", "reverse", "1", "2", "3"}, "[3 2 1]\n"},
		{"find", []string{"array", "find", "--key", "3", "1", "2", "3"}, "index=2 found=true [1 2 3]\n"},
		{"find missing", []string{"array", "find", "--key", "7", "1", "2", "3"}, "index=-1 found=false [1 2 3]\n"},
		{"max", []string{"array", "max", "4", "9", "9", "1"}, "index=1 [4 9 9 1]\n"},
		{"min", []string{"array", "min", "4", "9", "1", "1"}, "index=2 [4 9 1 1]\n"},
		{"count", []string{"array", "count", "--keep", "positive", "1", "0", "2"}, "count=2 [1 0 2]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCommand(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestListCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"sorted insert front", []string{"list", "sorted-insert", "--value", "0", "1", "2", "3", "4", "5"}, "[0 1 2 3 4 5]\n"},
		{"sorted insert back", []string{"list", "sorted-insert", "--value", "6", "1", "2", "3", "4", "5"}, "[1 2 3 4 5 6]\n"},
		{"insertion sort", []string{"list", "isort", "4", "2", "3", "5", "1"}, "[1 2 3 4 5]\n"},
		{"sort", []string{"list", "sort", "4", "2", "3", "5", "1"}, "[1 2 3 4 5]\n"},
		{"merge sort", []string{"list", "msort", "4", "2", "3", "5", "1"}, "[1 2 3 4 5]\n"},
		{"reverse", []string{"list", "reverse", "1", "2", "3"}, "[3 2 1]\n"},
		{"filter in place", []string{"list", "filter", "1", "2", "3", "4", "5"}, "removed=2 [1 3 5]\n"},
		{"filter pure", []string{"list", "filter", "--pure", "--keep", "even", "1", "2", "3", "4"}, "count=2 [2 4]\n"},
		{"count", []string{"list", "count", "1", "2", "3"}, "count=2 [1 2 3]\n"},
		{"find", []string{"list", "find", "--key", "4", "1", "2", "3", "4", "5"}, "index=3 found=true [1 2 3 4 5]\n"},
		{"max", []string{"list", "max", "3", "8", "2"}, "index=1 [3 8 2]\n"},
		{"min", []string{"list", "min", "3", "8", "2"}, "index=2 [3 8 2]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCommand(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestCommandErrors(t *testing.T) {
	_, err := runCommand(t, "array", "insert", "--pos", "5", "1", "2", "3")
	assert.ErrorIs(t, err, arrays.ErrIndexOutOfBounds)

	_, err = runCommand(t, "array", "max")
	assert.ErrorIs(t, err, arrays.ErrEmpty)

	_, err = runCommand(t, "list", "min")
	assert.Error(t, err)

	_, err = runCommand(t, "array", "shuffle", "1")
	assert.ErrorContains(t, err, "unknown array operation")

	_, err = runCommand(t, "list", "filter", "--keep", "prime", "1")
	assert.ErrorContains(t, err, "unknown predicate")

	_, err = runCommand(t, "array", "reverse", "1", "x")
	assert.ErrorContains(t, err, "argument 2")

	_, err = runCommand(t, "--log-level", "loud", "-v", "array", "reverse", "1")
	assert.ErrorContains(t, err, "invalid --log-level")
}

func TestJSONOutput(t *testing.T) {
	out, err := runCommand(t, "--json", "array", "filter", "1", "2", "3", "4", "5")
	require.NoError(t, err)

	var got result
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "filter", got.Op)
	assert.Equal(t, []int{1, 3, 5, 0, 0}, got.Result)
	require.NotNil(t, got.Count)
	assert.Equal(t, 3, *got.Count)
	assert.Nil(t, got.Index)
}

func TestListFilterJSON(t *testing.T) {
	out, err := runCommand(t, "--json", "list", "filter", "--keep", "even", "1", "2", "3", "4", "5")
	require.NoError(t, err)

	var got result
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []int{2, 4}, got.Result)
	require.NotNil(t, got.Removed)
	assert.Equal(t, 3, *got.Removed, "reports what FilterInPlace took out")
	assert.Nil(t, got.Count)
}

func TestQuietAndVersion(t *testing.T) {
	out, err := runCommand(t, "-q", "array", "reverse", "1", "2")
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "collectl dev")
}
