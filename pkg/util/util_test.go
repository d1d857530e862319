package util

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertList(t *testing.T) {
	out := ConvertList([]int{1, 2, 3}, strconv.Itoa)
	assert.Equal(t, []string{"1", "2", "3"}, out)

	empty := ConvertList([]int(nil), strconv.Itoa)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestPtrVal(t *testing.T) {
	assert.Equal(t, 5, Val(Ptr(5)))
	assert.Equal(t, "", Val[string](nil))
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{in: "short", n: 50, want: "short"},
		{in: "connection refused", n: 10, want: "connection"},
		{in: "đèn chùm pha lê", n: 3, want: "đèn"},
		{in: "anything", n: 0, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.in, tt.n))
		})
	}
}

func TestGetHistogramVecReusesRegistered(t *testing.T) {
	first, err := GetHistogramVec("util_test_duration_seconds", "op")
	require.NoError(t, err)
	second, err := GetHistogramVec("util_test_duration_seconds", "op")
	require.NoError(t, err)
	assert.Same(t, first, second)
}
