package amr

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadAlignmentNil(t *testing.T) {
	src := ReadAlignment(nil)
	for range 3 {
		id, align, err := src.Next()
		require.NoError(t, err)
		assert.Empty(t, id)
		assert.Nil(t, align)
	}
}

func TestReadAlignment(t *testing.T) {
	src := ReadAlignment(strings.NewReader(strings.Join([]string{
		"# ::id a",
		"# ::snt ignored",
		"tok1\t0-2",
		"tok1 :name\t3-5",
		"tok1\t4-4",
		"x :wiki\t1-2",
		"malformed line",
		"y\t1-z",
		"z\t7",
		"",
		"",
		"# ::id b",
		"w\t0-0",
	}, "\n")))

	id, align, err := src.Next()
	require.NoError(t, err)
	assert.Equal(t, "a", id)
	assert.Equal(t, []string{"tok1"}, align.Tokens())
	require.Len(t, align["tok1"], 2)
	assert.Empty(t, align["tok1"][0].Path)
	assert.Equal(t, []int{0, 1, 2, 4}, align["tok1"][0].Sorted())
	assert.Equal(t, []string{"name"}, align["tok1"][1].Path)
	assert.Equal(t, []int{3, 4, 5}, align["tok1"][1].Sorted())

	id, align, err = src.Next()
	require.NoError(t, err)
	assert.Equal(t, "b", id)
	assert.Equal(t, []int{0}, align["w"][0].Sorted())

	_, _, err = src.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestAlignmentAddUnions(t *testing.T) {
	a := Alignment{}
	a.Add("n", []string{"op1"}, 5, 6)
	a.Add("n", []string{"op1"}, 1, 2)
	a.Add("n", nil, 0, 0)

	require.Len(t, a["n"], 2)
	assert.Equal(t, []int{1, 2, 5, 6}, a["n"][0].Sorted())
	assert.Equal(t, []int{0}, a["n"][1].Sorted())
}
