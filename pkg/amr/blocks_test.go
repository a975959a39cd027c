package amr

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoGraphs = `# ::id g1
# ::snt The boy wants to go.
(w / want-01
   :ARG0 (b / boy)
   :ARG1 (g / go-01 :ARG0 b))

# ::id g2
(d / dog)



(c / cat)
`

func readBlocks(t *testing.T, r *BlockReader) []*Block {
	t.Helper()
	var out []*Block
	for {
		b, err := r.Next()
		if err == io.EOF {
			return out
		}
		require.NoError(t, err)
		out = append(out, b)
	}
}

func TestBlockReader(t *testing.T) {
	blocks := readBlocks(t, NewBlockReader(strings.NewReader(twoGraphs), nil, log.New(io.Discard)))
	require.Len(t, blocks, 3)

	assert.Equal(t, "g1", blocks[0].ID)
	assert.Equal(t, "The boy wants to go.", blocks[0].Sentence)
	assert.Equal(t, "(w / want-01 :ARG0 (b / boy) :ARG1 (g / go-01 :ARG0 b))", blocks[0].Body)
	assert.Nil(t, blocks[0].Alignment)

	assert.Equal(t, "g2", blocks[1].ID)
	assert.Empty(t, blocks[1].Sentence)
	assert.Equal(t, "(d / dog)", blocks[1].Body)

	assert.Empty(t, blocks[2].ID)
	assert.Equal(t, "(c / cat)", blocks[2].Body)
}

func TestBlockReaderAlignment(t *testing.T) {
	align := ReadAlignment(strings.NewReader("# ::id g1\nw\t4-8\n\n# ::id other\nd\t0-2\n"))
	var logs bytes.Buffer
	blocks := readBlocks(t, NewBlockReader(strings.NewReader(twoGraphs), align, log.New(&logs)))
	require.Len(t, blocks, 3)

	require.NotNil(t, blocks[0].Alignment)
	assert.Equal(t, []int{4, 5, 6, 7, 8}, blocks[0].Alignment["w"][0].Sorted())

	// Id mismatch and exhausted alignment stream both fall back to none.
	assert.Nil(t, blocks[1].Alignment)
	assert.Nil(t, blocks[2].Alignment)
	assert.Contains(t, logs.String(), "mismatch")
	assert.Contains(t, logs.String(), "missing alignment")
}

func TestBlockReaderEmpty(t *testing.T) {
	r := NewBlockReader(strings.NewReader("\n# ::id only-comments\n\n"), nil, nil)
	_, err := r.Next()
	assert.ErrorIs(t, err, io.EOF)
}
