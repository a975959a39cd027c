package amr

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	perrors "github.com/matzehuels/penman/pkg/errors"
)

const corpus = `# ::id wsj_0003.12
# ::snt The boy wants to go.
(w / want-01
   :ARG0 (b / boy)
   :ARG1 (g / go-01 :ARG0 b))

# ::id bolt_1.2
(d / dog :wiki "Dog")

(c / cat)

# ::id broken
(x / thing :ARG0

(y / yes)
`

func TestReader(t *testing.T) {
	r := NewReader(strings.NewReader(corpus), ReadOptions{Logger: quiet})

	g, overlay, err := r.Next()
	require.NoError(t, err)
	assert.Nil(t, overlay)
	assert.Equal(t, "20003012", g.ID)
	assert.Equal(t, "The boy wants to go.", g.Input)
	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 3, g.EdgeCount())

	g, _, err = r.Next()
	require.NoError(t, err)
	assert.Equal(t, "bolt_1.2", g.ID, "unknown schemes pass through")
	assert.Empty(t, g.FindNode(0).Properties, "wiki dropped without Full")
	assert.Empty(t, g.Input)

	g, _, err = r.Next()
	require.NoError(t, err)
	assert.Equal(t, "0", g.ID, "missing ids are numbered")

	_, _, err = r.Next()
	require.Error(t, err)
	assert.True(t, perrors.Is(err, perrors.ErrCodeParse))
	assert.Contains(t, err.Error(), "#broken")
	assert.Contains(t, err.Error(), "(x / thing :ARG0")

	g, _, err = r.Next()
	require.NoError(t, err, "reader recovers after a parse failure")
	assert.Equal(t, "1", g.ID)

	_, _, err = r.Next()
	assert.True(t, errors.Is(err, io.EOF))
}

func TestReaderTextOverrideAndLogging(t *testing.T) {
	var logs bytes.Buffer
	r := NewReader(strings.NewReader("# ::snt original\n(d / dog)\n"), ReadOptions{
		Text:   "override",
		Logger: log.New(&logs),
	})
	g, _, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, "override", g.Input)
	assert.Contains(t, logs.String(), "attached input")

	logs.Reset()
	r = NewReader(strings.NewReader("# ::snt original\n(d / dog)\n"), ReadOptions{Quiet: true, Logger: log.New(&logs)})
	g, _, err = r.Next()
	require.NoError(t, err)
	assert.Equal(t, "original", g.Input)
	assert.Empty(t, logs.String())
}

func TestReaderAlignment(t *testing.T) {
	text := "# ::id a\n(t / thing :name (n / name :op1 \"X\"))\n\n# ::id b\n(d / dog)\n"
	align := "# ::id a\nt\t0-2\nn :op1\t3-5\n\n# ::id wrong\nd\t0-0\n"

	r := NewReader(strings.NewReader(text), ReadOptions{
		Alignment: strings.NewReader(align),
		Logger:    quiet,
		Reify:     true,
	})

	g, overlay, err := r.Next()
	require.NoError(t, err)
	require.NotNil(t, overlay)
	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, "(0,1,2)", overlay.FindNode(0).Label)
	v, ok := overlay.FindNode(1).Property("op1")
	assert.True(t, ok)
	assert.Equal(t, "(3,4,5)", v)

	_, overlay, err = r.Next()
	require.NoError(t, err)
	assert.Nil(t, overlay)
}

func TestReadAll(t *testing.T) {
	pairs, err := ReadAll(strings.NewReader(corpus), ReadOptions{Logger: quiet}, true)
	require.NoError(t, err)
	assert.Len(t, pairs, 4)

	pairs, err = ReadAll(strings.NewReader(corpus), ReadOptions{Logger: quiet}, false)
	assert.True(t, perrors.Is(err, perrors.ErrCodeParse))
	assert.Len(t, pairs, 3)
}
