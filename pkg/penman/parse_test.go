package penman

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWantGo(t *testing.T) {
	rec, err := Parse(`(w / want-01
	      :ARG0 (b / boy)
	      :ARG1 (g / go-01
	            :ARG0 b))`)
	require.NoError(t, err)

	assert.Equal(t, []string{"w", "b", "g"}, rec.Nodes)
	assert.Equal(t, []string{"want-01", "boy", "go-01"}, rec.Values)
	assert.Equal(t, []Attribute{{Key: TopKey, Value: "want-01"}}, rec.Attributes[0])
	assert.Empty(t, rec.Attributes[1])
	assert.Equal(t, []Relation{{Label: "ARG0", Target: "b"}, {Label: "ARG1", Target: "g"}}, rec.Relations[0])
	assert.Equal(t, []Relation{{Label: "ARG0", Target: "b"}}, rec.Relations[2])
	assert.Equal(t, 3, rec.Len())
	assert.Equal(t, 3, rec.RelationCount())
}

func TestParseAttributes(t *testing.T) {
	rec, err := Parse(`(p / person :name (n / name :op1 "Pierre" :op2 "Vinken") :age 61 :polarity - :wiki "Pierre_Vinken")`)
	require.NoError(t, err)

	assert.Equal(t, []Attribute{
		{Key: TopKey, Value: "person"},
		{Key: "age", Value: "61"},
		{Key: "polarity", Value: "-"},
		{Key: "wiki", Value: "Pierre_Vinken"},
	}, rec.Attributes[0])
	assert.Equal(t, []Attribute{{Key: "op1", Value: "Pierre"}, {Key: "op2", Value: "Vinken"}}, rec.Attributes[1])
	assert.Equal(t, []Relation{{Label: "name", Target: "n"}}, rec.Relations[0])
}

func TestParseForwardReentrancy(t *testing.T) {
	// g is referenced before it is defined.
	rec, err := Parse(`(a / and :op1 g :op2 (g / go-01))`)
	require.NoError(t, err)
	assert.Equal(t, []Relation{{Label: "op1", Target: "g"}, {Label: "op2", Target: "g"}}, rec.Relations[0])
}

func TestParseQuotedVariableNameIsAttribute(t *testing.T) {
	rec, err := Parse(`(b / boy :name "b")`)
	require.NoError(t, err)
	assert.Empty(t, rec.Relations[0])
	assert.Contains(t, rec.Attributes[0], Attribute{Key: "name", Value: "b"})
}

func TestParseEscapedQuote(t *testing.T) {
	rec, err := Parse(`(s / say-01 :op1 "a \"b\" c")`)
	require.NoError(t, err)
	assert.Equal(t, `a "b" c`, rec.Attributes[0][1].Value)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"Unterminated", `(w / want-01 :ARG0 (b / boy)`},
		{"MissingSlash", `(w want-01)`},
		{"MissingConcept", `(w / )`},
		{"RoleWithoutValue", `(w / want-01 :ARG0)`},
		{"Trailing", `(w / want-01) (b / boy)`},
		{"UnterminatedString", `(n / name :op1 "Pierre)`},
		{"NotANode", `want-01`},
		{"DuplicateVariable", `(w / want-01 :ARG0 (w / boy))`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.text)
			require.Error(t, err)
			var se *SyntaxError
			assert.True(t, errors.As(err, &se), "want *SyntaxError, got %T", err)
		})
	}
}

func TestParseEmpty(t *testing.T) {
	_, err := Parse("   \n ")
	assert.ErrorIs(t, err, ErrEmpty)
}
