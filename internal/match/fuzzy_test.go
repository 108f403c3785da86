package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formsense/formsense/internal/model"
)

func TestFuzzyMatchQuestion(t *testing.T) {
	m, err := NewMatcher()
	require.NoError(t, err)

	t.Run("full keyword overlap", func(t *testing.T) {
		purpose, confidence, ok := m.FuzzyMatchQuestion("interested joining this position")
		assert.True(t, ok)
		assert.Equal(t, model.PurposeWhyInterested, purpose)
		// Every token overlaps a keyword; the reported confidence is the
		// raw similarity discounted by the fuzzy scale.
		assert.InDelta(t, 0.7, confidence, 0.0001)
	})

	t.Run("partial overlap above floor", func(t *testing.T) {
		purpose, confidence, ok := m.FuzzyMatchQuestion("compensation range preferences overall")
		assert.True(t, ok)
		assert.Equal(t, model.PurposeDesiredSalary, purpose)
		assert.Greater(t, confidence, 0.0)
		assert.Less(t, confidence, 0.7)
	})

	t.Run("no overlap", func(t *testing.T) {
		_, _, ok := m.FuzzyMatchQuestion("purple dishwasher blender")
		assert.False(t, ok)
	})

	t.Run("only short tokens", func(t *testing.T) {
		_, _, ok := m.FuzzyMatchQuestion("is it ok")
		assert.False(t, ok)
	})

	t.Run("empty text", func(t *testing.T) {
		_, _, ok := m.FuzzyMatchQuestion("")
		assert.False(t, ok)
	})
}

func TestQualifyingTokens(t *testing.T) {
	tokens := qualifyingTokens("Why do you want THIS role?")
	assert.Equal(t, []string{"why", "you", "want", "this", "role"}, tokens)
}

func TestKeywordsFromExprs(t *testing.T) {
	keywords := keywordsFromExprs([]string{`why.*(interested|apply)`, `start.*date`})
	assert.Contains(t, keywords, "interested")
	assert.Contains(t, keywords, "apply")
	assert.Contains(t, keywords, "start")
	assert.Contains(t, keywords, "date")
	assert.NotContains(t, keywords, "why", "fragments of three characters or fewer are dropped")
}
