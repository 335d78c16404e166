package scoring

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `
John Doe
Software Engineer

Experience:
- 5 years of JavaScript development
- Expert in React and Node.js
- Database design with SQL
- API development and integration
- Git version control

Education:
- Bachelor's in Computer Science

Skills:
JavaScript, Python, React, Node.js, SQL, Git, API development, Database design
`

func TestScoreFullKeywordCoverage(t *testing.T) {
	engine := NewEngine()

	score, err := engine.Score(sampleResume, "software engineer")
	require.NoError(t, err)
	assert.Equal(t, 100, score)
}

func TestScorePartialKeywordCoverage(t *testing.T) {
	engine := NewEngine()

	// Only "python" and "sql" from the data scientist set appear in the
	// sample resume: round(2/7*100) = 29.
	score, err := engine.Score(sampleResume, "data scientist")
	require.NoError(t, err)
	assert.Equal(t, 29, score)
}

func TestScoreIsCaseInsensitive(t *testing.T) {
	engine := NewEngine()

	lower, err := engine.Score("python and sql", "Data Scientist")
	require.NoError(t, err)
	upper, err := engine.Score("PYTHON and SQL", "DATA SCIENTIST")
	require.NoError(t, err)
	assert.Equal(t, lower, upper)
	assert.Equal(t, 29, lower)
}

func TestScoreUnknownTitleReturnsZero(t *testing.T) {
	engine := NewEngine()

	score, err := engine.Score(sampleResume, "underwater basket weaver")
	require.NoError(t, err)
	assert.Equal(t, 0, score)
}

func TestScoreEmptyTextFails(t *testing.T) {
	engine := NewEngine()

	_, err := engine.Score("", "software engineer")
	assert.Error(t, err)

	_, err = engine.Score("   \n\t", "software engineer")
	assert.Error(t, err)
}

func TestScoreStaysInRangeForAllKnownTitles(t *testing.T) {
	engine := NewEngine()

	for title := range defaultKeywordSets {
		score, err := engine.Score(sampleResume, title)
		require.NoError(t, err, title)
		assert.GreaterOrEqual(t, score, 0, title)
		assert.LessOrEqual(t, score, 100, title)
	}
}

func TestScoreMonotonicInKeywordCoverage(t *testing.T) {
	engine := NewEngine()

	base := "python developer with sql experience"
	before, err := engine.Score(base, "data scientist")
	require.NoError(t, err)

	// Adding an occurrence of a previously absent keyword never lowers
	// the score.
	after, err := engine.Score(base+" and pandas", "data scientist")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, after, before)
}

func TestLoadKeywordSets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keywords.json")
	content := `{"Go Developer": ["Go", "SQL", "Docker"]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	sets, err := LoadKeywordSets(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "sql", "docker"}, sets["go developer"])

	engine := NewEngineWithSets(sets)
	score, err := engine.Score("go and docker but no database skills", "GO DEVELOPER")
	require.NoError(t, err)
	assert.Equal(t, 67, score)
}

func TestLoadKeywordSetsRejectsNonObject(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keywords.json")
	require.NoError(t, os.WriteFile(path, []byte(`["not", "an", "object"]`), 0o600))

	_, err := LoadKeywordSets(path)
	assert.Error(t, err)
}
