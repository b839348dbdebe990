package analyzer

import (
	"fmt"
	"strings"
	"testing"

	"forceskill/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze_MachineLearningScenario(t *testing.T) {
	text := "Machine Learning is a method of data analysis. For example, classification and regression are common tasks."

	content := Analyze(text, nil, nil)

	assert.Contains(t, content.Concepts, "Machine Learning")

	foundDefinition := false
	for _, d := range content.Definitions {
		if strings.HasPrefix(d, "Machine Learning: a method of data analysis") {
			foundDefinition = true
		}
	}
	assert.True(t, foundDefinition, "definitions should include the Machine Learning entry, got %v", content.Definitions)

	foundExample := false
	for _, e := range content.Examples {
		if strings.HasPrefix(e, "For example, classification and regression") {
			foundExample = true
		}
	}
	assert.True(t, foundExample, "examples should include the classification clause, got %v", content.Examples)
}

func TestAnalyze_Idempotent(t *testing.T) {
	text := "Photosynthesis is the process plants use. It is important to understand. " +
		"Studies show that about 30% of energy is lost. For example, leaves absorb light. " +
		"First, light is captured. Step 1: capture photons."

	first := Analyze(text, nil, nil)
	second := Analyze(text, nil, nil)
	assert.Equal(t, first, second)
}

func TestAnalyze_ListsAreDuplicateFree(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 3; i++ {
		b.WriteString("Machine Learning is a method of data analysis. ")
		b.WriteString("For example, classification and regression are common tasks. ")
		b.WriteString("Studies show that 75% of models need tuning carefully here. ")
	}
	content := Analyze(b.String(), nil, nil)

	for name, list := range map[string][]string{
		"headings":    content.Headings,
		"key_points":  content.KeyPoints,
		"concepts":    content.Concepts,
		"definitions": content.Definitions,
		"facts":       content.Facts,
		"examples":    content.Examples,
		"sections":    content.Sections,
		"vocabulary":  content.Vocabulary,
		"processes":   content.Processes,
		"statistics":  content.Statistics,
	} {
		seen := map[string]bool{}
		for _, item := range list {
			assert.False(t, seen[item], "%s contains duplicate %q", name, item)
			seen[item] = true
		}
	}
}

func TestExtractHeadings_CapAndOrder(t *testing.T) {
	var lines []string
	for i := 1; i <= 25; i++ {
		lines = append(lines, fmt.Sprintf("Chapter %d: Advanced Topics", i))
	}
	headings := ExtractHeadings(strings.Join(lines, "\n"))

	require.Len(t, headings, domain.MaxHeadings)
	assert.Equal(t, "Chapter 1: Advanced Topics", headings[0])
	assert.Equal(t, "Chapter 15: Advanced Topics", headings[14])
}

func TestIsHeading(t *testing.T) {
	tests := []struct {
		line     string
		expected bool
	}{
		{"Introduction", true},
		{"1. Getting Started", true},
		{"IV. Conclusion", true},
		{"chapter summary: the end", true}, // contains a colon
		{"ALL CAPS HEADING", true},
		{"The Rise Of Machines", true},
		{"ab", false}, // too short
		{strings.Repeat("x", 101), false},
		{"lowercase ordinary text without markers", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, IsHeading(tt.line), "line %q", tt.line)
	}
}

func TestExtractTitle(t *testing.T) {
	assert.Equal(t, "My Heading", ExtractTitle("ignored", []string{"My Heading"}))
	assert.Equal(t, "a short first line", ExtractTitle("a short first line\nmore text", nil))
	assert.Equal(t, domain.DefaultTitle, ExtractTitle("ab\n\n", nil))
}

func TestExtractKeyPoints_BoundsAndPadding(t *testing.T) {
	// Two signal sentences plus plain sentences in padding range.
	text := "It is important to water plants daily for growth. " +
		"You should always check the soil moisture level. " +
		"Plants grow well when light and temperature stay balanced over weeks. " +
		"Roots reach deeper into soil during long dry summer seasons there. " +
		"Leaves turn toward light sources during most mornings around dawn."

	points := ExtractKeyPoints(text)
	require.GreaterOrEqual(t, len(points), keyPointTarget)
	assert.LessOrEqual(t, len(points), domain.MaxKeyPoints)
	for _, p := range points {
		n := len([]rune(p))
		assert.GreaterOrEqual(t, n, keyPointMinLen)
		assert.LessOrEqual(t, n, keyPointMaxLen)
	}
}

func TestExtractKeyPoints_Cap(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 20; i++ {
		fmt.Fprintf(&b, "It is important to remember rule number %d every single day. ", i)
	}
	points := ExtractKeyPoints(b.String())
	assert.Len(t, points, domain.MaxKeyPoints)
}

func TestExtractConcepts_FrequencyMining(t *testing.T) {
	text := "Gradient Descent appears here. Gradient Descent appears again. " +
		"Backpropagation appears once only."
	concepts := ExtractConcepts(text)
	assert.Contains(t, concepts, "Gradient Descent")
	assert.NotContains(t, concepts, "Backpropagation")
}

func TestExtractConcepts_StopwordsFiltered(t *testing.T) {
	text := "The Answer is something. This Thing is another."
	concepts := ExtractConcepts(text)
	for _, c := range concepts {
		first := strings.Fields(c)[0]
		assert.False(t, conceptStopwords[first], "stopword-led concept %q", c)
	}
}

func TestExtractDefinitions_BodyBounds(t *testing.T) {
	short := "Gravity is real." // body too short
	long := "Entropy is " + strings.Repeat("very ", 50) + "complicated."
	ok := "Osmosis refers to the movement of water across a membrane."

	assert.Empty(t, ExtractDefinitions(short))
	assert.Empty(t, ExtractDefinitions(long))

	defs := ExtractDefinitions(ok)
	require.Len(t, defs, 1)
	assert.Equal(t, "Osmosis: the movement of water across a membrane", defs[0])
}

func TestExtractFacts(t *testing.T) {
	text := "The company grew by 45% last year according to reports. " +
		"In 1969 humans first landed on the lunar surface safely. " +
		"Research shows daily reading improves memory retention rates. " +
		"This sentence has no numeric or research content inside at all."
	facts := ExtractFacts(text)
	assert.Len(t, facts, 3)
}

func TestExtractExamples_CapKeepsFirstSix(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 10; i++ {
		fmt.Fprintf(&b, "For example, item number %d shows the pattern clearly. ", i)
	}
	examples := ExtractExamples(b.String())
	require.Len(t, examples, domain.MaxExamples)
	assert.Contains(t, examples[0], "item number 0")
	assert.Contains(t, examples[5], "item number 5")
}

func TestExtractVocabulary(t *testing.T) {
	text := "Neural Networks (layered computational models) power the system. " +
		"Classification and measurement require attention."
	vocab := ExtractVocabulary(text)
	assert.Contains(t, vocab, "Neural Networks")
	assert.Contains(t, vocab, "Classification")
	assert.Contains(t, vocab, "measurement")
	for _, v := range vocab {
		n := len([]rune(v))
		assert.GreaterOrEqual(t, n, vocabularyMinLen)
		assert.LessOrEqual(t, n, vocabularyMaxLen)
	}
}

func TestExtractProcesses(t *testing.T) {
	text := "Step 1: gather all the required materials from storage. " +
		"Then, mix the components slowly over low heat for ten minutes. " +
		"Finally, let the mixture rest until it has fully cooled down."
	processes := ExtractProcesses(text)
	assert.Len(t, processes, 3)
}

func TestExtractStatistics(t *testing.T) {
	text := "Around 60% of participants improved their results over time. " +
		"The average score rose steadily during testing. " +
		"In the trial, 9 out of 10 subjects finished the course."
	stats := ExtractStatistics(text)
	assert.Len(t, stats, 3)
	for _, s := range stats {
		n := len([]rune(s))
		assert.GreaterOrEqual(t, n, statisticMinLen)
		assert.LessOrEqual(t, n, statisticMaxLen)
	}
}
