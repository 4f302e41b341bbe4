package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validRecommendationJSON = `{
	"focusAreas": ["Algebra basics"],
	"studyTips": ["Practice daily"],
	"conceptsToReview": ["Linear equations"],
	"strengths": ["Geometry"],
	"overallAnalysis": "Solid foundation with gaps in algebra.",
	"topicAnalysis": {"Algebra": {"correct": 1, "total": 3, "percentage": 33}},
	"prioritizedTopics": {"critical": ["Algebra"], "needsWork": [], "good": [], "excellent": ["Geometry"]}
}`

func TestGenerate_UsesModelResponse(t *testing.T) {
	gen := NewRecommendationGenerator(&stubCompleter{reply: validRecommendationJSON})

	rec := gen.Generate(context.Background(), nil, nil, 60)

	assert.Equal(t, []string{"Algebra basics"}, rec.FocusAreas)
	assert.Equal(t, "Solid foundation with gaps in algebra.", rec.OverallAnalysis)
	assert.Equal(t, 33, rec.TopicAnalysis["Algebra"].Percentage)
	assert.Equal(t, []string{"Algebra"}, rec.PrioritizedTopics.Critical)
}

func TestGenerate_FallsBackOnModelError(t *testing.T) {
	gen := NewRecommendationGenerator(&stubCompleter{err: errors.New("timeout")})

	rec := gen.Generate(context.Background(), nil, nil, 80)

	assert.Equal(t, FallbackRecommendation(80), rec)
}

func TestGenerate_FallsBackOnBadResponse(t *testing.T) {
	cases := []struct {
		name  string
		reply string
	}{
		{"not json", "Here are my thoughts on the student..."},
		{"missing field", `{"focusAreas": ["x"], "studyTips": ["y"]}`},
		{"empty focusAreas", `{
			"focusAreas": [], "studyTips": ["y"], "conceptsToReview": [],
			"strengths": [], "overallAnalysis": "", "topicAnalysis": {},
			"prioritizedTopics": {"critical": [], "needsWork": [], "good": [], "excellent": []}
		}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gen := NewRecommendationGenerator(&stubCompleter{reply: tc.reply})
			rec := gen.Generate(context.Background(), nil, nil, 50)
			assert.Equal(t, FallbackRecommendation(50), rec)
		})
	}
}

func TestParseRecommendation_CodeFence(t *testing.T) {
	rec, err := parseRecommendation("```json\n" + validRecommendationJSON + "\n```")
	require.NoError(t, err)
	assert.Equal(t, []string{"Practice daily"}, rec.StudyTips)
}

func TestParseRecommendation_NilTopicAnalysis(t *testing.T) {
	rec, err := parseRecommendation(`{
		"focusAreas": ["x"], "studyTips": ["y"], "conceptsToReview": [],
		"strengths": [], "overallAnalysis": "ok", "topicAnalysis": null,
		"prioritizedTopics": {"critical": [], "needsWork": [], "good": [], "excellent": []}
	}`)
	require.NoError(t, err)
	assert.NotNil(t, rec.TopicAnalysis)
	assert.Empty(t, rec.TopicAnalysis)
}

func TestFallbackRecommendation(t *testing.T) {
	t.Run("score interpolated into analysis", func(t *testing.T) {
		rec := FallbackRecommendation(42)
		assert.Contains(t, rec.OverallAnalysis, "Score: 42%. ")
		assert.Contains(t, rec.OverallAnalysis, fmt.Sprintf("below the benchmark of %d%%", benchmarkScore))
	})

	t.Run("at benchmark reads as met", func(t *testing.T) {
		rec := FallbackRecommendation(benchmarkScore)
		assert.Contains(t, rec.OverallAnalysis, fmt.Sprintf("met the benchmark of %d%%", benchmarkScore))
	})

	t.Run("collections are non-nil", func(t *testing.T) {
		rec := FallbackRecommendation(0)
		assert.NotEmpty(t, rec.FocusAreas)
		assert.NotEmpty(t, rec.StudyTips)
		assert.NotNil(t, rec.TopicAnalysis)
		assert.NotNil(t, rec.PrioritizedTopics.Critical)
	})
}
