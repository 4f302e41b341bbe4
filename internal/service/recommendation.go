package service

import (
	"context"
	"edusphere_backend/pkg/logger"
	"edusphere_backend/pkg/monitoring"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// benchmarkScore 成绩分档基准线，低于此为 Needs Improvement
const benchmarkScore = 75

type TopicMastery struct {
	Correct    int `json:"correct"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

type PrioritizedTopics struct {
	Critical  []string `json:"critical"`
	NeedsWork []string `json:"needsWork"`
	Good      []string `json:"good"`
	Excellent []string `json:"excellent"`
}

// ImprovementRecommendation 测评后的提升建议。生成一次不再修改，随测评结果落库。
type ImprovementRecommendation struct {
	FocusAreas        []string                `json:"focusAreas"`
	StudyTips         []string                `json:"studyTips"`
	ConceptsToReview  []string                `json:"conceptsToReview"`
	Strengths         []string                `json:"strengths"`
	OverallAnalysis   string                  `json:"overallAnalysis"`
	TopicAnalysis     map[string]TopicMastery `json:"topicAnalysis"`
	PrioritizedTopics PrioritizedTopics       `json:"prioritizedTopics"`
}

var recommendationFields = []string{
	"focusAreas", "studyTips", "conceptsToReview", "strengths",
	"overallAnalysis", "topicAnalysis", "prioritizedTopics",
}

// RecommendationGenerator 请求大模型生成结构化提升建议。
// 任何调用或解析失败都降级为固定内容，调用方永远拿到一份建议。
type RecommendationGenerator struct {
	ai Completer
}

func NewRecommendationGenerator(ai Completer) *RecommendationGenerator {
	return &RecommendationGenerator{ai: ai}
}

const recommendationSystem = "You are an educational advisor analyzing a student's assessment results. Respond with JSON only, no markdown fencing."

func (g *RecommendationGenerator) Generate(ctx context.Context, questions []Question, feedback map[string]FeedbackItem, score int) ImprovementRecommendation {
	prompt := g.buildPrompt(questions, feedback, score)

	start := time.Now()
	raw, err := g.ai.Complete(ctx, recommendationSystem, prompt)
	monitoring.ObserveCompletion("recommendation", start, err)
	if err != nil {
		logger.Log.Error("recommendation generation failed", zap.Error(err))
		return FallbackRecommendation(score)
	}

	rec, err := parseRecommendation(raw)
	if err != nil {
		logger.Log.Warn("recommendation response rejected",
			zap.Error(err),
			zap.Int("responseLength", len(raw)))
		return FallbackRecommendation(score)
	}

	return rec
}

func (g *RecommendationGenerator) buildPrompt(questions []Question, feedback map[string]FeedbackItem, score int) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "A student scored %d%% on an assessment (benchmark: %d%%).\n\nQuestion results:\n", score, benchmarkScore)
	for key, item := range feedback {
		result := "incorrect"
		if item.IsCorrect {
			result = "correct"
		}
		fmt.Fprintf(&sb, "- %s: %s\n", key, result)
	}

	sb.WriteString("\nQuestions:\n")
	for i, q := range questions {
		fmt.Fprintf(&sb, "%d. [%s] %s\n", i+1, q.QuestionType, q.Question)
	}

	sb.WriteString(`
Produce a JSON object with exactly these fields:
{
  "focusAreas": ["..."],
  "studyTips": ["..."],
  "conceptsToReview": ["..."],
  "strengths": ["..."],
  "overallAnalysis": "...",
  "topicAnalysis": {"<topic>": {"correct": 0, "total": 0, "percentage": 0}},
  "prioritizedTopics": {"critical": [], "needsWork": [], "good": [], "excellent": []}
}
Return the JSON object only.`)

	return sb.String()
}

// parseRecommendation 校验七个必填字段都在场，focusAreas/studyTips 非空
func parseRecommendation(raw string) (ImprovementRecommendation, error) {
	cleaned := stripCodeFence(raw)

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &fields); err != nil {
		return ImprovementRecommendation{}, fmt.Errorf("not a JSON object: %w", err)
	}
	for _, f := range recommendationFields {
		if _, ok := fields[f]; !ok {
			return ImprovementRecommendation{}, fmt.Errorf("missing field %q", f)
		}
	}

	var rec ImprovementRecommendation
	if err := json.Unmarshal([]byte(cleaned), &rec); err != nil {
		return ImprovementRecommendation{}, err
	}

	if len(rec.FocusAreas) == 0 {
		return ImprovementRecommendation{}, fmt.Errorf("focusAreas is empty")
	}
	if len(rec.StudyTips) == 0 {
		return ImprovementRecommendation{}, fmt.Errorf("studyTips is empty")
	}

	if rec.TopicAnalysis == nil {
		rec.TopicAnalysis = map[string]TopicMastery{}
	}

	return rec, nil
}

// FallbackRecommendation 大模型不可用时的固定建议，
// 仅 overallAnalysis 按实际分数和基准线插值，其余内容固定。
func FallbackRecommendation(score int) ImprovementRecommendation {
	analysis := fmt.Sprintf("Score: %d%%. ", score)
	if score >= benchmarkScore {
		analysis += fmt.Sprintf("You met the benchmark of %d%%. Keep reinforcing your strong areas and challenge yourself with harder problems.", benchmarkScore)
	} else {
		analysis += fmt.Sprintf("You are below the benchmark of %d%%. Work through the focus areas listed and review the questions you missed before your next attempt.", benchmarkScore)
	}

	return ImprovementRecommendation{
		FocusAreas: []string{
			"Review the questions you answered incorrectly",
			"Practice similar problems on a regular schedule",
			"Ask your teacher to walk through the concepts you found hardest",
		},
		StudyTips: []string{
			"Study in short, focused sessions rather than long cramming blocks",
			"Explain each concept in your own words to check understanding",
			"Redo missed questions from scratch a few days later",
		},
		ConceptsToReview: []string{
			"Core concepts covered in this assessment",
		},
		Strengths: []string{
			"Completed the assessment",
			"Attempted questions across the covered topics",
		},
		OverallAnalysis: analysis,
		TopicAnalysis:   map[string]TopicMastery{},
		PrioritizedTopics: PrioritizedTopics{
			Critical:  []string{},
			NeedsWork: []string{},
			Good:      []string{},
			Excellent: []string{},
		},
	}
}
