package service

import (
	"context"
	"edusphere_backend/pkg/logger"
	"edusphere_backend/pkg/monitoring"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	monitoring.Init()
	os.Exit(m.Run())
}

// stubCompleter 替代真实的大模型调用
type stubCompleter struct {
	reply string
	err   error
	calls int
}

func (s *stubCompleter) Complete(ctx context.Context, system, prompt string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func TestScoreMCQ_LabelNormalization(t *testing.T) {
	scorer := NewAnswerScorer(&stubCompleter{})

	q := Question{
		QuestionType:  QuestionMCQ,
		Question:      "What is the capital of France?",
		Options:       []interface{}{"Paris", "London", "Berlin"},
		CorrectAnswer: "a", // 小写标签
	}

	// 数字下标 0 规范化为 A
	eval := scorer.ScoreAssessment(context.Background(), []Question{q}, []interface{}{float64(0)})

	require.Len(t, eval.Feedback, 1)
	item := eval.Feedback["Q1"]
	assert.True(t, item.IsCorrect)
	assert.Equal(t, "A: Paris", item.StudentAnswer)
	assert.Equal(t, "A: Paris", item.CorrectAnswer)
	assert.Equal(t, 100, eval.Score)
	assert.Equal(t, 1, eval.CorrectAnswers)
}

func TestScoreMCQ_MissingAnswerIsIncorrect(t *testing.T) {
	scorer := NewAnswerScorer(&stubCompleter{})

	q := Question{
		QuestionType:  QuestionMCQ,
		Options:       []interface{}{"Paris", "London"},
		CorrectAnswer: "A",
	}

	// answers 比 questions 短，缺失按未作答处理
	eval := scorer.ScoreAssessment(context.Background(), []Question{q}, nil)

	item := eval.Feedback["Q1"]
	assert.False(t, item.IsCorrect)
	assert.Contains(t, item.Explanation, "did not select an option")
	assert.Equal(t, 0, eval.Score)
}

func TestScoreTrueFalse_BoolNormalization(t *testing.T) {
	scorer := NewAnswerScorer(&stubCompleter{})

	cases := []struct {
		name    string
		correct interface{}
		answer  interface{}
		want    bool
	}{
		{"bool vs string", "true", true, true},
		{"string vs bool", true, "True", true},
		{"both strings", "false", " FALSE ", true},
		{"mismatch", true, false, false},
		{"unparseable answer", true, "yes", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := Question{QuestionType: QuestionTrueFalse, CorrectAnswer: tc.correct}
			eval := scorer.ScoreAssessment(context.Background(), []Question{q}, []interface{}{tc.answer})
			assert.Equal(t, tc.want, eval.Feedback["Q1"].IsCorrect)
		})
	}
}

func TestScoreFillBlanks(t *testing.T) {
	scorer := NewAnswerScorer(&stubCompleter{})

	t.Run("trims and ignores case", func(t *testing.T) {
		q := Question{QuestionType: QuestionFillBlanks, CorrectAnswer: "Photosynthesis"}
		eval := scorer.ScoreAssessment(context.Background(), []Question{q}, []interface{}{"  photosynthesis "})
		assert.True(t, eval.Feedback["Q1"].IsCorrect)
		assert.Equal(t, 100, eval.Score)
	})

	t.Run("answer field preferred over correctAnswer", func(t *testing.T) {
		q := Question{
			QuestionType:  QuestionFillBlanks,
			Answer:        "mitochondria",
			CorrectAnswer: "something else",
		}
		eval := scorer.ScoreAssessment(context.Background(), []Question{q}, []interface{}{"Mitochondria"})
		assert.True(t, eval.Feedback["Q1"].IsCorrect)
	})

	t.Run("wrong answer", func(t *testing.T) {
		q := Question{QuestionType: QuestionFillBlanks, CorrectAnswer: "osmosis"}
		eval := scorer.ScoreAssessment(context.Background(), []Question{q}, []interface{}{"diffusion"})
		item := eval.Feedback["Q1"]
		assert.False(t, item.IsCorrect)
		assert.Contains(t, item.Explanation, `"osmosis"`)
	})
}

func TestScoreShortAnswer_EmptyAnswerSkipsModel(t *testing.T) {
	stub := &stubCompleter{err: errors.New("must not be called")}
	scorer := NewAnswerScorer(stub)

	q := Question{QuestionType: QuestionDescriptive, Question: "Explain gravity.", CorrectAnswer: "..."}
	eval := scorer.ScoreAssessment(context.Background(), []Question{q}, []interface{}{""})

	item := eval.Feedback["Q1"]
	assert.False(t, item.IsCorrect)
	assert.Equal(t, "No answer provided", item.Explanation)
	assert.Equal(t, 0, stub.calls)
}

func TestScoreShortAnswer_ModelError(t *testing.T) {
	stub := &stubCompleter{err: errors.New("connection refused")}
	scorer := NewAnswerScorer(stub)

	q := Question{QuestionType: QuestionShortAnswer, Question: "Explain gravity."}
	eval := scorer.ScoreAssessment(context.Background(), []Question{q}, []interface{}{"Things fall down."})

	item := eval.Feedback["Q1"]
	assert.False(t, item.IsCorrect)
	assert.Equal(t, "Error evaluating answer", item.Explanation)
	assert.Equal(t, 0, eval.Score)
	assert.Equal(t, 1, stub.calls)
}

func TestScoreShortAnswer_FullMarksCountsCorrect(t *testing.T) {
	stub := &stubCompleter{reply: `{"score": 5, "feedback": "Excellent explanation."}`}
	scorer := NewAnswerScorer(stub)

	q := Question{QuestionType: QuestionShortAnswer, Question: "Explain gravity."}
	eval := scorer.ScoreAssessment(context.Background(), []Question{q}, []interface{}{"Mass attracts mass."})

	item := eval.Feedback["Q1"]
	assert.True(t, item.IsCorrect)
	assert.Equal(t, "Excellent explanation.", item.Explanation)
	assert.Equal(t, 100, eval.Score)
}

func TestScoreAssessment_Rounding(t *testing.T) {
	// MCQ 2/2 + TrueFalse 1/1 + FillBlanks 0/2 + ShortAnswer 4/5 = 7/10 → 70
	stub := &stubCompleter{reply: `{"score": 4, "feedback": "Mostly right."}`}
	scorer := NewAnswerScorer(stub)

	questions := []Question{
		{QuestionType: QuestionMCQ, Options: []interface{}{"x", "y"}, CorrectAnswer: "A"},
		{QuestionType: QuestionTrueFalse, CorrectAnswer: true},
		{QuestionType: QuestionFillBlanks, CorrectAnswer: "red"},
		{QuestionType: QuestionShortAnswer, Question: "Why?"},
	}
	answers := []interface{}{"A", true, "blue", "Because."}

	eval := scorer.ScoreAssessment(context.Background(), questions, answers)

	assert.Equal(t, 70, eval.Score)
	assert.Equal(t, 4, eval.TotalQuestions)
	assert.Equal(t, 2, eval.CorrectAnswers)
}

func TestScoreAssessment_EmptyAndUnknown(t *testing.T) {
	scorer := NewAnswerScorer(&stubCompleter{})

	t.Run("no questions", func(t *testing.T) {
		eval := scorer.ScoreAssessment(context.Background(), nil, nil)
		assert.Equal(t, 0, eval.Score)
		assert.Equal(t, 0, eval.TotalQuestions)
	})

	t.Run("unknown type earns nothing", func(t *testing.T) {
		q := Question{QuestionType: "Matching", CorrectAnswer: "A"}
		eval := scorer.ScoreAssessment(context.Background(), []Question{q}, []interface{}{"A"})
		item := eval.Feedback["Q1"]
		assert.False(t, item.IsCorrect)
		assert.Equal(t, "Unknown question type", item.Explanation)
	})
}

func TestParseGradedAnswer(t *testing.T) {
	t.Run("structured json", func(t *testing.T) {
		score, feedback := parseGradedAnswer(`{"score": 3, "feedback": "Decent attempt."}`)
		assert.Equal(t, 3, score)
		assert.Equal(t, "Decent attempt.", feedback)
	})

	t.Run("json inside code fence", func(t *testing.T) {
		score, feedback := parseGradedAnswer("```json\n{\"score\": 2, \"feedback\": \"Partial.\"}\n```")
		assert.Equal(t, 2, score)
		assert.Equal(t, "Partial.", feedback)
	})

	t.Run("score clamped to 5", func(t *testing.T) {
		score, _ := parseGradedAnswer(`{"score": 9, "feedback": "x"}`)
		assert.Equal(t, 5, score)
	})

	t.Run("negative score clamped to 0", func(t *testing.T) {
		score, _ := parseGradedAnswer(`{"score": -2, "feedback": "x"}`)
		assert.Equal(t, 0, score)
	})

	t.Run("score line fallback", func(t *testing.T) {
		score, feedback := parseGradedAnswer("Score: 4/5\nGood work, minor gaps.")
		assert.Equal(t, 4, score)
		assert.Equal(t, "Good work, minor gaps.", feedback)
	})

	t.Run("case insensitive score line", func(t *testing.T) {
		score, _ := parseGradedAnswer("score: 2 / 5 needs depth")
		assert.Equal(t, 2, score)
	})

	t.Run("unparseable gives zero", func(t *testing.T) {
		score, feedback := parseGradedAnswer("I think this deserves full marks.")
		assert.Equal(t, 0, score)
		assert.Equal(t, "I think this deserves full marks.", feedback)
	})
}

func TestFlexString(t *testing.T) {
	type payload struct {
		ID FlexString `json:"id"`
	}

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"id": "42"}`), &p))
	assert.Equal(t, FlexString("42"), p.ID)

	require.NoError(t, json.Unmarshal([]byte(`{"id": 42}`), &p))
	assert.Equal(t, FlexString("42"), p.ID)
}

func TestNormalizeOptions(t *testing.T) {
	t.Run("array to letter labels", func(t *testing.T) {
		m := normalizeOptions([]interface{}{"one", "two", "three"})
		assert.Equal(t, map[string]string{"A": "one", "B": "two", "C": "three"}, m)
	})

	t.Run("map labels uppercased", func(t *testing.T) {
		m := normalizeOptions(map[string]interface{}{"a": "one", " b ": "two"})
		assert.Equal(t, map[string]string{"A": "one", "B": "two"}, m)
	})

	t.Run("unsupported shape", func(t *testing.T) {
		assert.Nil(t, normalizeOptions("not options"))
	})
}
