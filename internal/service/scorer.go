package service

import (
	"bytes"
	"context"
	"edusphere_backend/pkg/logger"
	"edusphere_backend/pkg/monitoring"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	QuestionMCQ         = "MCQ"
	QuestionTrueFalse   = "TrueFalse"
	QuestionFillBlanks  = "FillBlanks"
	QuestionShortAnswer = "ShortAnswer"
	QuestionDescriptive = "Descriptive"
)

const (
	pointsMCQ         = 2
	pointsTrueFalse   = 1
	pointsFillBlanks  = 2
	pointsShortAnswer = 5
)

// FlexString 同时接受 JSON 字符串和数字。前端对评估ID两种写法都在用。
type FlexString string

func (s *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = FlexString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*s = FlexString(n.String())
	return nil
}

// Question 测评请求中的单个题目，取出后不再修改
type Question struct {
	AssessmentID  FlexString  `json:"assessmentId"`
	Question      string      `json:"question"`
	QuestionType  string      `json:"questionType"`
	Options       interface{} `json:"options,omitempty"`       // []string 或 {"A": "...", ...}
	CorrectAnswer interface{} `json:"correctAnswer,omitempty"` // 类型随题型变化
	Answer        interface{} `json:"answer,omitempty"`        // FillBlanks 优先使用
	Explanation   string      `json:"explanation,omitempty"`
}

// FeedbackItem 单题判分结果，每题生成一次
type FeedbackItem struct {
	IsCorrect     bool              `json:"isCorrect"`
	StudentAnswer string            `json:"studentAnswer"`
	CorrectAnswer string            `json:"correctAnswer"`
	Explanation   string            `json:"explanation"`
	Options       map[string]string `json:"options,omitempty"`
}

// AssessmentEvaluation 单个评估的汇总结果
type AssessmentEvaluation struct {
	AssessmentID   string                  `json:"assessment_id"`
	Score          int                     `json:"score"` // 0-100
	TotalQuestions int                     `json:"total_questions"`
	CorrectAnswers int                     `json:"correct_answers"`
	Feedback       map[string]FeedbackItem `json:"feedback"`
}

// AnswerScorer 按题型逐题判分。简答/主观题通过 Completer 调用大模型，
// 单题调用失败只影响该题，不会中断整卷。
type AnswerScorer struct {
	ai Completer
}

func NewAnswerScorer(ai Completer) *AnswerScorer {
	return &AnswerScorer{ai: ai}
}

var scoreLineRe = regexp.MustCompile(`(?i)Score:\s*(\d+)\s*/\s*5`)

const gradingSystem = "You are a strict but fair teacher grading a student's written answer. Respond with JSON only."

// ScoreAssessment 对一个评估的题目序列判分。answers 按题目顺序对齐，
// 多余的答案忽略，缺失的答案按未作答计为错误。
func (s *AnswerScorer) ScoreAssessment(ctx context.Context, questions []Question, answers []interface{}) *AssessmentEvaluation {
	feedback := make(map[string]FeedbackItem, len(questions))
	earned := 0
	maxPoints := 0
	correct := 0

	for i, q := range questions {
		var answer interface{}
		if i < len(answers) {
			answer = answers[i]
		}

		var item FeedbackItem
		var points int

		switch q.QuestionType {
		case QuestionMCQ:
			item, points = s.scoreMCQ(q, answer)
			maxPoints += pointsMCQ
		case QuestionTrueFalse:
			item, points = s.scoreTrueFalse(q, answer)
			maxPoints += pointsTrueFalse
		case QuestionFillBlanks:
			item, points = s.scoreFillBlanks(q, answer)
			maxPoints += pointsFillBlanks
		case QuestionShortAnswer, QuestionDescriptive:
			item, points = s.scoreShortAnswer(ctx, q, answer)
			maxPoints += pointsShortAnswer
		default:
			item = FeedbackItem{
				IsCorrect:     false,
				StudentAnswer: asString(answer),
				Explanation:   "Unknown question type",
			}
		}

		if item.IsCorrect {
			correct++
		}
		earned += points
		feedback[fmt.Sprintf("Q%d", i+1)] = item
	}

	// 空卷直接计 0，避免除零
	score := 0
	if maxPoints > 0 {
		score = int(math.Round(float64(earned) / float64(maxPoints) * 100))
	}

	return &AssessmentEvaluation{
		Score:          score,
		TotalQuestions: len(questions),
		CorrectAnswers: correct,
		Feedback:       feedback,
	}
}

func (s *AnswerScorer) scoreMCQ(q Question, answer interface{}) (FeedbackItem, int) {
	options := normalizeOptions(q.Options)
	studentLabel := normalizeOptionLabel(answer)
	correctLabel := normalizeOptionLabel(q.CorrectAnswer)
	if correctLabel == "" {
		correctLabel = normalizeOptionLabel(q.Answer)
	}

	studentText := optionDisplay(options, studentLabel)
	correctText := optionDisplay(options, correctLabel)

	isCorrect := studentLabel != "" && studentLabel == correctLabel

	var explanation string
	if isCorrect {
		explanation = fmt.Sprintf("✅ Correct! The answer is %s.", correctText)
	} else if studentLabel == "" {
		explanation = fmt.Sprintf("❌ Incorrect. You did not select an option. The correct answer is %s.", correctText)
	} else {
		explanation = fmt.Sprintf("❌ Incorrect. You selected %s. The correct answer is %s.", studentText, correctText)
	}
	if q.Explanation != "" {
		explanation += " " + q.Explanation
	}

	item := FeedbackItem{
		IsCorrect:     isCorrect,
		StudentAnswer: studentText,
		CorrectAnswer: correctText,
		Explanation:   explanation,
		Options:       options,
	}
	if isCorrect {
		return item, pointsMCQ
	}
	return item, 0
}

func (s *AnswerScorer) scoreTrueFalse(q Question, answer interface{}) (FeedbackItem, int) {
	// 布尔和 "true"/"false" 字符串都接受，规范化后再比较
	studentVal, studentOK := normalizeBool(answer)
	correctVal, correctOK := normalizeBool(q.CorrectAnswer)
	if !correctOK {
		correctVal, correctOK = normalizeBool(q.Answer)
	}

	isCorrect := studentOK && correctOK && studentVal == correctVal

	studentText := ""
	if studentOK {
		studentText = fmt.Sprintf("%t", studentVal)
	}
	correctText := ""
	if correctOK {
		correctText = fmt.Sprintf("%t", correctVal)
	}

	var explanation string
	if isCorrect {
		explanation = fmt.Sprintf("✅ Correct! The statement is %s.", correctText)
	} else {
		explanation = fmt.Sprintf("❌ Incorrect. The correct answer is %s.", correctText)
	}
	if q.Explanation != "" {
		explanation += " " + q.Explanation
	}

	item := FeedbackItem{
		IsCorrect:     isCorrect,
		StudentAnswer: studentText,
		CorrectAnswer: correctText,
		Explanation:   explanation,
	}
	if isCorrect {
		return item, pointsTrueFalse
	}
	return item, 0
}

func (s *AnswerScorer) scoreFillBlanks(q Question, answer interface{}) (FeedbackItem, int) {
	// answer 字段优先于 correctAnswer
	correctText := asString(q.Answer)
	if strings.TrimSpace(correctText) == "" {
		correctText = asString(q.CorrectAnswer)
	}
	studentText := asString(answer)

	isCorrect := strings.TrimSpace(correctText) != "" &&
		strings.EqualFold(strings.TrimSpace(studentText), strings.TrimSpace(correctText))

	var explanation string
	if isCorrect {
		explanation = fmt.Sprintf("✅ Correct! The answer is \"%s\".", strings.TrimSpace(correctText))
	} else {
		explanation = fmt.Sprintf("❌ Incorrect. The correct answer is \"%s\".", strings.TrimSpace(correctText))
	}
	if q.Explanation != "" {
		explanation += " " + q.Explanation
	}

	item := FeedbackItem{
		IsCorrect:     isCorrect,
		StudentAnswer: studentText,
		CorrectAnswer: strings.TrimSpace(correctText),
		Explanation:   explanation,
	}
	if isCorrect {
		return item, pointsFillBlanks
	}
	return item, 0
}

func (s *AnswerScorer) scoreShortAnswer(ctx context.Context, q Question, answer interface{}) (FeedbackItem, int) {
	studentText := asString(answer)
	if strings.TrimSpace(studentText) == "" {
		// 未作答不调用模型
		return FeedbackItem{
			IsCorrect:     false,
			StudentAnswer: "",
			CorrectAnswer: asString(q.CorrectAnswer),
			Explanation:   "No answer provided",
		}, 0
	}

	prompt := fmt.Sprintf(`Grade the student's answer to the following question on a scale of 0 to 5.

Question: %s
Model answer: %s
Student answer: %s

Respond with a JSON object only, no markdown fencing:
{"score": <integer 0-5>, "feedback": "<one or two sentences of feedback for the student>"}

If you cannot respond with JSON, respond with a line "Score: X/5" followed by the feedback.`,
		q.Question, asString(q.CorrectAnswer), studentText)

	start := time.Now()
	raw, err := s.ai.Complete(ctx, gradingSystem, prompt)
	monitoring.ObserveCompletion("short_answer", start, err)
	if err != nil {
		logger.Log.Error("short answer grading failed",
			zap.String("question", q.Question),
			zap.Error(err))
		return FeedbackItem{
			IsCorrect:     false,
			StudentAnswer: studentText,
			CorrectAnswer: asString(q.CorrectAnswer),
			Explanation:   "Error evaluating answer",
		}, 0
	}

	score, feedbackText := parseGradedAnswer(raw)

	return FeedbackItem{
		IsCorrect:     score == pointsShortAnswer,
		StudentAnswer: studentText,
		CorrectAnswer: asString(q.CorrectAnswer),
		Explanation:   feedbackText,
	}, score
}

// parseGradedAnswer 先按结构化 JSON 解析，失败时退回正则提取 Score: X/5。
// 两条路径都失败时得 0 分。
func parseGradedAnswer(raw string) (int, string) {
	cleaned := stripCodeFence(raw)

	var graded struct {
		Score    int    `json:"score"`
		Feedback string `json:"feedback"`
	}
	if err := json.Unmarshal([]byte(cleaned), &graded); err == nil {
		score := graded.Score
		if score < 0 {
			score = 0
		}
		if score > pointsShortAnswer {
			score = pointsShortAnswer
		}
		return score, strings.TrimSpace(graded.Feedback)
	}

	score := 0
	if m := scoreLineRe.FindStringSubmatch(cleaned); m != nil {
		fmt.Sscanf(m[1], "%d", &score)
		if score > pointsShortAnswer {
			score = pointsShortAnswer
		}
	}

	// 反馈文本里不保留评分行
	feedback := strings.TrimSpace(scoreLineRe.ReplaceAllString(cleaned, ""))
	return score, feedback
}

// stripCodeFence 去掉模型响应外层的 Markdown 代码栅栏
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if idx := strings.Index(s, "\n"); idx >= 0 {
		s = s[idx+1:] // 丢掉 ```json 之类的语言标记行
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// normalizeOptions 把选项统一成 标签→文本 映射，数组下标 i 映射为字母 A+i
func normalizeOptions(options interface{}) map[string]string {
	switch v := options.(type) {
	case []interface{}:
		m := make(map[string]string, len(v))
		for i, opt := range v {
			m[string(rune('A'+i))] = asString(opt)
		}
		return m
	case map[string]interface{}:
		m := make(map[string]string, len(v))
		for label, opt := range v {
			m[strings.ToUpper(strings.TrimSpace(label))] = asString(opt)
		}
		return m
	default:
		return nil
	}
}

// normalizeOptionLabel 数字下标转为字母标签，字符串视为已是标签
func normalizeOptionLabel(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case float64:
		idx := int(val)
		if idx < 0 || idx > 25 {
			return ""
		}
		return string(rune('A' + idx))
	case int:
		if val < 0 || val > 25 {
			return ""
		}
		return string(rune('A' + val))
	case json.Number:
		if idx, err := val.Int64(); err == nil && idx >= 0 && idx <= 25 {
			return string(rune('A' + idx))
		}
		return ""
	case string:
		return strings.ToUpper(strings.TrimSpace(val))
	default:
		return ""
	}
}

func optionDisplay(options map[string]string, label string) string {
	if label == "" {
		return ""
	}
	if text, ok := options[label]; ok && text != "" {
		return fmt.Sprintf("%s: %s", label, text)
	}
	return label
}

func normalizeBool(v interface{}) (bool, bool) {
	switch val := v.(type) {
	case bool:
		return val, true
	case string:
		switch strings.ToLower(strings.TrimSpace(val)) {
		case "true":
			return true, true
		case "false":
			return false, true
		}
	}
	return false, false
}

func asString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		if val == math.Trunc(val) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%v", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
