package service

import (
	"context"
	"edusphere_backend/internal/model"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"sync"
)

// evaluationTotalMarks 落库时记录的总分常量
const evaluationTotalMarks = 100

// EvaluationStore 测评结果的持久化接口，由 repository.EvaluationRepository 实现
type EvaluationStore interface {
	Create(e *model.EvaluationTest) error
	FindByID(ctx context.Context, id string) (*model.EvaluationTest, error)
	List(studentID string, page, limit int) ([]model.EvaluationTest, int64, error)
	CountAndAverageScore() (int64, float64, error)
}

type EvaluationService struct {
	store       EvaluationStore
	scorer      *AnswerScorer
	recommender *RecommendationGenerator
}

func NewEvaluationService(store EvaluationStore, ai Completer) *EvaluationService {
	return &EvaluationService{
		store:       store,
		scorer:      NewAnswerScorer(ai),
		recommender: NewRecommendationGenerator(ai),
	}
}

// EvaluateRequest 测评请求。student_answers 按评估ID显式分组，
// 每组内按题目顺序对齐。
type EvaluateRequest struct {
	AssessmentID   string                   `json:"assessment_id"` // 逗号分隔的评估ID列表
	StudentID      string                   `json:"student_id"`
	StudentAnswers map[string][]interface{} `json:"student_answers"`
	Questions      []Question               `json:"questions"`
}

type EvaluateResult struct {
	Evaluation            *model.EvaluationTest  `json:"evaluation"`
	IndividualEvaluations []AssessmentEvaluation `json:"individual_evaluations"`
	AllAssessmentIDs      []string               `json:"all_assessment_ids"`
}

// Evaluate 执行完整测评流水线：逐评估并发判分、汇总平均分、
// 生成提升建议、落库。只有持久化失败会返回错误，
// 判分和建议生成的失败都在各自粒度内降级。
func (s *EvaluationService) Evaluate(ctx context.Context, req EvaluateRequest) (*EvaluateResult, error) {
	ids := splitAssessmentIDs(req.AssessmentID)
	if len(ids) == 0 {
		return nil, fmt.Errorf("no assessment ids in %q", req.AssessmentID)
	}

	grouped := groupQuestions(ids, req.Questions)

	// 各评估之间无依赖，并发判分后合并
	evaluations := make([]AssessmentEvaluation, len(ids))
	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			eval := s.scorer.ScoreAssessment(ctx, grouped[id], req.StudentAnswers[id])
			eval.AssessmentID = id
			evaluations[i] = *eval
		}(i, id)
	}
	wg.Wait()

	// 总分取各评估分数的简单平均
	sum := 0
	for _, eval := range evaluations {
		sum += eval.Score
	}
	overall := int(math.Round(float64(sum) / float64(len(evaluations))))

	// 合并反馈时用评估ID做前缀，避免键冲突
	combined := make(map[string]FeedbackItem)
	assessmentScores := make(map[string]int, len(evaluations))
	for _, eval := range evaluations {
		assessmentScores[eval.AssessmentID] = eval.Score
		for key, item := range eval.Feedback {
			combined[fmt.Sprintf("A%s_%s", eval.AssessmentID, key)] = item
		}
	}

	recommendation := s.recommender.Generate(ctx, req.Questions, combined, overall)

	performance := "Needs Improvement"
	if overall >= benchmarkScore {
		performance = "Good"
	}

	allIDsJSON, _ := json.Marshal(ids)
	answersJSON, _ := json.Marshal(req.StudentAnswers)
	feedbackJSON, _ := json.Marshal(combined)
	recommendationJSON, _ := json.Marshal(recommendation)
	metadataJSON, _ := json.Marshal(map[string]interface{}{
		"assessment_scores": assessmentScores,
		"recommendation":    recommendation,
	})

	evaluation := &model.EvaluationTest{
		AssessmentID:     ids[0],
		AllAssessmentIDs: allIDsJSON,
		StudentID:        req.StudentID,
		StudentAnswers:   answersJSON,
		Score:            overall,
		TotalMarks:       evaluationTotalMarks,
		Benchmark:        benchmarkScore,
		Performance:      performance,
		Feedback:         feedbackJSON,
		Recommendation:   recommendationJSON,
		Metadata:         metadataJSON,
	}

	if err := s.store.Create(evaluation); err != nil {
		return nil, fmt.Errorf("failed to save evaluation: %w", err)
	}

	return &EvaluateResult{
		Evaluation:            evaluation,
		IndividualEvaluations: evaluations,
		AllAssessmentIDs:      ids,
	}, nil
}

func (s *EvaluationService) GetEvaluation(ctx context.Context, id string) (*model.EvaluationTest, error) {
	return s.store.FindByID(ctx, id)
}

func (s *EvaluationService) ListEvaluations(studentID string, page, limit int) ([]model.EvaluationTest, int64, error) {
	return s.store.List(studentID, page, limit)
}

func (s *EvaluationService) Stats() (int64, float64, error) {
	return s.store.CountAndAverageScore()
}

// splitAssessmentIDs 拆分逗号分隔的评估ID，去空白、去重、保持顺序
func splitAssessmentIDs(raw string) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, part := range strings.Split(raw, ",") {
		id := strings.TrimSpace(part)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}

// groupQuestions 按评估ID分组。单评估请求允许题目不带评估ID。
func groupQuestions(ids []string, questions []Question) map[string][]Question {
	grouped := make(map[string][]Question, len(ids))
	for _, q := range questions {
		id := string(q.AssessmentID)
		if id == "" && len(ids) == 1 {
			id = ids[0]
		}
		grouped[id] = append(grouped[id], q)
	}
	return grouped
}
