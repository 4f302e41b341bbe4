package model

import "encoding/json"

// EvaluationTest 一次测评请求的持久化结果，按主评估ID落库。
// 行一旦写入不再修改，Feedback/Recommendation/Metadata 均为创建时快照。
// swagger:model EvaluationTest
type EvaluationTest struct {
	UUIDBase
	AssessmentID     string          `gorm:"size:64;index;not null" json:"assessment_id"` // 主评估ID（提交列表中的第一个）
	AllAssessmentIDs json.RawMessage `gorm:"type:json" json:"all_assessment_ids"`
	StudentID        string          `gorm:"size:64;index;not null" json:"student_id"`
	StudentAnswers   json.RawMessage `gorm:"type:json" json:"student_answers"`
	Score            int             `json:"score"` // 0-100，多评估取平均后四舍五入
	TotalMarks       int             `gorm:"default:100" json:"total_marks"`
	Benchmark        int             `gorm:"default:75" json:"benchmark"`
	Performance      string          `gorm:"size:32" json:"performance"` // Good / Needs Improvement
	Feedback         json.RawMessage `gorm:"type:json" json:"feedback"`
	Recommendation   json.RawMessage `gorm:"type:json" json:"recommendation"`
	Metadata         json.RawMessage `gorm:"type:json" json:"metadata"`
}

func (EvaluationTest) TableName() string {
	return "evaluation_test"
}
