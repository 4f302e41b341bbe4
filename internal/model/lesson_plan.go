package model

import "encoding/json"

// swagger:model LessonPlan
type LessonPlan struct {
	UUIDBase
	Subject  string          `gorm:"size:128;index;not null" json:"subject"`
	Grade    string          `gorm:"size:32;index" json:"grade"`
	Topic    string          `gorm:"size:255;not null" json:"topic"`
	Duration int             `gorm:"default:0" json:"duration"` // Minutes
	Plan     json.RawMessage `gorm:"type:json" json:"plan"`     // 生成的完整教案
}

func (LessonPlan) TableName() string {
	return "lesson_plans"
}
