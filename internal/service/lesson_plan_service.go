package service

import (
	"context"
	"edusphere_backend/internal/model"
	"edusphere_backend/internal/repository"
	"edusphere_backend/pkg/monitoring"
	"encoding/json"
	"fmt"
	"time"
)

type LessonPlanService struct {
	Repo *repository.LessonPlanRepository
	ai   Completer
}

func NewLessonPlanService(repo *repository.LessonPlanRepository, ai Completer) *LessonPlanService {
	return &LessonPlanService{Repo: repo, ai: ai}
}

type LessonPlanRequest struct {
	Subject  string `json:"subject" binding:"required"`
	Grade    string `json:"grade" binding:"required"`
	Topic    string `json:"topic" binding:"required"`
	Duration int    `json:"duration"` // Minutes
}

type LessonSection struct {
	Title       string `json:"title"`
	Minutes     int    `json:"minutes"`
	Description string `json:"description"`
}

type LessonPlanContent struct {
	Objectives []string        `json:"objectives"`
	Materials  []string        `json:"materials"`
	Sections   []LessonSection `json:"sections"`
	Assessment string          `json:"assessment"`
	Homework   string          `json:"homework"`
}

const lessonPlanSystem = "You are an experienced curriculum designer. Respond with JSON only, no markdown fencing."

// GenerateLessonPlan 调用大模型生成教案并落库。
// 与测评建议不同，这里生成失败直接报错，不做降级。
func (s *LessonPlanService) GenerateLessonPlan(ctx context.Context, req LessonPlanRequest) (*model.LessonPlan, error) {
	duration := req.Duration
	if duration <= 0 {
		duration = 45
	}

	prompt := fmt.Sprintf(`Create a %d-minute lesson plan for grade %s on the topic "%s" in subject "%s".

Produce a JSON object with exactly these fields:
{
  "objectives": ["..."],
  "materials": ["..."],
  "sections": [{"title": "...", "minutes": 0, "description": "..."}],
  "assessment": "...",
  "homework": "..."
}
The section minutes must add up to %d. Return the JSON object only.`,
		duration, req.Grade, req.Topic, req.Subject, duration)

	start := time.Now()
	raw, err := s.ai.Complete(ctx, lessonPlanSystem, prompt)
	monitoring.ObserveCompletion("lesson_plan", start, err)
	if err != nil {
		return nil, fmt.Errorf("lesson plan generation failed: %w", err)
	}

	var content LessonPlanContent
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &content); err != nil {
		return nil, fmt.Errorf("lesson plan response is not valid JSON: %w", err)
	}
	if len(content.Objectives) == 0 || len(content.Sections) == 0 {
		return nil, fmt.Errorf("lesson plan response is incomplete")
	}

	planJSON, err := json.Marshal(content)
	if err != nil {
		return nil, err
	}

	plan := &model.LessonPlan{
		Subject:  req.Subject,
		Grade:    req.Grade,
		Topic:    req.Topic,
		Duration: duration,
		Plan:     planJSON,
	}
	if err := s.Repo.Create(plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *LessonPlanService) GetLessonPlan(id string) (*model.LessonPlan, error) {
	return s.Repo.FindByID(id)
}

func (s *LessonPlanService) ListLessonPlans(page, limit int, subject, grade string) ([]model.LessonPlan, int64, error) {
	return s.Repo.List(page, limit, subject, grade)
}

func (s *LessonPlanService) DeleteLessonPlan(id string) error {
	return s.Repo.Delete(id)
}
