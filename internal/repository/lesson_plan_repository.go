package repository

import (
	"edusphere_backend/internal/model"

	"gorm.io/gorm"
)

type LessonPlanRepository struct {
	DB *gorm.DB
}

func NewLessonPlanRepository(db *gorm.DB) *LessonPlanRepository {
	return &LessonPlanRepository{DB: db}
}

func (r *LessonPlanRepository) Create(p *model.LessonPlan) error {
	return r.DB.Create(p).Error
}

func (r *LessonPlanRepository) FindByID(id string) (*model.LessonPlan, error) {
	var p model.LessonPlan
	err := r.DB.Where("id = ?", id).First(&p).Error
	return &p, err
}

func (r *LessonPlanRepository) List(page, limit int, subject, grade string) ([]model.LessonPlan, int64, error) {
	var ps []model.LessonPlan
	var total int64

	query := r.DB.Model(&model.LessonPlan{})
	if subject != "" {
		query = query.Where("subject = ?", subject)
	}
	if grade != "" {
		query = query.Where("grade = ?", grade)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&ps).Error
	return ps, total, err
}

func (r *LessonPlanRepository) Delete(id string) error {
	return r.DB.Where("id = ?", id).Delete(&model.LessonPlan{}).Error
}
