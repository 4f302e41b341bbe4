package repository

import (
	"context"
	"edusphere_backend/internal/model"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// 测评结果写入后不再变化，缓存无需失效处理
const evaluationCacheTTL = 10 * time.Minute

type EvaluationRepository struct {
	DB  *gorm.DB
	RDB *redis.Client
}

func NewEvaluationRepository(db *gorm.DB, rdb *redis.Client) *EvaluationRepository {
	return &EvaluationRepository{DB: db, RDB: rdb}
}

func (r *EvaluationRepository) Create(e *model.EvaluationTest) error {
	return r.DB.Create(e).Error
}

func (r *EvaluationRepository) FindByID(ctx context.Context, id string) (*model.EvaluationTest, error) {
	cacheKey := "evaluation:" + id

	if r.RDB != nil {
		if cached, err := r.RDB.Get(ctx, cacheKey).Result(); err == nil {
			var e model.EvaluationTest
			if err := json.Unmarshal([]byte(cached), &e); err == nil {
				return &e, nil
			}
		}
	}

	var e model.EvaluationTest
	if err := r.DB.Where("id = ?", id).First(&e).Error; err != nil {
		return nil, err
	}

	if r.RDB != nil {
		if data, err := json.Marshal(&e); err == nil {
			r.RDB.Set(ctx, cacheKey, data, evaluationCacheTTL)
		}
	}

	return &e, nil
}

func (r *EvaluationRepository) List(studentID string, page, limit int) ([]model.EvaluationTest, int64, error) {
	var es []model.EvaluationTest
	var total int64

	query := r.DB.Model(&model.EvaluationTest{})
	if studentID != "" {
		query = query.Where("student_id = ?", studentID)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&es).Error
	return es, total, err
}

func (r *EvaluationRepository) CountAndAverageScore() (int64, float64, error) {
	var total int64
	if err := r.DB.Model(&model.EvaluationTest{}).Count(&total).Error; err != nil {
		return 0, 0, err
	}
	if total == 0 {
		return 0, 0, nil
	}

	var avg float64
	err := r.DB.Model(&model.EvaluationTest{}).Select("AVG(score)").Scan(&avg).Error
	return total, avg, err
}
