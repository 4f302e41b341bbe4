package repository

import (
	"edusphere_backend/internal/model"

	"gorm.io/gorm"
)

type RegistrationRepository struct {
	DB *gorm.DB
}

func NewRegistrationRepository(db *gorm.DB) *RegistrationRepository {
	return &RegistrationRepository{DB: db}
}

// School registrations

func (r *RegistrationRepository) CreateSchool(s *model.SchoolRegistration) error {
	return r.DB.Create(s).Error
}

func (r *RegistrationRepository) FindSchoolByID(id string) (*model.SchoolRegistration, error) {
	var s model.SchoolRegistration
	err := r.DB.Where("id = ?", id).First(&s).Error
	return &s, err
}

func (r *RegistrationRepository) SchoolEmailExists(email string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.SchoolRegistration{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *RegistrationRepository) ListSchools(page, limit int, status, name string) ([]model.SchoolRegistration, int64, error) {
	var ss []model.SchoolRegistration
	var total int64

	query := r.DB.Model(&model.SchoolRegistration{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if name != "" {
		query = query.Where("school_name LIKE ?", "%"+name+"%")
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&ss).Error
	return ss, total, err
}

func (r *RegistrationRepository) UpdateSchoolStatus(id, status string) error {
	return r.DB.Model(&model.SchoolRegistration{}).Where("id = ?", id).Update("status", status).Error
}

func (r *RegistrationRepository) CountSchoolsByStatus(status string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.SchoolRegistration{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

// Student details

func (r *RegistrationRepository) CreateStudent(s *model.StudentDetail) error {
	return r.DB.Create(s).Error
}

func (r *RegistrationRepository) FindStudentByID(id string) (*model.StudentDetail, error) {
	var s model.StudentDetail
	err := r.DB.Where("id = ?", id).First(&s).Error
	return &s, err
}

func (r *RegistrationRepository) ListStudents(page, limit int, schoolName, name string) ([]model.StudentDetail, int64, error) {
	var ss []model.StudentDetail
	var total int64

	query := r.DB.Model(&model.StudentDetail{})
	if schoolName != "" {
		query = query.Where("school_name = ?", schoolName)
	}
	if name != "" {
		query = query.Where("name LIKE ?", "%"+name+"%")
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&ss).Error
	return ss, total, err
}

func (r *RegistrationRepository) CountStudents() (int64, error) {
	var count int64
	err := r.DB.Model(&model.StudentDetail{}).Count(&count).Error
	return count, err
}

// Judge registrations

func (r *RegistrationRepository) CreateJudge(j *model.JudgeRegistration) error {
	return r.DB.Create(j).Error
}

func (r *RegistrationRepository) FindJudgeByID(id string) (*model.JudgeRegistration, error) {
	var j model.JudgeRegistration
	err := r.DB.Where("id = ?", id).First(&j).Error
	return &j, err
}

func (r *RegistrationRepository) JudgeEmailExists(email string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.JudgeRegistration{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *RegistrationRepository) ListJudges(page, limit int, status, name string) ([]model.JudgeRegistration, int64, error) {
	var js []model.JudgeRegistration
	var total int64

	query := r.DB.Model(&model.JudgeRegistration{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if name != "" {
		query = query.Where("name LIKE ?", "%"+name+"%")
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&js).Error
	return js, total, err
}

func (r *RegistrationRepository) UpdateJudgeStatus(id, status string) error {
	return r.DB.Model(&model.JudgeRegistration{}).Where("id = ?", id).Update("status", status).Error
}

func (r *RegistrationRepository) CountJudgesByStatus(status string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.JudgeRegistration{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
