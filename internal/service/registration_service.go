package service

import (
	"edusphere_backend/internal/model"
	"edusphere_backend/internal/repository"
	"edusphere_backend/internal/util"
)

type RegistrationService struct {
	Repo *repository.RegistrationRepository
}

func NewRegistrationService(repo *repository.RegistrationRepository) *RegistrationService {
	return &RegistrationService{Repo: repo}
}

type SchoolRegistrationRequest struct {
	SchoolName    string `json:"schoolName" binding:"required"`
	ContactPerson string `json:"contactPerson" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone"`
	City          string `json:"city"`
	State         string `json:"state"`
	Board         string `json:"board"`
	StudentCount  int    `json:"studentCount"`
}

func (s *RegistrationService) RegisterSchool(req SchoolRegistrationRequest) (*model.SchoolRegistration, error) {
	exists, err := s.Repo.SchoolEmailExists(req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, util.ErrEmailRegistered
	}

	reg := &model.SchoolRegistration{
		SchoolName:    req.SchoolName,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		City:          req.City,
		State:         req.State,
		Board:         req.Board,
		StudentCount:  req.StudentCount,
		Status:        model.RegistrationPending,
	}
	if err := s.Repo.CreateSchool(reg); err != nil {
		return nil, err
	}
	return reg, nil
}

func (s *RegistrationService) GetSchool(id string) (*model.SchoolRegistration, error) {
	return s.Repo.FindSchoolByID(id)
}

func (s *RegistrationService) ListSchools(page, limit int, status, name string) ([]model.SchoolRegistration, int64, error) {
	if status == "all" {
		status = ""
	}
	return s.Repo.ListSchools(page, limit, status, name)
}

func (s *RegistrationService) UpdateSchoolStatus(id, status string) error {
	if !validStatus(status) {
		return util.ErrInvalidStatus
	}
	if _, err := s.Repo.FindSchoolByID(id); err != nil {
		return err
	}
	return s.Repo.UpdateSchoolStatus(id, status)
}

type StudentDetailRequest struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"omitempty,email"`
	Phone         string `json:"phone"`
	SchoolName    string `json:"schoolName"`
	Grade         string `json:"grade"`
	Section       string `json:"section"`
	ParentContact string `json:"parentContact"`
}

func (s *RegistrationService) RegisterStudent(req StudentDetailRequest) (*model.StudentDetail, error) {
	student := &model.StudentDetail{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		SchoolName:    req.SchoolName,
		Grade:         req.Grade,
		Section:       req.Section,
		ParentContact: req.ParentContact,
	}
	if err := s.Repo.CreateStudent(student); err != nil {
		return nil, err
	}
	return student, nil
}

func (s *RegistrationService) GetStudent(id string) (*model.StudentDetail, error) {
	return s.Repo.FindStudentByID(id)
}

func (s *RegistrationService) ListStudents(page, limit int, schoolName, name string) ([]model.StudentDetail, int64, error) {
	return s.Repo.ListStudents(page, limit, schoolName, name)
}

type JudgeRegistrationRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Phone           string `json:"phone"`
	Organization    string `json:"organization"`
	Expertise       string `json:"expertise"`
	YearsExperience int    `json:"yearsExperience"`
}

func (s *RegistrationService) RegisterJudge(req JudgeRegistrationRequest) (*model.JudgeRegistration, error) {
	exists, err := s.Repo.JudgeEmailExists(req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, util.ErrEmailRegistered
	}

	judge := &model.JudgeRegistration{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Organization:    req.Organization,
		Expertise:       req.Expertise,
		YearsExperience: req.YearsExperience,
		Status:          model.RegistrationPending,
	}
	if err := s.Repo.CreateJudge(judge); err != nil {
		return nil, err
	}
	return judge, nil
}

func (s *RegistrationService) GetJudge(id string) (*model.JudgeRegistration, error) {
	return s.Repo.FindJudgeByID(id)
}

func (s *RegistrationService) ListJudges(page, limit int, status, name string) ([]model.JudgeRegistration, int64, error) {
	if status == "all" {
		status = ""
	}
	return s.Repo.ListJudges(page, limit, status, name)
}

func (s *RegistrationService) UpdateJudgeStatus(id, status string) error {
	if !validStatus(status) {
		return util.ErrInvalidStatus
	}
	if _, err := s.Repo.FindJudgeByID(id); err != nil {
		return err
	}
	return s.Repo.UpdateJudgeStatus(id, status)
}

// RegistrationSummary 管理端概览数字
type RegistrationSummary struct {
	PendingSchools  int64 `json:"pendingSchools"`
	ApprovedSchools int64 `json:"approvedSchools"`
	RejectedSchools int64 `json:"rejectedSchools"`
	Students        int64 `json:"students"`
	PendingJudges   int64 `json:"pendingJudges"`
	ApprovedJudges  int64 `json:"approvedJudges"`
}

func (s *RegistrationService) Summary() (*RegistrationSummary, error) {
	summary := &RegistrationSummary{}
	var err error

	if summary.PendingSchools, err = s.Repo.CountSchoolsByStatus(model.RegistrationPending); err != nil {
		return nil, err
	}
	if summary.ApprovedSchools, err = s.Repo.CountSchoolsByStatus(model.RegistrationApproved); err != nil {
		return nil, err
	}
	if summary.RejectedSchools, err = s.Repo.CountSchoolsByStatus(model.RegistrationRejected); err != nil {
		return nil, err
	}
	if summary.Students, err = s.Repo.CountStudents(); err != nil {
		return nil, err
	}
	if summary.PendingJudges, err = s.Repo.CountJudgesByStatus(model.RegistrationPending); err != nil {
		return nil, err
	}
	if summary.ApprovedJudges, err = s.Repo.CountJudgesByStatus(model.RegistrationApproved); err != nil {
		return nil, err
	}

	return summary, nil
}

func validStatus(status string) bool {
	switch status {
	case model.RegistrationPending, model.RegistrationApproved, model.RegistrationRejected:
		return true
	}
	return false
}
