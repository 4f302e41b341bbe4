package model

const (
	RegistrationPending  = "pending"
	RegistrationApproved = "approved"
	RegistrationRejected = "rejected"
)

// swagger:model SchoolRegistration
type SchoolRegistration struct {
	UUIDBase
	SchoolName    string `gorm:"size:255;not null" json:"schoolName"`
	ContactPerson string `gorm:"size:255;not null" json:"contactPerson"`
	Email         string `gorm:"size:255;uniqueIndex:idx_school_email,length:191;not null" json:"email"`
	Phone         string `gorm:"size:32" json:"phone"`
	City          string `gorm:"size:128" json:"city"`
	State         string `gorm:"size:128" json:"state"`
	Board         string `gorm:"size:64" json:"board"` // CBSE, ICSE, State...
	StudentCount  int    `gorm:"default:0" json:"studentCount"`
	Status        string `gorm:"size:20;default:'pending'" json:"status"`
}

func (SchoolRegistration) TableName() string {
	return "school_registrations"
}

// swagger:model StudentDetail
type StudentDetail struct {
	UUIDBase
	Name          string `gorm:"size:255;not null" json:"name"`
	Email         string `gorm:"size:255;index" json:"email"`
	Phone         string `gorm:"size:32" json:"phone"`
	SchoolName    string `gorm:"size:255" json:"schoolName"`
	Grade         string `gorm:"size:32" json:"grade"`
	Section       string `gorm:"size:32" json:"section"`
	ParentContact string `gorm:"size:64" json:"parentContact"`
}

func (StudentDetail) TableName() string {
	return "dat_student_details"
}

// swagger:model JudgeRegistration
type JudgeRegistration struct {
	UUIDBase
	Name            string `gorm:"size:255;not null" json:"name"`
	Email           string `gorm:"size:255;uniqueIndex:idx_judge_email,length:191;not null" json:"email"`
	Phone           string `gorm:"size:32" json:"phone"`
	Organization    string `gorm:"size:255" json:"organization"`
	Expertise       string `gorm:"size:255" json:"expertise"`
	YearsExperience int    `gorm:"default:0" json:"yearsExperience"`
	Status          string `gorm:"size:20;default:'pending'" json:"status"`
}

func (JudgeRegistration) TableName() string {
	return "judge_registrations"
}
