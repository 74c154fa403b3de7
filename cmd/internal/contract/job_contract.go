package contract

type CreateJobRequest struct {
	Title           string   `json:"title" validate:"required,min=3,max=120"`
	Description     string   `json:"description" validate:"required,min=10,max=10000"`
	CompanyName     string   `json:"company_name" validate:"required,max=120"`
	Location        string   `json:"location" validate:"max=120"`
	EmploymentType  string   `json:"employment_type" validate:"required,oneof=full_time part_time contract internship temporary"`
	ExperienceLevel string   `json:"experience_level" validate:"max=40"`
	SalaryMin       *int     `json:"salary_min" validate:"omitempty,min=0"`
	SalaryMax       *int     `json:"salary_max" validate:"omitempty,min=0"`
	IsRemote        bool     `json:"is_remote"`
	Tags            []string `json:"tags" validate:"max=20,nodupes,dive,min=1,max=32,nospaces"`
	Status          string   `json:"status" validate:"omitempty,oneof=draft open closed"`
}

type UpdateJobRequest struct {
	Title           *string  `json:"title" validate:"omitempty,min=3,max=120"`
	Description     *string  `json:"description" validate:"omitempty,min=10,max=10000"`
	CompanyName     *string  `json:"company_name" validate:"omitempty,max=120"`
	Location        *string  `json:"location" validate:"omitempty,max=120"`
	EmploymentType  *string  `json:"employment_type" validate:"omitempty,oneof=full_time part_time contract internship temporary"`
	ExperienceLevel *string  `json:"experience_level" validate:"omitempty,max=40"`
	SalaryMin       *int     `json:"salary_min" validate:"omitempty,min=0"`
	SalaryMax       *int     `json:"salary_max" validate:"omitempty,min=0"`
	IsRemote        *bool    `json:"is_remote"`
	Tags            []string `json:"tags" validate:"omitempty,max=20,nodupes,dive,min=1,max=32,nospaces"`
	Status          *string  `json:"status" validate:"omitempty,oneof=draft open closed"`
	IsActive        *bool    `json:"is_active"`
}

type JobResponse struct {
	RecordResponse
	RecruiterID     string   `json:"recruiter_id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	CompanyName     string   `json:"company_name"`
	Location        string   `json:"location"`
	EmploymentType  string   `json:"employment_type"`
	ExperienceLevel string   `json:"experience_level"`
	SalaryMin       *int     `json:"salary_min"`
	SalaryMax       *int     `json:"salary_max"`
	IsRemote        bool     `json:"is_remote"`
	Tags            []string `json:"tags"`
	Status          string   `json:"status"`
}
