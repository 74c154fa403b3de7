package contract

type CreateUserSkillRequest struct {
	SkillID           string `json:"skill_id" validate:"required,uuid4"`
	Proficiency       string `json:"proficiency" validate:"required,oneof=beginner intermediate advanced expert"`
	YearsOfExperience int    `json:"years_of_experience" validate:"min=0,max=60"`
}

type UpdateUserSkillRequest struct {
	Proficiency       *string `json:"proficiency" validate:"omitempty,oneof=beginner intermediate advanced expert"`
	YearsOfExperience *int    `json:"years_of_experience" validate:"omitempty,min=0,max=60"`
	IsActive          *bool   `json:"is_active"`
}

type UserSkillResponse struct {
	RecordResponse
	UserID            string `json:"user_id"`
	SkillID           string `json:"skill_id"`
	Proficiency       string `json:"proficiency"`
	YearsOfExperience int    `json:"years_of_experience"`
}
