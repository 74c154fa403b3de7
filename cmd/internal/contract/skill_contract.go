package contract

type CreateSkillRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=80"`
	Category    string `json:"category" validate:"required,min=1,max=80"`
	Description string `json:"description" validate:"max=500"`
}

type UpdateSkillRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=80"`
	Category    *string `json:"category" validate:"omitempty,min=1,max=80"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	IsActive    *bool   `json:"is_active"`
}

type SkillResponse struct {
	RecordResponse
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
}
