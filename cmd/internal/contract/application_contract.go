package contract

type CreateApplicationRequest struct {
	JobID       string `json:"job_id" validate:"required,uuid4"`
	CoverLetter string `json:"cover_letter" validate:"max=5000"`
	ResumeURL   string `json:"resume_url" validate:"omitempty,url,max=500"`
}

type UpdateApplicationRequest struct {
	CoverLetter *string `json:"cover_letter" validate:"omitempty,max=5000"`
	ResumeURL   *string `json:"resume_url" validate:"omitempty,url,max=500"`
	Status      *string `json:"status" validate:"omitempty,oneof=submitted withdrawn"`
}

type ApplicationResponse struct {
	RecordResponse
	JobID       string `json:"job_id"`
	CandidateID string `json:"candidate_id"`
	CoverLetter string `json:"cover_letter"`
	ResumeURL   string `json:"resume_url"`
	Status      string `json:"status"`
}
