package handler

import (
	"jobboard/cmd/internal/contract"
	"jobboard/cmd/internal/domain/entity"
	"jobboard/cmd/internal/service"
	"jobboard/cmd/internal/utils"
)

func toRecordResponse(rec *entity.Record) contract.RecordResponse {
	return contract.RecordResponse{
		ID:        rec.ID.String(),
		IsActive:  rec.IsActive,
		IsDeleted: rec.IsDeleted,
		DeletedAt: utils.FormatTimePtr(rec.DeletedAt),
		Version:   rec.Version,
		CreatedAt: utils.FormatTime(rec.CreatedAt),
		UpdatedAt: utils.FormatTime(rec.UpdatedAt),
	}
}

// toUserResponse hides contact data from everyone but the account and admins.
func toUserResponse(actor *entity.Actor, user *entity.User) *contract.UserResponse {
	resp := &contract.UserResponse{
		RecordResponse: toRecordResponse(&user.Record),
		Username:       user.Username,
		Role:           user.Role.String(),
		IsVerified:     user.IsVerified,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		Bio:            user.Bio,
		Location:       user.Location,
	}

	if actor.IsAdmin() || actor.Owns(user) {
		resp.Email = user.Email
		resp.Phone = user.Phone
	}
	return resp
}

func toSkillResponse(_ *entity.Actor, skill *entity.Skill) *contract.SkillResponse {
	return &contract.SkillResponse{
		RecordResponse: toRecordResponse(&skill.Record),
		Name:           skill.Name,
		Category:       skill.Category,
		Description:    skill.Description,
	}
}

func toUserSkillResponse(_ *entity.Actor, row *entity.UserSkill) *contract.UserSkillResponse {
	return &contract.UserSkillResponse{
		RecordResponse:    toRecordResponse(&row.Record),
		UserID:            row.UserID.String(),
		SkillID:           row.SkillID.String(),
		Proficiency:       string(row.Proficiency),
		YearsOfExperience: row.YearsOfExperience,
	}
}

func toJobResponse(_ *entity.Actor, job *entity.Job) *contract.JobResponse {
	return &contract.JobResponse{
		RecordResponse:  toRecordResponse(&job.Record),
		RecruiterID:     job.RecruiterID.String(),
		Title:           job.Title,
		Description:     job.Description,
		CompanyName:     job.CompanyName,
		Location:        job.Location,
		EmploymentType:  string(job.EmploymentType),
		ExperienceLevel: job.ExperienceLevel,
		SalaryMin:       job.SalaryMin,
		SalaryMax:       job.SalaryMax,
		IsRemote:        job.IsRemote,
		Tags:            service.SplitTags(job.Tags),
		Status:          string(job.Status),
	}
}

func toApplicationResponse(_ *entity.Actor, application *entity.Application) *contract.ApplicationResponse {
	return &contract.ApplicationResponse{
		RecordResponse: toRecordResponse(&application.Record),
		JobID:          application.JobID.String(),
		CandidateID:    application.CandidateID.String(),
		CoverLetter:    application.CoverLetter,
		ResumeURL:      application.ResumeURL,
		Status:         string(application.Status),
	}
}
