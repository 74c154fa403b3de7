package contract

type CreateUserRequest struct {
	Email     string `json:"email" validate:"required,email,max=254"`
	Username  string `json:"username" validate:"required,min=2,max=80,nospaces"`
	Role      string `json:"role" validate:"required,oneof=candidate recruiter admin"`
	FirstName string `json:"first_name" validate:"max=80"`
	LastName  string `json:"last_name" validate:"max=80"`
	Phone     string `json:"phone" validate:"omitempty,e164"`
	Bio       string `json:"bio" validate:"max=2000"`
	Location  string `json:"location" validate:"max=120"`
}

type UpdateUserRequest struct {
	Username   *string `json:"username" validate:"omitempty,min=2,max=80,nospaces"`
	FirstName  *string `json:"first_name" validate:"omitempty,max=80"`
	LastName   *string `json:"last_name" validate:"omitempty,max=80"`
	Phone      *string `json:"phone" validate:"omitempty,e164"`
	Bio        *string `json:"bio" validate:"omitempty,max=2000"`
	Location   *string `json:"location" validate:"omitempty,max=120"`
	Role       *string `json:"role" validate:"omitempty,oneof=candidate recruiter admin"`
	IsVerified *bool   `json:"is_verified"`
	IsActive   *bool   `json:"is_active"`
}

type UserResponse struct {
	RecordResponse
	Username   string `json:"username"`
	Role       string `json:"role"`
	IsVerified bool   `json:"is_verified"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Bio        string `json:"bio"`
	Location   string `json:"location"`

	// Contact data, only filled for the account itself and admins.
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}
