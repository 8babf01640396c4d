package response

import (
	"time"

	"linenhire/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type LoginResponse struct {
	UserID uuid.UUID `json:"user_id"`
}

type UserResponse struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

func FromAuthorizedUserView(rm *queries.AuthorizedUserView) *UserResponse {
	resp := &UserResponse{}
	_ = copier.Copy(resp, rm)
	return resp
}
