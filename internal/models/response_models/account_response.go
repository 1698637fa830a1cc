package response_models

import "voyago/internal/models/db_models"

type AccountLoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}

type AccountResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Image     string `json:"image,omitempty"`
	Role      string `json:"role"`
	CreatedAt int64  `json:"createdAt"`
}

func NewAccountResponse(u *db_models.User) AccountResponse {
	return AccountResponse{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		Image:     u.Image,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

func NewAccountResponses(users []db_models.User) []AccountResponse {
	out := make([]AccountResponse, 0, len(users))
	for i := range users {
		out = append(out, NewAccountResponse(&users[i]))
	}
	return out
}
