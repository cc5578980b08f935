package response

import (
	"tastebuds/internal/usecase/queries"
)

type AuthResponse struct {
	User *queries.UserView `json:"user"`
}
