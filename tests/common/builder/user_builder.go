//go:build unit || e2e

package builder

import (
	"tastebuds/internal/domain/user"
)

type UserBuilder struct {
	Email        string
	PasswordHash string
	Role         string
	FirstName    string
	LastName     string
	Phone        string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Email:        "parent@example.com",
		PasswordHash: "hashed_password",
		Role:         "parent",
		FirstName:    "Pat",
		LastName:     "Baker",
		Phone:        "07000000000",
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	name, err := user.NewName(u.FirstName, u.LastName)
	if err != nil {
		return nil, err
	}

	return user.NewUser(email, u.PasswordHash, role, name, u.Phone), nil
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithName(first, last string) *UserBuilder {
	u.FirstName = first
	u.LastName = last
	return u
}

func (u *UserBuilder) AsYoungAdult() *UserBuilder {
	u.Role = "youngAdult"
	return u
}
