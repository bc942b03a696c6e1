package response

import (
	"storefront/internal/core/domain/user"
	"time"
)

type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) FromDomainUser(du user.User) {
	u.ID = int64(du.ID)
	u.Email = string(du.Email)
	u.Name = du.Name
	u.Role = string(du.Role)
	u.CreatedAt = du.CreatedAt
}

type UserWithToken struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

func NewUserWithToken(du user.User, token user.SessionToken) UserWithToken {
	u := User{}
	u.FromDomainUser(du)
	return UserWithToken{User: u, Token: string(token)}
}
