package models

import "time"

const (
	RoleCreator  = "creator"
	RoleBusiness = "business"
)

type User struct {
	ID                     string    `bson:"id" json:"id"`
	Email                  string    `bson:"email" json:"email" validate:"required,email"`
	PasswordHash           string    `bson:"passwordHash" json:"-"`
	Role                   string    `bson:"role" json:"role" validate:"required,oneof=creator business"`
	HasCompletedOnboarding bool      `bson:"hasCompletedOnboarding" json:"hasCompletedOnboarding"`
	CreatedAt              time.Time `bson:"createdAt" json:"createdAt"`
}

func (u *User) IsCreator() bool {
	return u.Role == RoleCreator
}

func (u *User) IsBusiness() bool {
	return u.Role == RoleBusiness
}
