package model

import "time"

type UserType string

const (
	UserTypeMember    UserType = "MEMBER"
	UserTypeNonMember UserType = "NON_MEMBER"
)

type User struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Type       UserType  `json:"type"`
	UsageCount int       `json:"usageCount"` // завершённые бронирования за период
	IsAdmin    bool      `json:"isAdmin,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// IsMember есть ли у пользователя приоритет члена клуба в розыгрыше
func (u *User) IsMember() bool {
	return u.Type == UserTypeMember
}
