package domain

import "time"

type User struct {
	Id        UserId
	Username  Username
	Email     string
	PassHash  string
	CreatedAt time.Time
	Profile   Profile
}

// Profile is created right after its user, see service.Auth.
type Profile struct {
	UserId      UserId
	Role        Role
	PhoneNumber *string
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Profile.Role == RoleAdmin
}

type Credentials struct {
	Username Username
	Password Password
}

// to iterate thru layers: handler -> service -> storage
type RegistrationData struct {
	Credentials
	Email       string
	PhoneNumber *string
}

// Token is the bearer credential. One per user, reused across logins.
type Token struct {
	Key       TokenKey
	UserId    UserId
	CreatedAt time.Time
}
