package domain

type (
	UserId      = int64
	Username    = string
	Password    = string
	Role        = string
	TokenKey    = string
	BoardId     = string
	BoardTopic  = string
	ThreadId    = string
	ThreadText  = string
	PostId      = int64
	PostTitle   = string
	PostContent = string
	ModeratorId = int64
)

const (
	RoleNewUser Role = "new_user"
	RoleAdmin   Role = "admin"
)
