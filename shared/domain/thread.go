package domain

import (
	"time"
)

// to iterate thru layers: handler -> service -> storage
type ThreadCreationData struct {
	Owner UserId
	Board BoardId
	Text  ThreadText
}

type ThreadMetadata struct {
	Id        ThreadId
	Owner     UserId
	Board     BoardId
	Text      ThreadText
	CreatedAt time.Time
}

type Thread struct {
	ThreadMetadata
	Posts []Post
}
