package domain

import (
	"time"
)

// to iterate thru layers: handler -> service -> storage
type BoardCreationData struct {
	Owner   UserId
	Topic   BoardTopic
	Context string
}

// nil fields are left untouched
type BoardUpdateData struct {
	Topic   *BoardTopic
	Context *string
}

type BoardMetadata struct {
	Id        BoardId
	Owner     UserId
	Topic     BoardTopic
	Context   string
	CreatedAt time.Time
}

type Board struct {
	BoardMetadata
	Threads []ThreadMetadata
}

type TopicCount struct {
	Topic BoardTopic
	Count int
}
