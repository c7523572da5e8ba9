package domain

import "time"

// to iterate thru layers: handler -> service -> storage
type PostCreationData struct {
	Author  UserId
	Thread  ThreadId
	Title   PostTitle
	Content PostContent
}

// nil fields are left untouched
type PostUpdateData struct {
	Title   *PostTitle
	Content *PostContent
}

type Post struct {
	Id        PostId
	Author    UserId
	Thread    ThreadId
	Title     PostTitle
	Content   PostContent
	CreatedAt time.Time
}
