package domain

// Moderator is a moderation grant over a board. Inactive grants are pending requests.
type Moderator struct {
	Id        ModeratorId
	Moderator UserId
	Board     BoardId
	Active    bool
}

type ModeratorRequestData struct {
	Username Username
	Board    BoardId
}
