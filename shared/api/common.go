package api

type MessageResponse struct {
	Message string `json:"message"`
}

// CreatedResponse is returned for every successful creation.
// Id is a string for boards and threads and a number for posts and moderator requests.
type CreatedResponse struct {
	Message string `json:"message"`
	Id      any    `json:"id"`
}
