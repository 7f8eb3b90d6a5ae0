package model

import "github.com/google/uuid"

// Jot is a single note owned by the jot store.
type Jot struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
	Text  string    `json:"text"`
}

// JotRequest is the create/update payload; the id always comes from the path or the server.
type JotRequest struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// JotParams binds the {id} path segment.
type JotParams struct {
	ID string `uri:"id" validate:"required,uuid"`
}
