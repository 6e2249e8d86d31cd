package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses.
type errorResponse struct {
	Error string `json:"error"`
}

type createPostRequest struct {
	Title string `json:"title" validate:"required"`
	Body  string `json:"body"  validate:"required"`
}

// updatePostRequest is a partial update: absent fields stay unchanged.
// Owner fields and the id are not part of the schema; unknown JSON
// keys are ignored.
type updatePostRequest struct {
	Title *string `json:"title"`
	Body  *string `json:"body"`
}

// Response-only types owned by the transport layer, intentionally
// separate from the domain types so the JSON contract does not move
// when internals do.

type postResponse struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Body      string     `json:"body"`
	OwnerID   string     `json:"owner_id"`
	OwnerName string     `json:"owner_name"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type postEnvelope struct {
	Post postResponse `json:"post"`
}

type postListResponse struct {
	Posts []postResponse `json:"posts"`
}
