package handler

import "github.com/inkwell/blog-api/internal/core/domain"

func toPostResponse(p *domain.Post) postResponse {
	resp := postResponse{
		ID:        p.ID,
		Title:     p.Title,
		Body:      p.Body,
		OwnerID:   p.OwnerID,
		OwnerName: p.OwnerName,
		CreatedAt: p.CreatedAt.UTC(),
	}
	if p.UpdatedAt != nil {
		t := p.UpdatedAt.UTC()
		resp.UpdatedAt = &t
	}
	return resp
}

func toPostListResponse(posts []*domain.Post) postListResponse {
	items := make([]postResponse, len(posts))
	for i, p := range posts {
		items[i] = toPostResponse(p)
	}
	return postListResponse{Posts: items}
}
