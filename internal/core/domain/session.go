package domain

// Session binds a request to an authenticated identity. It carries a
// minimal projection of the user record ({id, name}), never the
// credential row itself, and is stored server-side under an opaque
// token that this package never sees.
type Session struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
}

// CanMutate reports whether this session may mutate the given post.
// Total on nil receivers and nil posts: absence of either yields false.
func (s *Session) CanMutate(p *Post) bool {
	if s == nil || p == nil {
		return false
	}
	return s.UserID != "" && s.UserID == p.OwnerID
}
