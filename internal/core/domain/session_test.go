package domain

import "testing"

func TestSession_CanMutate(t *testing.T) {
	owned := &Post{ID: "p1", OwnerID: "alice"}

	cases := []struct {
		name    string
		session *Session
		post    *Post
		want    bool
	}{
		{"owner may mutate", &Session{UserID: "alice", Name: "Alice"}, owned, true},
		{"other user denied", &Session{UserID: "bob", Name: "Bob"}, owned, false},
		{"nil session denied", nil, owned, false},
		{"nil post denied", &Session{UserID: "alice"}, nil, false},
		{"empty identity denied", &Session{}, &Post{ID: "p2"}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.session.CanMutate(tc.post); got != tc.want {
				t.Fatalf("CanMutate = %v, want %v", got, tc.want)
			}
		})
	}
}
