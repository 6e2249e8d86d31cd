package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/inkwell/blog-api/internal/core/domain"
	"github.com/inkwell/blog-api/internal/core/ports"
)

type stubPostRepo struct {
	posts       []*domain.Post
	err         error
	updateCalls int
}

func newStubPostRepo() *stubPostRepo {
	return &stubPostRepo{}
}

func clonePost(p *domain.Post) *domain.Post {
	if p == nil {
		return nil
	}
	clone := *p
	if p.UpdatedAt != nil {
		t := *p.UpdatedAt
		clone.UpdatedAt = &t
	}
	return &clone
}

func (r *stubPostRepo) List(context.Context) ([]*domain.Post, error) {
	if r.err != nil {
		return nil, r.err
	}
	// newest first
	out := make([]*domain.Post, 0, len(r.posts))
	for i := len(r.posts) - 1; i >= 0; i-- {
		out = append(out, clonePost(r.posts[i]))
	}
	return out, nil
}

func (r *stubPostRepo) Get(_ context.Context, id string) (*domain.Post, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, p := range r.posts {
		if p.ID == id {
			return clonePost(p), nil
		}
	}
	return nil, domain.ErrPostNotFound
}

func (r *stubPostRepo) Insert(_ context.Context, post *domain.Post) error {
	if r.err != nil {
		return r.err
	}
	r.posts = append(r.posts, clonePost(post))
	return nil
}

func (r *stubPostRepo) Update(_ context.Context, id string, patch ports.PostPatch) (*domain.Post, error) {
	r.updateCalls++
	if r.err != nil {
		return nil, r.err
	}
	for _, p := range r.posts {
		if p.ID == id {
			if patch.Title != nil {
				p.Title = *patch.Title
			}
			if patch.Body != nil {
				p.Body = *patch.Body
			}
			now := time.Now().UTC()
			p.UpdatedAt = &now
			return clonePost(p), nil
		}
	}
	return nil, domain.ErrPostNotFound
}

func (r *stubPostRepo) Delete(_ context.Context, id string) error {
	if r.err != nil {
		return r.err
	}
	for i, p := range r.posts {
		if p.ID == id {
			r.posts = append(r.posts[:i], r.posts[i+1:]...)
			return nil
		}
	}
	return domain.ErrPostNotFound
}

func (r *stubPostRepo) EnsureIndexes(context.Context) error { return nil }

type stubRecorder struct {
	events []ports.ActivityEvent
}

func (r *stubRecorder) Record(event ports.ActivityEvent) {
	r.events = append(r.events, event)
}

var (
	aliceSession = &domain.Session{UserID: "alice", Name: "Alice"}
	bobSession   = &domain.Session{UserID: "bob", Name: "Bob"}
)

func newPostService(repo *stubPostRepo, recorder *stubRecorder) *PostService {
	return NewPostService(repo, recorder, zerolog.Nop())
}

func strptr(s string) *string { return &s }

func TestPostService_Create_RequiresSession(t *testing.T) {
	svc := newPostService(newStubPostRepo(), &stubRecorder{})

	_, err := svc.Create(context.Background(), nil, ports.CreatePostInput{Title: "Hello", Body: "World"})
	if !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestPostService_Create_RejectsEmptyFields(t *testing.T) {
	svc := newPostService(newStubPostRepo(), &stubRecorder{})

	for _, in := range []ports.CreatePostInput{
		{Title: "", Body: "World"},
		{Title: "Hello", Body: ""},
		{Title: "   ", Body: "World"},
	} {
		if _, err := svc.Create(context.Background(), aliceSession, in); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", in, err)
		}
	}
}

func TestPostService_Create_Success(t *testing.T) {
	repo := newStubPostRepo()
	recorder := &stubRecorder{}
	svc := newPostService(repo, recorder)

	post, err := svc.Create(context.Background(), aliceSession, ports.CreatePostInput{Title: "Hello", Body: "World"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if post.ID == "" {
		t.Fatalf("expected generated id")
	}
	if post.OwnerID != "alice" || post.OwnerName != "Alice" {
		t.Fatalf("owner not snapshotted from session: %+v", post)
	}
	if post.CreatedAt.IsZero() {
		t.Fatalf("expected creation timestamp")
	}
	if post.UpdatedAt != nil {
		t.Fatalf("new post must not carry an updated timestamp")
	}
	if len(recorder.events) != 1 || recorder.events[0].Action != ports.ActivityCreated {
		t.Fatalf("expected one created activity event, got %+v", recorder.events)
	}
}

func TestPostService_Update_NotFound(t *testing.T) {
	svc := newPostService(newStubPostRepo(), &stubRecorder{})

	_, err := svc.Update(context.Background(), aliceSession, "missing", ports.PostPatch{Title: strptr("Hi")})
	if !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestPostService_Update_ForbiddenLeavesPostUnchanged(t *testing.T) {
	repo := newStubPostRepo()
	svc := newPostService(repo, &stubRecorder{})

	created, err := svc.Create(context.Background(), aliceSession, ports.CreatePostInput{Title: "Hello", Body: "World"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	_, err = svc.Update(context.Background(), bobSession, created.ID, ports.PostPatch{Title: strptr("Hijacked")})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	stored, _ := repo.Get(context.Background(), created.ID)
	if stored.Title != "Hello" || stored.Body != "World" || stored.UpdatedAt != nil {
		t.Fatalf("post mutated despite forbidden update: %+v", stored)
	}
}

func TestPostService_Update_PartialKeepsOmittedFields(t *testing.T) {
	repo := newStubPostRepo()
	svc := newPostService(repo, &stubRecorder{})

	created, err := svc.Create(context.Background(), aliceSession, ports.CreatePostInput{Title: "Hello", Body: "World"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.Update(context.Background(), aliceSession, created.ID, ports.PostPatch{Title: strptr("Hi")})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Title != "Hi" || updated.Body != "World" {
		t.Fatalf("unexpected post after partial update: %+v", updated)
	}
	if updated.UpdatedAt == nil {
		t.Fatalf("expected updated timestamp to be set")
	}
	if updated.OwnerID != "alice" {
		t.Fatalf("owner changed by update")
	}
}

func TestPostService_Update_EmptyPatchIsNoOp(t *testing.T) {
	repo := newStubPostRepo()
	svc := newPostService(repo, &stubRecorder{})

	created, err := svc.Create(context.Background(), aliceSession, ports.CreatePostInput{Title: "Hello", Body: "World"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	got, err := svc.Update(context.Background(), aliceSession, created.ID, ports.PostPatch{})
	if err != nil {
		t.Fatalf("empty update failed: %v", err)
	}
	if got.UpdatedAt != nil {
		t.Fatalf("empty patch must not stamp an update")
	}
	if repo.updateCalls != 0 {
		t.Fatalf("empty patch must not reach the repository")
	}
}

func TestPostService_Delete_SecondDeleteIsNotFound(t *testing.T) {
	repo := newStubPostRepo()
	svc := newPostService(repo, &stubRecorder{})

	created, err := svc.Create(context.Background(), aliceSession, ports.CreatePostInput{Title: "Hello", Body: "World"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.Delete(context.Background(), aliceSession, created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.Get(context.Background(), created.ID); !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound after delete, got %v", err)
	}
	if err := svc.Delete(context.Background(), aliceSession, created.ID); !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("second delete: expected ErrPostNotFound, got %v", err)
	}
}

func TestPostService_Delete_Forbidden(t *testing.T) {
	repo := newStubPostRepo()
	svc := newPostService(repo, &stubRecorder{})

	created, err := svc.Create(context.Background(), aliceSession, ports.CreatePostInput{Title: "Hello", Body: "World"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.Delete(context.Background(), bobSession, created.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := repo.Get(context.Background(), created.ID); err != nil {
		t.Fatalf("post removed despite forbidden delete")
	}
}

func TestPostService_List_NewestFirstAndOpenToAnonymous(t *testing.T) {
	repo := newStubPostRepo()
	svc := newPostService(repo, &stubRecorder{})

	first, _ := svc.Create(context.Background(), aliceSession, ports.CreatePostInput{Title: "first", Body: "b"})
	second, _ := svc.Create(context.Background(), bobSession, ports.CreatePostInput{Title: "second", Body: "b"})

	posts, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
	if posts[0].ID != second.ID || posts[1].ID != first.ID {
		t.Fatalf("expected newest first, got %q then %q", posts[0].Title, posts[1].Title)
	}
}

func TestPostService_RepoFailuresAreInternal(t *testing.T) {
	repo := newStubPostRepo()
	repo.err = errors.New("socket closed")
	svc := newPostService(repo, &stubRecorder{})

	if _, err := svc.List(context.Background()); !errors.Is(err, domain.ErrInternal) {
		t.Fatalf("list: expected ErrInternal, got %v", err)
	}
	if _, err := svc.Get(context.Background(), "p1"); !errors.Is(err, domain.ErrInternal) {
		t.Fatalf("get: expected ErrInternal, got %v", err)
	}
	if _, err := svc.Create(context.Background(), aliceSession, ports.CreatePostInput{Title: "t", Body: "b"}); !errors.Is(err, domain.ErrInternal) {
		t.Fatalf("create: expected ErrInternal, got %v", err)
	}
}

// Walks the full ownership scenario: alice creates and edits her post,
// bob's edit is refused and changes nothing.
func TestPostService_OwnershipScenario(t *testing.T) {
	repo := newStubPostRepo()
	svc := newPostService(repo, &stubRecorder{})

	post, err := svc.Create(context.Background(), aliceSession, ports.CreatePostInput{Title: "Hello", Body: "World"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if post.OwnerID != "alice" || post.CreatedAt.IsZero() || post.UpdatedAt != nil {
		t.Fatalf("unexpected fresh post: %+v", post)
	}

	updated, err := svc.Update(context.Background(), aliceSession, post.ID, ports.PostPatch{Title: strptr("Hi")})
	if err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if updated.Title != "Hi" || updated.Body != "World" || updated.UpdatedAt == nil {
		t.Fatalf("unexpected post after owner update: %+v", updated)
	}

	if _, err := svc.Update(context.Background(), bobSession, post.ID, ports.PostPatch{Title: strptr("Mine now")}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for bob, got %v", err)
	}

	stored, _ := repo.Get(context.Background(), post.ID)
	if stored.Title != "Hi" || stored.Body != "World" {
		t.Fatalf("post changed by forbidden update: %+v", stored)
	}
}
