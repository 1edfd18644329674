package ports

import (
	"context"

	"github.com/petsitting/pet-sitting-system/internal/core/domain"
)

// ListPostsFilter carries the query parameters for the public feed.
type ListPostsFilter struct {
	PetType domain.PetType // optional
	Tags    []string       // optional: match any
	Page    int            // 1-based
	Limit   int
}

// PostUpdate carries the author-editable fields of a post.
type PostUpdate struct {
	Content  string
	Tags     []string
	Location string
	PetType  domain.PetType
	IsPublic bool
}

// PostRepository defines persistence for feed posts and their embedded
// likes/comments. Like, AddComment and RemoveComment operate atomically on
// the embedded arrays.
type PostRepository interface {
	Create(ctx context.Context, p *domain.Post) (*domain.Post, error)
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	// ListPublic returns a page of public posts, newest first, and the total count.
	ListPublic(ctx context.Context, filter ListPostsFilter) ([]*domain.Post, int64, error)
	// Update applies upd to the post only when authorID matches the author.
	Update(ctx context.Context, id, authorID string, upd PostUpdate) (*domain.Post, error)
	Delete(ctx context.Context, id, authorID string) error
	// SetLike adds (liked=true) or removes (liked=false) userID from the like set.
	SetLike(ctx context.Context, id, userID string, liked bool) (*domain.Post, error)
	AddComment(ctx context.Context, id string, comment domain.Comment) (*domain.Post, error)
	RemoveComment(ctx context.Context, id, commentID string) (*domain.Post, error)
}
