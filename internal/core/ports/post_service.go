package ports

import (
	"context"

	"github.com/petsitting/pet-sitting-system/internal/core/domain"
)

// CreatePostInput carries a new feed post. Images are already-stored URLs
// returned by the upload storage backend.
type CreatePostInput struct {
	Content  string
	Images   []string
	Tags     []string
	Location string
	PetType  domain.PetType
	IsPublic bool
}

// CommentView is a comment joined with its author's display fields.
type CommentView struct {
	ID        string      `json:"id"`
	User      UserSummary `json:"user"`
	Content   string      `json:"content"`
	CreatedAt string      `json:"created_at"`
}

// PostView is a post joined with author/liker/commenter display fields.
type PostView struct {
	Post     domain.Post   `json:"post"`
	Author   UserSummary   `json:"author"`
	Likes    []UserSummary `json:"likes"`
	Comments []CommentView `json:"comments"`
}

// ListPostsResult is one page of the public feed.
type ListPostsResult struct {
	Posts      []PostView `json:"posts"`
	Total      int64      `json:"total"`
	Page       int        `json:"current_page"`
	TotalPages int        `json:"total_pages"`
}

// PostService implements the social feed.
type PostService interface {
	List(ctx context.Context, filter ListPostsFilter) (*ListPostsResult, error)
	Get(ctx context.Context, id string) (*PostView, error)
	Create(ctx context.Context, authorID string, input CreatePostInput) (*PostView, error)
	Update(ctx context.Context, authorID, postID string, upd PostUpdate) (*PostView, error)
	Delete(ctx context.Context, authorID, postID string) error
	// ToggleLike flips the caller's like: present → removed, absent → added.
	ToggleLike(ctx context.Context, userID, postID string) (*PostView, error)
	AddComment(ctx context.Context, userID, postID, content string) (*PostView, error)
	// DeleteComment succeeds for the comment's author or the post's author.
	DeleteComment(ctx context.Context, userID, postID, commentID string) (*PostView, error)
}
