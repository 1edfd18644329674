package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/petsitting/pet-sitting-system/internal/core/domain"
	"github.com/petsitting/pet-sitting-system/internal/core/ports"
)

const maxFeedLimit = 50

// PostService implements the social feed with embedded likes and comments.
type PostService struct {
	posts  ports.PostRepository
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewPostService(posts ports.PostRepository, users ports.UserRepository, logger zerolog.Logger) *PostService {
	return &PostService{posts: posts, users: users, logger: logger}
}

func (s *PostService) List(ctx context.Context, filter ports.ListPostsFilter) (*ports.ListPostsResult, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}
	if filter.Limit > maxFeedLimit {
		filter.Limit = maxFeedLimit
	}

	posts, total, err := s.posts.ListPublic(ctx, filter)
	if err != nil {
		return nil, err
	}

	views, err := s.toViews(ctx, posts)
	if err != nil {
		return nil, err
	}

	return &ports.ListPostsResult{
		Posts:      views,
		Total:      total,
		Page:       filter.Page,
		TotalPages: totalPages(total, filter.Limit),
	}, nil
}

func (s *PostService) Get(ctx context.Context, id string) (*ports.PostView, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toView(ctx, post)
}

func (s *PostService) Create(ctx context.Context, authorID string, input ports.CreatePostInput) (*ports.PostView, error) {
	if input.PetType != "" && !domain.ValidPetType(input.PetType) {
		return nil, domain.ErrInvalidPetType
	}

	now := time.Now().UTC()
	post := &domain.Post{
		AuthorID:  authorID,
		Content:   input.Content,
		Images:    emptyIfNil(input.Images),
		Likes:     []string{},
		Comments:  []domain.Comment{},
		Tags:      emptyIfNil(input.Tags),
		Location:  input.Location,
		PetType:   input.PetType,
		IsPublic:  input.IsPublic,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.posts.Create(ctx, post)
	if err != nil {
		s.logger.Error().Err(err).Str("author_id", authorID).Msg("failed to create post")
		return nil, err
	}
	return s.toView(ctx, created)
}

func (s *PostService) Update(ctx context.Context, authorID, postID string, upd ports.PostUpdate) (*ports.PostView, error) {
	post, err := s.posts.Update(ctx, postID, authorID, upd)
	if err != nil {
		return nil, err
	}
	return s.toView(ctx, post)
}

func (s *PostService) Delete(ctx context.Context, authorID, postID string) error {
	return s.posts.Delete(ctx, postID, authorID)
}

// ToggleLike flips the caller's like on the post. Calling twice restores the
// original state.
func (s *PostService) ToggleLike(ctx context.Context, userID, postID string) (*ports.PostView, error) {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	updated, err := s.posts.SetLike(ctx, postID, userID, !post.LikedBy(userID))
	if err != nil {
		return nil, err
	}
	return s.toView(ctx, updated)
}

func (s *PostService) AddComment(ctx context.Context, userID, postID, content string) (*ports.PostView, error) {
	comment := domain.Comment{
		UserID:    userID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	post, err := s.posts.AddComment(ctx, postID, comment)
	if err != nil {
		return nil, err
	}
	return s.toView(ctx, post)
}

// DeleteComment removes a comment. Allowed for the comment's author and for
// the post's author; anyone else is forbidden.
func (s *PostService) DeleteComment(ctx context.Context, userID, postID, commentID string) (*ports.PostView, error) {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	var target *domain.Comment
	for i := range post.Comments {
		if post.Comments[i].ID == commentID {
			target = &post.Comments[i]
			break
		}
	}
	if target == nil {
		return nil, domain.ErrCommentNotFound
	}
	if target.UserID != userID && post.AuthorID != userID {
		return nil, domain.ErrForbidden
	}

	updated, err := s.posts.RemoveComment(ctx, postID, commentID)
	if err != nil {
		return nil, err
	}
	return s.toView(ctx, updated)
}

func (s *PostService) toViews(ctx context.Context, posts []*domain.Post) ([]ports.PostView, error) {
	var ids []string
	for _, p := range posts {
		ids = append(ids, p.AuthorID)
		ids = append(ids, p.Likes...)
		for _, c := range p.Comments {
			ids = append(ids, c.UserID)
		}
	}

	users, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	views := make([]ports.PostView, len(posts))
	for i, p := range posts {
		views[i] = composePostView(p, users)
	}
	return views, nil
}

func (s *PostService) toView(ctx context.Context, p *domain.Post) (*ports.PostView, error) {
	views, err := s.toViews(ctx, []*domain.Post{p})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

func composePostView(p *domain.Post, users map[string]*domain.User) ports.PostView {
	view := ports.PostView{
		Post:     *p,
		Likes:    make([]ports.UserSummary, 0, len(p.Likes)),
		Comments: make([]ports.CommentView, 0, len(p.Comments)),
	}
	if author, ok := users[p.AuthorID]; ok {
		view.Author = userSummary(author)
	}
	for _, id := range p.Likes {
		if u, ok := users[id]; ok {
			view.Likes = append(view.Likes, ports.UserSummary{ID: u.ID, Name: u.Name})
		}
	}
	for _, c := range p.Comments {
		cv := ports.CommentView{
			ID:        c.ID,
			Content:   c.Content,
			CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339),
		}
		if u, ok := users[c.UserID]; ok {
			cv.User = ports.UserSummary{ID: u.ID, Name: u.Name, Avatar: u.Avatar}
		}
		view.Comments = append(view.Comments, cv)
	}
	return view
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
