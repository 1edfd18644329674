package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/petsitting/pet-sitting-system/internal/core/domain"
	"github.com/petsitting/pet-sitting-system/internal/core/ports"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// In-memory stub repositories shared by the service tests. Each mirrors the
// filters the real Mongo repository applies.
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	byID      map[string]*domain.User
	nextID    int
	createErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	for _, u := range r.byID {
		if u.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	r.nextID++
	clone := *user
	clone.ID = fmt.Sprintf("user-%d", r.nextID)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByIDs(_ context.Context, ids []string) (map[string]*domain.User, error) {
	out := make(map[string]*domain.User)
	for _, id := range ids {
		if u, ok := r.byID[id]; ok {
			clone := *u
			out[id] = &clone
		}
	}
	return out, nil
}

func (r *stubUserRepo) UpdateAvatar(_ context.Context, id, avatar string) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.Avatar = avatar
	clone := *u
	return &clone, nil
}

// addUser seeds an account directly, bypassing Create.
func (r *stubUserRepo) addUser(id, name, email, role string) *domain.User {
	u := &domain.User{ID: id, Name: name, Email: email, Role: role}
	r.byID[id] = u
	return u
}

type stubSitterRepo struct {
	byID      map[string]*domain.SitterProfile
	nextID    int
	upsertErr error
}

func newStubSitterRepo() *stubSitterRepo {
	return &stubSitterRepo{byID: make(map[string]*domain.SitterProfile)}
}

func (r *stubSitterRepo) FindByID(_ context.Context, id string) (*domain.SitterProfile, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrSitterNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubSitterRepo) FindByUser(_ context.Context, userID string) (*domain.SitterProfile, error) {
	for _, p := range r.byID {
		if p.UserID == userID {
			clone := *p
			return &clone, nil
		}
	}
	return nil, domain.ErrSitterNotFound
}

func (r *stubSitterRepo) Upsert(_ context.Context, profile *domain.SitterProfile) (*domain.SitterProfile, error) {
	if r.upsertErr != nil {
		return nil, r.upsertErr
	}
	for id, p := range r.byID {
		if p.UserID == profile.UserID {
			clone := *profile
			clone.ID = id
			clone.CreatedAt = p.CreatedAt
			r.byID[id] = &clone
			out := clone
			return &out, nil
		}
	}
	r.nextID++
	clone := *profile
	clone.ID = fmt.Sprintf("sitter-%d", r.nextID)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubSitterRepo) List(_ context.Context, f ports.ListSittersFilter) ([]*domain.SitterProfile, int64, error) {
	var matched []*domain.SitterProfile
	for _, p := range r.byID {
		if f.PetType != "" {
			found := false
			for _, s := range p.Services {
				if s == f.PetType {
					found = true
					break
				}
			}
			if !found {
				continue
			}
		}
		if f.Location != "" && !strings.Contains(strings.ToLower(p.Location), strings.ToLower(f.Location)) {
			continue
		}
		clone := *p
		matched = append(matched, &clone)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID > matched[j].ID })

	total := int64(len(matched))
	skip := (f.Page - 1) * f.Limit
	if skip > len(matched) {
		return nil, total, nil
	}
	end := skip + f.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[skip:end], total, nil
}

type stubPetRepo struct {
	byID   map[string]*domain.Pet
	nextID int
}

func newStubPetRepo() *stubPetRepo {
	return &stubPetRepo{byID: make(map[string]*domain.Pet)}
}

func (r *stubPetRepo) Create(_ context.Context, pet *domain.Pet) (*domain.Pet, error) {
	r.nextID++
	clone := *pet
	clone.ID = fmt.Sprintf("pet-%d", r.nextID)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubPetRepo) FindByID(_ context.Context, id string) (*domain.Pet, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrPetNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubPetRepo) FindByIDs(_ context.Context, ids []string) (map[string]*domain.Pet, error) {
	out := make(map[string]*domain.Pet)
	for _, id := range ids {
		if p, ok := r.byID[id]; ok {
			clone := *p
			out[id] = &clone
		}
	}
	return out, nil
}

func (r *stubPetRepo) ListByOwner(_ context.Context, ownerID string) ([]*domain.Pet, error) {
	var out []*domain.Pet
	for _, p := range r.byID {
		if p.OwnerID == ownerID {
			clone := *p
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubPetRepo) Update(_ context.Context, id, ownerID string, pet *domain.Pet) (*domain.Pet, error) {
	existing, ok := r.byID[id]
	if !ok || existing.OwnerID != ownerID {
		return nil, domain.ErrPetNotFound
	}
	clone := *pet
	clone.ID = id
	clone.OwnerID = ownerID
	clone.CreatedAt = existing.CreatedAt
	r.byID[id] = &clone
	out := clone
	return &out, nil
}

func (r *stubPetRepo) Delete(_ context.Context, id, ownerID string) error {
	existing, ok := r.byID[id]
	if !ok || existing.OwnerID != ownerID {
		return domain.ErrPetNotFound
	}
	delete(r.byID, id)
	return nil
}

type stubBookingRepo struct {
	byID   map[string]*domain.Booking
	nextID int
}

func newStubBookingRepo() *stubBookingRepo {
	return &stubBookingRepo{byID: make(map[string]*domain.Booking)}
}

func (r *stubBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	r.nextID++
	clone := *b
	clone.ID = fmt.Sprintf("booking-%d", r.nextID)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubBookingRepo) FindByID(_ context.Context, id string) (*domain.Booking, error) {
	b, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	clone := *b
	return &clone, nil
}

func (r *stubBookingRepo) ListByOwner(_ context.Context, ownerID string) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range r.byID {
		if b.OwnerID == ownerID {
			clone := *b
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubBookingRepo) ListBySitter(_ context.Context, sitterID string) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range r.byID {
		if b.SitterID == sitterID {
			clone := *b
			out = append(out, &clone)
		}
	}
	return out, nil
}

// ResolvePending mirrors the conditional update of the Mongo repository:
// the flip only succeeds while the stored status is still pending.
func (r *stubBookingRepo) ResolvePending(_ context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	b, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	if b.Status != domain.BookingPending {
		return nil, domain.ErrBookingResolved
	}
	b.Status = status
	clone := *b
	return &clone, nil
}

type stubPostRepo struct {
	byID   map[string]*domain.Post
	nextID int
}

func newStubPostRepo() *stubPostRepo {
	return &stubPostRepo{byID: make(map[string]*domain.Post)}
}

func (r *stubPostRepo) Create(_ context.Context, p *domain.Post) (*domain.Post, error) {
	r.nextID++
	clone := *p
	clone.ID = fmt.Sprintf("post-%d", r.nextID)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubPostRepo) FindByID(_ context.Context, id string) (*domain.Post, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubPostRepo) ListPublic(_ context.Context, f ports.ListPostsFilter) ([]*domain.Post, int64, error) {
	var matched []*domain.Post
	for _, p := range r.byID {
		if !p.IsPublic {
			continue
		}
		if f.PetType != "" && p.PetType != f.PetType {
			continue
		}
		if len(f.Tags) > 0 {
			any := false
			for _, want := range f.Tags {
				for _, have := range p.Tags {
					if want == have {
						any = true
					}
				}
			}
			if !any {
				continue
			}
		}
		clone := *p
		matched = append(matched, &clone)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID > matched[j].ID })

	total := int64(len(matched))
	skip := (f.Page - 1) * f.Limit
	if skip > len(matched) {
		return nil, total, nil
	}
	end := skip + f.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[skip:end], total, nil
}

func (r *stubPostRepo) Update(_ context.Context, id, authorID string, upd ports.PostUpdate) (*domain.Post, error) {
	p, ok := r.byID[id]
	if !ok || p.AuthorID != authorID {
		return nil, domain.ErrPostNotFound
	}
	p.Content = upd.Content
	p.Tags = upd.Tags
	p.Location = upd.Location
	p.PetType = upd.PetType
	p.IsPublic = upd.IsPublic
	clone := *p
	return &clone, nil
}

func (r *stubPostRepo) Delete(_ context.Context, id, authorID string) error {
	p, ok := r.byID[id]
	if !ok || p.AuthorID != authorID {
		return domain.ErrPostNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubPostRepo) SetLike(_ context.Context, id, userID string, liked bool) (*domain.Post, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	var likes []string
	for _, l := range p.Likes {
		if l != userID {
			likes = append(likes, l)
		}
	}
	if liked {
		likes = append(likes, userID)
	}
	if likes == nil {
		likes = []string{}
	}
	p.Likes = likes
	clone := *p
	return &clone, nil
}

func (r *stubPostRepo) AddComment(_ context.Context, id string, comment domain.Comment) (*domain.Post, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	comment.ID = fmt.Sprintf("comment-%d", len(p.Comments)+1)
	p.Comments = append(p.Comments, comment)
	clone := *p
	return &clone, nil
}

func (r *stubPostRepo) RemoveComment(_ context.Context, id, commentID string) (*domain.Post, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	kept := p.Comments[:0]
	found := false
	for _, c := range p.Comments {
		if c.ID == commentID {
			found = true
			continue
		}
		kept = append(kept, c)
	}
	if !found {
		return nil, domain.ErrCommentNotFound
	}
	p.Comments = kept
	clone := *p
	return &clone, nil
}

type stubProductRepo struct {
	byID   map[string]*domain.Product
	nextID int
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{byID: make(map[string]*domain.Product)}
}

func (r *stubProductRepo) Create(_ context.Context, p *domain.Product) (*domain.Product, error) {
	r.nextID++
	clone := *p
	clone.ID = fmt.Sprintf("product-%d", r.nextID)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubProductRepo) List(_ context.Context) ([]*domain.Product, error) {
	var out []*domain.Product
	for _, p := range r.byID {
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubProductRepo) Update(_ context.Context, id string, p *domain.Product) (*domain.Product, error) {
	existing, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	clone := *p
	clone.ID = id
	clone.CreatedAt = existing.CreatedAt
	r.byID[id] = &clone
	out := clone
	return &out, nil
}

func (r *stubProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubProductRepo) DecrementStock(_ context.Context, id string, qty int) error {
	p, ok := r.byID[id]
	if !ok {
		return domain.ErrProductNotFound
	}
	p.Stock -= qty
	return nil
}

type stubOrderRepo struct {
	byID   map[string]*domain.Order
	nextID int
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{byID: make(map[string]*domain.Order)}
}

func (r *stubOrderRepo) Create(_ context.Context, o *domain.Order) (*domain.Order, error) {
	r.nextID++
	clone := *o
	clone.ID = fmt.Sprintf("order-%d", r.nextID)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubOrderRepo) ListByUser(_ context.Context, userID string) ([]*domain.Order, error) {
	var out []*domain.Order
	for _, o := range r.byID {
		if o.UserID == userID {
			clone := *o
			out = append(out, &clone)
		}
	}
	return out, nil
}
