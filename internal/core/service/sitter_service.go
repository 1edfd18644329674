package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/petsitting/pet-sitting-system/internal/core/domain"
	"github.com/petsitting/pet-sitting-system/internal/core/ports"
)

const maxDirectoryLimit = 50

// DirectoryCache abstracts the page cache in front of the public sitter
// directory (Redis). A nil-result Get means miss.
type DirectoryCache interface {
	Get(ctx context.Context, filter ports.ListSittersFilter) (*ports.ListSittersResult, error)
	Set(ctx context.Context, filter ports.ListSittersFilter, result *ports.ListSittersResult) error
}

// SitterService implements the public directory and the sitter's own profile.
type SitterService struct {
	sitters ports.SitterRepository
	users   ports.UserRepository
	cache   DirectoryCache // optional
	logger  zerolog.Logger
}

func NewSitterService(sitters ports.SitterRepository, users ports.UserRepository, cache DirectoryCache, logger zerolog.Logger) *SitterService {
	return &SitterService{sitters: sitters, users: users, cache: cache, logger: logger}
}

func (s *SitterService) List(ctx context.Context, filter ports.ListSittersFilter) (*ports.ListSittersResult, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}
	if filter.Limit > maxDirectoryLimit {
		filter.Limit = maxDirectoryLimit
	}

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, filter)
		if err != nil {
			s.logger.Warn().Err(err).Msg("directory cache read failed, querying store")
		} else if cached != nil {
			return cached, nil
		}
	}

	profiles, total, err := s.sitters.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	views, err := s.joinUsers(ctx, profiles)
	if err != nil {
		return nil, err
	}

	result := &ports.ListSittersResult{
		Sitters:    views,
		Total:      total,
		Page:       filter.Page,
		TotalPages: totalPages(total, filter.Limit),
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, filter, result); err != nil {
			s.logger.Warn().Err(err).Msg("directory cache write failed")
		}
	}
	return result, nil
}

func (s *SitterService) Get(ctx context.Context, id string) (*ports.SitterView, error) {
	profile, err := s.sitters.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toView(ctx, profile)
}

func (s *SitterService) GetMine(ctx context.Context, userID string) (*ports.SitterView, error) {
	profile, err := s.sitters.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.toView(ctx, profile)
}

// UpsertMine creates the profile when absent, keyed by user.
func (s *SitterService) UpsertMine(ctx context.Context, userID string, input ports.SitterProfileInput) (*ports.SitterView, error) {
	for _, svc := range input.Services {
		if !domain.ValidPetType(svc) {
			return nil, domain.ErrInvalidPetType
		}
	}

	now := time.Now().UTC()
	profile := &domain.SitterProfile{
		UserID:     userID,
		Bio:        input.Bio,
		Services:   input.Services,
		RatePerDay: input.RatePerDay,
		Location:   input.Location,
		ImageURL:   input.ImageURL,
		UpdatedAt:  now,
	}
	if profile.Services == nil {
		profile.Services = []domain.PetType{}
	}

	stored, err := s.sitters.Upsert(ctx, profile)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to upsert sitter profile")
		return nil, err
	}
	return s.toView(ctx, stored)
}

func (s *SitterService) toView(ctx context.Context, profile *domain.SitterProfile) (*ports.SitterView, error) {
	view := &ports.SitterView{Profile: *profile}
	user, err := s.users.FindByID(ctx, profile.UserID)
	if err == nil {
		view.User = userSummary(user)
	}
	return view, nil
}

func (s *SitterService) joinUsers(ctx context.Context, profiles []*domain.SitterProfile) ([]ports.SitterView, error) {
	ids := make([]string, 0, len(profiles))
	for _, p := range profiles {
		ids = append(ids, p.UserID)
	}
	users, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	views := make([]ports.SitterView, len(profiles))
	for i, p := range profiles {
		views[i] = ports.SitterView{Profile: *p}
		if u, ok := users[p.UserID]; ok {
			views[i].User = userSummary(u)
		}
	}
	return views, nil
}

func userSummary(u *domain.User) ports.UserSummary {
	return ports.UserSummary{ID: u.ID, Name: u.Name, Email: u.Email, Avatar: u.Avatar}
}

func totalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
