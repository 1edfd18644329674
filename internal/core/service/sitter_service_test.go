package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/petsitting/pet-sitting-system/internal/core/domain"
	"github.com/petsitting/pet-sitting-system/internal/core/ports"
)

// stubDirectoryCache records lookups and can serve a canned page.
type stubDirectoryCache struct {
	stored map[string]*ports.ListSittersResult
	gets   int
	sets   int
}

func newStubDirectoryCache() *stubDirectoryCache {
	return &stubDirectoryCache{stored: make(map[string]*ports.ListSittersResult)}
}

func (c *stubDirectoryCache) key(f ports.ListSittersFilter) string {
	return fmt.Sprintf("%s|%s|%d|%d", f.PetType, f.Location, f.Page, f.Limit)
}

func (c *stubDirectoryCache) Get(_ context.Context, f ports.ListSittersFilter) (*ports.ListSittersResult, error) {
	c.gets++
	return c.stored[c.key(f)], nil
}

func (c *stubDirectoryCache) Set(_ context.Context, f ports.ListSittersFilter, r *ports.ListSittersResult) error {
	c.sets++
	c.stored[c.key(f)] = r
	return nil
}

func seedSitter(t *testing.T, users *stubUserRepo, sitters *stubSitterRepo, id, name, location string, services ...domain.PetType) *domain.SitterProfile {
	t.Helper()
	users.addUser(id, name, id+"@example.com", domain.RoleSitter)
	profile, err := sitters.Upsert(context.Background(), &domain.SitterProfile{
		UserID: id, Location: location, Services: services,
	})
	if err != nil {
		t.Fatalf("seed sitter %s: %v", id, err)
	}
	return profile
}

func TestSitterService_UpsertMine_CreateThenUpdate(t *testing.T) {
	users := newStubUserRepo()
	users.addUser("user-1", "Sam", "sam@example.com", domain.RoleSitter)
	sitters := newStubSitterRepo()
	svc := NewSitterService(sitters, users, nil, discardLogger)

	first, err := svc.UpsertMine(context.Background(), "user-1", ports.SitterProfileInput{
		Bio: "dog walker", Services: []domain.PetType{domain.PetDog},
	})
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	second, err := svc.UpsertMine(context.Background(), "user-1", ports.SitterProfileInput{
		Bio: "dog and cat sitter", Services: []domain.PetType{domain.PetDog, domain.PetCat},
	})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	if second.Profile.ID != first.Profile.ID {
		t.Errorf("upsert must keep the profile id stable: %q vs %q", second.Profile.ID, first.Profile.ID)
	}
	if second.Profile.Bio != "dog and cat sitter" {
		t.Errorf("bio not updated: %q", second.Profile.Bio)
	}
	if second.User.Name != "Sam" {
		t.Errorf("view must embed the owning user, got %+v", second.User)
	}
}

func TestSitterService_UpsertMine_InvalidService(t *testing.T) {
	svc := NewSitterService(newStubSitterRepo(), newStubUserRepo(), nil, discardLogger)

	_, err := svc.UpsertMine(context.Background(), "user-1", ports.SitterProfileInput{
		Services: []domain.PetType{"dragon"},
	})
	if !errors.Is(err, domain.ErrInvalidPetType) {
		t.Fatalf("expected ErrInvalidPetType, got %v", err)
	}
}

func TestSitterService_GetMine_NotFound(t *testing.T) {
	svc := NewSitterService(newStubSitterRepo(), newStubUserRepo(), nil, discardLogger)

	_, err := svc.GetMine(context.Background(), "user-without-profile")
	if !errors.Is(err, domain.ErrSitterNotFound) {
		t.Fatalf("expected ErrSitterNotFound, got %v", err)
	}
}

func TestSitterService_List_Filters(t *testing.T) {
	users := newStubUserRepo()
	sitters := newStubSitterRepo()
	seedSitter(t, users, sitters, "user-1", "Sam", "Mexico City", domain.PetDog)
	seedSitter(t, users, sitters, "user-2", "Kim", "Guadalajara", domain.PetCat)
	seedSitter(t, users, sitters, "user-3", "Lu", "mexico city centro", domain.PetDog, domain.PetCat)

	svc := NewSitterService(sitters, users, nil, discardLogger)

	byType, err := svc.List(context.Background(), ports.ListSittersFilter{PetType: domain.PetCat})
	if err != nil {
		t.Fatalf("list by type: %v", err)
	}
	if byType.Total != 2 {
		t.Errorf("cat sitters = %d, want 2", byType.Total)
	}

	byLocation, err := svc.List(context.Background(), ports.ListSittersFilter{Location: "MEXICO"})
	if err != nil {
		t.Fatalf("list by location: %v", err)
	}
	if byLocation.Total != 2 {
		t.Errorf("location match must be case-insensitive substring, got %d", byLocation.Total)
	}

	both, err := svc.List(context.Background(), ports.ListSittersFilter{PetType: domain.PetCat, Location: "mexico"})
	if err != nil {
		t.Fatalf("list by both: %v", err)
	}
	if both.Total != 1 {
		t.Errorf("combined filter = %d, want 1", both.Total)
	}
}

func TestSitterService_List_ServedFromCache(t *testing.T) {
	users := newStubUserRepo()
	sitters := newStubSitterRepo()
	seedSitter(t, users, sitters, "user-1", "Sam", "CDMX", domain.PetDog)

	cache := newStubDirectoryCache()
	svc := NewSitterService(sitters, users, cache, discardLogger)

	first, err := svc.List(context.Background(), ports.ListSittersFilter{})
	if err != nil {
		t.Fatalf("first list: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("miss must populate the cache, sets = %d", cache.sets)
	}

	// A second sitter appears, but the cached page is still served.
	seedSitter(t, users, sitters, "user-2", "Kim", "CDMX", domain.PetCat)

	second, err := svc.List(context.Background(), ports.ListSittersFilter{})
	if err != nil {
		t.Fatalf("second list: %v", err)
	}
	if second.Total != first.Total {
		t.Errorf("second call should hit the cache, got total=%d want %d", second.Total, first.Total)
	}
	if cache.sets != 1 {
		t.Errorf("cache hit must not re-populate, sets = %d", cache.sets)
	}
}

func TestSitterService_List_Pagination(t *testing.T) {
	users := newStubUserRepo()
	sitters := newStubSitterRepo()
	for _, id := range []string{"user-1", "user-2", "user-3"} {
		seedSitter(t, users, sitters, id, id, "CDMX", domain.PetDog)
	}

	svc := NewSitterService(sitters, users, nil, discardLogger)

	page, err := svc.List(context.Background(), ports.ListSittersFilter{Page: 2, Limit: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Total != 3 || page.TotalPages != 2 || page.Page != 2 {
		t.Errorf("pagination metadata wrong: %+v", page)
	}
	if len(page.Sitters) != 1 {
		t.Errorf("second page of 2 over 3 rows should hold 1, got %d", len(page.Sitters))
	}
}
