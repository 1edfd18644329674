package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/petsitting/pet-sitting-system/internal/core/domain"
	"github.com/petsitting/pet-sitting-system/internal/core/ports"
)

// PetService implements owner-scoped pet CRUD.
type PetService struct {
	pets   ports.PetRepository
	logger zerolog.Logger
}

func NewPetService(pets ports.PetRepository, logger zerolog.Logger) *PetService {
	return &PetService{pets: pets, logger: logger}
}

func (s *PetService) Create(ctx context.Context, ownerID string, input ports.PetInput) (*domain.Pet, error) {
	now := time.Now().UTC()
	pet := &domain.Pet{
		OwnerID:     ownerID,
		Name:        input.Name,
		Type:        input.Type,
		Breed:       input.Breed,
		Age:         input.Age,
		WeightKg:    input.WeightKg,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.pets.Create(ctx, pet)
	if err != nil {
		s.logger.Error().Err(err).Str("owner_id", ownerID).Msg("failed to create pet")
		return nil, err
	}
	return created, nil
}

func (s *PetService) ListMine(ctx context.Context, ownerID string) ([]*domain.Pet, error) {
	return s.pets.ListByOwner(ctx, ownerID)
}

func (s *PetService) Update(ctx context.Context, ownerID, petID string, input ports.PetInput) (*domain.Pet, error) {
	pet := &domain.Pet{
		Name:        input.Name,
		Type:        input.Type,
		Breed:       input.Breed,
		Age:         input.Age,
		WeightKg:    input.WeightKg,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		UpdatedAt:   time.Now().UTC(),
	}
	return s.pets.Update(ctx, petID, ownerID, pet)
}

func (s *PetService) Delete(ctx context.Context, ownerID, petID string) error {
	if err := s.pets.Delete(ctx, petID, ownerID); err != nil {
		return err
	}
	s.logger.Info().Str("pet_id", petID).Str("owner_id", ownerID).Msg("pet deleted")
	return nil
}
