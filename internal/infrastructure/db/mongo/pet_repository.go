package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/petsitting/pet-sitting-system/internal/core/domain"
)

const petsCollection = "pets"

// PetRepository implements ports.PetRepository on MongoDB. Owner-scoped
// writes filter on {_id, owner}, so a foreign pet is indistinguishable from
// a missing one.
type PetRepository struct {
	coll *mongo.Collection
}

func NewPetRepository(db *mongo.Database) *PetRepository {
	return &PetRepository{coll: db.Collection(petsCollection)}
}

type petDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Owner       primitive.ObjectID `bson:"owner"`
	Name        string             `bson:"name"`
	Type        string             `bson:"type"`
	Breed       string             `bson:"breed,omitempty"`
	Age         int                `bson:"age,omitempty"`
	Weight      float64            `bson:"weight,omitempty"`
	Description string             `bson:"description,omitempty"`
	ImageURL    string             `bson:"image_url,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (d *petDoc) toDomain() *domain.Pet {
	return &domain.Pet{
		ID:          d.ID.Hex(),
		OwnerID:     d.Owner.Hex(),
		Name:        d.Name,
		Type:        domain.PetType(d.Type),
		Breed:       d.Breed,
		Age:         d.Age,
		WeightKg:    d.Weight,
		Description: d.Description,
		ImageURL:    d.ImageURL,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (r *PetRepository) Create(ctx context.Context, pet *domain.Pet) (*domain.Pet, error) {
	owner, err := primitive.ObjectIDFromHex(pet.OwnerID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := petDoc{
		Owner:       owner,
		Name:        pet.Name,
		Type:        string(pet.Type),
		Breed:       pet.Breed,
		Age:         pet.Age,
		Weight:      pet.WeightKg,
		Description: pet.Description,
		ImageURL:    pet.ImageURL,
		CreatedAt:   pet.CreatedAt,
		UpdatedAt:   pet.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert pet: %w", err)
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *PetRepository) FindByID(ctx context.Context, id string) (*domain.Pet, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPetNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc petDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPetNotFound
		}
		return nil, fmt.Errorf("find pet: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *PetRepository) FindByIDs(ctx context.Context, ids []string) (map[string]*domain.Pet, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			oids = append(oids, oid)
		}
	}

	out := make(map[string]*domain.Pet, len(oids))
	if len(oids) == 0 {
		return out, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, fmt.Errorf("find pets: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var doc petDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode pet: %w", err)
		}
		p := doc.toDomain()
		out[p.ID] = p
	}
	return out, cursor.Err()
}

func (r *PetRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Pet, error) {
	owner, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"owner": owner})
	if err != nil {
		return nil, fmt.Errorf("list pets: %w", err)
	}
	defer cursor.Close(ctx)

	var pets []*domain.Pet
	for cursor.Next(ctx) {
		var doc petDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode pet: %w", err)
		}
		pets = append(pets, doc.toDomain())
	}
	return pets, cursor.Err()
}

func (r *PetRepository) Update(ctx context.Context, id, ownerID string, pet *domain.Pet) (*domain.Pet, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPetNotFound
	}
	owner, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, domain.ErrPetNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":        pet.Name,
		"type":        string(pet.Type),
		"breed":       pet.Breed,
		"age":         pet.Age,
		"weight":      pet.WeightKg,
		"description": pet.Description,
		"image_url":   pet.ImageURL,
		"updated_at":  pet.UpdatedAt,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc petDoc
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid, "owner": owner}, update, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPetNotFound
		}
		return nil, fmt.Errorf("update pet: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *PetRepository) Delete(ctx context.Context, id, ownerID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrPetNotFound
	}
	owner, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return domain.ErrPetNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid, "owner": owner})
	if err != nil {
		return fmt.Errorf("delete pet: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPetNotFound
	}
	return nil
}
