package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/petsitting/pet-sitting-system/internal/core/domain"
	"github.com/petsitting/pet-sitting-system/internal/core/ports"
)

const sittersCollection = "sitter_profiles"

// SitterRepository implements ports.SitterRepository on MongoDB.
type SitterRepository struct {
	coll *mongo.Collection
}

func NewSitterRepository(db *mongo.Database) *SitterRepository {
	return &SitterRepository{coll: db.Collection(sittersCollection)}
}

type sitterDoc struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	User           primitive.ObjectID `bson:"user"`
	Bio            string             `bson:"bio,omitempty"`
	Services       []string           `bson:"services"`
	AvailableDates []time.Time        `bson:"available_dates,omitempty"`
	RatePerDay     float64            `bson:"rate_per_day,omitempty"`
	Location       string             `bson:"location,omitempty"`
	ImageURL       string             `bson:"image_url,omitempty"`
	CreatedAt      time.Time          `bson:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at"`
}

func (d *sitterDoc) toDomain() *domain.SitterProfile {
	services := make([]domain.PetType, len(d.Services))
	for i, s := range d.Services {
		services[i] = domain.PetType(s)
	}
	return &domain.SitterProfile{
		ID:             d.ID.Hex(),
		UserID:         d.User.Hex(),
		Bio:            d.Bio,
		Services:       services,
		AvailableDates: d.AvailableDates,
		RatePerDay:     d.RatePerDay,
		Location:       d.Location,
		ImageURL:       d.ImageURL,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

func (r *SitterRepository) FindByID(ctx context.Context, id string) (*domain.SitterProfile, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrSitterNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc sitterDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSitterNotFound
		}
		return nil, fmt.Errorf("find sitter profile: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *SitterRepository) FindByUser(ctx context.Context, userID string) (*domain.SitterProfile, error) {
	user, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, domain.ErrSitterNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc sitterDoc
	if err := r.coll.FindOne(ctx, bson.M{"user": user}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSitterNotFound
		}
		return nil, fmt.Errorf("find sitter profile by user: %w", err)
	}
	return doc.toDomain(), nil
}

// Upsert creates or updates the profile keyed on its user id. created_at is
// only written on insert.
func (r *SitterRepository) Upsert(ctx context.Context, profile *domain.SitterProfile) (*domain.SitterProfile, error) {
	user, err := primitive.ObjectIDFromHex(profile.UserID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	services := make([]string, len(profile.Services))
	for i, s := range profile.Services {
		services[i] = string(s)
	}

	now := profile.UpdatedAt
	if now.IsZero() {
		now = time.Now().UTC()
	}

	update := bson.M{
		"$set": bson.M{
			"bio":          profile.Bio,
			"services":     services,
			"rate_per_day": profile.RatePerDay,
			"location":     profile.Location,
			"image_url":    profile.ImageURL,
			"updated_at":   now,
		},
		"$setOnInsert": bson.M{
			"user":       user,
			"created_at": now,
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var doc sitterDoc
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"user": user}, update, opts).Decode(&doc); err != nil {
		return nil, fmt.Errorf("upsert sitter profile: %w", err)
	}
	return doc.toDomain(), nil
}

// List returns one page of the public directory, newest first. petType
// matches the services array; location is a case-insensitive substring.
func (r *SitterRepository) List(ctx context.Context, filter ports.ListSittersFilter) ([]*domain.SitterProfile, int64, error) {
	query := bson.M{}
	if filter.PetType != "" {
		query["services"] = bson.M{"$in": []string{string(filter.PetType)}}
	}
	if filter.Location != "" {
		query["location"] = bson.M{"$regex": regexp.QuoteMeta(filter.Location), "$options": "i"}
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count sitter profiles: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list sitter profiles: %w", err)
	}
	defer cursor.Close(ctx)

	var profiles []*domain.SitterProfile
	for cursor.Next(ctx) {
		var doc sitterDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode sitter profile: %w", err)
		}
		profiles = append(profiles, doc.toDomain())
	}
	return profiles, total, cursor.Err()
}
