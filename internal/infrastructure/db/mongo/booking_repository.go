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

const bookingsCollection = "bookings"

// BookingRepository implements ports.BookingRepository on MongoDB.
type BookingRepository struct {
	coll *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{coll: db.Collection(bookingsCollection)}
}

type bookingDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Pet       primitive.ObjectID `bson:"pet"`
	Owner     primitive.ObjectID `bson:"owner"`
	Sitter    primitive.ObjectID `bson:"sitter"`
	StartDate time.Time          `bson:"start_date"`
	EndDate   time.Time          `bson:"end_date"`
	Status    string             `bson:"status"`
	Message   string             `bson:"message,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (d *bookingDoc) toDomain() *domain.Booking {
	return &domain.Booking{
		ID:        d.ID.Hex(),
		PetID:     d.Pet.Hex(),
		OwnerID:   d.Owner.Hex(),
		SitterID:  d.Sitter.Hex(),
		StartDate: d.StartDate,
		EndDate:   d.EndDate,
		Status:    domain.BookingStatus(d.Status),
		Message:   d.Message,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	pet, err := primitive.ObjectIDFromHex(b.PetID)
	if err != nil {
		return nil, domain.ErrPetNotFound
	}
	owner, err := primitive.ObjectIDFromHex(b.OwnerID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	sitter, err := primitive.ObjectIDFromHex(b.SitterID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bookingDoc{
		Pet:       pet,
		Owner:     owner,
		Sitter:    sitter,
		StartDate: b.StartDate,
		EndDate:   b.EndDate,
		Status:    string(b.Status),
		Message:   b.Message,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert booking: %w", err)
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id string) (*domain.Booking, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrBookingNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc bookingDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("find booking: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *BookingRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Booking, error) {
	owner, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	return r.list(ctx, bson.M{"owner": owner})
}

func (r *BookingRepository) ListBySitter(ctx context.Context, sitterID string) ([]*domain.Booking, error) {
	sitter, err := primitive.ObjectIDFromHex(sitterID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	return r.list(ctx, bson.M{"sitter": sitter})
}

func (r *BookingRepository) list(ctx context.Context, filter bson.M) ([]*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []*domain.Booking
	for cursor.Next(ctx) {
		var doc bookingDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode booking: %w", err)
		}
		bookings = append(bookings, doc.toDomain())
	}
	return bookings, cursor.Err()
}

// ResolvePending flips a pending booking to status in one conditional update.
// The status filter makes the flip atomic: when a racing resolution already
// won, the update matches nothing and the current status decides the error.
func (r *BookingRepository) ResolvePending(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrBookingNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": oid, "status": string(domain.BookingPending)}
	update := bson.M{"$set": bson.M{"status": string(status), "updated_at": time.Now().UTC()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc bookingDoc
	err = r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	if err == nil {
		return doc.toDomain(), nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("resolve booking: %w", err)
	}

	// No pending match: either the booking is gone or it was already resolved.
	if _, findErr := r.FindByID(ctx, id); findErr != nil {
		return nil, findErr
	}
	return nil, domain.ErrBookingResolved
}
