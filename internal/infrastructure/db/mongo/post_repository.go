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
	"github.com/petsitting/pet-sitting-system/internal/core/ports"
)

const postsCollection = "posts"

// PostRepository implements ports.PostRepository on MongoDB. Likes and
// comments live inside the post document; $addToSet/$pull/$push keep the
// embedded arrays consistent under concurrent requests.
type PostRepository struct {
	coll *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{coll: db.Collection(postsCollection)}
}

type commentDoc struct {
	ID        primitive.ObjectID `bson:"_id"`
	User      primitive.ObjectID `bson:"user"`
	Content   string             `bson:"content"`
	CreatedAt time.Time          `bson:"created_at"`
}

type postDoc struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty"`
	Author    primitive.ObjectID   `bson:"author"`
	Content   string               `bson:"content"`
	Images    []string             `bson:"images"`
	Likes     []primitive.ObjectID `bson:"likes"`
	Comments  []commentDoc         `bson:"comments"`
	Tags      []string             `bson:"tags"`
	Location  string               `bson:"location,omitempty"`
	PetType   string               `bson:"pet_type,omitempty"`
	IsPublic  bool                 `bson:"is_public"`
	CreatedAt time.Time            `bson:"created_at"`
	UpdatedAt time.Time            `bson:"updated_at"`
}

func (d *postDoc) toDomain() *domain.Post {
	likes := make([]string, len(d.Likes))
	for i, l := range d.Likes {
		likes[i] = l.Hex()
	}
	comments := make([]domain.Comment, len(d.Comments))
	for i, c := range d.Comments {
		comments[i] = domain.Comment{
			ID:        c.ID.Hex(),
			UserID:    c.User.Hex(),
			Content:   c.Content,
			CreatedAt: c.CreatedAt,
		}
	}
	return &domain.Post{
		ID:        d.ID.Hex(),
		AuthorID:  d.Author.Hex(),
		Content:   d.Content,
		Images:    d.Images,
		Likes:     likes,
		Comments:  comments,
		Tags:      d.Tags,
		Location:  d.Location,
		PetType:   domain.PetType(d.PetType),
		IsPublic:  d.IsPublic,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func (r *PostRepository) Create(ctx context.Context, p *domain.Post) (*domain.Post, error) {
	author, err := primitive.ObjectIDFromHex(p.AuthorID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := postDoc{
		Author:    author,
		Content:   p.Content,
		Images:    p.Images,
		Likes:     []primitive.ObjectID{},
		Comments:  []commentDoc{},
		Tags:      p.Tags,
		Location:  p.Location,
		PetType:   string(p.PetType),
		IsPublic:  p.IsPublic,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *PostRepository) FindByID(ctx context.Context, id string) (*domain.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPostNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc postDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *PostRepository) ListPublic(ctx context.Context, filter ports.ListPostsFilter) ([]*domain.Post, int64, error) {
	query := bson.M{"is_public": true}
	if filter.PetType != "" {
		query["pet_type"] = string(filter.PetType)
	}
	if len(filter.Tags) > 0 {
		query["tags"] = bson.M{"$in": filter.Tags}
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count posts: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list posts: %w", err)
	}
	defer cursor.Close(ctx)

	var posts []*domain.Post
	for cursor.Next(ctx) {
		var doc postDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode post: %w", err)
		}
		posts = append(posts, doc.toDomain())
	}
	return posts, total, cursor.Err()
}

func (r *PostRepository) Update(ctx context.Context, id, authorID string, upd ports.PostUpdate) (*domain.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPostNotFound
	}
	author, err := primitive.ObjectIDFromHex(authorID)
	if err != nil {
		return nil, domain.ErrPostNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	tags := upd.Tags
	if tags == nil {
		tags = []string{}
	}
	update := bson.M{"$set": bson.M{
		"content":    upd.Content,
		"tags":       tags,
		"location":   upd.Location,
		"pet_type":   string(upd.PetType),
		"is_public":  upd.IsPublic,
		"updated_at": time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc postDoc
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid, "author": author}, update, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("update post: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *PostRepository) Delete(ctx context.Context, id, authorID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrPostNotFound
	}
	author, err := primitive.ObjectIDFromHex(authorID)
	if err != nil {
		return domain.ErrPostNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid, "author": author})
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}

func (r *PostRepository) SetLike(ctx context.Context, id, userID string, liked bool) (*domain.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPostNotFound
	}
	user, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var update bson.M
	if liked {
		update = bson.M{"$addToSet": bson.M{"likes": user}}
	} else {
		update = bson.M{"$pull": bson.M{"likes": user}}
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc postDoc
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("set like: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *PostRepository) AddComment(ctx context.Context, id string, comment domain.Comment) (*domain.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPostNotFound
	}
	user, err := primitive.ObjectIDFromHex(comment.UserID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := commentDoc{
		ID:        primitive.NewObjectID(),
		User:      user,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	}
	update := bson.M{"$push": bson.M{"comments": doc}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated postDoc
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&updated); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("add comment: %w", err)
	}
	return updated.toDomain(), nil
}

func (r *PostRepository) RemoveComment(ctx context.Context, id, commentID string) (*domain.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPostNotFound
	}
	cid, err := primitive.ObjectIDFromHex(commentID)
	if err != nil {
		return nil, domain.ErrCommentNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$pull": bson.M{"comments": bson.M{"_id": cid}}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc postDoc
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("remove comment: %w", err)
	}
	return doc.toDomain(), nil
}
