package domain

import (
	"errors"
	"time"
)

var ErrPostNotFound = errors.New("post not found")
var ErrCommentNotFound = errors.New("comment not found")

// Comment is embedded in its post, ordered by creation.
type Comment struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	UserID    string    `json:"user" bson:"user"`
	Content   string    `json:"content" bson:"content"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Post is a social feed item, independent of the booking workflow.
// Likes is a set of user ids; liking twice toggles back to unliked.
type Post struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	AuthorID  string    `json:"author" bson:"author"`
	Content   string    `json:"content" bson:"content"`
	Images    []string  `json:"images" bson:"images"`
	Likes     []string  `json:"likes" bson:"likes"`
	Comments  []Comment `json:"comments" bson:"comments"`
	Tags      []string  `json:"tags" bson:"tags"`
	Location  string    `json:"location,omitempty" bson:"location,omitempty"`
	PetType   PetType   `json:"pet_type,omitempty" bson:"pet_type,omitempty"`
	IsPublic  bool      `json:"is_public" bson:"is_public"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// LikedBy reports whether userID is present in the like set.
func (p *Post) LikedBy(userID string) bool {
	for _, id := range p.Likes {
		if id == userID {
			return true
		}
	}
	return false
}
