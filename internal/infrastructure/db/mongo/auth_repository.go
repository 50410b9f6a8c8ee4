package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/healthhub/gym-admin/internal/core/domain"
)

const usersCollection = "users"

type MongoAuthRepository struct {
	coll *mongo.Collection
}

func NewAuthRepository(db *mongo.Database) *MongoAuthRepository {
	return &MongoAuthRepository{coll: db.Collection(usersCollection)}
}

type mongoUser struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Name           string             `bson:"name"`
	Email          string             `bson:"email"`
	Phone          string             `bson:"phone,omitempty"`
	PasswordHash   string             `bson:"password_hash,omitempty"`
	Role           string             `bson:"role"`
	Status         string             `bson:"status,omitempty"`
	Gym            *domain.GymRef     `bson:"gym,omitempty"`
	Specialization string             `bson:"specialization,omitempty"`
	Experience     int                `bson:"experience,omitempty"`
	Availability   string             `bson:"availability,omitempty"`
	CreatedAt      int64              `bson:"created_at"`
	UpdatedAt      int64              `bson:"updated_at"`
	LastActive     int64              `bson:"last_active,omitempty"`
}

func (r *MongoAuthRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	doc := toMongoUser(user)

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	created := *user
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MongoAuthRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var mu mongoUser
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&mu); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return fromMongoUser(mu), nil
}

func (r *MongoAuthRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	var mu mongoUser
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mu); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return fromMongoUser(mu), nil
}

func toMongoUser(user *domain.User) mongoUser {
	doc := mongoUser{
		Name:           user.Name,
		Email:          user.Email,
		Phone:          user.Phone,
		PasswordHash:   user.PasswordHash,
		Role:           string(user.Role),
		Status:         string(user.Status),
		Gym:            user.Gym,
		Specialization: user.Specialization,
		Experience:     user.Experience,
		Availability:   string(user.Availability),
		CreatedAt:      user.CreatedAt.Unix(),
		UpdatedAt:      user.UpdatedAt.Unix(),
	}
	if user.LastActive != nil {
		doc.LastActive = user.LastActive.Unix()
	}
	return doc
}

func fromMongoUser(mu mongoUser) *domain.User {
	role, err := domain.ParseRole(mu.Role)
	if err != nil {
		// Unknown stored role: surface as plain user rather than failing
		// the whole lookup.
		role = domain.RoleUser
	}

	user := &domain.User{
		ID:             mu.ID.Hex(),
		Name:           mu.Name,
		Email:          mu.Email,
		Phone:          mu.Phone,
		PasswordHash:   mu.PasswordHash,
		Role:           role,
		Status:         domain.MemberStatus(mu.Status),
		Gym:            mu.Gym,
		Specialization: mu.Specialization,
		Experience:     mu.Experience,
		Availability:   domain.Availability(mu.Availability),
		CreatedAt:      unixToTime(mu.CreatedAt),
		UpdatedAt:      unixToTime(mu.UpdatedAt),
	}
	if mu.LastActive != 0 {
		t := unixToTime(mu.LastActive)
		user.LastActive = &t
	}
	return user
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
