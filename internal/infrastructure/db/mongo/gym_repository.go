package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/healthhub/gym-admin/internal/core/domain"
)

const gymsCollection = "gyms"

type MongoGymRepository struct {
	coll *mongo.Collection
}

func NewGymRepository(db *mongo.Database) *MongoGymRepository {
	return &MongoGymRepository{coll: db.Collection(gymsCollection)}
}

type mongoGym struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	GymID     string             `bson:"gym_id"`
	Name      string             `bson:"name"`
	Address   string             `bson:"address"`
	Phone     string             `bson:"phone"`
	Email     string             `bson:"email"`
	Location  domain.Location    `bson:"location"`
	Amenities []string           `bson:"amenities"`
	Admin     domain.AdminRef    `bson:"admin"`
	Price     float64            `bson:"price,omitempty"`
	Rating    float64            `bson:"rating,omitempty"`
	CreatedAt int64              `bson:"created_at"`
	UpdatedAt int64              `bson:"updated_at"`
}

func (r *MongoGymRepository) Create(ctx context.Context, gym *domain.Gym) (*domain.Gym, error) {
	doc := mongoGym{
		GymID:     gym.GymID,
		Name:      gym.Name,
		Address:   gym.Address,
		Phone:     gym.Phone,
		Email:     gym.Email,
		Location:  gym.Location,
		Amenities: gym.Amenities,
		Admin:     gym.Admin,
		Price:     gym.Price,
		Rating:    gym.Rating,
		CreatedAt: gym.CreatedAt.Unix(),
		UpdatedAt: gym.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrGymExists
		}
		return nil, fmt.Errorf("insert gym: %w", err)
	}

	created := *gym
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MongoGymRepository) List(ctx context.Context) ([]domain.Gym, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"created_at": -1}))
	if err != nil {
		return nil, fmt.Errorf("list gyms: %w", err)
	}
	defer cursor.Close(ctx)

	var gyms []domain.Gym
	for cursor.Next(ctx) {
		var mg mongoGym
		if err := cursor.Decode(&mg); err != nil {
			return nil, fmt.Errorf("decode gym: %w", err)
		}
		gyms = append(gyms, fromMongoGym(mg))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate gyms: %w", err)
	}
	return gyms, nil
}

func (r *MongoGymRepository) Count(ctx context.Context) (int, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count gyms: %w", err)
	}
	return int(n), nil
}

func fromMongoGym(mg mongoGym) domain.Gym {
	return domain.Gym{
		ID:        mg.ID.Hex(),
		GymID:     mg.GymID,
		Name:      mg.Name,
		Address:   mg.Address,
		Phone:     mg.Phone,
		Email:     mg.Email,
		Location:  mg.Location,
		Amenities: mg.Amenities,
		Admin:     mg.Admin,
		Price:     mg.Price,
		Rating:    mg.Rating,
		CreatedAt: unixToTime(mg.CreatedAt),
		UpdatedAt: unixToTime(mg.UpdatedAt),
	}
}
