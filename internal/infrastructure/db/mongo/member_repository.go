package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/healthhub/gym-admin/internal/core/domain"
)

// MongoMemberRepository serves the read-only listing views over the same
// users collection the auth repository writes to.
type MongoMemberRepository struct {
	coll *mongo.Collection
}

func NewMemberRepository(db *mongo.Database) *MongoMemberRepository {
	return &MongoMemberRepository{coll: db.Collection(usersCollection)}
}

func rolesFilter(roles []domain.Role) bson.M {
	vals := make([]string, len(roles))
	for i, r := range roles {
		vals[i] = string(r)
	}
	return bson.M{"role": bson.M{"$in": vals}}
}

func (r *MongoMemberRepository) ListByRoles(ctx context.Context, roles []domain.Role, page domain.Page) ([]domain.User, int, error) {
	filter := rolesFilter(roles)

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count members: %w", err)
	}

	opts := options.Find().
		SetSort(bson.M{"created_at": -1}).
		SetSkip(int64(page.Offset())).
		SetLimit(int64(page.Limit))

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list members: %w", err)
	}
	defer cursor.Close(ctx)

	var users []domain.User
	for cursor.Next(ctx) {
		var mu mongoUser
		if err := cursor.Decode(&mu); err != nil {
			return nil, 0, fmt.Errorf("decode member: %w", err)
		}
		users = append(users, *fromMongoUser(mu))
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate members: %w", err)
	}

	return users, int(total), nil
}

func (r *MongoMemberRepository) CountByRole(ctx context.Context, role domain.Role) (int, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"role": string(role)})
	if err != nil {
		return 0, fmt.Errorf("count by role: %w", err)
	}
	return int(n), nil
}

func (r *MongoMemberRepository) CountByRoleStatus(ctx context.Context, role domain.Role, status domain.MemberStatus) (int, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"role": string(role), "status": string(status)})
	if err != nil {
		return 0, fmt.Errorf("count by role and status: %w", err)
	}
	return int(n), nil
}

func (r *MongoMemberRepository) CountAvailableConsultants(ctx context.Context) (int, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{
		"role":         string(domain.RoleConsultant),
		"availability": string(domain.AvailabilityAvailable),
	})
	if err != nil {
		return 0, fmt.Errorf("count available consultants: %w", err)
	}
	return int(n), nil
}
