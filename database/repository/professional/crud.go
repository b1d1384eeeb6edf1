package professionalRepo

import (
	"context"
	"fmt"
	"time"

	"agendapro/models"
	"agendapro/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoProfessionalRepo struct {
	coll *mongo.Collection
}

// NewMongoProfessionalRepo builds the repository and ensures its indexes.
func NewMongoProfessionalRepo(db *mongo.Database) ProfessionalRepository {
	repo := &mongoProfessionalRepo{coll: db.Collection("professionals")}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Sugar().Fatalf("professional repo: %v", err)
	}
	return repo
}

func (r *mongoProfessionalRepo) Create(ctx context.Context, prof *models.Professional) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now().UTC()
	prof.CreatedAt = now
	prof.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, prof); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return utils.ConflictError("an account with this email already exists")
		}
		return fmt.Errorf("failed to create professional: %w", err)
	}
	return nil
}

func (r *mongoProfessionalRepo) GetByID(ctx context.Context, id string) (*models.Professional, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

func (r *mongoProfessionalRepo) GetByEmail(ctx context.Context, email string) (*models.Professional, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *mongoProfessionalRepo) GetBySlug(ctx context.Context, slug string) (*models.Professional, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

func (r *mongoProfessionalRepo) findOne(ctx context.Context, filter bson.M) (*models.Professional, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var prof models.Professional
	err := r.coll.FindOne(ctx, filter).Decode(&prof)
	if err == mongo.ErrNoDocuments {
		return nil, utils.NotFoundError("professional not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch professional: %w", err)
	}
	return &prof, nil
}

func (r *mongoProfessionalRepo) Update(ctx context.Context, prof *models.Professional) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	prof.UpdatedAt = time.Now().UTC()
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": prof.ID}, bson.M{"$set": prof})
	if err != nil {
		return fmt.Errorf("failed to update professional: %w", err)
	}
	if res.MatchedCount == 0 {
		return utils.NotFoundError("professional not found")
	}
	return nil
}
