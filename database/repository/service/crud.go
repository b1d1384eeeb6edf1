package serviceRepo

import (
	"context"
	"fmt"
	"time"

	"agendapro/models"
	"agendapro/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo builds the repository and ensures its indexes.
func NewMongoServiceRepo(db *mongo.Database) ServiceRepository {
	repo := &mongoServiceRepo{coll: db.Collection("services")}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Sugar().Fatalf("service repo: %v", err)
	}
	return repo
}

func (r *mongoServiceRepo) Create(ctx context.Context, svc *models.Service) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if svc.ID == "" {
		svc.ID = uuid.New().String()
	}
	svc.CreatedAt = time.Now().UTC()

	if _, err := r.coll.InsertOne(ctx, svc); err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	return nil
}

func (r *mongoServiceRepo) GetByID(ctx context.Context, serviceID string) (*models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var svc models.Service
	err := r.coll.FindOne(ctx, bson.M{"id": serviceID}).Decode(&svc)
	if err == mongo.ErrNoDocuments {
		return nil, utils.NotFoundError("service not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service: %w", err)
	}
	return &svc, nil
}

func (r *mongoServiceRepo) ListByProfessional(ctx context.Context, professionalID string) ([]models.Service, error) {
	return r.list(ctx, bson.M{"professionalId": professionalID})
}

func (r *mongoServiceRepo) ListActive(ctx context.Context, professionalID string) ([]models.Service, error) {
	return r.list(ctx, bson.M{"professionalId": professionalID, "isActive": true})
}

func (r *mongoServiceRepo) list(ctx context.Context, filter bson.M) ([]models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode services: %w", err)
	}
	return services, nil
}

func (r *mongoServiceRepo) Update(ctx context.Context, professionalID string, svc *models.Service) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": svc.ID, "professionalId": professionalID},
		bson.M{"$set": svc},
	)
	if err != nil {
		return fmt.Errorf("failed to update service: %w", err)
	}
	if res.MatchedCount == 0 {
		return utils.NotFoundError("service not found")
	}
	return nil
}

func (r *mongoServiceRepo) Delete(ctx context.Context, professionalID, serviceID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": serviceID, "professionalId": professionalID})
	if err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}
	if res.DeletedCount == 0 {
		return utils.NotFoundError("service not found")
	}
	return nil
}
