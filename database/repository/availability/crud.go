package availabilityRepo

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

type mongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo builds the repository and ensures its indexes.
func NewMongoAvailabilityRepo(db *mongo.Database) AvailabilityRepository {
	repo := &mongoAvailabilityRepo{coll: db.Collection("availabilities")}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Sugar().Fatalf("availability repo: %v", err)
	}
	return repo
}

func (r *mongoAvailabilityRepo) Create(ctx context.Context, block *models.AvailabilityBlock) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if block.ID == "" {
		block.ID = uuid.New().String()
	}
	block.CreatedAt = time.Now().UTC()

	if _, err := r.coll.InsertOne(ctx, block); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return utils.ConflictError("this availability block already exists")
		}
		return fmt.Errorf("failed to create availability block: %w", err)
	}
	return nil
}

func (r *mongoAvailabilityRepo) ListByProfessional(ctx context.Context, professionalID string) ([]models.AvailabilityBlock, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"professionalId": professionalID}
	opts := options.Find().SetSort(bson.D{{Key: "dayOfWeek", Value: 1}, {Key: "startMinute", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list availability blocks: %w", err)
	}
	defer cursor.Close(ctx)

	var blocks []models.AvailabilityBlock
	if err := cursor.All(ctx, &blocks); err != nil {
		return nil, fmt.Errorf("failed to decode availability blocks: %w", err)
	}
	return blocks, nil
}

func (r *mongoAvailabilityRepo) ListForDay(ctx context.Context, professionalID string, dayOfWeek int) ([]models.AvailabilityBlock, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"professionalId": professionalID,
		"dayOfWeek":      dayOfWeek,
		"isActive":       true,
	}
	opts := options.Find().SetSort(bson.D{{Key: "startMinute", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list day availability: %w", err)
	}
	defer cursor.Close(ctx)

	var blocks []models.AvailabilityBlock
	if err := cursor.All(ctx, &blocks); err != nil {
		return nil, fmt.Errorf("failed to decode day availability: %w", err)
	}
	return blocks, nil
}

func (r *mongoAvailabilityRepo) Delete(ctx context.Context, professionalID, blockID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": blockID, "professionalId": professionalID})
	if err != nil {
		return fmt.Errorf("failed to delete availability block: %w", err)
	}
	if res.DeletedCount == 0 {
		return utils.NotFoundError("availability block not found")
	}
	return nil
}

// ReplaceAll runs delete-then-insert inside one transaction so a failure
// between the two steps cannot leave the professional with an empty schedule.
func (r *mongoAvailabilityRepo) ReplaceAll(ctx context.Context, professionalID string, blocks []models.AvailabilityBlock) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	now := time.Now().UTC()
	docs := make([]interface{}, len(blocks))
	for i := range blocks {
		if blocks[i].ID == "" {
			blocks[i].ID = uuid.New().String()
		}
		blocks[i].ProfessionalID = professionalID
		blocks[i].CreatedAt = now
		docs[i] = blocks[i]
	}

	txnFn := func(sc mongo.SessionContext) error {
		if _, err := r.coll.DeleteMany(sc, bson.M{"professionalId": professionalID}); err != nil {
			return fmt.Errorf("delete existing blocks failed: %w", err)
		}
		if len(docs) == 0 {
			return nil
		}
		if _, err := r.coll.InsertMany(sc, docs); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return utils.ConflictError("duplicate availability block in replacement set")
			}
			return fmt.Errorf("insert new blocks failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return err
	}
	return nil
}
