package studentRepo

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

type mongoStudentRepo struct {
	coll *mongo.Collection
}

// NewMongoStudentRepo builds the repository and ensures its indexes.
func NewMongoStudentRepo(db *mongo.Database) StudentRepository {
	repo := &mongoStudentRepo{coll: db.Collection("students")}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Sugar().Fatalf("student repo: %v", err)
	}
	return repo
}

func (r *mongoStudentRepo) Create(ctx context.Context, student *models.Student) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if student.ID == "" {
		student.ID = uuid.New().String()
	}
	student.CreatedAt = time.Now().UTC()

	if _, err := r.coll.InsertOne(ctx, student); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return utils.ConflictError("a student with this email already exists")
		}
		return fmt.Errorf("failed to create student: %w", err)
	}
	return nil
}

func (r *mongoStudentRepo) FindByEmail(ctx context.Context, professionalID, email string) (*models.Student, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var student models.Student
	err := r.coll.FindOne(ctx, bson.M{"professionalId": professionalID, "email": email}).Decode(&student)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up student by email: %w", err)
	}
	return &student, nil
}

func (r *mongoStudentRepo) ListByProfessional(ctx context.Context, professionalID string) ([]models.Student, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "fullName", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"professionalId": professionalID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	defer cursor.Close(ctx)

	var students []models.Student
	if err := cursor.All(ctx, &students); err != nil {
		return nil, fmt.Errorf("failed to decode students: %w", err)
	}
	return students, nil
}

func (r *mongoStudentRepo) GetByID(ctx context.Context, professionalID, studentID string) (*models.Student, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var student models.Student
	err := r.coll.FindOne(ctx, bson.M{"id": studentID, "professionalId": professionalID}).Decode(&student)
	if err == mongo.ErrNoDocuments {
		return nil, utils.NotFoundError("student not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch student: %w", err)
	}
	return &student, nil
}

func (r *mongoStudentRepo) Update(ctx context.Context, professionalID string, student *models.Student) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": student.ID, "professionalId": professionalID},
		bson.M{"$set": student},
	)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return utils.ConflictError("a student with this email already exists")
		}
		return fmt.Errorf("failed to update student: %w", err)
	}
	if res.MatchedCount == 0 {
		return utils.NotFoundError("student not found")
	}
	return nil
}

func (r *mongoStudentRepo) Delete(ctx context.Context, professionalID, studentID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": studentID, "professionalId": professionalID})
	if err != nil {
		return fmt.Errorf("failed to delete student: %w", err)
	}
	if res.DeletedCount == 0 {
		return utils.NotFoundError("student not found")
	}
	return nil
}
