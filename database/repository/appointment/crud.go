package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"agendapro/models"
	"agendapro/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo builds the repository and ensures its indexes.
func NewMongoAppointmentRepo(db *mongo.Database) AppointmentRepository {
	repo := &mongoAppointmentRepo{coll: db.Collection("appointments")}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Sugar().Fatalf("appointment repo: %v", err)
	}
	return repo
}

// overlapFilter selects the professional's non-canceled appointments whose
// half-open interval intersects [start, end):
// startTime < end AND endTime > start.
func overlapFilter(professionalID string, start, end time.Time, excludeID string) bson.M {
	filter := bson.M{
		"professionalId": professionalID,
		"status":         bson.M{"$ne": models.StatusCanceled},
		"startTime":      bson.M{"$lt": end},
		"endTime":        bson.M{"$gt": start},
	}
	if excludeID != "" {
		filter["id"] = bson.M{"$ne": excludeID}
	}
	return filter
}

func (r *mongoAppointmentRepo) FindOverlapping(ctx context.Context, professionalID string, start, end time.Time, excludeID string) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, overlapFilter(professionalID, start, end, excludeID))
	if err != nil {
		return nil, fmt.Errorf("failed to query overlapping appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("failed to decode overlapping appointments: %w", err)
	}
	return appts, nil
}

func (r *mongoAppointmentRepo) ListForDay(ctx context.Context, professionalID string, dayStart, dayEnd time.Time) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"professionalId": professionalID,
		"status":         bson.M{"$ne": models.StatusCanceled},
		"startTime":      bson.M{"$gte": dayStart, "$lt": dayEnd},
	}
	opts := options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list day appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("failed to decode day appointments: %w", err)
	}
	return appts, nil
}

func (r *mongoAppointmentRepo) List(ctx context.Context, professionalID, status string) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"professionalId": professionalID}
	if status != "" {
		filter["status"] = status
	}
	opts := options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}
	return appts, nil
}

func (r *mongoAppointmentRepo) GetByID(ctx context.Context, professionalID, apptID string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var appt models.Appointment
	err := r.coll.FindOne(ctx, bson.M{"id": apptID, "professionalId": professionalID}).Decode(&appt)
	if err == mongo.ErrNoDocuments {
		return nil, utils.NotFoundError("appointment not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointment: %w", err)
	}
	return &appt, nil
}

func (r *mongoAppointmentRepo) UpdateStatus(ctx context.Context, professionalID, apptID, status string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": apptID, "professionalId": professionalID},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return fmt.Errorf("failed to update appointment status: %w", err)
	}
	if res.MatchedCount == 0 {
		return utils.NotFoundError("appointment not found")
	}
	return nil
}

func (r *mongoAppointmentRepo) SetGoogleEventID(ctx context.Context, apptID, eventID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.UpdateOne(ctx,
		bson.M{"id": apptID},
		bson.M{"$set": bson.M{"googleEventId": eventID}},
	)
	if err != nil {
		return fmt.Errorf("failed to attach calendar event: %w", err)
	}
	return nil
}
