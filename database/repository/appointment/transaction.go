package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"agendapro/models"
	"agendapro/utils"

	"go.mongodb.org/mongo-driver/mongo"
)

// CreateIfFree re-checks the interval and inserts the appointment inside one
// transaction. Two concurrent bookings for overlapping intervals serialize
// here: the second transaction sees the first insert and aborts with a
// conflict, which keeps the no-double-booking invariant under load.
func (r *mongoAppointmentRepo) CreateIfFree(ctx context.Context, appt *models.Appointment) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		count, err := r.coll.CountDocuments(sc,
			overlapFilter(appt.ProfessionalID, appt.StartTime, appt.EndTime, ""))
		if err != nil {
			return fmt.Errorf("conflict check failed: %w", err)
		}
		if count > 0 {
			return utils.ConflictError("time slot is no longer available, please pick another one")
		}
		if _, err := r.coll.InsertOne(sc, appt); err != nil {
			return fmt.Errorf("insert appointment failed: %w", err)
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
