package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"agendapro/config"
	"agendapro/models"
	"agendapro/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeAppointmentReminder = "appointment:reminder"

// reminderLeadTime is how long before the appointment start the reminder fires.
const reminderLeadTime = 24 * time.Hour

// ReminderPayload is the task body for a scheduled appointment reminder.
type ReminderPayload struct {
	AppointmentID  string    `json:"appointmentId"`
	ProfessionalID string    `json:"professionalId"`
	ClientName     string    `json:"clientName"`
	ClientEmail    string    `json:"clientEmail"`
	StartTime      time.Time `json:"startTime"`
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}
}

// ReminderQueue enqueues reminder tasks for future appointments.
type ReminderQueue struct {
	client *asynq.Client
}

// NewReminderQueue builds the asynq client for the reminder queue.
func NewReminderQueue() *ReminderQueue {
	return &ReminderQueue{client: asynq.NewClient(redisOpts())}
}

// Schedule enqueues a reminder due before the appointment starts. Bookings
// made inside the lead-time window get no reminder.
func (q *ReminderQueue) Schedule(appt *models.Appointment) error {
	dueAt := appt.StartTime.Add(-reminderLeadTime)
	if !dueAt.After(time.Now()) {
		return nil
	}

	payload, err := json.Marshal(ReminderPayload{
		AppointmentID:  appt.ID,
		ProfessionalID: appt.ProfessionalID,
		ClientName:     appt.ClientName,
		ClientEmail:    appt.ClientEmail,
		StartTime:      appt.StartTime,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}

	task := asynq.NewTask(TypeAppointmentReminder, payload)
	if _, err := q.client.Enqueue(task, asynq.ProcessAt(dueAt)); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}

// InitReminderWorker runs the async worker in background.
func InitReminderWorker() {
	logger := utils.GetLogger()

	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeAppointmentReminder, handleReminderTask)

	go func() {
		logger.Info("reminder worker starting")
		if err := srv.Run(mux); err != nil {
			logger.Error("reminder worker stopped", zap.Error(err))
		}
	}()
}

func handleReminderTask(ctx context.Context, t *asynq.Task) error {
	var payload ReminderPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal reminder payload: %w", err)
	}

	// Delivery channel (email/push) plugs in here; for now the reminder is
	// surfaced through the log stream.
	utils.GetLogger().Info("appointment reminder due",
		zap.String("appointmentID", payload.AppointmentID),
		zap.String("clientEmail", payload.ClientEmail),
		zap.Time("startTime", payload.StartTime))
	return nil
}
