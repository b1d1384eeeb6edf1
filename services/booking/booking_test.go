package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"agendapro/models"
	"agendapro/utils"

	"github.com/google/uuid"
)

// fakeApptStore is an in-memory AppointmentRepository that enforces the
// overlap rule on insert the way the Mongo transaction does.
type fakeApptStore struct {
	appts      []models.Appointment
	createErr  error
	eventCalls int
}

func (f *fakeApptStore) CreateIfFree(_ context.Context, appt *models.Appointment) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.appts {
		if existing.Status == models.StatusCanceled {
			continue
		}
		if existing.Overlaps(appt.StartTime, appt.EndTime) {
			return utils.ConflictError("time slot is no longer available, please pick another one")
		}
	}
	f.appts = append(f.appts, *appt)
	return nil
}

func (f *fakeApptStore) FindOverlapping(_ context.Context, _ string, start, end time.Time, excludeID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appts {
		if a.ID == excludeID || a.Status == models.StatusCanceled {
			continue
		}
		if a.Overlaps(start, end) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeApptStore) ListForDay(_ context.Context, _ string, _, _ time.Time) ([]models.Appointment, error) {
	return f.appts, nil
}

func (f *fakeApptStore) List(_ context.Context, _, status string) ([]models.Appointment, error) {
	if status == "" {
		return f.appts, nil
	}
	var out []models.Appointment
	for _, a := range f.appts {
		if a.Status == status {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeApptStore) GetByID(_ context.Context, _, apptID string) (*models.Appointment, error) {
	for i := range f.appts {
		if f.appts[i].ID == apptID {
			appt := f.appts[i]
			return &appt, nil
		}
	}
	return nil, utils.NotFoundError("appointment not found")
}

func (f *fakeApptStore) UpdateStatus(_ context.Context, _, apptID, status string) error {
	for i := range f.appts {
		if f.appts[i].ID == apptID {
			f.appts[i].Status = status
			return nil
		}
	}
	return utils.NotFoundError("appointment not found")
}

func (f *fakeApptStore) SetGoogleEventID(_ context.Context, apptID, eventID string) error {
	f.eventCalls++
	for i := range f.appts {
		if f.appts[i].ID == apptID {
			f.appts[i].GoogleEventID = eventID
			return nil
		}
	}
	return utils.NotFoundError("appointment not found")
}

// fakeStudentStore keys students by (professional, email) with the same
// uniqueness the index enforces. conflictOnce simulates a lost insert race.
type fakeStudentStore struct {
	students     []models.Student
	conflictOnce bool
	raceWinner   *models.Student
}

func (f *fakeStudentStore) Create(_ context.Context, student *models.Student) error {
	if f.conflictOnce {
		f.conflictOnce = false
		if f.raceWinner != nil {
			f.students = append(f.students, *f.raceWinner)
		}
		return utils.ConflictError("student already exists")
	}
	for _, s := range f.students {
		if s.ProfessionalID == student.ProfessionalID && s.Email == student.Email {
			return utils.ConflictError("student already exists")
		}
	}
	student.ID = uuid.New().String()
	f.students = append(f.students, *student)
	return nil
}

func (f *fakeStudentStore) FindByEmail(_ context.Context, professionalID, email string) (*models.Student, error) {
	for i := range f.students {
		if f.students[i].ProfessionalID == professionalID && f.students[i].Email == email {
			s := f.students[i]
			return &s, nil
		}
	}
	return nil, nil
}

func (f *fakeStudentStore) ListByProfessional(_ context.Context, _ string) ([]models.Student, error) {
	return f.students, nil
}

func (f *fakeStudentStore) GetByID(_ context.Context, _, studentID string) (*models.Student, error) {
	for i := range f.students {
		if f.students[i].ID == studentID {
			s := f.students[i]
			return &s, nil
		}
	}
	return nil, utils.NotFoundError("student not found")
}

func (f *fakeStudentStore) Update(_ context.Context, _ string, student *models.Student) error {
	for i := range f.students {
		if f.students[i].ID == student.ID {
			f.students[i] = *student
			return nil
		}
	}
	return utils.NotFoundError("student not found")
}

func (f *fakeStudentStore) Delete(_ context.Context, _, studentID string) error {
	for i := range f.students {
		if f.students[i].ID == studentID {
			f.students = append(f.students[:i], f.students[i+1:]...)
			return nil
		}
	}
	return utils.NotFoundError("student not found")
}

type fakeServiceStore struct{}

func (fakeServiceStore) Create(_ context.Context, _ *models.Service) error { return nil }
func (fakeServiceStore) GetByID(_ context.Context, serviceID string) (*models.Service, error) {
	return &models.Service{ID: serviceID, Name: "Math Tutoring", DurationMinutes: 60}, nil
}
func (fakeServiceStore) ListByProfessional(_ context.Context, _ string) ([]models.Service, error) {
	return nil, nil
}
func (fakeServiceStore) ListActive(_ context.Context, _ string) ([]models.Service, error) {
	return nil, nil
}
func (fakeServiceStore) Update(_ context.Context, _ string, _ *models.Service) error { return nil }
func (fakeServiceStore) Delete(_ context.Context, _, _ string) error                 { return nil }

// fakeCalendar records event lifecycle calls.
type fakeCalendar struct {
	created   int
	deleted   []string
	createErr error
}

func (f *fakeCalendar) CreateEvent(_ context.Context, _ *models.Appointment, _ string) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.created++
	return "evt-123", nil
}

func (f *fakeCalendar) DeleteEvent(_ context.Context, eventID string) error {
	f.deleted = append(f.deleted, eventID)
	return nil
}

type fakeReminders struct {
	scheduled []string
}

func (f *fakeReminders) Schedule(appt *models.Appointment) error {
	f.scheduled = append(f.scheduled, appt.ID)
	return nil
}

func newBookingService() (*DefaultBookingService, *fakeApptStore, *fakeStudentStore, *fakeCalendar, *fakeReminders) {
	appts := &fakeApptStore{}
	students := &fakeStudentStore{}
	cal := &fakeCalendar{}
	rem := &fakeReminders{}
	svc := &DefaultBookingService{
		Appointments: appts,
		Students:     students,
		Services:     fakeServiceStore{},
		Calendar:     cal,
		Reminders:    rem,
	}
	return svc, appts, students, cal, rem
}

func slotAt(hour int) (time.Time, time.Time) {
	start := time.Date(2025, 6, 2, hour, 0, 0, 0, time.UTC)
	return start, start.Add(time.Hour)
}

func bookingRequest(hour int) models.AppointmentCreate {
	start, end := slotAt(hour)
	return models.AppointmentCreate{
		ProfessionalID: "prof-1",
		ServiceID:      "svc-60",
		StudentName:    "Ada Lovelace",
		StudentEmail:   "ada@example.com",
		StudentPhone:   "+555-0100",
		StartTime:      start,
		EndTime:        end,
	}
}

func TestCreatePublicAppointment(t *testing.T) {
	svc, appts, students, cal, rem := newBookingService()

	appt, err := svc.CreatePublicAppointment(context.Background(), bookingRequest(9))
	if err != nil {
		t.Fatalf("CreatePublicAppointment: %v", err)
	}

	if appt.Status != models.StatusPending {
		t.Errorf("new appointment status = %q, want pending", appt.Status)
	}
	if appt.StudentID == "" {
		t.Error("appointment must reference the upserted student")
	}
	if len(students.students) != 1 {
		t.Fatalf("expected 1 student on the roster, got %d", len(students.students))
	}
	if len(appts.appts) != 1 {
		t.Fatalf("expected 1 stored appointment, got %d", len(appts.appts))
	}
	if cal.created != 1 {
		t.Errorf("expected 1 calendar event, got %d", cal.created)
	}
	if appt.GoogleEventID != "evt-123" {
		t.Errorf("event ID not attached, got %q", appt.GoogleEventID)
	}
	if len(rem.scheduled) != 1 || rem.scheduled[0] != appt.ID {
		t.Errorf("reminder not scheduled for %s, got %v", appt.ID, rem.scheduled)
	}
}

func TestCreatePublicAppointmentNormalizesToUTC(t *testing.T) {
	svc, _, _, _, _ := newBookingService()

	loc := time.FixedZone("UTC-5", -5*60*60)
	in := bookingRequest(9)
	in.StartTime = time.Date(2025, 6, 2, 9, 0, 0, 0, loc)
	in.EndTime = time.Date(2025, 6, 2, 10, 0, 0, 0, loc)

	appt, err := svc.CreatePublicAppointment(context.Background(), in)
	if err != nil {
		t.Fatalf("CreatePublicAppointment: %v", err)
	}
	if appt.StartTime.Location() != time.UTC {
		t.Errorf("start stored in %v, want UTC", appt.StartTime.Location())
	}
	if appt.StartTime.Hour() != 14 {
		t.Errorf("09:00 UTC-5 should be stored as 14:00 UTC, got %02d:00", appt.StartTime.Hour())
	}
}

func TestCreatePublicAppointmentRejectsEmptyInterval(t *testing.T) {
	svc, appts, students, _, _ := newBookingService()

	in := bookingRequest(9)
	in.EndTime = in.StartTime
	_, err := svc.CreatePublicAppointment(context.Background(), in)
	if utils.ErrorCode(err) != utils.CodeValidation {
		t.Fatalf("expected validation error for start == end, got %v", err)
	}
	if len(appts.appts) != 0 || len(students.students) != 0 {
		t.Fatal("invalid request must not touch the datastore")
	}
}

func TestCreatePublicAppointmentRejectsOverlap(t *testing.T) {
	svc, appts, _, cal, _ := newBookingService()

	if _, err := svc.CreatePublicAppointment(context.Background(), bookingRequest(9)); err != nil {
		t.Fatalf("first booking: %v", err)
	}

	// Second client tries 09:30-10:30, overlapping the 09:00-10:00 booking.
	in := bookingRequest(9)
	in.StudentEmail = "other@example.com"
	in.StartTime = in.StartTime.Add(30 * time.Minute)
	in.EndTime = in.EndTime.Add(30 * time.Minute)
	_, err := svc.CreatePublicAppointment(context.Background(), in)
	if utils.ErrorCode(err) != utils.CodeConflict {
		t.Fatalf("expected conflict error, got %v", err)
	}
	if len(appts.appts) != 1 {
		t.Fatalf("conflicting booking must not be stored, have %d appointments", len(appts.appts))
	}
	if cal.created != 1 {
		t.Errorf("no calendar event for the rejected booking, got %d", cal.created)
	}
}

func TestCreatePublicAppointmentAdjacentSlotsAllowed(t *testing.T) {
	svc, appts, _, _, _ := newBookingService()

	if _, err := svc.CreatePublicAppointment(context.Background(), bookingRequest(9)); err != nil {
		t.Fatalf("first booking: %v", err)
	}
	// Back-to-back 10:00-11:00 shares only the boundary instant.
	if _, err := svc.CreatePublicAppointment(context.Background(), bookingRequest(10)); err != nil {
		t.Fatalf("adjacent booking must succeed: %v", err)
	}
	if len(appts.appts) != 2 {
		t.Fatalf("expected 2 appointments, got %d", len(appts.appts))
	}
}

func TestCreatePublicAppointmentCanceledSlotRebookable(t *testing.T) {
	svc, appts, _, _, _ := newBookingService()
	ctx := context.Background()

	first, err := svc.CreatePublicAppointment(ctx, bookingRequest(9))
	if err != nil {
		t.Fatalf("first booking: %v", err)
	}
	if _, err := svc.UpdateAppointmentStatus(ctx, "prof-1", first.ID, models.StatusCanceled); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	in := bookingRequest(9)
	in.StudentEmail = "other@example.com"
	if _, err := svc.CreatePublicAppointment(ctx, in); err != nil {
		t.Fatalf("canceled slot must be bookable again: %v", err)
	}
	if len(appts.appts) != 2 {
		t.Fatalf("expected 2 appointments, got %d", len(appts.appts))
	}
}

func TestCreatePublicAppointmentSurvivesCalendarOutage(t *testing.T) {
	svc, appts, _, cal, _ := newBookingService()
	cal.createErr = errors.New("calendar API down")

	appt, err := svc.CreatePublicAppointment(context.Background(), bookingRequest(9))
	if err != nil {
		t.Fatalf("booking must succeed despite calendar failure: %v", err)
	}
	if appt.GoogleEventID != "" {
		t.Errorf("no event ID expected on failure, got %q", appt.GoogleEventID)
	}
	if len(appts.appts) != 1 {
		t.Fatalf("appointment must still be stored, got %d", len(appts.appts))
	}
}

func TestUpsertStudentIsIdempotent(t *testing.T) {
	svc, _, students, _, _ := newBookingService()
	ctx := context.Background()

	first, err := svc.UpsertStudent(ctx, "prof-1", "Ada Lovelace", "ada@example.com", "+555-0100")
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	// Repeat booking with a different display name keeps the stored record.
	second, err := svc.UpsertStudent(ctx, "prof-1", "A. Lovelace", "ada@example.com", "+555-0199")
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if first != second {
		t.Fatalf("same email must resolve to the same student: %s vs %s", first, second)
	}
	if len(students.students) != 1 {
		t.Fatalf("expected 1 student, got %d", len(students.students))
	}
	if students.students[0].FullName != "Ada Lovelace" {
		t.Errorf("stored name must not be overwritten, got %q", students.students[0].FullName)
	}
}

func TestUpsertStudentScopedPerProfessional(t *testing.T) {
	svc, _, students, _, _ := newBookingService()
	ctx := context.Background()

	a, err := svc.UpsertStudent(ctx, "prof-1", "Ada", "ada@example.com", "")
	if err != nil {
		t.Fatalf("upsert prof-1: %v", err)
	}
	b, err := svc.UpsertStudent(ctx, "prof-2", "Ada", "ada@example.com", "")
	if err != nil {
		t.Fatalf("upsert prof-2: %v", err)
	}
	if a == b {
		t.Fatal("the same email under different professionals must be distinct students")
	}
	if len(students.students) != 2 {
		t.Fatalf("expected 2 students, got %d", len(students.students))
	}
}

func TestUpsertStudentRecoversFromLostInsertRace(t *testing.T) {
	svc, _, students, _, _ := newBookingService()
	students.conflictOnce = true
	students.raceWinner = &models.Student{
		ID:             "winner-1",
		ProfessionalID: "prof-1",
		FullName:       "Ada Lovelace",
		Email:          "ada@example.com",
	}

	id, err := svc.UpsertStudent(context.Background(), "prof-1", "Ada Lovelace", "ada@example.com", "")
	if err != nil {
		t.Fatalf("upsert must recover from a duplicate-key race: %v", err)
	}
	if id != "winner-1" {
		t.Fatalf("expected the winner's ID, got %s", id)
	}
}

func TestUpdateAppointmentStatus(t *testing.T) {
	svc, _, _, cal, _ := newBookingService()
	ctx := context.Background()

	appt, err := svc.CreatePublicAppointment(ctx, bookingRequest(9))
	if err != nil {
		t.Fatalf("booking: %v", err)
	}

	confirmed, err := svc.UpdateAppointmentStatus(ctx, "prof-1", appt.ID, models.StatusConfirmed)
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if confirmed.Status != models.StatusConfirmed {
		t.Errorf("status = %q, want confirmed", confirmed.Status)
	}

	canceled, err := svc.UpdateAppointmentStatus(ctx, "prof-1", appt.ID, models.StatusCanceled)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if canceled.Status != models.StatusCanceled {
		t.Errorf("status = %q, want canceled", canceled.Status)
	}
	if len(cal.deleted) != 1 || cal.deleted[0] != "evt-123" {
		t.Errorf("cancellation must remove the synced calendar event, got %v", cal.deleted)
	}
}

func TestUpdateAppointmentStatusCanceledIsTerminal(t *testing.T) {
	svc, _, _, _, _ := newBookingService()
	ctx := context.Background()

	appt, err := svc.CreatePublicAppointment(ctx, bookingRequest(9))
	if err != nil {
		t.Fatalf("booking: %v", err)
	}
	if _, err := svc.UpdateAppointmentStatus(ctx, "prof-1", appt.ID, models.StatusCanceled); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	for _, target := range []string{models.StatusConfirmed, models.StatusCanceled} {
		if _, err := svc.UpdateAppointmentStatus(ctx, "prof-1", appt.ID, target); utils.ErrorCode(err) != utils.CodeConflict {
			t.Errorf("transition canceled -> %s: expected conflict, got %v", target, err)
		}
	}
}

func TestUpdateAppointmentStatusRejectsUnknownTarget(t *testing.T) {
	svc, _, _, _, _ := newBookingService()

	_, err := svc.UpdateAppointmentStatus(context.Background(), "prof-1", "whatever", "pending")
	if utils.ErrorCode(err) != utils.CodeValidation {
		t.Fatalf("expected validation error for target status pending, got %v", err)
	}
}

func TestListAppointmentsStatusFilter(t *testing.T) {
	svc, _, _, _, _ := newBookingService()
	ctx := context.Background()

	if _, err := svc.CreatePublicAppointment(ctx, bookingRequest(9)); err != nil {
		t.Fatalf("booking: %v", err)
	}
	second, err := svc.CreatePublicAppointment(ctx, bookingRequest(11))
	if err != nil {
		t.Fatalf("booking: %v", err)
	}
	if _, err := svc.UpdateAppointmentStatus(ctx, "prof-1", second.ID, models.StatusConfirmed); err != nil {
		t.Fatalf("confirm: %v", err)
	}

	pending, err := svc.ListAppointments(ctx, "prof-1", models.StatusPending)
	if err != nil {
		t.Fatalf("list pending: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("expected 1 pending appointment, got %d", len(pending))
	}

	if _, err := svc.ListAppointments(ctx, "prof-1", "rescheduled"); utils.ErrorCode(err) != utils.CodeValidation {
		t.Fatalf("expected validation error for unknown filter, got %v", err)
	}
}
