package availability

import (
	"context"
	"testing"

	"agendapro/models"
	"agendapro/utils"
)

func TestCreateBlockValidation(t *testing.T) {
	svc := newTestService(&fakeBlockRepo{}, &fakeApptRepo{})
	ctx := context.Background()

	cases := []struct {
		name string
		in   models.AvailabilityCreate
	}{
		{"day of week too large", models.AvailabilityCreate{DayOfWeek: 7, StartTime: "08:00", EndTime: "12:00"}},
		{"negative day of week", models.AvailabilityCreate{DayOfWeek: -1, StartTime: "08:00", EndTime: "12:00"}},
		{"start equals end", models.AvailabilityCreate{DayOfWeek: 1, StartTime: "08:00", EndTime: "08:00"}},
		{"start after end", models.AvailabilityCreate{DayOfWeek: 1, StartTime: "12:00", EndTime: "08:00"}},
		{"malformed start", models.AvailabilityCreate{DayOfWeek: 1, StartTime: "morning", EndTime: "12:00"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.CreateBlock(ctx, testProfessional, tc.in); utils.ErrorCode(err) != utils.CodeValidation {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestCreateBlockDuplicateRejected(t *testing.T) {
	svc := newTestService(&fakeBlockRepo{}, &fakeApptRepo{})
	ctx := context.Background()
	in := models.AvailabilityCreate{DayOfWeek: 1, StartTime: "08:00", EndTime: "12:00"}

	if _, err := svc.CreateBlock(ctx, testProfessional, in); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := svc.CreateBlock(ctx, testProfessional, in); utils.ErrorCode(err) != utils.CodeConflict {
		t.Fatalf("expected conflict for duplicate block, got %v", err)
	}
}

func TestBulkReplaceValidatesWholeSet(t *testing.T) {
	blocks := &fakeBlockRepo{blocks: []models.AvailabilityBlock{
		{ID: "old", ProfessionalID: testProfessional, DayOfWeek: 2, StartMinute: 540, EndMinute: 600, IsActive: true},
	}}
	svc := newTestService(blocks, &fakeApptRepo{})

	in := []models.AvailabilityCreate{
		{DayOfWeek: 1, StartTime: "08:00", EndTime: "12:00"},
		{DayOfWeek: 1, StartTime: "14:00", EndTime: "13:00"}, // invalid
	}
	if _, err := svc.BulkReplace(context.Background(), testProfessional, in); utils.ErrorCode(err) != utils.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	// The old schedule must survive a rejected replacement.
	if len(blocks.blocks) != 1 || blocks.blocks[0].ID != "old" {
		t.Fatal("rejected bulk replace must not touch the stored schedule")
	}
}

func TestBulkReplaceSwapsSchedule(t *testing.T) {
	blocks := &fakeBlockRepo{blocks: []models.AvailabilityBlock{
		{ID: "old", ProfessionalID: testProfessional, DayOfWeek: 2, StartMinute: 540, EndMinute: 600, IsActive: true},
	}}
	svc := newTestService(blocks, &fakeApptRepo{})

	in := []models.AvailabilityCreate{
		{DayOfWeek: 1, StartTime: "08:00", EndTime: "12:00"},
		{DayOfWeek: 3, StartTime: "09:00", EndTime: "17:00"},
	}
	out, err := svc.BulkReplace(context.Background(), testProfessional, in)
	if err != nil {
		t.Fatalf("BulkReplace: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 blocks after replacement, got %d", len(out))
	}
	for _, b := range out {
		if b.ID == "old" {
			t.Fatal("old schedule must be gone after replacement")
		}
		if !b.IsActive {
			t.Fatal("replacement blocks must be active")
		}
	}
}
