package availability

import (
	"context"
	"fmt"

	"agendapro/models"
	"agendapro/utils"

	"go.uber.org/zap"
)

func (s *DefaultAvailabilityService) ListBlocks(ctx context.Context, professionalID string) ([]models.AvailabilityBlock, error) {
	return s.Blocks.ListByProfessional(ctx, professionalID)
}

func (s *DefaultAvailabilityService) CreateBlock(ctx context.Context, professionalID string, in models.AvailabilityCreate) (*models.AvailabilityBlock, error) {
	block, err := buildBlock(professionalID, in)
	if err != nil {
		return nil, err
	}
	if err := s.Blocks.Create(ctx, block); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("availability block created",
		zap.String("professionalID", professionalID),
		zap.Int("dayOfWeek", block.DayOfWeek),
		zap.String("range", block.Label()))
	return block, nil
}

func (s *DefaultAvailabilityService) DeleteBlock(ctx context.Context, professionalID, blockID string) error {
	return s.Blocks.Delete(ctx, professionalID, blockID)
}

// BulkReplace validates the whole set up front, then swaps the schedule in
// one repository transaction.
func (s *DefaultAvailabilityService) BulkReplace(ctx context.Context, professionalID string, in []models.AvailabilityCreate) ([]models.AvailabilityBlock, error) {
	blocks := make([]models.AvailabilityBlock, 0, len(in))
	for _, item := range in {
		block, err := buildBlock(professionalID, item)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, *block)
	}

	if err := s.Blocks.ReplaceAll(ctx, professionalID, blocks); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("weekly schedule replaced",
		zap.String("professionalID", professionalID),
		zap.Int("blocks", len(blocks)))
	return s.Blocks.ListByProfessional(ctx, professionalID)
}

func buildBlock(professionalID string, in models.AvailabilityCreate) (*models.AvailabilityBlock, error) {
	if in.DayOfWeek < 0 || in.DayOfWeek > 6 {
		return nil, utils.ValidationError(fmt.Sprintf("day_of_week must be between 0 (Sunday) and 6, got %d", in.DayOfWeek))
	}
	start, err := utils.ParseClockTime(in.StartTime)
	if err != nil {
		return nil, utils.ValidationError(err.Error())
	}
	end, err := utils.ParseClockTime(in.EndTime)
	if err != nil {
		return nil, utils.ValidationError(err.Error())
	}
	if start >= end {
		return nil, utils.ValidationError(fmt.Sprintf("start time must be before end time (%s >= %s)", in.StartTime, in.EndTime))
	}
	return &models.AvailabilityBlock{
		ProfessionalID: professionalID,
		DayOfWeek:      in.DayOfWeek,
		StartMinute:    start,
		EndMinute:      end,
		IsActive:       true,
	}, nil
}
