package services

import (
	"context"

	"navkar-inquiry/internal/adapters/persistence/repositories"
	"navkar-inquiry/internal/core/domain"
	"navkar-inquiry/internal/pkg/logger"

	"github.com/robfig/cron/v3"
)

// SummaryService periodically logs the inquiry status breakdown of the
// dev server, so a long-running instance shows drift at a glance.
type SummaryService struct {
	inquiryRepo repositories.InquiryRepository
	schedule    string
	cron        *cron.Cron
}

// NewSummaryService creates a summary service with a cron schedule
// (e.g. "@every 1h" or "30 8 * * *").
func NewSummaryService(inquiryRepo repositories.InquiryRepository, schedule string) *SummaryService {
	return &SummaryService{
		inquiryRepo: inquiryRepo,
		schedule:    schedule,
		cron:        cron.New(),
	}
}

// Start registers and launches the scheduled job.
func (s *SummaryService) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.logSummary); err != nil {
		return err
	}
	s.cron.Start()
	logger.Log.Infof("summary job scheduled: %s", s.schedule)
	return nil
}

// Stop halts the scheduler.
func (s *SummaryService) Stop() {
	s.cron.Stop()
}

func (s *SummaryService) logSummary() {
	ctx := context.Background()

	pending, err := s.inquiryRepo.CountByStatus(ctx, string(domain.StatusPending))
	if err != nil {
		logger.Log.WithError(err).Error("summary query failed")
		return
	}
	approved, _ := s.inquiryRepo.CountByStatus(ctx, string(domain.StatusApproved))
	rejected, _ := s.inquiryRepo.CountByStatus(ctx, string(domain.StatusRejected))

	logger.Log.Infof("inquiry summary: %d pending / %d approved / %d rejected",
		pending, approved, rejected)
}
