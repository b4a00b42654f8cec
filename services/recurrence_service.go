package services

import (
	"context"
	"time"

	"fieldops-backend/models"
	"fieldops-backend/repository"
	"fieldops-backend/utils/logger"
)

// RecurrenceService materializes upcoming occurrences of recurring job
// templates. It is driven by the cron scheduler and by the manual trigger
// endpoint; both paths funnel through GenerateForOrg so the gates below are
// the only place occurrence creation is decided.
type RecurrenceService struct {
	jobRepo   repository.JobRepositoryInterface
	orgRepo   repository.OrganizationRepositoryInterface
	dueWindow time.Duration
	logger    logger.Logger

	// nowFn is swapped in tests to pin the clock.
	nowFn func() time.Time
}

func NewRecurrenceService(
	jobRepo repository.JobRepositoryInterface,
	orgRepo repository.OrganizationRepositoryInterface,
	dueWindow time.Duration,
	log logger.Logger,
) *RecurrenceService {
	return &RecurrenceService{
		jobRepo:   jobRepo,
		orgRepo:   orgRepo,
		dueWindow: dueWindow,
		logger:    log,
		nowFn:     time.Now,
	}
}

// NextOccurrence advances a window by one recurrence step. Monthly and
// quarterly steps use calendar months, so Jan 31 + 1 month lands on the
// normalized calendar date rather than a fixed day count.
func (s *RecurrenceService) NextOccurrence(from models.TimeWindow, frequency models.RecurringFrequency) (models.TimeWindow, error) {
	var next time.Time
	switch frequency {
	case models.FrequencyWeekly:
		next = from.Start.AddDate(0, 0, 7)
	case models.FrequencyBiweekly:
		next = from.Start.AddDate(0, 0, 14)
	case models.FrequencyMonthly:
		next = from.Start.AddDate(0, 1, 0)
	case models.FrequencyQuarterly:
		next = from.Start.AddDate(0, 3, 0)
	default:
		return models.TimeWindow{}, models.NewInvalidInput("unknown recurring frequency: " + string(frequency))
	}

	return models.TimeWindow{Start: next, End: next.Add(from.Duration())}, nil
}

// GenerateForOrg walks every recurring template in the organization and
// creates the next occurrence for each template that is due. A template
// failure is counted and logged but never stops the batch.
func (s *RecurrenceService) GenerateForOrg(ctx context.Context, orgID string) (*models.GenerationSummary, error) {
	recurring := true
	templates, err := s.jobRepo.GetJobsByFilter(&models.JobFilter{OrgID: orgID, IsRecurring: &recurring})
	if err != nil {
		return nil, err
	}

	summary := &models.GenerationSummary{OrgID: orgID}
	for _, template := range templates {
		if !template.IsTemplate() {
			continue
		}
		summary.Templates++

		created, err := s.processTemplate(ctx, template)
		if err != nil {
			s.logger.Errorf("Recurrence failed for template %s: %v", template.JobID, err)
			summary.Failed++
			continue
		}
		if created == nil {
			summary.Skipped++
			continue
		}
		summary.Created++
		summary.JobIDs = append(summary.JobIDs, created.JobID)
	}

	s.logger.Infof("Recurrence pass for org %s: %d templates, %d created, %d skipped, %d failed",
		orgID, summary.Templates, summary.Created, summary.Skipped, summary.Failed)
	return summary, nil
}

// GenerateAll runs a recurrence pass for every active organization.
func (s *RecurrenceService) GenerateAll(ctx context.Context) (*models.GenerationSummary, error) {
	orgs, err := s.orgRepo.GetOrganizations()
	if err != nil {
		return nil, err
	}

	total := &models.GenerationSummary{}
	for _, org := range orgs {
		if org.Status != models.OrganizationStatusActive {
			continue
		}
		summary, err := s.GenerateForOrg(ctx, org.ID)
		if err != nil {
			s.logger.Errorf("Recurrence pass failed for org %s: %v", org.ID, err)
			continue
		}
		total.Merge(summary)
	}

	return total, nil
}

// processTemplate applies the gates for one template and creates the next
// occurrence when all of them pass. Returns nil, nil when the template is
// skipped.
func (s *RecurrenceService) processTemplate(ctx context.Context, template *models.Job) (*models.Job, error) {
	if template.RecurringFrequency == "" {
		return nil, nil
	}

	children, err := s.jobRepo.GetChildJobs(template.JobID)
	if err != nil {
		return nil, err
	}

	// The series advances from its latest occurrence, template included, so
	// a pass that just created a child does not create another.
	latest := template.Window()
	for _, child := range children {
		if child.StartTime.After(latest.Start) {
			latest = child.Window()
		}
	}

	next, err := s.NextOccurrence(latest, template.RecurringFrequency)
	if err != nil {
		return nil, err
	}

	now := s.nowFn()

	// Due gate: create only when the next occurrence starts within the due
	// window. Overdue occurrences (next already in the past) still qualify.
	if next.Start.Sub(now) > s.dueWindow {
		return nil, nil
	}

	// End-date gate.
	if template.RecurringEndDate != nil && next.Start.After(*template.RecurringEndDate) {
		return nil, nil
	}

	// Idempotency gate: a child already scheduled within an hour of the slot
	// means this occurrence was generated by an earlier pass.
	for _, child := range children {
		delta := child.StartTime.Sub(next.Start)
		if delta < 0 {
			delta = -delta
		}
		if delta <= time.Hour {
			return nil, nil
		}
	}

	child := s.buildOccurrence(template, next)
	return s.jobRepo.CreateJob(ctx, child)
}

// buildOccurrence copies the template into a concrete child job. Children
// never recur themselves and start life with the template's assignment.
func (s *RecurrenceService) buildOccurrence(template *models.Job, window models.TimeWindow) *models.Job {
	assigned := make([]string, len(template.AssignedUserIDs))
	copy(assigned, template.AssignedUserIDs)

	return &models.Job{
		OrgID:                template.OrgID,
		ClientID:             template.ClientID,
		Title:                template.Title,
		JobType:              template.JobType,
		JobStatus:            models.JobStatusScheduled,
		StartTime:            window.Start,
		EndTime:              window.End,
		Address:              template.Address,
		Price:                template.Price,
		Instructions:         template.Instructions,
		Notes:                template.Notes,
		AssignedUserIDs:      assigned,
		AssignedCrewID:       template.AssignedCrewID,
		IsRecurring:          false,
		ParentRecurringJobID: template.JobID,
		CreatedBy:            template.CreatedBy,
	}
}
