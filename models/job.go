package models

import "time"

type JobStatus string

const (
	JobStatusScheduled  JobStatus = "scheduled"
	JobStatusInProgress JobStatus = "in_progress"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusCancelled  JobStatus = "cancelled"
	JobStatusOnHold     JobStatus = "on_hold"
)

type JobType string

const (
	JobTypeService      JobType = "service"
	JobTypeMaintenance  JobType = "maintenance"
	JobTypeInstallation JobType = "installation"
	JobTypeRepair       JobType = "repair"
	JobTypeInspection   JobType = "inspection"
)

type RecurringFrequency string

const (
	FrequencyWeekly    RecurringFrequency = "weekly"
	FrequencyBiweekly  RecurringFrequency = "biweekly"
	FrequencyMonthly   RecurringFrequency = "monthly"
	FrequencyQuarterly RecurringFrequency = "quarterly"
)

// OverrideData records the audited manual bypass of a skill or conflict
// check on a job.
type OverrideData struct {
	By     string    `json:"by" dynamodbav:"by"`
	At     time.Time `json:"at" dynamodbav:"at"`
	Reason string    `json:"reason" dynamodbav:"reason"`
}

type Job struct {
	JobID        string    `json:"jobID" dynamodbav:"jobID" validate:"omitempty,uuid4"`
	OrgID        string    `json:"orgID" dynamodbav:"orgID" validate:"required"`
	ClientID     string    `json:"clientID" dynamodbav:"clientID" validate:"required"`
	Title        string    `json:"title" dynamodbav:"title" validate:"required,min=2,max=200"`
	JobType      JobType   `json:"jobType" dynamodbav:"jobType" validate:"required,oneof=service maintenance installation repair inspection"`
	JobStatus    JobStatus `json:"jobStatus" dynamodbav:"jobStatus" validate:"required,oneof=scheduled in_progress completed cancelled on_hold"`
	StartTime    time.Time `json:"startTime" dynamodbav:"startTime" validate:"required"`
	EndTime      time.Time `json:"endTime" dynamodbav:"endTime" validate:"required"`
	Address      string    `json:"address,omitempty" dynamodbav:"address,omitempty"`
	Price        float64   `json:"price,omitempty" dynamodbav:"price,omitempty"`
	Instructions string    `json:"instructions,omitempty" dynamodbav:"instructions,omitempty" validate:"omitempty,max=2000"`
	Notes        string    `json:"notes,omitempty" dynamodbav:"notes,omitempty" validate:"omitempty,max=1000"`

	// Assignment state. AssignedUserIDs is a materialized copy of crew
	// membership taken at assignment time; it is only mutated through the
	// assignment transitions, never spliced by callers.
	AssignedUserIDs []string `json:"assignedUserIDs" dynamodbav:"assignedUserIDs"`
	AssignedCrewID  string   `json:"assignedCrewID,omitempty" dynamodbav:"assignedCrewID,omitempty"`

	// Recurrence. A job with IsRecurring=true is the head of a series; its
	// generated children point back via ParentRecurringJobID and never
	// recur themselves.
	IsRecurring          bool               `json:"isRecurring" dynamodbav:"isRecurring"`
	RecurringFrequency   RecurringFrequency `json:"recurringFrequency,omitempty" dynamodbav:"recurringFrequency,omitempty" validate:"omitempty,oneof=weekly biweekly monthly quarterly"`
	RecurringEndDate     *time.Time         `json:"recurringEndDate,omitempty" dynamodbav:"recurringEndDate,omitempty"`
	ParentRecurringJobID string             `json:"parentRecurringJobID,omitempty" dynamodbav:"parentRecurringJobID,omitempty"`

	// Skill-requirement override audit trail.
	AllowUnqualified     bool          `json:"allowUnqualified" dynamodbav:"allowUnqualified"`
	UnqualifiedOverride  *OverrideData `json:"unqualifiedOverride,omitempty" dynamodbav:"unqualifiedOverride,omitempty"`

	CreatedAt time.Time `json:"createdAt" dynamodbav:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt,omitempty" dynamodbav:"updatedAt,omitempty"`
	CreatedBy string    `json:"createdBy,omitempty" dynamodbav:"createdBy,omitempty"`
	UpdatedBy string    `json:"updatedBy,omitempty" dynamodbav:"updatedBy,omitempty"`
}

// Window returns the job's scheduled half-open window.
func (j *Job) Window() TimeWindow {
	return TimeWindow{Start: j.StartTime, End: j.EndTime}
}

// CountsForConflicts reports whether the job holds its workers for scheduling
// purposes. Completed and cancelled jobs never conflict.
func (j *Job) CountsForConflicts() bool {
	return j.JobStatus == JobStatusScheduled || j.JobStatus == JobStatusInProgress
}

// IsTemplate reports whether the job heads a recurrence series.
func (j *Job) IsTemplate() bool {
	return j.IsRecurring && j.ParentRecurringJobID == ""
}

type CreateJobRequest struct {
	OrgID              string             `json:"orgID" validate:"required"`
	ClientID           string             `json:"clientID" validate:"required"`
	Title              string             `json:"title" validate:"required,min=2,max=200"`
	JobType            JobType            `json:"jobType" validate:"required,oneof=service maintenance installation repair inspection"`
	StartTime          time.Time          `json:"startTime" validate:"required"`
	EndTime            time.Time          `json:"endTime" validate:"required"`
	Address            string             `json:"address,omitempty"`
	Price              float64            `json:"price,omitempty"`
	Instructions       string             `json:"instructions,omitempty" validate:"omitempty,max=2000"`
	Notes              string             `json:"notes,omitempty" validate:"omitempty,max=1000"`
	IsRecurring        bool               `json:"isRecurring"`
	RecurringFrequency RecurringFrequency `json:"recurringFrequency,omitempty" validate:"omitempty,oneof=weekly biweekly monthly quarterly"`
	RecurringEndDate   *time.Time         `json:"recurringEndDate,omitempty"`
}

type UpdateJobRequest struct {
	Title            string             `json:"title,omitempty" validate:"omitempty,min=2,max=200"`
	JobType          JobType            `json:"jobType,omitempty" validate:"omitempty,oneof=service maintenance installation repair inspection"`
	StartTime        *time.Time         `json:"startTime,omitempty"`
	EndTime          *time.Time         `json:"endTime,omitempty"`
	Address          string             `json:"address,omitempty"`
	Instructions     string             `json:"instructions,omitempty" validate:"omitempty,max=2000"`
	Notes            string             `json:"notes,omitempty" validate:"omitempty,max=1000"`
	RecurringEndDate *time.Time         `json:"recurringEndDate,omitempty"`
}

type JobFilter struct {
	OrgID       string      `json:"orgID,omitempty"`
	ClientID    string      `json:"clientID,omitempty"`
	JobStatus   JobStatus   `json:"jobStatus,omitempty"`
	Statuses    []JobStatus `json:"statuses,omitempty"`
	JobType     JobType     `json:"jobType,omitempty"`
	IsRecurring *bool       `json:"isRecurring,omitempty"`
	ParentJobID string      `json:"parentJobID,omitempty"`
	CreatedBy   string      `json:"createdBy,omitempty"`
	FromDate    time.Time   `json:"fromDate,omitempty"`
	ToDate      time.Time   `json:"toDate,omitempty"`
}
