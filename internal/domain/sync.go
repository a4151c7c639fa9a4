package domain

import "time"

const (
	EntityAgents     = "agents"
	EntityProperties = "properties"
)

type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionError   Action = "error"
)

// RecordOutcome describes what happened to a single external record.
type RecordOutcome struct {
	ExternalID  string `json:"external_id"`
	DisplayName string `json:"display_name"`
	Action      Action `json:"action"`
	Error       string `json:"error,omitempty"`
}

// SyncResult holds statistics about one sync stage run.
// Created + Updated + Errors always equals Total.
type SyncResult struct {
	Entity    string          `json:"entity"`
	Total     int             `json:"total"`
	Created   int             `json:"created"`
	Updated   int             `json:"updated"`
	Errors    int             `json:"errors"`
	Published int             `json:"published"`
	Duration  time.Duration   `json:"duration_ns"`
	Details   []RecordOutcome `json:"details"`
}

func NewSyncResult(entity string, total int) *SyncResult {
	return &SyncResult{
		Entity:  entity,
		Total:   total,
		Details: make([]RecordOutcome, 0, total),
	}
}

// Record appends the outcome of one record and bumps the matching counter.
func (r *SyncResult) Record(externalID, displayName string, action Action, err error) {
	outcome := RecordOutcome{
		ExternalID:  externalID,
		DisplayName: displayName,
		Action:      action,
	}

	switch action {
	case ActionCreated:
		r.Created++
	case ActionUpdated:
		r.Updated++
	default:
		outcome.Action = ActionError
		r.Errors++
		if err != nil {
			outcome.Error = err.Error()
		}
	}

	r.Details = append(r.Details, outcome)
}

// StageReport is the response envelope of a single sync stage endpoint.
type StageReport struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Results *SyncResult `json:"results,omitempty"`
}

type FullSyncResult struct {
	Agents     *SyncResult `json:"agents"`
	Properties *SyncResult `json:"properties"`
}

// MigrationReport is returned by the schema check for the airtable_id linkage column.
type MigrationReport struct {
	Success        bool     `json:"success"`
	AlreadyApplied bool     `json:"already_applied"`
	Message        string   `json:"message"`
	SQL            string   `json:"sql,omitempty"`
	Instructions   []string `json:"instructions,omitempty"`
}

// RecordEvent is published after a record has been created or updated.
type RecordEvent struct {
	Entity     string    `json:"entity"`
	Action     Action    `json:"action"`
	ID         string    `json:"id"`
	AirtableID string    `json:"airtable_id"`
	Slug       string    `json:"slug"`
	Timestamp  time.Time `json:"timestamp"`
}
