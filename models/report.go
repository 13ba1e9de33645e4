package models

import "time"

// Report is a typed partial snapshot of a maintenance report document.
// Every field is optional; upstream writers are inconsistent about which of
// the sent-to-firms signals (status, flag, timestamp) they set.
type Report struct {
	Title                 string     `mapstructure:"title"`
	Status                string     `mapstructure:"status"`
	Category              string     `mapstructure:"category"`
	SentToFirms           bool       `mapstructure:"sentToFirms"`
	SentToFirmsAt         *time.Time `mapstructure:"sentToFirmsAt"`
	SelectedApplicationID string     `mapstructure:"selectedApplicationId"`
	AssignedFirmID        string     `mapstructure:"assignedFirmId"`
	AssignedWorkerIDs     []string   `mapstructure:"assignedWorkerIds"`
	CancelledAt           *time.Time `mapstructure:"cancelledAt"`
	CompletedAt           *time.Time `mapstructure:"completedAt"`
	CreatedBy             string     `mapstructure:"createdBy"`
	UserID                string     `mapstructure:"userId"`
}

// CreatorID returns the report creator, falling back to the legacy userId
// field on documents written before createdBy existed.
func (r *Report) CreatorID() string {
	if r.CreatedBy != "" {
		return r.CreatedBy
	}
	return r.UserID
}

// TitleOr returns the report title or the given fallback.
func (r *Report) TitleOr(fallback string) string {
	if r.Title != "" {
		return r.Title
	}
	return fallback
}

// DecodeReport decodes a raw report snapshot. A nil map yields a nil report.
func DecodeReport(data map[string]interface{}) (*Report, error) {
	if data == nil {
		return nil, nil
	}
	var r Report
	if err := decodeSnapshot(data, &r); err != nil {
		return nil, err
	}
	return &r, nil
}
