package models

import "time"

// Support records a citizen backing an issue. The composite unique index keeps
// one row per (issue, citizen) pair even across concurrent toggles.
type Support struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	IssueID   uint      `gorm:"not null;uniqueIndex:idx_issue_citizen" json:"issueId"`
	CitizenID uint      `gorm:"not null;uniqueIndex:idx_issue_citizen" json:"citizenId"`
	CreatedAt time.Time `json:"createdAt"`
}
