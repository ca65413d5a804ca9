package models

import "time"

// IssueStatus enum
type IssueStatus string

const (
	StatusPending    IssueStatus = "PENDING"
	StatusInProgress IssueStatus = "IN_PROGRESS"
	StatusResolved   IssueStatus = "RESOLVED"
	StatusRejected   IssueStatus = "REJECTED"
)

// IssueSeverity enum
type IssueSeverity string

const (
	SeverityLow      IssueSeverity = "LOW"
	SeverityMedium   IssueSeverity = "MEDIUM"
	SeverityHigh     IssueSeverity = "HIGH"
	SeverityCritical IssueSeverity = "CRITICAL"
)

// ValidStatus reports whether s is one of the four lifecycle states.
func ValidStatus(s string) bool {
	switch IssueStatus(s) {
	case StatusPending, StatusInProgress, StatusResolved, StatusRejected:
		return true
	}
	return false
}

// ValidSeverity reports whether s is one of the four triage levels.
func ValidSeverity(s string) bool {
	switch IssueSeverity(s) {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// Issue is a civic complaint filed by a citizen, optionally assigned to an MLA
// and/or an organization. Status moves only through explicit update calls.
type Issue struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	Title          string        `gorm:"not null" json:"title"`
	Description    string        `gorm:"not null" json:"description"`
	Category       string        `gorm:"not null" json:"category"`
	MediaURL       *string       `json:"mediaUrl,omitempty"`
	Location       string        `gorm:"not null" json:"location"`
	Latitude       *float64      `json:"latitude,omitempty"`
	Longitude      *float64      `json:"longitude,omitempty"`
	Status         IssueStatus   `gorm:"default:PENDING" json:"status"`
	Severity       IssueSeverity `gorm:"default:LOW" json:"severity"`
	CitizenID      uint          `gorm:"not null;index" json:"citizenId"`
	Citizen        *Citizen      `gorm:"foreignKey:CitizenID" json:"-"`
	MLAID          *uint         `json:"mlaId,omitempty"`
	MLA            *MLA          `gorm:"foreignKey:MLAID" json:"-"`
	OrganizationID *uint         `json:"organizationId,omitempty"`
	Organization   *Organization `gorm:"foreignKey:OrganizationID" json:"-"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}
