package models

import "time"

// Organization is a local body (NGO, civic department) reachable within a
// constituency. Created through signup with an @org.com address.
type Organization struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Category     string    `json:"category"`
	Constituency string    `json:"constituency"`
	ContactEmail string    `gorm:"uniqueIndex;not null" json:"contact_email"`
	ContactPhone string    `json:"contact_phone"`
	Address      string    `json:"address"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
