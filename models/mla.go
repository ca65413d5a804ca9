package models

import "time"

// MLA is an elected representative. MLAs are directory records created through
// signup with an @mla.com address; they do not log in and carry no password.
type MLA struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	Party        string    `json:"party"`
	Constituency string    `json:"constituency"`
	Phone        string    `json:"phone"`
	Rating       float64   `gorm:"default:0" json:"rating"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
