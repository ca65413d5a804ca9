package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Citizen is a registered resident who can file issues. The linked MLA and
// organization sets grow at login time and are never pruned.
type Citizen struct {
	ID                  uint           `gorm:"primaryKey" json:"id"`
	Name                string         `gorm:"not null" json:"name"`
	Email               string         `gorm:"uniqueIndex;not null" json:"email"`
	Password            string         `gorm:"not null" json:"-"`
	Constituency        string         `json:"constituency"`
	LinkedMLAs          []MLA          `gorm:"many2many:citizen_mlas" json:"linked_MLAs,omitempty"`
	LinkedOrganizations []Organization `gorm:"many2many:citizen_organizations" json:"linked_Organizations,omitempty"`
	Issues              []Issue        `gorm:"foreignKey:CitizenID" json:"issues,omitempty"`
	CreatedAt           time.Time      `json:"createdAt"`
	UpdatedAt           time.Time      `json:"updatedAt"`
}

func (c *Citizen) HashPassword() error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(c.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	c.Password = string(hashed)
	return nil
}

func (c *Citizen) ComparePassword(candidate string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(c.Password), []byte(candidate))
	return err == nil
}
