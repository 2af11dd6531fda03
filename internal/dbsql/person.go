package dbsql

import "time"

// Person owns contacts and movements. PersonType is PF (individual) or
// PJ (company).
type Person struct {
	ID          uint64     `gorm:"primaryKey;autoIncrement" json:"id"`
	FullName    string     `gorm:"size:255;not null;index" json:"fullName"`
	FantasyName string     `gorm:"size:255" json:"fantasyName"`
	BirthDate   *time.Time `gorm:"type:date" json:"birthDate"`
	PersonType  string     `gorm:"size:2;not null" json:"personType"`
	Active      bool       `gorm:"not null" json:"active"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`

	Contacts []Contact `gorm:"foreignKey:PersonID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"contacts,omitempty"`
}
