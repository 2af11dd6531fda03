package dbsql

import "time"

type Contact struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	PersonID    *uint64   `gorm:"index" json:"personId"`
	Type        string    `gorm:"size:20;not null;index" json:"type"`
	Value       string    `gorm:"column:contact;size:255;not null;index" json:"contact"`
	Description string    `gorm:"column:description;size:100" json:"description"`
	IsMain      bool      `gorm:"not null" json:"isMain"`
	Active      bool      `gorm:"not null" json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
