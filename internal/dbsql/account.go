package dbsql

import "time"

type License struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Document  string    `gorm:"size:20;not null;uniqueIndex" json:"document"`
	Active    bool      `gorm:"not null" json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type User struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Email        string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Active       bool      `gorm:"not null" json:"active"`
	LicenseID    *uint64   `gorm:"index" json:"licenseId"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// UserLicense grants a user access to a license beyond its default one.
type UserLicense struct {
	UserID    uint64 `gorm:"primaryKey"`
	LicenseID uint64 `gorm:"primaryKey"`
}

type SystemConfig struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Key         string    `gorm:"column:config_key;size:100;not null;uniqueIndex" json:"key"`
	Value       string    `gorm:"column:config_value;type:text;not null" json:"value"`
	Description *string   `gorm:"size:255" json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (SystemConfig) TableName() string {
	return "system_config"
}
