package dbsql

import "time"

type Movement struct {
	ID               uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	LicenseID        uint64    `gorm:"not null;index" json:"licenseId"`
	PersonID         uint64    `gorm:"not null;index" json:"personId"`
	MovementTypeID   uint64    `gorm:"not null" json:"movementTypeId"`
	MovementStatusID uint64    `gorm:"not null" json:"movementStatusId"`
	MovementDate     time.Time `gorm:"type:date;not null" json:"movementDate"`
	Description      string    `gorm:"size:255" json:"description"`
	Observation      string    `gorm:"type:text" json:"observation"`
	TotalAmount      float64   `gorm:"type:decimal(15,2);not null" json:"totalAmount"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type PaymentMethod struct {
	ID                      uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name                    string    `gorm:"size:100;not null" json:"name"`
	InstallmentCount        int       `gorm:"not null" json:"installmentCount"`
	FirstDueDateDays        int       `gorm:"not null" json:"firstDueDateDays"`
	DaysBetweenInstallments int       `gorm:"not null" json:"daysBetweenInstallments"`
	Active                  bool      `gorm:"not null" json:"active"`
	CreatedAt               time.Time `json:"createdAt"`
	UpdatedAt               time.Time `json:"updatedAt"`
}

type Installment struct {
	ID              uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	MovementID      uint64    `gorm:"not null;index" json:"movementId"`
	PaymentMethodID *uint64   `json:"paymentMethodId"`
	Number          string    `gorm:"size:3;not null" json:"installmentNumber"`
	Amount          float64   `gorm:"type:decimal(15,2);not null" json:"amount"`
	Balance         float64   `gorm:"type:decimal(15,2);not null" json:"balance"`
	DueDate         time.Time `gorm:"type:date;not null" json:"dueDate"`
	Status          string    `gorm:"size:20;not null" json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type Boleto struct {
	ID            uint64     `gorm:"primaryKey;autoIncrement" json:"id"`
	InstallmentID uint64     `gorm:"not null;index" json:"installmentId"`
	BoletoNumber  string     `gorm:"size:60" json:"boletoNumber"`
	Status        string     `gorm:"size:20;not null" json:"status"`
	DueDate       time.Time  `gorm:"type:date;not null" json:"dueDate"`
	Amount        float64    `gorm:"type:decimal(15,2);not null" json:"amount"`
	PDFFileID     string     `gorm:"column:pdf_file_id;size:64" json:"pdfFileId,omitempty"`
	GeneratedAt   *time.Time `json:"generatedAt"`
	ErrorMessage  string     `gorm:"size:500" json:"errorMessage,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}
