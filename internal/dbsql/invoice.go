package dbsql

import "time"

type Invoice struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	MovementID  uint64    `gorm:"not null;index" json:"movementId"`
	Number      string    `gorm:"size:30" json:"number"`
	ReferenceID string    `gorm:"size:60;index" json:"referenceId"`
	Status      string    `gorm:"size:20;not null;index" json:"status"`
	TotalAmount float64   `gorm:"type:decimal(15,2);not null" json:"totalAmount"`
	Description string    `gorm:"size:255" json:"description"`
	PDFURL      string    `gorm:"column:pdf_url;size:500" json:"pdfUrl,omitempty"`
	XMLURL      string    `gorm:"column:xml_url;size:500" json:"xmlUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NFSe is the service tax document issued for an invoice. Status is plain
// data written by whoever talks to the tax authority.
type NFSe struct {
	ID               uint64     `gorm:"primaryKey;autoIncrement" json:"id"`
	InvoiceID        uint64     `gorm:"not null;index" json:"invoiceId"`
	IntegrationID    string     `gorm:"size:64;index" json:"integrationId,omitempty"`
	Number           string     `gorm:"size:30" json:"number,omitempty"`
	VerificationCode string     `gorm:"size:60" json:"verificationCode,omitempty"`
	Status           string     `gorm:"size:20;not null" json:"status"`
	CancelReason     string     `gorm:"size:255" json:"cancelReason,omitempty"`
	IssuedAt         *time.Time `json:"issuedAt"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`

	Events []NFSeEvent `gorm:"foreignKey:NFSeID" json:"events,omitempty"`
}

func (NFSe) TableName() string { return "nfse_invoices" }

// NFSeEvent is one append-only entry of an NFSe's status history.
type NFSeEvent struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	NFSeID    uint64    `gorm:"column:nfse_id;not null;index" json:"nfseId"`
	EventType string    `gorm:"size:40;not null" json:"eventType"`
	Status    string    `gorm:"size:20;not null" json:"status"`
	Data      JSONMap   `json:"data,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (NFSeEvent) TableName() string { return "nfse_events" }
