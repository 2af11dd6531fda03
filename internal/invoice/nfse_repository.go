package invoice

import (
	"context"

	"agilefinance/internal/common"
	"agilefinance/internal/dbsql"

	"gorm.io/gorm"
)

type NFSeRepository interface {
	Create(ctx context.Context, n *dbsql.NFSe, ev *dbsql.NFSeEvent, inv *dbsql.Invoice) error
	SaveWithEvent(ctx context.Context, n *dbsql.NFSe, ev *dbsql.NFSeEvent, inv *dbsql.Invoice) error
	ByID(ctx context.Context, id uint64) (*dbsql.NFSe, error)
	ByInvoice(ctx context.Context, invoiceID uint64) ([]dbsql.NFSe, error)
	ByIntegrationID(ctx context.Context, integrationID string) (*dbsql.NFSe, error)
}

type nfseRepo struct {
	db *gorm.DB
}

func NewNFSeRepository(db *gorm.DB) NFSeRepository {
	return &nfseRepo{db: db}
}

// Create inserts the document and its first history event together. A
// non-nil inv is saved in the same transaction.
func (r *nfseRepo) Create(ctx context.Context, n *dbsql.NFSe, ev *dbsql.NFSeEvent, inv *dbsql.Invoice) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Events").Create(n).Error; err != nil {
			return err
		}
		ev.NFSeID = n.ID
		if err := tx.Create(ev).Error; err != nil {
			return err
		}
		return saveInvoice(tx, inv)
	})
}

// SaveWithEvent writes the new state of n, appends ev to its history and
// saves inv when given, all or nothing.
func (r *nfseRepo) SaveWithEvent(ctx context.Context, n *dbsql.NFSe, ev *dbsql.NFSeEvent, inv *dbsql.Invoice) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Events").Save(n).Error; err != nil {
			return err
		}
		ev.NFSeID = n.ID
		if err := tx.Create(ev).Error; err != nil {
			return err
		}
		return saveInvoice(tx, inv)
	})
}

func saveInvoice(tx *gorm.DB, inv *dbsql.Invoice) error {
	if inv == nil {
		return nil
	}
	return tx.Save(inv).Error
}

// ByID loads the document with its history, newest event first.
func (r *nfseRepo) ByID(ctx context.Context, id uint64) (*dbsql.NFSe, error) {
	var n dbsql.NFSe
	err := r.db.WithContext(ctx).
		Preload("Events", func(db *gorm.DB) *gorm.DB {
			return db.Order("id DESC")
		}).
		First(&n, id).Error
	if err != nil {
		return nil, common.NotFound(err)
	}
	return &n, nil
}

func (r *nfseRepo) ByInvoice(ctx context.Context, invoiceID uint64) ([]dbsql.NFSe, error) {
	var out []dbsql.NFSe
	err := r.db.WithContext(ctx).
		Where("invoice_id = ?", invoiceID).
		Order("id").
		Find(&out).Error
	return out, err
}

func (r *nfseRepo) ByIntegrationID(ctx context.Context, integrationID string) (*dbsql.NFSe, error) {
	var n dbsql.NFSe
	err := r.db.WithContext(ctx).
		Where("integration_id = ?", integrationID).
		Order("id DESC").
		First(&n).Error
	if err != nil {
		return nil, common.NotFound(err)
	}
	return &n, nil
}
