package installment

import (
	"context"
	"testing"
	"time"

	"agilefinance/internal/common"
	"agilefinance/internal/dbsql"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func fptr(v float64) *float64 { return &v }
func sptr(v string) *string   { return &v }

func newTestService(t *testing.T) (*installmentService, *MockInstallmentRepository) {
	ctrl := gomock.NewController(t)
	repo := NewMockInstallmentRepository(ctrl)
	svc := NewInstallmentService(repo, zap.NewNop()).(*installmentService)
	svc.now = func() time.Time { return time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC) }
	return svc, repo
}

func TestInstallmentService_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("three installments for 100.00", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.EXPECT().Movement(ctx, uint64(15)).Return(&dbsql.Movement{ID: 15, TotalAmount: 100}, nil)
		repo.EXPECT().PaymentMethod(ctx, uint64(2)).Return(&dbsql.PaymentMethod{ID: 2, InstallmentCount: 3, FirstDueDateDays: 30, DaysBetweenInstallments: 30, Active: true}, nil)
		repo.EXPECT().CreateBatch(ctx, uint64(15), gomock.Len(3)).Return(nil)

		items, err := svc.Generate(ctx, 15, 2)
		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, []float64{33.33, 33.33, 33.34}, []float64{items[0].Amount, items[1].Amount, items[2].Amount})
		assert.Equal(t, "2025-02-09", items[0].DueDate.Format(dateLayout))
		assert.Equal(t, "2025-04-10", items[2].DueDate.Format(dateLayout))
	})

	t.Run("inactive payment method", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.EXPECT().Movement(ctx, uint64(15)).Return(&dbsql.Movement{ID: 15, TotalAmount: 100}, nil)
		repo.EXPECT().PaymentMethod(ctx, uint64(2)).Return(&dbsql.PaymentMethod{ID: 2, InstallmentCount: 3}, nil)

		_, err := svc.Generate(ctx, 15, 2)
		assert.ErrorIs(t, err, common.ErrConflict)
	})

	t.Run("unknown movement", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.EXPECT().Movement(ctx, uint64(99)).Return(nil, common.ErrNotFound)

		_, err := svc.Generate(ctx, 99, 2)
		assert.ErrorIs(t, err, common.ErrNotFound)
	})

	t.Run("batch conflict is returned", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.EXPECT().Movement(ctx, uint64(15)).Return(&dbsql.Movement{ID: 15, TotalAmount: 100}, nil)
		repo.EXPECT().PaymentMethod(ctx, uint64(2)).Return(&dbsql.PaymentMethod{ID: 2, InstallmentCount: 1, Active: true}, nil)
		repo.EXPECT().CreateBatch(ctx, uint64(15), gomock.Any()).Return(common.ErrConflict)

		_, err := svc.Generate(ctx, 15, 2)
		assert.ErrorIs(t, err, common.ErrConflict)
	})
}

func TestInstallmentService_Update(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		req        UpdateInstallmentRequest
		wantStatus string
		wantErr    bool
	}{
		{name: "paid off", req: UpdateInstallmentRequest{Balance: fptr(0)}, wantStatus: StatusPaid},
		{name: "explicit status wins", req: UpdateInstallmentRequest{Balance: fptr(0), Status: sptr(StatusCanceled)}, wantStatus: StatusCanceled},
		{name: "partial payment", req: UpdateInstallmentRequest{Balance: fptr(10)}, wantStatus: StatusPending},
		{name: "balance above amount", req: UpdateInstallmentRequest{Balance: fptr(50)}, wantErr: true},
		{name: "unknown status", req: UpdateInstallmentRequest{Status: sptr("LOST")}, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, repo := newTestService(t)
			repo.EXPECT().ByID(ctx, uint64(1)).Return(&dbsql.Installment{ID: 1, Amount: 33.33, Balance: 33.33, Status: StatusPending}, nil).AnyTimes()
			if !tc.wantErr {
				repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)
			}

			i, err := svc.Update(ctx, 1, tc.req)
			if tc.wantErr {
				var vErr *common.ValidationError
				assert.ErrorAs(t, err, &vErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, i.Status)
		})
	}
}

func TestInstallmentService_Create(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)

	repo.EXPECT().Movement(ctx, uint64(15)).Return(&dbsql.Movement{ID: 15}, nil)
	repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	i, err := svc.Create(ctx, CreateInstallmentRequest{MovementID: 15, Number: "04", Amount: 12.5, DueDate: "2025-05-01"})
	require.NoError(t, err)
	assert.Equal(t, 12.5, i.Balance)
	assert.Equal(t, StatusPending, i.Status)

	_, err = svc.Create(ctx, CreateInstallmentRequest{MovementID: 15, Number: "04", Amount: 12.5, DueDate: "2025-13-01"})
	var vErr *common.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestInstallmentService_CreatePaymentMethod(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)

	repo.EXPECT().CreatePaymentMethod(ctx, gomock.Any()).Return(nil)
	pm, err := svc.CreatePaymentMethod(ctx, CreatePaymentMethodRequest{Name: "Boleto 3x", InstallmentCount: 3, DaysBetweenInstallments: 30})
	require.NoError(t, err)
	assert.True(t, pm.Active)
	assert.Zero(t, pm.FirstDueDateDays)

	_, err = svc.CreatePaymentMethod(ctx, CreatePaymentMethodRequest{Name: "none"})
	var vErr *common.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "installmentCount")
}
