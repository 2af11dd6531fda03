package license

import (
	"context"
	"testing"

	"agilefinance/internal/common"
	"agilefinance/internal/dbsql"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func sptr(v string) *string { return &v }
func bptr(v bool) *bool     { return &v }

func TestLicenseService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockLicenseRepository(ctrl)
	svc := NewLicenseService(mockRepo, zap.NewNop())
	ctx := context.Background()

	tests := []struct {
		name        string
		req         CreateLicenseRequest
		setup       func()
		wantDoc     string
		wantErr     error
		errContains string
	}{
		{
			name: "cnpj is stored as digits",
			req:  CreateLicenseRequest{Name: "Agile", Document: "11.222.333/0001-81"},
			setup: func() {
				mockRepo.EXPECT().ByDocument(ctx, "11222333000181").Return(nil, common.ErrNotFound)
				mockRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
			},
			wantDoc: "11222333000181",
		},
		{
			name: "cpf",
			req:  CreateLicenseRequest{Name: "Ana", Document: "529.982.247-25"},
			setup: func() {
				mockRepo.EXPECT().ByDocument(ctx, "52998224725").Return(nil, common.ErrNotFound)
				mockRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
			},
			wantDoc: "52998224725",
		},
		{
			name: "document already licensed",
			req:  CreateLicenseRequest{Name: "Agile", Document: "11222333000181"},
			setup: func() {
				mockRepo.EXPECT().ByDocument(ctx, "11222333000181").Return(&dbsql.License{ID: 1}, nil)
			},
			wantErr: common.ErrConflict,
		},
		{
			name:        "wrong length",
			req:         CreateLicenseRequest{Name: "Agile", Document: "1234"},
			setup:       func() {},
			errContains: "11 or 14",
		},
		{
			name:        "missing name",
			req:         CreateLicenseRequest{Document: "52998224725"},
			setup:       func() {},
			errContains: "name",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setup()
			l, err := svc.Create(ctx, tc.req)
			switch {
			case tc.wantErr != nil:
				assert.ErrorIs(t, err, tc.wantErr)
			case tc.errContains != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errContains)
			default:
				require.NoError(t, err)
				assert.Equal(t, tc.wantDoc, l.Document)
				assert.True(t, l.Active)
			}
		})
	}
}

func TestLicenseService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockLicenseRepository(ctrl)
	svc := NewLicenseService(mockRepo, zap.NewNop())
	ctx := context.Background()

	t.Run("same document skips uniqueness check", func(t *testing.T) {
		mockRepo.EXPECT().ByID(ctx, uint64(1)).Return(&dbsql.License{ID: 1, Name: "Agile", Document: "52998224725", Active: true}, nil)
		mockRepo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

		l, err := svc.Update(ctx, 1, UpdateLicenseRequest{Name: sptr("Agile Ltda"), Document: sptr("529.982.247-25")})
		require.NoError(t, err)
		assert.Equal(t, "Agile Ltda", l.Name)
	})

	t.Run("document owned by another license", func(t *testing.T) {
		mockRepo.EXPECT().ByID(ctx, uint64(1)).Return(&dbsql.License{ID: 1, Document: "52998224725"}, nil)
		mockRepo.EXPECT().ByDocument(ctx, "98765432100").Return(&dbsql.License{ID: 2}, nil)

		_, err := svc.Update(ctx, 1, UpdateLicenseRequest{Document: sptr("98765432100")})
		assert.ErrorIs(t, err, common.ErrConflict)
	})
}

func TestLicenseService_Deactivate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockLicenseRepository(ctrl)
	svc := NewLicenseService(mockRepo, zap.NewNop())
	ctx := context.Background()

	mockRepo.EXPECT().ByID(ctx, uint64(1)).Return(&dbsql.License{ID: 1, Active: true}, nil)
	mockRepo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, l *dbsql.License) error {
		assert.False(t, l.Active)
		return nil
	})
	assert.NoError(t, svc.Deactivate(ctx, 1))

	mockRepo.EXPECT().ByID(ctx, uint64(2)).Return(nil, common.ErrNotFound)
	assert.ErrorIs(t, svc.Deactivate(ctx, 2), common.ErrNotFound)
}

func TestNormalizeDocument(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr string
	}{
		{raw: "529.982.247-25", want: "52998224725"},
		{raw: "111.444.777-35", want: "11144477735"},
		{raw: "11.444.777/0001-61", want: "11444777000161"},
		{raw: "529.982.247-26", wantErr: "check digit"},
		{raw: "11.444.777/0001-62", wantErr: "check digit"},
		{raw: "111.111.111-11", wantErr: "single digit"},
		{raw: "123", wantErr: "11 or 14"},
	}

	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			got, err := normalizeDocument(tc.raw)
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
