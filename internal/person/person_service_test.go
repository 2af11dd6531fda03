package person

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

func sptr(v string) *string { return &v }
func bptr(v bool) *bool     { return &v }

func newTestService(repo PersonRepository) *personService {
	svc := NewPersonService(repo, zap.NewNop()).(*personService)
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return svc
}

func TestPersonService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockPersonRepository(ctrl)
	svc := newTestService(mockRepo)
	ctx := context.Background()

	tests := []struct {
		name     string
		req      CreatePersonRequest
		setup    func()
		wantType string
		wantErr  string
	}{
		{
			name: "company by default",
			req:  CreatePersonRequest{FullName: "  Agile Finance Ltda ", FantasyName: "Agile"},
			setup: func() {
				mockRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p *dbsql.Person) error {
					assert.Equal(t, "Agile Finance Ltda", p.FullName)
					assert.True(t, p.Active)
					p.ID = 12
					return nil
				})
			},
			wantType: TypeCompany,
		},
		{
			name: "individual with birth date",
			req:  CreatePersonRequest{FullName: "Ana Souza", PersonType: "PF", BirthDate: sptr("1990-04-12")},
			setup: func() {
				mockRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p *dbsql.Person) error {
					require.NotNil(t, p.BirthDate)
					assert.Equal(t, "1990-04-12", p.BirthDate.Format(dateLayout))
					return nil
				})
			},
			wantType: TypeIndividual,
		},
		{name: "future birth date", req: CreatePersonRequest{FullName: "Ana Souza", BirthDate: sptr("2030-01-01")}, setup: func() {}, wantErr: "future"},
		{name: "name too short after trim", req: CreatePersonRequest{FullName: " A "}, setup: func() {}, wantErr: "fullName"},
		{name: "unknown type", req: CreatePersonRequest{FullName: "Ana Souza", PersonType: "XX"}, setup: func() {}, wantErr: "personType"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setup()
			p, err := svc.Create(ctx, tc.req)
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantType, p.PersonType)
		})
	}
}

func TestPersonService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockPersonRepository(ctrl)
	svc := newTestService(mockRepo)
	ctx := context.Background()

	mockRepo.EXPECT().ByID(ctx, uint64(12)).Return(&dbsql.Person{ID: 12, FullName: "Agile", PersonType: "PJ", Active: true}, nil)
	mockRepo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

	p, err := svc.Update(ctx, 12, UpdatePersonRequest{FullName: sptr("Agile Finance Ltda"), PersonType: sptr("PF")})
	require.NoError(t, err)
	assert.Equal(t, "Agile Finance Ltda", p.FullName)
	assert.Equal(t, TypeIndividual, p.PersonType)

	mockRepo.EXPECT().ByID(ctx, uint64(13)).Return(nil, common.ErrNotFound)
	_, err = svc.Update(ctx, 13, UpdatePersonRequest{Active: bptr(false)})
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestPersonService_Deactivate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockPersonRepository(ctrl)
	svc := newTestService(mockRepo)
	ctx := context.Background()

	mockRepo.EXPECT().ByID(ctx, uint64(1)).Return(&dbsql.Person{ID: 1, Active: true}, nil)
	mockRepo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p *dbsql.Person) error {
		assert.False(t, p.Active)
		return nil
	})
	assert.NoError(t, svc.Deactivate(ctx, 1))

	mockRepo.EXPECT().ByID(ctx, uint64(2)).Return(&dbsql.Person{ID: 2}, nil)
	assert.NoError(t, svc.Deactivate(ctx, 2))
}
