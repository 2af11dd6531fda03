package person

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"agilefinance/internal/common"
	"agilefinance/internal/dbsql"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockPersonService(ctrl)
	router := mux.NewRouter()
	NewHandler(svc, zap.NewNop()).RegisterRoutes(router)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		setup      func()
		wantStatus int
		wantBody   string
	}{
		{
			name:   "create",
			method: http.MethodPost,
			path:   "/persons",
			body:   `{"fullName":"Ana Souza","personType":"PF"}`,
			setup: func() {
				svc.EXPECT().Create(gomock.Any(), CreatePersonRequest{FullName: "Ana Souza", PersonType: "PF"}).
					Return(&dbsql.Person{ID: 42, FullName: "Ana Souza", PersonType: "PF"}, nil)
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"fullName":"Ana Souza"`,
		},
		{name: "create without name", method: http.MethodPost, path: "/persons", body: `{"personType":"PF"}`, setup: func() {}, wantStatus: http.StatusBadRequest},
		{
			name:   "list companies",
			method: http.MethodGet,
			path:   "/persons?personType=PJ&active=true",
			setup: func() {
				svc.EXPECT().List(gomock.Any(), ListFilter{PersonType: "PJ", Active: bptr(true)}, common.PageQuery{Page: 1, Limit: 10}).
					Return(common.NewPaginated([]dbsql.Person{}, 0, common.PageQuery{Page: 1, Limit: 10}), nil)
			},
			wantStatus: http.StatusOK,
		},
		{name: "list bad type", method: http.MethodGet, path: "/persons?personType=XX", setup: func() {}, wantStatus: http.StatusBadRequest},
		{
			name:   "details with contacts",
			method: http.MethodGet,
			path:   "/persons/42/details",
			setup: func() {
				svc.EXPECT().Details(gomock.Any(), uint64(42)).Return(&dbsql.Person{ID: 42, Contacts: []dbsql.Contact{{ID: 7, Value: "11987654321"}}}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"contact":"11987654321"`,
		},
		{
			name:   "get missing",
			method: http.MethodGet,
			path:   "/persons/99",
			setup: func() {
				svc.EXPECT().Get(gomock.Any(), uint64(99)).Return(nil, common.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "update",
			method: http.MethodPut,
			path:   "/persons/42",
			body:   `{"fantasyName":"Ana"}`,
			setup: func() {
				svc.EXPECT().Update(gomock.Any(), uint64(42), gomock.Any()).Return(&dbsql.Person{ID: 42, FantasyName: "Ana"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "deactivate",
			method: http.MethodDelete,
			path:   "/persons/42",
			setup: func() {
				svc.EXPECT().Deactivate(gomock.Any(), uint64(42)).Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setup()
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, bytes.NewBufferString(tc.body)))
			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tc.wantBody)
			}
		})
	}
}
