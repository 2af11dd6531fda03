package systemconfig

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

	svc := NewMockService(ctrl)
	router := mux.NewRouter()
	NewHandler(svc, zap.NewNop()).RegisterRoutes(router)

	desc := "Banco"
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
			name:   "list",
			method: http.MethodGet,
			path:   "/system-config",
			setup: func() {
				svc.EXPECT().List(gomock.Any()).Return([]dbsql.SystemConfig{{Key: "db_version", Value: "1.0.0.1"}}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"key":"db_version"`,
		},
		{
			name:   "get missing",
			method: http.MethodGet,
			path:   "/system-config/nope",
			setup: func() {
				svc.EXPECT().Get(gomock.Any(), "nope").Return(nil, common.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "upsert",
			method: http.MethodPut,
			path:   "/system-config",
			body:   `{"configKey":"boleto_bank_code","configValue":"237","description":"Banco"}`,
			setup: func() {
				svc.EXPECT().Set(gomock.Any(), SetConfigRequest{Key: "boleto_bank_code", Value: "237", Description: &desc}).
					Return(&dbsql.SystemConfig{Key: "boleto_bank_code", Value: "237"}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"value":"237"`,
		},
		{name: "upsert without value", method: http.MethodPut, path: "/system-config", body: `{"configKey":"k"}`, setup: func() {}, wantStatus: http.StatusBadRequest},
		{
			name:   "delete",
			method: http.MethodDelete,
			path:   "/system-config/boleto_bank_code",
			setup: func() {
				svc.EXPECT().Delete(gomock.Any(), "boleto_bank_code").Return(nil)
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
