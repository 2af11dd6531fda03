package boleto

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"agilefinance/internal/common"
	"agilefinance/internal/dbsql"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestRouter(svc BoletoService) *mux.Router {
	r := mux.NewRouter()
	NewHandler(svc, zap.NewNop()).RegisterRoutes(r)
	return r
}

func TestHandler_Generate(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewMockBoletoService(ctrl)
	router := newTestRouter(svc)

	tests := []struct {
		name       string
		path       string
		setup      func()
		wantStatus int
	}{
		{
			name: "accepted",
			path: "/installments/4/boletos",
			setup: func() {
				svc.EXPECT().RequestGeneration(gomock.Any(), uint64(4)).Return(&dbsql.Boleto{ID: 12, Status: StatusPending}, nil)
			},
			wantStatus: http.StatusAccepted,
		},
		{
			name: "installment missing",
			path: "/installments/5/boletos",
			setup: func() {
				svc.EXPECT().RequestGeneration(gomock.Any(), uint64(5)).Return(nil, common.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{name: "bad id", path: "/installments/zero/boletos", setup: func() {}, wantStatus: http.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setup()
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, tc.path, nil))
			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestHandler_PDF(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewMockBoletoService(ctrl)

	body := "%PDF-1.4\n..."
	svc.EXPECT().PDF(gomock.Any(), uint64(12)).Return(io.NopCloser(strings.NewReader(body)), &common.StoredFile{Filename: "boleto-12.pdf", Size: int64(len(body))}, nil)

	rec := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boletos/12/pdf", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "boleto-12.pdf")
	assert.Equal(t, body, rec.Body.String())
}

func TestHandler_ListByInstallment(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewMockBoletoService(ctrl)

	id := uint64(4)
	svc.EXPECT().List(gomock.Any(), ListFilter{InstallmentID: &id}, common.PageQuery{Page: 1, Limit: 10}).
		Return(common.NewPaginated([]dbsql.Boleto{{ID: 12}}, 1, common.PageQuery{Page: 1, Limit: 10}), nil)

	rec := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/installments/4/boletos", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"totalItems":1`)
}
