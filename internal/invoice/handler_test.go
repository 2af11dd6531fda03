package invoice

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

	invoices := NewMockInvoiceService(ctrl)
	nfse := NewMockNFSeService(ctrl)
	router := mux.NewRouter()
	NewHandler(invoices, nfse, zap.NewNop()).RegisterRoutes(router)

	movement := uint64(9)
	page := common.PageQuery{Page: 1, Limit: 10}

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
			path:   "/invoices",
			body:   `{"movementId":9}`,
			setup: func() {
				invoices.EXPECT().Create(gomock.Any(), CreateInvoiceRequest{MovementID: 9}).
					Return(&dbsql.Invoice{ID: 31, MovementID: 9, Status: StatusPending, TotalAmount: 1500}, nil)
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"status":"PENDING"`,
		},
		{name: "create without movement", method: http.MethodPost, path: "/invoices", body: `{}`, setup: func() {}, wantStatus: http.StatusBadRequest},
		{
			name:   "list by movement",
			method: http.MethodGet,
			path:   "/invoices?movementId=9&status=AUTHORIZED",
			setup: func() {
				invoices.EXPECT().List(gomock.Any(), ListFilter{MovementID: &movement, Status: StatusAuthorized}, page).
					Return(common.NewPaginated([]dbsql.Invoice{{ID: 31}}, 1, page), nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"totalItems":1`,
		},
		{name: "list bad movement", method: http.MethodGet, path: "/invoices?movementId=x", setup: func() {}, wantStatus: http.StatusBadRequest},
		{
			name:   "get missing",
			method: http.MethodGet,
			path:   "/invoices/99",
			setup: func() {
				invoices.EXPECT().Get(gomock.Any(), uint64(99)).Return(nil, common.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "delete with nfse",
			method: http.MethodDelete,
			path:   "/invoices/31",
			setup: func() {
				invoices.EXPECT().Delete(gomock.Any(), uint64(31)).Return(common.ErrConflict)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:   "movement invoices",
			method: http.MethodGet,
			path:   "/movements/9/invoices",
			setup: func() {
				invoices.EXPECT().ByMovement(gomock.Any(), uint64(9)).Return([]dbsql.Invoice{}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name:   "issue nfse",
			method: http.MethodPost,
			path:   "/invoices/31/nfse",
			body:   `{"integrationId":"nf-abc"}`,
			setup: func() {
				nfse.EXPECT().Create(gomock.Any(), uint64(31), CreateNFSeRequest{IntegrationID: "nf-abc"}).
					Return(&dbsql.NFSe{ID: 5, InvoiceID: 31, Status: StatusProcessing}, nil)
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"status":"PROCESSING"`,
		},
		{
			name:   "nfse by integration id",
			method: http.MethodGet,
			path:   "/nfse/integration/nf-abc",
			setup: func() {
				nfse.EXPECT().ByIntegrationID(gomock.Any(), "nf-abc").Return(&dbsql.NFSe{ID: 5, IntegrationID: "nf-abc"}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"integrationId":"nf-abc"`,
		},
		{
			name:   "authorize",
			method: http.MethodPatch,
			path:   "/nfse/5/status",
			body:   `{"status":"AUTHORIZED","number":"123"}`,
			setup: func() {
				nfse.EXPECT().UpdateStatus(gomock.Any(), uint64(5), UpdateNFSeStatusRequest{Status: StatusAuthorized, Number: "123"}).
					Return(&dbsql.NFSe{ID: 5, Status: StatusAuthorized, Number: "123"}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"number":"123"`,
		},
		{name: "status missing", method: http.MethodPatch, path: "/nfse/5/status", body: `{}`, setup: func() {}, wantStatus: http.StatusBadRequest},
		{
			name:   "cancel twice",
			method: http.MethodPost,
			path:   "/nfse/5/cancel",
			body:   `{"reason":"Erro no valor do servico prestado"}`,
			setup: func() {
				nfse.EXPECT().Cancel(gomock.Any(), uint64(5), CancelNFSeRequest{Reason: "Erro no valor do servico prestado"}).
					Return(nil, common.ErrConflict)
			},
			wantStatus: http.StatusConflict,
		},
		{name: "cancel short reason", method: http.MethodPost, path: "/nfse/5/cancel", body: `{"reason":"typo"}`, setup: func() {}, wantStatus: http.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setup()
			req := httptest.NewRequest(tc.method, tc.path, bytes.NewBufferString(tc.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tc.wantBody)
			}
		})
	}
}
