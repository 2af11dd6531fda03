package contact

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"agilefinance/internal/common"
	"agilefinance/internal/dbsql"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(svc ContactService) *mux.Router {
	r := mux.NewRouter()
	NewHandler(svc, zap.NewNop()).RegisterRoutes(r)
	return r
}

// The handler runs against the real service so the stored value is the one
// the normalizer produced.
func TestHandler_CreatePhoneContactForPerson(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockContactRepository(ctrl)
	var stored *dbsql.Contact
	mockRepo.EXPECT().Person(gomock.Any(), uint64(42)).Return(&dbsql.Person{ID: 42}, nil)
	mockRepo.EXPECT().CountByPerson(gomock.Any(), uint64(42)).Return(int64(0), nil)
	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c *dbsql.Contact) error {
		c.ID = 1
		stored = c
		return nil
	})

	router := newTestRouter(NewContactService(mockRepo, zap.NewNop()))
	body := `{"personId":42,"type":"phone","contact":"(11) 98765-4321"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/contacts", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, stored)
	assert.Equal(t, "11987654321", stored.Value)

	var got dbsql.Contact
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "11987654321", got.Value)
	assert.True(t, got.IsMain)
}

func TestHandler_Create_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := newTestRouter(NewContactService(NewMockContactRepository(ctrl), zap.NewNop()))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/contacts", strings.NewReader(`{"type":"pigeon"}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"contact":"is required"`)
}

func TestHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockContactService(ctrl)
	mockSvc.EXPECT().List(gomock.Any(), gomock.Any(), common.PageQuery{Page: 2, Limit: 20}).DoAndReturn(
		func(_ context.Context, f ListFilter, p common.PageQuery) (common.Paginated[dbsql.Contact], error) {
			require.NotNil(t, f.PersonID)
			assert.Equal(t, uint64(42), *f.PersonID)
			assert.Equal(t, "email", f.Type)
			return common.NewPaginated([]dbsql.Contact{{ID: 1}}, 21, p), nil
		})

	rec := httptest.NewRecorder()
	newTestRouter(mockSvc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/contacts?page=2&limit=20&personId=42&type=email", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var page common.Paginated[dbsql.Contact]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, 2, page.Meta.TotalPages)
	assert.Equal(t, 1, page.Meta.ItemCount)
}

func TestHandler_List_BadQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := newTestRouter(NewMockContactService(ctrl))
	for _, q := range []string{"limit=500", "type=fax", "active=maybe", "personId=-1"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/contacts?"+q, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, q)
	}
}

func TestHandler_GetAndDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockContactService(ctrl)
	router := newTestRouter(mockSvc)

	mockSvc.EXPECT().Get(gomock.Any(), uint64(404)).Return(nil, common.ErrNotFound)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/contacts/404", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	mockSvc.EXPECT().Deactivate(gomock.Any(), uint64(1)).Return(common.ErrConflict)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/contacts/1", nil))
	assert.Equal(t, http.StatusConflict, rec.Code)

	mockSvc.EXPECT().Deactivate(gomock.Any(), uint64(2)).Return(nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/contacts/2", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	mockSvc.EXPECT().ListByPerson(gomock.Any(), uint64(42)).Return([]dbsql.Contact{{ID: 1}, {ID: 2}}, nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/persons/42/contacts", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
