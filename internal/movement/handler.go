package movement

import (
	"net/http"
	"strings"
	"time"

	"agilefinance/internal/common"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Handler struct {
	service MovementService
	log     *zap.Logger
}

func NewHandler(service MovementService, log *zap.Logger) *Handler {
	return &Handler{service: service, log: log}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/movements", h.list).Methods(http.MethodGet)
	r.HandleFunc("/movements", h.create).Methods(http.MethodPost)
	r.HandleFunc("/movements/{id}", h.get).Methods(http.MethodGet)
	r.HandleFunc("/movements/{id}", h.update).Methods(http.MethodPut)
	r.HandleFunc("/movements/{id}", h.delete).Methods(http.MethodDelete)
	r.HandleFunc("/movements/{id}/status", h.updateStatus).Methods(http.MethodPatch)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	page, err := common.ParsePageQuery(r)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	filter, err := parseListFilter(r)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	result, err := h.service.List(r.Context(), filter, page)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, result)
}

func parseListFilter(r *http.Request) (ListFilter, error) {
	q := r.URL.Query()
	filter := ListFilter{
		Search:    q.Get("search"),
		OrderBy:   q.Get("orderBy"),
		Ascending: strings.EqualFold(q.Get("orderDirection"), "ASC"),
	}
	fields := map[string]string{}

	if filter.OrderBy != "" {
		if _, ok := orderColumns[filter.OrderBy]; !ok {
			fields["orderBy"] = "must be one of [movementDate id movementTypeId movementStatusId totalAmount]"
		}
	}

	optionalID := func(name string) *uint64 {
		raw := q.Get(name)
		if raw == "" {
			return nil
		}
		id, err := common.ParseID(raw, name)
		if err != nil {
			fields[name] = "must be a positive integer"
			return nil
		}
		return &id
	}
	filter.PersonID = optionalID("personId")
	filter.MovementTypeID = optionalID("movementTypeId")

	// movementStatusId accepts a comma separated list
	if raw := q.Get("movementStatusId"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			id, err := common.ParseID(strings.TrimSpace(part), "movementStatusId")
			if err != nil {
				fields["movementStatusId"] = "must be a positive integer or a comma separated list of them"
				break
			}
			filter.StatusIDs = append(filter.StatusIDs, id)
		}
	}

	optionalDate := func(name string) *time.Time {
		raw := q.Get(name)
		if raw == "" {
			return nil
		}
		d, err := time.Parse(dateLayout, raw)
		if err != nil {
			fields[name] = "must be a date in YYYY-MM-DD format"
			return nil
		}
		return &d
	}
	filter.DateFrom = optionalDate("movementDateStart")
	filter.DateTo = optionalDate("movementDateEnd")

	if claims, ok := common.ClaimsFromContext(r.Context()); ok && claims.LicenseID != nil {
		filter.LicenseID = claims.LicenseID
	}

	if len(fields) > 0 {
		return filter, &common.ValidationError{Fields: fields}
	}
	return filter, nil
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req CreateMovementRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	if req.LicenseID == nil {
		if claims, ok := common.ClaimsFromContext(r.Context()); ok {
			req.LicenseID = claims.LicenseID
		}
	}

	m, err := h.service.Create(r.Context(), req)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, m)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := common.ParseID(mux.Vars(r)["id"], "id")
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	m, err := h.service.Get(r.Context(), id)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, m)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := common.ParseID(mux.Vars(r)["id"], "id")
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	var req UpdateMovementRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	m, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, m)
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := common.ParseID(mux.Vars(r)["id"], "id")
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	var req UpdateStatusRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	m, err := h.service.UpdateStatus(r.Context(), id, req)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, m)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := common.ParseID(mux.Vars(r)["id"], "id")
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
