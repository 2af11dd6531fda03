package contact

import (
	"net/http"
	"strconv"

	"agilefinance/internal/common"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Handler struct {
	service ContactService
	log     *zap.Logger
}

func NewHandler(service ContactService, log *zap.Logger) *Handler {
	return &Handler{service: service, log: log}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/contacts", h.list).Methods(http.MethodGet)
	r.HandleFunc("/contacts", h.create).Methods(http.MethodPost)
	r.HandleFunc("/contacts/{id}", h.get).Methods(http.MethodGet)
	r.HandleFunc("/contacts/{id}", h.update).Methods(http.MethodPut)
	r.HandleFunc("/contacts/{id}", h.deactivate).Methods(http.MethodDelete)
	r.HandleFunc("/persons/{personId}/contacts", h.listByPerson).Methods(http.MethodGet)
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
	filter := ListFilter{Type: q.Get("type"), Search: q.Get("search")}

	if filter.Type != "" && !common.ContactType(filter.Type).IsValid() {
		return filter, common.NewValidationError("type", "must be one of [phone email whatsapp telegram]")
	}
	if raw := q.Get("personId"); raw != "" {
		id, err := common.ParseID(raw, "personId")
		if err != nil {
			return filter, err
		}
		filter.PersonID = &id
	}
	if raw := q.Get("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, common.NewValidationError("active", "must be a boolean")
		}
		filter.Active = &active
	}
	return filter, nil
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req CreateContactRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	c, err := h.service.Create(r.Context(), req)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, c)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := common.ParseID(mux.Vars(r)["id"], "id")
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	c, err := h.service.Get(r.Context(), id)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, c)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := common.ParseID(mux.Vars(r)["id"], "id")
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	var req UpdateContactRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	c, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, c)
}

func (h *Handler) deactivate(w http.ResponseWriter, r *http.Request) {
	id, err := common.ParseID(mux.Vars(r)["id"], "id")
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	if err := h.service.Deactivate(r.Context(), id); err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listByPerson(w http.ResponseWriter, r *http.Request) {
	personID, err := common.ParseID(mux.Vars(r)["personId"], "personId")
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	contacts, err := h.service.ListByPerson(r.Context(), personID)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, contacts)
}
