package installment

import (
	"net/http"
	"time"

	"agilefinance/internal/common"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Handler struct {
	service InstallmentService
	log     *zap.Logger
}

func NewHandler(service InstallmentService, log *zap.Logger) *Handler {
	return &Handler{service: service, log: log}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/installments", h.list).Methods(http.MethodGet)
	r.HandleFunc("/installments", h.create).Methods(http.MethodPost)
	r.HandleFunc("/installments/{id}", h.get).Methods(http.MethodGet)
	r.HandleFunc("/installments/{id}", h.update).Methods(http.MethodPut)
	r.HandleFunc("/installments/{id}", h.delete).Methods(http.MethodDelete)
	r.HandleFunc("/movements/{id}/installments", h.byMovement).Methods(http.MethodGet)
	r.HandleFunc("/movements/{id}/installments", h.generate).Methods(http.MethodPost)
	r.HandleFunc("/payment-methods", h.paymentMethods).Methods(http.MethodGet)
	r.HandleFunc("/payment-methods", h.createPaymentMethod).Methods(http.MethodPost)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	page, err := common.ParsePageQuery(r)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	q := r.URL.Query()
	filter := ListFilter{Status: q.Get("status")}
	fields := map[string]string{}
	if raw := q.Get("movementId"); raw != "" {
		id, err := common.ParseID(raw, "movementId")
		if err != nil {
			fields["movementId"] = "must be a positive integer"
		} else {
			filter.MovementID = &id
		}
	}
	for name, target := range map[string]**time.Time{"dueDateStart": &filter.DueFrom, "dueDateEnd": &filter.DueTo} {
		raw := q.Get(name)
		if raw == "" {
			continue
		}
		d, err := time.Parse(dateLayout, raw)
		if err != nil {
			fields[name] = "must be a date in YYYY-MM-DD format"
			continue
		}
		*target = &d
	}
	if len(fields) > 0 {
		common.WriteError(w, h.log, &common.ValidationError{Fields: fields})
		return
	}

	result, err := h.service.List(r.Context(), filter, page)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req CreateInstallmentRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	i, err := h.service.Create(r.Context(), req)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, i)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := common.ParseID(mux.Vars(r)["id"], "id")
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	i, err := h.service.Get(r.Context(), id)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, i)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := common.ParseID(mux.Vars(r)["id"], "id")
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	var req UpdateInstallmentRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	i, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, i)
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

func (h *Handler) byMovement(w http.ResponseWriter, r *http.Request) {
	id, err := common.ParseID(mux.Vars(r)["id"], "id")
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	items, err := h.service.ByMovement(r.Context(), id)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, items)
}

func (h *Handler) generate(w http.ResponseWriter, r *http.Request) {
	id, err := common.ParseID(mux.Vars(r)["id"], "id")
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	var req GenerateRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	items, err := h.service.Generate(r.Context(), id, req.PaymentMethodID)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, items)
}

func (h *Handler) paymentMethods(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"
	items, err := h.service.PaymentMethods(r.Context(), activeOnly)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, items)
}

func (h *Handler) createPaymentMethod(w http.ResponseWriter, r *http.Request) {
	var req CreatePaymentMethodRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	pm, err := h.service.CreatePaymentMethod(r.Context(), req)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, pm)
}
