package invoice

import (
	"net/http"

	"agilefinance/internal/common"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Handler struct {
	invoices InvoiceService
	nfse     NFSeService
	log      *zap.Logger
}

func NewHandler(invoices InvoiceService, nfse NFSeService, log *zap.Logger) *Handler {
	return &Handler{invoices: invoices, nfse: nfse, log: log}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/invoices", h.list).Methods(http.MethodGet)
	r.HandleFunc("/invoices", h.create).Methods(http.MethodPost)
	r.HandleFunc("/invoices/{id}", h.get).Methods(http.MethodGet)
	r.HandleFunc("/invoices/{id}", h.update).Methods(http.MethodPut)
	r.HandleFunc("/invoices/{id}", h.delete).Methods(http.MethodDelete)
	r.HandleFunc("/movements/{id}/invoices", h.byMovement).Methods(http.MethodGet)

	r.HandleFunc("/invoices/{id}/nfse", h.listNFSe).Methods(http.MethodGet)
	r.HandleFunc("/invoices/{id}/nfse", h.createNFSe).Methods(http.MethodPost)
	r.HandleFunc("/nfse/integration/{integrationId}", h.nfseByIntegration).Methods(http.MethodGet)
	r.HandleFunc("/nfse/{id}", h.getNFSe).Methods(http.MethodGet)
	r.HandleFunc("/nfse/{id}/status", h.updateNFSeStatus).Methods(http.MethodPatch)
	r.HandleFunc("/nfse/{id}/cancel", h.cancelNFSe).Methods(http.MethodPost)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	page, err := common.ParsePageQuery(r)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	q := r.URL.Query()
	filter := ListFilter{Status: q.Get("status"), ReferenceID: q.Get("referenceId")}
	if raw := q.Get("movementId"); raw != "" {
		id, err := common.ParseID(raw, "movementId")
		if err != nil {
			common.WriteError(w, h.log, err)
			return
		}
		filter.MovementID = &id
	}

	result, err := h.invoices.List(r.Context(), filter, page)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req CreateInvoiceRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	inv, err := h.invoices.Create(r.Context(), req)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, inv)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := common.ParseID(mux.Vars(r)["id"], "id")
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	inv, err := h.invoices.Get(r.Context(), id)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, inv)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := common.ParseID(mux.Vars(r)["id"], "id")
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	var req UpdateInvoiceRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	inv, err := h.invoices.Update(r.Context(), id, req)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, inv)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := common.ParseID(mux.Vars(r)["id"], "id")
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	if err := h.invoices.Delete(r.Context(), id); err != nil {
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

	items, err := h.invoices.ByMovement(r.Context(), id)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, items)
}

func (h *Handler) listNFSe(w http.ResponseWriter, r *http.Request) {
	id, err := common.ParseID(mux.Vars(r)["id"], "id")
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	items, err := h.nfse.ByInvoice(r.Context(), id)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, items)
}

func (h *Handler) createNFSe(w http.ResponseWriter, r *http.Request) {
	id, err := common.ParseID(mux.Vars(r)["id"], "id")
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	var req CreateNFSeRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	n, err := h.nfse.Create(r.Context(), id, req)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, n)
}

func (h *Handler) getNFSe(w http.ResponseWriter, r *http.Request) {
	id, err := common.ParseID(mux.Vars(r)["id"], "id")
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	n, err := h.nfse.Get(r.Context(), id)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, n)
}

func (h *Handler) nfseByIntegration(w http.ResponseWriter, r *http.Request) {
	n, err := h.nfse.ByIntegrationID(r.Context(), mux.Vars(r)["integrationId"])
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, n)
}

func (h *Handler) updateNFSeStatus(w http.ResponseWriter, r *http.Request) {
	id, err := common.ParseID(mux.Vars(r)["id"], "id")
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	var req UpdateNFSeStatusRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	n, err := h.nfse.UpdateStatus(r.Context(), id, req)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, n)
}

func (h *Handler) cancelNFSe(w http.ResponseWriter, r *http.Request) {
	id, err := common.ParseID(mux.Vars(r)["id"], "id")
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	var req CancelNFSeRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	n, err := h.nfse.Cancel(r.Context(), id, req)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, n)
}
