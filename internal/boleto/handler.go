package boleto

import (
	"fmt"
	"io"
	"net/http"

	"agilefinance/internal/common"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Handler struct {
	service BoletoService
	log     *zap.Logger
}

func NewHandler(service BoletoService, log *zap.Logger) *Handler {
	return &Handler{service: service, log: log}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/boletos", h.list).Methods(http.MethodGet)
	r.HandleFunc("/boletos", h.create).Methods(http.MethodPost)
	r.HandleFunc("/boletos/{id}", h.get).Methods(http.MethodGet)
	r.HandleFunc("/boletos/{id}", h.update).Methods(http.MethodPut)
	r.HandleFunc("/boletos/{id}", h.delete).Methods(http.MethodDelete)
	r.HandleFunc("/boletos/{id}/pdf", h.pdf).Methods(http.MethodGet)
	r.HandleFunc("/installments/{id}/boletos", h.byInstallment).Methods(http.MethodGet)
	r.HandleFunc("/installments/{id}/boletos", h.generate).Methods(http.MethodPost)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	page, err := common.ParsePageQuery(r)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	filter := ListFilter{Status: r.URL.Query().Get("status")}
	if raw := r.URL.Query().Get("installmentId"); raw != "" {
		id, err := common.ParseID(raw, "installmentId")
		if err != nil {
			common.WriteError(w, h.log, err)
			return
		}
		filter.InstallmentID = &id
	}

	result, err := h.service.List(r.Context(), filter, page)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) byInstallment(w http.ResponseWriter, r *http.Request) {
	id, err := common.ParseID(mux.Vars(r)["id"], "id")
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	page, err := common.ParsePageQuery(r)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	result, err := h.service.List(r.Context(), ListFilter{InstallmentID: &id}, page)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req CreateBoletoRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	b, err := h.service.Create(r.Context(), req)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, b)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := common.ParseID(mux.Vars(r)["id"], "id")
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	b, err := h.service.Get(r.Context(), id)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, b)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := common.ParseID(mux.Vars(r)["id"], "id")
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	var req UpdateBoletoRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	b, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, b)
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

func (h *Handler) generate(w http.ResponseWriter, r *http.Request) {
	id, err := common.ParseID(mux.Vars(r)["id"], "id")
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	b, err := h.service.RequestGeneration(r.Context(), id)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusAccepted, b)
}

func (h *Handler) pdf(w http.ResponseWriter, r *http.Request) {
	id, err := common.ParseID(mux.Vars(r)["id"], "id")
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	reader, file, err := h.service.PDF(r.Context(), id)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	defer reader.Close()

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Length", fmt.Sprintf("%d", file.Size))
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", file.Filename))
	if _, err := io.Copy(w, reader); err != nil {
		h.log.Warn("error streaming boleto pdf", zap.Uint64("boleto_id", id), zap.Error(err))
	}
}
