package user

import (
	"net/http"
	"strconv"

	"agilefinance/internal/common"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Handler struct {
	userService UserService
	log         *zap.Logger
}

func NewHandler(userService UserService, log *zap.Logger) *Handler {
	return &Handler{userService: userService, log: log}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/auth/login", h.login).Methods(http.MethodPost)
	r.HandleFunc("/auth/me", h.me).Methods(http.MethodGet)
	r.HandleFunc("/users", h.list).Methods(http.MethodGet)
	r.HandleFunc("/users", h.create).Methods(http.MethodPost)
	r.HandleFunc("/users/{id}", h.get).Methods(http.MethodGet)
	r.HandleFunc("/users/{id}", h.update).Methods(http.MethodPut)
	r.HandleFunc("/users/{id}", h.deactivate).Methods(http.MethodDelete)
	r.HandleFunc("/users/{id}/licenses", h.grant).Methods(http.MethodPost)
	r.HandleFunc("/users/{id}/licenses/{licenseId}", h.revoke).Methods(http.MethodDelete)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	res, err := h.userService.LoginUser(r.Context(), req)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	claims, ok := common.ClaimsFromContext(r.Context())
	if !ok {
		common.WriteError(w, h.log, common.ErrUnauthorized)
		return
	}

	user, err := h.userService.GetProfile(r.Context(), claims.UserID)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, user)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	page, err := common.ParsePageQuery(r)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	filter := ListFilter{Search: r.URL.Query().Get("search")}
	if raw := r.URL.Query().Get("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			common.WriteError(w, h.log, common.NewValidationError("active", "must be a boolean"))
			return
		}
		filter.Active = &active
	}
	if raw := r.URL.Query().Get("licenseId"); raw != "" {
		id, err := common.ParseID(raw, "licenseId")
		if err != nil {
			common.WriteError(w, h.log, err)
			return
		}
		filter.LicenseID = &id
	}

	result, err := h.userService.ListUsers(r.Context(), filter, page)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	user, err := h.userService.RegisterUser(r.Context(), req)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, user)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := common.ParseID(mux.Vars(r)["id"], "id")
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	user, err := h.userService.GetProfile(r.Context(), id)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, user)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := common.ParseID(mux.Vars(r)["id"], "id")
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	var req UpdateUserRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	user, err := h.userService.UpdateUser(r.Context(), id, req)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, user)
}

func (h *Handler) deactivate(w http.ResponseWriter, r *http.Request) {
	id, err := common.ParseID(mux.Vars(r)["id"], "id")
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	if err := h.userService.DeactivateUser(r.Context(), id); err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type grantRequest struct {
	LicenseID uint64 `json:"licenseId" validate:"required,gt=0"`
}

func (h *Handler) grant(w http.ResponseWriter, r *http.Request) {
	id, err := common.ParseID(mux.Vars(r)["id"], "id")
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	var req grantRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	if err := h.userService.GrantLicense(r.Context(), id, req.LicenseID); err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) revoke(w http.ResponseWriter, r *http.Request) {
	id, err := common.ParseID(mux.Vars(r)["id"], "id")
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	licenseID, err := common.ParseID(mux.Vars(r)["licenseId"], "licenseId")
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	if err := h.userService.RevokeLicense(r.Context(), id, licenseID); err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
