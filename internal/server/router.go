package server

import (
	"net/http"

	"agilefinance/internal/boleto"
	"agilefinance/internal/chat"
	"agilefinance/internal/common"
	"agilefinance/internal/config"
	"agilefinance/internal/contact"
	"agilefinance/internal/installment"
	"agilefinance/internal/invoice"
	"agilefinance/internal/license"
	"agilefinance/internal/media"
	"agilefinance/internal/movement"
	"agilefinance/internal/person"
	"agilefinance/internal/realtime"
	"agilefinance/internal/systemconfig"
	"agilefinance/internal/user"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const APIPrefix = "/api/v1"

// Handlers groups every module mounted on the router. Files is nil when
// GridFS is disabled.
type Handlers struct {
	Users        *user.Handler
	Licenses     *license.Handler
	Persons      *person.Handler
	Contacts     *contact.Handler
	Chats        *chat.Handler
	Movements    *movement.Handler
	Installments *installment.Handler
	Boletos      *boleto.Handler
	Invoices     *invoice.Handler
	SystemConfig *systemconfig.Handler
	Files        *media.Handler
	Socket       *realtime.SocketHandler
}

type registrar interface {
	RegisterRoutes(r *mux.Router)
}

func (h Handlers) api() []registrar {
	out := []registrar{
		h.Users, h.Licenses, h.Persons, h.Contacts, h.Chats,
		h.Movements, h.Installments, h.Boletos, h.Invoices, h.SystemConfig,
	}
	if h.Files != nil {
		out = append(out, h.Files)
	}
	return out
}

// NewRouter mounts the REST API under /api/v1 behind bearer auth. The
// socket namespace lives on the root and authenticates its own handshake.
func NewRouter(jwt *common.JWTManager, handlers Handlers, checks Checks, log *zap.Logger) *mux.Router {
	r := mux.NewRouter()
	r.Use(Recoverer(log), RequestLogger(log))

	if handlers.Socket != nil {
		handlers.Socket.RegisterRoutes(r)
	}

	api := r.PathPrefix(APIPrefix).Subrouter()
	api.Use(common.AuthMiddleware(jwt, log))
	api.HandleFunc("/health", NewHealthHandler(checks, log)).Methods(http.MethodGet)
	for _, h := range handlers.api() {
		h.RegisterRoutes(api)
	}

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		common.WriteError(w, log, common.ErrNotFound)
	})
	return r
}

// NewHTTPServer wraps the router with CORS outside of mux so preflight
// requests are answered without a matching route.
func NewHTTPServer(cfg *config.Config, router *mux.Router) *http.Server {
	return &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:      CORS(cfg.Server.AllowedOrigins)(router),
		ReadTimeout:  seconds(cfg.Server.ReadTimeout),
		WriteTimeout: seconds(cfg.Server.WriteTimeout),
	}
}
