//go:build wireinject
// +build wireinject

package wire

import (
	"agilefinance/internal/boleto"
	"agilefinance/internal/chat"
	"agilefinance/internal/contact"
	"agilefinance/internal/installment"
	"agilefinance/internal/invoice"
	"agilefinance/internal/license"
	"agilefinance/internal/movement"
	"agilefinance/internal/person"
	"agilefinance/internal/realtime"
	"agilefinance/internal/server"
	"agilefinance/internal/systemconfig"
	"agilefinance/internal/user"

	"github.com/google/wire"
)

var infraSet = wire.NewSet(
	ProvideConfig,
	ProvideLogger,
	ProvideDatabase,
	ProvideMongo,
	ProvideFileStore,
	ProvideRedis,
	ProvideQueue,
	ProvideJWT,
	ProvideServerConfig,
)

var realtimeSet = wire.NewSet(
	realtime.NewHub,
	ProvideRelay,
	realtime.NewEmitter,
	realtime.NewSocketHandler,
)

var accountSet = wire.NewSet(
	user.NewUserRepository,
	user.NewLicenseGrantRepository,
	user.NewUserService,
	user.NewHandler,
	license.NewLicenseRepository,
	license.NewLicenseService,
	license.NewHandler,
	systemconfig.NewRepository,
	systemconfig.NewService,
	systemconfig.NewHandler,
)

var chatSet = wire.NewSet(
	person.NewPersonRepository,
	person.NewPersonService,
	person.NewHandler,
	contact.NewContactRepository,
	contact.NewContactService,
	contact.NewHandler,
	chat.NewChatRepository,
	chat.NewStatusRepository,
	chat.NewPresenceRepository,
	ProvideEvolutionClient,
	wire.Bind(new(chat.Sender), new(*chat.EvolutionClient)),
	chat.NewChatService,
	chat.NewPresenceService,
	chat.NewHandler,
)

var financeSet = wire.NewSet(
	movement.NewMovementRepository,
	movement.NewMovementService,
	movement.NewHandler,
	installment.NewInstallmentRepository,
	installment.NewInstallmentService,
	installment.NewHandler,
	wire.Bind(new(movement.InstallmentGenerator), new(installment.InstallmentService)),
	boleto.NewBoletoRepository,
	boleto.NewBoletoService,
	boleto.NewHandler,
	invoice.NewInvoiceRepository,
	invoice.NewNFSeRepository,
	invoice.NewInvoiceService,
	invoice.NewNFSeService,
	invoice.NewHandler,
	ProvideWorkers,
)

var serverSet = wire.NewSet(
	ProvideMediaHandler,
	wire.Struct(new(server.Handlers), "*"),
	ProvideChecks,
	server.NewRouter,
	server.NewHealthServer,
)

func InitializeApplication() (*Application, func(), error) {
	wire.Build(
		infraSet,
		realtimeSet,
		accountSet,
		chatSet,
		financeSet,
		serverSet,
		wire.Struct(new(Application), "*"),
	)
	return nil, nil, nil
}
