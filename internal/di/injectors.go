//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"
	"pvc/internal"
	"pvc/internal/events"
	"pvc/internal/ledger"
	"pvc/internal/providers"
	"pvc/internal/services"
	"pvc/internal/structures"
	"pvc/internal/transport"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewHTTPClientProvider,

		ledger.NewJarProvider,
		ledger.NewVisitLedger,
		wire.Bind(new(ledger.VisitLedgerInterface), new(*ledger.VisitLedger)),
		transport.NewDeliveryTransport,
		wire.Bind(new(transport.DeliveryTransportInterface), new(*transport.DeliveryTransport)),
		events.NewBridge,
		wire.Bind(new(events.BridgeInterface), new(*events.Bridge)),
		services.NewPostViewsCounter,
		services.NewManualCounter,
		internal.NewApp,
	)

	return nil, nil
}
