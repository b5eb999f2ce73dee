package internal

import (
	"context"
	"errors"
	"pvc/internal/events"
	"pvc/internal/ledger"
	"pvc/internal/ledger/interfaces"
	"pvc/internal/models"
	"pvc/internal/providers"
	"pvc/internal/services"
	"pvc/internal/structures"
	"time"
)

type App struct {
	Conf    *structures.Config
	Logger  providers.Logger
	Metrics providers.MetricsProviderInterface
	Bridge  events.BridgeInterface

	counter services.PostViewsCounterInterface
	manual  services.ManualCounterInterface
	ledger  ledger.VisitLedgerInterface
	jar     interfaces.JarInterface
}

func NewApp(conf *structures.Config, logger providers.Logger, metrics providers.MetricsProviderInterface, bridge events.BridgeInterface, counter services.PostViewsCounterInterface, manual services.ManualCounterInterface, visitLedger ledger.VisitLedgerInterface, jar interfaces.JarInterface) *App {
	logger.Infof(providers.TypeApp, "Starting %s (%s mode)", conf.AppName, conf.Counter.Mode)
	return &App{
		Conf:    conf,
		Logger:  logger,
		Metrics: metrics,
		Bridge:  bridge,
		counter: counter,
		manual:  manual,
		ledger:  visitLedger,
		jar:     jar,
	}
}

// Check runs the page load round trip for the configured post and waits for it.
func (a *App) Check(ctx context.Context) (*models.ResponseEnvelope, error) {
	return a.counter.Init(ctx).Wait(ctx)
}

// Count sends one manual counting request for ids.
func (a *App) Count(ctx context.Context, ids []int) (*models.ResponseEnvelope, error) {
	if len(ids) == 0 {
		return nil, errors.New("no post ids given")
	}
	return a.manual.Count(ctx, services.ManualArgs{
		URL:   a.Conf.Counter.RequestURL,
		Nonce: a.Conf.Counter.Nonce,
		IDs:   ids,
	})
}

type JarReport struct {
	StorageName string               `json:"storage_name"`
	Snapshot    string               `json:"snapshot"`
	Records     []models.VisitRecord `json:"records"`
}

// Snapshot reports what the next round trip would send.
func (a *App) Snapshot() JarReport {
	name := a.counter.StorageName()
	return JarReport{
		StorageName: name,
		Snapshot:    a.counter.ReadCookieData(name),
		Records:     a.ledger.Records(name),
	}
}

func (a *App) Close() {
	if err := a.Metrics.WriteTextfile(); err != nil {
		a.Logger.Errorf(providers.TypeApp, "Unable to write metrics: %s", err)
	}
	if c, ok := a.jar.(interface{ Close() }); ok {
		c.Close()
	}
	a.Logger.Infof(providers.TypeApp, "gracefully stopped at %s", time.Now().Format(time.RFC3339))
	a.Logger.Close()
}
