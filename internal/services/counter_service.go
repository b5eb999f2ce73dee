package services

import (
	"context"
	"pvc/internal/events"
	"pvc/internal/ledger"
	"pvc/internal/models"
	"pvc/internal/providers"
	"pvc/internal/structures"
	"pvc/internal/transport"
	"sync"
)

const StorageTypeCookies = "cookies"

type PostViewsCounterInterface interface {
	Init(ctx context.Context) *Pending
	Request(ctx context.Context) (*models.ResponseEnvelope, error)
	SaveCookieData(update *models.StorageUpdate) int
	ReadCookieData(name string) string
	StorageName() string
}

// PostViewsCounter performs the per page load round trip: read the ledger,
// send one counting request, write the returned records, notify listeners.
type PostViewsCounter struct {
	target      transport.Target
	storageName string

	ledger    ledger.VisitLedgerInterface
	transport transport.DeliveryTransportInterface
	bridge    events.BridgeInterface
	logger    providers.Logger
	metrics   providers.MetricsProviderInterface

	once    sync.Once
	pending *Pending
}

func NewPostViewsCounter(conf *structures.Config, visitLedger ledger.VisitLedgerInterface, deliveryTransport transport.DeliveryTransportInterface, bridge events.BridgeInterface, logger providers.Logger, metrics providers.MetricsProviderInterface) PostViewsCounterInterface {
	return &PostViewsCounter{
		target: transport.Target{
			URL:    conf.Counter.RequestURL,
			Nonce:  conf.Counter.Nonce,
			PostID: conf.Counter.PostID,
		},
		storageName: ledger.StorageName(conf.Counter.Multisite),
		ledger:      visitLedger,
		transport:   deliveryTransport,
		bridge:      bridge,
		logger:      logger,
		metrics:     metrics,
	}
}

// Init starts the round trip on its own goroutine and returns at once. Later
// calls return the first handle without sending again.
func (c *PostViewsCounter) Init(ctx context.Context) *Pending {
	c.once.Do(func() {
		c.pending = newPending()
		go func() {
			c.pending.resolve(c.Request(ctx))
		}()
	})
	return c.pending
}

// Request performs one round trip synchronously. Failures are logged and
// counted, the ledger is left untouched and no event fires.
func (c *PostViewsCounter) Request(ctx context.Context) (*models.ResponseEnvelope, error) {
	payload := []models.Pair{
		{Key: "storage_type", Value: StorageTypeCookies},
		{Key: "storage_data", Value: c.ReadCookieData(c.storageName)},
	}

	mode := string(c.transport.Mode())
	env, err := c.transport.Send(ctx, c.target, payload)
	c.metrics.IncRoundTrips(mode, outcome(err))
	if err != nil {
		data := ""
		if env != nil {
			data = env.Data
		}
		logFailure(c.logger, "Post views counter", err, data)
		return env, err
	}

	c.SaveCookieData(env.Storage)
	c.bridge.Notify(events.EventCheckPost, env.Detail)
	c.metrics.IncEventsTotal(events.EventCheckPost)
	return env, nil
}

func (c *PostViewsCounter) SaveCookieData(update *models.StorageUpdate) int {
	if update == nil {
		return 0
	}
	written := c.ledger.Write(update)
	c.logger.Debugf(providers.TypeLedger, "Stored %d of %d visit records", written, len(update.Name))
	return written
}

func (c *PostViewsCounter) ReadCookieData(name string) string {
	return c.ledger.Read(name)
}

func (c *PostViewsCounter) StorageName() string {
	return c.storageName
}
