package services

import (
	"context"
	"math"
	"net/http"
	"pvc/internal/events"
	"pvc/internal/ledger/interfaces"
	"pvc/internal/models"
	"pvc/internal/providers"
	"pvc/internal/structures"
	"pvc/internal/transport"
	"strconv"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
)

type ManualArgs struct {
	URL   string
	Nonce string
	IDs   []int
}

type ManualCounterInterface interface {
	Count(ctx context.Context, args ManualArgs) (*models.ResponseEnvelope, error)
}

// ManualCounter counts several posts in one request. It never reads or writes
// the visit ledger.
type ManualCounter struct {
	transport transport.DeliveryTransportInterface
	bridge    events.BridgeInterface
	logger    providers.Logger
	metrics   providers.MetricsProviderInterface
}

func NewManualCounter(conf *structures.Config, client *http.Client, jar interfaces.JarInterface, bridge events.BridgeInterface, logger providers.Logger, metrics providers.MetricsProviderInterface) (ManualCounterInterface, error) {
	page := conf.Counter.PageURL
	if page == "" {
		page = conf.Counter.RequestURL
	}
	tr, err := transport.NewDeliveryTransportWithShaper(client, transport.NewActionShaper(transport.ActionViewPosts, false), jar, page, logger)
	if err != nil {
		return nil, err
	}
	return NewManualCounterWithTransport(tr, bridge, logger, metrics), nil
}

func NewManualCounterWithTransport(tr transport.DeliveryTransportInterface, bridge events.BridgeInterface, logger providers.Logger, metrics providers.MetricsProviderInterface) *ManualCounter {
	return &ManualCounter{
		transport: tr,
		bridge:    bridge,
		logger:    logger,
		metrics:   metrics,
	}
}

func (m *ManualCounter) Count(ctx context.Context, args ManualArgs) (*models.ResponseEnvelope, error) {
	payload := []models.Pair{{Key: "ids", Value: JoinPostIDs(args.IDs)}}

	env, err := m.transport.Send(ctx, transport.Target{URL: args.URL, Nonce: args.Nonce}, payload)
	m.metrics.IncRoundTrips(transport.ActionViewPosts, outcome(err))
	if err != nil {
		data := ""
		if env != nil {
			data = env.Data
		}
		logFailure(m.logger, "Manual counter", err, data)
		return env, err
	}

	m.bridge.Notify(events.EventCheckPost, env.Detail)
	m.metrics.IncEventsTotal(events.EventCheckPost)
	return env, nil
}

// JoinPostIDs drops non-positive ids and duplicates and lists the rest in
// ascending order, comma separated.
func JoinPostIDs(ids []int) string {
	bm := roaring.New()
	for _, id := range ids {
		if id > 0 && uint64(id) <= math.MaxUint32 {
			bm.Add(uint32(id))
		}
	}

	parts := make([]string, 0, bm.GetCardinality())
	it := bm.Iterator()
	for it.HasNext() {
		parts = append(parts, strconv.FormatUint(uint64(it.Next()), 10))
	}
	return strings.Join(parts, ",")
}

// ParsePostIDs reads a comma separated id list.
func ParsePostIDs(list string) ([]int, error) {
	var ids []int
	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		id, err := strconv.Atoi(field)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
