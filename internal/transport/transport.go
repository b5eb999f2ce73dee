package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"pvc/internal/ledger/interfaces"
	"pvc/internal/models"
	"pvc/internal/providers"
	"pvc/internal/structures"
	"strings"
)

var (
	ErrTransport   = errors.New("transport error")
	ErrDecode      = errors.New("decode error")
	ErrApplication = errors.New("application error")
)

const (
	contentType     = "application/x-www-form-urlencoded; charset=UTF-8"
	maxResponseSize = 1 << 20 // 1 MB
)

type DeliveryTransportInterface interface {
	Mode() Mode
	Send(ctx context.Context, target Target, payload []models.Pair) (*models.ResponseEnvelope, error)
}

// DeliveryTransport issues exactly one POST per Send, without retries.
type DeliveryTransport struct {
	client *http.Client
	shaper RequestShaper
	jar    interfaces.JarInterface
	origin *url.URL
	logger providers.Logger
}

func NewDeliveryTransport(conf *structures.Config, client *http.Client, jar interfaces.JarInterface, logger providers.Logger) (*DeliveryTransport, error) {
	shaper, err := NewShaper(Mode(conf.Counter.Mode))
	if err != nil {
		return nil, err
	}
	page := conf.Counter.PageURL
	if page == "" {
		page = conf.Counter.RequestURL
	}
	return NewDeliveryTransportWithShaper(client, shaper, jar, page, logger)
}

// NewDeliveryTransportWithShaper builds a transport whose cookies are only sent
// to pageURL's origin.
func NewDeliveryTransportWithShaper(client *http.Client, shaper RequestShaper, jar interfaces.JarInterface, pageURL string, logger providers.Logger) (*DeliveryTransport, error) {
	origin, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("invalid page url: %w", err)
	}
	return &DeliveryTransport{
		client: client,
		shaper: shaper,
		jar:    jar,
		origin: origin,
		logger: logger,
	}, nil
}

func (t *DeliveryTransport) Mode() Mode {
	return t.shaper.Mode()
}

// Send returns ErrTransport for network failures and non-2xx statuses,
// ErrDecode for bodies that are not a JSON object, and ErrApplication together
// with the parsed envelope when the server answered "success": false.
func (t *DeliveryTransport) Send(ctx context.Context, target Target, payload []models.Pair) (*models.ResponseEnvelope, error) {
	shaped, err := t.shaper.Shape(target, payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, shaped.URL, strings.NewReader(PrepareRequestData(shaped.Body)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	for key, values := range shaped.Header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")
	t.attachCookies(req)

	t.logger.Debugf(providers.TypeTransport, "POST %s (%s)", req.URL.Redacted(), t.Mode())
	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseSize))
		return nil, fmt.Errorf("%w: %s", ErrTransport, http.StatusText(resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}

	env, err := ParseResponse(body)
	if err != nil {
		return nil, err
	}
	if env.Rejected {
		return env, fmt.Errorf("%w: %s", ErrApplication, env.Data)
	}
	return env, nil
}

// attachCookies sends the jar only to the page's own origin, like a fetch with
// credentials "same-origin".
func (t *DeliveryTransport) attachCookies(req *http.Request) {
	if t.jar == nil || !sameOrigin(t.origin, req.URL) {
		return
	}
	header, err := t.jar.CookieHeader()
	if err != nil {
		t.logger.Debugf(providers.TypeTransport, "Request sent without cookies: %s", err)
		return
	}
	if header != "" {
		req.Header.Set("Cookie", header)
	}
}

func sameOrigin(a, b *url.URL) bool {
	return strings.EqualFold(a.Scheme, b.Scheme) && strings.EqualFold(a.Host, b.Host)
}
