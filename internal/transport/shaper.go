package transport

import (
	"fmt"
	"net/http"
	"net/url"
	"pvc/internal/models"
	"strconv"
)

type Mode string

const (
	ModeRestAPI   Mode = "rest_api"
	ModeAdminAjax Mode = "admin_ajax"
)

const (
	ActionCheckPost = "pvc-check-post"
	ActionViewPosts = "pvc-view-posts"
	NonceHeader     = "X-WP-Nonce"
)

// Target is where one counting request goes and what identifies it.
type Target struct {
	URL    string
	Nonce  string
	PostID int
}

type ShapedRequest struct {
	URL    string
	Body   []models.Pair
	Header http.Header
}

// RequestShaper places the nonce and the post id for one transport mode.
type RequestShaper interface {
	Mode() Mode
	Shape(target Target, payload []models.Pair) (*ShapedRequest, error)
}

func NewShaper(mode Mode) (RequestShaper, error) {
	switch mode {
	case ModeRestAPI:
		return restShaper{}, nil
	case ModeAdminAjax:
		return NewActionShaper(ActionCheckPost, true), nil
	default:
		return nil, fmt.Errorf("unknown transport mode %q", mode)
	}
}

// restShaper sends the nonce as X-WP-Nonce and the post id as a query parameter.
type restShaper struct{}

func (restShaper) Mode() Mode { return ModeRestAPI }

func (restShaper) Shape(target Target, payload []models.Pair) (*ShapedRequest, error) {
	u, err := url.Parse(target.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid request url: %w", err)
	}
	if target.PostID > 0 {
		// appended raw so an existing rest_route query keeps its spelling
		if u.RawQuery != "" {
			u.RawQuery += "&"
		}
		u.RawQuery += "id=" + strconv.Itoa(target.PostID)
	}

	header := http.Header{}
	if target.Nonce != "" {
		header.Set(NonceHeader, target.Nonce)
	}
	return &ShapedRequest{URL: u.String(), Body: payload, Header: header}, nil
}

// actionShaper targets admin-ajax.php: the action discriminator and the nonce
// travel in the body ahead of the payload.
type actionShaper struct {
	action string
	withID bool
}

func NewActionShaper(action string, withID bool) RequestShaper {
	return actionShaper{action: action, withID: withID}
}

func (actionShaper) Mode() Mode { return ModeAdminAjax }

func (s actionShaper) Shape(target Target, payload []models.Pair) (*ShapedRequest, error) {
	if _, err := url.Parse(target.URL); err != nil {
		return nil, fmt.Errorf("invalid request url: %w", err)
	}

	body := make([]models.Pair, 0, len(payload)+3)
	body = append(body,
		models.Pair{Key: "action", Value: s.action},
		models.Pair{Key: "pvc_nonce", Value: target.Nonce},
	)
	if s.withID {
		body = append(body, models.Pair{Key: "id", Value: strconv.Itoa(target.PostID)})
	}
	body = append(body, payload...)
	return &ShapedRequest{URL: target.URL, Body: body, Header: http.Header{}}, nil
}
