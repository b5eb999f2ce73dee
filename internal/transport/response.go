package transport

import (
	"fmt"
	"pvc/internal/models"

	json "github.com/goccy/go-json"
	"github.com/tidwall/gjson"
)

// ParseResponse decodes a counting acknowledgement. Only a JSON object is
// accepted; "success" counts as a rejection only when it is literally false.
func ParseResponse(body []byte) (*models.ResponseEnvelope, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: response is not valid JSON", ErrDecode)
	}
	res := gjson.ParseBytes(body)
	if !res.IsObject() {
		return nil, fmt.Errorf("%w: response is not an object", ErrDecode)
	}

	env := &models.ResponseEnvelope{
		Rejected: res.Get("success").Type == gjson.False,
		Storage:  parseStorage(res.Get("storage")),
		Raw:      body,
	}
	if data := res.Get("data"); data.Exists() {
		env.Data = data.String()
	}

	if err := json.Unmarshal(body, &env.Detail); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return env, nil
}

func parseStorage(storage gjson.Result) *models.StorageUpdate {
	if !storage.IsObject() {
		return nil
	}
	return &models.StorageUpdate{
		Name:   scalarList(storage.Get("name")),
		Value:  scalarList(storage.Get("value")),
		Expiry: scalarList(storage.Get("expiry")),
	}
}

func scalarList(r gjson.Result) []string {
	if !r.IsArray() {
		return nil
	}
	items := r.Array()
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, scalarText(item))
	}
	return out
}

// scalarText keeps numbers in their literal spelling, so 1750000000 does not
// turn into 1.75e+09.
func scalarText(r gjson.Result) string {
	switch r.Type {
	case gjson.Number:
		return r.Raw
	case gjson.Null:
		return ""
	default:
		return r.String()
	}
}
