package models

// Pair is one form field. Request envelopes are ordered lists of pairs so the
// encoded body keeps a stable field order.
type Pair struct {
	Key   string
	Value string
}

// StorageUpdate holds the parallel name/value/expiry arrays of a response.
// Expiry entries are kept as text; the ledger decides how to read them.
type StorageUpdate struct {
	Name   []string
	Value  []string
	Expiry []string
}

type ResponseEnvelope struct {
	// Rejected is true only when the body carries "success": false.
	Rejected bool
	// Data is the diagnostic "data" field, rendered as text.
	Data string
	// Storage is nil when the body has no "storage" object.
	Storage *StorageUpdate
	// Detail is the full decoded body, forwarded to listeners verbatim.
	Detail map[string]any
	Raw    []byte
}
