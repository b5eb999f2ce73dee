package services

import (
	"errors"
	"pvc/internal/providers"
	"pvc/internal/transport"
)

const (
	OutcomeOK               = "ok"
	OutcomeTransportError   = "transport_error"
	OutcomeDecodeError      = "decode_error"
	OutcomeApplicationError = "application_error"
)

func outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, transport.ErrApplication):
		return OutcomeApplicationError
	case errors.Is(err, transport.ErrDecode):
		return OutcomeDecodeError
	default:
		return OutcomeTransportError
	}
}

// logFailure reports a failed round trip. Nothing is escalated further.
func logFailure(logger providers.Logger, label string, err error, data string) {
	switch outcome(err) {
	case OutcomeApplicationError:
		logger.Errorf(providers.TypeTransport, "%s rejected: %s", label, data)
	case OutcomeDecodeError:
		logger.Errorf(providers.TypeTransport, "%s returned an unreadable response: %s", label, err)
	default:
		logger.Errorf(providers.TypeTransport, "%s request failed: %s", label, err)
	}
}
