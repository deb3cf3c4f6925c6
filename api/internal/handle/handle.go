package handle

import (
	"encoding/json"

	"go.uber.org/zap"

	"github.com/JohnvenTom/animeFace/api/internal/recognize"
)

type Handle struct {
	client   *recognize.Client
	maxBytes int64
	log      *zap.SugaredLogger
}

func New(client *recognize.Client, maxBytes int64, log *zap.SugaredLogger) *Handle {
	return &Handle{
		client:   client,
		maxBytes: maxBytes,
		log:      log,
	}
}

// errorEnvelope is the JSON body of every failure response.
type errorEnvelope struct {
	Error   string          `json:"error"`
	Details json.RawMessage `json:"details,omitempty"`
}
