package glog

import (
	"encoding/hex"
	"log/slog"
)

// Hex is a byte slice that is rendered as lowercase hex in log output.
//
// Use it as an attribute value, e.g.:
//
//	log.Info("Received proposal", "first_tx", glog.Hex(hash[:]))
type Hex []byte

// LogValue implements [slog.LogValuer].
func (h Hex) LogValue() slog.Value {
	return slog.StringValue(hex.EncodeToString(h))
}
