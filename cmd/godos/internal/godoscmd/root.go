// Package godoscmd contains the godos command line.
package godoscmd

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"time"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/gordian-engine/godos/odclient"
	"github.com/gordian-engine/godos/odnet"
	"github.com/gordian-engine/godos/odtypes"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	PeerAddr string
	PeerKey  string

	Timeout time.Duration

	Workers            int
	MaxConcurrentPeers int

	BatchSize int

	DebugSocket string

	NodeName string
}

// peer returns the peer described by the flags.
func (f *rootFlags) peer() (odtypes.Peer, error) {
	if f.PeerAddr == "" {
		return odtypes.Peer{}, errors.New("--peer-addr is required")
	}

	var key []byte
	if f.PeerKey != "" {
		var err error
		key, err = hex.DecodeString(f.PeerKey)
		if err != nil {
			return odtypes.Peer{}, fmt.Errorf("invalid --peer-key: %w", err)
		}
	}

	return odtypes.Peer{Address: f.PeerAddr, PubKey: key}, nil
}

// NewRootCmd returns the godos root command.
// Connections to peers are made through dialer.
func NewRootCmd(log *slog.Logger, dialer odnet.Dialer) *cobra.Command {
	f := new(rootFlags)

	cmd := &cobra.Command{
		Use:   "godos",
		Short: "Talk to on-demand ordering services",

		SilenceUsage: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&f.PeerAddr, "peer-addr", "", "gRPC address of the peer's ordering service")
	pf.StringVar(&f.PeerKey, "peer-key", "", "hex-encoded public key of the peer")
	pf.DurationVar(&f.Timeout, "timeout", odclient.DefaultProposalTimeout, "proposal request timeout")
	pf.IntVar(&f.Workers, "workers", runtime.GOMAXPROCS(0), "proposal request workers")
	pf.IntVar(&f.MaxConcurrentPeers, "max-concurrent-peers", 0, "peers sending at once (0 for no limit)")
	pf.IntVar(&f.BatchSize, "batch-size", 16, "transactions per batch")
	pf.StringVar(&f.DebugSocket, "debug-socket", "", "unix socket for the debug HTTP server")
	pf.StringVar(&f.NodeName, "node-name", petname.Generate(2, "-"), "name of this node in logs")

	cmd.AddCommand(
		newSendCmd(log, f, dialer),
		newRequestProposalCmd(log, f, dialer),
		newRelayCmd(log, f, dialer),
		newStatsCmd(f),
	)

	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}
