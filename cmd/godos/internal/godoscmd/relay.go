package godoscmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"os"

	"github.com/gordian-engine/godos/oddebug"
	"github.com/gordian-engine/godos/odnet"
	"github.com/gordian-engine/godos/odtypes"
	"github.com/spf13/cobra"
)

func newRelayCmd(log *slog.Logger, f *rootFlags, dialer odnet.Dialer) *cobra.Command {
	return &cobra.Command{
		Use:   "relay",
		Short: "Forward transaction payloads from standard input until it closes",
		Long: `Relay reads transaction payloads, one per line, from standard input
and forwards each batch of --batch-size to the peer as soon as it is complete.

If --debug-socket is set, client stats and metrics are served over HTTP on that unix socket
for as long as the relay runs.`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			n, err := startNode(ctx, log, f, dialer, logProposal(log))
			if err != nil {
				return err
			}
			defer n.stop()

			c, err := n.connect(f)
			if err != nil {
				return err
			}

			if f.DebugSocket != "" {
				ln, err := listenUnix(f.DebugSocket)
				if err != nil {
					return err
				}
				h := oddebug.NewHTTPServer(ctx, log.With("sys", "debug"), oddebug.HTTPServerConfig{
					Listener: ln,
					Stats:    n.clients,
					Gatherer: n.metrics,
				})
				defer h.Wait()
				defer cancel()
			}

			scanErr := make(chan error, 1)
			go func() {
				scanErr <- scanBatches(cmd.InOrStdin(), f.BatchSize, func(b odtypes.Batch) {
					c.OnBatches([]odtypes.Batch{b})
				})
			}()

			select {
			case <-ctx.Done():
				log.Info("Stopping relay", "cause", context.Cause(ctx))
				return nil
			case err := <-scanErr:
				if err != nil {
					return err
				}
			}

			n.drain()
			return writeJSON(cmd.OutOrStdout(), c.Stats())
		},
	}
}

// listenUnix listens on path, replacing a stale socket file.
func listenUnix(path string) (net.Listener, error) {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to remove stale socket: %w", err)
	}

	ln, err := net.Listen("unix", path)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", path, err)
	}
	return ln, nil
}
