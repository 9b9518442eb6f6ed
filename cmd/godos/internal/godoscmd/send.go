package godoscmd

import (
	"io"
	"log/slog"
	"os"

	"github.com/gordian-engine/godos/odnet"
	"github.com/gordian-engine/godos/odtypes"
	"github.com/spf13/cobra"
)

func newSendCmd(log *slog.Logger, f *rootFlags, dialer odnet.Dialer) *cobra.Command {
	return &cobra.Command{
		Use:   "send [FILE]",
		Short: "Send transaction payloads, one per line, to the peer",
		Long: `Send reads transaction payloads, one per line, from FILE or standard input.
It groups them into batches of --batch-size, forwards them to the peer,
and prints the client's stats once every request has completed.`,

		Args: cobra.MaximumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 {
				fh, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer fh.Close()
				in = fh
			}

			var batches []odtypes.Batch
			if err := scanBatches(in, f.BatchSize, func(b odtypes.Batch) {
				batches = append(batches, b)
			}); err != nil {
				return err
			}

			n, err := startNode(cmd.Context(), log, f, dialer, logProposal(log))
			if err != nil {
				return err
			}
			defer n.stop()

			c, err := n.connect(f)
			if err != nil {
				return err
			}

			c.OnBatches(batches)
			n.drain()

			return writeJSON(cmd.OutOrStdout(), c.Stats())
		},
	}
}
