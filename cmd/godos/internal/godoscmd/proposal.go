package godoscmd

import (
	"context"
	"log/slog"

	"github.com/gordian-engine/godos/odnet"
	"github.com/gordian-engine/godos/odtypes"
	"github.com/spf13/cobra"
)

func newRequestProposalCmd(log *slog.Logger, f *rootFlags, dialer odnet.Dialer) *cobra.Command {
	var round odtypes.Round

	cmd := &cobra.Command{
		Use:   "request-proposal",
		Short: "Request the peer's proposal for a round and print it as JSON",

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			results := make(chan odtypes.ProposalEvent, 1)
			n, err := startNode(ctx, log, f, dialer, func(e odtypes.ProposalEvent) {
				results <- e
			})
			if err != nil {
				return err
			}
			defer n.stop()

			c, err := n.connect(f)
			if err != nil {
				return err
			}

			c.OnRequestProposal(round)

			select {
			case <-ctx.Done():
				return context.Cause(ctx)
			case e := <-results:
				return writeJSON(cmd.OutOrStdout(), e)
			}
		},
	}

	cmd.Flags().Uint64Var(&round.BlockRound, "block-round", 1, "block round to request")
	cmd.Flags().Uint32Var(&round.RejectRound, "reject-round", 0, "reject round to request")

	return cmd
}
