package godoscmd

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"github.com/tv42/httpunix"
)

const debugLocation = "godos"

func newStatsCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "stats [PEER_ID]",
		Short: "Print client stats from a running relay",

		Args: cobra.MaximumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			if f.DebugSocket == "" {
				return errors.New("--debug-socket is required")
			}

			u := &httpunix.Transport{
				DialTimeout:           time.Second,
				RequestTimeout:        5 * time.Second,
				ResponseHeaderTimeout: 5 * time.Second,
			}
			u.RegisterLocation(debugLocation, f.DebugSocket)
			client := &http.Client{Transport: u}

			path := "/stats"
			if len(args) == 1 {
				path += "/" + args[0]
			}

			req, err := http.NewRequestWithContext(
				cmd.Context(), http.MethodGet, httpunix.Scheme+"://"+debugLocation+path, nil,
			)
			if err != nil {
				return err
			}

			resp, err := client.Do(req)
			if err != nil {
				return fmt.Errorf("failed to query relay: %w", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				b, _ := io.ReadAll(resp.Body)
				return fmt.Errorf("relay responded %s: %s", resp.Status, b)
			}

			_, err = io.Copy(cmd.OutOrStdout(), resp.Body)
			return err
		},
	}
}
