package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"gamevault/internal/bridge"
	"gamevault/internal/httpx"
	"gamevault/internal/platform/metrics"

	"github.com/spf13/cobra"
)

const maxBridgeBody = 1 << 20

func newRootCmd(newApp appFactory) *cobra.Command {
	root := &cobra.Command{
		Use:          "launcher",
		Short:        "Local game library and launcher",
		SilenceUsage: true,
	}

	// invoke runs one bridge operation and prints its result as JSON.
	invoke := func(cmd *cobra.Command, op string, args any) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		raw, err := json.Marshal(args)
		if err != nil {
			return err
		}
		result, err := a.bridge.Invoke(cmd.Context(), op, raw)
		if err != nil {
			return fmt.Errorf("%s: %w", bridge.ErrorCode(err), err)
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List library entries",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return invoke(cmd, bridge.OpListGames, struct{}{})
			},
		},
		&cobra.Command{
			Use:   "add <path>",
			Short: "Register an executable",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return invoke(cmd, bridge.OpAddGame, map[string]string{"path": args[0]})
			},
		},
		&cobra.Command{
			Use:   "rm <id>",
			Short: "Remove a library entry",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return invoke(cmd, bridge.OpDeleteGame, map[string]string{"id": args[0]})
			},
		},
		&cobra.Command{
			Use:   "rename <id> <name>",
			Short: "Rename a library entry",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return invoke(cmd, bridge.OpUpdateGame, map[string]any{
					"id":     args[0],
					"fields": map[string]string{"name": args[1]},
				})
			},
		},
		newEnrichCmd(invoke),
		&cobra.Command{
			Use:   "launch <path>",
			Short: "Launch a registered executable",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return invoke(cmd, bridge.OpLaunchGame, map[string]string{"path": args[0]})
			},
		},
		&cobra.Command{
			Use:   "choose",
			Short: "Pick an executable with the native file dialog",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return invoke(cmd, bridge.OpChooseFile, struct{}{})
			},
		},
		newServeCmd(newApp),
	)
	return root
}

func newEnrichCmd(invoke func(*cobra.Command, string, any) error) *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "enrich <id>",
		Short: "Fetch Steam metadata for a library entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return invoke(cmd, bridge.OpFetchMetadata, map[string]string{"id": args[0], "name": name})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "search name (defaults to the entry name)")
	return cmd
}

func newServeCmd(newApp appFactory) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the bridge over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = a.cfg.Addr
			}
			srv := &http.Server{
				Addr:              addr,
				Handler:           newBridgeServer(a),
				ReadHeaderTimeout: 5 * time.Second,
			}
			return serve(cmd.Context(), a, srv)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (defaults to LAUNCHER_ADDR)")
	return cmd
}

func newBridgeServer(a *app) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.Handle("GET /metrics", metrics.Handler())
	bridge.NewHTTPHandler(a.bridge).Register(mux)

	return httpx.Chain(mux,
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware(a.log),
		httpx.RecoveryMiddleware(a.log),
		metrics.InstrumentHandler,
		httpx.SecurityHeadersMiddleware(false),
		httpx.RequestSizeLimitMiddleware(maxBridgeBody),
	)
}

func serve(ctx context.Context, a *app, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		a.log.WithField("addr", srv.Addr).Info("bridge listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
