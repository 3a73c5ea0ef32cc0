package cmd

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/generate"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/httpapi"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/llm"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/store"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the question generation server",
	Long:  "Serves POST /api/generate so clients without model credentials can request question batches.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		provider, err := llm.NewProviderFromEnv(ctx)
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}
		generator := generate.NewService(provider, generate.DefaultConfig())

		// Generation events are recorded when a store is reachable;
		// the server runs without one.
		var events store.EventRepo
		if dbPath, err := resolveDBPath(cmd); err == nil {
			if st, err := store.Open(dbPath); err == nil {
				defer st.Close()
				if repo, err := st.EventRepo(); err == nil {
					events = repo
				}
			} else {
				fmt.Fprintf(os.Stderr, "warning: store unavailable, events not recorded: %v\n", err)
			}
		}

		addr, _ := cmd.Flags().GetString("addr")
		server := &http.Server{
			Addr:              addr,
			Handler:           httpapi.NewServer(generator, events, provider.ModelID()).Router(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		fmt.Println("listening on", addr)
		return server.ListenAndServe()
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8787", "Listen address")
}
