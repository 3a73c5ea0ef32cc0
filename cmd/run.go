package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/app"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/generate"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/llm"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/progress"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/store"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/telemetry"
	"github.com/spf13/cobra"
)

// EnvAPIURL points the TUI at a remote generation server instead of
// calling the model directly.
const EnvAPIURL = "SORU_API_URL"

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	tracker := progress.NewTracker(st.StatsRepo())
	sink := telemetry.SinkFromEnv()

	return app.Run(buildGenerator(ctx), tracker, sink)
}

// buildGenerator picks the question source: a remote server when
// SORU_API_URL is set, the configured model otherwise. Without either,
// the TUI still runs; starting a quiz reports the configuration error.
func buildGenerator(ctx context.Context) generate.Generator {
	if url := os.Getenv(EnvAPIURL); url != "" {
		return generate.NewClient(url)
	}

	provider, err := llm.NewProviderFromEnv(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Set SORU_GEMINI_API_KEY (or SORU_API_URL for a remote server) to generate questions.")
		return unavailableGenerator{err: err}
	}
	return generate.NewService(provider, generate.DefaultConfig())
}

// unavailableGenerator surfaces the configuration problem at quiz
// start instead of refusing to launch; history and stats stay usable.
type unavailableGenerator struct {
	err error
}

func (g unavailableGenerator) GenerateBatch(context.Context, generate.BatchRequest) ([]generate.Question, error) {
	return nil, fmt.Errorf("Yapay zeka yapılandırılmadı: %w", g.err)
}
