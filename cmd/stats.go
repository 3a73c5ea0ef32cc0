package cmd

import (
	"fmt"

	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/progress"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show progress without launching the app",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return err
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		stats := progress.NewTracker(st.StatsRepo()).Stats(cmd.Context())

		fmt.Printf("Seviye:   %d\n", stats.Level)
		fmt.Printf("Puan:     %d\n", stats.Points)
		fmt.Printf("Doğru:    %d/%d\n", stats.CorrectAnswers, stats.TotalQuestions)
		fmt.Printf("Seri:     %d gün\n", stats.Streak)
		fmt.Printf("Deneme:   %d\n", len(stats.History))
		return nil
	},
}
