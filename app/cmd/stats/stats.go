package stats

import (
	"encoding/json"
	"github.com/ribgsilva/studyvault/business/v1/note"
	"github.com/ribgsilva/studyvault/business/v1/view"
	"github.com/ribgsilva/studyvault/sys"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"time"
)

// Command returns the stats command, printing the summary of the notes of a user
func Command() *cobra.Command {
	var userId string
	var search, date, size string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Prints the note statistics of a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := zap.NewNop().Sugar()
			sys.LoadStorage(log)
			closeAll, err := sys.Open(cmd.Context(), log)
			if err != nil {
				return err
			}
			defer closeAll()

			all, err := note.List(cmd.Context(), userId)
			if err != nil {
				return err
			}

			now := time.Now()
			c := view.NewCriteria(search, date, size)
			out := struct {
				Summary       view.Summary `json:"summary"`
				Matching      int          `json:"matching"`
				FiltersActive bool         `json:"filtersActive"`
			}{
				Summary:       view.Summarize(all, now),
				Matching:      len(view.Filter(all, c, now)),
				FiltersActive: view.Active(c),
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}

	cmd.Flags().StringVar(&userId, "user", "", "user id")
	cmd.Flags().StringVar(&search, "search", "", "text searched in title and content")
	cmd.Flags().StringVar(&date, "date", "all", "creation date range: all, today, week, month, year")
	cmd.Flags().StringVar(&size, "size", "all", "collection size bucket: all, small, medium, large")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
