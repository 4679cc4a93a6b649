package display

import (
	"fmt"

	"github.com/mlipski/penplot/internal/history"
)

// RunHistory executes the history (stored usage snapshots) command.
func RunHistory(store *history.Store, args []string) error {
	if store == nil {
		PrintError("no usage history (run some figures first)")
		return nil
	}

	// Parse args
	var (
		showSummary bool
		recentN     = 10
	)

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--summary":
			showSummary = true
		case "--recent":
			if i+1 < len(args) {
				_, _ = fmt.Sscanf(args[i+1], "%d", &recentN)
				i++
			}
			if recentN <= 0 {
				recentN = 10
			}
		}
	}

	if showSummary {
		return showLabelSummary(store)
	}
	return showRecent(store, recentN)
}

func showLabelSummary(store *history.Store) error {
	summaries, err := store.Summary()
	if err != nil {
		return fmt.Errorf("history summary: %w", err)
	}
	if len(summaries) == 0 {
		fmt.Println(DimStyle.Render("no snapshots recorded"))
		return nil
	}

	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			s.Label,
			fmt.Sprintf("%.2f", s.Travel),
			fmt.Sprintf("%.2f", s.Ink),
			fmt.Sprintf("%d", s.Snapshots),
		})
	}

	fmt.Println(HeaderStyle.Render("Usage by driver"))
	fmt.Print(FormatTable([]string{"LABEL", "TRAVEL", "INK", "SNAPSHOTS"}, rows))
	return nil
}

func showRecent(store *history.Store, n int) error {
	snaps, err := store.Recent(n)
	if err != nil {
		return fmt.Errorf("history recent: %w", err)
	}
	if len(snaps) == 0 {
		fmt.Println(DimStyle.Render("no snapshots recorded"))
		return nil
	}

	rows := make([][]string, 0, len(snaps))
	for _, s := range snaps {
		rows = append(rows, []string{
			s.TakenAt,
			s.Label,
			fmt.Sprintf("%.2f", s.Travel),
			fmt.Sprintf("%.2f", s.Ink),
		})
	}

	fmt.Println(HeaderStyle.Render("Recent usage snapshots"))
	fmt.Print(FormatTable([]string{"TAKEN AT", "LABEL", "TRAVEL", "INK"}, rows))
	return nil
}
