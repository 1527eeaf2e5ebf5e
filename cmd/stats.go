package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/abhisek/phonix/internal/progress"
	"github.com/abhisek/phonix/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show every learner's stars, level, and completed lessons",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		roster := st.LoadRoster()
		if len(roster) == 0 {
			fmt.Println("No learners yet. Run phonix to create one.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "LEARNER\tSTARS\tLEVEL\tLESSONS DONE")
		for _, p := range roster {
			lvl := progress.LevelForCount(len(p.CompletedLessons))
			fmt.Fprintf(w, "%s\t%d\t%s %s\t%d\n",
				p.Name, p.Stars, lvl.Badge, lvl.Name, len(p.CompletedLessons))
		}
		return w.Flush()
	},
}
