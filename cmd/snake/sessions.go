package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/storage"
)

var flagLimit int

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List recorded sessions",
	Long: `Display the most recent recorded sessions, newest first.

Examples:
  snake sessions
  snake sessions --limit 50`,
	Args: cobra.NoArgs,
	Run:  runSessions,
}

func init() {
	sessionsCmd.Flags().IntVar(&flagLimit, "limit", 20, "Maximum number of sessions to show")
}

func runSessions(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatalf("opening session database: %v", err)
	}
	defer store.Close()

	sessions, err := store.RecentSessions(flagLimit)
	if err != nil {
		fatalf("retrieving sessions: %v", err)
	}

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snake play' or run 'snake sim --record' to record one.")
		return
	}

	fmt.Printf("  %-5s  %-6s  %-20s  %-7s  %-6s  %-5s  %s\n", "ID", "Source", "Seed", "Arena", "Rounds", "Tape", "Date")
	fmt.Printf("  %-5s  %-6s  %-20s  %-7s  %-6s  %-5s  %s\n", "--", "------", "----", "-----", "------", "----", "----")
	for _, s := range sessions {
		tape := "no"
		if len(s.Tape) > 0 {
			tape = "yes"
		}
		arena := fmt.Sprintf("%dx%d", s.Arena.Width, s.Arena.Height)
		fmt.Printf("  %-5d  %-6s  %-20d  %-7s  %-6d  %-5s  %s\n",
			s.ID, s.Source, s.Seed, arena, s.Rounds, tape, s.CreatedAt.Format("2006-01-02 15:04"))
	}
}
