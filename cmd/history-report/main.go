// Command history-report prints a participant's camp history to the terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/gdg-garage/camp-profile-api/internal/config"
	"github.com/gdg-garage/camp-profile-api/internal/database"
	"github.com/gdg-garage/camp-profile-api/internal/export"
	"github.com/gdg-garage/camp-profile-api/internal/history"
	"github.com/gdg-garage/camp-profile-api/internal/i18n"
	"github.com/gdg-garage/camp-profile-api/internal/models"
	"github.com/gdg-garage/camp-profile-api/internal/store"
)

func main() {
	cfg := config.LoadConfig()

	userID := flag.Uint("user", 0, "participant id")
	dbPath := flag.String("db", cfg.DatabasePath, "sqlite database path")
	year := flag.Int("year", cfg.CurrentYear, "current camp year (0 = newest camp)")
	flag.Parse()

	if *userID == 0 {
		flag.Usage()
		os.Exit(2)
	}

	db, err := database.Open(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	st := store.New(db)
	ctx := context.Background()

	user, err := st.User(ctx, *userID)
	if err != nil {
		log.Fatalf("Failed to load user: %v", err)
	}
	current, err := st.CurrentYear(ctx, *year)
	if err != nil {
		log.Fatalf("Failed to resolve current year: %v", err)
	}
	hist, err := st.History(ctx, user.ID, nil)
	if err != nil {
		log.Fatalf("Failed to load history: %v", err)
	}

	cur, past := hist.Split(current)

	color.Cyan("=== %s (#%d) ===", user.FullName(), user.ID)

	color.Yellow("\n%s (%d)", i18n.Text(i18n.CurrentYear), current)
	if cur == nil {
		fmt.Println("Brak zgłoszenia.")
	} else {
		render(*user, []history.YearSummary{*cur})
	}

	color.Yellow("\n%s", i18n.Text(i18n.PreviousYears))
	if len(past) == 0 {
		fmt.Println("Brak.")
		return
	}
	render(*user, past)
}

func render(user models.User, summaries []history.YearSummary) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(export.Header())
	for _, row := range export.Rows(user, summaries) {
		table.Append(row)
	}
	table.Render()
}
