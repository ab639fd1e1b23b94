package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/WBS/schedule-tracker/internal/api"
	"github.com/WBS/schedule-tracker/internal/repository"
	"github.com/WBS/schedule-tracker/internal/sweep"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./tracker.db"
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	teamMembers := parseTeamMembers(os.Getenv("TEAM_MEMBERS"))
	if len(teamMembers) == 0 {
		log.Println("TEAM_MEMBERS not configured, roster will be empty")
	}

	db, err := repository.InitDB(dbPath)
	if err != nil {
		log.Fatal("Failed to initialize DB:", err)
	}
	defer db.Close()

	fmt.Println("✅ Database initialized!")

	router, taskService := api.SetupRouter(db, teamMembers)

	// Initial bulk load; readers see a distinct loading state until done.
	go taskService.Load()

	sweeper := sweep.NewService(taskService)
	sweeper.Start()
	defer sweeper.Stop()

	fmt.Printf("🚀 Server running at http://localhost:%s\n", port)
	fmt.Println("📝 Available endpoints:")
	fmt.Println("   GET /tasks - Grouped task list")
	fmt.Println("   POST /tasks - Create task")
	fmt.Println("   GET /timeline - Gantt timeline")
	fmt.Println("   GET /milestones - Projected milestones")

	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func parseTeamMembers(raw string) []string {
	var members []string
	for _, m := range strings.Split(raw, ",") {
		m = strings.TrimSpace(m)
		if m != "" {
			members = append(members, m)
		}
	}
	return members
}
