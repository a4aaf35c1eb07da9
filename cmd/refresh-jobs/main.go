package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/Sahil9505/JobFinder/internal/external"
	"github.com/Sahil9505/JobFinder/internal/jobs"
	"github.com/Sahil9505/JobFinder/pkg/database"
	"github.com/Sahil9505/JobFinder/pkg/utils"
)

// One-shot pipeline run: migrate the database, seed starter postings if the
// jobs table is empty, then pull every external source once and report what
// a cold cache would hold. Useful for smoke-testing source credentials.
func main() {
	timeout := flag.Duration("timeout", 60*time.Second, "overall fetch timeout")
	seed := flag.Bool("seed", true, "seed starter jobs when the table is empty")
	flag.Parse()

	_ = godotenv.Load()

	db := database.MustOpen(database.DefaultConfig())
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if *seed {
		n, err := jobs.SeedIfEmpty(ctx, jobs.NewRepo(db))
		if err != nil {
			log.Fatalf("seed failed: %v", err)
		}
		if n > 0 {
			log.Printf("seeded %d starter jobs", n)
		}
	}

	agg := external.NewAggregator(
		external.NewRemotiveSource(),
		external.NewArbeitnowSource(),
		external.NewJSearchSource(utils.RapidAPIKey()),
	)

	start := time.Now()
	fetched, err := agg.FetchExternalJobs(ctx, false)
	if err != nil {
		log.Fatalf("fetch failed: %v", err)
	}

	byType := map[string]int{}
	for _, j := range fetched {
		byType[j.Type]++
	}
	log.Printf("fetched %d external jobs in %s (%d jobs, %d internships)",
		len(fetched), time.Since(start).Round(time.Millisecond),
		byType["Job"], byType["Internship"])
}
