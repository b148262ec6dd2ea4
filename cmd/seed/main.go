package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/forgesutra-ctrl/Training-Assessment-Platform-sub000/internal/seed"
)

// Default seeding parameters.
const (
	defaultCount    = 500
	defaultWorkers  = 8
	defaultTrainers = 25
	defaultManagers = 6
	defaultMonths   = 12
	defaultTimeout  = 10 * time.Second
	defaultRandSeed = 42
	runTimeout      = 10 * time.Minute
)

func main() {
	_ = godotenv.Load()

	var (
		baseURL  = flag.String("url", "http://localhost:8090", "Base URL of the service")
		count    = flag.Int("count", defaultCount, "Number of assessments to generate and submit")
		workers  = flag.Int("workers", defaultWorkers, "Number of concurrent workers")
		trainers = flag.Int("trainers", defaultTrainers, "Size of the synthetic trainer pool")
		managers = flag.Int("managers", defaultManagers, "Size of the synthetic manager pool")
		months   = flag.Int("months", defaultMonths, "Spread assessment dates over this many trailing months")
		timeout  = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		randSeed = flag.Int64("seed", defaultRandSeed, "Random seed for reproducible datasets")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	res, err := seed.Run(ctx, seed.Config{
		BaseURL:  *baseURL,
		Count:    *count,
		Workers:  *workers,
		Timeout:  *timeout,
		Trainers: *trainers,
		Managers: *managers,
		Months:   *months,
		RandSeed: *randSeed,
	})
	if err != nil {
		os.Stderr.WriteString("seeding aborted: " + err.Error() + "\n")
	}
	os.Stdout.WriteString(res.Summary() + "\n")
}
