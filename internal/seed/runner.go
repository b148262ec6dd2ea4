package seed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"
)

// Config drives one seeding run.
type Config struct {
	BaseURL string
	Count   int
	Workers int
	Timeout time.Duration

	Trainers int
	Managers int
	Months   int
	RandSeed int64
}

// Result summarizes a seeding run.
type Result struct {
	Created    int64
	Duplicates int64
	Rejected   int64
	Failed     int64
}

// Run generates cfg.Count submissions and posts them concurrently.
func Run(ctx context.Context, cfg Config) (Result, error) {
	gen := NewGenerator(cfg.Trainers, cfg.Managers, cfg.Months, cfg.RandSeed)
	client := &http.Client{Timeout: cfg.Timeout}
	now := time.Now()

	jobs := make(chan Submission)
	var res Result
	var wg sync.WaitGroup
	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sub := range jobs {
				switch status := post(ctx, client, cfg.BaseURL, sub); status {
				case http.StatusCreated:
					atomic.AddInt64(&res.Created, 1)
				case http.StatusOK:
					atomic.AddInt64(&res.Duplicates, 1)
				case http.StatusUnprocessableEntity:
					atomic.AddInt64(&res.Rejected, 1)
				default:
					atomic.AddInt64(&res.Failed, 1)
				}
			}
		}()
	}

	for i := 0; i < cfg.Count; i++ {
		select {
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return res, ctx.Err()
		case jobs <- gen.Next(now):
		}
	}
	close(jobs)
	wg.Wait()
	return res, nil
}

func post(ctx context.Context, client *http.Client, baseURL string, sub Submission) int {
	body, err := json.Marshal(sub)
	if err != nil {
		return 0
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/assessments", bytes.NewReader(body))
	if err != nil {
		return 0
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		return 0
	}
	defer resp.Body.Close()
	return resp.StatusCode
}

// Summary renders a run result for CLI output.
func (r Result) Summary() string {
	return fmt.Sprintf("created=%d duplicates=%d rejected=%d failed=%d",
		r.Created, r.Duplicates, r.Rejected, r.Failed)
}
