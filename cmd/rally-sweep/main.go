package main

import (
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/amorcar/cpong/internal/logging"
)

func main() {
	seconds := pflag.Float64("seconds", 120, "simulated seconds per match")
	matches := pflag.Int("matches", 8, "independent matches per scenario")
	workers := pflag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	seed := pflag.Int64("seed", 1, "base seed; match i uses seed+i+1 (never 0)")
	deadband := pflag.Float64("deadband", 8, "autopilot dead zone in pixels")
	level := pflag.String("log-level", "info", "log level")
	pflag.Parse()

	log := logging.New(logging.Options{Level: *level})

	deltaOptions := []float64{1.0 / 120, 1.0 / 60, 1.0 / 30, 1.0 / 15, 0.1, 0.25}
	speedOptions := []float64{400, 800, 1600}
	var sets []paramSet
	for _, delta := range deltaOptions {
		for _, speed := range speedOptions {
			for _, clamp := range []bool{true, false} {
				for _, swept := range []bool{true, false} {
					sets = append(sets, paramSet{delta: delta, ballSpeed: speed, clamp: clamp, swept: swept})
				}
			}
		}
	}

	log.WithFields(logrus.Fields{
		"scenarios": len(sets),
		"workers":   *workers,
		"matches":   *matches,
		"seconds":   *seconds,
	}).Info("sweep started")

	jobs := make(chan paramSet)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				results <- runScenario(params, *matches, *seconds, *seed, *deadband)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		all = append(all, res)
		log.WithFields(logrus.Fields{
			"goals": res.goals,
			"hits":  res.hits,
		}).Debug(res.params.String())
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].goalsPerMinute() != all[j].goalsPerMinute() {
			return all[i].goalsPerMinute() > all[j].goalsPerMinute()
		}
		return all[i].params.String() < all[j].params.String()
	})
	log.WithField("elapsed", time.Since(start).Round(time.Millisecond)).Info("sweep finished")

	fmt.Printf("%-48s %8s %7s %6s %9s %8s %10s\n", "scenario", "goals/m", "hits", "rally", "max angle", "walls", "overshoot")
	for _, r := range all {
		fmt.Printf("%-48s %8.2f %7d %6d %8.1f° %8d %10.2f\n",
			r.params, r.goalsPerMinute(), r.hits, r.longestRally, r.maxAngleDeg, r.wallBounces, r.maxOvershoot)
	}
}
