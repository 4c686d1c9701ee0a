// Command socow-bench drives a small workload against a socow.Vector and
// optionally serves its metrics for scraping, exercising the Vector's
// logging and Prometheus instrumentation outside of unit tests.
package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	prometheusListenAddress string
	prometheusPath          string
	elements                int
	forks                   int
	serve                   bool
)

func init() {
	flag.StringVar(&prometheusPath, "prometheus-path", "/metrics", "the path to publish Prometheus metrics to")
	flag.StringVar(&prometheusListenAddress, "prometheus-listen-address", ":8088", "the address to listen on for Prometheus scrapes")
	flag.IntVar(&elements, "elements", 10_000, "number of elements to push through the workload vector")
	flag.IntVar(&forks, "forks", 16, "number of copy-on-write forks to take mid-run")
	flag.BoolVar(&serve, "serve", false, "serve /metrics instead of exiting after one run")
}

func main() {
	flag.Parse()

	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)

	reg := prometheus.NewRegistry()

	if err := run(logger, reg); err != nil {
		level.Error(logger).Log("msg", "workload failed", "err", err)
		os.Exit(1)
	}

	if !serve {
		return
	}

	http.Handle(prometheusPath, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	level.Info(logger).Log("msg", "serving metrics", "addr", prometheusListenAddress, "path", prometheusPath)
	if err := http.ListenAndServe(prometheusListenAddress, nil); err != nil {
		level.Error(logger).Log("msg", "http server exited", "err", err)
		os.Exit(1)
	}
}

func run(logger log.Logger, reg prometheus.Registerer) error {
	result, err := runWorkload(workloadConfig{
		logger:   logger,
		reg:      reg,
		elements: elements,
		forks:    forks,
	})
	if err != nil {
		return errors.Wrap(err, "run workload")
	}
	level.Info(logger).Log(
		"msg", "workload complete",
		"final_len", result.finalLen,
		"final_cap", result.finalCap,
		"promoted_to_large", result.promotedToLarge,
		"forks_taken", result.forksTaken,
	)
	return nil
}
