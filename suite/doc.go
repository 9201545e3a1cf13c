// Package suite runs a set of puzzle solvers concurrently and reports each
// one's answers, failure and wall-clock time.
//
// A Runner owns a bounded worker pool (errgroup with SetLimit), a zap logger
// and a Prometheus histogram of solve durations. Jobs share nothing, so one
// failing job never cancels the others; every failure is combined into the
// error returned by Run.
//
// Configuration is read from YAML:
//
//	workers: 4
//	log:
//	  level: info
//	  encoding: json
//
// Kernels returns one Job per kernel package, each solving that kernel's
// canonical sample.
package suite
