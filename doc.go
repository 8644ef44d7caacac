/*
Package kauffman simulates generalized random boolean networks: N binary
nodes, each synchronously updated by a randomly generated local rule over a
random set of in-edges.

The engine owns the hard parts — topology generation, rule synthesis, the
synchronous state update, and the stochastic disturbance operator. What to
do with the resulting sequence of state vectors (record it, stream it,
rasterize it one column per step) is left to the host behind the
ports.FrameSink interface.

# Usage

Construct a network, then drive it step by step, or hand it to a Runner for
a whole run:

	package main

	import (
		"log"

		"github.com/nbertram/kauffman"
		"github.com/nbertram/kauffman/pkg/adapters/memory"
	)

	func main() {
		net, err := kauffman.New(40, 400, kauffman.WithSeed(1))
		if err != nil {
			log.Fatal(err)
		}

		rec := memory.NewRecorder()
		runner := &kauffman.Runner{
			Steps:                  2000,
			Disturbances:           4,
			DisturbanceProbability: 0.2,
			Sink:                   rec,
		}
		if err := runner.Run(net); err != nil {
			log.Fatal(err)
		}

		stats := net.Stats()
		log.Printf("edges=%d max_in_degree=%d frames=%d",
			stats.TotalEdges, stats.MaxInDegree, rec.Len())
	}

All randomness flows from a single seedable source (WithSeed or WithRand),
so a run is reproducible end to end.
*/
package kauffman
