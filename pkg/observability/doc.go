/*
Package observability wires engine lifecycle hooks to Prometheus metrics.

The engine itself knows nothing about metrics; it only fires
domain.LifecycleHooks. This package turns those events into counters and
gauges that a host can expose via promhttp.
*/
package observability
