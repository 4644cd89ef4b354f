/*
Package observability provides run counters for the tbx tools.

Each run owns a private Prometheus registry, so several engines can coexist in one
process (tests, library use) without colliding on the default registry. The
counters can be written out in the Prometheus text exposition format once the run
is over.
*/
package observability
