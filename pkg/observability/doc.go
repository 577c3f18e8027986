/*
Package observability exposes the remote's pipeline as Prometheus metrics.

Metrics plugs into the capture loop and the dispatch worker as their Recorder, so
key releases and HTTP outcomes are counted without either package importing
Prometheus.
*/
package observability
