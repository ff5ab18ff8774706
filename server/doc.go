// Package server exposes searches over HTTP for browser visualizers.
//
// Routes:
//
//	GET  /healthz                liveness probe
//	GET  /metrics                Prometheus metrics
//	POST /api/v1/search          run a scenario, return path, cost and stats
//	GET  /api/v1/search/stream   websocket: send one scenario, receive one
//	                             "frame" message per engine step, then a
//	                             "result" message
//
// Request bodies use the config.Scenario JSON form. Every request carries
// an X-Request-ID (generated when absent) that is echoed in responses and
// logs. A client closing the websocket abandons the search.
package server
