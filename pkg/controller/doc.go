// Package controller contains the HTTP plumbing shared by the operator API and
// the inbound webhook receiver: access logging with request IDs, CORS, JSON
// bodies with the {"code","message"} error shape and pprof routes.
package controller
