// Package domain contains the core entities of the integration engine:
// provider integrations, webhook endpoints and their deliveries, job-board
// postings and records ingested from external systems. The types are free of
// infrastructure concerns so they can be shared by storage, services and
// transport layers.
package domain
