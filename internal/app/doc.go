// Package app wires the application together: configuration, logging,
// catalog ingestion, graph construction, and command dispatch.
package app
