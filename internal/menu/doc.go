// Package menu renders catalog query results to a console and drives the
// interactive prompt loop. It is strictly a presentation layer: it calls
// into the catalog and graph packages and formats what comes back.
package menu
