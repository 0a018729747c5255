// Package api exposes the REST surface of the items service.
//
// The API wires five item endpoints plus root and health probes onto a
// net/http ServeMux. Handlers translate requests into single persistence
// operations against a store.ItemStore and map the outcome onto HTTP
// statuses: 422 for constraint violations, 404 for missing ids, 500 for
// everything the service cannot explain to the client.
package api
