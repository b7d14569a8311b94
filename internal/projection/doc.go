// Package projection shapes stored records into the JSON bodies served by the
// API.
//
// Every entity type has a summary shape, used in list results, and a detail
// shape, used for a single lookup. Summaries never carry relationships or
// internal keys. Details carry every scalar field, the summaries of the
// records they reference and, for the entities dinosaurs point at, the
// summaries of those dinosaurs. URLs are computed from Links at render time,
// so they always follow the configured base URL.
package projection
