// Package api serves the catalog over HTTP.
//
// Routes are declared in a table of (path, handler kind) pairs. Bind derives
// the entity kind from the first path segment and attaches the generic list
// or lookup pipeline built for that kind. List routes read one page from the
// store, compute navigation links and return summaries. Lookup routes parse
// the id parameter, which may hold a single id or a list, and return either
// a detail object or a list of summaries.
package api
