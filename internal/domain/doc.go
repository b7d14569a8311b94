// Package domain contains the records served by the API (dinosaurs, diets,
// periods, locations and taxonomies), the Kind tag that names them, and the
// invariants every record must satisfy before it is stored. It is independent
// of any storage or transport concern.
package domain
