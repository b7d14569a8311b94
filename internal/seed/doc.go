// Package seed loads the reference dataset into a store.
//
// A run replaces every record: it resets the store and recreates periods,
// diets, locations, taxonomies and dinosaurs in that order, resolving each
// reference through the store before writing the record that holds it.
// Taxonomies are written parents first, after the tree has been checked for
// cycles and dangling parents.
package seed
