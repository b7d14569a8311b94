// Package store defines the persistence contracts of the dinosaur catalog.
// Readers are generic over the entity type so that list and lookup handlers
// can be written once; the Writer is used only by the seed process.
package store
