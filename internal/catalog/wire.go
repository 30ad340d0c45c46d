package catalog

import "github.com/google/wire"

// ProvideStore is a Wire provider function that creates the static Store.
func ProvideStore() *Store {
	return NewStore()
}

// ProvideJSONHandler is a Wire provider function that creates the JSONHandler.
func ProvideJSONHandler(store *Store) *JSONHandler {
	return NewJSONHandler(store)
}

var Set = wire.NewSet(ProvideStore, ProvideJSONHandler)
