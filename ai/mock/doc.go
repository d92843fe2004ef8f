// Package mock provides deterministic test doubles for the ai
// interfaces so the engine can be tested without an embedding service.
package mock
