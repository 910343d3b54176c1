// Package models defines domain entities and persistence interfaces for the SenFlix client.
//
// The package contains two categories of types:
//
// 1. Data Transfer Objects (DTOs): Lightweight structs mirroring the SenFlix HTTP API
//   - [MovieCandidate] : A movie as returned by search or entered manually
//   - [CategoryOption] : Server-provided category reference data
//   - [Preferences] : User flags, rating and comment gathered by the add-movie wizard
//   - [NewMovie] : The normalized create payload submitted to the server
//   - [Rating] : A movie rating with optional comment
//   - [UserFlags] : Per-movie user state as declared by the server after a toggle
//
// 2. Persistent Entities: Database-backed models with full lifecycle management
//   - [SearchQuery] : A recorded search query for the local history
//
// Movie data itself is never persisted client-side; the server is the sole
// source of truth and every session rebuilds its state from it.
//
// All persistent entities implement the Model interface providing ID generation, timestamps and validation.
// The Repository[T] interface defines standard CRUD operations for database access.
package models
