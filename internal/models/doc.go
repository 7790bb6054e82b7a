// Package models defines domain entities and persistence interfaces for the repertoire extraction service.
//
// The package contains two categories of types:
//
// 1. Data Transfer Objects (DTOs): structs representing extracted report data
//   - [Work] : One musical composition entry with its ordered right holders
//   - [RightHolder] : One party's share claim with role, society, and provenance
//   - [Pseudonym], [SourceReference] : Right-holder sub-records
//
// 2. Persistent Entities: Database-backed models with full lifecycle management
//   - [PersistedWork] : A stored work header
//   - [PersistedRightHolder] : A stored right holder linked to its work
//
// All persistent entities implement the Model interface providing ID generation, timestamps, validation, and soft delete support.
// The Repository[T] interface defines standard CRUD operations for database access.
package models
