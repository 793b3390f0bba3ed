// Package integrity provides infrastructure health checks.
//
// Unlike the 'menu' package which manages menu content, this package validates the
// backends the menu depends on.
//
// # Checks Provided
//
//   - Storage: Checks that the bucket exists and holds the baseline document. With fix it
//     creates the bucket and seeds missing objects with an empty menu.
//   - Database: Validates that the staging tables match the GORM models (columns, types).
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/storage : Runs storage check (supports ?fix=true).
//   - GET /integrity/database : Runs database schema check.
package integrity
