// Package menu implements the menu management feature.
//
// It wires the menu store, the sync coordinator and the selector into one session and
// exposes them over HTTP.
//
// # Components
//
//   - Service: owns the session, serializes every operation (Fiber may dispatch requests
//     concurrently, the domain model expects one mutator at a time).
//   - Handler: HTTP endpoints.
//   - Feature: registers the feature with the loader and performs the initial load.
//
// # HTTP Endpoints
//
//   - GET    /menu              : active dishes and sync status
//   - POST   /menu              : add a dish ({"name": "..."})
//   - PUT    /menu/:name        : rename a dish ({"name": "..."})
//   - DELETE /menu/:name        : delete a dish
//   - GET    /menu/sample       : random selection (?count=N)
//   - GET    /menu/status       : sync status only
//   - POST   /menu/reload       : resolve baseline vs staged again
//   - POST   /menu/sync         : promote staged changes and export the document
//   - POST   /menu/reset        : discard staged changes
//   - GET    /menu/export       : baseline document for the active menu (?download=true)
package menu
