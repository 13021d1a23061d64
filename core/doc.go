// Package core defines the shared contracts of the grocery orchestration
// system: the Worker interface implemented by every remote function, the
// Payload map exchanged with workers (including the error-object convention),
// opaque worker handles, the response envelope returned by externally
// triggered entry points, and the tagged error type used to classify
// failures without breaking the errors-as-values boundary contract.
package core
