/*
Package ports defines the driven ports (interfaces) for the rupavali
orchestration core.

These interfaces decouple the session and derivation logic from external
implementations, allowing the demo to run against different derivation
engines and transliteration backends.

# Key Interfaces

  - Engine: derives word forms from structured requests (fixture tables,
    a sidecar service, or a one-shot subprocess).
  - Initializer: optional engine hook run once inside the startup gate.
  - Transliterator: converts Sanskrit text between encoding schemes.
*/
package ports
