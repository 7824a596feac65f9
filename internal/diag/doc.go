// Package diag defines the diagnostic model shared by the scanning pipeline.
//
// Diagnostic is the central record: Severity (Info/Warning/Error), a compact
// numeric Code with a stable "LEXnnnn" string form, a human message, the
// primary source.Span, and optional Notes.
//
// Producers emit through the Reporter interface so they stay decoupled from
// storage; BagReporter aggregates into a Bag, which supports a hard limit,
// deterministic sorting, and deduplication. Rendering lives in
// internal/diagfmt — this package performs no formatting, IO, or CLI
// integration, with one deliberate exception: FormatGoldenDiagnostics
// produces the stable one-line-per-entry form used by golden/snapshot tests.
//
// Keep the data model deterministic and side-effect free so diagnostics can
// be serialized for caching and testing.
package diag
