// Package tasks orchestrates the email comparison pipeline.
//
// # Core Operation
//
// [Pipeline.Run] performs, in order and on the calling goroutine:
//
//  1. Read the old file with [reader.ReadLines] (fails fast with shared.ErrFile or shared.ErrDecode)
//  2. Read the new file the same way
//  3. Extract validated emails from each with an [extract.Extractor]
//  4. Compare the two multisets with [diff.Compare]
//
// The returned [Result] carries both [models.Source] values and the [models.Comparison].
// Rendering is left to the caller (see the formatter package).
//
// # Logging
//
// Phase transitions are logged at debug level with a "phase" field; per-file extraction counts and the final
// category sizes at info level. Candidates that fail validation are never logged.
package tasks
