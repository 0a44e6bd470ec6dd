// Package models defines the value types shared by the emaildiff pipeline.
//
// The types fall into two groups:
//
// 1. Inputs: what was read and extracted from each file
//   - [Source] : One input file with its validated emails in file order
//
// 2. Results: derived, read-only views of a comparison
//   - [Comparison] : Sets, frequency maps and sorted listings for old vs new
//   - [Summary] : The seven headline counts rendered in every report
//   - [Entry] : A single listing row (email with per-file counts)
//   - [Category] : Which listing an entry belongs to (both, only new, only old)
//
// Nothing here is mutated after construction; every run recomputes all values.
package models
