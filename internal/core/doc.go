// Package core cleans tabular sales records.
//
// A [Dataset] is an ordered list of named, equal-length columns whose cells
// are [Value]s: text, integer, float, or missing. [LoadData] reads one from a
// CSV file, a [Cleaner] runs it through the cleaning transforms, and [Write]
// stores the result.
//
// # Transforms
//
// Each transform returns a new Dataset and never modifies its input:
//
//   - StripColumnWhitespace, UniformColumnNames, RenameColumns: column names
//   - StripWhitespace: text cells
//   - RemoveCurrencySymbols: price text such as "$1,200.50" -> "1200.50"
//   - ConvertDataTypes: price to float, quantity to integer; failures become missing
//   - DropMissingValues: rows without price or quantity
//   - RemoveInvalidRows: rows with a negative price or quantity
//
// The last three depend on order: conversion must follow currency removal,
// and both filters must follow conversion. [Cleaner.Steps] returns them in a
// working order and [Cleaner.Run] applies it.
//
// # Errors
//
// File-level failures are [*FileError] and [*ParseError]; a missing price or
// quantity column is a [*ColumnError]. Cells that fail numeric coercion never
// produce an error. [MapError] turns any of these into a coded [UserMessage].
package core
