// Package report turns the raw text lines of a repertoire report into
// structured work and right-holder records.
//
// The report has no schema markers: it is a whitespace-column layout where
// the number of populated columns varies per row. Structure is inferred in
// three stages:
//
//  1. Classification: [IsContentLine] keeps rows whose first column is a
//     number (everything else is page furniture); [IsWorkLine] separates
//     work headers from right-holder detail rows.
//  2. Parsing: [ParseWork] splits a header on wide whitespace runs;
//     [ParseRightHolder] splits a detail row around its role-code/share
//     anchor and disambiguates the 2-4 remaining columns positionally.
//  3. Aggregation: [Extract] walks the lines once, attaching each right
//     holder to the most recently opened work.
//
// Every failure is fatal for the whole document. The errors all match
// [ErrFormat] via errors.Is; callers must treat any of them as "this
// document cannot be auto-extracted", never as a per-line skip.
package report
