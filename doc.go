// Package finance provides the types and functions to keep a personal
// finance ledger. It is designed to be local-first: the whole ledger lives in
// a single human-readable text file, one transaction per line.
//
// The core functionalities include:
//   - Ledger Management: adding, deleting, listing and totalling transactions,
//     with IDs assigned sequentially and never reused within a session.
//   - Data Persistence: encoding and decoding transactions to and from the
//     comma separated record format (see [EncodeTransaction]), rewriting the
//     whole file after every change.
//   - Validation: parsing user input (amounts, dates, IDs, currencies) into
//     typed values with well known errors.
//
// This package serves as the foundational logic for the `fin` command-line
// tool and its interactive menu.
package finance
