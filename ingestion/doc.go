// Package ingestion turns a batch of uploads and pasted URLs into notes.
//
// The Pipeline type manages the ingestion workflow:
//   - Resolving every input into raw text (see package resolve)
//   - Enriching each text body with a summary, category and keywords
//   - Appending the resulting notes to the run's repository
//
// Items are processed strictly in input order, one at a time. A failing
// item is recorded in the Report and never stops the batch; only context
// cancellation ends a run early.
package ingestion
