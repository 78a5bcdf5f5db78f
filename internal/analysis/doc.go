// Package analysis orchestrates static-analysis passes over parsed query
// documents before execution.
//
// Two analyzer scopes exist: multiplex-scoped analyzers are constructed once
// per batch and observe every query's traversal in sequence, accumulating
// state across queries; query-scoped analyzers are constructed fresh per
// query and discarded after producing a result.
//
// All active analyzers for a query observe one shared traversal pass: the
// visitor delivers each node's Enter/Leave to every observer in order before
// moving on, so no analyzer re-walks the tree.
//
// Invariants:
//   - Queries in a multiplex are processed strictly sequentially, in order;
//     multiplex-scoped analyzer state is single-writer.
//   - A rescued analysis error aborts that query's pass and replaces its
//     results; it never aborts the batch.
//   - Invalid queries are never traversed and contribute no results.
//   - Every query's AnalysisErrors slot is written exactly once per batch:
//     batch-level errors followed by that query's own errors.
package analysis
