// Package pipeline evaluates many passwords concurrently.
//
// Candidates are read from command-line arguments or from a file with one
// password per line. BatchProcessor runs them through an Evaluator with a
// bounded number of goroutines (errgroup.SetLimit), respects context
// cancellation and returns a model.Report whose entries keep input order.
//
// Only each candidate's Source ("argument 2", "line 14") is logged; the
// passwords themselves never leave the evaluator.
package pipeline
