// Package output renders a generation result into the files a lab orders
// from: an oligo order sheet, a failure log, FASTA, and multi-well plate
// layouts. Every writer implements ports.ResultWriter.
package output
