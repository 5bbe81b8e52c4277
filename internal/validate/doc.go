// Package validate runs the lint rules over a whole source tree.
//
// A Validator discovers script files under a root, scans them with a
// bounded worker pool and folds the diagnostics into a Report. Files that
// cannot be read or parsed are recorded as failures; they never stop the
// run. ApplyFixes writes the first candidate of every violation back to
// disk.
package validate
