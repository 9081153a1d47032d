// Package domain defines the core data model shared across the app.
// It contains plain types (pipeline steps, step records, bundles) and
// the error taxonomy only; all behaviour lives in the packages that
// operate on these types.
package domain
