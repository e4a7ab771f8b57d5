// Package types defines the pantry domain model: the Item entity, the
// stock-level lifecycle, display ordering, the Remote and Backend
// interfaces, and standard error values.
package types
