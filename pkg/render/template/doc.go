// Package template defines the renderer-agnostic seam that content pipelines
// depend on. *render.Engine is the default implementation; tests and callers
// can substitute their own.
package template
