// Package botanica exposes module-level metadata.
package botanica

// Version is the current release of the botanica module.
const Version = "v0.1.0"
