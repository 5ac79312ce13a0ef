// Package types defines the entity records, enumerations, and standard
// errors for the Botanica plant-tracking data layer.
// Repositories in internal/ own the persistence of these records; the
// types themselves carry only derived computations (watering dates,
// reminder cadence) that do not touch storage.
package types
