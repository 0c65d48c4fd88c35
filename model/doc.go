// Package model declares the two capability contracts the MHT core consumes
// from its host application (§6): Model, the application-specific motion
// model and likelihood source, and Report, the measurement payload. Neither
// interface is implemented by this module — corner-feature extraction,
// Kalman-like predictors, and their likelihood functions are explicitly out
// of scope (§1) and live entirely on the host side.
package model
