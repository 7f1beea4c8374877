// Package contract holds the validated configuration surface shared by all
// commands, plus small helpers for logging and console output.
package contract
