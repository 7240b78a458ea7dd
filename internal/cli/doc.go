// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like signals and exit
// codes. It translates cobra commands and flags into the application's
// internal configuration.
package cli
