// Package main provides the entry point for the pwstrength CLI.
//
// pwstrength rates passwords on a six-level scale from Very Weak to
// Excellent and explains the rating with actionable feedback.
//
// Usage:
//
//	pwstrength check                 # prompt for a password
//	pwstrength check <password>...   # check arguments
//	pwstrength check --file list.txt # one password per line
//
// See --help for all available options.
package main

// main is the entry point for pwstrength.
func main() {
	Execute()
}
