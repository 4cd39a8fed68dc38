// Package prompt asks for a single password on the terminal.
//
// When input comes from a terminal and hiding is enabled the password is
// read without echo (golang.org/x/term). Otherwise a line is read as is,
// which keeps piped input working. Empty answers are rejected with a
// message and the question is asked again; end of input yields ErrNoInput.
package prompt
