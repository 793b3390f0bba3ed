// Package utils provides common helpers shared across packages, such as lenient
// conversion of user input (query strings, CLI arguments) to ints and bools.
package utils
