// Package utils provides general-purpose helper utilities
// used across different parts of the dev proxy: JSON response writing,
// trace id generation and HTTP client initialization.
package utils
