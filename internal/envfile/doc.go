// Package envfile loads the mode-layered .env files that feed the proxy
// resolver and watches them for changes.
//
// For a mode M the files are read in this order, later files overriding
// earlier ones:
//  1. .env
//  2. .env.local
//  3. .env.M
//  4. .env.M.local
//
// Variables already present in the process environment override every file.
package envfile
