// Package satchel exposes module-level metadata.
package satchel

// Version is the semantic version of the satchel module.
const Version = "0.1.0"
