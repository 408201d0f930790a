// Package types defines the task record, the storage configuration, and
// the storage error type shared by the ticklist store and CLI.
package types
