// Package registry provides a generic, thread-safe store for named items.
// The inspect engine keeps per-type rendering specs in one; callers can use
// it for their own renderer lookups as well.
package registry
