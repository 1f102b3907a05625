// Package kernel contains shared value objects used across the domain
// model. Currently this is the UUID identity type; domain-specific value
// objects live in their owning model packages.
package kernel
