// Package teardown removes everything a run created by deleting its
// resource group. Teardown is best-effort: it runs whether or not the
// provisioning phases completed, and a run that never created a resource
// group has nothing to do.
package teardown
