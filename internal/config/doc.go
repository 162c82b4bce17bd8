// Package config loads the workflow configuration from an optional YAML
// file and the environment.
//
// Credential material (tenant, client id/secret or any other ambient
// mechanism) is never handled here; it is consumed directly by azidentity
// from its standard environment variables. This package only carries the
// subscription, region, machine shapes, and network layout of a run.
package config
