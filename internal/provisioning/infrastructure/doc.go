// Package infrastructure provisions the foundation of a run: the resource
// group, the virtual network with its two subnets, and one network
// interface per subnet.
package infrastructure
