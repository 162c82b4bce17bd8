package provisioning

// Phase defines the interface for a workflow phase.
type Phase interface {
	// Name returns the human-readable name of this phase.
	Name() string

	// Provision executes the phase against the shared context.
	Provision(ctx *Context) error
}
