package provisioning

import (
	"context"

	"github.com/imamik/azvmlab/internal/config"
	azure_internal "github.com/imamik/azvmlab/internal/platform/azure"
)

// Context wraps all dependencies and state needed for a workflow phase.
type Context struct {
	context.Context
	Config   *config.Config
	State    *State
	Cloud    azure_internal.CloudManager
	Observer Observer
	Timeouts *config.Timeouts
}

// NewContext creates a new workflow context.
func NewContext(ctx context.Context, cfg *config.Config, cloud azure_internal.CloudManager) *Context {
	return &Context{
		Context:  ctx,
		Config:   cfg,
		State:    NewState(),
		Cloud:    cloud,
		Observer: NewConsoleObserver(),
		Timeouts: config.LoadTimeouts(),
	}
}
