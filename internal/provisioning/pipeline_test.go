package provisioning

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/azvmlab/internal/config"
	azure_internal "github.com/imamik/azvmlab/internal/platform/azure"
)

type fakePhase struct {
	name string
	err  error
	runs *[]string
}

func (p *fakePhase) Name() string { return p.name }

func (p *fakePhase) Provision(_ *Context) error {
	*p.runs = append(*p.runs, p.name)
	return p.err
}

func testContext(t *testing.T) *Context {
	t.Helper()
	t.Setenv("AZURE_SUBSCRIPTION_ID", "00000000-0000-0000-0000-00000000test")

	cfg, err := config.Load("")
	require.NoError(t, err)

	return NewContext(context.Background(), cfg, &azure_internal.MockClient{})
}

func TestRunPhasesAllSucceed(t *testing.T) {
	ctx := testContext(t)

	var runs []string
	phases := []Phase{
		&fakePhase{name: "first", runs: &runs},
		&fakePhase{name: "second", runs: &runs},
	}

	err := RunPhases(ctx, phases)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, runs)
}

func TestRunPhasesAbortsOnFailure(t *testing.T) {
	ctx := testContext(t)

	var runs []string
	boom := errors.New("boom")
	phases := []Phase{
		&fakePhase{name: "first", runs: &runs},
		&fakePhase{name: "second", err: boom, runs: &runs},
		&fakePhase{name: "third", runs: &runs},
	}

	err := RunPhases(ctx, phases)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "second phase failed")
	assert.Equal(t, []string{"first", "second"}, runs, "third phase must not run")
}

func TestNewContextGeneratesNames(t *testing.T) {
	ctx := testContext(t)

	names := ctx.State.Names
	assert.NotEmpty(t, names.ResourceGroup)
	assert.Len(t, names.Subnets, 2)
	assert.Len(t, names.Interfaces, 2)
	assert.Len(t, names.Disks, 3)
	assert.NotEqual(t, names.WindowsVM, names.LinuxVM)
}

func TestNewNamesSharesSuffix(t *testing.T) {
	names := NewNames("ab12cd")

	assert.Equal(t, "azvmlab-rg-ab12cd", names.ResourceGroup)
	assert.Equal(t, "azvmlab-vnet-ab12cd", names.VirtualNetwork)
	assert.Equal(t, []string{"subnet1", "subnet2"}, names.Subnets)
	assert.Equal(t, "wvm-ab12cd", names.WindowsVM)
	assert.Equal(t, "lvm-ab12cd", names.LinuxVM)
}
