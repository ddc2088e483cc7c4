package auth

import (
	"bytes"
	"math"
	"testing"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwkit/cwkit-go/cw"
)

const transferAdminTimeout = 100

func TestTransferAdmin(t *testing.T) {
	x := newTestAddrs()
	deps := cw.MockDeps()
	env := cw.MockEnv()

	_, err := LoadTransferAdminState(deps.Storage)
	require.ErrorIs(t, err, cw.ErrNotFound)

	_, err = AcceptAdmin(deps, env, x.sender)
	assert.ErrorIs(t, err, ErrNoNewAdmin)

	require.NoError(t, UpdateAdmin(deps, env, x.admin, x.admin, string(x.alice), transferAdminTimeout))

	state, err := LoadTransferAdminState(deps.Storage)
	require.NoError(t, err)
	assert.Equal(t, TransferAdminState{
		NewAdmin: x.alice,
		Deadline: env.Block.Time.Seconds() + transferAdminTimeout,
	}, state)

	_, err = AcceptAdmin(deps, env, x.sender)
	assert.ErrorIs(t, err, ErrUnauthorized)

	env.Block.Time = env.Block.Time.PlusSeconds(2 * transferAdminTimeout)
	_, err = AcceptAdmin(deps, env, x.alice)
	assert.ErrorIs(t, err, ErrTransferAdminDeadline)

	require.NoError(t, UpdateAdmin(deps, env, x.admin, x.admin, string(x.alice), transferAdminTimeout))
	newAdmin, err := AcceptAdmin(deps, env, x.alice)
	require.NoError(t, err)
	assert.Equal(t, x.alice, newAdmin)

	// Accepting closes the proposal.
	_, err = AcceptAdmin(deps, env, x.alice)
	assert.ErrorIs(t, err, ErrTransferAdminDeadline)
}

func TestUpdateAdmin_Errors(t *testing.T) {
	x := newTestAddrs()
	deps := cw.MockDeps()
	env := cw.MockEnv()

	err := UpdateAdmin(deps, env, x.sender, x.admin, string(x.alice), transferAdminTimeout)
	assert.ErrorIs(t, err, ErrUnauthorized)

	err = UpdateAdmin(deps, env, x.admin, x.admin, "alice", transferAdminTimeout)
	assert.ErrorIs(t, err, cw.ErrInvalidAddress)

	err = UpdateAdmin(deps, env, x.admin, x.admin, string(x.alice), math.MaxUint64)
	assert.ErrorIs(t, err, cw.ErrOverflow)

	exists, err := cw.NewItem[TransferAdminState]("transfer_admin_state").Exists(deps.Storage)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUpdateAdmin_LargestTimeout(t *testing.T) {
	x := newTestAddrs()
	deps := cw.MockDeps()
	env := cw.MockEnv()

	timeout := math.MaxUint64 - env.Block.Time.Seconds()
	require.NoError(t, UpdateAdmin(deps, env, x.admin, x.admin, string(x.alice), timeout))

	state, err := LoadTransferAdminState(deps.Storage)
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), state.Deadline)

	newAdmin, err := AcceptAdmin(deps, env, x.alice)
	require.NoError(t, err)
	assert.Equal(t, x.alice, newAdmin)
}

func TestUpdateAdmin_ReplacesProposal(t *testing.T) {
	x := newTestAddrs()
	deps := cw.MockDeps()
	env := cw.MockEnv()

	require.NoError(t, UpdateAdmin(deps, env, x.admin, x.admin, string(x.alice), transferAdminTimeout))
	require.NoError(t, UpdateAdmin(deps, env, x.admin, x.admin, string(x.bob), transferAdminTimeout))

	_, err := AcceptAdmin(deps, env, x.alice)
	assert.ErrorIs(t, err, ErrUnauthorized)

	newAdmin, err := AcceptAdmin(deps, env, x.bob)
	require.NoError(t, err)
	assert.Equal(t, x.bob, newAdmin)
}

func TestTransferAdmin_Logs(t *testing.T) {
	x := newTestAddrs()

	var buf bytes.Buffer
	deps := cw.MockDeps(cw.WithLogger(log.NewLogfmtLogger(&buf)))
	env := cw.MockEnv()

	require.NoError(t, UpdateAdmin(deps, env, x.admin, x.admin, string(x.alice), transferAdminTimeout))
	_, err := AcceptAdmin(deps, env, x.alice)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `level=info msg="admin transfer proposed"`)
	assert.Contains(t, out, "new_admin="+string(x.alice))
	assert.Contains(t, out, `msg="admin transfer accepted"`)
}
