package auth

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/go-kit/log/level"

	"github.com/cwkit/cwkit-go/cw"
)

// TransferAdminState is a pending admin handover.
type TransferAdminState struct {
	NewAdmin cw.Addr `json:"new_admin"`
	Deadline uint64  `json:"deadline"`
}

var transferAdminState = cw.NewItem[TransferAdminState]("transfer_admin_state")

// LoadTransferAdminState returns the pending handover, or cw.ErrNotFound.
func LoadTransferAdminState(store cw.Storage) (TransferAdminState, error) {
	return transferAdminState.Load(store)
}

// UpdateAdmin proposes newAdmin as the next admin. Only admin may call it.
// The proposal can be accepted until timeout seconds after the current
// block time and replaces any earlier proposal. A deadline past the uint64
// range fails with cw.ErrOverflow.
func UpdateAdmin(deps cw.Deps, env cw.Env, sender, admin cw.Addr, newAdmin string, timeout uint64) error {
	if err := Simple(admin).Assert(sender); err != nil {
		return err
	}

	validated, err := deps.Api.AddrValidate(newAdmin)
	if err != nil {
		return fmt.Errorf("validate new admin: %w", err)
	}

	deadline, carry := bits.Add64(env.Block.Time.Seconds(), timeout, 0)
	if carry != 0 {
		return fmt.Errorf("admin transfer deadline: %w", cw.ErrOverflow)
	}

	state := TransferAdminState{
		NewAdmin: validated,
		Deadline: deadline,
	}
	if err := transferAdminState.Save(deps.Storage, state); err != nil {
		return err
	}

	level.Info(deps.Log()).Log("msg", "admin transfer proposed", "admin", admin, "new_admin", validated, "deadline", state.Deadline)
	return nil
}

// AcceptAdmin completes a pending handover. The sender must be the proposed
// admin and the deadline must not have passed. On success it returns the
// new admin and closes the proposal by moving its deadline to now.
func AcceptAdmin(deps cw.Deps, env cw.Env, sender cw.Addr) (cw.Addr, error) {
	blockTime := env.Block.Time.Seconds()

	state, err := transferAdminState.Load(deps.Storage)
	if err != nil {
		if errors.Is(err, cw.ErrNotFound) {
			return "", ErrNoNewAdmin
		}
		return "", err
	}

	if err := Simple(state.NewAdmin).Assert(sender); err != nil {
		return "", err
	}

	if blockTime >= state.Deadline {
		level.Debug(deps.Log()).Log("msg", "admin transfer expired", "new_admin", state.NewAdmin, "deadline", state.Deadline, "block_time", blockTime)
		return "", ErrTransferAdminDeadline
	}

	_, err = transferAdminState.Update(deps.Storage, func(s TransferAdminState) (TransferAdminState, error) {
		s.Deadline = blockTime
		return s, nil
	})
	if err != nil {
		return "", err
	}

	level.Info(deps.Log()).Log("msg", "admin transfer accepted", "new_admin", sender)
	return sender, nil
}
