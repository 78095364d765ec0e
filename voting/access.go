// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

// Identity is an opaque participant identifier, typically an address.
type Identity string

// AccessControl gates privileged operations on the single administrator
// and voter-only operations on registration. Both checks are independent of
// the workflow phase.
type AccessControl struct {
	admin  Identity
	voters *VoterRegistry
}

func NewAccessControl(admin Identity, voters *VoterRegistry) *AccessControl {
	return &AccessControl{admin: admin, voters: voters}
}

func (a *AccessControl) Admin() Identity {
	return a.admin
}

func (a *AccessControl) RequireAdmin(caller Identity) error {
	if caller != a.admin {
		return newError(ErrUnauthorized, msgNotOwner)
	}
	return nil
}

func (a *AccessControl) RequireVoter(caller Identity) error {
	if !a.voters.IsRegistered(caller) {
		return newError(ErrNotAVoter, msgNotAVoter)
	}
	return nil
}
