// Copyright (c) 2026 Etheca. All rights reserved.
// Author: dev@etheca.app

// Package identity defines the per-request caller identity.
//
// # Trust Model
//
// Authentication is an external collaborator: the SSO proxy in front of
// this service performs the login dance and forwards the result in trusted
// headers. This package only models what the proxy asserted; it never
// verifies credentials itself.
package identity

// RoleStaff marks Graduate School reviewers with elevated permissions.
const RoleStaff = "staff"

// Identity describes the authenticated caller as asserted by the SSO proxy.
type Identity struct {
	// NetID is the caller's institutional login id.
	NetID string

	// Role is the proxy-asserted role ("staff" or empty for candidates).
	Role string
}

// IsStaff reports whether the caller may perform review/ingest operations.
func (i *Identity) IsStaff() bool {
	return i != nil && i.Role == RoleStaff
}
