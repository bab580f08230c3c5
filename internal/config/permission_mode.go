package config

// PermissionMode represents different permission handling modes.
// The SDK uses underscore names; CLIToken maps them to the CLI's
// camelCase wire tokens.
type PermissionMode string

const (
	// PermissionModeDefault uses standard permission prompts.
	PermissionModeDefault PermissionMode = "default"
	// PermissionModeAcceptEdits automatically accepts file edits.
	PermissionModeAcceptEdits PermissionMode = "accept_edits"
	// PermissionModeBypassPermissions bypasses all permission checks.
	PermissionModeBypassPermissions PermissionMode = "bypass_permissions"
	// PermissionModePlan enables plan mode for implementation planning.
	PermissionModePlan PermissionMode = "plan"
)

// CLIToken returns the CLI's casing for the mode. Unrecognized values pass
// through unchanged so callers may supply wire tokens directly.
func (m PermissionMode) CLIToken() string {
	switch m {
	case PermissionModeAcceptEdits:
		return "acceptEdits"
	case PermissionModeBypassPermissions:
		return "bypassPermissions"
	default:
		return string(m)
	}
}
