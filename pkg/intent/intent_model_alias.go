package intent

import "github.com/shadowatlas/registry/pkg/protocol"

// CertenIntent is an alias to the canonical protocol.CertenIntent
// This ensures there is exactly one CertenIntent type across the codebase.
type CertenIntent = protocol.CertenIntent