package codec

import (
	"fmt"

	"github.com/kilnbyte/bdoc/errs"
)

// validateKey checks an element key against BDoc's strict-mode rules
// (§4.6): a key starting with '$' or containing '.' is rejected. Empty
// keys are allowed, and the check operates on raw bytes without
// inspecting UTF-8 structure.
func validateKey(key string) error {
	if len(key) == 0 {
		return nil
	}

	if key[0] == '$' {
		return fmt.Errorf("%w: %q", errs.ErrInvalidKeyDollar, key)
	}

	for i := 0; i < len(key); i++ {
		if key[i] == '.' {
			return fmt.Errorf("%w: %q", errs.ErrInvalidKeyDot, key)
		}
	}

	return nil
}
