package config

import (
	"encoding/json"
	"fmt"

	"github.com/kbukum/contract-agent/util"
)

// Secret is a credential string that masks itself in every textual
// rendering. Only Reveal returns the real value; use it at the point the
// credential is handed to a client, never in log or display paths.
type Secret string

const secretVisiblePrefix = 4

// String returns the masked form.
func (s Secret) String() string {
	if s == "" {
		return ""
	}
	return util.MaskSecret(string(s), secretVisiblePrefix)
}

// Format implements fmt.Formatter so %v, %s and %q all print the masked form.
func (s Secret) Format(f fmt.State, verb rune) {
	switch verb {
	case 'q':
		fmt.Fprintf(f, "%q", s.String())
	default:
		fmt.Fprint(f, s.String())
	}
}

// MarshalJSON renders the masked form.
func (s Secret) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Reveal returns the underlying credential.
func (s Secret) Reveal() string { return string(s) }
