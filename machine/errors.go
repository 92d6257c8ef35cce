// SPDX-License-Identifier: MIT

package machine

import "errors"

var (
	// ErrMalformedLine indicates an input line that does not follow the
	// machine format. Parse wraps it with the 1-based line number.
	ErrMalformedLine = errors.New("machine: malformed line")
)
