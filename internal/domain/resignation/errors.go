package resignation

import "errors"

var ErrResignationRequestNotFound = errors.New("resignation request not found")
