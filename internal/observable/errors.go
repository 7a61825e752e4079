package observable

import "errors"

// ErrInvalidOption indicates an option value a factory does not accept.
var ErrInvalidOption = errors.New("observable: invalid option")
