package builtins

import "errors"

var errInvalidUtf8 = errors.New("decodeUtf8: invalid UTF-8 byte sequence")
