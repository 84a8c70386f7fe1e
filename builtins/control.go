package builtins

import "github.com/blinklabs-io/gouplc/cek"

func ifThenElse(args []cek.Value) (cek.Value, error) {
	cond, err := asBool(args[0])
	if err != nil {
		return nil, err
	}
	if cond {
		return args[1], nil
	}
	return args[2], nil
}

func chooseUnit(args []cek.Value) (cek.Value, error) {
	if err := asUnit(args[0]); err != nil {
		return nil, err
	}
	return args[1], nil
}

// trace appends its message argument to the Logger owned by whichever
// Registry produced it (injected via NewRegistry's logger argument, not a package-level global, so
// concurrent evaluator runs never share a log) and then returns its second
// argument unchanged.
func trace(logger cek.Logger) func([]cek.Value) (cek.Value, error) {
	return func(args []cek.Value) (cek.Value, error) {
		msg, err := asString(args[0])
		if err != nil {
			return nil, err
		}
		if logger != nil {
			logger.Log(msg)
		}
		return args[1], nil
	}
}
