package uplc

import "fmt"

// ToDeBruijn rewrites a named term into De Bruijn form: every Var's Index
// becomes its lexical depth from its binder, and Name is cleared. LamAbs
// bodies and CaseTerm/ConstrTerm subterms are walked in binder order.
//
// A free variable (a name with no enclosing binder) is an error.
func ToDeBruijn(t Term) (Term, error) {
	return toDeBruijn(t, nil)
}

func toDeBruijn(t Term, scope []string) (Term, error) {
	switch v := t.(type) {
	case Var:
		idx := indexOf(scope, v.Name)
		if idx < 0 {
			return nil, fmt.Errorf("uplc: unbound variable %q", v.Name)
		}
		return Var{Index: idx}, nil
	case LamAbs:
		body, err := toDeBruijn(v.Body, append([]string{v.ParamName}, scope...))
		if err != nil {
			return nil, err
		}
		return LamAbs{ParamName: v.ParamName, Body: body}, nil
	case Apply:
		f, err := toDeBruijn(v.Function, scope)
		if err != nil {
			return nil, err
		}
		a, err := toDeBruijn(v.Argument, scope)
		if err != nil {
			return nil, err
		}
		return Apply{Function: f, Argument: a}, nil
	case Force:
		inner, err := toDeBruijn(v.Term, scope)
		if err != nil {
			return nil, err
		}
		return Force{Term: inner}, nil
	case Delay:
		inner, err := toDeBruijn(v.Term, scope)
		if err != nil {
			return nil, err
		}
		return Delay{Term: inner}, nil
	case ConstrTerm:
		fields := make([]Term, len(v.Fields))
		for i, f := range v.Fields {
			nf, err := toDeBruijn(f, scope)
			if err != nil {
				return nil, err
			}
			fields[i] = nf
		}
		return ConstrTerm{Tag: v.Tag, Fields: fields}, nil
	case CaseTerm:
		scrut, err := toDeBruijn(v.Scrutinee, scope)
		if err != nil {
			return nil, err
		}
		branches := make([]Term, len(v.Branches))
		for i, b := range v.Branches {
			nb, err := toDeBruijn(b, scope)
			if err != nil {
				return nil, err
			}
			branches[i] = nb
		}
		return CaseTerm{Scrutinee: scrut, Branches: branches}, nil
	case Const, Builtin, TermError:
		return t, nil
	default:
		return nil, fmt.Errorf("uplc: unsupported term node %T", t)
	}
}

func indexOf(scope []string, name string) int {
	for i, n := range scope {
		if n == name {
			return i
		}
	}
	return -1
}
