package gotypes

import "go/types"

// Element adapts a go/types object to the binding package's declaration
// handle.
//
// The modifier mapping follows how Go declarations relate to an owning
// type: a function with a receiver is an instance-level callable, a
// package-level function stands on its own (static), and an interface
// method has no body of its own (abstract).
type Element struct {
	obj types.Object
}

// NewElement wraps a go/types object.
func NewElement(obj types.Object) Element {
	return Element{obj: obj}
}

// Object returns the underlying go/types object.
func (e Element) Object() types.Object { return e.obj }

// Name returns the declaration's name.
func (e Element) Name() string {
	if e.obj == nil {
		return "<nil>"
	}
	return e.obj.Name()
}

// Static reports whether the declaration is invocable without an owner
// instance: anything that is not a method.
func (e Element) Static() bool {
	return e.receiver() == nil
}

// Abstract reports whether the declaration has no body of its own: a method
// declared on an interface type.
func (e Element) Abstract() bool {
	recv := e.receiver()
	if recv == nil {
		return false
	}
	return types.IsInterface(recv.Type())
}

func (e Element) receiver() *types.Var {
	fn, ok := e.obj.(*types.Func)
	if !ok {
		return nil
	}
	sig, ok := fn.Type().(*types.Signature)
	if !ok {
		return nil
	}
	return sig.Recv()
}
