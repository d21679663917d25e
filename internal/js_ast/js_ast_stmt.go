package js_ast

import "github.com/nilsvast/ecmaparse/internal/logger"

// Stmt is one node of the statement grammar.
type Stmt struct {
	Data S
	Loc  logger.Loc

	// Range carries the statement's full source extent. It is left at its
	// zero value unless Options.RetainRanges is set.
	Range logger.Range
}

type S interface{ isStmt() }

func (*SBlock) isStmt()          {}
func (*SEmpty) isStmt()          {}
func (*SDebugger) isStmt()       {}
func (*SDirective) isStmt()      {}
func (*SExpr) isStmt()           {}
func (*SVariable) isStmt()       {}
func (*SFunction) isStmt()       {}
func (*SClass) isStmt()          {}
func (*SLabel) isStmt()          {}
func (*SIf) isStmt()             {}
func (*SFor) isStmt()            {}
func (*SForIn) isStmt()          {}
func (*SForOf) isStmt()          {}
func (*SDoWhile) isStmt()        {}
func (*SWhile) isStmt()          {}
func (*SWith) isStmt()           {}
func (*STry) isStmt()            {}
func (*SSwitch) isStmt()         {}
func (*SReturn) isStmt()         {}
func (*SThrow) isStmt()          {}
func (*SBreak) isStmt()          {}
func (*SContinue) isStmt()       {}
func (*SImport) isStmt()         {}
func (*SExportClause) isStmt()   {}
func (*SExportFrom) isStmt()     {}
func (*SExportDefault) isStmt()  {}
func (*SExportStar) isStmt()     {}
func (*SExportDecl) isStmt()     {}

type SBlock struct {
	Stmts         []Stmt
	CloseBraceLoc logger.Loc
}

type SEmpty struct{}
type SDebugger struct{}

// SDirective is a string-literal expression statement retained from the
// directive prologue (section 4.4.2), including "use strict" itself.
type SDirective struct {
	Value string
}

type SExpr struct {
	Value Expr
}

// VariableKind distinguishes "var" from the two lexical declaration forms;
// all three share one declarator shape.
type VariableKind uint8

const (
	VariableVar VariableKind = iota
	VariableLet
	VariableConst
)

type Declarator struct {
	Binding    Binding
	ValueOrNil Expr
}

type SVariable struct {
	Kind        VariableKind
	Declarators []Declarator
	// True for declarations introduced by a for-head; see ForClause on
	// SFor/SForIn/SForOf, which is how the parser tells a bare "var" statement
	// from one consumed as a for-loop's init clause.
	IsForLoopInit bool
}

type SFunction struct {
	Fn Fn
}

type SClass struct {
	Class Class
}

type SLabel struct {
	Name string
	NameLoc logger.Loc
	Stmt Stmt
}

type SIf struct {
	Test    Expr
	Yes     Stmt
	NoOrNil Stmt
}

// SFor's InitOrNil is either an SVariable or an SExpr, matching the For
// header disambiguation of section 4.4.5.
type SFor struct {
	InitOrNil   Stmt
	TestOrNil   Expr
	UpdateOrNil Expr
	Body        Stmt
}

type SForIn struct {
	Init  Stmt // SVariable (single declarator) or SExpr assignment target
	Value Expr
	Body  Stmt
}

type SForOf struct {
	Init    Stmt
	Value   Expr
	Body    Stmt
	IsAwait bool
}

type SDoWhile struct {
	Body Stmt
	Test Expr
}

type SWhile struct {
	Test Expr
	Body Stmt
}

type SWith struct {
	Value   Expr
	Body    Stmt
	BodyLoc logger.Loc
}

type Catch struct {
	BindingOrNil Binding
	Block        SBlock
	Loc          logger.Loc
}

type Finally struct {
	Block SBlock
	Loc   logger.Loc
}

type STry struct {
	Block   SBlock
	Catch   *Catch
	Finally *Finally
}

type Case struct {
	ValueOrNil Expr // nil marks the "default" case
	Body       []Stmt
}

type SSwitch struct {
	Test    Expr
	Cases   []Case
	BodyLoc logger.Loc
}

type SReturn struct {
	ValueOrNil Expr
}

type SThrow struct {
	Value Expr
}

type SBreak struct {
	Label *LocName
}

type SContinue struct {
	Label *LocName
}

// ---- Module items (section 4.4.11) ----

// ClauseItem is one "name" or "name as alias" entry in an import/export
// named-list clause.
type ClauseItem struct {
	Name    string
	Alias   string // equal to Name when there is no "as" clause
	NameLoc logger.Loc
}

// SImport covers every combination named in section 3: default-only,
// default+namespace, namespace-only, default+named-list, named-list-only,
// and the bare "import 'path'" form (all fields nil/empty).
type SImport struct {
	DefaultName *LocName
	Items       []ClauseItem // nil means no named-list clause
	StarName    *LocName     // non-nil for "* as ns"
	ImportPath  string
}

type SExportClause struct {
	Items []ClauseItem
}

// SExportFrom is a re-export: "export {a, b as c} from 'path'" or
// "export * as ns from 'path'" (Items is nil in the latter case and StarName
// is set).
type SExportFrom struct {
	Items      []ClauseItem
	StarName   *LocName
	ImportPath string
}

// SExportDefault covers "export default <class|function|expression>".
type SExportDefault struct {
	Value Stmt // SClass, SFunction, or SExpr
}

type SExportStar struct {
	ImportPath string
}

// SExportDecl is "export <var|let|const|function|class declaration>": the
// wrapped Stmt is always an SVariable, SFunction, or SClass.
type SExportDecl struct {
	Value Stmt
}

// ---- Program root ----

type Goal uint8

const (
	GoalScript Goal = iota
	GoalModule
)

// ModuleItem is either a Stmt or one of the module-only forms recorded above
// as Stmt variants (SImport/SExportClause/SExportFrom/SExportDefault/
// SExportStar); they share the Stmt slice so body order is preserved exactly
// as written.
type AST struct {
	Goal       Goal
	Directives []SDirective
	Body       []Stmt

	// Comments holds the source's comment trivia in source order, populated
	// only when Options.RetainComments is set.
	Comments []Comment
}
