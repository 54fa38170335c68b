package cdecl

// checker validates a completed declarator AST against kind/type
// compatibility rules and the active language dialect. It collects every
// independent problem rather than stopping at the first, so one statement
// can report multiple diagnostics.
type checker struct {
	opts   Options
	cast   bool
	member bool // the declared name carries a class scope
	issues []Issue
}

// CheckDeclaration validates ast as a declaration and returns any issues
// found. An empty slice means the AST is clean for rendering.
func CheckDeclaration(ast *AST, opt *Options) []Issue {
	c := checker{opts: opt.normalize()}
	c.setScope(ast)
	c.visit(ast)
	return c.issues
}

// CheckCast validates ast as the target type of a cast. Casts obey the
// declaration rules plus cast-specific restrictions: no storage classes, no
// bit-fields, and no casting into arrays or functions.
func CheckCast(ast *AST, opt *Options) []Issue {
	c := checker{opts: opt.normalize(), cast: true}
	c.setScope(ast)

	switch ast.Kind {
	case KindArray:
		c.errorf(ast.Loc, "bad_cast",
			"arrays can't be cast into; did you mean %q?", "pointer")
	case KindFunction, KindOperator, KindAppleBlock:
		c.errorf(ast.Loc, "bad_cast",
			"functions can't be cast into; did you mean %q?",
			"pointer to function")
	}

	c.visit(ast)
	return c.issues
}

// setScope records whether the declared name puts the declarator inside a
// class scope. Scope segments marked as namespaces do not count.
func (c *checker) setScope(ast *AST) {
	if name := ast.FindName(VisitDown); name != nil {
		c.member = name.Count() > 1 && name.ScopeType() != TNamespace
	}
}

func (c *checker) errorf(loc Loc, code, format string, args ...any) {
	c.issues = append(c.issues, errorIssue(loc, code, format, args...))
}

func (c *checker) warnf(loc Loc, code, format string, args ...any) {
	c.issues = append(c.issues, warnIssue(loc, code, format, args...))
}

// visit checks one node and recurses into its child and parameters.
func (c *checker) visit(ast *AST) {
	if ast == nil {
		return
	}
	assertf(ast.Kind != KindPlaceholder, "placeholder in finished AST")

	c.checkType(ast)
	c.checkKind(ast)

	c.visit(ast.Of)
	for _, p := range ast.Params {
		c.visit(p)
		c.checkParam(ast, p)
	}
}

// checkType validates the node's type bits against the active dialect.
func (c *checker) checkType(ast *AST) {
	if ast.Type == TNone {
		return
	}
	if langs := TypeCheck(ast.Type); !langs.Has(c.opts.Lang) {
		c.errorf(ast.Loc, "illegal_type", "%q is illegal%s",
			TypeNameEnglish(ast.Type), langWhich(langs, c.opts.Lang))
	}

	if ast.Type&TMaskRef != 0 && !ast.Kind.Is(KindAnyFuncLike) {
		c.errorf(ast.Loc, "ref_qualifier_placement",
			"ref-qualifiers can only apply to member functions")
	}

	if ast.Type&TRestrict != 0 &&
		!ast.Kind.Is(KindPointer|KindArray|KindAnyFuncLike) {
		c.errorf(ast.Loc, "restrict_placement",
			"%q can only apply to pointers", "restrict")
	}

	if !c.isStorageSite(ast) {
		if storage := ast.Type & TMaskStorage &^ TRegister; storage != 0 {
			c.errorf(ast.Loc, "storage_placement",
				"%q can only appear at the outermost level",
				TypeNameEnglish(storage))
		}
	}

	if c.cast {
		if ast.Type&TTypedef != 0 {
			c.errorf(ast.Loc, "bad_cast", "can't cast into %q", "typedef")
		}
		if storage := ast.Type & TMaskStorage &^ TTypedef; storage != 0 {
			c.errorf(ast.Loc, "bad_cast", "can't cast into %q",
				TypeNameEnglish(storage))
		}
	}

	if ast.Type&TRegister != 0 {
		deprecated := LangSet(LangCPP11 | LangCPP14)
		if deprecated.Has(c.opts.Lang) {
			c.warnf(ast.Loc, "deprecated", "%q is deprecated%s", "register",
				langWhich(CPPMax(LangCPP03)|LangSetCAny, c.opts.Lang))
		}
	}
}

// isStorageSite reports whether storage-class bits are legal on this node.
// Sites are the of-chain leaf, where both grammars land the declaration
// specifiers ("static int a[3]" keeps static on the int), the outermost
// node of the declaration or of one parameter, and any node the name
// migrates through on the way there (pointer chains off the root).
// Parameter roots count as sites; checkParam owns their rules.
func (c *checker) isStorageSite(ast *AST) bool {
	if !ast.Kind.Is(KindAnyParent &^ KindEnum) {
		return true
	}
	for n := ast; n != nil; n = n.Parent {
		if n.Parent == nil || n.Parent.hasParam(n) {
			return true
		}
		if !n.Parent.Kind.Is(KindAnyPointer | KindAnyReference) {
			return false
		}
	}
	return true
}

// checkKind validates per-kind structural rules.
func (c *checker) checkKind(ast *AST) {
	lang := c.opts.Lang

	if ast.BitWidth > 0 {
		switch {
		case c.cast:
			c.errorf(ast.Loc, "bad_cast", "bit-fields can't be cast into")
		case !ast.Kind.Is(KindAnyBitField):
			c.errorf(ast.Loc, "bad_bit_field",
				"%s can't have a bit-field width", ast.Kind)
		}
	}

	switch ast.Kind {
	case KindArray:
		if ast.ArraySize == ArraySizeVariable && !CMin(LangC99).Has(lang) {
			c.errorf(ast.Loc, "illegal_vla",
				"variable length arrays are illegal%s",
				langWhich(CMin(LangC99), lang))
		}
		if of := ast.Of.Untypedef(); of != nil {
			switch {
			case of.Kind.Is(KindAnyFuncLike):
				c.errorf(ast.Loc, "bad_array",
					"array of function; did you mean array of %q?",
					"pointer to function")
			case of.IsBuiltin(TVoid):
				c.errorf(ast.Loc, "bad_array",
					"array of void; did you mean array of %q?",
					"pointer to void")
			case of.Kind.Is(KindAnyReference):
				c.errorf(ast.Loc, "bad_array", "array of reference is illegal")
			}
		}

	case KindPointer:
		if of := ast.Of.Untypedef(); of != nil && of.Kind.Is(KindAnyReference) {
			c.errorf(ast.Loc, "bad_pointer", "pointer to reference is illegal")
		}

	case KindReference, KindRvalueReference:
		if lang.IsC() {
			c.errorf(ast.Loc, "cpp_only", "references are illegal%s",
				langWhich(LangSetCPPAny, lang))
		}
		if of := ast.Of.Untypedef(); of != nil {
			if of.Kind.Is(KindAnyReference) {
				c.errorf(ast.Loc, "bad_reference",
					"reference to reference is illegal")
			} else if of.IsBuiltin(TVoid) {
				c.errorf(ast.Loc, "bad_reference",
					"reference to void; did you mean %q?", "pointer to void")
			}
		}

	case KindPointerToMember:
		if lang.IsC() {
			c.errorf(ast.Loc, "cpp_only", "pointer to member is illegal%s",
				langWhich(LangSetCPPAny, lang))
		}

	case KindEnum:
		if ast.Of != nil {
			fixed := CPPMin(LangCPP11) | CMin(LangC23)
			if !fixed.Has(lang) {
				c.errorf(ast.Loc, "bad_enum",
					"enum with underlying type is illegal%s",
					langWhich(fixed, lang))
			}
			if of := ast.Of.Untypedef(); of != nil && of.Kind == KindBuiltin &&
				of.Type&(TAnyFloat|TComplex|TImaginary|TVoid) != 0 {
				c.errorf(ast.Loc, "bad_enum",
					"enum underlying type must be integral")
			}
		}

	case KindFunction, KindOperator, KindAppleBlock, KindUserDefLiteral:
		c.checkMember(ast)
		if ret := ast.Of.Untypedef(); ret != nil {
			switch {
			case ret.Kind == KindArray:
				c.errorf(ast.Loc, "bad_return",
					"function returning array; did you mean returning %q?",
					"pointer")
			case ret.Kind.Is(KindAnyFuncLike):
				c.errorf(ast.Loc, "bad_return",
					"function returning function; did you mean returning %q?",
					"pointer to function")
			}
		}

	case KindConstructor, KindDestructor, KindUserDefConversion:
		if lang.IsC() {
			c.errorf(ast.Loc, "cpp_only", "%s is illegal%s", ast.Kind,
				langWhich(LangSetCPPAny, lang))
		}
		c.checkMember(ast)

	case KindName:
		// An untyped K&R parameter.
		if lang >= LangC23 || lang.IsCPP() {
			c.errorf(ast.Loc, "untyped_parameter",
				"untyped parameters are illegal%s",
				langWhich(CMax(LangC17), lang))
		}
	}
}

// checkMember enforces the keywords restricted by class membership on one
// function-like node. Constructors, destructors, and conversion operators
// are members by nature; everything else needs a class-scoped name.
func (c *checker) checkMember(fn *AST) {
	member := c.member ||
		fn.Kind.Is(KindConstructor|KindDestructor|KindUserDefConversion)
	if !member {
		if t := fn.Type & TMemberOnly; t != 0 {
			c.errorf(fn.Loc, "member_only",
				"%q can only apply to member functions",
				TypeNameEnglish(lowestBit(t)))
		}
	} else if t := fn.Type & TNonMemberOnly; t != 0 {
		c.errorf(fn.Loc, "non_member_only",
			"%q can't apply to member functions",
			TypeNameEnglish(lowestBit(t)))
	}
	if t := fn.Type & TConstructorOnly; t != 0 &&
		!fn.Kind.Is(KindConstructor|KindUserDefConversion) {
		c.errorf(fn.Loc, "constructor_only",
			"%q can only apply to constructors",
			TypeNameEnglish(lowestBit(t)))
	}
	if fn.Kind == KindUserDefConversion {
		if t := fn.Type & TMaskAnyStorage &^ TUserDefConv; t != 0 {
			c.errorf(fn.Loc, "bad_conversion",
				"%q can't apply to user-defined conversion operators",
				TypeNameEnglish(lowestBit(t)))
		}
	}
}

// checkParam validates one parameter in the context of its function.
func (c *checker) checkParam(fn, param *AST) {
	if un := param.Untypedef(); un != nil && un.IsBuiltin(TVoid) &&
		un.Kind == KindBuiltin {
		// void must be the only parameter and unnamed.
		if len(fn.Params) > 1 {
			c.errorf(param.Loc, "bad_parameter",
				"%q must be the only parameter", "void")
		} else if name := param.FindName(VisitDown); name != nil {
			c.errorf(param.Loc, "bad_parameter",
				"parameter of void can't have a name")
		}
	}
	if param.Kind == KindVariadic && fn.Params[len(fn.Params)-1] != param {
		c.errorf(param.Loc, "bad_parameter",
			"%q must be the last parameter", "...")
	}
	if storage := param.Type & TMaskStorage &^ TRegister; storage != 0 {
		c.errorf(param.Loc, "bad_parameter", "parameters can't be %q",
			TypeNameEnglish(storage))
	}
}
