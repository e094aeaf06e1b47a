package templates

import (
	"fmt"
	"strconv"
	"strings"
)

// prefixedStrings renders "prefix0, prefix1, ..., prefix(count-1)", the
// comma-joined type-parameter or argument list every generated Map arity
// needs.
func prefixedStrings(prefix string, count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString(prefix)
		sb.WriteString(strconv.Itoa(i))
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

// MapGen renders incr/map_gen.go: Map1..MapN, one function per arity,
// since Go has no variadic type parameters to express a single Map
// combinator across all arities.
func MapGen(n int) string {
	var sb strings.Builder
	sb.WriteString("package incr\n\n")
	sb.WriteString("// Code generated by cmd/codegen; DO NOT EDIT.\n//\n")
	sb.WriteString(fmt.Sprintf("// Map1..Map%d apply a pure function of N children's values to produce a new\n", n))
	sb.WriteString("// node's value. Each is its own Go generic\n")
	sb.WriteString("// function rather than one variadic combinator because Go has no variadic\n")
	sb.WriteString("// type parameters.\n")

	for arity := 1; arity <= n; arity++ {
		sb.WriteString("\n")
		sb.WriteString(mapFunc(arity))
	}
	return sb.String()
}

func mapFunc(arity int) string {
	var sb strings.Builder

	typeParams := prefixedStrings("T", arity) + ", O comparable"
	args := make([]string, arity)
	calls := make([]string, arity)
	for i := 0; i < arity; i++ {
		args[i] = fmt.Sprintf("a%d *Node[T%d]", i, i)
		calls[i] = fmt.Sprintf("a%d.UnsafeValue()", i)
	}
	packed := make([]string, arity)
	for i := 0; i < arity; i++ {
		packed[i] = fmt.Sprintf("a%d.Pack()", i)
	}

	sb.WriteString(fmt.Sprintf("func Map%d[%s](state *State, %s, f func(%s) O) *Node[O] {\n",
		arity, typeParams, strings.Join(args, ", "), prefixedStrings("T", arity)))
	sb.WriteString(fmt.Sprintf("\tn := CreateNode[O](state.CurrentScope(), fixedKind(KindMapN, \"map%d\", %s))\n",
		arity, strings.Join(packed, ", ")))
	sb.WriteString("\tn.computeFn = func(Optional[O]) O {\n")
	sb.WriteString(fmt.Sprintf("\t\treturn f(%s)\n", strings.Join(calls, ", ")))
	sb.WriteString("\t}\n")
	for i := 0; i < arity; i++ {
		sb.WriteString(fmt.Sprintf("\tstate.wireChild(n.Pack(), a%d.Pack(), %d)\n", i, i))
	}
	sb.WriteString("\treturn n\n}\n")
	return sb.String()
}
