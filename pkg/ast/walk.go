package ast

// Walk traverses the tree rooted at node depth-first, calling visit for each
// node before its children. If visit returns false the children of that node
// are skipped. Nil children are not visited.
func Walk(node Node, visit func(Node) bool) {
	if isNil(node) || !visit(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		walkList(n.Body, visit)
	case *BlockStatement:
		walkList(n.Body, visit)
	case *ReturnStatement:
		Walk(n.Argument, visit)
	case *VariableDeclaration:
		Walk(n.ID, visit)
		if n.Init != nil {
			Walk(n.Init, visit)
		}
	case *FunctionDeclaration:
		Walk(n.ID, visit)
		for _, p := range n.Params {
			Walk(p, visit)
		}
		Walk(n.Body, visit)
	case *BinaryExpression:
		Walk(n.Left, visit)
		Walk(n.Right, visit)
	case *UnaryExpression:
		Walk(n.Argument, visit)
	case *AssignmentExpression:
		Walk(n.Left, visit)
		Walk(n.Right, visit)
	case *CallExpression:
		Walk(n.Callee, visit)
		walkList(n.Arguments, visit)
	case *ObjectExpression:
		for _, p := range n.Properties {
			Walk(p, visit)
		}
	case *Property:
		Walk(n.Key, visit)
		Walk(n.Value, visit)
	case *IfStatement:
		Walk(n.Test, visit)
		Walk(n.Consequent, visit)
		if n.Alternate != nil {
			Walk(n.Alternate, visit)
		}
	case *WhileStatement:
		Walk(n.Test, visit)
		Walk(n.Body, visit)
	case *ForStatement:
		for _, s := range []Statement{n.Init, n.Test, n.Update, n.Body} {
			if s != nil {
				Walk(s, visit)
			}
		}
	case *Literal, *Identifier:
		// leaves
	}
}

func walkList(list []Statement, visit func(Node) bool) {
	for _, s := range list {
		Walk(s, visit)
	}
}

// isNil catches typed nil pointers hidden in a Node interface.
func isNil(node Node) bool {
	switch n := node.(type) {
	case nil:
		return true
	case *Identifier:
		return n == nil
	case *BlockStatement:
		return n == nil
	case *Property:
		return n == nil
	}
	return false
}
