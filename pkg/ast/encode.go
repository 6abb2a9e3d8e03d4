package ast

import "math"

// ToMap converts a tree into nested generic maps keyed like ESTree nodes
// ("type", "body", "operator", ...). The result only contains maps, slices,
// strings, float64, bool and nil, so it can be handed to any JSON or YAML
// encoder.
func ToMap(node Node) map[string]interface{} {
	if isNil(node) {
		return nil
	}

	switch n := node.(type) {
	case *Program:
		return obj("Program", "body", list(n.Body))
	case *Literal:
		return obj("Literal", "value", literalValue(n), "raw", n.Raw)
	case *Identifier:
		return obj("Identifier", "name", n.Name)
	case *BinaryExpression:
		return obj("BinaryExpression", "operator", n.Operator, "left", ToMap(n.Left), "right", ToMap(n.Right))
	case *UnaryExpression:
		return obj("UnaryExpression", "operator", n.Operator, "argument", ToMap(n.Argument))
	case *AssignmentExpression:
		return obj("AssignmentExpression", "operator", n.Operator, "left", ToMap(n.Left), "right", ToMap(n.Right))
	case *CallExpression:
		return obj("CallExpression", "callee", ToMap(n.Callee), "arguments", list(n.Arguments))
	case *ObjectExpression:
		props := make([]interface{}, 0, len(n.Properties))
		for _, p := range n.Properties {
			props = append(props, ToMap(p))
		}
		return obj("ObjectExpression", "properties", props)
	case *Property:
		return obj("Property", "key", ToMap(n.Key), "value", ToMap(n.Value))
	case *VariableDeclaration:
		return obj("VariableDeclaration", "kind", n.Kind.String(), "id", ToMap(n.ID), "init", optional(n.Init))
	case *FunctionDeclaration:
		params := make([]interface{}, 0, len(n.Params))
		for _, p := range n.Params {
			params = append(params, ToMap(p))
		}
		return obj("FunctionDeclaration", "id", ToMap(n.ID), "params", params, "body", ToMap(n.Body))
	case *ReturnStatement:
		return obj("ReturnStatement", "argument", ToMap(n.Argument))
	case *BlockStatement:
		return obj("BlockStatement", "body", list(n.Body))
	case *IfStatement:
		return obj("IfStatement", "test", ToMap(n.Test), "consequent", ToMap(n.Consequent), "alternate", optional(n.Alternate))
	case *WhileStatement:
		return obj("WhileStatement", "test", ToMap(n.Test), "body", ToMap(n.Body))
	case *ForStatement:
		return obj("ForStatement", "init", optional(n.Init), "test", optional(n.Test), "update", optional(n.Update), "body", optional(n.Body))
	}
	return nil
}

func obj(typ string, kv ...interface{}) map[string]interface{} {
	m := make(map[string]interface{}, len(kv)/2+1)
	m["type"] = typ
	for i := 0; i+1 < len(kv); i += 2 {
		m[kv[i].(string)] = kv[i+1]
	}
	return m
}

func list(stmts []Statement) []interface{} {
	out := make([]interface{}, 0, len(stmts))
	for _, s := range stmts {
		out = append(out, ToMap(s))
	}
	return out
}

// optional keeps absent children as an untyped nil instead of a nil map.
func optional(s Statement) interface{} {
	if s == nil {
		return nil
	}
	return ToMap(s)
}

func literalValue(l *Literal) interface{} {
	switch l.Kind {
	case NumberLiteral:
		// JSON has no representation for infinities.
		if math.IsInf(l.Number, 0) {
			return l.Raw
		}
		return l.Number
	case UndefinedLiteral:
		return nil
	}
	return l.Value()
}
