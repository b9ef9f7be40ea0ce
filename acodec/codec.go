// Package acodec implements the canonical JSON wire form for an expression
// tree: nested arrays of the shape [start, stop, unit, recurrence] for
// leaves and ["AND"|"OR"|"NOT", ...] for operators.
package acodec

import (
	"encoding/json"

	"github.com/jpfluger/atempo/aerr"
	"github.com/jpfluger/atempo/aexpr"
	"github.com/jpfluger/atempo/arecur"
	"github.com/jpfluger/atempo/aunit"
)

// ToJSON renders n in the canonical wire form.
func ToJSON(n *aexpr.Node) ([]byte, error) {
	v, err := toValue(n)
	if err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

func toValue(n *aexpr.Node) (interface{}, error) {
	if n == nil {
		return nil, aerr.NewStructural("acodec: nil node")
	}
	switch n.Kind {
	case aexpr.KindLeaf:
		re := n.Leaf
		if re == nil {
			return nil, aerr.NewStructural("acodec: leaf with no RecurrentEvent")
		}
		var recurrence interface{}
		if re.Recurrence != nil {
			recurrence = re.Recurrence.String()
		}
		return []interface{}{re.Start, re.Stop, re.Unit.String(), recurrence}, nil
	case aexpr.KindAnd, aexpr.KindOr, aexpr.KindNot:
		out := make([]interface{}, 0, len(n.Children)+1)
		out = append(out, n.Kind.String())
		for _, c := range n.Children {
			cv, err := toValue(c)
			if err != nil {
				return nil, err
			}
			out = append(out, cv)
		}
		return out, nil
	default:
		return nil, aerr.NewStructural("acodec: unknown node kind")
	}
}

// FromJSON parses raw wire JSON into an expression tree, returning a
// Structural error for any malformed shape.
func FromJSON(raw []byte) (*aexpr.Node, error) {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, aerr.NewStructural("acodec: invalid JSON: " + err.Error())
	}
	return FromValue(v)
}

// FromValue parses an already-decoded JSON value (as produced by
// encoding/json into interface{}) into an expression tree.
func FromValue(v interface{}) (*aexpr.Node, error) {
	arr, ok := v.([]interface{})
	if !ok {
		return nil, aerr.NewStructural("acodec: node must be a JSON array")
	}
	if len(arr) == 0 {
		return nil, aerr.NewStructural("acodec: empty node array")
	}

	if _, isOp := arr[0].(string); isOp {
		return parseOp(arr)
	}
	return parseLeaf(arr)
}

func parseOp(arr []interface{}) (*aexpr.Node, error) {
	op, _ := arr[0].(string)
	children := make([]*aexpr.Node, 0, len(arr)-1)
	for _, cv := range arr[1:] {
		c, err := FromValue(cv)
		if err != nil {
			return nil, err
		}
		children = append(children, c)
	}
	switch op {
	case "AND":
		return aexpr.NewAnd(children...)
	case "OR":
		return aexpr.NewOr(children...)
	case "NOT":
		if len(children) != 1 {
			return nil, aerr.NewStructural("acodec: NOT requires exactly one child")
		}
		return aexpr.NewNot(children[0])
	default:
		return nil, aerr.NewStructural("acodec: unknown operator " + op)
	}
}

func parseLeaf(arr []interface{}) (*aexpr.Node, error) {
	if len(arr) != 4 {
		return nil, aerr.NewStructural("acodec: leaf array must have exactly 4 elements")
	}
	start, ok := readInt(arr[0])
	if !ok {
		return nil, aerr.NewStructural("acodec: leaf start must be an integer")
	}
	stop, ok := readInt(arr[1])
	if !ok {
		return nil, aerr.NewStructural("acodec: leaf stop must be an integer")
	}
	if start >= stop {
		return nil, aerr.NewStructural("acodec: leaf start must be less than stop")
	}
	unitStr, ok := arr[2].(string)
	if !ok {
		return nil, aerr.NewStructural("acodec: leaf unit must be a string")
	}
	unit := aunit.Unit(unitStr)

	var recurrence *aunit.Unit
	if arr[3] != nil {
		recStr, ok := arr[3].(string)
		if !ok {
			return nil, aerr.NewStructural("acodec: leaf recurrence must be a string or null")
		}
		r := aunit.Unit(recStr)
		recurrence = &r
	}

	re, err := arecur.New(start, stop, unit, recurrence)
	if err != nil {
		return nil, err
	}
	return aexpr.NewLeaf(re), nil
}

func readInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), n == float64(int(n))
	case json.Number:
		i, err := n.Int64()
		return int(i), err == nil
	case int:
		return n, true
	default:
		return 0, false
	}
}

// Validate reports whether raw is a well-formed wire expression, never
// returning an error itself.
func Validate(raw []byte) bool {
	_, err := FromJSON(raw)
	return err == nil
}

// ValidateValue is Validate for an already-decoded JSON value.
func ValidateValue(v interface{}) bool {
	_, err := FromValue(v)
	return err == nil
}
