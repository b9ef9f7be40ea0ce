package main

import (
	"encoding/json"
	"os"

	"github.com/hjson/hjson-go/v4"

	"github.com/jpfluger/atempo/acodec"
	"github.com/jpfluger/atempo/aexpr"
)

// readExprFile loads path, tolerating HJSON's relaxed syntax for a
// hand-edited file, and returns strict JSON bytes suitable for acodec.
func readExprFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var v interface{}
	if err := hjson.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

// loadExpr reads and decodes path into an expression tree.
func loadExpr(path string) (*aexpr.Node, error) {
	raw, err := readExprFile(path)
	if err != nil {
		return nil, err
	}
	return acodec.FromJSON(raw)
}
