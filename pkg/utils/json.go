package utils

import (
	jsoniter "github.com/json-iterator/go"
)

// Mesmo comportamento do encoding/json, mas sem escapar &, < e >
var json = jsoniter.Config{
	EscapeHTML:             false,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

// IndentJSON serializa o valor com indentação de dois espaços
func IndentJSON(in any) (string, error) {
	buffer, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return "", err
	}
	return string(buffer), nil
}
