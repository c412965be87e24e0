// Package json is the JSON codec used across the module. It is a drop-in for
// encoding/json backed by json-iterator.
package json

import (
	stdjson "encoding/json"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// tree decodes numbers as Number so integer ids survive untouched when a
// payload is walked generically.
var tree = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

var (
	Marshal       = json.Marshal
	MarshalIndent = json.MarshalIndent
	Unmarshal     = json.Unmarshal
	NewDecoder    = json.NewDecoder
	NewEncoder    = json.NewEncoder
	Valid         = json.Valid
)

type RawMessage = jsoniter.RawMessage

// Number is the type UnmarshalTree produces for every JSON number.
type Number = stdjson.Number

type Decoder = jsoniter.Decoder

type Encoder = jsoniter.Encoder

// UnmarshalTree decodes data into generic maps, slices and Numbers.
func UnmarshalTree(data []byte) (interface{}, error) {
	var v interface{}
	if err := tree.Unmarshal(data, &v); err != nil {
		return nil, err
	}

	return v, nil
}
