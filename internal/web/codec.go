// SPDX-License-Identifier: MIT
// Package web: JSON codec.

package web

import (
	"math"
	"reflect"
	"unsafe"

	jsoniter "github.com/json-iterator/go"
	"github.com/modern-go/reflect2"
)

// api is the request/response codec: the standard-library compatible
// settings, plus NaN and ±Inf floats written as null instead of failing the
// encode. It is a private frozen config so the shared jsoniter configs keep
// their behavior.
var api = newAPI()

func newAPI() jsoniter.API {
	a := jsoniter.Config{
		EscapeHTML:             true,
		SortMapKeys:            true,
		ValidateJsonRawMessage: true,
	}.Froze()
	a.RegisterExtension(&nullFloatExtension{})

	return a
}

// nullFloatExtension swaps the float64 encoder for finiteFloatEncoder.
type nullFloatExtension struct {
	jsoniter.DummyExtension
}

func (*nullFloatExtension) CreateEncoder(typ reflect2.Type) jsoniter.ValEncoder {
	if typ.Kind() == reflect.Float64 {
		return finiteFloatEncoder{}
	}

	return nil
}

type finiteFloatEncoder struct{}

func (finiteFloatEncoder) IsEmpty(ptr unsafe.Pointer) bool {
	return *(*float64)(ptr) == 0
}

func (finiteFloatEncoder) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	v := *(*float64)(ptr)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		stream.WriteNil()
		return
	}
	stream.WriteFloat64(v)
}
