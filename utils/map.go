package utils

import (
	"fmt"

	"github.com/elliotchance/orderedmap/v2"
)

// OrderedMapToString formats the ordered map into a single bracketed string, keeping
// insertion order. Example: "[from=walking to=running]".
func OrderedMapToString(data *orderedmap.OrderedMap[string, any]) string {
	if data == nil {
		return "[]"
	}
	dataString := "["
	count := data.Len()
	for _, key := range data.Keys() {
		v, _ := data.Get(key)
		dataString += fmt.Sprintf("%s=%v", key, v)

		count--
		if count > 0 {
			dataString += " "
		}
	}
	dataString += "]"

	return dataString
}

// KeyValsToMap builds an ordered map from alternating key/value pairs. Non-string keys are
// formatted with %v and a trailing unpaired value is ignored.
func KeyValsToMap(kv ...any) *orderedmap.OrderedMap[string, any] {
	m := orderedmap.NewOrderedMap[string, any]()
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			key = fmt.Sprintf("%v", kv[i])
		}
		m.Set(key, kv[i+1])
	}
	return m
}
