package models

import (
	"fmt"
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"
)

// decodeSnapshot converts a raw field map into a typed partial snapshot.
// Legacy documents carry missing fields, explicit nulls, and occasionally a
// scalar where a list is expected; all of those decode to zero values instead
// of failing, so the tolerance for messy historical data lives here and
// nowhere else.
func decodeSnapshot(data map[string]interface{}, out interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeHookFunc(time.RFC3339),
			epochToTimeHook(),
			emptySliceOnMismatchHook(),
		),
		Result: out,
	})
	if err != nil {
		return fmt.Errorf("snapshot decoder: %w", err)
	}
	if err := dec.Decode(pruneNils(data)); err != nil {
		return fmt.Errorf("snapshot decode: %w", err)
	}
	return nil
}

// pruneNils drops explicit nulls so they read as absent fields.
func pruneNils(data map[string]interface{}) map[string]interface{} {
	clean := make(map[string]interface{}, len(data))
	for k, v := range data {
		if v == nil {
			continue
		}
		if nested, ok := v.(map[string]interface{}); ok {
			clean[k] = pruneNils(nested)
			continue
		}
		clean[k] = v
	}
	return clean
}

// emptySliceOnMismatchHook maps a non-list value written where a list field is
// expected to an empty list.
func emptySliceOnMismatchHook() mapstructure.DecodeHookFuncValue {
	return func(from reflect.Value, to reflect.Value) (interface{}, error) {
		if to.Kind() != reflect.Slice {
			return from.Interface(), nil
		}
		k := from.Kind()
		if k == reflect.Interface {
			k = reflect.ValueOf(from.Interface()).Kind()
		}
		if k == reflect.Slice || k == reflect.Array {
			return from.Interface(), nil
		}
		return reflect.MakeSlice(to.Type(), 0, 0).Interface(), nil
	}
}

// epochToTimeHook accepts numeric epoch timestamps (seconds or milliseconds)
// for time.Time fields, as written by older client versions.
func epochToTimeHook() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if to != reflect.TypeOf(time.Time{}) {
			return data, nil
		}
		var epoch int64
		switch v := data.(type) {
		case float64:
			epoch = int64(v)
		case int64:
			epoch = v
		case int:
			epoch = int64(v)
		default:
			return data, nil
		}
		// Millisecond epochs are unambiguous above this bound.
		if epoch > 1e12 {
			return time.UnixMilli(epoch).UTC(), nil
		}
		return time.Unix(epoch, 0).UTC(), nil
	}
}
