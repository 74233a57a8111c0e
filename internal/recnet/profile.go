package recnet

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// decodeProfile reads the known keys of a profile API object one at a time.
// A key whose JSON type is unexpected is coerced where the meaning is clear
// and left absent otherwise, so one odd field never fails the lookup.
func decodeProfile(fields map[string]json.RawMessage) ProfileData {
	var p ProfileData
	if raw, ok := fields["level"]; ok {
		p.Level = decodeLevel(raw)
	}
	if raw, ok := fields["platform"]; ok {
		p.Platform = decodeText(raw)
	}
	if raw, ok := fields["isOnline"]; ok {
		p.IsOnline = decodeTruthy(raw)
	}
	if raw, ok := fields["lastOnlineAt"]; ok {
		var s string
		if json.Unmarshal(raw, &s) == nil {
			p.LastOnlineAt = s
		}
	}
	return p
}

// decodeLevel accepts integers, integral floats such as 30.0 and numeric strings
func decodeLevel(raw json.RawMessage) *int {
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		var s string
		if json.Unmarshal(raw, &s) != nil {
			return nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil
		}
		return &n
	}
	if f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return nil
	}
	n := int(f)
	return &n
}

// decodeText returns strings as is and other scalars as their JSON text.
// Objects, arrays and null are treated as absent.
func decodeText(raw json.RawMessage) string {
	var s string
	if json.Unmarshal(raw, &s) == nil {
		return s
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}
	switch raw[0] {
	case '{', '[', 'n':
		return ""
	}
	return string(raw)
}

// decodeTruthy maps any JSON value to a boolean: false, null, 0, "" and
// empty containers are false, everything else is true.
func decodeTruthy(raw json.RawMessage) bool {
	var v interface{}
	if json.Unmarshal(raw, &v) != nil {
		return false
	}
	switch x := v.(type) {
	case bool:
		return x
	case float64:
		return x != 0
	case string:
		return x != ""
	case []interface{}:
		return len(x) > 0
	case map[string]interface{}:
		return len(x) > 0
	default:
		return false
	}
}
