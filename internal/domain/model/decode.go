package model

import "encoding/json"

// UnmarshalJSON decodes any syntactically valid JSON into an Event. Fields
// with an unexpected shape (a string user block, a non-boolean raise-hand
// flag, a non-object payload) are left at their zero value instead of
// failing the decode. Duplicate keys resolve to the last occurrence.
func (e *Event) UnmarshalJSON(b []byte) error {
	*e = Event{}
	data, ok := objectField(b, "data")
	if !ok {
		return nil
	}
	if raw, ok := objectField(data, "id"); ok {
		e.Data.ID = stringValue(raw)
	}
	attrs, ok := objectField(data, "attributes")
	if !ok {
		return nil
	}
	user, ok := objectField(attrs, "user")
	if !ok || !isObject(user) {
		return nil
	}
	e.Data.Attributes.User = &User{}
	if raw, ok := objectField(user, "raise-hand"); ok {
		var flag bool
		if json.Unmarshal(raw, &flag) == nil {
			e.Data.Attributes.User.RaiseHand = &flag
		}
	}
	return nil
}

// UnmarshalJSON decodes any syntactically valid JSON into a Statement,
// keeping only the fields whose shape matches.
func (s *Statement) UnmarshalJSON(b []byte) error {
	*s = Statement{}
	if raw, ok := objectField(b, "id"); ok {
		s.ID = stringValue(raw)
	}
	verb, ok := objectField(b, "verb")
	if !ok {
		return nil
	}
	if raw, ok := objectField(verb, "id"); ok {
		s.Verb.ID = stringValue(raw)
	}
	if raw, ok := objectField(verb, "display"); ok {
		var display map[string]string
		if json.Unmarshal(raw, &display) == nil {
			s.Verb.Display = display
		}
	}
	return nil
}

// objectField returns the raw value of key when raw is a JSON object holding it.
func objectField(raw []byte, key string) (json.RawMessage, bool) {
	var obj map[string]json.RawMessage
	if json.Unmarshal(raw, &obj) != nil || obj == nil {
		return nil, false
	}
	v, ok := obj[key]
	return v, ok
}

func isObject(raw []byte) bool {
	var obj map[string]json.RawMessage
	return json.Unmarshal(raw, &obj) == nil && obj != nil
}

func stringValue(raw []byte) string {
	var s string
	if json.Unmarshal(raw, &s) != nil {
		return ""
	}
	return s
}
