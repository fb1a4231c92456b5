// core/gtf/attrs.go
package gtf

import "strings"

// Attr is a single col9 key/value pair.
type Attr struct {
	Key   string
	Value string
}

// Attributes holds GTF column-9 attributes in file order. Order is
// preserved so that output stays deterministic and diffable.
type Attributes []Attr

// Get returns the value for key and whether it was present.
func (a Attributes) Get(key string) (string, bool) {
	for _, kv := range a {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return "", false
}

// Value returns the value for key, or "" when absent.
func (a Attributes) Value(key string) string {
	v, _ := a.Get(key)
	return v
}

// Set replaces the value for key, appending the pair when absent.
func (a *Attributes) Set(key, value string) {
	for i, kv := range *a {
		if kv.Key == key {
			(*a)[i].Value = value
			return
		}
	}
	*a = append(*a, Attr{Key: key, Value: value})
}

// Filter returns a copy reduced to the given keys, in the keys' order.
func (a Attributes) Filter(keys ...string) Attributes {
	var out Attributes
	for _, key := range keys {
		if v, ok := a.Get(key); ok {
			out = append(out, Attr{Key: key, Value: v})
		}
	}
	return out
}

// Clone returns an independent copy.
func (a Attributes) Clone() Attributes {
	if a == nil {
		return nil
	}
	out := make(Attributes, len(a))
	copy(out, a)
	return out
}

// String renders attributes in GTF form: `key "value"; key2 "value2";`.
// Empty attributes render as "." so a row always has nine columns.
func (a Attributes) String() string {
	if len(a) == 0 {
		return "."
	}
	var sb strings.Builder
	for i, kv := range a {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(kv.Key)
		sb.WriteString(` "`)
		sb.WriteString(kv.Value)
		sb.WriteString(`";`)
	}
	return sb.String()
}

// ParseAttributes parses a col9 string. "." and "" mean no attributes.
// Tolerates missing quotes and flag-style entries without a value.
func ParseAttributes(s string) Attributes {
	s = strings.TrimSpace(s)
	if s == "" || s == "." {
		return nil
	}
	var out Attributes
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key := part
		value := ""
		if i := strings.IndexAny(part, " \t"); i >= 0 {
			key = part[:i]
			value = strings.TrimSpace(part[i+1:])
		}
		key = strings.TrimSuffix(key, ":")
		value = strings.Trim(value, `"`)
		out = append(out, Attr{Key: key, Value: value})
	}
	return out
}
