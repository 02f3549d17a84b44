package graphql

import gql "github.com/graphql-go/graphql"

// Argument extraction helpers. Required arguments are enforced by the
// schema, so missing values only occur for optional fields; the opt*
// variants return nil for "not provided" so partial updates can tell an
// omitted field from a zero value.

func stringArg(p gql.ResolveParams, name string) string {
	s, _ := p.Args[name].(string)
	return s
}

func intArg(p gql.ResolveParams, name string) int {
	n, _ := p.Args[name].(int)
	return n
}

func floatArg(p gql.ResolveParams, name string) float64 {
	switch v := p.Args[name].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}

func optString(p gql.ResolveParams, name string) *string {
	v, ok := p.Args[name]
	if !ok || v == nil {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		return nil
	}
	return &s
}

func optInt(p gql.ResolveParams, name string) *int {
	v, ok := p.Args[name]
	if !ok || v == nil {
		return nil
	}
	n, ok := v.(int)
	if !ok {
		return nil
	}
	return &n
}

func optFloat(p gql.ResolveParams, name string) *float64 {
	v, ok := p.Args[name]
	if !ok || v == nil {
		return nil
	}
	switch f := v.(type) {
	case float64:
		return &f
	case int:
		g := float64(f)
		return &g
	}
	return nil
}

func stringListArg(p gql.ResolveParams, name string) []string {
	v, ok := p.Args[name]
	if !ok || v == nil {
		return nil
	}
	raw, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func optStringList(p gql.ResolveParams, name string) *[]string {
	if _, ok := p.Args[name]; !ok {
		return nil
	}
	list := stringListArg(p, name)
	if list == nil {
		list = []string{}
	}
	return &list
}
