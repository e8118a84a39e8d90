package compilation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Schema expressions are the compact type notation used in authored
// documents:
//
//	string              plain type
//	string(email)       string with a format
//	string(1:64)        string with length bounds
//	integer(0:100)      integer with value bounds
//	string?             nullable
//	<User>              reference to a named schema
//	string[]            array; suffixes stack, so string[][] nests
//	string[10]          array with at most 10 items
//	string[1:10]        array with item bounds
//	string[*]           array with unique items
//
// Bounds may leave either side open ("1:" or ":10"). References cannot be
// marked nullable; wrap them in a property object instead.

var exprRegex = regexp.MustCompile(
	`^(?:(boolean|integer|number|string)(?:\(([^()]*)\))?|<([A-Za-z_]\w*)>)(\?)?((?:\[[^\]]*\]\??)*)$`,
)

var arraySuffixRegex = regexp.MustCompile(`\[([^\]]*)\](\?)?`)

func parseSchemaExpr(expr string) (SchemaOrRef, error) {
	m := exprRegex.FindStringSubmatch(strings.TrimSpace(expr))
	if m == nil {
		return SchemaOrRef{}, fmt.Errorf("invalid schema expression %q", expr)
	}
	prim, arg, ref, opt, arrays := m[1], m[2], m[3], m[4], m[5]

	var current SchemaOrRef
	if ref != "" {
		if opt != "" {
			return SchemaOrRef{}, fmt.Errorf(
				"invalid schema expression %q: references cannot be nullable", expr)
		}
		current = NewSchemaRef("#/components/schemas/" + ref)
	} else {
		schema, err := primitiveSchema(SchemaType(prim), arg)
		if err != nil {
			return SchemaOrRef{}, fmt.Errorf("invalid schema expression %q: %w", expr, err)
		}
		schema.nullable = opt != ""
		current = NewSchemaDef(schema)
	}

	for _, suffix := range arraySuffixRegex.FindAllStringSubmatch(arrays, -1) {
		items := current
		schema := Schema{
			Type:  SchemaArray,
			Items: &items,
		}
		if err := applyArrayOptions(&schema, suffix[1]); err != nil {
			return SchemaOrRef{}, fmt.Errorf("invalid schema expression %q: %w", expr, err)
		}
		schema.nullable = suffix[2] != ""
		current = NewSchemaDef(schema)
	}

	return current, nil
}

func primitiveSchema(t SchemaType, arg string) (Schema, error) {
	schema := Schema{Type: t}
	if arg == "" {
		return schema, nil
	}

	switch t {
	case SchemaString:
		if strings.Contains(arg, ":") {
			min, max, err := parseUintBounds(arg)
			if err != nil {
				return Schema{}, err
			}
			schema.MinLength = min
			schema.MaxLength = max
		} else {
			schema.Format = arg
		}
	case SchemaInteger, SchemaNumber:
		min, max, err := parseNumberBounds(arg)
		if err != nil {
			return Schema{}, err
		}
		schema.Minimum = min
		schema.Maximum = max
	default:
		return Schema{}, fmt.Errorf("type %v takes no argument", t)
	}

	return schema, nil
}

func applyArrayOptions(schema *Schema, opts string) error {
	for opt := range strings.SplitSeq(opts, ",") {
		opt = strings.TrimSpace(opt)
		switch {
		case opt == "":
		case opt == "*":
			schema.UniqueItems = true
		case strings.Contains(opt, ":"):
			min, max, err := parseUintBounds(opt)
			if err != nil {
				return err
			}
			schema.MinItems = min
			schema.MaxItems = max
		default:
			max, err := strconv.ParseUint(opt, 10, 32)
			if err != nil {
				return fmt.Errorf("invalid array option %q", opt)
			}
			m := uint(max)
			schema.MaxItems = &m
		}
	}
	return nil
}

// parseUintBounds parses "min:max" with either side optional.
func parseUintBounds(expr string) (*uint, *uint, error) {
	lo, hi, found := strings.Cut(expr, ":")
	if !found {
		return nil, nil, fmt.Errorf("invalid bounds %q", expr)
	}

	parse := func(s string) (*uint, error) {
		if s == "" {
			return nil, nil
		}
		v, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid bounds %q: %w", expr, err)
		}
		u := uint(v)
		return &u, nil
	}

	min, err := parse(lo)
	if err != nil {
		return nil, nil, err
	}
	max, err := parse(hi)
	if err != nil {
		return nil, nil, err
	}
	return min, max, nil
}

func parseNumberBounds(expr string) (*float64, *float64, error) {
	lo, hi, found := strings.Cut(expr, ":")
	if !found {
		return nil, nil, fmt.Errorf("invalid bounds %q", expr)
	}

	parse := func(s string) (*float64, error) {
		if s == "" {
			return nil, nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid bounds %q: %w", expr, err)
		}
		return &v, nil
	}

	min, err := parse(lo)
	if err != nil {
		return nil, nil, err
	}
	max, err := parse(hi)
	if err != nil {
		return nil, nil, err
	}
	return min, max, nil
}
