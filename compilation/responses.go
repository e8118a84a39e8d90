package compilation

import (
	"bytes"
	"encoding/json"
	"sort"
	"strconv"

	"github.com/goccy/go-yaml"
)

type StatusCode = string

type Response struct {
	Description string               `json:"description,omitempty" yaml:"description,omitempty"`
	Content     map[string]MediaType `json:"content,omitempty" yaml:"content,omitempty"`
}

// Responses is the documented response set of one operation. It marshals in
// ascending status-code order ("default" last), so a standard set always
// reads 200, 400, 401, 403, 500 and repeated compilations emit identical
// bytes.
type Responses map[StatusCode]Response

// Codes returns the status codes in emit order.
func (r Responses) Codes() []StatusCode {
	codes := make([]StatusCode, 0, len(r))
	for code := range r {
		codes = append(codes, code)
	}

	rank := func(code StatusCode) int {
		n, err := strconv.Atoi(code)
		if err != nil {
			// non-numeric keys ("default") sort after every status
			return 1000
		}
		return n
	}

	sort.Slice(codes, func(i, j int) bool {
		ri, rj := rank(codes[i]), rank(codes[j])
		if ri != rj {
			return ri < rj
		}
		return codes[i] < codes[j]
	})
	return codes
}

func (r Responses) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, code := range r.Codes() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(code)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(r[code])
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (r Responses) MarshalYAML() (any, error) {
	out := make(yaml.MapSlice, 0, len(r))
	for _, code := range r.Codes() {
		out = append(out, yaml.MapItem{Key: code, Value: r[code]})
	}
	return out, nil
}
