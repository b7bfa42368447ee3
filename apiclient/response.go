package apiclient

import (
	"bytes"
	"encoding/json"
	"sort"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Response is what a probe observed. Body is always set: it is the parsed JSON body, or an
// object with a "raw_response" property if the body was not JSON, or an object with an "error"
// property if the request could not be made at all (in which case StatusCode is 0).
type Response struct {
	Method     string
	Path       string
	StatusCode int
	Body       ldvalue.Value

	raw []byte
}

func newResponse(method, path string, statusCode int, data []byte) Response {
	return Response{
		Method:     method,
		Path:       path,
		StatusCode: statusCode,
		Body:       parseBody(data),
		raw:        data,
	}
}

func parseBody(data []byte) ldvalue.Value {
	var v ldvalue.Value
	if err := json.Unmarshal(data, &v); err != nil {
		return rawResponseBody(string(data))
	}
	return v
}

func rawResponseBody(text string) ldvalue.Value {
	return ldvalue.ObjectBuild().Set("raw_response", ldvalue.String(text)).Build()
}

func errorBody(err error) ldvalue.Value {
	return ldvalue.ObjectBuild().Set("error", ldvalue.String(err.Error())).Build()
}

// Detail returns the service's explanation of a failure: its "detail" property, or the transport
// error if there was no response. It returns "" if neither is present.
func (r Response) Detail() string {
	detail := r.Body.GetByKey("detail")
	switch {
	case detail.IsString():
		return detail.StringValue()
	case !detail.IsNull():
		// validation errors arrive as structured detail
		return detail.JSONString()
	}
	return r.Body.GetByKey("error").StringValue()
}

// DetailOrDefault is like Detail, but returns defaultMessage instead of "".
func (r Response) DetailOrDefault(defaultMessage string) string {
	if d := r.Detail(); d != "" {
		return d
	}
	return defaultMessage
}

// IsList returns true if the body is a JSON array.
func (r Response) IsList() bool {
	return r.Body.Type() == ldvalue.ArrayType
}

// Count returns the number of elements if the body is a JSON array, or 0 otherwise.
func (r Response) Count() int {
	if !r.IsList() {
		return 0
	}
	return r.Body.Count()
}

// Keys returns the sorted property names if the body is a JSON object, or nil otherwise.
func (r Response) Keys() []string {
	if r.Body.Type() != ldvalue.ObjectType {
		return nil
	}
	keys := r.Body.Keys()
	sort.Strings(keys)
	return keys
}

// ID returns the "id" property of a created record. Numbers are returned exactly as the service
// wrote them. An empty string, zero, false, or any other kind of value means there is no ID.
func (r Response) ID() (string, bool) {
	var record struct {
		ID interface{} `json:"id"`
	}
	dec := json.NewDecoder(bytes.NewReader(r.raw))
	dec.UseNumber()
	if err := dec.Decode(&record); err != nil {
		return "", false
	}
	switch id := record.ID.(type) {
	case string:
		return id, id != ""
	case json.Number:
		if f, err := id.Float64(); err == nil && f == 0 {
			return "", false
		}
		return id.String(), true
	}
	return "", false
}
