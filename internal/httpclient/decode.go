package httpclient

import (
	"encoding/json"

	"github.com/flexprice/mvola-go/internal/validator"
)

// DecodeJSON unmarshals the body of resp into v and checks the fields v marks as
// required. A null body or an object of the wrong shape is an error.
func DecodeJSON(resp *Response, v any) error {
	if err := json.Unmarshal(resp.Body, v); err != nil {
		return err
	}
	return validator.GetValidator().Struct(v)
}
