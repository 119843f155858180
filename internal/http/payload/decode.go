package payload

import (
	"encoding/json"
	"fmt"
	"net/http"
)

const maxBodyBytes = 1 << 20

type Decoder struct{}

// DecodeJSONPayload decodes the request body into object. Keys object does not
// declare are ignored.
func (Decoder) DecodeJSONPayload(r *http.Request, object any) (err error) {
	body := http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	defer func() {
		errClose := body.Close()
		if err == nil {
			err = errClose
		}
	}()

	if err := json.NewDecoder(body).Decode(object); err != nil {
		return fmt.Errorf("decoding json payload: %w", err)
	}

	return nil
}
