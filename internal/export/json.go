package export

import (
	"encoding/json"
	"fmt"
)

// jsonEncoder serializes the payload verbatim with 2-space indentation.
type jsonEncoder struct{}

func newJSONEncoder() (Encoder, error) {
	return jsonEncoder{}, nil
}

func (jsonEncoder) Encode(payload Payload) ([]byte, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding json: %w", err)
	}
	return data, nil
}

func (jsonEncoder) Extension() string {
	return FormatJSON.Extension()
}

func (jsonEncoder) MIMEType() string {
	return FormatJSON.MIMEType()
}
