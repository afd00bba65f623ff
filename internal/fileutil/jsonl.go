package fileutil

import (
	"bytes"
	"encoding/json"
	"io"
)

func EncodeJSONL[T any](records []T) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	for _, record := range records {
		if err := encoder.Encode(record); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

func WriteJSONL[T any](w io.Writer, records []T) error {
	data, err := EncodeJSONL(records)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
