// File: tracestat/report.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package tracestat

import (
	"io"

	"github.com/sugawarayuuta/sonnet"
)

// WriteJSON encodes the report as a single JSON document.
func (r *Report) WriteJSON(w io.Writer) error {
	data, err := sonnet.Marshal(r)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// DecodeReport parses a report produced by WriteJSON.
func DecodeReport(data []byte) (*Report, error) {
	r := &Report{}
	if err := sonnet.Unmarshal(data, r); err != nil {
		return nil, err
	}
	return r, nil
}
