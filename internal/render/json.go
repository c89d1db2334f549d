package render

import (
	"encoding/json"
	"io"
)

// WriteJSON renders a report as indented JSON.
func WriteJSON(w io.Writer, rpt Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rpt)
}

// WriteNDJSON renders reports as newline-delimited JSON, one report
// per line.
func WriteNDJSON(w io.Writer, rpts ...Report) error {
	enc := json.NewEncoder(w)
	for _, rpt := range rpts {
		if err := enc.Encode(rpt); err != nil {
			return err
		}
	}
	return nil
}
