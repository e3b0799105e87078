package output

import (
	"encoding/json"

	"taxfile/internal/domain"
)

// JSONFormatter formats results as JSON.
type JSONFormatter struct {
	Pretty bool // If true, format with indentation
}

// Name implements Formatter.
func (jf *JSONFormatter) Name() string { return "json" }

// Format implements Formatter.
func (jf *JSONFormatter) Format(results []domain.ResultRecord) (string, error) {
	var data []byte
	var err error

	if jf.Pretty {
		data, err = json.MarshalIndent(results, "", "  ")
	} else {
		data, err = json.Marshal(results)
	}

	if err != nil {
		return "", err
	}

	return string(data), nil
}
