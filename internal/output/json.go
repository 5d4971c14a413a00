package output

import (
	"encoding/json"

	"github.com/portkit/whoport/pkg/model"
)

func ToJSON(records []model.Record) (string, error) {
	if records == nil {
		records = []model.Record{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
