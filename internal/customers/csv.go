package customers

import "fmt"

// DecodeRecord maps a dataset CSV row to a create command. Expected column
// order: customer_id, customer_unique_id, customer_zip_code_prefix,
// customer_city, customer_state.
func DecodeRecord(record []string) (CreateCommand, error) {
	if len(record) < 5 {
		return CreateCommand{}, fmt.Errorf("expected 5 columns, got %d", len(record))
	}

	return CreateCommand{
		ID:            record[0],
		UniqueID:      record[1],
		ZipCodePrefix: record[2],
		City:          record[3],
		State:         record[4],
	}, nil
}
