package sellers

import "fmt"

// DecodeRecord maps a dataset CSV row to a create command. Expected column
// order: seller_id, seller_zip_code_prefix, seller_city, seller_state.
func DecodeRecord(record []string) (CreateCommand, error) {
	if len(record) < 4 {
		return CreateCommand{}, fmt.Errorf("expected 4 columns, got %d", len(record))
	}

	return CreateCommand{
		ID:            record[0],
		ZipCodePrefix: record[1],
		City:          record[2],
		State:         record[3],
	}, nil
}
