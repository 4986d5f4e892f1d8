package services

import (
	"encoding/json"
	"fmt"

	"github.com/trovehq/trove/internal/model"
)

// encodeItem produces the canonical on-disk record for an item.
func encodeItem(it *model.Item) ([]byte, error) {
	b, err := json.Marshal(it)
	if err != nil {
		return nil, fmt.Errorf("encode item %s: %w", it.ID, err)
	}
	return b, nil
}

// decodeItem parses a stored record. Optional keys missing from the record
// decode to their absent state (nil pointers), never to zero values, so a
// record written before a field existed still round-trips.
func decodeItem(b []byte) (*model.Item, error) {
	var it model.Item
	if err := json.Unmarshal(b, &it); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrCorruptRecord, err)
	}
	return &it, nil
}
