package query

import "saleslens/internal/domain/entity"

// Direction is a sort direction.
type Direction int

const (
	Ascending  Direction = 1
	Descending Direction = -1
)

// Sort is a single-field ordering. Adapters append the record ID as a tiebreak
// so paging is stable.
type Sort struct {
	Field     Field
	Direction Direction
}

var sortKeys = map[entity.SortKey]Sort{
	entity.SortDateNewest:   {Field: FieldDate, Direction: Descending},
	entity.SortDateOldest:   {Field: FieldDate, Direction: Ascending},
	entity.SortQuantityDesc: {Field: FieldQuantity, Direction: Descending},
	entity.SortQuantityAsc:  {Field: FieldQuantity, Direction: Ascending},
	entity.SortNameAsc:      {Field: FieldCustomerName, Direction: Ascending},
	entity.SortNameDesc:     {Field: FieldCustomerName, Direction: Descending},
}

// BuildSort maps a sort key to its ordering. Unknown keys sort newest first.
func BuildSort(key entity.SortKey) Sort {
	if s, ok := sortKeys[key]; ok {
		return s
	}

	return sortKeys[entity.SortDateNewest]
}
