package domain

// DiffRow is one line of a version comparison. AmountA or AmountB is nil
// when the line item is absent from the corresponding snapshot (new or
// excluded). Classification is carried for category rollups.
type DiffRow struct {
	LineItemID     string
	Classification Classification
	AmountA        *float64
	AmountB        *float64
	Delta          float64
	DeltaPercent   float64
	Status         DiffStatus
}

// CategoryDelta is the summed delta of diff rows sharing one
// classification value.
type CategoryDelta struct {
	Category string
	Delta    float64
	RowCount int
}
