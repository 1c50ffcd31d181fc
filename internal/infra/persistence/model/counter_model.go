package model

// CounterModel mirrors the 'counters' table: one monotonically increasing
// sequence per name, advanced by an atomic upsert.
type CounterModel struct {
	Name string `gorm:"type:varchar(50);primaryKey"`
	Seq  int64  `gorm:"not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (CounterModel) TableName() string {
	return "counters"
}
