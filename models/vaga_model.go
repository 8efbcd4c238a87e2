package models

// Vaga represents a parking spot inside a lot (patio).
type Vaga struct {
	IdVaga   uint   `gorm:"primaryKey;autoIncrement;column:ID_VAGA" json:"idVaga"`
	AreaVaga string `gorm:"column:AREA_VAGA;size:100;not null" json:"areaVaga" validate:"required"`
	StVaga   string `gorm:"column:ST_VAGA;size:100;not null" json:"stVaga" validate:"required"`
	IdPatio  uint   `gorm:"column:ID_PATIO;not null" json:"idPatio" validate:"required"`
}

// TableName specifies the static table name for GORM.
func (Vaga) TableName() string {
	return "TB_NEXTPARK_VAGA"
}
