package models

// Moto represents a motorcycle parked in the facility.
// The surrogate key is assigned by the key generation subsystem on Oracle
// and by the engine's identity column on SQL Server; callers never set it.
type Moto struct {
	IdMoto   uint   `gorm:"primaryKey;autoIncrement;column:ID_MOTO" json:"idMoto"`
	NrPlaca  string `gorm:"column:NR_PLACA;size:50;not null" json:"nrPlaca" validate:"required,max=50"`
	NmModelo string `gorm:"column:NM_MODELO;size:50;not null" json:"nmModelo" validate:"required,max=50"`
	StMoto   string `gorm:"column:ST_MOTO;size:1;not null" json:"stMoto" validate:"required,len=1"`
	IdVaga   uint   `gorm:"column:ID_VAGA;not null" json:"idVaga" validate:"required"` // Foreign key to Vaga
}

// TableName specifies the static table name for GORM.
// Required to override GORM's default pluralization behavior.
func (Moto) TableName() string {
	return "TB_NEXTPARK_MOTO"
}
