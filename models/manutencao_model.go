package models

import "time"

// Manutencao represents a maintenance record for a parked motorcycle.
// IdMoto must reference an existing moto; the row cannot outlive it
// (restrict on delete).
type Manutencao struct {
	IdManutencao uint       `gorm:"primaryKey;autoIncrement;column:ID_MANUTENCAO" json:"idManutencao"`
	DsManutencao *string    `gorm:"column:DS_MANUTENCAO;size:255" json:"dsManutencao"`
	DtInicio     *time.Time `gorm:"column:DT_INICIO" json:"dtInicio"`
	DtFim        *time.Time `gorm:"column:DT_FIM" json:"dtFim"`
	IdMoto       uint       `gorm:"column:ID_MOTO;not null" json:"idMoto" validate:"required"` // Foreign key to Moto

	Moto *Moto `gorm:"foreignKey:IdMoto;references:IdMoto;constraint:OnDelete:RESTRICT" json:"-" swaggerignore:"true"`
}

// TableName specifies the static table name for GORM.
func (Manutencao) TableName() string {
	return "TB_NEXTPARK_MANUTENCAO"
}
