package models

// Usuario represents a registered platform user.
type Usuario struct {
	IdUsuario uint   `gorm:"primaryKey;autoIncrement;column:ID_USUARIO" json:"idUsuario"`
	NrEmail   string `gorm:"column:NR_EMAIL;size:100;not null;uniqueIndex" json:"nrEmail" validate:"required,email,max=100"`
}

// TableName specifies the static table name for GORM.
func (Usuario) TableName() string {
	return "TB_NEXTPARK_USUARIO"
}
