package models

// Login holds the stored credential for a user. DsSenha carries the salted
// password hash in base64(salt).base64(key) form, never the plain password.
type Login struct {
	IdLogin   uint   `gorm:"primaryKey;autoIncrement;column:ID_LOGIN" json:"idLogin"`
	IdUsuario uint   `gorm:"column:ID_USUARIO;not null" json:"idUsuario"` // Foreign key to Usuario
	NrEmail   string `gorm:"column:NR_EMAIL;size:100;not null;uniqueIndex" json:"nrEmail"`
	DsSenha   string `gorm:"column:DS_SENHA;size:255;not null" json:"-"`

	Usuario *Usuario `gorm:"foreignKey:IdUsuario;references:IdUsuario;constraint:OnDelete:CASCADE" json:"-" swaggerignore:"true"`
}

// TableName specifies the static table name for GORM.
func (Login) TableName() string {
	return "TB_NEXTPARK_LOGIN"
}
