package store

// Store is a physical store location. Column and JSON names follow the
// Brazilian postal vocabulary used by the public API.
type Store struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Name      string  `gorm:"column:nome;not null" json:"nome"`
	CEP       string  `gorm:"column:cep;not null" json:"cep"`
	Street    string  `gorm:"column:logradouro" json:"logradouro"`
	District  string  `gorm:"column:bairro" json:"bairro"`
	City      string  `gorm:"column:localidade" json:"localidade"`
	State     string  `gorm:"column:uf" json:"uf"`
	Latitude  float64 `gorm:"column:latitude" json:"latitude"`
	Longitude float64 `gorm:"column:longitude" json:"longitude"`
}

// TableName overrides the default table name.
func (Store) TableName() string {
	return "lojas"
}

// UpdateFields holds the optional fields of a partial store update.
// Nil fields are left untouched.
type UpdateFields struct {
	Name      *string  `json:"nome"`
	CEP       *string  `json:"cep"`
	Street    *string  `json:"logradouro"`
	District  *string  `json:"bairro"`
	City      *string  `json:"localidade"`
	State     *string  `json:"uf"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// NearbyStore is a store row annotated with its great-circle distance
// from a reference point, in kilometers.
type NearbyStore struct {
	Store
	DistanceKm float64 `gorm:"column:distance" json:"distanciaKm"`
}
