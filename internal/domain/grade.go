package domain

// Grado is a school grade level ("Primero", "Segundo", ...). The admin UI
// keeps Spanish field names on the wire.
type Grado struct {
	ID     int64  `json:"id" db:"id"`
	Nombre string `json:"nombre" db:"nombre"`
	// NumEstudiantes counts distinct students assigned to classes of this
	// grade; a grado with students cannot be deleted.
	NumEstudiantes int `json:"numEstudiantes" db:"num_estudiantes"`
}

type GradoRequest struct {
	Nombre string `json:"nombre" validate:"required"`
}
