package studiasdk

// Field names and JSON tags follow the StudIA mobile API wire format.

// User is the authenticated student's profile record.
type User struct {
	ID    int    `json:"id_usuario"`
	Name  string `json:"nombre_usuario"`
	Email string `json:"email"`
	Phone string `json:"telefono"`
	Role  string `json:"cargo"`
}

// TokenPair is the JWT pair issued by the login endpoint.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// LoginData is the successful outcome of a login call.
type LoginData struct {
	User   User
	Tokens TokenPair
}

// Subject is a course offering tutoring sessions.
type Subject struct {
	ID                int    `json:"id_asignatura"`
	Name              string `json:"nombre"`
	Code              string `json:"codigo"`
	Career            string `json:"carrera"`
	Description       string `json:"descripcion"`
	AvailableSessions int    `json:"total_ayudantias_disponibles"`
}

// TutoringSession is a scheduled help session ("ayudantía").
type TutoringSession struct {
	ID              int    `json:"id_ayudantia"`
	Title           string `json:"titulo"`
	Description     string `json:"descripcion"`
	Room            string `json:"sala"`
	Date            string `json:"fecha_str"`
	StartTime       string `json:"horario_str"`
	DurationMinutes int    `json:"duracion"`
	TotalSeats      int    `json:"cupos_totales"`
	SeatsAvailable  int    `json:"cupos_disponibles"`
	SubjectName     string `json:"asignatura_nombre"`
	SubjectCode     string `json:"asignatura_codigo"`
	TutorName       string `json:"tutor_nombre"`
	TutorEmail      string `json:"tutor_email"`
	CanEnroll       bool   `json:"puede_inscribirse"`
	Enrolled        bool   `json:"esta_inscrito"`
}

// Enrollment is a student's registration in a tutoring session.
type Enrollment struct {
	ID          int             `json:"id_inscripcion"`
	Session     TutoringSession `json:"ayudantia"`
	StudentName string          `json:"estudiante_nombre"`
	EnrolledAt  string          `json:"fecha_inscripcion_str"`
	Status      string          `json:"estado"`
	Attended    *bool           `json:"asistio"`
}

// Campus is a university site ("sede").
type Campus struct {
	ID        int     `json:"id_sede"`
	Name      string  `json:"nombre"`
	Address   string  `json:"direccion"`
	Latitude  float64 `json:"latitud"`
	Longitude float64 `json:"longitud"`
}

// Page is one page of a paginated list response. Next carries the URL of
// the following page, or nil on the last one.
type Page[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// HasNext reports whether more pages follow.
func (p *Page[T]) HasNext() bool { return p != nil && p.Next != nil && *p.Next != "" }
