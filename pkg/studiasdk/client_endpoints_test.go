package studiasdk

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/studia-cl/studia-mobile/pkg/credstore"
)

func TestLoginPersistsAndAuthenticates(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login/", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)

		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "ana@duocuc.cl", body.Email)

		w.Write([]byte(`{
			"success": true,
			"message": "Inicio de sesión exitoso",
			"user": {"id_usuario": 42, "nombre_usuario": "Ana Rojas", "email": "ana@duocuc.cl", "cargo": "Estudiante"},
			"tokens": {"access": "acc-1", "refresh": "ref-1"}
		}`))
	})
	mux.HandleFunc("/auth/perfil/", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer acc-1", r.Header.Get("Authorization"))
		w.Write([]byte(`{"success": true, "data": {"id_usuario": 42, "nombre_usuario": "Ana Rojas"}}`))
	})

	client, store := newTestClient(t, mux)

	data, err := client.Login(ctx, "ana@duocuc.cl", "secreta")
	require.NoError(t, err)
	require.Equal(t, 42, data.User.ID)
	require.Equal(t, "acc-1", data.Tokens.Access)

	access, err := store.Get(ctx, credstore.KeyAccessToken)
	require.NoError(t, err)
	require.Equal(t, "acc-1", access)

	refresh, err := store.Get(ctx, credstore.KeyRefreshToken)
	require.NoError(t, err)
	require.Equal(t, "ref-1", refresh)

	cached, err := client.StoredUser(ctx)
	require.NoError(t, err)
	require.Equal(t, "Ana Rojas", cached.Name)

	require.True(t, client.IsAuthenticated(ctx))

	// The stored token rides on the next authenticated call.
	profile, err := client.Profile(ctx)
	require.NoError(t, err)
	require.Equal(t, 42, profile.ID)
}

func TestLoginRejection(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"errors":{"non_field_errors":["Credenciales inválidas"]}}`))
	}))

	_, err := client.Login(ctx, "ana@duocuc.cl", "incorrecta")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "Credenciales inválidas", apiErr.Error())

	require.False(t, client.IsAuthenticated(ctx))
	require.Zero(t, store.Len(), "nothing may be persisted after a failed login")
}

func TestLoginWithoutTokensFails(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": true, "user": {"id_usuario": 42}}`))
	}))

	_, err := client.Login(ctx, "ana@duocuc.cl", "secreta")
	require.Error(t, err)
	require.Zero(t, store.Len())
}

func TestLogoutClearsCredentials(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	client, store := newTestClient(t, http.NewServeMux())
	seedSession(t, store, "acc-1", "ref-1")

	require.NoError(t, client.Logout(ctx))
	require.False(t, client.IsAuthenticated(ctx))
	requireCleared(t, store)
}

func TestSubjectsPagination(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	pages := map[string]string{
		"1": `{"count": 3, "next": "http://api/asignaturas/?page=2", "previous": null, "results": [
			{"id_asignatura": 1, "nombre": "Cálculo I", "codigo": "MAT1001"},
			{"id_asignatura": 2, "nombre": "Programación", "codigo": "INF1101"}
		]}`,
		"2": `{"count": 3, "next": null, "previous": "http://api/asignaturas/?page=1", "results": [
			{"id_asignatura": 3, "nombre": "Física", "codigo": "FIS1201"}
		]}`,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/asignaturas/", func(w http.ResponseWriter, r *http.Request) {
		body, ok := pages[r.URL.Query().Get("page")]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"detail":"Página inválida"}`))
			return
		}
		w.Write([]byte(body))
	})

	client, _ := newTestClient(t, mux)

	var all []Subject
	for page := 1; ; page++ {
		p, err := client.Subjects(ctx, page)
		require.NoError(t, err)
		all = append(all, p.Results...)
		if !p.HasNext() {
			break
		}
	}

	require.Len(t, all, 3)

	seen := map[int]bool{}
	for _, s := range all {
		require.False(t, seen[s.ID], "duplicate subject %d", s.ID)
		seen[s.ID] = true
	}
	require.Equal(t, []int{1, 2, 3}, []int{all[0].ID, all[1].ID, all[2].ID}, "page order preserved")
}

func TestSubjectsClampPageToFirst(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var gotPage string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPage = r.URL.Query().Get("page")
		w.Write([]byte(`{"count": 0, "results": []}`))
	}))

	_, err := client.Subjects(ctx, 0)
	require.NoError(t, err)
	require.Equal(t, "1", gotPage)
}

func TestTutoringSessionsSubjectFilter(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var gotQuery map[string][]string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"count": 1, "results": [
			{"id_ayudantia": 9, "titulo": "Repaso prueba 1", "cupos_disponibles": 5, "puede_inscribirse": true}
		]}`))
	}))

	p, err := client.TutoringSessions(ctx, 2, 1)
	require.NoError(t, err)
	require.Equal(t, []string{"2"}, gotQuery["asignatura_id"])
	require.Len(t, p.Results, 1)
	require.Equal(t, "Repaso prueba 1", p.Results[0].Title)

	// Without a subject the filter stays off the wire.
	_, err = client.TutoringSessions(ctx, 0, 1)
	require.NoError(t, err)
	_, ok := gotQuery["asignatura_id"]
	require.False(t, ok)
}

func TestEnroll(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("/ayudantias/9/inscribirse/", func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"success": true, "message": "Inscripción exitosa", "data": {
				"id_inscripcion": 77, "estado": "activa",
				"ayudantia": {"id_ayudantia": 9, "titulo": "Repaso prueba 1"}
			}}`))
		})

		client, _ := newTestClient(t, mux)

		enr, err := client.Enroll(ctx, 9)
		require.NoError(t, err)
		require.Equal(t, 77, enr.ID)
		require.Equal(t, "activa", enr.Status)
		require.Equal(t, 9, enr.Session.ID)
	})

	t.Run("no seats left", func(t *testing.T) {
		t.Parallel()

		client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"success": false, "message": "No hay cupos disponibles"}`))
		}))
		seedSession(t, store, "acc-1", "ref-1")

		_, err := client.Enroll(ctx, 9)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, "No hay cupos disponibles", apiErr.Error())

		// A rejected enrollment must not disturb the stored session.
		access, err := store.Get(ctx, credstore.KeyAccessToken)
		require.NoError(t, err)
		require.Equal(t, "acc-1", access)
	})
}

func TestCancelEnrollment(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		var hitPath string
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hitPath = r.URL.Path
			w.Write([]byte(`{"success": true, "message": "Inscripción cancelada"}`))
		}))

		require.NoError(t, client.CancelEnrollment(ctx, 77))
		require.Equal(t, "/inscripciones/77/cancelar/", hitPath)
	})

	t.Run("already cancelled", func(t *testing.T) {
		t.Parallel()

		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"success": false, "message": "La inscripción ya fue cancelada"}`))
		}))

		err := client.CancelEnrollment(ctx, 77)
		require.EqualError(t, err, "La inscripción ya fue cancelada")
	})
}

func TestEnrollments(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"count": 1, "results": [{
			"id_inscripcion": 77, "estado": "activa", "asistio": null,
			"ayudantia": {"id_ayudantia": 9, "titulo": "Repaso prueba 1", "fecha_str": "Lunes 2 de Marzo"}
		}]}`))
	}))

	p, err := client.Enrollments(ctx, 1)
	require.NoError(t, err)
	require.Len(t, p.Results, 1)
	require.Nil(t, p.Results[0].Attended)
	require.Equal(t, "Lunes 2 de Marzo", p.Results[0].Session.Date)
}

func TestCampuses(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/sedes/", r.URL.Path)
		w.Write([]byte(`{"count": 2, "results": [
			{"id_sede": 1, "nombre": "Sede San Joaquín", "latitud": -33.4997, "longitud": -70.6163},
			{"id_sede": 2, "nombre": "Sede Maipú"}
		]}`))
	}))

	p, err := client.Campuses(ctx)
	require.NoError(t, err)
	require.Len(t, p.Results, 2)
	require.InDelta(t, -33.4997, p.Results[0].Latitude, 1e-6)
}

func TestSubjectByID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/asignaturas/2/", r.URL.Path)
		fmt.Fprint(w, `{"id_asignatura": 2, "nombre": "Programación", "codigo": "INF1101", "total_ayudantias_disponibles": 4}`)
	}))

	s, err := client.Subject(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, "INF1101", s.Code)
	require.Equal(t, 4, s.AvailableSessions)
}
