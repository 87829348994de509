package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"livestock-records/internal/adapters/auth/jwtauth"
	"livestock-records/internal/router"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(router.NewRouter(router.Options{
		AuthVerifier: nil, // modo dev: X-Debug-User-ID
		TokenIssuer:  jwtauth.New("test-secret"),
		MediaDir:     t.TempDir(),
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_EndToEnd_AnimalLifecycle(t *testing.T) {
	ts := newTestServer(t)
	userID := "user-1"

	// 1) Sin identidad no hay acceso
	{
		st, _ := doJSON(t, ts.URL, "GET", "/animals/", "", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 without identity, got %d", st)
		}
	}

	// 2) Alta de ejemplar (multipart, sin foto)
	animalID := createAnimal(t, ts.URL, userID, map[string]string{
		"identificador":    "BOV-001",
		"nombre":           "Lola",
		"raza":             "1",
		"fecha_nacimiento": "2023-03-10",
		"peso_actual":      "540.5",
		"talla_actual":     "1.40",
	})

	// 3) Identificador duplicado => 400
	{
		st, body := doMultipart(t, ts.URL, "POST", "/animals/", userID, map[string]string{
			"identificador":    "BOV-001",
			"raza":             "1",
			"fecha_nacimiento": "2023-03-10",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 duplicate identifier, got %d body=%s", st, string(body))
		}
	}

	// 4) Catálogo de razas sembrado
	{
		st, body := doJSON(t, ts.URL, "GET", "/breeds/", userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list breeds, got %d", st)
		}
		var breeds []struct {
			ID     int    `json:"id"`
			Nombre string `json:"nombre"`
		}
		mustUnmarshal(t, body, &breeds)
		if len(breeds) < 2 {
			t.Fatalf("expected seeded breed catalog, got %v", breeds)
		}
	}

	// 5) Plantilla de calificación de la raza 1
	var tpl struct {
		Categories []struct {
			ID          int `json:"id"`
			Ponderacion int `json:"ponderacion"`
		} `json:"categories"`
		Characteristics []struct {
			ID           int     `json:"id"`
			PuntajeIdeal float64 `json:"puntaje_ideal"`
		} `json:"characteristics"`
	}
	{
		st, body := doJSON(t, ts.URL, "GET", "/score-templates/breed/1/", userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 template, got %d body=%s", st, string(body))
		}
		mustUnmarshal(t, body, &tpl)

		sum := 0
		for _, c := range tpl.Categories {
			sum += c.Ponderacion
		}
		if sum != 100 {
			t.Fatalf("category weights sum %d, want 100", sum)
		}
		if len(tpl.Characteristics) == 0 {
			t.Fatal("template has no characteristics")
		}
	}

	// 6) Calificar con todos los puntajes ideales => score_total 100
	{
		scores := make([]map[string]any, 0, len(tpl.Characteristics))
		for _, ch := range tpl.Characteristics {
			scores = append(scores, map[string]any{
				"caracteristica":      ch.ID,
				"puntuacion_obtenida": ch.PuntajeIdeal,
			})
		}
		st, body := doJSON(t, ts.URL, "POST", "/animals/"+animalID+"/scores/", userID, map[string]any{
			"scores": scores,
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 submit scores, got %d body=%s", st, string(body))
		}
		var resp struct {
			ScoreTotal float64 `json:"score_total"`
		}
		mustUnmarshal(t, body, &resp)
		if resp.ScoreTotal != 100 {
			t.Fatalf("score_total = %v, want 100 for all-ideal", resp.ScoreTotal)
		}
	}

	// 7) El ejemplar refleja el score y la fecha
	{
		st, body := doJSON(t, ts.URL, "GET", "/animals/"+animalID+"/", userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get animal, got %d", st)
		}
		var a struct {
			ScoreTotal    *float64 `json:"score_total"`
			LastScoreDate *string  `json:"last_score_date"`
		}
		mustUnmarshal(t, body, &a)
		if a.ScoreTotal == nil || *a.ScoreTotal != 100 {
			t.Fatalf("score_total = %v, want 100", a.ScoreTotal)
		}
		if a.LastScoreDate == nil {
			t.Fatal("last_score_date not set after scoring")
		}
	}

	// 8) Tablero con el promedio por raza
	{
		st, body := doJSON(t, ts.URL, "GET", "/dashboard/scores/", userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 dashboard, got %d", st)
		}
		var dash struct {
			AverageScoresByBreed []struct {
				BreedName    string  `json:"breedName"`
				AverageScore float64 `json:"averageScore"`
			} `json:"averageScoresByBreed"`
			RecentScores []struct {
				Identificador string `json:"identificador"`
			} `json:"recentScores"`
		}
		mustUnmarshal(t, body, &dash)
		if len(dash.AverageScoresByBreed) != 1 || dash.AverageScoresByBreed[0].AverageScore != 100 {
			t.Fatalf("averages = %+v, want one breed at 100", dash.AverageScoresByBreed)
		}
		if len(dash.RecentScores) != 1 || dash.RecentScores[0].Identificador != "BOV-001" {
			t.Fatalf("recent = %+v, want BOV-001", dash.RecentScores)
		}
	}

	// 9) Baja del ejemplar
	{
		st, _ := doJSON(t, ts.URL, "DELETE", "/animals/"+animalID+"/", userID, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete, got %d", st)
		}
		st, _ = doJSON(t, ts.URL, "GET", "/animals/"+animalID+"/", userID, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 after delete, got %d", st)
		}
	}
}

func TestHTTP_SensorReadingRaisesAlert(t *testing.T) {
	ts := newTestServer(t)
	userID := "user-1"

	animalID := createAnimal(t, ts.URL, userID, map[string]string{
		"identificador":    "BOV-002",
		"raza":             "2",
		"fecha_nacimiento": "2022-08-01",
	})

	// Lectura con fiebre
	{
		st, body := doJSON(t, ts.URL, "POST", "/animals/"+animalID+"/sensor-data/", userID, map[string]any{
			"temperatura": 40.2,
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 reading, got %d body=%s", st, string(body))
		}
	}

	// La alerta FIEBRE quedó generada
	var alertID string
	{
		st, body := doJSON(t, ts.URL, "GET", "/animals/"+animalID+"/alerts/", userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 alerts, got %d", st)
		}
		var alerts []struct {
			ID     string `json:"id"`
			Type   string `json:"alert_type"`
			IsRead bool   `json:"is_read"`
		}
		mustUnmarshal(t, body, &alerts)
		if len(alerts) != 1 || alerts[0].Type != "FIEBRE" || alerts[0].IsRead {
			t.Fatalf("alerts = %+v, want one unread FIEBRE", alerts)
		}
		alertID = alerts[0].ID
	}

	// Marcar leída
	{
		st, _ := doJSON(t, ts.URL, "POST", "/alerts/"+alertID+"/read/", userID, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 mark read, got %d", st)
		}
		st, body := doJSON(t, ts.URL, "GET", "/animals/"+animalID+"/alerts/", userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 alerts, got %d", st)
		}
		var alerts []struct {
			IsRead bool `json:"is_read"`
		}
		mustUnmarshal(t, body, &alerts)
		if len(alerts) != 1 || !alerts[0].IsRead {
			t.Fatalf("alerts = %+v, want read", alerts)
		}
	}

	// La lectura aparece en la ventana de 24h
	{
		st, body := doJSON(t, ts.URL, "GET", "/animals/"+animalID+"/sensor-data/", userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 sensor data, got %d", st)
		}
		var readings []struct {
			Temperatura *float64 `json:"temperatura"`
		}
		mustUnmarshal(t, body, &readings)
		if len(readings) != 1 || readings[0].Temperatura == nil || *readings[0].Temperatura != 40.2 {
			t.Fatalf("readings = %+v, want the recorded one", readings)
		}
	}
}

func TestHTTP_RegisterAndToken(t *testing.T) {
	ts := newTestServer(t)

	// Registro
	{
		st, body := doJSON(t, ts.URL, "POST", "/register/", "", map[string]any{
			"username": "ganadero1",
			"email":    "g1@example.com",
			"password": "secretpassword",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 register, got %d body=%s", st, string(body))
		}
	}

	// Token con credenciales correctas
	{
		st, body := doJSON(t, ts.URL, "POST", "/token/", "", map[string]any{
			"username": "ganadero1",
			"password": "secretpassword",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 token, got %d body=%s", st, string(body))
		}
		var resp struct {
			Access string `json:"access"`
		}
		mustUnmarshal(t, body, &resp)
		if resp.Access == "" {
			t.Fatal("token response missing access")
		}
	}

	// Credenciales malas => 401 con detail
	{
		st, body := doJSON(t, ts.URL, "POST", "/token/", "", map[string]any{
			"username": "ganadero1",
			"password": "wrong",
		})
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 bad credentials, got %d body=%s", st, string(body))
		}
	}
}

func TestHTTP_BearerTokenAuth(t *testing.T) {
	authn := jwtauth.New("test-secret")
	ts := httptest.NewServer(router.NewRouter(router.Options{
		AuthVerifier: authn,
		TokenIssuer:  authn,
		MediaDir:     t.TempDir(),
	}))
	defer ts.Close()

	// Registro + token reales
	st, _ := doJSON(t, ts.URL, "POST", "/register/", "", map[string]any{
		"username": "ganadero1",
		"password": "secretpassword",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 register, got %d", st)
	}
	st, body := doJSON(t, ts.URL, "POST", "/token/", "", map[string]any{
		"username": "ganadero1",
		"password": "secretpassword",
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 token, got %d", st)
	}
	var tok struct {
		Access string `json:"access"`
	}
	mustUnmarshal(t, body, &tok)

	// Con bearer válido entra
	req, _ := http.NewRequest("GET", ts.URL+"/animals/", nil)
	req.Header.Set("Authorization", "Bearer "+tok.Access)
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 with bearer, got %d", res.StatusCode)
	}

	// Con token basura no
	req, _ = http.NewRequest("GET", ts.URL+"/animals/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	res, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 with garbage token, got %d", res.StatusCode)
	}
}

// -------------------------
// Helpers
// -------------------------

func createAnimal(t *testing.T, baseURL, userID string, fields map[string]string) string {
	t.Helper()

	st, body := doMultipart(t, baseURL, "POST", "/animals/", userID, fields)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create animal, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	mustUnmarshal(t, body, &resp)
	if resp.ID == "" {
		t.Fatalf("create animal: missing id body=%s", string(body))
	}
	return resp.ID
}

func doJSON(t *testing.T, baseURL, method, path, debugUserID string, payload any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if debugUserID != "" {
		req.Header.Set("X-Debug-User-ID", debugUserID)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}

func doMultipart(t *testing.T, baseURL, method, path, debugUserID string, fields map[string]string) (int, []byte) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		_ = mw.WriteField(k, v)
	}
	_ = mw.Close()

	req, err := http.NewRequest(method, baseURL+path, &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if debugUserID != "" {
		req.Header.Set("X-Debug-User-ID", debugUserID)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}

func mustUnmarshal(t *testing.T, body []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(body, v); err != nil {
		t.Fatalf("unmarshal %q: %v", string(body), err)
	}
}
