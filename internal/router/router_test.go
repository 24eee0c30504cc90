package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"pet-care/internal/adapters/auth/password"
	"pet-care/internal/adapters/auth/session"
	"pet-care/internal/adapters/storage/sqldb"
	"pet-care/internal/platform/apperr"
	"pet-care/internal/ports/auth"
	"pet-care/internal/router"
	"pet-care/internal/seed"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
)

type testEnv struct {
	url string
	db  *sqlx.DB
}

func newTestServer(t *testing.T, sessions auth.SessionResolver) testEnv {
	t.Helper()

	db, err := sqldb.OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "pets_db.sqlite"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	h, err := router.NewRouter(router.Options{
		Sessions: sessions,
		DB:       db,
		Hasher:   password.NewBcryptHasher(bcrypt.MinCost),
		Seed:     true,
	})
	if err != nil {
		t.Fatalf("new router: %v", err)
	}

	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return testEnv{url: ts.URL, db: db}
}

func newTokenResolver(t *testing.T) *session.TokenResolver {
	t.Helper()
	tr, err := session.NewTokenResolver("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("token resolver: %v", err)
	}
	return tr
}

func TestHTTP_SignupLoginDashboard_TokenMode(t *testing.T) {
	env := newTestServer(t, newTokenResolver(t))

	// 1) Signup nuevo usuario
	signup := map[string]any{
		"firstName":      "Jane",
		"lastName":       "Doe",
		"email":          "jane@example.com",
		"signupPassword": "s3cret",
	}
	{
		st, body := doReq(t, env.url, "POST", "/api/signup", "", signup)
		if st != http.StatusCreated {
			t.Fatalf("expected 201 signup, got %d body=%s", st, string(body))
		}
		if msg := decodeMap(t, body)["message"]; msg != "User created successfully" {
			t.Fatalf("unexpected message %v", msg)
		}
	}

	// 2) Email duplicado => 409 y no se crea otra fila
	{
		st, body := doReq(t, env.url, "POST", "/api/signup", "", signup)
		if st != http.StatusConflict {
			t.Fatalf("expected 409 duplicate signup, got %d body=%s", st, string(body))
		}
		if e := decodeMap(t, body)["error"]; e != "Email already exists" {
			t.Fatalf("unexpected error %v", e)
		}
		if n := count(t, env.db, "SELECT COUNT(*) FROM users WHERE email = 'jane@example.com'"); n != 1 {
			t.Fatalf("expected 1 user row, got %d", n)
		}
	}

	// 3) Password guardado como hash
	{
		var stored string
		if err := env.db.Get(&stored, "SELECT password FROM users WHERE email = 'jane@example.com'"); err != nil {
			t.Fatalf("read password: %v", err)
		}
		if stored == "s3cret" || !strings.HasPrefix(stored, "$2") {
			t.Fatalf("password not hashed: %q", stored)
		}
	}

	// 4) Sin token => 401 en rutas de usuario
	for _, path := range []string{"/api/dashboard/stats", "/api/pets/all", "/api/appointments"} {
		st, body := doReq(t, env.url, "GET", path, "", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 on %s without token, got %d body=%s", path, st, string(body))
		}
	}

	// 5) Login incorrecto
	{
		st, body := doReq(t, env.url, "POST", "/api/login", "", map[string]any{"email": "jane@example.com", "password": "nope"})
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 bad login, got %d body=%s", st, string(body))
		}
		if e := decodeMap(t, body)["error"]; e != "Invalid email or password" {
			t.Fatalf("unexpected error %v", e)
		}
	}

	// 6) Login OK => dashboard del usuario nuevo, sin mascotas
	token := login(t, env.url, "jane@example.com", "s3cret")
	{
		st, body := doReq(t, env.url, "GET", "/api/dashboard/stats", token, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 stats, got %d body=%s", st, string(body))
		}
		stats := decodeMap(t, body)
		if stats["user_name"] != "Jane" {
			t.Fatalf("expected user_name Jane, got %v", stats["user_name"])
		}
		if stats["registered_pets"].(float64) != 0 || stats["upcoming_appointments"].(float64) != 0 {
			t.Fatalf("expected empty counters, got %v", stats)
		}
		if stats["available_adoption"].(float64) != 3 || stats["health_records"].(float64) != 24 {
			t.Fatalf("unexpected global counters %v", stats)
		}
	}

	// 7) Campos faltantes en login
	{
		st, _ := doReq(t, env.url, "POST", "/api/login", "", map[string]any{"email": "jane@example.com"})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 login missing password, got %d", st)
		}
	}
}

func TestHTTP_SignupLoginLongPassword(t *testing.T) {
	env := newTestServer(t, newTokenResolver(t))
	pw := strings.Repeat("x", 80)

	st, body := doReq(t, env.url, "POST", "/api/signup", "", map[string]any{
		"firstName": "Jane", "lastName": "Doe", "email": "long@example.com", "signupPassword": pw,
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 signup with 80-byte password, got %d body=%s", st, string(body))
	}

	token := login(t, env.url, "long@example.com", pw)
	if name := userName(t, env.url, token); name != "Jane" {
		t.Fatalf("expected Jane, got %q", name)
	}

	// mismos primeros 72 bytes no alcanzan
	st, body = doReq(t, env.url, "POST", "/api/login", "", map[string]any{
		"email": "long@example.com", "password": strings.Repeat("x", 72) + "yyyyyyyy",
	})
	if st != http.StatusUnauthorized {
		t.Fatalf("expected 401 for different long password, got %d body=%s", st, string(body))
	}
}

func TestHTTP_AddAndListPets(t *testing.T) {
	env := newTestServer(t, newTokenResolver(t))
	token := login(t, env.url, seed.DemoEmail, seed.DemoPassword)

	before := count(t, env.db, "SELECT COUNT(*) FROM pets")

	// falta newPetWeight => 400 sin fila nueva
	{
		st, body := doReq(t, env.url, "POST", "/api/pets/add", token, map[string]any{
			"newPetName": "Rocky", "newPetType": "Dog", "newPetBreed": "Boxer",
			"newPetGender": "Male", "newPetAge": "4 years", "newPetHealthStatus": "good",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 missing field, got %d body=%s", st, string(body))
		}
		if n := count(t, env.db, "SELECT COUNT(*) FROM pets"); n != before {
			t.Fatalf("pet row created on validation error")
		}
	}

	// alta OK (sin alergias => "None")
	var newID float64
	{
		st, body := doReq(t, env.url, "POST", "/api/pets/add", token, map[string]any{
			"newPetName": "Rocky", "newPetType": "Dog", "newPetBreed": "Boxer",
			"newPetGender": "Male", "newPetAge": "4 years", "newPetWeight": "30 kg",
			"newPetHealthStatus": "good",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 add pet, got %d body=%s", st, string(body))
		}
		resp := decodeMap(t, body)
		if resp["message"] != "Pet added successfully" {
			t.Fatalf("unexpected message %v", resp["message"])
		}
		newID = resp["id"].(float64)
	}

	var allergies string
	if err := env.db.Get(&allergies, "SELECT allergies FROM pets WHERE id = ?", int64(newID)); err != nil {
		t.Fatalf("read allergies: %v", err)
	}
	if allergies != "None" {
		t.Fatalf("expected default allergies None, got %q", allergies)
	}

	st, body := doReq(t, env.url, "GET", "/api/pets/all", token, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 list pets, got %d body=%s", st, string(body))
	}
	var list []struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(body, &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}

	seen := 0
	for _, p := range list {
		if p.Name == "Rocky" {
			seen++
		}
	}
	if len(list) != 4 || seen != 1 {
		t.Fatalf("expected seeded pets + Rocky once, got %+v", list)
	}
}

func TestHTTP_ScheduleAppointments(t *testing.T) {
	env := newTestServer(t, newTokenResolver(t))
	token := login(t, env.url, seed.DemoEmail, seed.DemoPassword)

	schedule := func(petInfo any, date string) (int, []byte) {
		payload := map[string]any{
			"doctorName":        "Dr. Sarah Johnson",
			"hospitalName":      "Downtown Vet",
			"appointmentDate":   date,
			"appointmentTime":   "10:30",
			"appointmentReason": "Checkup",
		}
		switch v := petInfo.(type) {
		case string:
			payload["petInfo"] = v
		case int64:
			payload["petId"] = v
		}
		return doReq(t, env.url, "POST", "/api/appointments/schedule", token, payload)
	}

	// 1) por petInfo del selector
	if st, body := schedule("Buddy - Golden Retriever", "2024-05-01"); st != http.StatusCreated {
		t.Fatalf("expected 201 schedule Buddy, got %d body=%s", st, string(body))
	}

	// 2) por petId
	var maxID int64
	if err := env.db.Get(&maxID, "SELECT id FROM pets WHERE name = 'Max'"); err != nil {
		t.Fatalf("lookup Max: %v", err)
	}
	if st, body := schedule(maxID, "2024-06-01"); st != http.StatusCreated {
		t.Fatalf("expected 201 schedule by petId, got %d body=%s", st, string(body))
	}

	// 3) mascota desconocida => 404 sin fila
	{
		st, body := schedule("Ghost - Cat", "2024-07-01")
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 unknown pet, got %d body=%s", st, string(body))
		}
		if e := decodeMap(t, body)["error"]; e != "Selected pet not found in user records" {
			t.Fatalf("unexpected error %v", e)
		}
		if n := count(t, env.db, "SELECT COUNT(*) FROM appointments"); n != 2 {
			t.Fatalf("expected 2 appointments, got %d", n)
		}
	}

	// 3b) nombre vacío antes del " - " => se busca tal cual, 404 (no 400)
	{
		st, body := schedule(" - Golden", "2024-07-02")
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 for empty pet name, got %d body=%s", st, string(body))
		}
		if e := decodeMap(t, body)["error"]; e != "Selected pet not found in user records" {
			t.Fatalf("unexpected error %v", e)
		}
		if n := count(t, env.db, "SELECT COUNT(*) FROM appointments"); n != 2 {
			t.Fatalf("expected 2 appointments, got %d", n)
		}
	}

	// 4) mascota de otro usuario por petId => 404
	{
		signupAndLogin(t, env.url, "other@example.com")
		otherToken := login(t, env.url, "other@example.com", "pw")
		st, body := doReq(t, env.url, "POST", "/api/appointments/schedule", otherToken, map[string]any{
			"petId":             maxID,
			"doctorName":        "Dr. X",
			"hospitalName":      "Y",
			"appointmentDate":   "2024-08-01",
			"appointmentTime":   "09:00",
			"appointmentReason": "Z",
		})
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 foreign pet, got %d body=%s", st, string(body))
		}
	}

	// 5) listado: date DESC
	{
		st, body := doReq(t, env.url, "GET", "/api/appointments", token, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list appointments, got %d body=%s", st, string(body))
		}
		var list []map[string]any
		if err := json.Unmarshal(body, &list); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(list) != 2 || list[0]["date"] != "2024-06-01" || list[1]["date"] != "2024-05-01" {
			t.Fatalf("unexpected order %v", list)
		}
		if list[0]["status"] != "Upcoming" {
			t.Fatalf("expected Upcoming status, got %v", list[0]["status"])
		}
	}

	// 6) dashboard cuenta los Upcoming
	{
		_, body := doReq(t, env.url, "GET", "/api/dashboard/stats", token, nil)
		stats := decodeMap(t, body)
		if stats["upcoming_appointments"].(float64) != 2 || stats["registered_pets"].(float64) != 3 {
			t.Fatalf("unexpected stats %v", stats)
		}
	}
}

func TestHTTP_AdoptionRegister(t *testing.T) {
	env := newTestServer(t, newTokenResolver(t))

	// falta adoptionContact => 400, sin fila
	{
		st, body := doReq(t, env.url, "POST", "/api/adoption/register", "", map[string]any{
			"adoptionPetName": "Rex", "adoptionPetBreed": "Beagle", "adoptionPetGender": "Male",
			"adoptionPetAge": "1 year", "adoptionShelter": "Happy Paws Rescue",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d body=%s", st, string(body))
		}
		if e := decodeMap(t, body)["error"]; e != apperr.MsgMissingFields {
			t.Fatalf("unexpected error %v", e)
		}
		if n := count(t, env.db, "SELECT COUNT(*) FROM adoptions"); n != 3 {
			t.Fatalf("expected 3 adoptions, got %d", n)
		}
	}

	// campo con tipo no string => 400
	{
		st, _ := doReq(t, env.url, "POST", "/api/adoption/register", "", map[string]any{
			"adoptionPetName": 42, "adoptionPetBreed": "Beagle", "adoptionPetGender": "Male",
			"adoptionPetAge": "1 year", "adoptionShelter": "Happy Paws Rescue", "adoptionContact": "555",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for non-string field, got %d", st)
		}
	}

	st, body := doReq(t, env.url, "POST", "/api/adoption/register", "", map[string]any{
		"adoptionPetName": "Rex", "adoptionPetBreed": "Beagle", "adoptionPetGender": "Male",
		"adoptionPetAge": "1 year", "adoptionShelter": "Happy Paws Rescue", "adoptionContact": "+1 (555) 000-0000",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", st, string(body))
	}
	if msg := decodeMap(t, body)["message"]; msg != "Rex registered for adoption successfully!" {
		t.Fatalf("unexpected message %v", msg)
	}
	if n := count(t, env.db, "SELECT COUNT(*) FROM adoptions WHERE status = 'Available'"); n != 4 {
		t.Fatalf("expected 4 available, got %d", n)
	}
}

func TestHTTP_SharedMode_LoginChangesIdentity(t *testing.T) {
	env := newTestServer(t, session.NewSharedResolver(session.DemoUserID))

	// sin login: usuario demo
	if name := userName(t, env.url, ""); name != "John" {
		t.Fatalf("expected demo user John, got %q", name)
	}

	signupAndLogin(t, env.url, "jane@example.com")

	// el login cambió la identidad del proceso (sin token)
	if name := userName(t, env.url, ""); name != "Jane" {
		t.Fatalf("expected Jane after login, got %q", name)
	}

	// login fallido no cambia nada
	st, _ := doReq(t, env.url, "POST", "/api/login", "", map[string]any{"email": seed.DemoEmail, "password": "wrong"})
	if st != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", st)
	}
	if name := userName(t, env.url, ""); name != "Jane" {
		t.Fatalf("expected Jane after failed login, got %q", name)
	}

	// Jane no tiene mascotas
	st, body := doReq(t, env.url, "GET", "/api/pets/all", "", nil)
	if st != http.StatusOK || strings.TrimSpace(string(body)) != "[]" {
		t.Fatalf("expected empty pet list, got %d body=%s", st, string(body))
	}
}

func TestHTTP_MemoryStore(t *testing.T) {
	h, err := router.NewRouter(router.Options{
		Sessions: session.NewSharedResolver(session.DemoUserID),
		Hasher:   password.NewBcryptHasher(bcrypt.MinCost),
		Seed:     true,
	})
	if err != nil {
		t.Fatalf("new router: %v", err)
	}
	ts := httptest.NewServer(h)
	defer ts.Close()

	st, body := doReq(t, ts.URL, "GET", "/api/dashboard/stats", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", st, string(body))
	}
	if stats := decodeMap(t, body); stats["registered_pets"].(float64) != 3 {
		t.Fatalf("unexpected stats %v", stats)
	}
}

func TestHTTP_OpsEndpoints(t *testing.T) {
	env := newTestServer(t, newTokenResolver(t))

	if st, _ := doReq(t, env.url, "GET", "/health", "", nil); st != http.StatusOK {
		t.Fatalf("expected 200 health, got %d", st)
	}
	if st, _ := doReq(t, env.url, "GET", "/swagger/doc.json", "", nil); st != http.StatusOK {
		t.Fatalf("expected 200 swagger doc, got %d", st)
	}

	st, body := doReq(t, env.url, "GET", "/metrics", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 metrics, got %d", st)
	}
	if !strings.Contains(string(body), `petcare_http_requests_total{method="GET",route="/health",status="200"} 1`) {
		t.Fatalf("health request not counted:\n%s", string(body))
	}
}

func signupAndLogin(t *testing.T, baseURL, email string) {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/api/signup", "", map[string]any{
		"firstName": "Jane", "lastName": "Doe", "email": email, "signupPassword": "pw",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 signup, got %d body=%s", st, string(body))
	}
	login(t, baseURL, email, "pw")
}

func login(t *testing.T, baseURL, email, pw string) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/api/login", "", map[string]any{"email": email, "password": pw})
	if st != http.StatusOK {
		t.Fatalf("expected 200 login, got %d body=%s", st, string(body))
	}

	var resp struct {
		Message string `json:"message"`
		UserID  int64  `json:"user_id"`
		Token   string `json:"token"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.Message != "Login successful" || resp.UserID == 0 {
		t.Fatalf("unexpected login body=%s", string(body))
	}
	return resp.Token
}

func userName(t *testing.T, baseURL, token string) string {
	t.Helper()

	st, body := doReq(t, baseURL, "GET", "/api/dashboard/stats", token, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 stats, got %d body=%s", st, string(body))
	}
	name, _ := decodeMap(t, body)["user_name"].(string)
	return name
}

func count(t *testing.T, db *sqlx.DB, query string) int {
	t.Helper()
	var n int
	if err := db.Get(&n, query); err != nil {
		t.Fatalf("count %q: %v", query, err)
	}
	return n
}

func decodeMap(t *testing.T, body []byte) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(body, &m); err != nil {
		t.Fatalf("decode %s: %v", string(body), err)
	}
	return m
}

func doReq(t *testing.T, baseURL, method, path, token string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
