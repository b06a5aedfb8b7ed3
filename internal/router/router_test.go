package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"healthflow/internal/domain/chat"
	"healthflow/internal/ports/completion"
	"healthflow/internal/router"
)

type echoBackend struct{}

func (echoBackend) Name() string { return "echo" }

func (echoBackend) Complete(_ context.Context, req completion.Request) (completion.Response, error) {
	return completion.Response{Blocks: []completion.Block{
		{Type: completion.BlockTypeText, Text: "echo: " + req.Messages[0].Content},
	}}, nil
}

func TestHTTP_EndToEnd_TimelineAndChat(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	userID := "user-1"

	// 1) Sin sesión no hay timeline
	{
		st, _ := doReq(t, ts.URL, "GET", "/timeline/events", "", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 without user, got %d", st)
		}
	}

	// 2) Crear eventos
	medID := createEvent(t, ts.URL, userID, map[string]any{
		"type":        "medication",
		"title":       "Lisinopril",
		"description": "BP med",
		"date":        "2024-01-05",
		"endDate":     "2024-03-15",
	})
	createEvent(t, ts.URL, userID, map[string]any{
		"type":        "appointment",
		"title":       "Cardiology Checkup",
		"description": "Dr. Smith",
		"date":        "2024-01-15",
	})

	// 3) Rango invertido => 400
	{
		st, _ := doReq(t, ts.URL, "POST", "/timeline/events", userID, map[string]any{
			"type": "medication", "title": "Bad", "date": "2024-03-15", "endDate": "2024-01-01",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for reversed range, got %d", st)
		}
	}

	// 4) Listar, más reciente primero
	{
		st, body := doReq(t, ts.URL, "GET", "/timeline/events", userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list, got %d body=%s", st, string(body))
		}
		var items []struct {
			ID      string `json:"id"`
			Title   string `json:"title"`
			EndDate string `json:"endDate"`
		}
		_ = json.Unmarshal(body, &items)
		if len(items) != 2 || items[0].Title != "Cardiology Checkup" || items[1].EndDate != "2024-03-15" {
			t.Fatalf("unexpected list body=%s", string(body))
		}
	}

	// 5) Conteos
	{
		st, body := doReq(t, ts.URL, "GET", "/timeline/events/counts", userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 counts, got %d", st)
		}
		var c struct {
			All    int            `json:"all"`
			ByType map[string]int `json:"byType"`
		}
		_ = json.Unmarshal(body, &c)
		if c.All != 2 || c.ByType["medication"] != 1 || c.ByType["lab"] != 0 {
			t.Fatalf("unexpected counts body=%s", string(body))
		}
	}

	// 6) Otro usuario no ve el evento
	{
		st, _ := doReq(t, ts.URL, "GET", "/timeline/events/"+medID, "user-2", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 for other user, got %d", st)
		}
	}

	// 7) Chat sin backend: fallback con el timeline guardado, siempre 200
	{
		st, body := doReq(t, ts.URL, "POST", "/api/chat", userID, map[string]any{
			"message": "What medications am I on?",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 chat, got %d body=%s", st, string(body))
		}
		var resp struct {
			Message string `json:"message"`
			Source  string `json:"source"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Source != "fallback" || !strings.Contains(resp.Message, "You have 1 medication(s)") || !strings.Contains(resp.Message, "Lisinopril: BP med") {
			t.Fatalf("unexpected chat body=%s", string(body))
		}
	}

	// 8) Describir evento
	{
		st, body := doReq(t, ts.URL, "GET", "/api/chat/events/"+medID, userID, nil)
		if st != http.StatusOK || !strings.Contains(string(body), "Lisinopril") {
			t.Fatalf("expected 200 describe, got %d body=%s", st, string(body))
		}
	}

	// 9) Borrar
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/timeline/events/"+medID, userID, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "GET", "/timeline/events/"+medID, userID, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 after delete, got %d", st)
		}
	}
}

func TestHTTP_ChatWithBackend(t *testing.T) {
	responder := chat.NewResponder(chat.Config{}, echoBackend{})
	ts := httptest.NewServer(router.NewRouter(router.Options{Responder: responder}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "POST", "/api/chat", "", map[string]any{
		"message": "hello",
		"events":  []map[string]any{{"type": "lab", "title": "Blood Work", "date": "2024-02-01"}},
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d", st)
	}
	var resp struct {
		Message string `json:"message"`
		Source  string `json:"source"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.Message != "echo: hello" || resp.Source != "completion" {
		t.Fatalf("unexpected body=%s", string(body))
	}

	st, _ = doReq(t, ts.URL, "POST", "/api/chat", "", map[string]any{"message": ""})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for blank message, got %d", st)
	}
}

func TestHTTP_MeDemoAndHealth(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	if st, _ := doReq(t, ts.URL, "GET", "/me", "", nil); st != http.StatusUnauthorized {
		t.Fatalf("expected 401 /me without user, got %d", st)
	}
	st, body := doReq(t, ts.URL, "GET", "/me", "user-1", nil)
	if st != http.StatusOK || !strings.Contains(string(body), `"user_id":"user-1"`) {
		t.Fatalf("unexpected /me %d body=%s", st, string(body))
	}

	st, body = doReq(t, ts.URL, "GET", "/timeline/demo", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 demo, got %d", st)
	}
	var demo []map[string]any
	_ = json.Unmarshal(body, &demo)
	if len(demo) != 7 {
		t.Fatalf("expected 7 demo events, got %d", len(demo))
	}

	if st, _ := doReq(t, ts.URL, "GET", "/health", "", nil); st != http.StatusOK {
		t.Fatalf("expected 200 health, got %d", st)
	}
}

func TestHTTP_SameEventIDForTwoUsers(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	payload := map[string]any{"id": "evt-1", "type": "lab", "title": "Panel", "date": "2024-02-01"}
	if id := createEvent(t, ts.URL, "alice", payload); id != "evt-1" {
		t.Fatalf("alice: expected id evt-1, got %q", id)
	}
	if id := createEvent(t, ts.URL, "bob", payload); id != "evt-1" {
		t.Fatalf("bob: expected id evt-1, got %q", id)
	}

	// Repetido dentro del mismo usuario => 409
	if st, _ := doReq(t, ts.URL, "POST", "/timeline/events", "alice", payload); st != http.StatusConflict {
		t.Fatalf("expected 409 duplicate for alice, got %d", st)
	}
}

func createEvent(t *testing.T, baseURL, userID string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/timeline/events", userID, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create event, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create event: missing id body=%s", string(body))
	}
	return resp.ID
}

func doReq(t *testing.T, baseURL, method, path, debugUserID string, body any) (int, []byte) {
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
