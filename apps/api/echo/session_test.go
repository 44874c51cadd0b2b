package echoapi

import (
	"encoding/json"
	"net/http"
	"testing"
)

func Test_sessionApi_login(t *testing.T) {
	tests := []httpTest{
		{
			name:     "empty body",
			body:     []byte(`{}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"email":"this field is required","password":"this field is required"}`),
		},
		{
			name:     "bad role",
			body:     []byte(`{"email":"student@edumanage.com","password":"pwd","role":"lol"}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"role":"invalid role"}`),
		},
		{
			name:     "unknown email",
			body:     []byte(`{"email":"nobody@edumanage.com","password":"pwd"}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"error":"invalid credentials"}`),
		},
		{
			name:     "role mismatch",
			body:     []byte(`{"email":"student@edumanage.com","password":"pwd","role":"admin"}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"error":"invalid credentials"}`),
		},
		{
			name:     "seed login",
			body:     []byte(`{"email":"student@edumanage.com","password":"any password"}`),
			wantCode: http.StatusOK,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t)

			rec := app.do(t, http.MethodPost, "/v1/auth/login", tt.body)
			checkCodeAndData(t, tt, rec)

			if tt.wantCode != http.StatusOK {
				if _, signedIn := app.store.CurrentUser(); signedIn {
					t.Error("store signed in after failed login")
				}
				return
			}

			var resp SessionResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("unmarshalling response failed: %v", err)
			}
			if resp.User.Email != "student@edumanage.com" {
				t.Errorf("response user = %s", resp.User.Email)
			}
			if resp.UnreadCount != 2 || len(resp.Notifications) != 3 {
				t.Errorf("response notifications = %d unread of %d", resp.UnreadCount, len(resp.Notifications))
			}
		})
	}
}

func Test_sessionApi_register(t *testing.T) {
	tests := []httpTest{
		{
			name:     "empty body",
			body:     []byte(`{}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"name":"this field is required","email":"this field is required","password":"this field is required"}`),
		},
		{
			name:     "weak password",
			body:     []byte(`{"name":"A","email":"a@b.cd","password":"123"}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"password":"password must contain at least 8 characters"}`),
		},
		{
			name:     "seed email taken",
			body:     []byte(`{"name":"A","email":"student@edumanage.com","password":"v3ry s3cret!"}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"email":"email already registered"}`),
		},
		{
			name:     "registered",
			body:     []byte(`{"name":"A","email":"a@b.cd","password":"v3ry s3cret!"}`),
			wantCode: http.StatusCreated,
		},
		{
			name:     "registered with role",
			body:     []byte(`{"name":"A","email":"a@b.cd","password":"v3ry s3cret!","role":"instructor"}`),
			wantCode: http.StatusCreated,
			extra:    "instructor",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t)

			rec := app.do(t, http.MethodPost, "/v1/auth/register", tt.body)
			checkCodeAndData(t, tt, rec)

			if tt.wantCode != http.StatusCreated {
				return
			}
			var resp SessionResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("unmarshalling response failed: %v", err)
			}
			if resp.User.ID == "" {
				t.Error("response user has no id")
			}
			wantRole := "student"
			if role, ok := tt.extra.(string); ok {
				wantRole = role
			}
			if resp.User.Role != wantRole {
				t.Errorf("response role = %s, want %s", resp.User.Role, wantRole)
			}
			if len(resp.Notifications) != 0 {
				t.Errorf("response notifications = %d, want 0", len(resp.Notifications))
			}
		})
	}
}

func Test_sessionApi_logout(t *testing.T) {
	app := newTestApp(t)
	app.signIn(t, "student@edumanage.com")

	rec := app.do(t, http.MethodPost, "/v1/auth/logout")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("code = %d, want %d", rec.Code, http.StatusNoContent)
	}
	if _, signedIn := app.store.CurrentUser(); signedIn {
		t.Error("store still signed in after logout")
	}

	// signed-out logout is fine too
	rec = app.do(t, http.MethodPost, "/v1/auth/logout")
	if rec.Code != http.StatusNoContent {
		t.Errorf("code = %d, want %d", rec.Code, http.StatusNoContent)
	}
}

func Test_sessionApi_me(t *testing.T) {
	app := newTestApp(t)

	tt := httpTest{
		wantCode: http.StatusUnauthorized,
		wantData: []byte(`{"error":"not signed in"}`),
	}
	checkCodeAndData(t, tt, app.do(t, http.MethodGet, "/v1/auth/me"))

	app.signIn(t, "instructor@edumanage.com")
	usr, _ := app.store.CurrentUser()
	tt = httpTest{
		wantCode: http.StatusOK,
		wantData: marchallObj(t, usr),
	}
	checkCodeAndData(t, tt, app.do(t, http.MethodGet, "/v1/auth/me"))
}

func Test_sessionApi_notifications(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/v1/notifications")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("code = %d, want %d", rec.Code, http.StatusUnauthorized)
	}

	app.signIn(t, "student@edumanage.com")

	var resp NotificationsResponse
	rec = app.do(t, http.MethodGet, "/v1/notifications")
	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d, want %d", rec.Code, http.StatusOK)
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshalling response failed: %v", err)
	}
	if len(resp.Notifications) != 3 || resp.UnreadCount != 2 {
		t.Fatalf("response = %d unread of %d, want 2 of 3", resp.UnreadCount, len(resp.Notifications))
	}

	// mark one read; unknown ids are no-ops
	rec = app.do(t, http.MethodPost, "/v1/notifications/n1/read")
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshalling response failed: %v", err)
	}
	if resp.UnreadCount != 1 {
		t.Errorf("UnreadCount = %d, want 1", resp.UnreadCount)
	}

	rec = app.do(t, http.MethodPost, "/v1/notifications/nope/read")
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshalling response failed: %v", err)
	}
	if resp.UnreadCount != 1 {
		t.Errorf("UnreadCount = %d, want 1", resp.UnreadCount)
	}
}
