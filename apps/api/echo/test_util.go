package echoapi

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"

	"github.com/eduflowhq/eduflow/core"
	"github.com/eduflowhq/eduflow/core/announcement"
	"github.com/eduflowhq/eduflow/core/assignment"
	"github.com/eduflowhq/eduflow/core/course"
	"github.com/eduflowhq/eduflow/core/enrollment"
	"github.com/eduflowhq/eduflow/core/session"
	"github.com/eduflowhq/eduflow/core/user"
	"github.com/eduflowhq/eduflow/storage/fixture"
	"github.com/eduflowhq/eduflow/storage/kv"
)

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	wantCode int
	wantData []byte
	extra    interface{}
}

type testApp struct {
	server Server
	store  *session.Store
}

// testLogger surfaces server-side errors in the test output.
type testLogger struct {
	t *testing.T
}

func (l testLogger) Debug(msg string, args ...interface{}) { l.t.Logf("DEBUG: %s %v", msg, args) }
func (l testLogger) Info(msg string, args ...interface{})  { l.t.Logf("INFO: %s %v", msg, args) }
func (l testLogger) Warn(msg string, args ...interface{})  { l.t.Logf("WARN: %s %v", msg, args) }
func (l testLogger) Error(msg string, args ...interface{}) { l.t.Logf("ERROR: %s %v", msg, args) }
func (l testLogger) Fatal(msg string, args ...interface{}) { l.t.Fatalf("FATAL: %s %v", msg, args) }

func newTestConfig() *core.Config {
	conf := core.NewConfig()
	conf.Debug = false // keep error responses in their PROD shape
	conf.TestMode = true
	return conf
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	conf := newTestConfig()
	db, err := fixture.Open()
	if err != nil {
		t.Fatalf("fixture.Open() failed: %v", err)
	}

	store := session.NewStore(session.Deps{
		KV:     kv.NewFileStore(afero.NewMemMapFs(), "store.json"),
		Seed:   fixture.NewUserDirectory(db),
		Notifs: fixture.NewNotificationRepository(db),
		Scheme: user.PlainScheme{},
	})

	validate := validator.New()
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	core.InitValidators(validate, translator)
	user.RegisterValidators(validate, translator)

	courseRepo := fixture.NewCourseRepository(db)
	server := NewServer(ServerDeps{
		Conf:            conf,
		Logger:          testLogger{t},
		Store:           store,
		CourseSvc:       course.NewService(courseRepo),
		EnrollmentSvc:   enrollment.NewService(fixture.NewEnrollmentRepository(db), courseRepo),
		AssignmentSvc:   assignment.NewService(fixture.NewAssignmentRepository(db)),
		AnnouncementSvc: announcement.NewService(fixture.NewAnnouncementRepository(db)),
		AnalyticsRepo:   fixture.NewAnalyticsRepository(db),
		Validate:        validate,
		Translator:      translator,
		DisableReqLogs:  true,
	})
	return &testApp{server: server, store: store}
}

func (app *testApp) do(t *testing.T, method, path string, data ...[]byte) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.server.ServeHTTP(rec, req)
	return rec
}

func (app *testApp) signIn(t *testing.T, email string) {
	t.Helper()
	if err := app.store.Login(email, "pwd", ""); err != nil {
		t.Fatalf("Login(%s) failed: %v", email, err)
	}
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj() failed: %v", err)
	}
	return data
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	return assert.ObjectsAreEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	t.Helper()
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	if tt.wantData == nil {
		return
	}
	ok, err := jsonBytesEqual(t, rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}
