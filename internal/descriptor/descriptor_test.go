package descriptor

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

const validDoc = `{
	"camera": {
		"position": [12, 8, 24],
		"rotation_deg": [-10, 25, 0],
		"fov": 60,
		"near": 0.5,
		"far": 500
	},
	"light": {
		"position": [0, 50, 0],
		"cone_angle_deg": 40
	}
}`

func TestParseValid(t *testing.T) {
	d, err := Parse([]byte(validDoc))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if d.Camera.Position.X != 12 || d.Camera.Position.Y != 8 || d.Camera.Position.Z != 24 {
		t.Errorf("camera position = %v", d.Camera.Position)
	}
	if d.Camera.RotationDeg.Y != 25 {
		t.Errorf("camera rotation = %v", d.Camera.RotationDeg)
	}
	if d.Camera.Fov != 60 || d.Camera.Near != 0.5 || d.Camera.Far != 500 {
		t.Errorf("camera fov/near/far = %v/%v/%v", d.Camera.Fov, d.Camera.Near, d.Camera.Far)
	}
	if d.Light.Position.Y != 50 {
		t.Errorf("light position = %v", d.Light.Position)
	}
	if d.Light.ConeAngleDeg != 40 {
		t.Errorf("cone angle = %v", d.Light.ConeAngleDeg)
	}
}

func TestParseDefaults(t *testing.T) {
	doc := `{
		"camera": {"position": [0,0,10], "rotation_deg": [0,0,0]},
		"light": {"position": [5,5,5]}
	}`

	d, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if d.Camera.Fov != DefaultFov {
		t.Errorf("fov = %v, want default %v", d.Camera.Fov, float32(DefaultFov))
	}
	if d.Camera.Near != DefaultNear || d.Camera.Far != DefaultFar {
		t.Errorf("near/far = %v/%v, want defaults", d.Camera.Near, d.Camera.Far)
	}
	if d.Light.ConeAngleDeg != DefaultConeAngleDeg {
		t.Errorf("cone angle = %v, want default", d.Light.ConeAngleDeg)
	}
}

func TestParseMalformed(t *testing.T) {
	cases := map[string]string{
		"not json":           `{`,
		"missing camera pos": `{"camera": {"rotation_deg": [0,0,0]}, "light": {"position": [0,0,0]}}`,
		"short rotation":     `{"camera": {"position": [0,0,0], "rotation_deg": [0,0]}, "light": {"position": [0,0,0]}}`,
		"missing light pos":  `{"camera": {"position": [0,0,0], "rotation_deg": [0,0,0]}, "light": {}}`,
		"bad near/far":       `{"camera": {"position": [0,0,0], "rotation_deg": [0,0,0], "near": 10, "far": 1}, "light": {"position": [0,0,0]}}`,
		"bad fov":            `{"camera": {"position": [0,0,0], "rotation_deg": [0,0,0], "fov": 0}, "light": {"position": [0,0,0]}}`,
	}

	for name, doc := range cases {
		if _, err := Parse([]byte(doc)); err == nil {
			t.Errorf("%s: Parse() succeeded, want error", name)
		}
	}
}

func TestConeHalfAngle(t *testing.T) {
	l := LightSpec{ConeAngleDeg: 30}
	got := l.ConeHalfAngle()
	// 15 degrees in radians
	want := float32(0.261799)
	if got < want-1e-4 || got > want+1e-4 {
		t.Errorf("ConeHalfAngle() = %v, want ~%v", got, want)
	}
}

func waitPoll(t *testing.T, l *Loader) *Descriptor {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if d, done := l.Poll(); done {
			return d
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("loader did not complete in time")
	return nil
}

func TestLoaderFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.json")
	if err := os.WriteFile(path, []byte(validDoc), 0644); err != nil {
		t.Fatal(err)
	}

	l := Start(path)
	d := waitPoll(t, l)
	if d == nil {
		t.Fatal("expected descriptor, got nil")
	}
	if l.Failed() {
		t.Error("Failed() = true for successful load")
	}

	// Outcome is cached; a second poll returns the same descriptor
	d2, done := l.Poll()
	if !done || d2 != d {
		t.Error("second Poll() did not return the cached descriptor")
	}
}

func TestLoaderFromHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(validDoc))
	}))
	defer srv.Close()

	l := Start(srv.URL)
	if d := waitPoll(t, l); d == nil {
		t.Fatal("expected descriptor from HTTP source")
	}
}

func TestReadyGatesSceneContent(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		w.Write([]byte(validDoc))
	}))
	defer srv.Close()

	l := Start(srv.URL)
	if l.Ready() {
		t.Error("Ready() = true while fetch is in flight")
	}
	l.Poll()
	if l.Ready() {
		t.Error("Ready() = true after a Poll with the fetch still in flight")
	}

	close(release)
	if d := waitPoll(t, l); d == nil {
		t.Fatal("expected descriptor after release")
	}
	if !l.Ready() {
		t.Error("Ready() = false after successful load")
	}
}

func TestReadyStaysFalseAfterFailure(t *testing.T) {
	l := Start(filepath.Join(t.TempDir(), "missing.json"))
	waitPoll(t, l)

	// Failure is terminal: scene-dependent content stays hidden for
	// the rest of the session.
	if l.Ready() {
		t.Error("Ready() = true after failed load")
	}
	l.Poll()
	if l.Ready() {
		t.Error("Ready() became true on a later poll after failure")
	}
}

func TestLoaderFailureIsTerminal(t *testing.T) {
	l := Start(filepath.Join(t.TempDir(), "missing.json"))
	d := waitPoll(t, l)
	if d != nil {
		t.Fatal("expected nil descriptor on failure")
	}
	if !l.Failed() {
		t.Error("Failed() = false after load failure")
	}

	// Still terminal on subsequent polls
	d2, done := l.Poll()
	if !done || d2 != nil {
		t.Error("failure outcome not cached")
	}
}
