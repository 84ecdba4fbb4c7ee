// Package snapshot compares test results against JSON files stored in testdata/snapshots
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"mondaynightpoker-handeval/internal/util"
)

// Dir is where snapshot files are read from and written to
var Dir = filepath.Join("testdata", "snapshots")

var (
	mu        sync.Mutex
	callCount = make(map[string]int)
)

// TestingT is the part of *testing.T used by ValidateSnapshot
type TestingT interface {
	Helper()
	Name() string
	Errorf(format string, args ...interface{})
}

// Filename returns the snapshot file for the nth call from the named test
func Filename(testName string, n int) string {
	name := strings.NewReplacer("/", "__", " ", "_").Replace(testName)
	return filepath.Join(Dir, fmt.Sprintf("%s-%d.json", name, n))
}

func updating() bool {
	return util.Getenv("UPDATE_SNAPSHOTS", "") == "1"
}

// ValidateSnapshot compares obj, encoded as indented JSON, to its snapshot file
// A missing snapshot file is a failure. Run the tests with UPDATE_SNAPSHOTS=1
// to write new files or to rewrite existing ones.
func ValidateSnapshot(t TestingT, obj interface{}, msgAndArgs ...interface{}) bool {
	t.Helper()

	mu.Lock()
	n := callCount[t.Name()]
	callCount[t.Name()] = n + 1
	mu.Unlock()

	// numbering restarts when the test runs again, i.e., with -count
	if c, ok := t.(interface{ Cleanup(func()) }); ok && n == 0 {
		name := t.Name()
		c.Cleanup(func() {
			mu.Lock()
			delete(callCount, name)
			mu.Unlock()
		})
	}

	filename := Filename(t.Name(), n)

	objJSON, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		t.Errorf("could not encode snapshot: %v", err)
		return false
	}

	if updating() {
		if err := write(filename, objJSON); err != nil {
			t.Errorf("could not write snapshot: %v", err)
			return false
		}

		return true
	}

	expects, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		t.Errorf("snapshot %s does not exist, run with UPDATE_SNAPSHOTS=1 to create it", filename)
		return false
	} else if err != nil {
		t.Errorf("could not read snapshot: %v", err)
		return false
	}

	if !assert.Equal(t, strings.TrimSpace(string(expects)), strings.TrimSpace(string(objJSON)), msgAndArgs...) {
		t.Errorf("snapshot %s does not match", filename)
		return false
	}

	return true
}

func write(filename string, data []byte) error {
	logrus.WithField("filename", filename).Info("writing snapshot file")
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return err
	}

	return os.WriteFile(filename, append(data, '\n'), 0644)
}
