package monitoring

import (
	"fmt"
	"testing"
)

func TestSetLogger(t *testing.T) {
	orig := Logf
	defer func() { Logf = orig }()

	var got string
	SetLogger(func(format string, v ...interface{}) {
		got = fmt.Sprintf(format, v...)
	})
	Logf("evaluated %s", "CKM::|V_cb|")
	if got != "evaluated CKM::|V_cb|" {
		t.Errorf("unexpected log line %q", got)
	}

	SetLogger(nil)
	got = ""
	Logf("muted")
	if got != "" {
		t.Errorf("expected muted logger, got %q", got)
	}
}
