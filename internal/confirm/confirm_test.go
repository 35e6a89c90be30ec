package confirm

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
)

func ask(t *testing.T, input string) (bool, string) {
	t.Helper()

	var out bytes.Buffer
	opts := Options{
		Reader: bufio.NewReader(strings.NewReader(input)),
		Writer: &out,
	}
	approved, err := Ask(opts, "Apply 2 corrections?")
	if err != nil {
		t.Fatalf("Ask failed: %v", err)
	}
	return approved, out.String()
}

func TestAskApproves(t *testing.T) {
	for _, input := range []string{"y\n", "Y\n", "yes\n", "YES\n", " y \n", "y"} {
		if approved, _ := ask(t, input); !approved {
			t.Errorf("input %q: declined, want approved", input)
		}
	}
}

// Approval must be explicit: an empty line declines.
func TestAskDeclines(t *testing.T) {
	for _, input := range []string{"\n", "n\n", "no\n", "q\n", "maybe\n", ""} {
		if approved, _ := ask(t, input); approved {
			t.Errorf("input %q: approved, want declined", input)
		}
	}
}

func TestAskPrompt(t *testing.T) {
	_, out := ask(t, "n\n")
	if !strings.Contains(out, "Apply 2 corrections?") || !strings.Contains(out, "[y/N]") {
		t.Errorf("prompt output = %q", out)
	}
}

func TestAskAutoApprove(t *testing.T) {
	var out bytes.Buffer
	opts := Options{
		Reader:      bufio.NewReader(strings.NewReader("")),
		Writer:      &out,
		AutoApprove: true,
	}
	approved, err := Ask(opts, "Apply?")
	if err != nil {
		t.Fatalf("Ask failed: %v", err)
	}
	if !approved {
		t.Error("AutoApprove declined")
	}
	if out.Len() != 0 {
		t.Errorf("AutoApprove wrote a prompt: %q", out.String())
	}
}
