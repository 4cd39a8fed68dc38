package prompt

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

// TestReadPassword tests prompting on non-terminal input.
func TestReadPassword(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		input   string
		want    string
		wantErr error
		wantOut string
	}{
		{
			name:    "single line",
			input:   "hunter2\n",
			want:    "hunter2",
			wantOut: "Enter your password: ",
		},
		{
			name:    "windows line ending",
			input:   "hunter2\r\n",
			want:    "hunter2",
			wantOut: "Enter your password: ",
		},
		{
			name:    "final line without newline",
			input:   "hunter2",
			want:    "hunter2",
			wantOut: "Enter your password: ",
		},
		{
			name:    "empty lines are rejected",
			input:   "\n\nhunter2\n",
			want:    "hunter2",
			wantOut: "Enter your password: " +
				"Password cannot be empty. Please enter a password.\n" +
				"Enter your password: " +
				"Password cannot be empty. Please enter a password.\n" +
				"Enter your password: ",
		},
		{
			name:    "spaces are a password",
			input:   "   \n",
			want:    "   ",
			wantOut: "Enter your password: ",
		},
		{
			name:    "no input",
			input:   "",
			wantErr: ErrNoInput,
			wantOut: "Enter your password: \nNo input received. Exiting.\n",
		},
		{
			name:    "empty line then end of input",
			input:   "\n",
			wantErr: ErrNoInput,
			wantOut: "Enter your password: " +
				"Password cannot be empty. Please enter a password.\n" +
				"Enter your password: \nNo input received. Exiting.\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			p := New(strings.NewReader(tc.input), &out)

			got, err := p.ReadPassword()
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected error %v, got %v", tc.wantErr, err)
			}
			if got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
			if out.String() != tc.wantOut {
				t.Errorf("unexpected output:\n%q\nexpected:\n%q", out.String(), tc.wantOut)
			}
		})
	}
}

// fakeTTY pretends to be a terminal file.
type fakeTTY struct {
	io.Reader
}

func (fakeTTY) Fd() uintptr { return 42 }

// TestReadPasswordTerminal tests the no-echo path.
func TestReadPasswordTerminal(t *testing.T) {
	t.Parallel()

	t.Run("reads without echo", func(t *testing.T) {
		t.Parallel()

		answers := [][]byte{[]byte(""), []byte("s3cret")}
		var calls int

		var out bytes.Buffer
		p := New(fakeTTY{strings.NewReader("")}, &out)
		p.isTerminal = func(fd int) bool { return fd == 42 }
		p.readPassword = func(int) ([]byte, error) {
			b := answers[calls]
			calls++
			return b, nil
		}

		got, err := p.ReadPassword()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "s3cret" {
			t.Errorf("expected s3cret, got %q", got)
		}
		if calls != 2 {
			t.Errorf("expected 2 reads, got %d", calls)
		}
		if strings.Contains(out.String(), "s3cret") {
			t.Error("password was echoed to output")
		}
		if !strings.Contains(out.String(), EmptyMessage) {
			t.Error("expected empty password message")
		}
	})

	t.Run("end of input", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		p := New(fakeTTY{strings.NewReader("")}, &out)
		p.isTerminal = func(int) bool { return true }
		p.readPassword = func(int) ([]byte, error) { return nil, io.EOF }

		if _, err := p.ReadPassword(); !errors.Is(err, ErrNoInput) {
			t.Errorf("expected ErrNoInput, got %v", err)
		}
	})

	t.Run("read errors are wrapped", func(t *testing.T) {
		t.Parallel()

		broken := errors.New("broken tty")
		p := New(fakeTTY{strings.NewReader("")}, io.Discard)
		p.isTerminal = func(int) bool { return true }
		p.readPassword = func(int) ([]byte, error) { return nil, broken }

		if _, err := p.ReadPassword(); !errors.Is(err, broken) {
			t.Errorf("expected wrapped error, got %v", err)
		}
	})

	t.Run("hiding disabled reads lines", func(t *testing.T) {
		t.Parallel()

		p := New(fakeTTY{strings.NewReader("visible\n")}, io.Discard, WithHiddenInput(false))
		p.isTerminal = func(int) bool { return true }
		p.readPassword = func(int) ([]byte, error) {
			t.Error("unexpected no-echo read")
			return nil, nil
		}

		got, err := p.ReadPassword()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "visible" {
			t.Errorf("expected visible, got %q", got)
		}
	})
}
