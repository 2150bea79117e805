package maze

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestReadCells(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  [][]string
	}{
		{
			name:  "space separated",
			input: "S 0 #\n0 # 0\n0 0 E\n",
			want:  [][]string{{"S", "0", "#"}, {"0", "#", "0"}, {"0", "0", "E"}},
		},
		{
			name:  "compact rows",
			input: "S0#\n0#0\n00E",
			want:  [][]string{{"S", "0", "#"}, {"0", "#", "0"}, {"0", "0", "E"}},
		},
		{
			name:  "blank lines and tabs",
			input: "\nS\t1\n\n  2   E  \n\n",
			want:  [][]string{{"S", "1"}, {"2", "E"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadCells(strings.NewReader(tt.input))
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("cells = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	const text = "S 0 #\n0 # 0\n0 0 E"
	g, err := Parse(strings.NewReader(text))
	if err != nil {
		t.Fatal(err)
	}
	if g.String() != text {
		t.Errorf("String() = %q, want %q", g.String(), text)
	}
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse(strings.NewReader("S 0\n0\n"))
	if !errors.Is(err, ErrRaggedRows) {
		t.Errorf("err = %v, want ErrRaggedRows", err)
	}
	_, err = Parse(strings.NewReader("\n\n"))
	if !errors.Is(err, ErrEmptyGrid) {
		t.Errorf("err = %v, want ErrEmptyGrid", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "maze.txt")
	if err := os.WriteFile(path, []byte("S 0 0\n# # 0\n0 0 E\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	g, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if g.End() != (Position{2, 2}) {
		t.Errorf("end = %v, want (2, 2)", g.End())
	}

	bad := filepath.Join(dir, "bad.txt")
	if err := os.WriteFile(bad, []byte("S 0\n0 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); !errors.Is(err, ErrEndCount) {
		t.Errorf("err = %v, want ErrEndCount", err)
	}
	if _, err := Load(filepath.Join(dir, "missing.txt")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want os.ErrNotExist", err)
	}
}
