package report

import (
	"testing"
)

func TestMarshalYAMLSortsMapKeys(t *testing.T) {
	in := map[string]any{
		"t": 1,
		"a": 2,
		"g": map[string]any{"z": true, "b": "x"},
	}
	got, err := MarshalYAML(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "a: 2\ng:\n  b: x\n  z: true\nt: 1\n"
	if string(got) != want {
		t.Fatalf("unexpected YAML:\n%s\nwant:\n%s", got, want)
	}
}

func TestMarshalYAMLDeterministic(t *testing.T) {
	in := map[string]any{"c": 1, "b": 2, "a": 3, "d": []any{"x", "y"}}
	first, err := MarshalYAML(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := MarshalYAML(in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(again) != string(first) {
			t.Fatalf("non-deterministic output:\n%s\nvs\n%s", first, again)
		}
	}
}

func TestMarshalYAMLStructsFollowJSONTags(t *testing.T) {
	type rec struct {
		Locator string  `json:"locator"`
		GC      float64 `json:"gc"`
		Skip    string  `json:"skip,omitempty"`
	}
	got, err := MarshalYAML(rec{Locator: "seqs.txt:1", GC: 50})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "gc: 50\nlocator: seqs.txt:1\n"
	if string(got) != want {
		t.Fatalf("unexpected YAML:\n%s\nwant:\n%s", got, want)
	}
}
