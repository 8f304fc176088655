package model

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestAnswerValueUnmarshalShapes(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want AnswerValue
	}{
		{"bare string", `"Paris"`, AnswerValue{"Paris"}},
		{"empty string", `""`, nil},
		{"array", `["X","Y"]`, AnswerValue{"X", "Y"}},
		{"empty array", `[]`, AnswerValue{}},
		{"null", `null`, nil},
		{"number", `42`, nil},
		{"object", `{"a":1}`, nil},
		{"mixed array", `["X",1]`, nil},
	}

	for _, c := range cases {
		var got AnswerValue
		if err := json.Unmarshal([]byte(c.raw), &got); err != nil {
			t.Fatalf("%s: unexpected error %v", c.name, err)
		}
		if !reflect.DeepEqual(got, c.want) {
			t.Fatalf("%s: got %#v, want %#v", c.name, got, c.want)
		}
	}
}

func TestAnswerValueInsideSubmission(t *testing.T) {
	payload := `{"q1":"A","q2":["X","Y"],"q3":null}`

	var answers map[string]AnswerValue
	if err := json.Unmarshal([]byte(payload), &answers); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if !reflect.DeepEqual(answers["q1"], AnswerValue{"A"}) {
		t.Fatalf("q1 = %#v", answers["q1"])
	}
	if !reflect.DeepEqual(answers["q2"], AnswerValue{"X", "Y"}) {
		t.Fatalf("q2 = %#v", answers["q2"])
	}
	if len(answers["q3"]) != 0 {
		t.Fatalf("q3 = %#v, want empty", answers["q3"])
	}
}
