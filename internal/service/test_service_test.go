package service

import (
	"testing"

	"quizcraft_backend/internal/model"
)

func TestValidateQuestion(t *testing.T) {
	cases := []struct {
		name    string
		req     QuestionReq
		wantErr bool
	}{
		{
			"valid multiple choice",
			QuestionReq{Type: model.MultipleChoice, Options: []string{"A", "B"}, CorrectAnswers: []string{"B"}, Points: 1},
			false,
		},
		{
			"multiple choice with two keys",
			QuestionReq{Type: model.MultipleChoice, Options: []string{"A", "B"}, CorrectAnswers: []string{"A", "B"}, Points: 1},
			true,
		},
		{
			"multiple choice key outside options",
			QuestionReq{Type: model.MultipleChoice, Options: []string{"A", "B"}, CorrectAnswers: []string{"C"}, Points: 1},
			true,
		},
		{
			"true-false without key",
			QuestionReq{Type: model.TrueFalse, Options: []string{"True", "False"}, Points: 1},
			true,
		},
		{
			"valid select-all",
			QuestionReq{Type: model.SelectAll, Options: []string{"X", "Y", "Z"}, CorrectAnswers: []string{"X", "Z"}, Points: 2},
			false,
		},
		{
			"select-all with empty key",
			QuestionReq{Type: model.SelectAll, Options: []string{"X", "Y"}, Points: 2},
			true,
		},
		{
			"select-all key outside options",
			QuestionReq{Type: model.SelectAll, Options: []string{"X", "Y"}, CorrectAnswers: []string{"X", "W"}, Points: 2},
			true,
		},
		{
			"free-text needs no key",
			QuestionReq{Type: model.FreeText, Prompt: "Explain.", Points: 3},
			false,
		},
	}

	for _, c := range cases {
		err := validateQuestion(0, c.req)
		if (err != nil) != c.wantErr {
			t.Fatalf("%s: err = %v, wantErr %v", c.name, err, c.wantErr)
		}
	}
}
