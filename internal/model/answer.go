package model

import "encoding/json"

// AnswerValue is one submitted answer as it arrives on the wire. Clients send
// either a bare string (single-choice, free-text), an array of strings
// (select-all), or null; everything is normalized to a string slice here so
// the grading code never branches on runtime shape. Unrecognized shapes
// degrade to an empty (unanswered) value instead of failing the submission.
type AnswerValue []string

func (a *AnswerValue) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single == "" {
			*a = nil
		} else {
			*a = AnswerValue{single}
		}
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*a = AnswerValue(list)
		return nil
	}

	*a = nil
	return nil
}
