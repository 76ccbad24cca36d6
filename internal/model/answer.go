package model

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// AnswerKind discriminates the shapes a submitted answer value may take.
type AnswerKind int

const (
	AnswerInvalid AnswerKind = iota
	AnswerText
	AnswerNumber
	AnswerMultiSelect
)

// AnswerValue is the value a respondent submitted for one question. Answer
// payloads are not validated against the question type at submission time,
// so any JSON shape may arrive; strings, numbers, and string arrays decode
// into their tagged form, everything else (null, bool, object, mixed array)
// decodes as AnswerInvalid and counts as not answered.
type AnswerValue struct {
	Kind   AnswerKind
	Text   string
	Number float64
	Values []string
}

// TextAnswer wraps a free-text, email, phone, or selected-option value.
func TextAnswer(s string) AnswerValue {
	return AnswerValue{Kind: AnswerText, Text: s}
}

// NumberAnswer wraps a numeric value, typically for rating questions.
func NumberAnswer(n float64) AnswerValue {
	return AnswerValue{Kind: AnswerNumber, Number: n}
}

// MultiSelectAnswer wraps the selected values of a checkbox question.
func MultiSelectAnswer(values ...string) AnswerValue {
	return AnswerValue{Kind: AnswerMultiSelect, Values: values}
}

func (v AnswerValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case AnswerText:
		return json.Marshal(v.Text)
	case AnswerNumber:
		return json.Marshal(v.Number)
	case AnswerMultiSelect:
		return json.Marshal(v.Values)
	default:
		return []byte("null"), nil
	}
}

func (v *AnswerValue) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch t := raw.(type) {
	case string:
		*v = TextAnswer(t)
	case float64:
		*v = NumberAnswer(t)
	case []interface{}:
		values := make([]string, 0, len(t))
		for _, e := range t {
			s, ok := e.(string)
			if !ok {
				*v = AnswerValue{}
				return nil
			}
			values = append(values, s)
		}
		*v = AnswerValue{Kind: AnswerMultiSelect, Values: values}
	default:
		*v = AnswerValue{}
	}
	return nil
}

func (v AnswerValue) MarshalBSONValue() (bsontype.Type, []byte, error) {
	switch v.Kind {
	case AnswerText:
		return bson.MarshalValue(v.Text)
	case AnswerNumber:
		return bson.MarshalValue(v.Number)
	case AnswerMultiSelect:
		values := v.Values
		if values == nil {
			values = []string{}
		}
		return bson.MarshalValue(values)
	default:
		return bsontype.Null, nil, nil
	}
}

func (v *AnswerValue) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}

	switch t {
	case bsontype.String:
		*v = TextAnswer(rv.StringValue())
	case bsontype.Double:
		*v = NumberAnswer(rv.Double())
	case bsontype.Int32:
		*v = NumberAnswer(float64(rv.Int32()))
	case bsontype.Int64:
		*v = NumberAnswer(float64(rv.Int64()))
	case bsontype.Array:
		var values []string
		if err := rv.Unmarshal(&values); err != nil {
			*v = AnswerValue{}
			return nil
		}
		*v = AnswerValue{Kind: AnswerMultiSelect, Values: values}
	default:
		*v = AnswerValue{}
	}
	return nil
}
