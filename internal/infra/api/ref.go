package api

import (
	"bytes"
	"encoding/json"
)

// Ref is a field the API sends either as a bare id or as the embedded
// document. It is resolved once here so callers never inspect the shape.
type Ref[T any] struct {
	id     string
	inline *T
}

func RefID[T any](id string) Ref[T] {
	return Ref[T]{id: id}
}

func RefInline[T any](id string, v T) Ref[T] {
	return Ref[T]{id: id, inline: &v}
}

func (r Ref[T]) ID() string { return r.id }

func (r Ref[T]) Inline() (*T, bool) {
	return r.inline, r.inline != nil
}

func (r Ref[T]) IsZero() bool {
	return r.id == "" && r.inline == nil
}

func (r *Ref[T]) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*r = Ref[T]{}
		return nil
	}

	if b[0] == '"' {
		var id string
		if err := json.Unmarshal(b, &id); err != nil {
			return err
		}
		*r = Ref[T]{id: id}
		return nil
	}

	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	var ids struct {
		ID      string `json:"id"`
		MongoID string `json:"_id"`
	}
	_ = json.Unmarshal(b, &ids)

	*r = Ref[T]{id: nonEmpty(ids.ID, ids.MongoID), inline: &v}
	return nil
}

func (r Ref[T]) MarshalJSON() ([]byte, error) {
	if r.inline != nil {
		return json.Marshal(r.inline)
	}
	if r.id == "" {
		return []byte("null"), nil
	}
	return json.Marshal(r.id)
}
