package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ReadingLog is one general-reading journal entry, owned by the day it was
// added to and removed only by explicit deletion.
type ReadingLog struct {
	ID        string `json:"id"`
	BookTitle string `json:"bookTitle"`
	Pages     int    `json:"pages"`
	Highlight string `json:"highlight"`
	CreatedAt string `json:"createdAt"`
}

// BibleLog is one Bible-reading journal entry. Book should be one of the 66
// canonical titles; Chapter is the starting chapter and ChapterCount the
// number of chapters read.
type BibleLog struct {
	ID           string `json:"id"`
	Book         string `json:"book"`
	Chapter      int    `json:"chapter"`
	ChapterCount int    `json:"chapterCount"`
	CreatedAt    string `json:"createdAt"`
}

// coerceInt decodes a JSON value that ought to be an integer but may be a
// float, a numeric string, null, or garbage. Anything unusable becomes zero
// rather than a decode error.
func coerceInt(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 0
	}
	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return n
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return int(f)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return n
		}
	}
	return 0
}

func (l *ReadingLog) UnmarshalJSON(data []byte) error {
	var aux struct {
		ID        string          `json:"id"`
		BookTitle string          `json:"bookTitle"`
		Pages     json.RawMessage `json:"pages"`
		Highlight string          `json:"highlight"`
		CreatedAt string          `json:"createdAt"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	l.ID = aux.ID
	l.BookTitle = aux.BookTitle
	l.Pages = coerceInt(aux.Pages)
	l.Highlight = aux.Highlight
	l.CreatedAt = aux.CreatedAt
	return nil
}

func (l *BibleLog) UnmarshalJSON(data []byte) error {
	var aux struct {
		ID           string          `json:"id"`
		Book         string          `json:"book"`
		Chapter      json.RawMessage `json:"chapter"`
		ChapterCount json.RawMessage `json:"chapterCount"`
		CreatedAt    string          `json:"createdAt"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	l.ID = aux.ID
	l.Book = aux.Book
	l.Chapter = coerceInt(aux.Chapter)
	l.ChapterCount = coerceInt(aux.ChapterCount)
	l.CreatedAt = aux.CreatedAt
	return nil
}
