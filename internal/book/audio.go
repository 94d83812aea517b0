package book

import (
	"fmt"
	"time"
)

// AudioAttrs is the construction input of an AudioEdition.
type AudioAttrs struct {
	Attrs
	DurationMinutes float64 `json:"duration_minutes" validate:"gt=0,finite"`
}

// AudioEdition is an audiobook. All of its fields are fixed at construction.
type AudioEdition struct {
	Book
	durationMinutes float64
}

// NewAudioEdition validates a and returns an audiobook.
func NewAudioEdition(a AudioAttrs) (*AudioEdition, error) {
	if err := validateStruct(a); err != nil {
		return nil, err
	}
	return &AudioEdition{
		Book:            newBook(a.Attrs),
		durationMinutes: a.DurationMinutes,
	}, nil
}

func (a *AudioEdition) Kind() Kind               { return KindAudio }
func (a *AudioEdition) DurationMinutes() float64 { return a.durationMinutes }

func (a *AudioEdition) Duration() time.Duration {
	return time.Duration(a.durationMinutes * float64(time.Minute))
}

func (a *AudioEdition) Describe() string {
	return fmt.Sprintf("%s It is an audiobook running %s minutes.",
		a.Book.Describe(), formatFloat(a.durationMinutes))
}

func (a *AudioEdition) String() string {
	return fmt.Sprintf("%s [Audiobook: %s min]", a.Book.String(), formatFloat(a.durationMinutes))
}

func (a *AudioEdition) GoString() string {
	return fmt.Sprintf("AudioEdition(%s, duration_minutes=%s)", a.fields(), formatFloat(a.durationMinutes))
}
