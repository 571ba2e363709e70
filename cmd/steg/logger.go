package main

import (
	"github.com/rs/zerolog"

	"github.com/softveil/steg"
)

// zlogAdapter bridges the library's Logger interface onto zerolog.
type zlogAdapter struct {
	l zerolog.Logger
}

func emit(ev *zerolog.Event, msg string, f steg.Fields) {
	for k, v := range f {
		ev = ev.Interface(k, v)
	}
	ev.Msg(msg)
}

func (a zlogAdapter) Debug(msg string, f steg.Fields) { emit(a.l.Debug(), msg, f) }
func (a zlogAdapter) Info(msg string, f steg.Fields)  { emit(a.l.Info(), msg, f) }
func (a zlogAdapter) Warn(msg string, f steg.Fields)  { emit(a.l.Warn(), msg, f) }
func (a zlogAdapter) Error(msg string, f steg.Fields) { emit(a.l.Error(), msg, f) }
