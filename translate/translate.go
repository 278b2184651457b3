// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package translate formats user visible assembler messages in the
// language of the host locale.
package translate

import (
	"log"
	"sync"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	printer   *message.Printer
	printerMu sync.RWMutex
)

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("asm51: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// SetLanguage replaces the host locale selection with an explicit language.
func SetLanguage(tag language.Tag) {
	printerMu.Lock()
	defer printerMu.Unlock()

	printer = message.NewPrinter(tag)
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	printerMu.RLock()
	defer printerMu.RUnlock()

	return printer.Sprintf(key, args...)
}
