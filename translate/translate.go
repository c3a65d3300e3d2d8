// Package translate formats user-facing messages in the caller's locale.
package translate

import (
	"log"
	"sync"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

// printer is built on first use, in the first user locale it can match.
var printer = sync.OnceValue(func() *message.Printer {
	tags := []string{"en-US"}

	locales, err := locale.GetLocales()
	switch {
	case err != nil:
		log.Printf("mipsim: locale: %v", err)
	case len(locales) > 0:
		tags = locales
	}

	return message.NewPrinter(message.MatchLanguage(tags...))
})

// From formats an en-US Sprintf() format in the user's locale.
func From(key message.Reference, args ...any) string {
	return printer().Sprintf(key, args...)
}

// Errorf formats an en-US Sprintf() format into an error. Error operands
// should be printed with %v; they remain reachable through errors.Is.
func Errorf(key string, args ...any) error {
	return &translated{msg: printer().Sprintf(key, args...), wrapped: wrappedOf(args)}
}

type translated struct {
	msg     string
	wrapped []error
}

func (err *translated) Error() string {
	return err.msg
}

func (err *translated) Unwrap() []error {
	return err.wrapped
}

func wrappedOf(args []any) (errs []error) {
	for _, arg := range args {
		if err, ok := arg.(error); ok {
			errs = append(errs, err)
		}
	}
	return
}
