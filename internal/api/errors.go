package api

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"

	"github.com/phrazzld/dinosaur-api/internal/idparam"
	"github.com/phrazzld/dinosaur-api/internal/pagination"
	"github.com/phrazzld/dinosaur-api/internal/store"
)

// MalformedIDListMessage is sent when an id parameter holds a list that
// cannot be parsed.
const MalformedIDListMessage = "Bad... bad array :/"

// pageEaters are the dinosaurs blamed for a missing page.
var pageEaters = []string{"Tyrannosaurus", "Baryonyx", "Velociraptor", "Suchomimus"}

// NoPageMessage returns the page-overflow message. pick returns an index in
// [0, n) and chooses which dinosaur ate the page.
func NoPageMessage(pick func(n int) int) string {
	return fmt.Sprintf("The %s has been eated this page", pageEaters[pick(len(pageEaters))])
}

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, pagination.ErrPageNotFound),
		store.IsNotFoundError(err):
		return http.StatusNotFound

	// Malformed id lists fall through to 500 with their own message.
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the message sent to clients for err. An empty
// string means the response carries no body.
func GetSafeErrorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, pagination.ErrPageNotFound):
		return NoPageMessage(rand.IntN)
	case errors.Is(err, idparam.ErrMalformedIDList):
		return MalformedIDListMessage
	default:
		return ""
	}
}
