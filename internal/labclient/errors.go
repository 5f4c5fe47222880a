package labclient

import (
	"fmt"
	"net/http"

	apierrors "github.com/schynno0/studio/internal/errors"
	"github.com/schynno0/studio/internal/flows"
)

// a non-2xx answer from the server
type Error struct {
	Status  int
	Code    string
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}

	return fmt.Sprintf("server returned %d %s", e.Status, http.StatusText(e.Status))
}

// generation failures and timeouts from the server match flows.ErrGenerationFailed
func (e *Error) Is(target error) bool {
	if target != flows.ErrGenerationFailed {
		return false
	}

	return e.Code == apierrors.CodeGenerationFailed || e.Code == apierrors.CodeTimeout
}
