package ai

import "errors"

// ErrUnavailable indicates the language model could not produce a reply
// (transport error, provider error or an empty response). Strategies
// degrade to a fallback result instead of surfacing it.
var ErrUnavailable = errors.New("language model unavailable")
