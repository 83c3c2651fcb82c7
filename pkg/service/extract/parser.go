package extract

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/inkwell/pkg/domain/model"
)

// Sentinel errors of the parsing stage. Both abort the current chunk; prior
// chunks' persisted state is untouched.
var (
	// ErrParseFailed means no JSON object could be recovered from the
	// response, neither directly nor from a fenced code block.
	ErrParseFailed = goerr.New("no JSON object in model response")

	// ErrMissingField means the decoded object lacks one of the four
	// required fields.
	ErrMissingField = goerr.New("model response missing required fields")
)

// fencedJSON matches a markdown code fence labeled as JSON. The model is told
// not to fence its output but is observed to do it anyway.
var fencedJSON = regexp.MustCompile("(?is)```json\\s*(\\{.*?\\})\\s*```")

// ParseResponse decodes a model response into an extraction result. It first
// tries the whole text as a JSON object, then falls back to the interior of a
// ```json fence. The returned mode tags which stage succeeded, so the
// recovery path can be asserted in isolation.
func ParseResponse(raw string) (*ParseResult, error) {
	trimmed := strings.TrimSpace(raw)

	var ex model.Extraction
	if err := json.Unmarshal([]byte(trimmed), &ex); err == nil {
		if err := validate(&ex); err != nil {
			return nil, err
		}
		return &ParseResult{Mode: ParseModeDirect, Extraction: &ex}, nil
	}

	if m := fencedJSON.FindStringSubmatch(trimmed); m != nil {
		var recovered model.Extraction
		if err := json.Unmarshal([]byte(m[1]), &recovered); err == nil {
			if err := validate(&recovered); err != nil {
				return nil, err
			}
			return &ParseResult{Mode: ParseModeRecovered, Extraction: &recovered}, nil
		}
	}

	return nil, goerr.Wrap(ErrParseFailed, "failed to parse model response", goerr.V("response", raw))
}

func validate(ex *model.Extraction) error {
	if missing := ex.MissingFields(); len(missing) > 0 {
		return goerr.Wrap(ErrMissingField, "invalid extraction result", goerr.V("missing", missing))
	}
	return nil
}
