package sharekey

import (
	"encoding/json"
	"strings"

	"quizshare/internal/domain"
)

// V2Prefix marks the current compact wire format. Keys without a version
// prefix are legacy V1 payloads.
const V2Prefix = "v2."

// formatHandler converts between a decompressed payload and the canonical
// quiz shape. One handler exists per wire format version; adding a format
// means adding a handler, not touching the existing ones.
type formatHandler interface {
	marshal(quiz *domain.QuizSet) ([]byte, error)
	unmarshal(payload []byte) (*domain.QuizSet, error)
}

// v2Format is the current format: minified keys, integer type codes,
// compacted choice options.
type v2Format struct{}

func (v2Format) marshal(quiz *domain.QuizSet) ([]byte, error) {
	return json.Marshal(Minify(quiz))
}

func (v2Format) unmarshal(payload []byte) (*domain.QuizSet, error) {
	var m map[string]any
	if err := json.Unmarshal(payload, &m); err != nil {
		return nil, err
	}
	return Unminify(m)
}

// v1Format is the legacy format: full field names, no key minification.
// Payloads are run through the normalizer so historical shape drift (string
// options, numeric answer indices) keeps decoding.
type v1Format struct{}

func (v1Format) marshal(quiz *domain.QuizSet) ([]byte, error) {
	return json.Marshal(quiz)
}

func (v1Format) unmarshal(payload []byte) (*domain.QuizSet, error) {
	var raw any
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, err
	}
	return NormalizeQuizSet(raw)
}

// formats is the closed set of wire format handlers, keyed by version tag.
// The empty tag is the untagged legacy format.
var formats = map[string]formatHandler{
	"v2": v2Format{},
	"":   v1Format{},
}

// Encode turns a canonical quiz set into a share key. It always produces
// the current V2 format; there is no legacy-encode path.
func Encode(quiz *domain.QuizSet) (string, error) {
	payload, err := formats["v2"].marshal(quiz)
	if err != nil {
		return "", domain.NewInternalError("failed to serialize quiz", err)
	}
	compressed, err := Deflate(payload)
	if err != nil {
		return "", domain.NewInternalError("failed to compress quiz payload", err)
	}
	return V2Prefix + EncodeBase64(compressed), nil
}

// Decode parses a share key in either wire format and reconstructs the
// canonical quiz set. Every transport-corruption failure (malformed Base64,
// a corrupt DEFLATE stream, unparseable payload JSON) is reported as an
// INVALID_SHARE_KEY domain error; Decode never returns a partial quiz.
func Decode(key string) (*domain.QuizSet, error) {
	version, body := "", key
	if strings.HasPrefix(key, V2Prefix) {
		version, body = "v2", key[len(V2Prefix):]
	}
	handler := formats[version]

	compressed, err := DecodeBase64(body)
	if err != nil {
		return nil, domain.NewInvalidShareKeyError(err)
	}
	payload, err := Inflate(compressed)
	if err != nil {
		return nil, domain.NewInvalidShareKeyError(err)
	}
	quiz, err := handler.unmarshal(payload)
	if err != nil {
		return nil, domain.NewInvalidShareKeyError(err)
	}
	return quiz, nil
}
