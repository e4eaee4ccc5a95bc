// Package sharekey implements the share-key codec: the serialization,
// field-minification and compression pipeline that turns a quiz set into a
// compact portable string and back, across the legacy V1 and the current V2
// wire formats.
package sharekey

import "quizshare/internal/domain"

// Minified field keys used inside the V2 payload. The table is closed:
// fields outside it are dropped during minification.
const (
	keyID                  = "i"
	keyTitle               = "t"
	keyDescription         = "d"
	keyCreatedAt           = "c"
	keyQuestions           = "q"
	keyType                = "ty"
	keyText                = "tx"
	keyOptions             = "o"
	keyCorrectAnswers      = "ca"
	keySubjectiveReference = "sr"
	keyExplanation         = "ex"
	keyPoints              = "p"
)

// typeToCode maps question types to their V2 integer codes.
var typeToCode = map[domain.QuestionType]int{
	domain.SingleChoice:   0,
	domain.MultipleChoice: 1,
	domain.FillInTheBlank: 2,
	domain.TrueFalse:      3,
	domain.Subjective:     4,
}

// codeToType is the inverse of typeToCode.
var codeToType = map[int]domain.QuestionType{
	0: domain.SingleChoice,
	1: domain.MultipleChoice,
	2: domain.FillInTheBlank,
	3: domain.TrueFalse,
	4: domain.Subjective,
}
