package pipeline

const (
	// noAnswerSentinel is the reply models return when the transcript
	// contains no answerable question.
	noAnswerSentinel = "no-answer"

	// historyContextSize caps the number of past exchanges included in
	// a prompt.
	historyContextSize = 3

	stagePreprocess = "preprocess"
	stageTranscribe = "transcribe"
	stageRespond    = "respond"
	stageFallback   = "fallback"
)
