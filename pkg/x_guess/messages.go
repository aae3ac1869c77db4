package x_guess

// DefaultPlaceholder is the answer of a freshly seeded tree.
const DefaultPlaceholder = "Nobody"

const (
	GuessPrompt    = "Is this %s?"
	WinWords       = "I won again!"
	LoseWords      = "Oh, that's your day..."
	WhoWords       = "Who it was?"
	QuestionPrompt = "Please, ask a question, that is NO for %s and YES for %s"
	RetryWords     = "That can't be stored, try again."

	YesMark = " - YES!"
	NoMark  = " - NO!"
)

const (
	openBrace  = "{"
	closeBrace = "}"
	indentUnit = "  "
)
