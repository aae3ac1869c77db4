package x_guess

import (
	"errors"
	"fmt"
)

//---------------------
// Prompting
//---------------------

// Prompter is the interactive side of a session.
type Prompter interface {
	// Say shows a line of text.
	Say(text string) error
	// AskYesNo shows prompt and waits for a yes or no answer.
	AskYesNo(prompt string) (bool, error)
	// AskLine shows prompt and waits for a non-empty line of text.
	AskLine(prompt string) (string, error)
}

//---------------------
// States and results
//---------------------

type State int

const (
	Traversing State = iota
	Guessing
	Won
	Learning
)

func (s State) String() string {
	switch s {
	case Traversing:
		return "traversing"
	case Guessing:
		return "guessing"
	case Won:
		return "won"
	case Learning:
		return "learning"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

type Outcome int

const (
	OutcomeWon Outcome = iota + 1
	OutcomeLearned
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLearned:
		return "learned"
	default:
		return "unknown"
	}
}

// Result describes a finished session.
type Result struct {
	Outcome  Outcome
	Leaf     Index
	Guess    string
	Answer   string
	Question string
	Asked    int
}

// Observer is notified on every state change of a session.
type Observer interface {
	OnState(s State, at Index)
}

type ObserverFunc func(s State, at Index)

func (f ObserverFunc) OnState(s State, at Index) { f(s, at) }

//---------------------
// Session
//---------------------

type SessionOption func(*Session)

// WithObserver attaches an observer to the session.
func WithObserver(o Observer) SessionOption {
	return func(s *Session) { s.obs = o }
}

// Session plays one round of the game against a tree.
type Session struct {
	tree *Tree
	io   Prompter
	obs  Observer
}

func NewSession(tree *Tree, p Prompter, opts ...SessionOption) *Session {
	s := &Session{tree: tree, io: p}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Play walks the tree from the root, guesses, and learns from a wrong guess.
func (s *Session) Play() (Result, error) {
	res := Result{Leaf: None}

	cur := Root
	s.enter(Traversing, cur)
	node, err := s.tree.Node(cur)
	if err != nil {
		return res, err
	}
	for !node.IsLeaf() {
		yes, err := s.io.AskYesNo(node.Value)
		if err != nil {
			return res, fmt.Errorf("ask %q: %w", node.Value, err)
		}
		res.Asked++
		if yes {
			cur = node.Right
		} else {
			cur = node.Left
		}
		if node, err = s.tree.Node(cur); err != nil {
			return res, err
		}
	}

	res.Leaf = cur
	res.Guess = node.Value
	s.enter(Guessing, cur)

	right, err := s.io.AskYesNo(fmt.Sprintf(GuessPrompt, node.Value))
	if err != nil {
		return res, fmt.Errorf("guess %q: %w", node.Value, err)
	}
	if right {
		s.enter(Won, cur)
		res.Outcome = OutcomeWon
		return res, s.io.Say(WinWords)
	}
	if err := s.io.Say(LoseWords); err != nil {
		return res, err
	}

	s.enter(Learning, cur)
	answer, err := s.askValue(WhoWords)
	if err != nil {
		return res, fmt.Errorf("learn answer: %w", err)
	}
	question, err := s.askValue(fmt.Sprintf(QuestionPrompt, node.Value, answer))
	if err != nil {
		return res, fmt.Errorf("learn question: %w", err)
	}
	if err := s.tree.Split(cur, answer, question); err != nil {
		return res, err
	}

	res.Outcome = OutcomeLearned
	res.Answer = answer
	res.Question = question
	return res, nil
}

// askValue repeats prompt until the reply can be stored in the tree.
func (s *Session) askValue(prompt string) (string, error) {
	for {
		line, err := s.io.AskLine(prompt)
		if err != nil {
			return "", err
		}
		v, err := CheckValue(line)
		if err == nil {
			return v, nil
		}
		if !errors.Is(err, ErrInvalidValue) {
			return "", err
		}
		if err := s.io.Say(RetryWords); err != nil {
			return "", err
		}
	}
}

func (s *Session) enter(st State, at Index) {
	if s.obs != nil {
		s.obs.OnState(st, at)
	}
}
