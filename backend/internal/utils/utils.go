package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/itchan-dev/bulletin/shared/errors"
)

const (
	maxTopicLen   = 50
	maxContextLen = 255
	maxTextLen    = 255
	maxTitleLen   = 50
	maxContentLen = 255
)

// NewId returns a random 32 char hex identifier for boards and threads.
func NewId() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

func notEmpty(field, s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.BadRequest(field + " may not be blank.")
	}
	return nil
}

func maxLen(field, s string, n int) error {
	if utf8.RuneCountInString(s) > n {
		return errors.BadRequest(field + " is too long")
	}
	return nil
}

type BoardValidator struct{}

func (v *BoardValidator) Topic(topic string) error {
	if err := notEmpty("topic", topic); err != nil {
		return err
	}
	return maxLen("topic", topic, maxTopicLen)
}

func (v *BoardValidator) Context(context string) error {
	return maxLen("context", context, maxContextLen)
}

type ThreadValidator struct{}

func (v *ThreadValidator) Text(text string) error {
	if err := notEmpty("text", text); err != nil {
		return err
	}
	return maxLen("text", text, maxTextLen)
}

type PostValidator struct{}

func (v *PostValidator) Title(title string) error {
	if err := notEmpty("title", title); err != nil {
		return err
	}
	return maxLen("title", title, maxTitleLen)
}

func (v *PostValidator) Content(content string) error {
	if err := notEmpty("content", content); err != nil {
		return err
	}
	return maxLen("content", content, maxContentLen)
}
